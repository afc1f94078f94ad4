package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/settlement"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

var _ apiconnect.ProjectServiceHandler = (*ProjectService)(nil)

// ProjectService implements the Connect ProjectService: projects, their
// participants and payouts.
type ProjectService struct {
	store    storage.Store
	currency money.Currency
	metrics  *metrics.Metrics

	// now is swapped in tests.
	now func() time.Time
}

// NewProjectService creates a new ProjectService with the given storage backend.
func NewProjectService(store storage.Store, currency money.Currency, m *metrics.Metrics) *ProjectService {
	return &ProjectService{store: store, currency: currency, metrics: m, now: time.Now}
}

// CreateProject creates a project and its participants: the listed persons
// plus the current members of the listed groups, each once.
func (s *ProjectService) CreateProject(ctx context.Context, req *connect.Request[api.CreateProjectRequest]) (resp *connect.Response[api.CreateProjectResponse], err error) {
	ctx, span := startSpan(ctx, "ProjectService.CreateProject",
		attribute.Int("person_ids", len(req.Msg.PersonIDs)),
		attribute.Int("group_ids", len(req.Msg.GroupIDs)),
	)
	defer func() { endSpan(span, err) }()

	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("CreateProject request received",
		"name", req.Msg.Name,
		"persons", len(req.Msg.PersonIDs),
		"groups", len(req.Msg.GroupIDs),
		"user_id", session.UserID,
	)

	name, err := requireName("project", req.Msg.Name)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	amount, err := parseAmount(s.currency, "amount", req.Msg.Amount)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	if req.Msg.Deadline < 0 {
		return nil, apperr.ToConnect(apperr.Validation("deadline must be a unix timestamp"))
	}

	refundable := true
	if req.Msg.Refundable != nil {
		refundable = *req.Msg.Refundable
	}

	project := &models.Project{
		OwnerID:     session.UserID,
		Name:        name,
		Description: strings.TrimSpace(req.Msg.Description),
		Amount:      amount,
		Deadline:    req.Msg.Deadline,
		CreatedAt:   s.now().Unix(),
		Refundable:  refundable,
	}
	if err := s.store.CreateProject(ctx, project, req.Msg.PersonIDs, req.Msg.GroupIDs); err != nil {
		slog.Error("CreateProject failed", "error", err)
		return nil, apperr.ToConnect(err)
	}

	created, err := s.store.GetProject(ctx, project.ID)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	participants, err := s.store.ListParticipants(ctx, project.ID)
	if err != nil {
		slog.Error("CreateProject participants reload failed", "project_id", project.ID, "error", err)
		return nil, apperr.ToConnect(err)
	}
	span.SetAttributes(attribute.Int("participants", len(participants)))

	slog.Info("Project created", "project_id", project.ID, "participants", len(participants))
	return connect.NewResponse(&api.CreateProjectResponse{
		Project:      toAPIProject(created, s.currency),
		Participants: toAPIParticipants(participants, s.currency),
	}), nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, req *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("GetProject request received", "project_id", req.Msg.ProjectID)

	project, err := s.store.GetProject(ctx, req.Msg.ProjectID)
	if err != nil {
		slog.Error("GetProject failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(&api.GetProjectResponse{Project: toAPIProject(project, s.currency)}), nil
}

// ListProjects retrieves all projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context, req *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("ListProjects request received")

	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		slog.Error("ListProjects failed", "error", err)
		return nil, apperr.ToConnect(err)
	}

	resp := &api.ListProjectsResponse{Projects: make([]*api.Project, len(projects))}
	for i, p := range projects {
		resp.Projects[i] = toAPIProject(p, s.currency)
	}
	return connect.NewResponse(resp), nil
}

// UpdateProject changes name and description of a project the caller owns.
func (s *ProjectService) UpdateProject(ctx context.Context, req *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.UpdateProjectResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("UpdateProject request received", "project_id", req.Msg.ProjectID, "user_id", session.UserID)

	update := models.ProjectUpdate{
		Name:        trimPtr(req.Msg.Name),
		Description: trimPtr(req.Msg.Description),
	}
	if update.Name != nil && *update.Name == "" {
		return nil, apperr.ToConnect(apperr.Validation("project name is required"))
	}

	project, err := s.store.UpdateProject(ctx, req.Msg.ProjectID, session.UserID, update)
	if err != nil {
		slog.Error("UpdateProject failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(&api.UpdateProjectResponse{Project: toAPIProject(project, s.currency)}), nil
}

// SetProjectCompleted marks a project complete now, or reopens it.
func (s *ProjectService) SetProjectCompleted(ctx context.Context, req *connect.Request[api.SetProjectCompletedRequest]) (*connect.Response[api.SetProjectCompletedResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("SetProjectCompleted request received",
		"project_id", req.Msg.ProjectID,
		"completed", req.Msg.Completed,
		"user_id", session.UserID,
	)

	var at int64
	if req.Msg.Completed {
		at = s.now().Unix()
	}
	project, err := s.store.SetProjectCompleted(ctx, req.Msg.ProjectID, session.UserID, at)
	if err != nil {
		slog.Error("SetProjectCompleted failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(&api.SetProjectCompletedResponse{Project: toAPIProject(project, s.currency)}), nil
}

// DeleteProject removes a project the caller owns. Its transactions stay on
// their ledgers.
func (s *ProjectService) DeleteProject(ctx context.Context, req *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("DeleteProject request received", "project_id", req.Msg.ProjectID, "user_id", session.UserID)

	if err := s.store.DeleteProject(ctx, req.Msg.ProjectID, session.UserID); err != nil {
		slog.Error("DeleteProject failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Project deleted", "project_id", req.Msg.ProjectID)
	return connect.NewResponse(&api.DeleteProjectResponse{}), nil
}

// ListParticipants returns a project's participants with their payment state.
func (s *ProjectService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("ListParticipants request received", "project_id", req.Msg.ProjectID)

	participants, err := s.store.ListParticipants(ctx, req.Msg.ProjectID)
	if err != nil {
		slog.Error("ListParticipants failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(&api.ListParticipantsResponse{
		Participants: toAPIParticipants(participants, s.currency),
	}), nil
}

// SuggestPayout computes the default payout for a project: the per-person
// amount times the participants that paid and were not refunded, negated.
func (s *ProjectService) SuggestPayout(ctx context.Context, req *connect.Request[api.SuggestPayoutRequest]) (*connect.Response[api.SuggestPayoutResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("SuggestPayout request received", "project_id", req.Msg.ProjectID)

	suggestion, err := SuggestProjectPayout(ctx, s.store, req.Msg.ProjectID)
	if err != nil {
		slog.Error("SuggestPayout failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	return connect.NewResponse(&api.SuggestPayoutResponse{
		Amount:   s.currency.Decimal(suggestion.Amount),
		Eligible: toAPIParticipants(suggestion.Eligible, s.currency),
	}), nil
}

// SuggestProjectPayout loads a project and its participants and computes the
// suggested payout. The admin CLI shares it with the RPC.
func SuggestProjectPayout(ctx context.Context, store storage.ProjectStore, projectID string) (settlement.PayoutSuggestion, error) {
	project, err := store.GetProject(ctx, projectID)
	if err != nil {
		return settlement.PayoutSuggestion{}, err
	}
	participants, err := store.ListParticipants(ctx, projectID)
	if err != nil {
		return settlement.PayoutSuggestion{}, err
	}
	suggestion, err := settlement.SuggestPayout(project, participants)
	if err != nil {
		return settlement.PayoutSuggestion{}, apperr.Validation("payout for project %s: %v", projectID, err)
	}
	return suggestion, nil
}

// PayoutProject books the payout as a refund-flagged transaction on the
// ledger and marks the project paid out, atomically. The amount is the
// caller's choice; SuggestPayout only advises.
func (s *ProjectService) PayoutProject(ctx context.Context, req *connect.Request[api.PayoutProjectRequest]) (resp *connect.Response[api.PayoutProjectResponse], err error) {
	ctx, span := startSpan(ctx, "ProjectService.PayoutProject",
		attribute.String("project_id", req.Msg.ProjectID),
		attribute.String("ledger_id", req.Msg.LedgerID),
	)
	defer func() { endSpan(span, err) }()

	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("PayoutProject request received",
		"project_id", req.Msg.ProjectID,
		"ledger_id", req.Msg.LedgerID,
		"amount", req.Msg.Amount.String(),
		"user_id", session.UserID,
	)

	if err := requireID("projectId", req.Msg.ProjectID); err != nil {
		return nil, apperr.ToConnect(err)
	}
	if err := requireID("ledgerId", req.Msg.LedgerID); err != nil {
		return nil, apperr.ToConnect(err)
	}
	amount, err := parseAmount(s.currency, "amount", req.Msg.Amount)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}

	project, err := s.store.GetProject(ctx, req.Msg.ProjectID)
	if err != nil {
		slog.Error("PayoutProject failed", "project_id", req.Msg.ProjectID, "error", err)
		return nil, apperr.ToConnect(err)
	}
	if project.OwnerID != session.UserID {
		return nil, apperr.ToConnect(apperr.Ownership("project", project.ID))
	}
	if project.PaidOut() {
		slog.Warn("Project paid out again", "project_id", project.ID, "previous_paid_out_at", project.PaidOutAt)
	}

	tx := &models.Transaction{
		LedgerID:        req.Msg.LedgerID,
		Amount:          amount,
		Description:     strings.TrimSpace(req.Msg.Description),
		CreatedAt:       s.now().Unix(),
		CorrespondentID: strings.TrimSpace(req.Msg.PersonID),
		ProjectID:       project.ID,
	}
	if err := s.store.PayoutProject(ctx, tx); err != nil {
		slog.Error("PayoutProject failed", "project_id", project.ID, "error", err)
		return nil, apperr.ToConnect(err)
	}
	s.metrics.TransactionsCreated.WithLabelValues("payout").Inc()
	s.metrics.Payouts.Inc()

	booked, err := s.store.GetTransaction(ctx, tx.ID)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	paidOut, err := s.store.GetProject(ctx, project.ID)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Project paid out", "project_id", project.ID, "transaction_id", tx.ID)
	return connect.NewResponse(&api.PayoutProjectResponse{
		Transaction: toAPITransaction(booked, s.currency),
		Project:     toAPIProject(paidOut, s.currency),
	}), nil
}
