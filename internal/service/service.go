// Package service implements the splitledger.v1 connect services on top of
// storage.Store.
package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/settlement"
	"github.com/mmynk/splitledger/internal/telemetry"
	"github.com/mmynk/splitledger/pkg/api"
)

// requireSession returns the caller's session or an Unauthenticated error.
func requireSession(ctx context.Context) (auth.Session, error) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		return auth.Session{}, apperr.Unauthenticated(auth.ErrMissingToken)
	}
	return session, nil
}

// startSpan opens a span named after the RPC.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return telemetry.Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// requireName trims name and rejects blanks.
func requireName(entity, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation("%s name is required", entity)
	}
	return name, nil
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Validation("%s is required", field)
	}
	return nil
}

// trimPtr trims the pointed-to string, keeping nil as nil.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// validateInvoiceURL accepts inline data:image URLs and http(s) links.
func validateInvoiceURL(raw string) error {
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "data:image/") {
		if !strings.Contains(raw, ";base64,") {
			return apperr.Validation("invoice data URL must be base64 encoded")
		}
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperr.Validation("invoice URL must be an http(s) link or a data:image URL")
	}
	return nil
}

// parseAmount converts a wire amount into minor units of cur.
func parseAmount(cur money.Currency, field string, d decimal.Decimal) (money.Amount, error) {
	a, err := cur.FromDecimal(d)
	if err != nil {
		return 0, apperr.Validation("%s: %v", field, err)
	}
	return a, nil
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toAPILedger(l *models.Ledger, cur money.Currency) *api.Ledger {
	return &api.Ledger{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		OwnerName:   l.OwnerName,
		Name:        l.Name,
		Description: l.Description,
		Amount:      cur.Decimal(l.Amount),
		Currency:    cur.Code(),
	}
}

func toAPITransaction(t *models.Transaction, cur money.Currency) *api.Transaction {
	return &api.Transaction{
		ID:                t.ID,
		LedgerID:          t.LedgerID,
		Amount:            cur.Decimal(t.Amount),
		Description:       t.Description,
		CreatedAt:         t.CreatedAt,
		CorrespondentID:   t.CorrespondentID,
		CorrespondentName: t.CorrespondentName,
		InvoiceURL:        t.InvoiceURL,
		ProjectID:         t.ProjectID,
		ProjectName:       t.ProjectName,
	}
}

func toAPIPerson(p *models.Person) *api.Person {
	return &api.Person{
		ID:      p.ID,
		OwnerID: p.OwnerID,
		Name:    p.Name,
		UserID:  p.UserID,
	}
}

func toAPIGroup(g *models.Group) *api.Group {
	members := make([]*api.GroupMember, len(g.Members))
	for i, m := range g.Members {
		members[i] = &api.GroupMember{PersonID: m.PersonID, Name: m.Name}
	}
	return &api.Group{
		ID:      g.ID,
		OwnerID: g.OwnerID,
		Name:    g.Name,
		Members: members,
	}
}

func toAPIProject(p *models.Project, cur money.Currency) *api.Project {
	return &api.Project{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		OwnerName:   p.OwnerName,
		Name:        p.Name,
		Description: p.Description,
		Amount:      cur.Decimal(p.Amount),
		Deadline:    p.Deadline,
		CreatedAt:   p.CreatedAt,
		CompletedAt: p.CompletedAt,
		PaidOutAt:   p.PaidOutAt,
		Refundable:  p.Refundable,
	}
}

func toAPIParticipants(participants []models.ProjectParticipant, cur money.Currency) []*api.Participant {
	out := make([]*api.Participant, len(participants))
	for i := range participants {
		p := &participants[i]
		out[i] = &api.Participant{
			PersonID:              p.PersonID,
			Name:                  p.Name,
			Status:                settlement.StatusOf(p).String(),
			PaidAt:                p.PaidAt,
			PaidTransactionID:     p.PaidTransactionID,
			PaidAmount:            cur.Decimal(p.PaidAmount),
			RefundedAt:            p.RefundedAt,
			RefundedTransactionID: p.RefundedTransactionID,
			RefundedAmount:        cur.Decimal(p.RefundedAmount),
		}
	}
	return out
}
