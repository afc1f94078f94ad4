package service

import (
	"context"
	"log/slog"
	"strings"

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

var _ apiconnect.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService: ledgers, their
// transactions and balance verification.
type LedgerService struct {
	store    storage.Store
	currency money.Currency
	metrics  *metrics.Metrics
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store, currency money.Currency, m *metrics.Metrics) *LedgerService {
	return &LedgerService{store: store, currency: currency, metrics: m}
}

// CreateLedger creates a ledger with a zero balance owned by the caller.
func (s *LedgerService) CreateLedger(ctx context.Context, req *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("CreateLedger request received", "name", req.Msg.Name, "user_id", session.UserID)

	name, err := requireName("ledger", req.Msg.Name)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}

	ledger := &models.Ledger{
		OwnerID:     session.UserID,
		Name:        name,
		Description: strings.TrimSpace(req.Msg.Description),
	}
	if err := s.store.CreateLedger(ctx, ledger); err != nil {
		slog.Error("CreateLedger failed", "error", err)
		return nil, apperr.ToConnect(err)
	}
	ledger.OwnerName = session.Name

	slog.Info("Ledger created", "ledger_id", ledger.ID)
	return connect.NewResponse(&api.CreateLedgerResponse{Ledger: toAPILedger(ledger, s.currency)}), nil
}

// GetLedger retrieves a ledger by ID.
func (s *LedgerService) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("GetLedger request received", "ledger_id", req.Msg.LedgerID)

	ledger, err := s.store.GetLedger(ctx, req.Msg.LedgerID)
	if err != nil {
		slog.Error("GetLedger failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	return connect.NewResponse(&api.GetLedgerResponse{Ledger: toAPILedger(ledger, s.currency)}), nil
}

// ListLedgers retrieves all ledgers with their owners' names.
func (s *LedgerService) ListLedgers(ctx context.Context, req *connect.Request[api.ListLedgersRequest]) (*connect.Response[api.ListLedgersResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("ListLedgers request received")

	ledgers, err := s.store.ListLedgers(ctx)
	if err != nil {
		slog.Error("ListLedgers failed", "error", err)
		return nil, apperr.ToConnect(err)
	}

	resp := &api.ListLedgersResponse{Ledgers: make([]*api.Ledger, len(ledgers))}
	for i, l := range ledgers {
		resp.Ledgers[i] = toAPILedger(l, s.currency)
	}

	slog.Info("ListLedgers successful", "count", len(ledgers))
	return connect.NewResponse(resp), nil
}

// UpdateLedger changes name and description of a ledger the caller owns.
func (s *LedgerService) UpdateLedger(ctx context.Context, req *connect.Request[api.UpdateLedgerRequest]) (*connect.Response[api.UpdateLedgerResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("UpdateLedger request received", "ledger_id", req.Msg.LedgerID, "user_id", session.UserID)

	update := models.LedgerUpdate{
		Name:        trimPtr(req.Msg.Name),
		Description: trimPtr(req.Msg.Description),
	}
	if update.Name != nil && *update.Name == "" {
		return nil, apperr.ToConnect(apperr.Validation("ledger name is required"))
	}

	ledger, err := s.store.UpdateLedger(ctx, req.Msg.LedgerID, session.UserID, update)
	if err != nil {
		slog.Error("UpdateLedger failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Ledger updated", "ledger_id", ledger.ID)
	return connect.NewResponse(&api.UpdateLedgerResponse{Ledger: toAPILedger(ledger, s.currency)}), nil
}

// DeleteLedger removes a ledger the caller owns, with all its transactions.
func (s *LedgerService) DeleteLedger(ctx context.Context, req *connect.Request[api.DeleteLedgerRequest]) (*connect.Response[api.DeleteLedgerResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("DeleteLedger request received", "ledger_id", req.Msg.LedgerID, "user_id", session.UserID)

	if err := s.store.DeleteLedger(ctx, req.Msg.LedgerID, session.UserID); err != nil {
		slog.Error("DeleteLedger failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Ledger deleted", "ledger_id", req.Msg.LedgerID)
	return connect.NewResponse(&api.DeleteLedgerResponse{}), nil
}

// CreateTransaction records a transaction, moves the ledger balance and, for
// project transactions, marks the correspondent paid or refunded. Either all
// of it happens or none.
func (s *LedgerService) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (resp *connect.Response[api.CreateTransactionResponse], err error) {
	ctx, span := startSpan(ctx, "LedgerService.CreateTransaction",
		attribute.String("ledger_id", req.Msg.LedgerID),
		attribute.String("project_id", req.Msg.ProjectID),
		attribute.Bool("refund", req.Msg.Refund),
	)
	defer func() { endSpan(span, err) }()

	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("CreateTransaction request received",
		"ledger_id", req.Msg.LedgerID,
		"amount", req.Msg.Amount.String(),
		"project_id", req.Msg.ProjectID,
		"refund", req.Msg.Refund,
		"user_id", session.UserID,
	)

	tx, err := s.newTransaction(req.Msg)
	if err != nil {
		slog.Warn("CreateTransaction rejected", "error", err)
		return nil, apperr.ToConnect(err)
	}

	if err := s.store.CreateTransaction(ctx, tx, req.Msg.Refund); err != nil {
		slog.Error("CreateTransaction failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, apperr.ToConnect(err)
	}
	s.metrics.TransactionsCreated.WithLabelValues(transactionKind(tx, req.Msg.Refund)).Inc()

	created, err := s.store.GetTransaction(ctx, tx.ID)
	if err != nil {
		slog.Error("CreateTransaction reload failed", "transaction_id", tx.ID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Transaction created", "transaction_id", tx.ID, "ledger_id", tx.LedgerID)
	return connect.NewResponse(&api.CreateTransactionResponse{Transaction: toAPITransaction(created, s.currency)}), nil
}

// newTransaction validates a create request and builds the model.
func (s *LedgerService) newTransaction(msg *api.CreateTransactionRequest) (*models.Transaction, error) {
	if err := requireID("ledgerId", msg.LedgerID); err != nil {
		return nil, err
	}
	amount, err := parseAmount(s.currency, "amount", msg.Amount)
	if err != nil {
		return nil, err
	}

	correspondentID := strings.TrimSpace(msg.CorrespondentID)
	projectID := strings.TrimSpace(msg.ProjectID)
	if projectID != "" && correspondentID == "" {
		return nil, apperr.Validation("correspondentId is required for project transactions")
	}

	invoiceURL := strings.TrimSpace(msg.InvoiceURL)
	if err := validateInvoiceURL(invoiceURL); err != nil {
		return nil, err
	}

	return &models.Transaction{
		LedgerID:        msg.LedgerID,
		Amount:          amount,
		Description:     strings.TrimSpace(msg.Description),
		CorrespondentID: correspondentID,
		InvoiceURL:      invoiceURL,
		ProjectID:       projectID,
	}, nil
}

func transactionKind(tx *models.Transaction, refund bool) string {
	switch {
	case tx.ProjectID == "":
		return "plain"
	case refund:
		return "refund"
	default:
		return "payment"
	}
}

// GetTransaction retrieves a transaction by ID.
func (s *LedgerService) GetTransaction(ctx context.Context, req *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("GetTransaction request received", "transaction_id", req.Msg.TransactionID)

	tx, err := s.store.GetTransaction(ctx, req.Msg.TransactionID)
	if err != nil {
		slog.Error("GetTransaction failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	return connect.NewResponse(&api.GetTransactionResponse{Transaction: toAPITransaction(tx, s.currency)}), nil
}

// ListTransactions returns a ledger's transactions, newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("ListTransactions request received", "ledger_id", req.Msg.LedgerID)

	txs, err := s.store.ListTransactions(ctx, req.Msg.LedgerID)
	if err != nil {
		slog.Error("ListTransactions failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	resp := &api.ListTransactionsResponse{Transactions: make([]*api.Transaction, len(txs))}
	for i, tx := range txs {
		resp.Transactions[i] = toAPITransaction(tx, s.currency)
	}
	return connect.NewResponse(resp), nil
}

// VerifyLedgerBalance compares the stored balance with the sum of the
// ledger's transactions. It reports, never repairs.
func (s *LedgerService) VerifyLedgerBalance(ctx context.Context, req *connect.Request[api.VerifyLedgerBalanceRequest]) (resp *connect.Response[api.VerifyLedgerBalanceResponse], err error) {
	ctx, span := startSpan(ctx, "LedgerService.VerifyLedgerBalance",
		attribute.String("ledger_id", req.Msg.LedgerID),
	)
	defer func() { endSpan(span, err) }()

	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("VerifyLedgerBalance request received", "ledger_id", req.Msg.LedgerID)

	v, err := VerifyLedger(ctx, s.store, req.Msg.LedgerID)
	if err != nil {
		slog.Error("VerifyLedgerBalance failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	result := "ok"
	if !v.OK() {
		result = "mismatch"
		slog.Warn("Ledger balance mismatch",
			"ledger_id", req.Msg.LedgerID,
			"stored", int64(v.Stored),
			"computed", int64(v.Computed),
		)
	}
	s.metrics.Verifications.WithLabelValues(result).Inc()
	span.SetAttributes(attribute.Bool("ok", v.OK()))

	return connect.NewResponse(&api.VerifyLedgerBalanceResponse{
		Result:   v.Message(s.currency),
		OK:       v.OK(),
		Stored:   s.currency.Decimal(v.Stored),
		Computed: s.currency.Decimal(v.Computed),
	}), nil
}

// VerifyLedger loads a ledger's balance snapshot and verifies it. The admin
// CLI shares it with the RPC.
func VerifyLedger(ctx context.Context, store storage.TransactionStore, ledgerID string) (settlement.Verification, error) {
	stored, amounts, err := store.LedgerBalance(ctx, ledgerID)
	if err != nil {
		return settlement.Verification{}, err
	}
	return settlement.Verify(stored, amounts), nil
}
