package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

const transactionSelect = `
	SELECT t.id, t.ledger_id, t.amount, t.description, t.created_at, t.correspondent_id,
		t.invoice_url, t.project_id, COALESCE(p.name, ''), COALESCE(pr.name, '')
	FROM transactions t
	LEFT JOIN persons p ON p.id = t.correspondent_id
	LEFT JOIN projects pr ON pr.id = t.project_id`

// CreateTransaction records t and its balance effect atomically. With a
// project set, the (project, correspondent) participant must exist.
func (s *Store) CreateTransaction(ctx context.Context, t *models.Transaction, refund bool) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.recordTransaction(ctx, tx, t, refund, true)
	})
}

// PayoutProject records the payout transaction as a refund and stamps the
// project paid out. The recipient need not be a participant; when they are,
// their participation is marked refunded.
func (s *Store) PayoutProject(ctx context.Context, t *models.Transaction) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.recordTransaction(ctx, tx, t, true, false); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			s.q("UPDATE projects SET paid_out_at = ? WHERE id = ?"),
			t.CreatedAt, t.ProjectID,
		)
		if err != nil {
			return fmt.Errorf("failed to mark project paid out: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return apperr.NotFound("project", t.ProjectID)
		}
		return nil
	})
}

func (s *Store) recordTransaction(ctx context.Context, tx *sql.Tx, t *models.Transaction, refund, requireParticipant bool) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}

	if t.Amount > money.MaxAmount || t.Amount < -money.MaxAmount {
		return apperr.Validation("amount %d is out of range", t.Amount)
	}

	// Increment in place so concurrent writers never lose an update. The
	// range guard keeps the balance an int64: SQLite would otherwise turn an
	// overflowing sum into a REAL.
	lo, hi := balanceBounds(t.Amount)
	res, err := tx.ExecContext(ctx,
		s.q("UPDATE ledgers SET amount = amount + ? WHERE id = ? AND amount BETWEEN ? AND ?"),
		int64(t.Amount), t.LedgerID, lo, hi,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger balance: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		ok, err := s.exists(ctx, tx, "ledgers", t.LedgerID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("ledger", t.LedgerID)
		}
		return apperr.Validation("amount %d would overflow the balance of ledger %s", t.Amount, t.LedgerID)
	}

	if t.CorrespondentID != "" {
		ok, err := s.exists(ctx, tx, "persons", t.CorrespondentID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("person", t.CorrespondentID)
		}
	}
	if t.ProjectID != "" {
		ok, err := s.exists(ctx, tx, "projects", t.ProjectID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("project", t.ProjectID)
		}
	}

	_, err = tx.ExecContext(ctx, s.q(`
		INSERT INTO transactions (id, ledger_id, amount, description, created_at, correspondent_id, invoice_url, project_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		t.ID, t.LedgerID, int64(t.Amount), nullString(t.Description), t.CreatedAt,
		nullString(t.CorrespondentID), nullString(t.InvoiceURL), nullString(t.ProjectID),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if t.ProjectID == "" || t.CorrespondentID == "" {
		return nil
	}

	marker := "UPDATE project_participants SET paid_at = ?, paid_transaction_id = ? WHERE project_id = ? AND person_id = ?"
	if refund {
		marker = "UPDATE project_participants SET refunded_at = ?, refunded_transaction_id = ? WHERE project_id = ? AND person_id = ?"
	}
	res, err = tx.ExecContext(ctx, s.q(marker), t.CreatedAt, t.ID, t.ProjectID, t.CorrespondentID)
	if err != nil {
		return fmt.Errorf("failed to update project participant: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 && requireParticipant {
		return apperr.NotFound("project participant", t.ProjectID+"/"+t.CorrespondentID)
	}
	return nil
}

// balanceBounds returns the range a balance must lie in for balance+amount
// to fit an int64.
func balanceBounds(amount money.Amount) (lo, hi int64) {
	lo, hi = math.MinInt64, math.MaxInt64
	if amount > 0 {
		hi -= int64(amount)
	} else {
		lo -= int64(amount)
	}
	return lo, hi
}

// GetTransaction retrieves a transaction by ID.
func (s *Store) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	t, err := scanTransaction(s.db.QueryRowContext(ctx, s.q(transactionSelect+" WHERE t.id = ?"), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("transaction", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// ListTransactions returns the ledger's transactions, newest first.
func (s *Store) ListTransactions(ctx context.Context, ledgerID string) ([]*models.Transaction, error) {
	ok, err := s.exists(ctx, s.db, "ledgers", ledgerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("ledger", ledgerID)
	}

	rows, err := s.db.QueryContext(ctx,
		s.q(transactionSelect+" WHERE t.ledger_id = ? ORDER BY t.created_at DESC, "+s.insertOrder()+" DESC"), ledgerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// insertOrder is a column that grows with every inserted transaction, used to
// order transactions booked within the same second.
func (s *Store) insertOrder() string {
	if s.dialect == Postgres {
		return "t.seq"
	}
	return "t.rowid"
}

// LedgerBalance reads the stored balance and all transaction amounts of a
// ledger inside one database transaction.
func (s *Store) LedgerBalance(ctx context.Context, ledgerID string) (money.Amount, []money.Amount, error) {
	var (
		stored  money.Amount
		amounts []money.Amount
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, s.q("SELECT amount FROM ledgers WHERE id = ?"), ledgerID).Scan(&stored)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("ledger", ledgerID)
		}
		if err != nil {
			return fmt.Errorf("failed to get ledger balance: %w", err)
		}

		rows, err := tx.QueryContext(ctx, s.q("SELECT amount FROM transactions WHERE ledger_id = ?"), ledgerID)
		if err != nil {
			return fmt.Errorf("failed to get transaction amounts: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var a money.Amount
			if err := rows.Scan(&a); err != nil {
				return fmt.Errorf("failed to scan transaction amount: %w", err)
			}
			amounts = append(amounts, a)
		}
		return rows.Err()
	})
	if err != nil {
		return 0, nil, err
	}
	return stored, amounts, nil
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	t := &models.Transaction{}
	var description, correspondentID, invoiceURL, projectID sql.NullString
	err := row.Scan(
		&t.ID, &t.LedgerID, &t.Amount, &description, &t.CreatedAt, &correspondentID,
		&invoiceURL, &projectID, &t.CorrespondentName, &t.ProjectName,
	)
	if err != nil {
		return nil, err
	}
	t.Description = description.String
	t.CorrespondentID = correspondentID.String
	t.InvoiceURL = invoiceURL.String
	t.ProjectID = projectID.String
	return t, nil
}
