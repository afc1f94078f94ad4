package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
)

const ledgerSelect = `
	SELECT l.id, l.owner_id, l.name, l.description, l.amount, COALESCE(u.name, '')
	FROM ledgers l
	LEFT JOIN users u ON u.id = l.owner_id`

// CreateLedger persists a new ledger with a zero balance.
func (s *Store) CreateLedger(ctx context.Context, ledger *models.Ledger) error {
	if ledger.ID == "" {
		ledger.ID = uuid.New().String()
	}
	ledger.Amount = 0

	_, err := s.db.ExecContext(ctx,
		s.q("INSERT INTO ledgers (id, owner_id, name, description, amount) VALUES (?, ?, ?, ?, 0)"),
		ledger.ID, ledger.OwnerID, ledger.Name, ledger.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger: %w", err)
	}
	return nil
}

// GetLedger retrieves a ledger by ID, including the owner's name.
func (s *Store) GetLedger(ctx context.Context, id string) (*models.Ledger, error) {
	return s.getLedger(ctx, s.db, id)
}

func (s *Store) getLedger(ctx context.Context, q querier, id string) (*models.Ledger, error) {
	ledger := &models.Ledger{}
	err := q.QueryRowContext(ctx, s.q(ledgerSelect+" WHERE l.id = ?"), id).Scan(
		&ledger.ID, &ledger.OwnerID, &ledger.Name, &ledger.Description, &ledger.Amount, &ledger.OwnerName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("ledger", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}
	return ledger, nil
}

// ListLedgers retrieves all ledgers ordered by name.
func (s *Store) ListLedgers(ctx context.Context) ([]*models.Ledger, error) {
	rows, err := s.db.QueryContext(ctx, s.q(ledgerSelect+" ORDER BY l.name, l.id"))
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []*models.Ledger
	for rows.Next() {
		ledger := &models.Ledger{}
		if err := rows.Scan(&ledger.ID, &ledger.OwnerID, &ledger.Name, &ledger.Description, &ledger.Amount, &ledger.OwnerName); err != nil {
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		ledgers = append(ledgers, ledger)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledgers: %w", err)
	}
	return ledgers, nil
}

// UpdateLedger applies update to a ledger owned by ownerID.
// The balance is not updatable here.
func (s *Store) UpdateLedger(ctx context.Context, id, ownerID string, update models.LedgerUpdate) (*models.Ledger, error) {
	var ledger *models.Ledger
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.requireOwner(ctx, tx, "ledgers", "ledger", id, ownerID); err != nil {
			return err
		}

		var set updateSet
		if update.Name != nil {
			set.add("name", *update.Name)
		}
		if update.Description != nil {
			set.add("description", *update.Description)
		}
		if err := set.exec(ctx, s, tx, "ledgers", id); err != nil {
			return err
		}

		var err error
		ledger, err = s.getLedger(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// DeleteLedger removes a ledger owned by ownerID together with its transactions.
func (s *Store) DeleteLedger(ctx context.Context, id, ownerID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.requireOwner(ctx, tx, "ledgers", "ledger", id, ownerID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, s.q("DELETE FROM ledgers WHERE id = ?"), id); err != nil {
			return fmt.Errorf("failed to delete ledger: %w", err)
		}
		return nil
	})
}
