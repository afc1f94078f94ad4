package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/settlement"
)

const projectSelect = `
	SELECT pr.id, pr.owner_id, pr.name, pr.description, pr.amount, pr.deadline,
		pr.created_at, pr.completed_at, pr.paid_out_at, pr.refundable, COALESCE(u.name, '')
	FROM projects pr
	LEFT JOIN users u ON u.id = pr.owner_id`

// CreateProject persists a project and one unpaid participant per resolved
// person. Unknown person and group IDs are skipped.
func (s *Store) CreateProject(ctx context.Context, project *models.Project, personIDs, groupIDs []string) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.CreatedAt == 0 {
		project.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, s.q(`
			INSERT INTO projects (id, owner_id, name, description, amount, deadline, created_at, refundable)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
			project.ID, project.OwnerID, project.Name, nullString(project.Description),
			int64(project.Amount), nullInt(project.Deadline), project.CreatedAt, project.Refundable,
		)
		if err != nil {
			return fmt.Errorf("failed to insert project: %w", err)
		}

		var groupMembers [][]string
		for _, groupID := range settlement.Dedupe(groupIDs) {
			members, err := s.listMembers(ctx, tx, groupID)
			if err != nil {
				return err
			}
			ids := make([]string, len(members))
			for i, m := range members {
				ids[i] = m.PersonID
			}
			groupMembers = append(groupMembers, ids)
		}

		resolved := settlement.ResolveParticipants(personIDs, groupMembers...)
		valid, err := s.existingPersonIDs(ctx, tx, resolved)
		if err != nil {
			return err
		}
		for _, personID := range valid {
			_, err := tx.ExecContext(ctx,
				s.q("INSERT INTO project_participants (project_id, person_id) VALUES (?, ?)"),
				project.ID, personID,
			)
			if err != nil {
				return fmt.Errorf("failed to insert project participant: %w", err)
			}
		}
		return nil
	})
}

// GetProject retrieves a project by ID.
func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.getProject(ctx, s.db, id)
}

func (s *Store) getProject(ctx context.Context, q querier, id string) (*models.Project, error) {
	project, err := scanProject(q.QueryRowContext(ctx, s.q(projectSelect+" WHERE pr.id = ?"), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("project", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// ListProjects retrieves all projects, newest first.
func (s *Store) ListProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := s.db.QueryContext(ctx, projectSelect+" ORDER BY pr.created_at DESC, pr.id")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

// UpdateProject applies update to a project owned by ownerID.
// Amount and participants are fixed at creation.
func (s *Store) UpdateProject(ctx context.Context, id, ownerID string, update models.ProjectUpdate) (*models.Project, error) {
	var set updateSet
	if update.Name != nil {
		set.add("name", *update.Name)
	}
	if update.Description != nil {
		set.add("description", nullString(*update.Description))
	}
	return s.updateProject(ctx, id, ownerID, set)
}

// SetProjectCompleted sets or, with at == 0, clears completedAt.
func (s *Store) SetProjectCompleted(ctx context.Context, id, ownerID string, at int64) (*models.Project, error) {
	var set updateSet
	set.add("completed_at", nullInt(at))
	return s.updateProject(ctx, id, ownerID, set)
}

func (s *Store) updateProject(ctx context.Context, id, ownerID string, set updateSet) (*models.Project, error) {
	var project *models.Project
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.requireOwner(ctx, tx, "projects", "project", id, ownerID); err != nil {
			return err
		}
		if err := set.exec(ctx, s, tx, "projects", id); err != nil {
			return err
		}

		var err error
		project, err = s.getProject(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project owned by ownerID. Participants go with it;
// linked transactions stay on their ledgers with the project cleared.
func (s *Store) DeleteProject(ctx context.Context, id, ownerID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.requireOwner(ctx, tx, "projects", "project", id, ownerID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, s.q("DELETE FROM projects WHERE id = ?"), id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
}

// ListParticipants returns the project's participants with the amounts of
// their payment and refund transactions. Most recent payers come first,
// unpaid participants last.
func (s *Store) ListParticipants(ctx context.Context, projectID string) ([]models.ProjectParticipant, error) {
	ok, err := s.exists(ctx, s.db, "projects", projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("project", projectID)
	}

	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT pp.project_id, pp.person_id, pp.paid_at, pp.paid_transaction_id,
			pp.refunded_at, pp.refunded_transaction_id, p.name,
			COALESCE(pt.amount, 0), COALESCE(rt.amount, 0)
		FROM project_participants pp
		JOIN persons p ON p.id = pp.person_id
		LEFT JOIN transactions pt ON pt.id = pp.paid_transaction_id
		LEFT JOIN transactions rt ON rt.id = pp.refunded_transaction_id
		WHERE pp.project_id = ?
		ORDER BY pp.paid_at IS NULL, pp.paid_at DESC, p.name`), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []models.ProjectParticipant
	for rows.Next() {
		var (
			p                  models.ProjectParticipant
			paidAt, refundAt   sql.NullInt64
			paidTx, refundTx   sql.NullString
			paidAmt, refundAmt int64
		)
		if err := rows.Scan(&p.ProjectID, &p.PersonID, &paidAt, &paidTx,
			&refundAt, &refundTx, &p.Name, &paidAmt, &refundAmt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		p.PaidAt = paidAt.Int64
		p.PaidTransactionID = paidTx.String
		p.RefundedAt = refundAt.Int64
		p.RefundedTransactionID = refundTx.String
		p.PaidAmount = money.Amount(paidAmt)
		p.RefundedAmount = money.Amount(refundAmt)
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}

func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var (
		description                      sql.NullString
		deadline, completedAt, paidOutAt sql.NullInt64
	)
	err := row.Scan(
		&project.ID, &project.OwnerID, &project.Name, &description, &project.Amount, &deadline,
		&project.CreatedAt, &completedAt, &paidOutAt, &project.Refundable, &project.OwnerName,
	)
	if err != nil {
		return nil, err
	}
	project.Description = description.String
	project.Deadline = deadline.Int64
	project.CompletedAt = completedAt.Int64
	project.PaidOutAt = paidOutAt.Int64
	return project, nil
}
