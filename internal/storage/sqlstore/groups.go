package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/settlement"
)

const memberSelect = `
	SELECT gm.group_id, gm.person_id, COALESCE(p.name, '')
	FROM group_members gm
	LEFT JOIN persons p ON p.id = gm.person_id`

// CreateGroup persists a new group with its members.
// Duplicate and unknown member IDs are skipped.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group, memberIDs []string) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			s.q("INSERT INTO groups (id, owner_id, name) VALUES (?, ?, ?)"),
			group.ID, group.OwnerID, group.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}

		if err := s.insertMembers(ctx, tx, group.ID, memberIDs); err != nil {
			return err
		}

		group.Members, err = s.listMembers(ctx, tx, group.ID)
		return err
	})
}

func (s *Store) insertMembers(ctx context.Context, tx *sql.Tx, groupID string, memberIDs []string) error {
	valid, err := s.existingPersonIDs(ctx, tx, settlement.Dedupe(memberIDs))
	if err != nil {
		return err
	}
	for _, personID := range valid {
		_, err := tx.ExecContext(ctx,
			s.q("INSERT INTO group_members (group_id, person_id) VALUES (?, ?) ON CONFLICT DO NOTHING"),
			groupID, personID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}
	return nil
}

// GetGroup retrieves a group by ID with its members.
func (s *Store) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	return s.getGroup(ctx, s.db, id)
}

func (s *Store) getGroup(ctx context.Context, q querier, id string) (*models.Group, error) {
	group := &models.Group{}
	err := q.QueryRowContext(ctx,
		s.q("SELECT id, owner_id, name FROM groups WHERE id = ?"), id,
	).Scan(&group.ID, &group.OwnerID, &group.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("group", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	group.Members, err = s.listMembers(ctx, q, id)
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (s *Store) listMembers(ctx context.Context, q querier, groupID string) ([]models.GroupMember, error) {
	rows, err := q.QueryContext(ctx,
		s.q(memberSelect+" WHERE gm.group_id = ? ORDER BY p.name, gm.person_id"), groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	var members []models.GroupMember
	for rows.Next() {
		var m models.GroupMember
		if err := rows.Scan(&m.GroupID, &m.PersonID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}
	return members, nil
}

// ListGroups retrieves all groups with their members, ordered by name.
func (s *Store) ListGroups(ctx context.Context) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, owner_id, name FROM groups ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	byID := make(map[string]*models.Group)
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(&group.ID, &group.OwnerID, &group.Name); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
		byID[group.ID] = group
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	memberRows, err := s.db.QueryContext(ctx, memberSelect+" ORDER BY p.name, gm.person_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var m models.GroupMember
		if err := memberRows.Scan(&m.GroupID, &m.PersonID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		if group, ok := byID[m.GroupID]; ok {
			group.Members = append(group.Members, m)
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}

	return groups, nil
}

// UpdateGroup applies update to a group owned by ownerID. With
// ReplaceMembers the member set is replaced wholesale; an empty MemberIDs
// removes everyone.
func (s *Store) UpdateGroup(ctx context.Context, id, ownerID string, update models.GroupUpdate) (*models.Group, error) {
	var group *models.Group
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.requireOwner(ctx, tx, "groups", "group", id, ownerID); err != nil {
			return err
		}

		var set updateSet
		if update.Name != nil {
			set.add("name", *update.Name)
		}
		if err := set.exec(ctx, s, tx, "groups", id); err != nil {
			return err
		}

		if update.ReplaceMembers {
			if _, err := tx.ExecContext(ctx, s.q("DELETE FROM group_members WHERE group_id = ?"), id); err != nil {
				return fmt.Errorf("failed to clear group members: %w", err)
			}
			if err := s.insertMembers(ctx, tx, id, update.MemberIDs); err != nil {
				return err
			}
		}

		var err error
		group, err = s.getGroup(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteGroup removes a group owned by ownerID along with its memberships.
func (s *Store) DeleteGroup(ctx context.Context, id, ownerID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.requireOwner(ctx, tx, "groups", "group", id, ownerID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, s.q("DELETE FROM groups WHERE id = ?"), id); err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		return nil
	})
}
