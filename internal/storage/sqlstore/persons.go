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

const personSelect = "SELECT id, owner_id, name, user_id FROM persons"

// CreatePerson persists a new person.
func (s *Store) CreatePerson(ctx context.Context, person *models.Person) error {
	if person.ID == "" {
		person.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		s.q("INSERT INTO persons (id, owner_id, name, user_id) VALUES (?, ?, ?, ?)"),
		person.ID, person.OwnerID, person.Name, nullString(person.UserID),
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}

// GetPerson retrieves a person by ID.
func (s *Store) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	return s.getPerson(ctx, s.db, id)
}

func (s *Store) getPerson(ctx context.Context, q querier, id string) (*models.Person, error) {
	person, err := scanPerson(q.QueryRowContext(ctx, s.q(personSelect+" WHERE id = ?"), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("person", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

// ListPersons retrieves all persons ordered by name.
func (s *Store) ListPersons(ctx context.Context) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx, personSelect+" ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	var persons []*models.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}
	return persons, nil
}

// UpdatePerson applies update to a person owned by ownerID.
func (s *Store) UpdatePerson(ctx context.Context, id, ownerID string, update models.PersonUpdate) (*models.Person, error) {
	var person *models.Person
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.requireOwner(ctx, tx, "persons", "person", id, ownerID); err != nil {
			return err
		}

		var set updateSet
		if update.Name != nil {
			set.add("name", *update.Name)
		}
		if update.UserID != nil {
			set.add("user_id", nullString(*update.UserID))
		}
		if err := set.exec(ctx, s, tx, "persons", id); err != nil {
			return err
		}

		var err error
		person, err = s.getPerson(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return person, nil
}

// DeletePerson removes a person owned by ownerID. Group memberships and
// project participations go with it; transactions keep their rows but lose
// the correspondent.
func (s *Store) DeletePerson(ctx context.Context, id, ownerID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.requireOwner(ctx, tx, "persons", "person", id, ownerID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, s.q("DELETE FROM persons WHERE id = ?"), id); err != nil {
			return fmt.Errorf("failed to delete person: %w", err)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*models.Person, error) {
	person := &models.Person{}
	var userID sql.NullString
	if err := row.Scan(&person.ID, &person.OwnerID, &person.Name, &userID); err != nil {
		return nil, err
	}
	person.UserID = userID.String
	return person, nil
}
