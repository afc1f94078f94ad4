// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

// Store defines the persistence operations used by the service layer.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
//
// Missing records are reported as apperr NotFound errors, mutations of
// records owned by someone else as apperr Ownership errors.
type Store interface {
	UserStore
	LedgerStore
	PersonStore
	GroupStore
	ProjectStore
	TransactionStore

	// Close releases any resources held by the store.
	Close() error
}

// UserStore persists login identities.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns nil and no error when the email is unknown.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns nil and no error when the id is unknown.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// LedgerStore persists ledgers. Balances change only through TransactionStore.
type LedgerStore interface {
	CreateLedger(ctx context.Context, ledger *models.Ledger) error
	GetLedger(ctx context.Context, id string) (*models.Ledger, error)
	ListLedgers(ctx context.Context) ([]*models.Ledger, error)
	UpdateLedger(ctx context.Context, id, ownerID string, update models.LedgerUpdate) (*models.Ledger, error)
	// DeleteLedger removes the ledger and, by cascade, its transactions.
	DeleteLedger(ctx context.Context, id, ownerID string) error
}

// PersonStore persists persons.
type PersonStore interface {
	CreatePerson(ctx context.Context, person *models.Person) error
	GetPerson(ctx context.Context, id string) (*models.Person, error)
	ListPersons(ctx context.Context) ([]*models.Person, error)
	UpdatePerson(ctx context.Context, id, ownerID string, update models.PersonUpdate) (*models.Person, error)
	DeletePerson(ctx context.Context, id, ownerID string) error
}

// GroupStore persists groups and their members.
type GroupStore interface {
	// CreateGroup inserts the group and its members. Unknown person IDs are
	// skipped.
	CreateGroup(ctx context.Context, group *models.Group, memberIDs []string) error
	GetGroup(ctx context.Context, id string) (*models.Group, error)
	ListGroups(ctx context.Context) ([]*models.Group, error)
	UpdateGroup(ctx context.Context, id, ownerID string, update models.GroupUpdate) (*models.Group, error)
	DeleteGroup(ctx context.Context, id, ownerID string) error
}

// ProjectStore persists projects and their participants.
type ProjectStore interface {
	// CreateProject inserts the project and one unpaid participant per person
	// resolved from personIDs and the members of groupIDs, atomically.
	CreateProject(ctx context.Context, project *models.Project, personIDs, groupIDs []string) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id, ownerID string, update models.ProjectUpdate) (*models.Project, error)
	// SetProjectCompleted sets completedAt to at, or clears it when at is 0.
	SetProjectCompleted(ctx context.Context, id, ownerID string, at int64) (*models.Project, error)
	DeleteProject(ctx context.Context, id, ownerID string) error
	ListParticipants(ctx context.Context, projectID string) ([]models.ProjectParticipant, error)
}

// TransactionStore records transactions together with their balance effects.
type TransactionStore interface {
	// CreateTransaction inserts tx, adds tx.Amount to the ledger balance and,
	// when tx.ProjectID is set, marks the (project, correspondent) participant
	// paid or refunded. All of it happens in one database transaction.
	CreateTransaction(ctx context.Context, tx *models.Transaction, refund bool) error

	// PayoutProject records tx as a refund like CreateTransaction and sets the
	// project's paidOutAt, in one database transaction.
	PayoutProject(ctx context.Context, tx *models.Transaction) error

	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	// ListTransactions returns the ledger's transactions, newest first.
	ListTransactions(ctx context.Context, ledgerID string) ([]*models.Transaction, error)
	// LedgerBalance returns the stored balance and every transaction amount
	// read in one snapshot.
	LedgerBalance(ctx context.Context, ledgerID string) (money.Amount, []money.Amount, error)
}
