package models

import "github.com/mmynk/splitledger/internal/money"

// Ledger is an account with a cached running balance.
//
// Amount is denormalized: it is updated by exactly one atomic increment per
// transaction and is only recomputed from transactions by verification.
type Ledger struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Amount      money.Amount

	// OwnerName is resolved on read and never persisted.
	OwnerName string
}

// LedgerUpdate lists the ledger fields that may change after creation.
type LedgerUpdate struct {
	Name        *string
	Description *string
}
