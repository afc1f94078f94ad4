package models

import "github.com/mmynk/splitledger/internal/money"

// Transaction is a signed movement of money on one ledger. Negative amounts
// are outflows. Transactions are never updated or deleted on their own.
type Transaction struct {
	ID          string
	LedgerID    string
	Amount      money.Amount
	Description string
	CreatedAt   int64

	// CorrespondentID is the person on the other side of the movement.
	CorrespondentID string

	// InvoiceURL is either an inline data:image URL or an external link.
	InvoiceURL string

	// ProjectID ties the transaction to a project payment or refund.
	ProjectID string

	// Resolved on read.
	CorrespondentName string
	ProjectName       string
}
