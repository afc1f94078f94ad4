package api

import "github.com/shopspring/decimal"

type Ledger struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerId"`
	OwnerName   string          `json:"ownerName,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

// Transaction is a signed movement on one ledger; negative amounts are outflows.
type Transaction struct {
	ID                string          `json:"id"`
	LedgerID          string          `json:"ledgerId"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description,omitempty"`
	CreatedAt         int64           `json:"createdAt"`
	CorrespondentID   string          `json:"correspondentId,omitempty"`
	CorrespondentName string          `json:"correspondentName,omitempty"`
	InvoiceURL        string          `json:"invoiceUrl,omitempty"`
	ProjectID         string          `json:"projectId,omitempty"`
	ProjectName       string          `json:"projectName,omitempty"`
}

type CreateLedgerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
}

type GetLedgerRequest struct {
	LedgerID string `json:"ledgerId"`
}

type GetLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
}

type ListLedgersRequest struct{}

type ListLedgersResponse struct {
	Ledgers []*Ledger `json:"ledgers"`
}

// UpdateLedgerRequest changes only the fields that are set.
type UpdateLedgerRequest struct {
	LedgerID    string  `json:"ledgerId"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdateLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
}

type DeleteLedgerRequest struct {
	LedgerID string `json:"ledgerId"`
}

type DeleteLedgerResponse struct{}

type CreateTransactionRequest struct {
	LedgerID        string          `json:"ledgerId"`
	Amount          decimal.Decimal `json:"amount"`
	CorrespondentID string          `json:"correspondentId,omitempty"`
	Description     string          `json:"description,omitempty"`
	InvoiceURL      string          `json:"invoiceUrl,omitempty"`
	ProjectID       string          `json:"projectId,omitempty"`

	// Refund marks the correspondent's project participation refunded
	// instead of paid.
	Refund bool `json:"refund,omitempty"`
}

type CreateTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type GetTransactionRequest struct {
	TransactionID string `json:"transactionId"`
}

type GetTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type ListTransactionsRequest struct {
	LedgerID string `json:"ledgerId"`
}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type VerifyLedgerBalanceRequest struct {
	LedgerID string `json:"ledgerId"`
}

// VerifyLedgerBalanceResponse carries "ok" or the mismatch message in Result.
type VerifyLedgerBalanceResponse struct {
	Result   string          `json:"result"`
	OK       bool            `json:"ok"`
	Stored   decimal.Decimal `json:"stored"`
	Computed decimal.Decimal `json:"computed"`
}
