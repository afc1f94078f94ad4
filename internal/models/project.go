package models

import "github.com/mmynk/splitledger/internal/money"

// Project is a cost-splitting event that collects Amount from every participant.
type Project struct {
	ID          string
	OwnerID     string
	Name        string
	Description string

	// Amount is due from each participant.
	Amount money.Amount

	Deadline    int64
	CreatedAt   int64
	CompletedAt int64
	PaidOutAt   int64

	// Refundable marks projects whose collected money may be handed back.
	Refundable bool

	// OwnerName is resolved on read and never persisted.
	OwnerName string
}

// Completed reports whether the project was marked complete.
func (p *Project) Completed() bool { return p.CompletedAt != 0 }

// PaidOut reports whether the collected money was paid out.
func (p *Project) PaidOut() bool { return p.PaidOutAt != 0 }

// ProjectUpdate lists the project fields that may change after creation.
type ProjectUpdate struct {
	Name        *string
	Description *string
}

// ProjectParticipant is one person's payment state within a project.
type ProjectParticipant struct {
	ProjectID string
	PersonID  string

	PaidAt                int64
	PaidTransactionID     string
	RefundedAt            int64
	RefundedTransactionID string

	// Resolved on read from the person and the linked transactions.
	Name           string
	PaidAmount     money.Amount
	RefundedAmount money.Amount
}

// Paid reports whether the participant paid and was not refunded since.
func (p *ProjectParticipant) Paid() bool { return p.PaidAt != 0 && p.RefundedAt == 0 }

// Refunded reports whether the participant was refunded.
func (p *ProjectParticipant) Refunded() bool { return p.RefundedAt != 0 }
