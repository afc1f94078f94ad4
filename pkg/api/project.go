package api

import "github.com/shopspring/decimal"

type Project struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	OwnerName   string `json:"ownerName,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Amount is due from each participant.
	Amount decimal.Decimal `json:"amount"`

	Deadline    int64 `json:"deadline,omitempty"`
	CreatedAt   int64 `json:"createdAt"`
	CompletedAt int64 `json:"completedAt,omitempty"`
	PaidOutAt   int64 `json:"paidOutAt,omitempty"`
	Refundable  bool  `json:"refundable"`
}

// Participant status values.
const (
	StatusUnpaid   = "unpaid"
	StatusPaid     = "paid"
	StatusRefunded = "refunded"
)

type Participant struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
	Status   string `json:"status"`

	PaidAt                int64           `json:"paidAt,omitempty"`
	PaidTransactionID     string          `json:"paidTransactionId,omitempty"`
	PaidAmount            decimal.Decimal `json:"paidAmount"`
	RefundedAt            int64           `json:"refundedAt,omitempty"`
	RefundedTransactionID string          `json:"refundedTransactionId,omitempty"`
	RefundedAmount        decimal.Decimal `json:"refundedAmount"`
}

// CreateProjectRequest resolves participants from PersonIDs and the current
// members of GroupIDs.
type CreateProjectRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Deadline    int64           `json:"deadline,omitempty"`
	PersonIDs   []string        `json:"personIds,omitempty"`
	GroupIDs    []string        `json:"groupIds,omitempty"`

	// Refundable defaults to true when omitted.
	Refundable *bool `json:"refundable,omitempty"`
}

type CreateProjectResponse struct {
	Project      *Project       `json:"project"`
	Participants []*Participant `json:"participants"`
}

type GetProjectRequest struct {
	ProjectID string `json:"projectId"`
}

type GetProjectResponse struct {
	Project *Project `json:"project"`
}

type ListProjectsRequest struct{}

type ListProjectsResponse struct {
	Projects []*Project `json:"projects"`
}

type UpdateProjectRequest struct {
	ProjectID   string  `json:"projectId"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdateProjectResponse struct {
	Project *Project `json:"project"`
}

type SetProjectCompletedRequest struct {
	ProjectID string `json:"projectId"`
	Completed bool   `json:"completed"`
}

type SetProjectCompletedResponse struct {
	Project *Project `json:"project"`
}

type DeleteProjectRequest struct {
	ProjectID string `json:"projectId"`
}

type DeleteProjectResponse struct{}

type ListParticipantsRequest struct {
	ProjectID string `json:"projectId"`
}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

type SuggestPayoutRequest struct {
	ProjectID string `json:"projectId"`
}

// SuggestPayoutResponse is advisory; PayoutProject accepts any amount.
type SuggestPayoutResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Eligible []*Participant  `json:"eligible"`
}

type PayoutProjectRequest struct {
	ProjectID   string          `json:"projectId"`
	PersonID    string          `json:"personId,omitempty"`
	LedgerID    string          `json:"ledgerId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

type PayoutProjectResponse struct {
	Transaction *Transaction `json:"transaction"`
	Project     *Project     `json:"project"`
}
