package settlement

import (
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

// PayoutSuggestion is the default bulk payout for a project.
type PayoutSuggestion struct {
	// Amount is negative: money leaves the ledger.
	Amount money.Amount

	// Eligible are the participants who paid and were not refunded.
	Eligible []models.ProjectParticipant
}

// EligibleForPayout filters participants that paid and were not refunded.
func EligibleForPayout(participants []models.ProjectParticipant) []models.ProjectParticipant {
	var eligible []models.ProjectParticipant
	for i := range participants {
		if StatusOf(&participants[i]) == StatusPaid {
			eligible = append(eligible, participants[i])
		}
	}
	return eligible
}

// SuggestPayout computes -(|amount per participant × eligible count|).
// The suggestion is advisory: a payout may be issued for any amount.
// It fails with money.ErrOutOfRange when the total does not fit an Amount.
func SuggestPayout(project *models.Project, participants []models.ProjectParticipant) (PayoutSuggestion, error) {
	eligible := EligibleForPayout(participants)
	total, err := project.Amount.Abs().Mul(int64(len(eligible)))
	if err != nil {
		return PayoutSuggestion{}, err
	}
	return PayoutSuggestion{
		Amount:   total.Neg(),
		Eligible: eligible,
	}, nil
}
