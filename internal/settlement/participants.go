// Package settlement holds the rules for project participation, payouts and
// ledger balance verification. It does no I/O; the store and services feed
// it rows and act on the results.
package settlement

import "github.com/mmynk/splitledger/internal/models"

// Status is a participant's position in the pay/refund lifecycle.
type Status int

const (
	StatusUnpaid Status = iota
	StatusPaid
	StatusRefunded
)

func (s Status) String() string {
	switch s {
	case StatusPaid:
		return "paid"
	case StatusRefunded:
		return "refunded"
	default:
		return "unpaid"
	}
}

// StatusOf derives a participant's status. Refunded wins over paid.
func StatusOf(p *models.ProjectParticipant) Status {
	switch {
	case p.Refunded():
		return StatusRefunded
	case p.Paid():
		return StatusPaid
	default:
		return StatusUnpaid
	}
}

// ResolveParticipants returns the union of explicitly listed persons and the
// members of the listed groups, deduplicated, in first-seen order.
// Empty IDs are dropped.
func ResolveParticipants(personIDs []string, groupMemberIDs ...[]string) []string {
	seen := make(map[string]bool)
	var resolved []string
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		resolved = append(resolved, id)
	}

	for _, id := range personIDs {
		add(id)
	}
	for _, members := range groupMemberIDs {
		for _, id := range members {
			add(id)
		}
	}
	return resolved
}

// Dedupe removes empty and repeated IDs, keeping first-seen order.
func Dedupe(ids []string) []string {
	return ResolveParticipants(ids)
}
