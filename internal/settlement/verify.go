package settlement

import (
	"fmt"

	"github.com/mmynk/splitledger/internal/money"
)

// VerifyOK is the message returned when a ledger balance checks out.
const VerifyOK = "ok"

// Verification compares a ledger's cached balance with its transactions.
type Verification struct {
	Stored   money.Amount
	Computed money.Amount

	// Overflow is set when the transactions add up to more than an int64
	// holds. Computed is meaningless then and the ledger never verifies.
	Overflow bool
}

// Verify sums the transaction amounts and compares them with the stored
// balance. Amounts are integers, so equality is exact.
func Verify(stored money.Amount, transactions []money.Amount) Verification {
	computed, err := money.Sum(transactions...)
	return Verification{
		Stored:   stored,
		Computed: computed,
		Overflow: err != nil,
	}
}

// OK reports whether the stored balance matches the transactions.
func (v Verification) OK() bool { return !v.Overflow && v.Stored == v.Computed }

// Drift is how far the stored balance is off from the transactions.
func (v Verification) Drift() money.Amount { return v.Stored - v.Computed }

// Message returns VerifyOK or a mismatch description naming both values.
func (v Verification) Message(cur money.Currency) string {
	if v.OK() {
		return VerifyOK
	}
	if v.Overflow {
		return fmt.Sprintf("Ledger balance mismatch: expected %s, but the transactions overflow", cur.Format(v.Stored))
	}
	return fmt.Sprintf("Ledger balance mismatch: expected %s, but got %s",
		cur.Format(v.Stored), cur.Format(v.Computed))
}
