package settlement

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

func TestResolveParticipants(t *testing.T) {
	tests := []struct {
		name      string
		personIDs []string
		groups    [][]string
		want      []string
	}{
		{
			name:      "person also in group is counted once",
			personIDs: []string{"p1"},
			groups:    [][]string{{"p1", "p2"}},
			want:      []string{"p1", "p2"},
		},
		{
			name:   "overlapping groups",
			groups: [][]string{{"p1", "p2"}, {"p2", "p3"}},
			want:   []string{"p1", "p2", "p3"},
		},
		{
			name:      "duplicate and empty person ids",
			personIDs: []string{"p2", "", "p2", "p1"},
			want:      []string{"p2", "p1"},
		},
		{
			name: "nothing",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveParticipants(tt.personIDs, tt.groups...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveParticipants() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		p    models.ProjectParticipant
		want Status
	}{
		{"fresh participant", models.ProjectParticipant{}, StatusUnpaid},
		{"paid", models.ProjectParticipant{PaidAt: 10, PaidTransactionID: "t1"}, StatusPaid},
		{"paid then refunded", models.ProjectParticipant{PaidAt: 10, RefundedAt: 20}, StatusRefunded},
		{"refunded without payment", models.ProjectParticipant{RefundedAt: 20}, StatusRefunded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(&tt.p); got != tt.want {
				t.Errorf("StatusOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuggestPayout(t *testing.T) {
	project := &models.Project{Amount: 2500}
	participants := []models.ProjectParticipant{
		{PersonID: "a", PaidAt: 1},
		{PersonID: "b", PaidAt: 2},
		{PersonID: "c", PaidAt: 3},
		{PersonID: "d"},
		{PersonID: "e", PaidAt: 4, RefundedAt: 5},
	}

	suggestion, err := SuggestPayout(project, participants)
	if err != nil {
		t.Fatalf("SuggestPayout failed: %v", err)
	}

	if suggestion.Amount != -7500 {
		t.Errorf("Amount = %d, want -7500", suggestion.Amount)
	}
	if len(suggestion.Eligible) != 3 {
		t.Fatalf("Eligible = %d participants, want 3", len(suggestion.Eligible))
	}
	for _, p := range suggestion.Eligible {
		if p.PersonID == "d" || p.PersonID == "e" {
			t.Errorf("participant %s should not be eligible", p.PersonID)
		}
	}
}

func TestSuggestPayoutNobodyPaid(t *testing.T) {
	suggestion, err := SuggestPayout(&models.Project{Amount: 2500}, []models.ProjectParticipant{{PersonID: "a"}})
	if err != nil {
		t.Fatalf("SuggestPayout failed: %v", err)
	}
	if suggestion.Amount != 0 {
		t.Errorf("Amount = %d, want 0", suggestion.Amount)
	}
	if len(suggestion.Eligible) != 0 {
		t.Errorf("expected no eligible participants, got %d", len(suggestion.Eligible))
	}
}

func TestVerify(t *testing.T) {
	eur := money.MustCurrency("EUR")

	t.Run("matching balance", func(t *testing.T) {
		v := Verify(6000, []money.Amount{10000, -4000})
		if !v.OK() {
			t.Fatalf("expected OK, drift %d", v.Drift())
		}
		if msg := v.Message(eur); msg != VerifyOK {
			t.Errorf("Message() = %q, want %q", msg, VerifyOK)
		}
	})

	t.Run("mismatch names both values", func(t *testing.T) {
		v := Verify(10000, []money.Amount{10000, -4000})
		if v.OK() {
			t.Fatal("expected mismatch")
		}
		if v.Drift() != 4000 {
			t.Errorf("Drift() = %d, want 4000", v.Drift())
		}
		msg := v.Message(eur)
		if !strings.Contains(msg, "100.00") || !strings.Contains(msg, "60.00") {
			t.Errorf("Message() = %q, want both 100.00 and 60.00", msg)
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		if !Verify(0, nil).OK() {
			t.Error("empty ledger with zero balance should verify")
		}
	})
}

// Sums that drift in float64 (0.1 + 0.2) stay exact in minor units.
func TestVerifyExactForManySmallAmounts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var (
		balance money.Amount = 10000
		amounts          = []money.Amount{10000}
	)
	for i := 0; i < 1000; i++ {
		a := money.Amount(rng.Int63n(20001) - 10000)
		amounts = append(amounts, a)
		balance += a
	}

	if v := Verify(balance, amounts); !v.OK() {
		t.Errorf("expected OK after %d transactions, drift %d", len(amounts), v.Drift())
	}
}

func TestSuggestPayoutOverflow(t *testing.T) {
	project := &models.Project{Amount: math.MaxInt64 / 2}
	participants := []models.ProjectParticipant{
		{PersonID: "a", PaidAt: 1},
		{PersonID: "b", PaidAt: 1},
		{PersonID: "c", PaidAt: 1},
	}
	if _, err := SuggestPayout(project, participants); !errors.Is(err, money.ErrOutOfRange) {
		t.Errorf("SuggestPayout error = %v, want ErrOutOfRange", err)
	}
}

func TestVerifyOverflowingTransactions(t *testing.T) {
	v := Verify(math.MaxInt64, []money.Amount{math.MaxInt64, 1, -1})
	if v.OK() || !v.Overflow {
		t.Fatalf("Verify = %+v, want an overflow mismatch", v)
	}
	if msg := v.Message(money.MustCurrency("EUR")); !strings.Contains(msg, "overflow") {
		t.Errorf("Message() = %q, want it to mention the overflow", msg)
	}
}
