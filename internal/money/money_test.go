package money

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	eur := MustCurrency("EUR")

	tests := []struct {
		name    string
		input   string
		want    Amount
		wantErr error
	}{
		{name: "integer", input: "100", want: 10000},
		{name: "negative with cents", input: "-40.25", want: -4025},
		{name: "single decimal", input: "0.5", want: 50},
		{name: "surrounding whitespace", input: " 12.00 ", want: 1200},
		{name: "sub-cent digits rejected", input: "1.005", wantErr: ErrTooPrecise},
		{name: "not a number", input: "abc", wantErr: ErrInvalidAmount},
		{name: "infinity", input: "Inf", wantErr: ErrInvalidAmount},
		{name: "NaN", input: "NaN", wantErr: ErrInvalidAmount},
		{name: "too large", input: "999999999999999999999", wantErr: ErrOutOfRange},
		{name: "largest amount", input: "10000000000000", want: MaxAmount},
		{name: "largest negative amount", input: "-10000000000000.00", want: -MaxAmount},
		{name: "one cent over the limit", input: "10000000000000.01", wantErr: ErrOutOfRange},
		{name: "huge exponent", input: "1e100000000", wantErr: ErrOutOfRange},
		{name: "huge negative exponent", input: "-1e100000000", wantErr: ErrOutOfRange},
		{name: "tiny exponent", input: "1e-100000000", wantErr: ErrTooPrecise},
		{name: "trailing zeros past the cent", input: "1.000000000000000000000000000000", want: 100},
		{name: "exponent form", input: "2.5e1", want: 2500},
		{name: "zero with exponent", input: "0e100000000", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eur.Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestZeroFractionCurrency(t *testing.T) {
	jpy := MustCurrency("jpy")
	if jpy.Code() != "JPY" {
		t.Fatalf("Code() = %q, want JPY", jpy.Code())
	}

	got, err := jpy.Parse("1500")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got != 1500 {
		t.Errorf("Parse = %d, want 1500", got)
	}
	if _, err := jpy.Parse("1.5"); !errors.Is(err, ErrTooPrecise) {
		t.Errorf("expected ErrTooPrecise for fractional yen, got %v", err)
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	eur := MustCurrency("EUR")
	d := eur.Decimal(-7550)
	if !d.Equal(decimal.RequireFromString("-75.5")) {
		t.Errorf("Decimal(-7550) = %s, want -75.5", d)
	}
	a, err := eur.FromDecimal(d)
	if err != nil {
		t.Fatalf("FromDecimal failed: %v", err)
	}
	if a != -7550 {
		t.Errorf("FromDecimal = %d, want -7550", a)
	}
}

func TestFormat(t *testing.T) {
	eur := MustCurrency("EUR")
	if got := eur.Format(6000); !strings.Contains(got, "60.00") {
		t.Errorf("Format(6000) = %q, want it to contain 60.00", got)
	}
	if got := eur.Format(-4000); !strings.Contains(got, "40.00") || !strings.Contains(got, "-") {
		t.Errorf("Format(-4000) = %q, want a negative 40.00", got)
	}
}

func TestUnknownCurrency(t *testing.T) {
	if _, err := NewCurrency("XYZ1"); err == nil {
		t.Error("expected error for unknown currency")
	}
}

func TestArithmetic(t *testing.T) {
	product, err := Amount(2500).Mul(3)
	if err != nil || product.Neg() != -7500 {
		t.Errorf("Mul/Neg = %d, %v, want -7500", product.Neg(), err)
	}
	sum, err := Sum(10000, -4000, 25)
	if err != nil || sum != 6025 {
		t.Errorf("Sum = %d, %v, want 6025", sum, err)
	}
	if got := Amount(-5).Abs(); got != 5 {
		t.Errorf("Abs = %d, want 5", got)
	}
}

func TestArithmeticOverflow(t *testing.T) {
	tests := []struct {
		name string
		op   func() (Amount, error)
	}{
		{"mul", func() (Amount, error) { return Amount(math.MaxInt64 / 2).Mul(3) }},
		{"mul negative", func() (Amount, error) { return Amount(math.MinInt64).Mul(-1) }},
		{"sum", func() (Amount, error) { return Sum(math.MaxInt64, 1) }},
		{"sum negative", func() (Amount, error) { return Sum(math.MinInt64, -1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := tt.op(); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("got %d, %v, want ErrOutOfRange", got, err)
			}
		})
	}

	if got, err := Sum(math.MaxInt64, 1, -1); err == nil {
		t.Errorf("Sum wrapped through overflow to %d", got)
	}
	if got, err := Amount(math.MinInt64 / 2).Mul(2); err != nil || got != math.MinInt64 {
		t.Errorf("Mul = %d, %v, want MinInt64", got, err)
	}
}
