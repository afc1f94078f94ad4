// Package money represents monetary amounts as integer minor units.
//
// Ledger balances are sums of many transactions, so amounts are never held
// as floats: a balance check is then an exact integer comparison.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrTooPrecise    = errors.New("amount has more decimal places than the currency allows")
	ErrOutOfRange    = errors.New("amount out of range")
)

// Amount is a signed number of minor currency units (cents for EUR).
type Amount int64

// MaxAmount bounds a single amount in minor units. Balances are sums of
// many amounts and must still fit in an int64.
const MaxAmount Amount = 1_000_000_000_000_000

// maxDigits is the number of integer digits of MaxAmount.
const maxDigits = 16

// Mul returns a multiplied by n, or ErrOutOfRange on int64 overflow.
func (a Amount) Mul(n int64) (Amount, error) {
	if a == 0 || n == 0 {
		return 0, nil
	}
	p := int64(a) * n
	if p/n != int64(a) || (int64(a) == -1 && n == math.MinInt64) || (n == -1 && int64(a) == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d × %d", ErrOutOfRange, a, n)
	}
	return Amount(p), nil
}

// Neg returns -a.
func (a Amount) Neg() Amount { return -a }

// Abs returns |a|.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// Add returns a + b, or ErrOutOfRange on int64 overflow.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOutOfRange, a, b)
	}
	return sum, nil
}

// Sum adds up amounts, failing with ErrOutOfRange instead of wrapping.
func Sum(amounts ...Amount) (Amount, error) {
	var total Amount
	for _, a := range amounts {
		var err error
		if total, err = total.Add(a); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Currency converts between decimal values and minor units for one ISO code.
type Currency struct {
	code     string
	fraction int32
}

// NewCurrency looks up an ISO 4217 code.
func NewCurrency(code string) (Currency, error) {
	c := gomoney.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if c == nil {
		return Currency{}, fmt.Errorf("unknown currency %q", code)
	}
	return Currency{code: c.Code, fraction: int32(c.Fraction)}, nil
}

// MustCurrency is NewCurrency that panics on unknown codes.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the ISO code.
func (c Currency) Code() string { return c.code }

// Parse reads a decimal string such as "-40.5".
func (c Currency) Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return c.FromDecimal(d)
}

// FromDecimal converts a major-unit decimal into minor units. Digits below
// the currency's minor unit are rejected rather than rounded, and so is
// anything beyond ±MaxAmount.
//
// The magnitude is bounded from the exponent and coefficient length before
// any rescaling, which would otherwise materialize 10^exponent.
func (c Currency) FromDecimal(d decimal.Decimal) (Amount, error) {
	if d.IsZero() {
		return 0, nil
	}

	// 10^(magnitude-1) <= |d| * 10^fraction < 10^magnitude
	magnitude := int64(d.NumDigits()) + int64(d.Exponent()) + int64(c.fraction)
	if magnitude > maxDigits {
		return 0, fmt.Errorf("%w: %se%d", ErrOutOfRange, d.Coefficient(), d.Exponent())
	}
	if magnitude <= 0 {
		return 0, fmt.Errorf("%w: %se%d %s", ErrTooPrecise, d.Coefficient(), d.Exponent(), c.code)
	}

	shifted := d.Shift(c.fraction)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s %s", ErrTooPrecise, d.String(), c.code)
	}
	limit := decimal.NewFromInt(int64(MaxAmount))
	if shifted.Abs().GreaterThan(limit) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, d.String())
	}
	return Amount(shifted.IntPart()), nil
}

// Decimal returns a in major units.
func (c Currency) Decimal(a Amount) decimal.Decimal {
	return decimal.New(int64(a), -c.fraction)
}

// Format renders a with the currency symbol, e.g. "€60.00".
func (c Currency) Format(a Amount) string {
	return gomoney.New(int64(a), c.code).Display()
}
