// Package money provides a fixed-precision currency value backed by
// integer cents. All ledger arithmetic happens on cents; conversion to
// and from the two-decimal wire representation lives at the JSON
// boundary of this type.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a wire amount cannot be represented
// as a positive number of cents.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is an amount in minor units (cents).
type Money int64

// FromCents wraps a raw cent count.
func FromCents(cents int64) Money {
	return Money(cents)
}

// FromDecimal converts a decimal amount to cents, rounding half-up on
// the third decimal place.
func FromDecimal(d decimal.Decimal) Money {
	return Money(d.Round(2).Shift(2).IntPart())
}

// Parse converts a decimal string (e.g. "12.34") to Money.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d), nil
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return int64(m)
}

// Decimal returns the two-decimal representation.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

func (m Money) Add(o Money) Money { return m + o }
func (m Money) Sub(o Money) Money { return m - o }

// Abs returns the absolute value.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

func (m Money) IsPositive() bool { return m > 0 }
func (m Money) IsNegative() bool { return m < 0 }
func (m Money) IsZero() bool     { return m == 0 }

// String formats with exactly two decimal places.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON emits a bare decimal number with two places, matching the
// wire contract ("30.00", not "3000" and not a quoted string).
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number (or a quoted decimal string, which
// some clients send) and converts it to cents with half-up rounding.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Sum adds up a slice of amounts.
func Sum(amounts []Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}
