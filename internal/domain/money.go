package domain

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in minor currency units (cents).
// It is never represented as a floating-point value; conversion to and from a
// decimal string only happens at the I/O boundary.
type Money int64

// centsPerUnit is the number of minor units in one major unit.
const centsPerUnit = 100

// ParseMoney converts a user-entered decimal string (e.g. "12.345") into cents.
// The value is rounded to the nearest cent using round-half-away-from-zero,
// so "0.005" becomes 1 and "-0.005" becomes -1.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: amount cannot be empty", ErrInvalidInput)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount format %q", ErrInvalidInput, s)
	}

	return MoneyFromDecimal(d)
}

// MoneyFromDecimal converts a decimal major-unit amount into cents with
// round-half-away-from-zero.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Mul(decimal.NewFromInt(centsPerUnit)).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: amount %s out of range", ErrInvalidInput, d.String())
	}
	return Money(cents.IntPart()), nil
}

// Decimal returns the amount in major units (cents / 100).
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m > 0
}

// MarshalJSON encodes the amount as an unquoted decimal number with two fractional digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
// A JSON null leaves the amount unchanged.
func (m *Money) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	parsed, err := ParseMoney(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// SumMoney adds up a list of amounts.
func SumMoney(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}
