package fra

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is a non-negative balance-sheet figure.
//
// The zero value is a valid 0 amount.
type Amount struct {
	value decimal.Decimal
}

// A returns the amount for value. Negative or non finite values collapse to 0.
func A[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	if f, ok := any(value).(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return Amount{}
	}
	return sanitize(newDecimal(value))
}

func sanitize(d decimal.Decimal) Amount {
	if d.IsNegative() {
		return Amount{}
	}
	return Amount{value: d}
}

// ParseAmount coerces a user input into an Amount.
//
// Input is parsed as a number after trimming surrounding spaces: decimal or
// exponent notation, or an integer with a 0x, 0o or 0b prefix. Anything that
// is not a finite non-negative number, including the empty string, is 0.
// ParseAmount never fails: entering figures must not be interrupted.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	if d, ok := parseRadix(s); ok {
		return sanitize(d)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		// notations understood by ParseFloat only.
		d = decimal.NewFromFloat(f)
	}
	return sanitize(d)
}

// radixes are the integer prefixes accepted in figures.
var radixes = map[string]int{"0x": 16, "0o": 8, "0b": 2}

// parseRadix reads an unsigned integer written with a radix prefix, like 0x1A.
// ok is false when s has no such prefix; a malformed number is then 0.
func parseRadix(s string) (d decimal.Decimal, ok bool) {
	if len(s) < 2 {
		return decimal.Zero, false
	}
	base, found := radixes[strings.ToLower(s[:2])]
	if !found {
		return decimal.Zero, false
	}
	digits := s[2:]
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return decimal.Zero, true
	}
	i, valid := new(big.Int).SetString(digits, base)
	if !valid {
		return decimal.Zero, true
	}
	return decimal.NewFromBigInt(i, 0), true
}

func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Decimal() decimal.Decimal  { return a.value }
func (a Amount) Float64() float64          { return a.value.InexactFloat64() }
func (a Amount) String() string            { return a.value.String() }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON reads a JSON number (or a quoted number). Negative values read
// as 0.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = sanitize(d)
	return nil
}
