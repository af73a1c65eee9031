package contracts

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is a fixed-point amount with two fractional digits, held as minor
// units (cents). On the wire it reads like "12.50".
type Money int64

// MoneyFromUnits builds a Money from whole units and cents, e.g.
// MoneyFromUnits(12, 50) == "12.50".
func MoneyFromUnits(units int64, cents int64) Money {
	return Money(units*100 + cents)
}

// Mul returns the amount multiplied by a quantity.
func (m Money) Mul(qty int) Money {
	return m * Money(qty)
}

// String renders the two-digit wire form.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalText implements encoding.TextMarshaler.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the
// canonical "12.50" form as well as bare integers and amounts with one or
// more fractional digits (extra digits are truncated).
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := ParseMoney(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMoney parses a decimal amount string into minor units.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("parse money: empty string")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse money %q: %w", s, err)
	}

	var cents int64
	if frac != "" {
		// Normalize to exactly two fractional digits.
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse money %q: %w", s, err)
		}
	}

	v := Money(units*100 + cents)
	if neg {
		v = -v
	}
	return v, nil
}
