package dto

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Money is written as a JSON number and read from a number or a string.
type Money decimal.Decimal

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	d, err := decimal.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}
	*m = Money(d)
	return nil
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.Decimal(m)
}
