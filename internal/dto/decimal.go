package dto

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"
)

// LenientDecimal is a decimal that tolerates sloppy client input. Numbers,
// numeric strings, null, empty strings and outright garbage all decode
// without error; anything that isn't a parseable number becomes zero.
type LenientDecimal struct {
	decimal.Decimal
}

// NewLenientDecimal wraps a decimal.Decimal.
func NewLenientDecimal(d decimal.Decimal) LenientDecimal {
	return LenientDecimal{Decimal: d}
}

// UnmarshalJSON decodes a JSON number, a quoted numeric string, or anything
// else (as zero).
func (ld *LenientDecimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		ld.Decimal = decimal.Zero
		return nil
	}
	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		ld.Decimal = decimal.Zero
		return nil
	}
	ld.Decimal = d
	return nil
}

// MarshalJSON renders the wrapped decimal.
func (ld LenientDecimal) MarshalJSON() ([]byte, error) {
	return ld.Decimal.MarshalJSON()
}
