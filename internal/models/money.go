package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Money is an amount in minor currency units (VND has no subunit, so 1 = 1đ).
type Money int64

// UnmarshalJSON accepts integers, floats (the backend stores fees as REAL),
// numeric strings and null. Negative amounts are clamped to zero.
func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*m = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*m = 0
			return nil
		}
		b = []byte(s)
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("money: parse %q: %w", b, err)
	}
	if f < 0 || math.IsNaN(f) {
		f = 0
	}
	*m = Money(math.Round(f))
	return nil
}
