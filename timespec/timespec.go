// SPDX-License-Identifier: EPL-2.0

package timespec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HMS is an hour/minute/second triple. Minutes and seconds may
// overflow or underflow their usual range; Seconds carries the
// excess, so HMS{0, 90, 0} and HMS{1, 30, 0} normalize equally.
type HMS struct {
	H, M, S float64
}

// Seconds normalizes a time-like value into seconds.
//
// Accepted shapes:
//   - any integer or float type: taken as seconds
//   - HMS: hour/minute/second triple with carry
//   - string: "H:M:S" or "H:M:S.frac" (also "M:S" and bare seconds)
//
// Anything else fails with ErrTimeParse.
func Seconds(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int8:
		return float64(t), nil
	case int16:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint:
		return float64(t), nil
	case uint8:
		return float64(t), nil
	case uint16:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case HMS:
		return t.H*3600 + t.M*60 + t.S, nil
	case string:
		return parseClock(t)
	default:
		return 0, fmt.Errorf("%w: %T", ErrTimeParse, v)
	}
}

// parseClock parses "H:M:S[.frac]", "M:S[.frac]" or a bare number.
func parseClock(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrTimeParse, s)
	}

	total := 0.0
	for _, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrTimeParse, s)
		}
		total = total*60 + f
	}

	return total, nil
}

// Add normalizes every operand and returns their sum in seconds.
func Add(vals ...any) (float64, error) {
	total := 0.0
	for _, v := range vals {
		sec, err := Seconds(v)
		if err != nil {
			return 0, err
		}
		total += sec
	}

	return total, nil
}

// Sub normalizes both operands and returns a-b in seconds.
func Sub(a, b any) (float64, error) {
	sa, err := Seconds(a)
	if err != nil {
		return 0, err
	}
	sb, err := Seconds(b)
	if err != nil {
		return 0, err
	}

	return sa - sb, nil
}

// Format renders seconds as a zero-padded "HH:MM:SS.sss" string.
// Negative values carry a leading minus sign.
func Format(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	// Round to millisecond first so 59.9996 does not render as 60.000.
	ms := math.Round(seconds * 1000)
	h := int(ms / 3600000)
	ms -= float64(h) * 3600000
	m := int(ms / 60000)
	ms -= float64(m) * 60000
	sec := ms / 1000

	return fmt.Sprintf("%s%02d:%02d:%06.3f", sign, h, m, sec)
}
