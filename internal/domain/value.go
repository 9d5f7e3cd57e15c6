package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/boundcheck/pkg/bounded"
)

// formatValue renders v in decimal. Floats use the shortest representation
// that round-trips at the domain's precision.
func formatValue[T bounded.Number](lim bounded.Limits[T], v T) string {
	switch lim.Kind {
	case bounded.KindUnsigned:
		return strconv.FormatUint(uint64(v), 10)
	case bounded.KindFloat:
		return strconv.FormatFloat(float64(v), 'g', -1, lim.Bits)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

// parseValue reads a decimal string into T, rejecting anything T cannot
// represent.
func parseValue[T bounded.Number](lim bounded.Limits[T], s string) (T, error) {
	s = strings.TrimSpace(s)
	switch lim.Kind {
	case bounded.KindUnsigned:
		u, err := strconv.ParseUint(s, 10, lim.Bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return T(u), nil
	case bounded.KindFloat:
		f, err := strconv.ParseFloat(s, lim.Bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return T(f), nil
	default:
		i, err := strconv.ParseInt(s, 10, lim.Bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return T(i), nil
	}
}

// probeDelta is Max/divisor, computed wide so the divisor is never
// truncated to T first.
func probeDelta[T bounded.Number](lim bounded.Limits[T], divisor uint64) T {
	if divisor == 0 {
		return 0
	}
	if lim.Kind == bounded.KindFloat {
		return T(float64(lim.Max) / float64(divisor))
	}
	return T(uint64(lim.Max) / divisor)
}
