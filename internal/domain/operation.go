package domain

import (
	"fmt"
	"strings"
)

// Operation names a bounded operation.
type Operation string

const (
	OpAccumulate Operation = "accumulate"
	OpDecumulate Operation = "decumulate"
)

// Operations returns every operation in report order.
func Operations() []Operation {
	return []Operation{OpAccumulate, OpDecumulate}
}

// ParseOperation resolves a case-insensitive operation name. "add" and
// "sub" are accepted as shorthands.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accumulate", "add":
		return OpAccumulate, nil
	case "decumulate", "sub":
		return OpDecumulate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool {
	return o == OpAccumulate || o == OpDecumulate
}

// verb is the word used in halt messages.
func (o Operation) verb() string {
	if o == OpDecumulate {
		return "underflow"
	}
	return "overflow"
}
