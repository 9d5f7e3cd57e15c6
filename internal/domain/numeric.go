package domain

import (
	"fmt"
	"math"

	"github.com/bft-labs/boundcheck/pkg/bounded"
)

// Domain is one numeric type the driver can exercise.
type Domain interface {
	Name() string
	Kind() bounded.Kind
	Bits() int
	Info() Info

	// MaxDivisor is the largest probe divisor that still yields a
	// non-zero delta.
	MaxDivisor() uint64

	// Probe runs the reference experiment: accumulate from zero, or
	// decumulate from Max, by Max/Divisor for Steps steps. A divisor that
	// leaves a zero delta is rejected with ErrInvalidConfig.
	Probe(req ProbeRequest) (Outcome, error)

	// Run parses start and delta into the domain and runs op.
	Run(op Operation, start, delta string, steps uint64) (Outcome, error)
}

// ProbeRequest parameterizes Domain.Probe. Steps may differ from Divisor
// so the same delta can be pushed one step past the boundary.
type ProbeRequest struct {
	Operation Operation
	Divisor   uint64
	Steps     uint64
}

// numeric implements Domain for T.
type numeric[T bounded.Number] struct {
	name   string
	limits bounded.Limits[T]
}

func newNumeric[T bounded.Number](name string) Domain {
	return numeric[T]{name: name, limits: bounded.LimitsOf[T]()}
}

func (n numeric[T]) Name() string       { return n.name }
func (n numeric[T]) Kind() bounded.Kind { return n.limits.Kind }
func (n numeric[T]) Bits() int          { return n.limits.Bits }

func (n numeric[T]) Info() Info {
	return Info{
		Name: n.name,
		Kind: n.limits.Kind.String(),
		Bits: n.limits.Bits,
		Min:  formatValue(n.limits, n.limits.Min),
		Max:  formatValue(n.limits, n.limits.Max),
	}
}

func (n numeric[T]) MaxDivisor() uint64 {
	if n.limits.Kind == bounded.KindFloat {
		return math.MaxUint64
	}
	return uint64(n.limits.Max)
}

func (n numeric[T]) Probe(req ProbeRequest) (Outcome, error) {
	if req.Divisor == 0 || req.Divisor > n.MaxDivisor() {
		return Outcome{}, fmt.Errorf("%w: divisor %d leaves a zero %s delta (max %d)",
			ErrInvalidConfig, req.Divisor, n.name, n.MaxDivisor())
	}
	var start T
	if req.Operation == OpDecumulate {
		start = n.limits.Max
	}
	return n.exec(req.Operation, start, probeDelta(n.limits, req.Divisor), req.Steps)
}

func (n numeric[T]) Run(op Operation, start, delta string, steps uint64) (Outcome, error) {
	s, err := parseValue(n.limits, start)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s start: %w", n.name, err)
	}
	d, err := parseValue(n.limits, delta)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s delta: %w", n.name, err)
	}
	return n.exec(op, s, d, steps)
}

func (n numeric[T]) exec(op Operation, start, delta T, steps uint64) (Outcome, error) {
	trace := &bounded.Trace[T]{}

	var result, boundary T
	switch op {
	case OpAccumulate:
		boundary = n.limits.Max
		result = bounded.AccumulateObserved[T](start, delta, steps, trace)
	case OpDecumulate:
		boundary = n.limits.Min
		result = bounded.DecumulateObserved[T](start, delta, steps, trace)
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	o := Outcome{
		Domain:    n.name,
		Kind:      n.limits.Kind.String(),
		Operation: op,
		Start:     formatValue(n.limits, start),
		Delta:     formatValue(n.limits, delta),
		Steps:     steps,
		Result:    formatValue(n.limits, result),
		Boundary:  formatValue(n.limits, boundary),
		Applied:   trace.Applied,
		Status:    StatusExact,
	}
	switch {
	case trace.Halted:
		at := trace.HaltedAt
		o.Status = StatusSaturated
		o.HaltedAt = &at
		o.HaltedFrom = formatValue(n.limits, trace.Last)
	case result == boundary:
		o.Status = StatusBoundary
	}
	return o, nil
}
