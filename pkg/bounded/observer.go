package bounded

// Observer receives the progress of a bounded loop. Step indices start at
// zero.
type Observer[T Number] interface {
	// Step is called after step i was applied, with the new value.
	Step(i uint64, current T)

	// Halt is called when step i would cross the boundary, with the value
	// the step would have been applied to. No further calls follow.
	Halt(i uint64, current T)
}

// Trace is an Observer that records how far a loop got.
type Trace[T Number] struct {
	// Applied is the number of steps taken.
	Applied uint64

	// Halted is set when the loop stopped at the boundary.
	Halted bool

	// HaltedAt is the index of the step that was refused.
	HaltedAt uint64

	// Last is the value after the last applied step, or the start value
	// when no step was applied before halting.
	Last T
}

// Step records an applied step.
func (t *Trace[T]) Step(i uint64, current T) {
	t.Applied++
	t.Last = current
}

// Halt records the refused step.
func (t *Trace[T]) Halt(i uint64, current T) {
	t.Halted = true
	t.HaltedAt = i
	t.Last = current
}
