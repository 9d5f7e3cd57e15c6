package bounded

// Accumulate adds increment to start steps times. If a step would exceed
// the maximum of T, it stops and returns that maximum.
//
// The increment is assumed to be non-negative; the check only guards
// against upward runaway. A negative increment is not rejected and
// behaves as the arithmetic of T dictates.
func Accumulate[T Number](start, increment T, steps uint64) T {
	return AccumulateObserved(start, increment, steps, nil)
}

// AccumulateObserved is Accumulate with progress reported to obs. A nil
// obs is allowed.
func AccumulateObserved[T Number](start, increment T, steps uint64, obs Observer[T]) T {
	ceiling := Max[T]()
	result := start

	for i := uint64(0); i < steps; i++ {
		// result+increment may itself overflow, so compare against the
		// remaining headroom instead.
		if result > ceiling-increment {
			if obs != nil {
				obs.Halt(i, result)
			}
			return ceiling
		}
		result += increment
		if obs != nil {
			obs.Step(i, result)
		}
	}

	return result
}
