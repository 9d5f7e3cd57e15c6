package bounded

// Decumulate subtracts decrement from start steps times. If a step would
// go below the minimum of T, it stops and returns that minimum.
//
// The decrement is assumed to be non-negative. Signed and float domains
// check against Min+decrement; unsigned domains check against decrement
// alone.
func Decumulate[T Number](start, decrement T, steps uint64) T {
	return DecumulateObserved(start, decrement, steps, nil)
}

// DecumulateObserved is Decumulate with progress reported to obs. A nil
// obs is allowed.
func DecumulateObserved[T Number](start, decrement T, steps uint64, obs Observer[T]) T {
	lim := LimitsOf[T]()
	underflows := signedUnderflow[T]
	if lim.Kind == KindUnsigned {
		underflows = unsignedUnderflow[T]
	}

	result := start
	for i := uint64(0); i < steps; i++ {
		if underflows(result, decrement, lim.Min) {
			if obs != nil {
				obs.Halt(i, result)
			}
			return lim.Min
		}
		result -= decrement
		if obs != nil {
			obs.Step(i, result)
		}
	}

	return result
}

// signedUnderflow reports whether current-decrement would fall below floor.
func signedUnderflow[T Number](current, decrement, floor T) bool {
	return current < floor+decrement
}

// unsignedUnderflow is the unsigned variant. floor is always zero, so
// floor+decrement is decrement itself.
func unsignedUnderflow[T Number](current, decrement, _ T) bool {
	return current < decrement
}
