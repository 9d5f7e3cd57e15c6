// Package bounded provides repeated addition and subtraction over any Go
// numeric type that stops at the type's limits instead of wrapping.
//
// Both operations check the next step before taking it. When a step would
// cross the boundary, the loop halts and the boundary itself is returned:
// [Accumulate] returns the type's maximum, [Decumulate] its minimum.
//
// # Usage
//
//	v := bounded.Accumulate[uint8](0, 51, 6)  // 255, saturated on step 6
//	w := bounded.Decumulate[int8](127, 51, 5) // -128, exact
//
// The returned value alone does not say whether the loop saturated or
// landed exactly on the boundary. Callers that need to tell the two apart
// pass an [Observer], such as [Trace], to [AccumulateObserved] or
// [DecumulateObserved].
//
// # Domains
//
// Any type whose underlying type is a Go integer or float is accepted.
// Signed integers and floats check against Min+delta; unsigned integers
// check against delta alone, since their minimum is zero. The minimum of a
// float type is the most negative finite value, not negative infinity.
//
// # Version
//
// Current version: 1.0.0
//
// The same value is available as [Version].
package bounded
