// Package domain holds the driver-side model of boundcheck: the table of
// numeric domains the CLI can probe, the operations it can run and the
// outcome record every run produces.
//
// # Domains
//
// Each [Domain] is a generic instantiation of the bounded operations for
// one Go numeric type, reachable by name through [Lookup]. Values cross
// this boundary as decimal strings so callers never handle the concrete
// type.
//
// # Outcomes
//
// An [Outcome] records what a single call returned and how far the loop
// got. Its [Status] separates a saturated result from one that landed
// exactly on the boundary, which the returned value alone cannot do.
package domain
