package domain

// Status classifies how a bounded call ended.
type Status string

const (
	// StatusExact means every step was applied and the result is not a
	// boundary value.
	StatusExact Status = "exact"

	// StatusBoundary means every step was applied and the result landed
	// exactly on the boundary.
	StatusBoundary Status = "boundary"

	// StatusSaturated means the loop halted early and returned the
	// boundary.
	StatusSaturated Status = "saturated"
)

// Outcome is the record of one bounded call. Values are decimal strings
// in the notation of the domain.
type Outcome struct {
	Domain    string    `json:"domain" yaml:"domain"`
	Kind      string    `json:"kind" yaml:"kind"`
	Operation Operation `json:"operation" yaml:"operation"`
	Start     string    `json:"start" yaml:"start"`
	Delta     string    `json:"delta" yaml:"delta"`
	Steps     uint64    `json:"steps" yaml:"steps"`
	Result    string    `json:"result" yaml:"result"`
	Boundary  string    `json:"boundary" yaml:"boundary"`
	Applied   uint64    `json:"applied" yaml:"applied"`
	Status    Status    `json:"status" yaml:"status"`

	// HaltedAt is the zero-based index of the refused step.
	HaltedAt *uint64 `json:"halted_at,omitempty" yaml:"halted_at,omitempty"`

	// HaltedFrom is the value the refused step would have been applied to.
	HaltedFrom string `json:"halted_from,omitempty" yaml:"halted_from,omitempty"`
}

// Saturated reports whether the loop halted at the boundary.
func (o Outcome) Saturated() bool {
	return o.Status == StatusSaturated
}

// Event returns the halt message for a saturated outcome, e.g.
// "overflow detected".
func (o Outcome) Event() string {
	return o.Operation.verb() + " detected"
}

// Info describes a domain for listings.
type Info struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
	Bits int    `json:"bits" yaml:"bits"`
	Min  string `json:"min" yaml:"min"`
	Max  string `json:"max" yaml:"max"`
}
