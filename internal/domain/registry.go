package domain

import (
	"fmt"
	"strings"
)

// registry is the dispatch table from domain name to instantiation, in
// report order.
var registry = []Domain{
	newNumeric[int8]("int8"),
	newNumeric[int16]("int16"),
	newNumeric[int32]("int32"),
	newNumeric[int64]("int64"),
	newNumeric[int]("int"),
	newNumeric[uint8]("uint8"),
	newNumeric[uint16]("uint16"),
	newNumeric[uint32]("uint32"),
	newNumeric[uint64]("uint64"),
	newNumeric[uint]("uint"),
	newNumeric[uintptr]("uintptr"),
	newNumeric[float32]("float32"),
	newNumeric[float64]("float64"),
}

var aliases = map[string]string{
	"byte": "uint8",
	"rune": "int32",
}

// Lookup returns the domain registered under name. Names are
// case-insensitive; byte and rune resolve to uint8 and int32.
func Lookup(name string) (Domain, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	for _, d := range registry {
		if d.Name() == key {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, name)
}

// All returns every registered domain in report order.
func All() []Domain {
	out := make([]Domain, len(registry))
	copy(out, registry)
	return out
}

// Names returns the canonical domain names in report order.
func Names() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.Name()
	}
	return names
}

// Resolve looks up every name and returns the matching domains in report
// order without duplicates. An empty list selects all domains.
func Resolve(names []string) ([]Domain, error) {
	if len(names) == 0 {
		return All(), nil
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		d, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		want[d.Name()] = true
	}
	out := make([]Domain, 0, len(want))
	for _, d := range registry {
		if want[d.Name()] {
			out = append(out, d)
		}
	}
	return out, nil
}
