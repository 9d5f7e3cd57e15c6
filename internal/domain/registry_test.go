package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  error
	}{
		{name: "canonical", input: "int8", wantName: "int8"},
		{name: "case insensitive", input: " UINT64 ", wantName: "uint64"},
		{name: "byte alias", input: "byte", wantName: "uint8"},
		{name: "rune alias", input: "rune", wantName: "int32"},
		{name: "float", input: "float32", wantName: "float32"},
		{name: "unknown", input: "int128", wantErr: ErrUnknownDomain},
		{name: "empty", input: "", wantErr: ErrUnknownDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Lookup(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.input, err)
			}
			if d.Name() != tt.wantName {
				t.Errorf("Lookup(%q).Name() = %v, want %v", tt.input, d.Name(), tt.wantName)
			}
		})
	}
}

func TestNames(t *testing.T) {
	want := []string{
		"int8", "int16", "int32", "int64", "int",
		"uint8", "uint16", "uint32", "uint64", "uint", "uintptr",
		"float32", "float64",
	}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	ds, err := Resolve([]string{"float64", "byte", "uint8", "int8"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	var got []string
	for _, d := range ds {
		got = append(got, d.Name())
	}
	want := []string{"int8", "uint8", "float64"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}

	all, err := Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve(nil) error = %v", err)
	}
	if len(all) != len(Names()) {
		t.Errorf("Resolve(nil) returned %d domains, want %d", len(all), len(Names()))
	}

	if _, err := Resolve([]string{"int8", "decimal"}); !errors.Is(err, ErrUnknownDomain) {
		t.Errorf("Resolve() error = %v, want ErrUnknownDomain", err)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0] = nil
	if All()[0] == nil {
		t.Error("All() exposed the registry slice")
	}
}

func TestInfo(t *testing.T) {
	tests := []struct {
		domain string
		want   Info
	}{
		{"int8", Info{Name: "int8", Kind: "signed", Bits: 8, Min: "-128", Max: "127"}},
		{"uint16", Info{Name: "uint16", Kind: "unsigned", Bits: 16, Min: "0", Max: "65535"}},
		{"int64", Info{Name: "int64", Kind: "signed", Bits: 64, Min: "-9223372036854775808", Max: "9223372036854775807"}},
		{"uint64", Info{Name: "uint64", Kind: "unsigned", Bits: 64, Min: "0", Max: "18446744073709551615"}},
		{"float32", Info{Name: "float32", Kind: "float", Bits: 32, Min: "-3.4028235e+38", Max: "3.4028235e+38"}},
		{"float64", Info{Name: "float64", Kind: "float", Bits: 64, Min: "-1.7976931348623157e+308", Max: "1.7976931348623157e+308"}},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			d, err := Lookup(tt.domain)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, d.Info()); diff != "" {
				t.Errorf("Info() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
