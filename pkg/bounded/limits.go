package bounded

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric domains accepted by the bounded operations.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind classifies a numeric domain by how its lower bound behaves.
type Kind uint8

const (
	// KindSigned covers int, int8, int16, int32 and int64.
	KindSigned Kind = iota + 1
	// KindUnsigned covers uint, uint8, uint16, uint32, uint64 and uintptr.
	KindUnsigned
	// KindFloat covers float32 and float64.
	KindFloat
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Limits describes the representable range of a numeric domain.
type Limits[T Number] struct {
	Min  T
	Max  T
	Kind Kind
	Bits int
}

// LimitsOf returns the limits of T. Named types resolve through their
// underlying type.
func LimitsOf[T Number]() Limits[T] {
	t := reflect.TypeFor[T]()
	bits := t.Bits()
	lo := reflect.New(t).Elem()
	hi := reflect.New(t).Elem()

	var kind Kind
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		kind = KindSigned
		lo.SetInt(math.MinInt64 >> (64 - bits))
		hi.SetInt(math.MaxInt64 >> (64 - bits))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		kind = KindUnsigned
		hi.SetUint(math.MaxUint64 >> (64 - bits))
	case reflect.Float32:
		kind = KindFloat
		lo.SetFloat(-math.MaxFloat32)
		hi.SetFloat(math.MaxFloat32)
	case reflect.Float64:
		kind = KindFloat
		lo.SetFloat(-math.MaxFloat64)
		hi.SetFloat(math.MaxFloat64)
	}

	return Limits[T]{
		Min:  lo.Interface().(T),
		Max:  hi.Interface().(T),
		Kind: kind,
		Bits: bits,
	}
}

// Max returns the largest finite value of T.
func Max[T Number]() T {
	return LimitsOf[T]().Max
}

// Min returns the smallest finite value of T: zero for unsigned domains,
// -Max for floats.
func Min[T Number]() T {
	return LimitsOf[T]().Min
}

// KindOf returns the sign classification of T.
func KindOf[T Number]() Kind {
	return LimitsOf[T]().Kind
}

// IsSigned reports whether T can represent negative values. Floats count
// as signed.
func IsSigned[T Number]() bool {
	return KindOf[T]() != KindUnsigned
}
