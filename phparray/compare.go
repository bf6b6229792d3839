package phparray

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Comparer is implemented by value types that know their own order.
type Comparer[V any] interface {
	Compare(other V) int
}

// NewOrdered returns an Array of a built-in ordered type whose sorts never
// fail.
func NewOrdered[V constraints.Ordered](opts ...Option) *Array[V] {
	return NewWithComparator(compareOrdered[V], opts...)
}

func compareOrdered[V constraints.Ordered](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

type family int

const (
	familyNone family = iota
	familySigned
	familyUnsigned
	familyFloat
	familyString
)

func familyOf(v reflect.Value) family {
	if !v.IsValid() {
		return familyNone
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return familySigned
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return familyUnsigned
	case reflect.Float32, reflect.Float64:
		return familyFloat
	case reflect.String:
		return familyString
	default:
		return familyNone
	}
}

// comparator resolves how values are ordered. Every value is checked up
// front so a failing sort leaves the Array untouched.
func (a *Array[V]) comparator(values []V) (func(x, y V) int, error) {
	if a.compare != nil {
		return a.compare, nil
	}
	if len(values) == 0 {
		return nil, nil
	}
	if compare, ok := comparerOf(values); ok {
		return compare, nil
	}
	f := familyOf(reflect.ValueOf(values[0]))
	for _, v := range values {
		if g := familyOf(reflect.ValueOf(v)); g == familyNone || g != f {
			return nil, fmt.Errorf("%w: %T is not ordered with %T", ErrTypeMismatch, v, values[0])
		}
	}
	return func(x, y V) int {
		return compareFamily(f, reflect.ValueOf(x), reflect.ValueOf(y))
	}, nil
}

func comparerOf[V any](values []V) (func(x, y V) int, bool) {
	for _, v := range values {
		if _, ok := any(v).(Comparer[V]); !ok {
			return nil, false
		}
	}
	return func(x, y V) int {
		return any(x).(Comparer[V]).Compare(y)
	}, true
}

func compareFamily(f family, x, y reflect.Value) int {
	switch f {
	case familySigned:
		return compareOrdered(x.Int(), y.Int())
	case familyUnsigned:
		return compareOrdered(x.Uint(), y.Uint())
	case familyFloat:
		return compareOrdered(x.Float(), y.Float())
	default:
		return compareOrdered(x.String(), y.String())
	}
}
