package phparray

import (
	"fmt"
	"reflect"
)

// Key coerces an arbitrary value to the text key it is stored under.
func Key(k any) string {
	switch v := k.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return stringerText(v)
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// text reports whether v is text-coercible, as array flipping requires.
// Numbers are not.
func text(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return stringerText(t), true
	case []byte:
		return string(t), true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// stringerText leaves nil pointers to fmt, which prints "<nil>" instead of
// calling String on a nil receiver.
func stringerText(s fmt.Stringer) string {
	if rv := reflect.ValueOf(s); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Sprint(s)
	}
	return s.String()
}
