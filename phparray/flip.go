package phparray

import (
	"fmt"
	"strings"
)

// Flip returns a new Array mapping each value to its key. Every value must
// be text: a string, []byte or fmt.Stringer. When values repeat, the last key
// wins.
func (a *Array[V]) Flip() (*Array[string], error) {
	pairs := a.t.pairs()
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		s, ok := text(p.Value)
		if !ok {
			return nil, fmt.Errorf("%w: cannot convert %T to string", ErrTypeMismatch, p.Value)
		}
		keys[i] = s
	}
	conf := a.conf
	conf.capacity = a.t.capacity()
	flipped := newArray[string](conf)
	flipped.compare = strings.Compare
	for i, p := range pairs {
		flipped.Put(keys[i], p.Key)
	}
	return flipped, nil
}
