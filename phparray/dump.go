package phparray

import (
	"fmt"
	"io"
)

// Dump writes the raw slot table, one cell per line.
func (a *Array[V]) Dump(w io.Writer) error {
	for i, h := range a.t.slots {
		var err error
		if h == nilIndex {
			_, err = fmt.Fprintf(w, "%d: null\n", i)
		} else {
			nd := a.t.nodes.At(h)
			_, err = fmt.Fprintf(w, "%d: key=%s value=%v\n", i, nd.key, nd.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
