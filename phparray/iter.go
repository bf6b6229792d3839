package phparray

import "iter"

// All yields key/value pairs in insertion order. The successor is read after
// each yield, so the consumer may unset keys mid-pass. The pass ends early if
// the table is rebuilt underneath it.
func (a *Array[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		t := a.t
		gen := t.gen
		for h := t.root; h != nilIndex && t.gen == gen && t.nodes.Live(h); {
			nd := t.nodes.At(h)
			stamp := t.nodes.Stamp(h)
			next := nd.next
			if !yield(nd.key, nd.value) {
				return
			}
			if t.gen != gen {
				return
			}
			// a removed node keeps no links, fall back to the successor seen before
			if t.nodes.Stamp(h) == stamp {
				next = t.nodes.At(h).next
			}
			h = next
		}
	}
}

// Iter yields values only, in insertion order. Each call starts a new pass.
func (a *Array[V]) Iter() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}
