// Package phparray implements an insertion-ordered associative array with
// text keys: an open-addressing hash table with linear probing whose nodes
// are also threaded on a doubly linked list in insertion order.
//
// An Array is not safe for concurrent use.
package phparray

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Pair[V any] struct {
	Key   string
	Value V
}

func (p Pair[V]) String() string {
	return fmt.Sprintf("%s:%v", p.Key, p.Value)
}

type Array[V any] struct {
	t       *table[V]
	cursor  *Cursor[V]
	compare func(a, b V) int
	conf    config
	log     *log.Entry
}

func New[V any](opts ...Option) *Array[V] {
	return newArray[V](newConfig(opts))
}

// NewWithComparator returns an Array whose Sort and Asort order values with
// compare.
func NewWithComparator[V any](compare func(a, b V) int, opts ...Option) *Array[V] {
	a := New[V](opts...)
	a.compare = compare
	return a
}

func newArray[V any](conf config) *Array[V] {
	t := newTable[V](conf.capacity, conf.hash, conf.logger)
	return &Array[V]{
		t:      t,
		cursor: newCursor(t),
		conf:   conf,
		log:    conf.logger,
	}
}

func (a *Array[V]) Put(key any, value V) {
	wasEmpty := a.t.n == 0
	if a.t.put(Key(key), value) && wasEmpty {
		a.cursor.Reset()
	}
}

func (a *Array[V]) Get(key any) (v V, ok bool) {
	h, found := a.t.lookup(Key(key))
	if !found {
		return v, false
	}
	return a.t.nodes.At(h).value, true
}

func (a *Array[V]) Contains(key any) bool {
	_, found := a.t.lookup(Key(key))
	return found
}

// Unset removes key if present. The built-in cursor is moved off the removed
// node; external cursors positioned on it reset on their next call.
func (a *Array[V]) Unset(key any) {
	k := Key(key)
	h, found := a.t.lookup(k)
	if !found {
		return
	}
	nd := a.t.nodes.At(h)
	a.cursor.forget(h, nd.prev, nd.next)
	a.t.remove(k)
}

func (a *Array[V]) Len() int {
	return a.t.n
}

// Cap returns the number of cells in the slot table.
func (a *Array[V]) Cap() int {
	return a.t.capacity()
}

func (a *Array[V]) Keys() []string {
	return a.t.keys()
}

func (a *Array[V]) Values() []V {
	return a.t.values()
}

func (a *Array[V]) Pairs() []Pair[V] {
	return a.t.pairs()
}

func (a *Array[V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	a.t.each(func(h int, nd *node[V]) bool {
		if h != a.t.root {
			sb.WriteByte(' ')
		}
		_, _ = fmt.Fprintf(&sb, "%s:%v", nd.key, nd.value)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
