package phparray

// Cursor is a position in the insertion order of an Array. It is pinned to
// the table generation and node stamps it last saw; when either has moved on
// the cursor starts over from the first element.
type Cursor[V any] struct {
	t         *table[V]
	gen       uint64
	current   int
	currStamp uint64
	previous  int
	prevStamp uint64
}

func newCursor[V any](t *table[V]) *Cursor[V] {
	c := &Cursor[V]{t: t}
	c.Reset()
	return c
}

func (c *Cursor[V]) point(current, previous int) {
	c.gen = c.t.gen
	c.current = current
	c.currStamp = c.t.nodes.Stamp(current)
	c.previous = previous
	c.prevStamp = c.t.nodes.Stamp(previous)
}

func (c *Cursor[V]) stale() bool {
	if c.gen != c.t.gen {
		return true
	}
	if c.current != nilIndex && c.t.nodes.Stamp(c.current) != c.currStamp {
		return true
	}
	return c.previous != nilIndex && c.t.nodes.Stamp(c.previous) != c.prevStamp
}

func (c *Cursor[V]) sync() {
	if c.stale() {
		c.Reset()
	}
}

// forget moves the cursor off h before h is removed.
func (c *Cursor[V]) forget(h, prev, next int) {
	if c.stale() {
		return
	}
	current, previous := c.current, c.previous
	if current == h {
		current = next
	}
	if previous == h {
		previous = prev
	}
	c.point(current, previous)
}

func (c *Cursor[V]) Reset() {
	c.point(c.t.root, nilIndex)
}

// Each returns the pair under the cursor and advances it. It returns false
// once the cursor has run off the end; call Reset to start again.
func (c *Cursor[V]) Each() (Pair[V], bool) {
	c.sync()
	if c.current == nilIndex {
		return Pair[V]{}, false
	}
	nd := c.t.nodes.At(c.current)
	p := Pair[V]{Key: nd.key, Value: nd.value}
	previous := c.previous
	if nd.prev != nilIndex {
		previous = nd.prev
	}
	c.point(nd.next, previous)
	return p, true
}

// Prev moves the cursor back to the remembered previous position and returns
// the value there.
func (c *Cursor[V]) Prev() (v V, ok bool) {
	c.sync()
	current := c.previous
	previous := c.previous
	if current == c.t.root {
		previous = nilIndex
	} else if previous != nilIndex {
		previous = c.t.nodes.At(current).prev
	}
	c.point(current, previous)
	if current == nilIndex {
		return v, false
	}
	return c.t.nodes.At(current).value, true
}

// Cursor returns a new cursor positioned at the first element, independent
// of the Array's built-in one.
func (a *Array[V]) Cursor() *Cursor[V] {
	return newCursor(a.t)
}

func (a *Array[V]) Each() (Pair[V], bool) {
	return a.cursor.Each()
}

func (a *Array[V]) Prev() (V, bool) {
	return a.cursor.Prev()
}

func (a *Array[V]) Reset() {
	a.cursor.Reset()
}
