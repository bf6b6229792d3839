package phparray

func (t *table[V]) appendTail(h int) {
	t.linkBetween(h, t.tail, nilIndex)
}

// linkBetween splices h in between prev and next, either of which may be
// nilIndex to mean the root or tail end.
func (t *table[V]) linkBetween(h, prev, next int) {
	nd := t.nodes.At(h)
	nd.prev = prev
	nd.next = next
	if prev == nilIndex {
		t.root = h
	} else {
		t.nodes.At(prev).next = h
	}
	if next == nilIndex {
		t.tail = h
	} else {
		t.nodes.At(next).prev = h
	}
}

func (t *table[V]) unlink(h int) {
	nd := t.nodes.At(h)
	if nd.prev == nilIndex {
		t.root = nd.next
	} else {
		t.nodes.At(nd.prev).next = nd.next
	}
	if nd.next == nilIndex {
		t.tail = nd.prev
	} else {
		t.nodes.At(nd.next).prev = nd.prev
	}
	nd.prev = nilIndex
	nd.next = nilIndex
}

// each visits live nodes from root to tail until fn returns false.
func (t *table[V]) each(fn func(h int, nd *node[V]) bool) {
	for h := t.root; h != nilIndex; {
		nd := t.nodes.At(h)
		next := nd.next
		if !fn(h, nd) {
			return
		}
		h = next
	}
}

func (t *table[V]) keys() []string {
	arr := make([]string, 0, t.n)
	t.each(func(_ int, nd *node[V]) bool {
		arr = append(arr, nd.key)
		return true
	})
	return arr
}

func (t *table[V]) values() []V {
	arr := make([]V, 0, t.n)
	t.each(func(_ int, nd *node[V]) bool {
		arr = append(arr, nd.value)
		return true
	})
	return arr
}

func (t *table[V]) pairs() []Pair[V] {
	arr := make([]Pair[V], 0, t.n)
	t.each(func(_ int, nd *node[V]) bool {
		arr = append(arr, Pair[V]{Key: nd.key, Value: nd.value})
		return true
	})
	return arr
}
