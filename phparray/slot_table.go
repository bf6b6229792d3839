package phparray

import (
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/phparray/utils/collections"
	"github.com/tuannh982/phparray/utils/math"
)

const nilIndex = -1

type node[V any] struct {
	key   string
	value V
	prev  int
	next  int
}

// table is the open-addressing slot array plus the order list threaded
// through the same nodes. Cells hold arena handles, never node copies, so a
// node keeps its handle when the cluster walk moves it to another cell.
type table[V any] struct {
	slots []int
	nodes collections.Arena[node[V]]
	root  int
	tail  int
	n     int
	// bumped on every rebuild (grow, sort), cursors compare against it
	gen  uint64
	hash HashFunc
	log  *log.Entry
}

func newTable[V any](capacity int, hash HashFunc, logger *log.Entry) *table[V] {
	slots := make([]int, capacity)
	for i := range slots {
		slots[i] = nilIndex
	}
	return &table[V]{
		slots: slots,
		nodes: collections.NewArena[node[V]](math.DivFloor(capacity, 2)),
		root:  nilIndex,
		tail:  nilIndex,
		hash:  hash,
		log:   logger,
	}
}

func (t *table[V]) capacity() int {
	return len(t.slots)
}

func (t *table[V]) home(key string) int {
	return math.NonNegMod(t.hash(key), t.capacity())
}

// probe walks from the home cell of key until it finds the cell holding key
// or an empty cell. n < capacity keeps at least one cell empty.
func (t *table[V]) probe(key string) (int, bool) {
	m := t.capacity()
	for i := t.home(key); ; i = (i + 1) % m {
		h := t.slots[i]
		if h == nilIndex {
			return i, false
		}
		if t.nodes.At(h).key == key {
			return i, true
		}
	}
}

func (t *table[V]) lookup(key string) (int, bool) {
	i, found := t.probe(key)
	if !found {
		return nilIndex, false
	}
	return t.slots[i], true
}

// put reports whether a new node was created. An existing key keeps its
// position in the order list.
func (t *table[V]) put(key string, value V) bool {
	if t.n >= math.DivFloor(t.capacity(), 2) {
		t.grow(2 * t.capacity())
	}
	i, found := t.probe(key)
	if found {
		t.nodes.At(t.slots[i]).value = value
		return false
	}
	h := t.nodes.Alloc(node[V]{key: key, value: value, prev: nilIndex, next: nilIndex})
	t.slots[i] = h
	t.appendTail(h)
	t.n++
	return true
}

func (t *table[V]) grow(capacity int) {
	t.log.WithFields(log.Fields{
		"size": t.n,
		"from": t.capacity(),
		"to":   capacity,
	}).Debug("resizing slot table")
	fresh := newTable[V](capacity, t.hash, t.log)
	t.each(func(_ int, nd *node[V]) bool {
		fresh.put(nd.key, nd.value)
		return true
	})
	t.replace(fresh)
}

// replace swaps in a rebuilt table and invalidates every cursor.
func (t *table[V]) replace(fresh *table[V]) {
	fresh.gen = t.gen + 1
	*t = *fresh
}

// remove deletes key and repairs the rest of its cluster. It reports whether
// the key was present.
func (t *table[V]) remove(key string) bool {
	i, found := t.probe(key)
	if !found {
		return false
	}
	h := t.slots[i]
	t.unlink(h)
	t.slots[i] = nilIndex
	t.n--
	if err := t.nodes.Free(h); err != nil {
		t.log.WithError(err).WithField("key", key).Error("free node")
	}

	m := t.capacity()
	for j := (i + 1) % m; t.slots[j] != nilIndex; j = (j + 1) % m {
		moved := t.slots[j]
		t.slots[j] = nilIndex
		t.n--
		t.rehash(moved)
	}
	return true
}

// rehash places an already linked node into the first free cell of its probe
// sequence. Its order list links are left untouched.
func (t *table[V]) rehash(h int) {
	nd := t.nodes.At(h)
	i, _ := t.probe(nd.key)
	t.slots[i] = h
	t.n++
	t.log.WithFields(log.Fields{"key": nd.key, "slot": i}).Debug("key rehashed")
}
