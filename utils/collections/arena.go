package collections

import "fmt"

// Arena stores records addressed by stable int handles. A freed handle is
// recycled by a later Alloc; Stamp tells the old and new occupant apart.
type Arena[V any] interface {
	Alloc(v V) int
	Free(h int) error
	At(h int) *V
	Live(h int) bool
	Stamp(h int) uint64
	Size() int
}

type slot[V any] struct {
	value V
	stamp uint64
	live  bool
}

type arena[V any] struct {
	entries []slot[V]
	free    Stack[int]
	size    int
	stamp   uint64
}

func NewArena[V any](capacity int) Arena[V] {
	return &arena[V]{
		entries: make([]slot[V], 0, capacity),
		free:    NewStack[int](),
	}
}

func (a *arena[V]) Alloc(v V) int {
	a.stamp++
	a.size++
	if a.free.Size() > 0 {
		h := a.free.Pop()
		a.entries[h] = slot[V]{value: v, stamp: a.stamp, live: true}
		return h
	}
	a.entries = append(a.entries, slot[V]{value: v, stamp: a.stamp, live: true})
	return len(a.entries) - 1
}

func (a *arena[V]) Free(h int) error {
	if !a.Live(h) {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	var zero V
	a.entries[h].value = zero
	a.entries[h].live = false
	a.free.Push(h)
	a.size--
	return nil
}

// At panics on a dead handle.
func (a *arena[V]) At(h int) *V {
	if !a.Live(h) {
		panic(fmt.Errorf("%w: %d", ErrInvalidHandle, h))
	}
	return &a.entries[h].value
}

func (a *arena[V]) Live(h int) bool {
	return h >= 0 && h < len(a.entries) && a.entries[h].live
}

// Stamp returns 0 for a dead handle.
func (a *arena[V]) Stamp(h int) uint64 {
	if !a.Live(h) {
		return 0
	}
	return a.entries[h].stamp
}

func (a *arena[V]) Size() int {
	return a.size
}

func (a arena[V]) String() string {
	return fmt.Sprintf("arena(size=%d, cap=%d, free=%v)", a.size, len(a.entries), a.free)
}
