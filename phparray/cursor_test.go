package phparray

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func drain[V any](each func() (Pair[V], bool)) []V {
	arr := make([]V, 0)
	for {
		p, ok := each()
		if !ok {
			return arr
		}
		arr = append(arr, p.Value)
	}
}

func TestEachMatchesValues(t *testing.T) {
	a := New[int]()
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		a.Put(k, i*10)
	}
	a.Unset("c")
	a.Reset()
	require.Equal(t, a.Values(), drain(a.Each))
	_, ok := a.Each()
	require.False(t, ok)
	a.Reset()
	require.Equal(t, a.Values(), drain(a.Each))
}

func TestEachOnEmpty(t *testing.T) {
	a := New[int]()
	_, ok := a.Each()
	require.False(t, ok)
	_, ok = a.Prev()
	require.False(t, ok)
	a.Put("a", 1)
	p, ok := a.Each()
	require.True(t, ok)
	require.Equal(t, Pair[int]{Key: "a", Value: 1}, p)
}

func TestPrev(t *testing.T) {
	a := New[string]()
	for _, k := range []string{"a", "b", "c", "d"} {
		a.Put(k, k)
	}
	for _, want := range []string{"a", "b", "c"} {
		p, ok := a.Each()
		require.True(t, ok)
		require.Equal(t, want, p.Key)
	}
	v, ok := a.Prev()
	require.True(t, ok)
	require.Equal(t, "b", v)
	v, ok = a.Prev()
	require.True(t, ok)
	require.Equal(t, "a", v)
	_, ok = a.Prev()
	require.False(t, ok)
	_, ok = a.Each()
	require.False(t, ok)

	a.Reset()
	p, ok := a.Each()
	require.True(t, ok)
	require.Equal(t, "a", p.Key)
}

func TestCursorResetsOnGrow(t *testing.T) {
	a := New[int](WithCapacity(4))
	a.Put("a", 1)
	a.Put("b", 2)
	p, _ := a.Each()
	require.Equal(t, "a", p.Key)
	a.Put("c", 3)
	require.Equal(t, 8, a.Cap())
	p, _ = a.Each()
	require.Equal(t, "a", p.Key)
}

func TestUnsetUnderCursor(t *testing.T) {
	a := New[int]()
	a.Put("a", 1)
	a.Put("b", 2)
	a.Put("c", 3)
	p, _ := a.Each()
	require.Equal(t, "a", p.Key)
	a.Unset("b")
	p, ok := a.Each()
	require.True(t, ok)
	require.Equal(t, "c", p.Key)
	_, ok = a.Each()
	require.False(t, ok)
}

func TestExternalCursors(t *testing.T) {
	a := New[int]()
	a.Put("a", 1)
	a.Put("b", 2)
	a.Put("c", 3)
	c := a.Cursor()

	p, _ := a.Each()
	require.Equal(t, "a", p.Key)
	p, _ = c.Each()
	require.Equal(t, "a", p.Key)
	p, _ = c.Each()
	require.Equal(t, "b", p.Key)
	p, _ = a.Each()
	require.Equal(t, "b", p.Key)

	// c now sits on "c"; removing it sends c back to the start
	a.Unset("c")
	p, ok := c.Each()
	require.True(t, ok)
	require.Equal(t, "a", p.Key)
}

func TestExternalCursorResetsOnRebuild(t *testing.T) {
	a := NewOrdered[int]()
	a.Put("x", 3)
	a.Put("y", 1)
	a.Put("z", 2)
	c := a.Cursor()
	p, _ := c.Each()
	require.Equal(t, "x", p.Key)
	require.Nil(t, a.Asort())
	p, _ = c.Each()
	require.Equal(t, "y", p.Key)
}

func TestIter(t *testing.T) {
	a := New[int]()
	a.Put("a", 1)
	a.Put("b", 2)
	a.Put("c", 3)
	require.Equal(t, []int{1, 2, 3}, slices.Collect(a.Iter()))
	require.Equal(t, []int{1, 2, 3}, slices.Collect(a.Iter()))

	keys := make([]string, 0)
	for k, v := range a.All() {
		keys = append(keys, k)
		if v == 2 {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, keys)

	// iteration does not move the built-in cursor
	p, _ := a.Each()
	require.Equal(t, "a", p.Key)
}

func TestAllWithUnsetDuringPass(t *testing.T) {
	a := New[int]()
	a.Put("a", 1)
	a.Put("b", 2)
	a.Put("c", 3)
	a.Put("d", 4)
	keys := make([]string, 0)
	for k := range a.All() {
		keys = append(keys, k)
		if k == "a" {
			a.Unset("b")
		}
		if k == "c" {
			a.Unset("c")
		}
	}
	require.Equal(t, []string{"a", "c", "d"}, keys)
	require.Equal(t, []string{"a", "d"}, a.Keys())
}

func TestIterStopsOnRebuild(t *testing.T) {
	a := NewOrdered[int]()
	a.Put("x", 3)
	a.Put("y", 1)
	a.Put("z", 2)
	seen := 0
	for range a.Iter() {
		seen++
		require.Nil(t, a.Asort())
	}
	require.Equal(t, 1, seen)
}
