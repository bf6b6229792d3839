package phparray

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/phparray/utils/math"
)

// Sort orders the values and rebuilds the Array keyed "0", "1", ... in that
// order; the original keys are discarded. Unless the Array was built with
// WithCompleteSort the last sorted value is dropped from the rebuild.
//
// TODO: drop the truncation default once callers relying on it are gone.
func (a *Array[V]) Sort() error {
	values := a.t.values()
	compare, err := a.comparator(values)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	sorted := mergeSort(values, compare)
	limit := len(sorted) - 1
	if a.conf.completeSort {
		limit = len(sorted)
	}
	fresh := newTable[V](a.t.capacity(), a.t.hash, a.log)
	for i := 0; i < limit; i++ {
		fresh.put(strconv.Itoa(i), sorted[i])
	}
	a.log.WithFields(log.Fields{"size": len(sorted), "kept": limit}).Debug("rebuilt after sort")
	a.t.replace(fresh)
	return nil
}

// Asort orders the entries by value, keeping each key with its value.
func (a *Array[V]) Asort() error {
	values := a.t.values()
	compare, err := a.comparator(values)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	sorted := mergeSort(a.t.pairs(), func(x, y Pair[V]) int {
		return compare(x.Value, y.Value)
	})
	fresh := newTable[V](a.t.capacity(), a.t.hash, a.log)
	for _, p := range sorted {
		fresh.put(p.Key, p.Value)
	}
	a.log.WithField("size", len(sorted)).Debug("rebuilt after asort")
	a.t.replace(fresh)
	return nil
}

// mergeSort returns a sorted copy of items. Equal elements keep their order.
func mergeSort[T any](items []T, compare func(x, y T) int) []T {
	if len(items) <= 1 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	mid := math.DivFloor(len(items), 2)
	left := mergeSort(items[:mid], compare)
	right := mergeSort(items[mid:], compare)
	return merge(left, right, compare)
}

func merge[T any](left, right []T, compare func(x, y T) int) []T {
	out := make([]T, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if compare(left[l], right[r]) <= 0 {
			out = append(out, left[l])
			l++
		} else {
			out = append(out, right[r])
			r++
		}
	}
	out = append(out, left[l:]...)
	return append(out, right[r:]...)
}
