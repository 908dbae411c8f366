package chainmap

import "iter"

// Iterator walks the entries of a Map, bucket by bucket. It is valid only
// while the map is not modified; inserting or removing during iteration has
// undefined results.
type Iterator[K, V any] struct {
	buckets [][]entry[K, V]
	bucket  int
	index   int
	key     K
	value   V
}

// Iter returns an iterator positioned before the first entry. Each call
// starts a fresh traversal.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{buckets: m.buckets}
}

// Next advances to the next entry and reports whether there was one.
func (it *Iterator[K, V]) Next() bool {
	for it.bucket < len(it.buckets) {
		b := it.buckets[it.bucket]
		if it.index < len(b) {
			it.key, it.value = b[it.index].key, b[it.index].value
			it.index++
			return true
		}
		it.bucket++
		it.index = 0
	}
	var (
		k K
		v V
	)
	it.key, it.value = k, v
	return false
}

// Key returns the key at the iterator's position. Only valid after Next
// returned true.
func (it *Iterator[K, V]) Key() K {
	return it.key
}

// Value returns the value at the iterator's position. Only valid after Next
// returned true.
func (it *Iterator[K, V]) Value() V {
	return it.value
}

// All returns a sequence of every key/value pair. The order follows the
// bucket layout and carries no meaning; it changes when the map resizes or
// entries are removed.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys returns a sequence of every key, in the same order as All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a sequence of every value, in the same order as All.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
