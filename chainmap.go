package chainmap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initialBuckets is the bucket count allocated by the first resize.
const initialBuckets = 1

// Map is a hash table with separate chaining. Each bucket is a slice of
// entries whose keys hash to that bucket index.
//
// A Map is NOT goroutine-safe. Callers sharing a Map between goroutines must
// guard every call, iteration included, with their own lock.
type Map[K, V any] struct {
	buckets [][]entry[K, V]
	size    int
	resizes int
	hasher  Hasher[K]
	logger  *zap.Logger
}

type entry[K, V any] struct {
	key   K
	value V
}

// Stats is a point-in-time summary of a map's layout.
type Stats struct {
	Entries      int
	Buckets      int
	Resizes      int
	LongestChain int
	LoadFactor   float64
}

// New creates an empty map that hashes keys with DefaultHasher. No buckets are
// allocated until the first insert.
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	return NewWithHasher[K, V](DefaultHasher[K]{}, opts...)
}

// NewWithHasher creates an empty map that hashes and compares keys with h.
func NewWithHasher[K, V any](h Hasher[K], opts ...Option) *Map[K, V] {
	if h == nil {
		panic("chainmap: nil hasher")
	}
	cfg := newConfig(opts)
	return &Map[K, V]{
		hasher: h,
		logger: cfg.logger,
	}
}

// Insert adds or updates the value stored under key. If the key was already
// present its previous value is returned with replaced set to true.
//
// The growth condition is checked before the key is looked up, so a pure
// replacement may still grow the table.
func (m *Map[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	if m.needGrow() {
		m.Resize()
	}

	idx := m.bucketIndex(m.hasher.Hash(key))
	bucket := m.buckets[idx]
	for i := range bucket {
		if m.hasher.Equal(bucket[i].key, key) {
			prev = bucket[i].value
			bucket[i].value = value
			return prev, true
		}
	}

	m.buckets[idx] = append(bucket, entry[K, V]{key: key, value: value})
	m.size++
	return prev, false
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.lookup(m.hasher.Hash(key), func(k K) bool {
		return m.hasher.Equal(k, key)
	})
}

// GetEquivalent returns the value stored under the key that q is equivalent
// to. It lets callers look up a map without first building a K, for example
// a string-keyed map with a Bytes view.
func (m *Map[K, V]) GetEquivalent(q Equivalent[K]) (V, bool) {
	return m.lookup(q.Hash(), q.Equal)
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// ContainsEquivalent reports whether a key equivalent to q is present.
func (m *Map[K, V]) ContainsEquivalent(q Equivalent[K]) bool {
	_, ok := m.GetEquivalent(q)
	return ok
}

// Remove deletes key and returns the value it held.
//
// The removed slot is filled with the last entry of its bucket, so the order
// of entries inside a bucket is not preserved across removals.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.remove(m.hasher.Hash(key), func(k K) bool {
		return m.hasher.Equal(k, key)
	})
}

// RemoveEquivalent deletes the key that q is equivalent to.
func (m *Map[K, V]) RemoveEquivalent(q Equivalent[K]) (V, bool) {
	return m.remove(q.Hash(), q.Equal)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Buckets returns the current bucket count.
func (m *Map[K, V]) Buckets() int {
	return len(m.buckets)
}

// Stats returns a snapshot of the map's size and layout.
func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Entries: m.size,
		Buckets: len(m.buckets),
		Resizes: m.resizes,
	}
	for _, bucket := range m.buckets {
		if len(bucket) > s.LongestChain {
			s.LongestChain = len(bucket)
		}
	}
	if s.Buckets > 0 {
		s.LoadFactor = float64(s.Entries) / float64(s.Buckets)
	}
	return s
}

// Resize grows the table to one bucket if it has none, otherwise to twice its
// current bucket count, and rehashes every entry into the new buckets.
// The entry count is unchanged.
func (m *Map[K, V]) Resize() {
	from := len(m.buckets)
	target := initialBuckets
	if from > 0 {
		target = 2 * from
	}

	buckets := make([][]entry[K, V], target)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			idx := m.hasher.Hash(e.key) % uint64(target)
			buckets[idx] = append(buckets[idx], e)
		}
	}
	m.buckets = buckets
	m.resizes++

	if m.logger.Core().Enabled(zapcore.DebugLevel) {
		m.logger.Debug("resized buckets",
			zap.Int("from", from),
			zap.Int("to", target),
			zap.Int("entries", m.size))
	}
}

// needGrow reports whether the next insert has to resize first.
func (m *Map[K, V]) needGrow() bool {
	return len(m.buckets) == 0 || m.size > 3*len(m.buckets)/4
}

func (m *Map[K, V]) bucketIndex(hash uint64) int {
	return int(hash % uint64(len(m.buckets)))
}

func (m *Map[K, V]) lookup(hash uint64, match func(K) bool) (V, bool) {
	var zero V
	if len(m.buckets) == 0 {
		return zero, false
	}
	for _, e := range m.buckets[m.bucketIndex(hash)] {
		if match(e.key) {
			return e.value, true
		}
	}
	return zero, false
}

func (m *Map[K, V]) remove(hash uint64, match func(K) bool) (V, bool) {
	var zero V
	if len(m.buckets) == 0 {
		return zero, false
	}
	idx := m.bucketIndex(hash)
	bucket := m.buckets[idx]
	for i := range bucket {
		if !match(bucket[i].key) {
			continue
		}
		value := bucket[i].value
		last := len(bucket) - 1
		bucket[i] = bucket[last]
		bucket[last] = entry[K, V]{}
		m.buckets[idx] = bucket[:last]
		m.size--
		return value, true
	}
	return zero, false
}
