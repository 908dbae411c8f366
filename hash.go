package chainmap

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher defines a hash function and an equivalence relation over keys of
// type K. Keys that are Equal must produce the same Hash.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// Equivalent is a lookup key that stands in for a stored key of type K
// without being one. Hash must return the value the map's Hasher returns for
// every key that Equal accepts.
type Equivalent[K any] interface {
	Hash() uint64
	Equal(key K) bool
}

// seed is shared by every DefaultHasher in the process so hashes of the same
// key agree across maps.
var seed = maphash.MakeSeed()

// DefaultHasher hashes comparable keys and compares them with ==.
//
// Strings and integer kinds are hashed with xxHash64; any other comparable
// type goes through maphash.Comparable.
type DefaultHasher[K comparable] struct{}

func (DefaultHasher[K]) Hash(key K) uint64 {
	return HashOf(key)
}

func (DefaultHasher[K]) Equal(a, b K) bool {
	return a == b
}

// HashOf returns the hash DefaultHasher computes for key. Custom Equivalent
// implementations for default-hashed maps build on it.
func HashOf[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return hashUint64(uint64(k))
	case int8:
		return hashUint64(uint64(k))
	case int16:
		return hashUint64(uint64(k))
	case int32:
		return hashUint64(uint64(k))
	case int64:
		return hashUint64(uint64(k))
	case uint:
		return hashUint64(uint64(k))
	case uint8:
		return hashUint64(uint64(k))
	case uint16:
		return hashUint64(uint64(k))
	case uint32:
		return hashUint64(uint64(k))
	case uint64:
		return hashUint64(k)
	case uintptr:
		return hashUint64(uint64(k))
	}
	return maphash.Comparable(seed, key)
}

func hashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

// Bytes looks up string keys of a default-hashed map without converting the
// byte slice to a string.
type Bytes []byte

func (b Bytes) Hash() uint64 {
	return xxhash.Sum64(b)
}

func (b Bytes) Equal(key string) bool {
	return string(b) == key
}
