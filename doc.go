/*
Package chainmap provides a generic in-memory hash table with separate chaining.

Map is a key-value container for use inside a single goroutine. Keys are routed
to a bucket by hash modulo the bucket count, and each bucket is a short slice of
entries scanned linearly.

Basic usage:

	import "github.com/theflywheel/chainmap"

	m := chainmap.New[string, int]()

	// Insert data
	m.Insert("abc", 123)

	// Replace it, getting the old value back
	prev, replaced := m.Insert("abc", 456)

	// Retrieve data
	if v, ok := m.Get("abc"); ok {
		fmt.Println("Value:", v)
	}

	// Look up a string key from a byte slice
	v, ok := m.GetEquivalent(chainmap.Bytes(buf))

	// Walk every entry
	for k, v := range m.All() {
		fmt.Println(k, v)
	}

Features:

  - Generic over key and value types
  - Separate chaining with one slice per bucket
  - Automatic doubling when the entry count exceeds 3/4 of the bucket count
  - xxHash64 for string and integer keys, maphash for other comparable keys
  - Custom hashers and equivalent-key lookups
  - Resize diagnostics through zap and a Prometheus collector in package metrics

Implementation Details:

A new map owns no buckets. The first insert allocates one bucket, and every
later growth doubles the count, giving 1, 2, 4, 8, ... buckets. Before each
insert, including inserts that only replace a value, the map grows if it has no
buckets or if its entry count is greater than 3*buckets/4. A resize rehashes
every entry into the new bucket list before returning.

Removal swaps the removed entry with the last entry of its bucket, so the order
inside a bucket is not stable. Iteration visits buckets in index order and
entries in storage order; that order has no meaning and changes across resizes
and removals. Despite any resemblance to a linked hash map, no insertion order
is kept.

Lookups and removals on a map that has never received an insert report the key
as absent.

Maps are not safe for concurrent use.
*/
package chainmap
