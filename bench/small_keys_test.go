// Package chainmap_test provides scale testing for the chained hash map.
//
// This file contains benchmarks with ten thousand and one million numeric
// keys. They measure:
//   - Insertion performance (overall and per batch)
//   - Random lookup performance
//   - Sequential lookup performance
//   - Memory cost per key-value pair
//   - Final bucket layout
package chainmap_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/theflywheel/chainmap"
)

// BenchmarkTenThousandKeys evaluates the map with ten thousand numeric keys.
// It is useful for baseline performance evaluation.
func BenchmarkTenThousandKeys(b *testing.B) {
	runScale(b, 10_000, 1_000)
}

// BenchmarkMillionKeys evaluates the map with one million numeric keys.
func BenchmarkMillionKeys(b *testing.B) {
	runScale(b, 1_000_000, 100_000)
}

func runScale(b *testing.B, numKeys, progressInterval int) {
	// Force benchmark to run only once regardless of -benchtime flag
	b.N = 1

	b.ResetTimer()
	b.StopTimer()

	runtime.GC()
	heapBefore := heapMB()

	m := chainmap.New[uint64, uint64]()

	// Measure write time
	b.Logf("Starting insertion of %d keys...", numKeys)
	b.StartTimer()
	writeStart := time.Now()

	for i := 0; i < numKeys; i++ {
		m.Insert(uint64(i), uint64(i))

		// Report progress at intervals
		if (i+1)%progressInterval == 0 {
			b.StopTimer()
			elapsed := time.Since(writeStart)
			rate := float64(i+1) / elapsed.Seconds()
			b.Logf("Inserted %d keys... (%.2f keys/sec) %s", i+1, rate, getMemoryUsage())
			b.StartTimer()
		}
	}

	b.StopTimer()
	writeTime := time.Since(writeStart)
	insertionRate := reportRate(b, numKeys, writeTime, "inserts/sec")
	b.Logf("Time to insert %d keys: %v (%.2f keys/sec)", numKeys, writeTime, insertionRate)

	// Verify a sample of the data
	randomSampleSize := numKeys / 10
	b.Logf("Verifying random sample of %d keys...", randomSampleSize)

	b.StartTimer()
	randomReadStart := time.Now()

	for i := 0; i < randomSampleSize; i++ {
		keyID := uint64((i*31 + 17) % numKeys)
		val, found := m.Get(keyID)
		if !found {
			b.Fatalf("Random key %d not found", keyID)
		}
		if val != keyID {
			b.Fatalf("Value mismatch for random key %d: expected %d, got %d", keyID, keyID, val)
		}
	}

	b.StopTimer()
	randomReadTime := time.Since(randomReadStart)
	randomLookupRate := reportRate(b, randomSampleSize, randomReadTime, "random_lookups/sec")
	b.Logf("Time to perform %d random lookups: %v (%.2f lookups/sec)",
		randomSampleSize, randomReadTime, randomLookupRate)

	// Sequential verification of all keys
	b.StartTimer()
	seqReadStart := time.Now()

	for i := 0; i < numKeys; i++ {
		val, found := m.Get(uint64(i))
		if !found {
			b.Fatalf("Key %d not found", i)
		}
		if val != uint64(i) {
			b.Fatalf("Value mismatch for key %d: expected %d, got %d", i, i, val)
		}
	}

	b.StopTimer()
	seqReadTime := time.Since(seqReadStart)
	seqLookupRate := reportRate(b, numKeys, seqReadTime, "seq_lookups/sec")
	b.Logf("Time to verify all %d keys sequentially: %v (%.2f lookups/sec)",
		numKeys, seqReadTime, seqLookupRate)

	stats := m.Stats()
	bytesPerKey := (heapMB() - heapBefore) * 1024 * 1024 / float64(numKeys)
	b.ReportMetric(bytesPerKey, "heap_bytes/key")
	b.ReportMetric(float64(stats.LongestChain), "longest_chain")
	b.Logf("Buckets=%d LoadFactor=%.3f LongestChain=%d Resizes=%d",
		stats.Buckets, stats.LoadFactor, stats.LongestChain, stats.Resizes)

	runtime.KeepAlive(m)
}

func BenchmarkInsert(b *testing.B) {
	m := chainmap.New[uint64, uint64]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Insert(uint64(i), uint64(i))
	}
}

func BenchmarkGet(b *testing.B) {
	const numKeys = 1 << 16
	m := chainmap.New[uint64, uint64]()
	for i := uint64(0); i < numKeys; i++ {
		m.Insert(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(uint64(i) & (numKeys - 1)); !ok {
			b.Fatalf("key %d not found", i)
		}
	}
}

func BenchmarkRemoveInsert(b *testing.B) {
	const numKeys = 1 << 16
	m := chainmap.New[uint64, uint64]()
	for i := uint64(0); i < numKeys; i++ {
		m.Insert(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := uint64(i) & (numKeys - 1)
		m.Remove(k)
		m.Insert(k, k)
	}
}
