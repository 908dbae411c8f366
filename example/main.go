package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/theflywheel/chainmap"
	"github.com/theflywheel/chainmap/metrics"
)

func main() {
	numKeys := flag.Int("keys", 10, "number of keys to insert")
	verbose := flag.Bool("v", false, "log bucket resizes")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
	}
	defer logger.Sync()

	m := chainmap.New[uint64, uint64](chainmap.WithLogger(logger), chainmap.WithName("example"))

	// Insert some data
	for i := 0; i < *numKeys; i++ {
		m.Insert(uint64(i), uint64(i*100))
	}

	fmt.Printf("Inserted %d key-value pairs into %d buckets\n", m.Len(), m.Buckets())

	// Retrieve and display some values
	for i := 0; i < *numKeys+5; i += 2 {
		value, found := m.Get(uint64(i))
		if found {
			fmt.Printf("Key %d => Value %d\n", i, value)
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	// Update a value
	if prev, replaced := m.Insert(2, 999); replaced {
		fmt.Printf("Updated key 2 => Value 999 (was %d)\n", prev)
	}

	// Remove a value
	if value, removed := m.Remove(3); removed {
		fmt.Printf("Removed key 3 (had value %d), %d keys left\n", value, m.Len())
	}

	// Look up a string-keyed map through a byte slice
	names := chainmap.New[string, int]()
	names.Insert("alice", 1)
	names.Insert("bob", 2)
	buf := []byte("bob")
	if id, ok := names.GetEquivalent(chainmap.Bytes(buf)); ok {
		fmt.Printf("Name %q => ID %d\n", buf, id)
	}

	if err := dumpMetrics(m); err != nil {
		log.Fatalf("Failed to export metrics: %v", err)
	}

	fmt.Println("Example completed successfully")
}

// dumpMetrics prints the map's statistics in the Prometheus text format.
func dumpMetrics(m *chainmap.Map[uint64, uint64]) error {
	reg := prometheus.NewRegistry()
	if _, err := metrics.Register(reg, "example", m.Stats); err != nil {
		return err
	}

	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(os.Stdout, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
