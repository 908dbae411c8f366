// Package metrics exports chainmap statistics to Prometheus.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/theflywheel/chainmap"
)

const Namespace = "chainmap"

// StatsFunc returns the current statistics of one map. Maps are not
// goroutine-safe, and a registry scrapes from its own goroutine, so the
// function must hold whatever lock guards the map while it reads.
type StatsFunc func() chainmap.Stats

// Collector implements prometheus.Collector for a single map.
type Collector struct {
	src          StatsFunc
	entries      *prometheus.Desc
	buckets      *prometheus.Desc
	loadFactor   *prometheus.Desc
	longestChain *prometheus.Desc
	resizes      *prometheus.Desc
}

// NewCollector creates a collector whose metrics carry the label map=name.
func NewCollector(name string, src StatsFunc) *Collector {
	labels := prometheus.Labels{"map": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(Namespace, "", metric), help, nil, labels)
	}
	return &Collector{
		src:          src,
		entries:      desc("entries", "Number of live entries in the map."),
		buckets:      desc("buckets", "Number of allocated buckets."),
		loadFactor:   desc("load_factor", "Entries per bucket."),
		longestChain: desc("longest_chain", "Length of the longest bucket."),
		resizes:      desc("resizes_total", "Total number of bucket resizes."),
	}
}

// Register creates a collector for the map and registers it with reg.
func Register(reg prometheus.Registerer, name string, src StatsFunc) (*Collector, error) {
	c := NewCollector(name, src)
	if err := reg.Register(c); err != nil {
		return nil, fmt.Errorf("failed to register collector for map %q: %w", name, err)
	}
	return c, nil
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.buckets
	ch <- c.loadFactor
	ch <- c.longestChain
	ch <- c.resizes
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Entries))
	ch <- prometheus.MustNewConstMetric(c.buckets, prometheus.GaugeValue, float64(s.Buckets))
	ch <- prometheus.MustNewConstMetric(c.loadFactor, prometheus.GaugeValue, s.LoadFactor)
	ch <- prometheus.MustNewConstMetric(c.longestChain, prometheus.GaugeValue, float64(s.LongestChain))
	ch <- prometheus.MustNewConstMetric(c.resizes, prometheus.CounterValue, float64(s.Resizes))
}
