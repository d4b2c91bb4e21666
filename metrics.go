package beamtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments the allocator. Gauges are adjusted by deltas, so one
// Metrics aggregates over every tree it is given to.
type Metrics struct {
	Created            prometheus.Counter
	Reclaimed          prometheus.Counter
	Detached           prometheus.Counter
	AllocationFailures prometheus.Counter
	ArenaSize          prometheus.Gauge
	DetachedSize       prometheus.Gauge
}

// NewMetrics creates the allocator metrics and registers them with reg. A
// nil reg creates unregistered metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Created: f.NewCounter(prometheus.CounterOpts{
			Name: "beamtree_entries_created_total",
			Help: "Entries allocated in the arena.",
		}),
		Reclaimed: f.NewCounter(prometheus.CounterOpts{
			Name: "beamtree_entries_reclaimed_total",
			Help: "Arena slots recycled, including by Reset.",
		}),
		Detached: f.NewCounter(prometheus.CounterOpts{
			Name: "beamtree_entries_detached_total",
			Help: "Entries moved from the arena to a detached shared prefix.",
		}),
		AllocationFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "beamtree_allocation_failures_total",
			Help: "Entry creations refused because the arena was full.",
		}),
		ArenaSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "beamtree_arena_size",
			Help: "Occupied arena slots.",
		}),
		DetachedSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "beamtree_detached_size",
			Help: "Entries held in detached shared prefixes.",
		}),
	}
}

func (m *Metrics) created() {
	if m == nil {
		return
	}
	m.Created.Inc()
	m.ArenaSize.Inc()
}

func (m *Metrics) failed() {
	if m == nil {
		return
	}
	m.AllocationFailures.Inc()
}

func (m *Metrics) reclaim(n int) {
	if m == nil || n == 0 {
		return
	}
	m.Reclaimed.Add(float64(n))
	m.ArenaSize.Sub(float64(n))
}

func (m *Metrics) detach(n int) {
	if m == nil || n == 0 {
		return
	}
	m.Detached.Add(float64(n))
	m.DetachedSize.Add(float64(n))
}

func (m *Metrics) undetach(n int) {
	if m == nil || n == 0 {
		return
	}
	m.DetachedSize.Sub(float64(n))
}
