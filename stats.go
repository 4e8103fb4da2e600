package ovc

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Event is an immutable record of one compression operation. The Codec
// returns an Event per compression and retains nothing itself: callers
// own the event stream and can fold it into Stats at any time, including
// after replay from storage.
type Event struct {
	Method          Method
	OriginalBytes   int
	CompressedBytes int
	EnergyRetained  float64
	Timestamp       time.Time
}

// MethodStats aggregates events of a single method.
type MethodStats struct {
	Count                 int
	OriginalBytes         int64
	CompressedBytes       int64
	AverageEnergyRetained float64
}

// Stats is a pure aggregate over a sequence of compression events.
// It carries no mutable service state: two folds over the same events
// yield identical Stats.
type Stats struct {
	TotalCompressions     int
	TotalOriginalBytes    int64
	TotalCompressedBytes  int64
	AverageEnergyRetained float64
	OverallRatio          float64
	PerMethod             map[Method]MethodStats
	FirstEvent            time.Time
	LastEvent             time.Time
}

// ComputeStats folds events into aggregate statistics. The input order
// is irrelevant except for first/last timestamps, which are taken from
// the events' own clocks rather than their positions.
func ComputeStats(events []Event) Stats {
	stats := Stats{
		PerMethod: make(map[Method]MethodStats),
	}
	if len(events) == 0 {
		return stats
	}

	var energySum float64
	energyByMethod := make(map[Method]float64)
	for _, e := range events {
		stats.TotalCompressions++
		stats.TotalOriginalBytes += int64(e.OriginalBytes)
		stats.TotalCompressedBytes += int64(e.CompressedBytes)
		energySum += e.EnergyRetained

		m := stats.PerMethod[e.Method]
		m.Count++
		m.OriginalBytes += int64(e.OriginalBytes)
		m.CompressedBytes += int64(e.CompressedBytes)
		stats.PerMethod[e.Method] = m
		energyByMethod[e.Method] += e.EnergyRetained

		if stats.FirstEvent.IsZero() || e.Timestamp.Before(stats.FirstEvent) {
			stats.FirstEvent = e.Timestamp
		}
		if e.Timestamp.After(stats.LastEvent) {
			stats.LastEvent = e.Timestamp
		}
	}

	stats.AverageEnergyRetained = energySum / float64(stats.TotalCompressions)
	if stats.TotalCompressedBytes > 0 {
		stats.OverallRatio = float64(stats.TotalOriginalBytes) / float64(stats.TotalCompressedBytes)
	}
	for method, m := range stats.PerMethod {
		m.AverageEnergyRetained = energyByMethod[method] / float64(m.Count)
		stats.PerMethod[method] = m
	}
	return stats
}

// String returns a human-readable summary of the statistics.
func (s Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "compressions=%d original=%dB compressed=%dB ratio=%.2f avg_energy=%.4f",
		s.TotalCompressions, s.TotalOriginalBytes, s.TotalCompressedBytes, s.OverallRatio, s.AverageEnergyRetained)

	methods := make([]Method, 0, len(s.PerMethod))
	for m := range s.PerMethod {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i] < methods[j] })
	for _, m := range methods {
		ms := s.PerMethod[m]
		fmt.Fprintf(&b, "\n  %s: count=%d original=%dB compressed=%dB avg_energy=%.4f",
			m, ms.Count, ms.OriginalBytes, ms.CompressedBytes, ms.AverageEnergyRetained)
	}
	return b.String()
}
