package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"trendpulse/internal/models"
	"trendpulse/internal/poller"
)

var (
	pollCyclesDesc = prometheus.NewDesc(
		"trendpulse_poll_cycles_total",
		"Total completed poll cycles by outcome",
		[]string{"outcome"},
		nil,
	)
	trendItemsDesc = prometheus.NewDesc(
		"trendpulse_trend_items",
		"Number of trending posts in the current snapshot",
		nil,
		nil,
	)
	lastSuccessDesc = prometheus.NewDesc(
		"trendpulse_last_success_timestamp_seconds",
		"Unix time of the last successful trending fetch",
		nil,
		nil,
	)
)

// Source provides the poller readings the collector scrapes.
type Source interface {
	Snapshot() models.PollState
	Outcomes() map[string]uint64
}

// PollerCollector is a custom Prometheus collector that reads cycle counts
// and the current snapshot from the poller on each scrape.
type PollerCollector struct {
	source Source
}

// Describe sends the metric descriptors to the channel.
func (c *PollerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- pollCyclesDesc
	ch <- trendItemsDesc
	ch <- lastSuccessDesc
}

// Collect emits the poll cycle counters and snapshot gauges.
func (c *PollerCollector) Collect(ch chan<- prometheus.Metric) {
	for outcome, count := range c.source.Outcomes() {
		ch <- prometheus.MustNewConstMetric(
			pollCyclesDesc,
			prometheus.CounterValue,
			float64(count),
			outcome,
		)
	}

	snap := c.source.Snapshot()
	ch <- prometheus.MustNewConstMetric(
		trendItemsDesc,
		prometheus.GaugeValue,
		float64(len(snap.Items)),
	)
	if snap.HasResult() {
		ch <- prometheus.MustNewConstMetric(
			lastSuccessDesc,
			prometheus.GaugeValue,
			float64(snap.LastUpdated.Unix()),
		)
	}
}

var initOnce sync.Once

// Init registers the poller collector with the default registry.
// Must be called once at startup.
func Init(p *poller.Poller) {
	initOnce.Do(func() {
		prometheus.MustRegister(&PollerCollector{source: p})
	})
}
