// Package metrics exposes Prometheus instrumentation for the trajectory
// engine: feed ingestion counters, query counters and timing, and feed
// freshness.
package metrics

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	ActiveTrips     prometheus.Gauge
	PositionQueries prometheus.Counter
	QueryDuration   prometheus.Histogram

	FeedUpdates   prometheus.Counter
	FeedErrors    prometheus.Counter
	LastFeedEpoch prometheus.Gauge

	lastFeedEpoch atomic.Int64
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		ActiveTrips: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "trajectory_active_trips",
			Help: "Number of vehicle journeys active at the last position query.",
		}),
		PositionQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trajectory_position_queries_total",
			Help: "Total position queries answered.",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "trajectory_query_duration_seconds",
			Help:    "Duration of full position query computations.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 15),
		}),
		FeedUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trajectory_feed_updates_total",
			Help: "Total realtime snapshots applied.",
		}),
		FeedErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trajectory_feed_errors_total",
			Help: "Total realtime snapshots that failed to fetch or parse.",
		}),
		LastFeedEpoch: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "trajectory_last_feed_epoch",
			Help: "Unix timestamp of the last applied realtime snapshot.",
		}),
	}

	reg.MustRegister(
		c.ActiveTrips,
		c.PositionQueries, c.QueryDuration,
		c.FeedUpdates, c.FeedErrors, c.LastFeedEpoch,
	)
	return c
}

// SetLastFeedEpoch records feed freshness for both the gauge and the health
// endpoint.
func (c *Collector) SetLastFeedEpoch(epoch int64) {
	c.lastFeedEpoch.Store(epoch)
	c.LastFeedEpoch.Set(float64(epoch))
}

// LastFeedEpochValue returns the most recently recorded feed epoch.
func (c *Collector) LastFeedEpochValue() int64 {
	return c.lastFeedEpoch.Load()
}

// Handler serves the registry in Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
