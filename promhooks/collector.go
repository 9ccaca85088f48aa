// Package promhooks exports retry lifecycle events as Prometheus metrics.
//
//	c := promhooks.NewCollector("shop")
//	prometheus.MustRegister(c)
//	p := combi.StandardRetry()
//	p.Hooks = c.Hooks("inventory")
package promhooks

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/byte4ever/combi"
)

const subsystem = "retry"

// Collector holds the retry metrics, labelled by retrier name. It implements
// [prometheus.Collector]; register it once and bind it to as many retriers
// as needed with [Collector.Hooks].
type Collector struct {
	attempts    *prometheus.CounterVec
	failures    *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	retries     *prometheus.CounterVec
	successes   *prometheus.CounterVec
	exhausted   *prometheus.CounterVec
	interrupted *prometheus.CounterVec
	wait        *prometheus.HistogramVec
}

// NewCollector creates the retry metrics under namespace. Nothing is
// registered yet.
func NewCollector(namespace string) *Collector {
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}, []string{"retrier"})
	}

	return &Collector{
		attempts:    counter("attempts_total", "Total number of operation attempts"),
		failures:    counter("failures_total", "Total number of attempts that returned an error or panicked"),
		rejections:  counter("rejections_total", "Total number of attempts whose result failed the success predicate"),
		retries:     counter("retries_total", "Total number of backoff waits before a new attempt"),
		successes:   counter("successes_total", "Total number of calls that ended in success"),
		exhausted:   counter("exhausted_total", "Total number of calls that used up every attempt"),
		interrupted: counter("interrupted_total", "Total number of calls cancelled during a backoff wait"),
		wait: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "backoff_wait_seconds",
			Help:      "Backoff wait before a new attempt in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"retrier"}),
	}
}

func (c *Collector) all() []prometheus.Collector {
	return []prometheus.Collector{
		c.attempts,
		c.failures,
		c.rejections,
		c.retries,
		c.successes,
		c.exhausted,
		c.interrupted,
		c.wait,
	}
}

// Describe implements [prometheus.Collector].
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.all() {
		m.Describe(ch)
	}
}

// Collect implements [prometheus.Collector].
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range c.all() {
		m.Collect(ch)
	}
}

// Hooks returns hooks that record events under the retrier label name.
// Combine them with other observers through [combi.MergeHooks].
func (c *Collector) Hooks(name string) *combi.Hooks {
	attempts := c.attempts.WithLabelValues(name)
	failures := c.failures.WithLabelValues(name)
	rejections := c.rejections.WithLabelValues(name)
	retries := c.retries.WithLabelValues(name)
	successes := c.successes.WithLabelValues(name)
	exhausted := c.exhausted.WithLabelValues(name)
	interrupted := c.interrupted.WithLabelValues(name)
	wait := c.wait.WithLabelValues(name)

	return &combi.Hooks{
		OnAttempt:  func(int) { attempts.Inc() },
		OnSuccess:  func(int) { successes.Inc() },
		OnRejected: func(int) { rejections.Inc() },
		OnFailure:  func(int, error) { failures.Inc() },
		OnRetry: func(_ int, d time.Duration) {
			retries.Inc()
			wait.Observe(d.Seconds())
		},
		OnExhausted:   func(error) { exhausted.Inc() },
		OnInterrupted: func(error) { interrupted.Inc() },
	}
}
