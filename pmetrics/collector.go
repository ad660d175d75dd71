// Package pmetrics exports the outcome of ptest assertions as prometheus
// metrics. It is useful on long running integration suites, where the amount
// of timeouts and the time spent waiting on publishers tell which streams are
// flaky or slow.
package pmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/capatazlib/go-pubtest/ptest"
)

// Collector keeps the prometheus vectors fed by assertion Reports
type Collector struct {
	assertions *prometheus.CounterVec
	waits      *prometheus.HistogramVec
	values     *prometheus.CounterVec
}

// NewCollector creates the metric vectors under the given namespace and
// registers them on reg
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	col := &Collector{
		assertions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "assertions_total",
				Help:      "Number of publisher assertions resolved, by result.",
			},
			[]string{"assertion", "result"},
		),
		waits: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "assertion_wait_seconds",
				Help:      "Time spent waiting for publishers to complete.",
				Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"assertion"},
		),
		values: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recorded_values_total",
				Help:      "Number of values recorded from publishers.",
			},
			[]string{"assertion"},
		),
	}

	for _, c := range []prometheus.Collector{col.assertions, col.waits, col.values} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return col, nil
}

// Notify updates the metrics with the given Report, it is a ptest.Notifier
func (col *Collector) Notify(r ptest.Report) {
	col.assertions.WithLabelValues(r.Assertion, r.Result().String()).Inc()
	col.waits.WithLabelValues(r.Assertion).Observe(r.Elapsed.Seconds())
	col.values.WithLabelValues(r.Assertion).Add(float64(r.ValueCount))
}

// Opt returns the ptest option that plugs this Collector into an assertion
func (col *Collector) Opt() ptest.Opt {
	return ptest.WithNotifier(col.Notify)
}

// NewNotifier creates a Collector registered on reg and returns its Notify
// function
func NewNotifier(reg prometheus.Registerer, namespace string) (ptest.Notifier, error) {
	col, err := NewCollector(reg, namespace)
	if err != nil {
		return nil, err
	}
	return col.Notify, nil
}
