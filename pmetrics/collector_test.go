package pmetrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capatazlib/go-pubtest/pub"
	"github.com/capatazlib/go-pubtest/ptest"
)

var errBoom = errors.New("boom")

// nopT swallows the failures of the assertions that are expected to fail
type nopT struct{}

func (nopT) Helper() {}
func (nopT) Errorf(string, ...any) {}

func TestCollectorCountsResults(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := NewCollector(reg, "pubtest")
	require.NoError(t, err)

	ptest.EventuallyFinishesAfterPublishing(t, pub.Just(1, 2, 3), []int{1, 2, 3}, col.Opt())
	ptest.EventuallyFailsWith(nopT{}, pub.Just(1), errBoom, col.Opt())
	ptest.EventuallyFinishes(nopT{}, pub.Never[int](), col.Opt(), ptest.WithTimeout(10*time.Millisecond))

	assert.Equal(t, 1.0, testutil.ToFloat64(
		col.assertions.WithLabelValues("EventuallyFinishesAfterPublishing", "passed"),
	))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		col.assertions.WithLabelValues("EventuallyFailsWith", "mismatch"),
	))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		col.assertions.WithLabelValues("EventuallyFinishes", "timeout"),
	))
	assert.Equal(t, 3.0, testutil.ToFloat64(
		col.values.WithLabelValues("EventuallyFinishesAfterPublishing"),
	))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		col.values.WithLabelValues("EventuallyFailsWith"),
	))
}

func TestNewNotifierRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()

	notifier, err := NewNotifier(reg, "pubtest")
	require.NoError(t, err)
	notifier(ptest.Report{Assertion: "Assert", Completed: true, Completion: pub.Finish()})

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.ElementsMatch(t, []string{
		"pubtest_assertions_total",
		"pubtest_assertion_wait_seconds",
		"pubtest_recorded_values_total",
	}, names)

	_, err = NewNotifier(reg, "pubtest")
	var alreadyRegistered prometheus.AlreadyRegisteredError
	assert.True(t, errors.As(err, &alreadyRegistered))
}
