package ptest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/capatazlib/go-pubtest/pub"
)

// TestingT is the subset of testing.TB used to report failures. Failures are
// reported with Errorf, so the test keeps running after a failed assertion.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// observe subscribes a new Recorder to the given publisher and blocks until the
// publisher completes or the timeout is reached. The subscription is
// cancelled before the publication snapshot is taken.
func observe[T any](s settings, p pub.Publisher[T]) (*Recorder[T], Publication[T], time.Duration, error) {
	rec := newRecorder[T](s)
	ll := assertionLogger(s, rec)

	start := time.Now()
	ctx, stopTimer := context.WithTimeout(context.Background(), s.timeout)
	defer stopTimer()

	sub := rec.Subscribe(p)
	waitErr := rec.Wait(ctx)
	elapsed := time.Since(start)

	sub.Cancel()
	publication := rec.Snapshot()

	if waitErr != nil {
		ll.WithFields(logrus.Fields{
			"timeout":     s.timeout,
			"elapsed":     elapsed,
			"value_count": len(publication.Values()),
		}).Debug("timed out waiting for publisher completion")
		return rec, publication, elapsed, &TimeoutError{
			Timeout:     s.timeout,
			Publication: publication.String(),
		}
	}

	ll.WithFields(logrus.Fields{
		"elapsed":     elapsed,
		"value_count": len(publication.Values()),
	}).Debug("publisher completed")
	return rec, publication, elapsed, nil
}

// safeNotify calls the given Notifier, a panicking Notifier is logged and
// never takes down the assertion
func safeNotify(ll logrus.FieldLogger, notify Notifier, report Report) {
	defer func() {
		if r := recover(); r != nil {
			ll.WithField("panic", r).Error("assertion notifier panicked")
		}
	}()
	notify(report)
}

// assertionLogger returns the recorder logger tagged with the assertion name
func assertionLogger[T any](s settings, rec *Recorder[T]) logrus.FieldLogger {
	return rec.log.WithField("assertion", s.name)
}

// check observes the given publisher and verifies the resulting publication
// against both expectations. Every failure found is returned; the timeout
// failure (if any) comes first.
func check[T any](
	s settings,
	p pub.Publisher[T],
	values ValueExpectation[T],
	completion CompletionExpectation,
) (Publication[T], []error) {
	rec, publication, elapsed, waitErr := observe(s, p)

	errs := make([]error, 0, 3)
	if waitErr != nil {
		errs = append(errs, waitErr)
	}
	if err := verifyValues(values, publication.Values()); err != nil {
		errs = append(errs, err)
	}
	c, completed := publication.Completion()
	if err := verifyCompletion(completion, c, completed); err != nil {
		errs = append(errs, err)
	}

	if len(s.notifiers) > 0 {
		report := Report{
			Assertion:   s.name,
			Description: s.description,
			RecorderID:  rec.ID(),
			ValueCount:  len(publication.Values()),
			Completion:  c,
			Completed:   completed,
			Elapsed:     elapsed,
			Err:         errors.Join(errs...),
		}
		for _, notify := range s.notifiers {
			safeNotify(assertionLogger(s, rec), notify, report)
		}
	}

	return publication, errs
}

// Observe subscribes to the given publisher and blocks until it completes, or
// until the timeout is reached, in which case a *TimeoutError is returned
// along the values recorded so far.
func Observe[T any](p pub.Publisher[T], opts ...Opt) (Publication[T], error) {
	s := newSettings(observeCell, opts)
	_, publication, _, err := observe(s, p)
	return publication, err
}

// Verify observes the given publisher and checks the recorded publication
// against the given expectations. All the failures found are joined on the
// returned error, each one prefixed with the assertion description.
func Verify[T any](
	p pub.Publisher[T],
	values ValueExpectation[T],
	completion CompletionExpectation,
	opts ...Opt,
) (Publication[T], error) {
	s := newSettings(verifyCell, opts)
	publication, errs := check(s, p, values, completion)
	for i, err := range errs {
		errs[i] = fmt.Errorf("%s: %w", s.description, err)
	}
	return publication, errors.Join(errs...)
}

// Assert observes the given publisher and checks the recorded publication
// against the given expectations, reporting every failure on t. It returns
// true when the assertion passed.
func Assert[T any](
	t TestingT,
	p pub.Publisher[T],
	values ValueExpectation[T],
	completion CompletionExpectation,
	opts ...Opt,
) bool {
	t.Helper()
	return assertCell(t, assertCellDefault, p, values, completion, opts)
}

func assertCell[T any](
	t TestingT,
	c cell,
	p pub.Publisher[T],
	values ValueExpectation[T],
	completion CompletionExpectation,
	opts []Opt,
) bool {
	t.Helper()
	s := newSettings(c, opts)
	_, errs := check(s, p, values, completion)
	for _, err := range errs {
		t.Errorf("%s: %v", s.description, err)
	}
	return len(errs) == 0
}
