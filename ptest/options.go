package ptest

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout is how long assertions wait for a publisher to complete when
// no WithTimeout option is given
const DefaultTimeout = time.Second

// settings contains the configuration of a single assertion call
type settings struct {
	name        string
	description string
	timeout     time.Duration
	logger      logrus.FieldLogger
	notifiers   []Notifier
}

// Opt allows clients to tweak the behavior of an assertion
type Opt func(*settings)

// WithTimeout sets the maximum time an assertion waits for the publisher to
// complete. Non-positive durations fall back to DefaultTimeout.
func WithTimeout(d time.Duration) Opt {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithDescription replaces the default description of an assertion, which is
// used as the prefix of every failure message
func WithDescription(desc string) Opt {
	return func(s *settings) {
		s.description = desc
	}
}

// WithLogger sets the logger used for diagnostics (defaults to the logrus
// standard logger)
func WithLogger(ll logrus.FieldLogger) Opt {
	return func(s *settings) {
		s.logger = ll
	}
}

// WithNotifier registers a Notifier that receives the Report of the assertion
// once it is resolved. This option may be given multiple times.
func WithNotifier(n Notifier) Opt {
	return func(s *settings) {
		s.notifiers = append(s.notifiers, n)
	}
}

// newSettings builds the settings of an assertion, starting from the defaults
// of the given cell
func newSettings(c cell, opts []Opt) settings {
	s := settings{
		name:        c.name,
		description: c.description,
		timeout:     DefaultTimeout,
		logger:      logrus.StandardLogger(),
	}
	for _, optFn := range opts {
		optFn(&s)
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	return s
}
