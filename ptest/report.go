package ptest

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/capatazlib/go-pubtest/pub"
)

// Result classifies how an assertion got resolved
type Result uint8

const (
	// ResultPassed indicates the publication matched every expectation
	ResultPassed Result = iota
	// ResultMismatch indicates the publisher completed but the publication did
	// not match the expectations
	ResultMismatch
	// ResultTimeout indicates the publisher did not complete in time
	ResultTimeout
)

// String returns a string representation of the current Result
func (r Result) String() string {
	switch r {
	case ResultPassed:
		return "passed"
	case ResultMismatch:
		return "mismatch"
	case ResultTimeout:
		return "timeout"
	default:
		return "<Unknown>"
	}
}

// Report is a record emitted once per assertion call, after the publication
// was verified
type Report struct {
	Assertion   string
	Description string
	RecorderID  uuid.UUID
	ValueCount  int
	Completion  pub.Completion
	Completed   bool
	Elapsed     time.Duration
	Err         error
}

// TimedOut returns true when the publisher did not complete in time
func (r Report) TimedOut() bool {
	var timeoutErr *TimeoutError
	return errors.As(r.Err, &timeoutErr)
}

// Result returns the classification of this Report
func (r Report) Result() Result {
	switch {
	case r.Err == nil:
		return ResultPassed
	case r.TimedOut():
		return ResultTimeout
	default:
		return ResultMismatch
	}
}

// Notifier is a function that is used for reporting the outcome of assertion
// calls.
//
// Check the documentation of WithNotifier for more details.
type Notifier func(Report)
