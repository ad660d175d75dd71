package ptest

import (
	"fmt"
	"time"
)

// Axis names the part of a publication an assertion failed on
type Axis string

const (
	// ValuesAxis is reported when the published values did not match
	ValuesAxis Axis = "values"
	// CompletionAxis is reported when the publisher completion did not match
	CompletionAxis Axis = "completion"
)

// MismatchError is reported when a recorded publication does not satisfy an
// expectation
type MismatchError struct {
	Axis     Axis
	Reason   string
	Expected string
	Actual   string
}

func (err *MismatchError) Error() string {
	return fmt.Sprintf(
		"%s mismatch: %s\nexpected: %s\nactual:\n%s",
		err.Axis,
		err.Reason,
		err.Expected,
		err.Actual,
	)
}

// TimeoutError is reported when a publisher does not complete within the
// assertion timeout. It carries the rendering of what got recorded before
// giving up.
type TimeoutError struct {
	Timeout     time.Duration
	Publication string
}

func (err *TimeoutError) Error() string {
	return fmt.Sprintf(
		"timed out after %v waiting for completion\nrecorded so far:\n%s",
		err.Timeout,
		err.Publication,
	)
}
