package pub

import (
	"errors"
	"fmt"
)

// CompletionTag specifies how a Publisher terminated
type CompletionTag uint8

const (
	// ignore zero value of iota
	_ CompletionTag = iota
	// Finished indicates the publisher terminated without errors
	Finished
	// Failed indicates the publisher terminated with an error
	Failed
)

// String returns a string representation of the current CompletionTag
func (tag CompletionTag) String() string {
	switch tag {
	case Finished:
		return "Finished"
	case Failed:
		return "Failed"
	default:
		return "<Unknown>"
	}
}

// Completion is the terminal signal of a Publisher. A publisher delivers at
// most one Completion, and no values after it.
type Completion struct {
	tag CompletionTag
	err error
}

// Finish returns a Completion that represents a successful termination
func Finish() Completion {
	return Completion{tag: Finished}
}

// Fail returns a Completion that represents a termination with the given error
func Fail(err error) Completion {
	return Completion{tag: Failed, err: err}
}

// Tag returns the CompletionTag of this Completion
func (c Completion) Tag() CompletionTag {
	return c.tag
}

// Err returns the error of a Failed completion, nil otherwise
func (c Completion) Err() error {
	return c.err
}

// IsFinished returns true when the publisher terminated without errors
func (c Completion) IsFinished() bool {
	return c.tag == Finished
}

// IsFailed returns true when the publisher terminated with an error
func (c Completion) IsFailed() bool {
	return c.tag == Failed
}

// Equal checks this (actual) completion against an expected one. Failures are
// equal when errors.Is(c.Err(), expected.Err()) holds, so a wrapped error
// matches the sentinel it wraps.
func (c Completion) Equal(expected Completion) bool {
	if c.tag != expected.tag {
		return false
	}
	if c.tag == Failed {
		return errors.Is(c.err, expected.err)
	}
	return true
}

// String returns an string representation for the Completion
func (c Completion) String() string {
	if c.tag == Failed {
		return fmt.Sprintf("Failed(%v)", c.err)
	}
	return c.tag.String()
}
