package ptest

import (
	"fmt"
	"strings"

	"github.com/capatazlib/go-pubtest/pub"
)

// valueTag specifies the policy used to compare recorded values
type valueTag uint8

const (
	anyValues valueTag = iota
	noValues
	firstValue
	exactValues
	inOrderValues
)

// ValueExpectation describes what values a publisher is expected to publish.
//
// Build one with AnyValues, NoValues, FirstValue, OnlyValue, Values or one of
// the predicate variants.
type ValueExpectation[T any] struct {
	tag   valueTag
	preds []ValueP[T]
}

// AnyValues does not constrain the published values
func AnyValues[T any]() ValueExpectation[T] {
	return ValueExpectation[T]{tag: anyValues}
}

// NoValues expects the publisher to not publish any value
func NoValues[T any]() ValueExpectation[T] {
	return ValueExpectation[T]{tag: noValues}
}

// FirstValue expects the publisher to publish at least one value, and the
// first one to be equal to the given value. Values after the first one are
// not checked.
func FirstValue[T comparable](v T) ValueExpectation[T] {
	return FirstValueMatching(Eq(v))
}

// FirstValueMatching expects the publisher to publish at least one value, and
// the first one to match the given predicate
func FirstValueMatching[T any](pred ValueP[T]) ValueExpectation[T] {
	return ValueExpectation[T]{tag: firstValue, preds: []ValueP[T]{pred}}
}

// OnlyValue expects the publisher to publish exactly the given value
func OnlyValue[T comparable](v T) ValueExpectation[T] {
	return ValuesMatching(Eq(v))
}

// Values expects the publisher to publish exactly the given values, in the
// same order
func Values[T comparable](values ...T) ValueExpectation[T] {
	return ValuesMatching(eqAll(values)...)
}

// ValuesMatching expects the publisher to publish one value per predicate,
// each value matching the predicate at the same position
func ValuesMatching[T any](preds ...ValueP[T]) ValueExpectation[T] {
	return ValueExpectation[T]{tag: exactValues, preds: preds}
}

// ValuesInOrder expects the given predicates to match, in order, values
// published by the publisher. Values that do not match may appear in between
// matches.
func ValuesInOrder[T any](preds ...ValueP[T]) ValueExpectation[T] {
	return ValueExpectation[T]{tag: inOrderValues, preds: preds}
}

func renderPreds[T any](preds []ValueP[T]) string {
	acc := make([]string, 0, len(preds))
	for _, pred := range preds {
		acc = append(acc, pred.String())
	}
	return "[" + strings.Join(acc, ", ") + "]"
}

// String returns an string representation for the ValueExpectation
func (e ValueExpectation[T]) String() string {
	switch e.tag {
	case noValues:
		return "no values"
	case firstValue:
		return fmt.Sprintf("at least one value, first %s", e.preds[0].String())
	case exactValues:
		return fmt.Sprintf("exactly %d value(s) %s", len(e.preds), renderPreds(e.preds))
	case inOrderValues:
		return fmt.Sprintf("values matching in order %s", renderPreds(e.preds))
	default:
		return "any values"
	}
}

////////////////////////////////////////////////////////////////////////////////

// CompletionExpectation describes how a publisher is expected to terminate.
//
// Build one with AnyCompletion, Finishes, FailsWith or Completes.
type CompletionExpectation struct {
	constrained bool
	completion  pub.Completion
}

// AnyCompletion does not constrain how the publisher terminates
func AnyCompletion() CompletionExpectation {
	return CompletionExpectation{}
}

// Finishes expects the publisher to terminate without errors
func Finishes() CompletionExpectation {
	return Completes(pub.Finish())
}

// FailsWith expects the publisher to terminate with the given error (compared
// with errors.Is)
func FailsWith(err error) CompletionExpectation {
	return Completes(pub.Fail(err))
}

// Completes expects the publisher to terminate with the given Completion
func Completes(c pub.Completion) CompletionExpectation {
	return CompletionExpectation{constrained: true, completion: c}
}

// String returns an string representation for the CompletionExpectation
func (e CompletionExpectation) String() string {
	if !e.constrained {
		return "any completion"
	}
	return e.completion.String()
}
