package ptest

import (
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////

// ValueP represents a predicate function that allows us to assert properties
// of a value emitted by a publisher
type ValueP[T any] interface {

	// Call will execute the logic of this value predicate
	Call(T) bool

	// Returns an string representation of this value predicate (for debugging
	// purposes)
	String() string
}

// EqP is a predicate that asserts a value is equal to an expected value
type EqP[T comparable] struct {
	Value T
}

// Call returns true when the given value is equal to the expected one
func (p EqP[T]) Call(v T) bool {
	return v == p.Value
}

func (p EqP[T]) String() string {
	return fmt.Sprintf("== %v", p.Value)
}

// FuncP is a predicate backed by an arbitrary function, the Name is used to
// render the predicate on failure messages
type FuncP[T any] struct {
	Name string
	Fn   func(T) bool
}

// Call executes the wrapped function
func (p FuncP[T]) Call(v T) bool {
	return p.Fn(v)
}

func (p FuncP[T]) String() string {
	return p.Name
}

// AndP is a predicate that builds the conjunction of a group ValueP predicates
// (e.g. join ValueP predicates with &&)
type AndP[T any] struct {
	Preds []ValueP[T]
}

// Call will try and verify that all it's grouped predicates return true, if any
// returns false, this predicate function will return false
func (p AndP[T]) Call(v T) bool {
	for _, pred := range p.Preds {
		if !pred.Call(v) {
			return false
		}
	}
	return true
}

func (p AndP[T]) String() string {
	acc := make([]string, 0, len(p.Preds))
	for _, pred := range p.Preds {
		acc = append(acc, pred.String())
	}
	return strings.Join(acc, " && ")
}

// OrP is a predicate that builds the adjunction of a group ValueP predicates
// (e.g. join ValueP predicates with ||)
type OrP[T any] struct {
	Preds []ValueP[T]
}

// Call returns true as soon as one of the grouped predicates returns true. An
// empty OrP matches everything.
func (p OrP[T]) Call(v T) bool {
	if len(p.Preds) == 0 {
		return true
	}
	for _, pred := range p.Preds {
		if pred.Call(v) {
			return true
		}
	}
	return false
}

func (p OrP[T]) String() string {
	acc := make([]string, 0, len(p.Preds))
	for _, pred := range p.Preds {
		acc = append(acc, pred.String())
	}
	return strings.Join(acc, " || ")
}

// NotP negates the given predicate
type NotP[T any] struct {
	Pred ValueP[T]
}

// Call returns the negation of the wrapped predicate
func (p NotP[T]) Call(v T) bool {
	return !p.Pred.Call(v)
}

func (p NotP[T]) String() string {
	return fmt.Sprintf("!(%s)", p.Pred.String())
}

// Eq is a predicate to assert a value equals the given one
func Eq[T comparable](v T) ValueP[T] {
	return EqP[T]{Value: v}
}

// Match is a predicate to assert a value satisfies the given function
func Match[T any](name string, fn func(T) bool) ValueP[T] {
	return FuncP[T]{Name: name, Fn: fn}
}

// eqAll transforms a list of values into a list of Eq predicates
func eqAll[T comparable](values []T) []ValueP[T] {
	preds := make([]ValueP[T], 0, len(values))
	for _, v := range values {
		preds = append(preds, Eq(v))
	}
	return preds
}
