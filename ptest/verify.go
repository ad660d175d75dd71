package ptest

import (
	"fmt"

	"github.com/capatazlib/go-pubtest/pub"
)

// verifyExactMatch is an utility function that checks the input slice of ValueP
// predicate match 1 to 1 with a given list of published values.
func verifyExactMatch[T any](preds []ValueP[T], given []T) string {
	if len(preds) != len(given) {
		return fmt.Sprintf(
			"expecting exact match, but length is not the same: want %d, given %d",
			len(preds),
			len(given),
		)
	}
	for i, pred := range preds {
		if !pred.Call(given[i]) {
			return fmt.Sprintf(
				"expecting exact match, but entry %d did not match: criteria %s, value %+v",
				i,
				pred.String(),
				given[i],
			)
		}
	}
	return ""
}

// verifyPartialMatch is a utility function that matches (in order) a list of
// ValueP predicates to a list of published values.
//
// The published values need to match in order all the list of given
// predicates, however, there does not need to be a one to one match between
// the values and the predicates; we may have more values and it is ok to skip
// some values in between matches.
//
// This function returns all predicates that didn't match (in order) the given
// values. If the returned slice is empty, it means there was a succesful match.
func verifyPartialMatch[T any](preds []ValueP[T], given []T) []ValueP[T] {
	for len(preds) > 0 {
		// if we went through all the given values, we did not partially match
		if len(given) == 0 {
			return preds
		}

		// if predicate matches given, we move forward on both predicates and
		// given; otherwise we move forward only on given
		if preds[0].Call(given[0]) {
			preds = preds[1:]
		}
		given = given[1:]
	}

	// once preds is empty, we know we did all the partial matches
	return preds
}

// verifyValues checks the published values against the given expectation, it
// returns a *MismatchError when they do not match
func verifyValues[T any](exp ValueExpectation[T], values []T) error {
	var reason string

	switch exp.tag {
	case noValues:
		if len(values) > 0 {
			reason = fmt.Sprintf("expecting no values, but got %d", len(values))
		}
	case firstValue:
		// only the first value is checked, the publisher may publish more
		if len(values) == 0 {
			reason = "expecting at least one value, but got none"
		} else if !exp.preds[0].Call(values[0]) {
			reason = fmt.Sprintf(
				"first value did not match: criteria %s, value %+v",
				exp.preds[0].String(),
				values[0],
			)
		}
	case exactValues:
		reason = verifyExactMatch(exp.preds, values)
	case inOrderValues:
		pending := verifyPartialMatch(exp.preds, values)
		if len(pending) > 0 {
			reason = fmt.Sprintf(
				"last match(es) didn't work - pending count: %d: %s",
				len(pending),
				renderPreds(pending),
			)
		}
	}

	if reason == "" {
		return nil
	}
	return &MismatchError{
		Axis:     ValuesAxis,
		Reason:   reason,
		Expected: exp.String(),
		Actual:   renderValues(values),
	}
}

// verifyCompletion checks the publisher completion against the given
// expectation, it returns a *MismatchError when they do not match
func verifyCompletion(exp CompletionExpectation, c pub.Completion, completed bool) error {
	if !exp.constrained {
		return nil
	}

	var reason string
	if !completed {
		reason = "publisher did not complete"
	} else if !c.Equal(exp.completion) {
		reason = "publisher completed differently"
	}

	if reason == "" {
		return nil
	}
	return &MismatchError{
		Axis:     CompletionAxis,
		Reason:   reason,
		Expected: exp.String(),
		Actual:   renderCompletion(c, completed),
	}
}
