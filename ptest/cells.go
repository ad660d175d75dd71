package ptest

import "github.com/capatazlib/go-pubtest/pub"

// cell is the name and default description of an assertion; the named
// assertions below cover every combination of
//
//	values \ completion | failure | finished | any
//	---------------------------------------------------
//	no value            | 1       | 2        | 3
//	at least one value  | 4       | 5        | 6
//	exactly one value   | 7       | 8        | 9
//	many values         | 10      | 11       | 12
//	any                 | 13      | 14       | n.a.
type cell struct {
	name        string
	description string
}

var (
	recorderCell      = cell{"Recorder", "Publisher records values"}
	observeCell       = cell{"Observe", "Publisher completes"}
	verifyCell        = cell{"Verify", "Publisher publishes expected values and completion"}
	assertCellDefault = cell{"Assert", "Publisher publishes expected values and completion"}

	noValueThenFailsCell = cell{
		"PublishesNoValueThenFailsWith",
		"Publisher publishes no value then fails with expected error",
	}
	noValueThenFinishesCell = cell{
		"PublishesNoValueThenFinishes",
		"Publisher publishes no value then finishes",
	}
	noValueCell = cell{
		"PublishesNoValue",
		"Publisher publishes no value",
	}
	atLeastThenFailsCell = cell{
		"EventuallyPublishesAtLeastThenFailsWith",
		"Publisher publishes at least the expected first value then fails with expected error",
	}
	atLeastThenFinishesCell = cell{
		"EventuallyFinishesPublishingAtLeast",
		"Publisher publishes at least the expected first value then finishes",
	}
	atLeastCell = cell{
		"EventuallyPublishesAtLeast",
		"Publisher publishes at least the expected first value",
	}
	onlyThenFailsCell = cell{
		"EventuallyPublishesOnlyThenFailsWith",
		"Publisher publishes exactly one expected value then fails with expected error",
	}
	onlyThenFinishesCell = cell{
		"EventuallyFinishesPublishingOnly",
		"Publisher publishes exactly one expected value then finishes",
	}
	onlyCell = cell{
		"EventuallyPublishesOnly",
		"Publisher publishes exactly one expected value",
	}
	manyThenFailsCell = cell{
		"EventuallyPublishesThenFailsWith",
		"Publisher publishes expected values then fails with expected error",
	}
	manyThenFinishesCell = cell{
		"EventuallyFinishesAfterPublishing",
		"Publisher publishes expected values then finishes",
	}
	manyThenCell = cell{
		"EventuallyPublishesThen",
		"Publisher publishes expected values then completes as expected",
	}
	manyCell = cell{
		"EventuallyPublishes",
		"Publisher publishes expected values",
	}
	failsCell = cell{
		"EventuallyFailsWith",
		"Publisher fails with expected error",
	}
	finishesCell = cell{
		"EventuallyFinishes",
		"Publisher finishes",
	}
)

// PublishesNoValueThenFailsWith asserts the publisher fails with the given
// error without publishing any value
func PublishesNoValueThenFailsWith[T any](t TestingT, p pub.Publisher[T], err error, opts ...Opt) bool {
	t.Helper()
	return assertCell(t, noValueThenFailsCell, p, NoValues[T](), FailsWith(err), opts)
}

// PublishesNoValueThenFinishes asserts the publisher finishes without
// publishing any value
func PublishesNoValueThenFinishes[T any](t TestingT, p pub.Publisher[T], opts ...Opt) bool {
	t.Helper()
	return assertCell(t, noValueThenFinishesCell, p, NoValues[T](), Finishes(), opts)
}

// PublishesNoValue asserts the publisher completes without publishing any
// value, regardless of how it completes
func PublishesNoValue[T any](t TestingT, p pub.Publisher[T], opts ...Opt) bool {
	t.Helper()
	return assertCell(t, noValueCell, p, NoValues[T](), AnyCompletion(), opts)
}

// EventuallyPublishesAtLeastThenFailsWith asserts the first value published is
// the given one, and that the publisher fails with the given error. Values
// after the first one are not checked.
func EventuallyPublishesAtLeastThenFailsWith[T comparable](
	t TestingT, p pub.Publisher[T], first T, err error, opts ...Opt,
) bool {
	t.Helper()
	return assertCell(t, atLeastThenFailsCell, p, FirstValue(first), FailsWith(err), opts)
}

// EventuallyFinishesPublishingAtLeast asserts the first value published is the
// given one, and that the publisher finishes. Values after the first one are
// not checked.
func EventuallyFinishesPublishingAtLeast[T comparable](t TestingT, p pub.Publisher[T], first T, opts ...Opt) bool {
	t.Helper()
	return assertCell(t, atLeastThenFinishesCell, p, FirstValue(first), Finishes(), opts)
}

// EventuallyPublishesAtLeast asserts the first value published is the given
// one, regardless of how the publisher completes. Values after the first one
// are not checked.
func EventuallyPublishesAtLeast[T comparable](t TestingT, p pub.Publisher[T], first T, opts ...Opt) bool {
	t.Helper()
	return assertCell(t, atLeastCell, p, FirstValue(first), AnyCompletion(), opts)
}

// EventuallyPublishesOnlyThenFailsWith asserts the publisher publishes exactly
// the given value and then fails with the given error
func EventuallyPublishesOnlyThenFailsWith[T comparable](
	t TestingT, p pub.Publisher[T], value T, err error, opts ...Opt,
) bool {
	t.Helper()
	return assertCell(t, onlyThenFailsCell, p, OnlyValue(value), FailsWith(err), opts)
}

// EventuallyFinishesPublishingOnly asserts the publisher publishes exactly the
// given value and then finishes
func EventuallyFinishesPublishingOnly[T comparable](t TestingT, p pub.Publisher[T], value T, opts ...Opt) bool {
	t.Helper()
	return assertCell(t, onlyThenFinishesCell, p, OnlyValue(value), Finishes(), opts)
}

// EventuallyPublishesOnly asserts the publisher publishes exactly the given
// value, regardless of how it completes
func EventuallyPublishesOnly[T comparable](t TestingT, p pub.Publisher[T], value T, opts ...Opt) bool {
	t.Helper()
	return assertCell(t, onlyCell, p, OnlyValue(value), AnyCompletion(), opts)
}

// EventuallyPublishesThenFailsWith asserts the publisher publishes exactly the
// given values, in order, and then fails with the given error
func EventuallyPublishesThenFailsWith[T comparable](
	t TestingT, p pub.Publisher[T], values []T, err error, opts ...Opt,
) bool {
	t.Helper()
	return assertCell(t, manyThenFailsCell, p, Values(values...), FailsWith(err), opts)
}

// EventuallyFinishesAfterPublishing asserts the publisher publishes exactly
// the given values, in order, and then finishes
func EventuallyFinishesAfterPublishing[T comparable](t TestingT, p pub.Publisher[T], values []T, opts ...Opt) bool {
	t.Helper()
	return assertCell(t, manyThenFinishesCell, p, Values(values...), Finishes(), opts)
}

// EventuallyPublishesThen asserts the publisher publishes exactly the given
// values, in order, and then completes with the given Completion. It is
// equivalent to EventuallyFinishesAfterPublishing or
// EventuallyPublishesThenFailsWith depending on the Completion.
func EventuallyPublishesThen[T comparable](
	t TestingT, p pub.Publisher[T], values []T, c pub.Completion, opts ...Opt,
) bool {
	t.Helper()
	return assertCell(t, manyThenCell, p, Values(values...), Completes(c), opts)
}

// EventuallyPublishes asserts the publisher publishes exactly the given
// values, in order, regardless of how it completes
func EventuallyPublishes[T comparable](t TestingT, p pub.Publisher[T], values []T, opts ...Opt) bool {
	t.Helper()
	return assertCell(t, manyCell, p, Values(values...), AnyCompletion(), opts)
}

// EventuallyFailsWith asserts the publisher fails with the given error,
// regardless of the values it publishes
func EventuallyFailsWith[T any](t TestingT, p pub.Publisher[T], err error, opts ...Opt) bool {
	t.Helper()
	return assertCell(t, failsCell, p, AnyValues[T](), FailsWith(err), opts)
}

// EventuallyFinishes asserts the publisher finishes, regardless of the values
// it publishes
func EventuallyFinishes[T any](t TestingT, p pub.Publisher[T], opts ...Opt) bool {
	t.Helper()
	return assertCell(t, finishesCell, p, AnyValues[T](), Finishes(), opts)
}
