/*
Package ptest offers assertions for publishers: asynchronous sources that
emit zero or more values and then terminate, either finishing or failing with
an error (see package pub).

Every assertion subscribes a Recorder to the publisher under test, blocks the
test goroutine until the publisher completes (or a timeout is reached), and
then checks the recorded values and completion against its expectations.
Failures are reported with t.Errorf, so the test keeps running.

	func TestGreeter(t *testing.T) {
		var p pub.Publisher[string] = newGreeter("hello", "world")

		ptest.EventuallyFinishesAfterPublishing(t, p, []string{"hello", "world"})
	}

Named assertions

Each named assertion is one combination of a values expectation (no value, at
least one value, exactly one value, many values, any values) and a completion
expectation (fails with an error, finishes, any completion). For example,
EventuallyPublishesAtLeastThenFailsWith only checks the first published value,
while EventuallyPublishesThenFailsWith checks the exact sequence.

All the named assertions are shortcuts of Assert, which receives both
expectations explicitly

	ptest.Assert(
		t,
		p,
		ptest.ValuesInOrder(ptest.Eq(1), ptest.Match("even", isEven)),
		ptest.FailsWith(errBoom),
		ptest.WithTimeout(100*time.Millisecond),
	)

Type parameters are inferred from the publisher argument when it is declared
as a pub.Publisher; with a concrete publisher type (e.g. *pub.Subject[int])
the type parameter must be given explicitly.

Timeouts

Assertions wait DefaultTimeout unless WithTimeout is given. When the publisher
does not complete in time, a *TimeoutError is reported; the values recorded so
far are still checked, and completion expectations fail.

Recorder

Recorder can be used directly when a test needs to interleave assertions with
the publisher lifecycle, e.g. waiting for a particular value before triggering
the next side effect

	rec, sub := ptest.Record(p)
	defer sub.Cancel()

	_, err := rec.WaitForValue(ctx, ptest.Eq("ready"))

Failing publishers

A publisher must complete at most once. A Recorder keeps the first completion,
ignores subsequent completions (and values sent after completion), counts them
on Publication.Ignored and logs a warning.
*/
package ptest
