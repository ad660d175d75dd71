package ptest_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/capatazlib/go-pubtest/pub"
	"github.com/capatazlib/go-pubtest/ptest"
)

var errDisconnected = errors.New("disconnected")

// newTicker is a publisher under test: it publishes the given number of ticks
// from its own goroutine and then fails, as a stream that loses its
// connection would
func newTicker(ticks int) pub.Publisher[string] {
	return pub.FromFunc(func(ctx context.Context, emit pub.EmitFn[string]) error {
		for i := 1; i <= ticks; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				emit(fmt.Sprintf("tick-%d", i))
			}
		}
		return errDisconnected
	})
}

func ExampleVerify() {
	_, err := ptest.Verify(
		newTicker(2),
		ptest.Values("tick-1", "tick-2"),
		ptest.FailsWith(errDisconnected),
	)
	fmt.Println(err)

	_, err = ptest.Verify(
		newTicker(2),
		ptest.FirstValue("tick-1"),
		ptest.Finishes(),
		ptest.WithDescription("ticker"),
	)
	var mismatch *ptest.MismatchError
	if errors.As(err, &mismatch) {
		fmt.Println(mismatch.Axis, "-", mismatch.Reason)
	}
	// Output:
	// <nil>
	// completion - publisher completed differently
}

func ExampleRecord() {
	rec, sub := ptest.Record(newTicker(3))
	defer sub.Cancel()

	v, err := rec.WaitForValue(context.Background(), ptest.Eq("tick-2"))
	fmt.Println(v, err)

	_ = rec.Wait(context.Background())
	c, _ := rec.Snapshot().Completion()
	fmt.Println(c)
	// Output:
	// tick-2 <nil>
	// Failed(disconnected)
}
