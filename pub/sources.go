package pub

import (
	"context"
	"sync"
)

// EmitFn is used by the function given to FromFunc to publish a value
type EmitFn[T any] func(T)

// FromFunc builds a Publisher that runs the given function on a new goroutine
// for every subscription. Every value given to emit gets published; when the
// function returns nil the publisher finishes, otherwise it fails with the
// returned error.
//
// Cancelling the subscription cancels the context given to the function, and
// any value emitted or result returned afterwards is discarded.
func FromFunc[T any](fn func(ctx context.Context, emit EmitFn[T]) error) Publisher[T] {
	return PublisherFunc[T](func(onValue func(T), onCompletion func(Completion)) Subscription {
		ctx, cancelFn := context.WithCancel(context.Background())

		var mux sync.Mutex
		stopped := false

		emit := func(v T) {
			mux.Lock()
			defer mux.Unlock()
			if stopped {
				return
			}
			onValue(v)
		}

		go func() {
			err := fn(ctx, emit)

			mux.Lock()
			defer mux.Unlock()
			if stopped {
				return
			}
			stopped = true
			cancelFn()
			if err != nil {
				onCompletion(Fail(err))
				return
			}
			onCompletion(Finish())
		}()

		return SubscriptionFunc(func() {
			mux.Lock()
			stopped = true
			mux.Unlock()
			cancelFn()
		})
	})
}

// Just builds a Publisher that synchronously publishes the given values to
// every subscriber and then finishes.
func Just[T any](values ...T) Publisher[T] {
	return sequence(values, Finish())
}

// Failing builds a Publisher that synchronously publishes the given values to
// every subscriber and then fails with the given error.
func Failing[T any](err error, values ...T) Publisher[T] {
	return sequence(values, Fail(err))
}

// Never builds a Publisher that does not publish values and never completes
func Never[T any]() Publisher[T] {
	return PublisherFunc[T](func(func(T), func(Completion)) Subscription {
		return SubscriptionFunc(func() {})
	})
}

func sequence[T any](values []T, c Completion) Publisher[T] {
	values = append(values[:0:0], values...)
	return PublisherFunc[T](func(onValue func(T), onCompletion func(Completion)) Subscription {
		for _, v := range values {
			onValue(v)
		}
		onCompletion(c)
		return SubscriptionFunc(func() {})
	})
}
