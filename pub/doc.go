/*
Package pub defines the Publisher contract observed by the ptest assertions,
together with a few small publishers that are handy when writing tests.

A Publisher emits zero or more values over time and then terminates with a
single Completion, which is either Finished or Failed with an error.

	subject := pub.NewSubject[int]()
	sub := subject.Subscribe(
		func(v int) { fmt.Println("value", v) },
		func(c pub.Completion) { fmt.Println("done", c) },
	)
	defer sub.Cancel()

	subject.Send(1)
	subject.Complete(pub.Finish())

Any type with a Subscribe method of the right shape is a Publisher, and
PublisherFunc adapts a plain function. FromFunc turns the usual Go worker
signature into a Publisher, running it on its own goroutine

	p := pub.FromFunc(func(ctx context.Context, emit pub.EmitFn[int]) error {
		for i := 0; i < 3; i++ {
			emit(i)
		}
		return nil
	})

The publishers in this package serialize their callbacks, never complete twice
and never emit after completion. Publishers written elsewhere are expected to
honor the same rules.
*/
package pub
