package pub

// Subscription is the handle returned by a Publisher when a subscriber gets
// attached. Calling Cancel detaches the subscriber; implementations must
// tolerate multiple Cancel calls.
type Subscription interface {
	Cancel()
}

// SubscriptionFunc allows the use of a plain function as a Subscription
type SubscriptionFunc func()

// Cancel executes the wrapped function
func (f SubscriptionFunc) Cancel() {
	f()
}

// Publisher is a source that emits zero or more values over time and then
// terminates with a single Completion.
//
// Implementations must guarantee that:
//
// * onValue and onCompletion are never called concurrently with each other
//
// * onCompletion is called at most once
//
// * onValue is never called after onCompletion
//
// The returned Subscription must be kept until the subscriber is no longer
// interested in the publisher signals.
type Publisher[T any] interface {
	Subscribe(onValue func(T), onCompletion func(Completion)) Subscription
}

// PublisherFunc allows the use of a plain function as a Publisher
type PublisherFunc[T any] func(onValue func(T), onCompletion func(Completion)) Subscription

// Subscribe executes the wrapped function
func (f PublisherFunc[T]) Subscribe(onValue func(T), onCompletion func(Completion)) Subscription {
	return f(onValue, onCompletion)
}
