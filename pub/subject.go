package pub

import "sync"

// subscriber holds the callbacks of a single Subject subscription
type subscriber[T any] struct {
	onValue      func(T)
	onCompletion func(Completion)
}

// Subject is a Publisher that forwards every value sent to it to its current
// subscribers. Once completed, values are dropped and late subscribers receive
// the stored Completion right away.
//
// All signals are delivered while holding the Subject lock, so callbacks are
// serialized even when Send and Complete are called from different goroutines.
// Callbacks must not call back into the same Subject.
type Subject[T any] struct {
	mux         sync.Mutex
	nextID      uint64
	subscribers map[uint64]subscriber[T]
	completion  *Completion
}

// NewSubject returns a Subject without subscribers
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		subscribers: make(map[uint64]subscriber[T]),
	}
}

// Subscribe attaches the given callbacks to this Subject
func (s *Subject[T]) Subscribe(onValue func(T), onCompletion func(Completion)) Subscription {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.completion != nil {
		onCompletion(*s.completion)
		return SubscriptionFunc(func() {})
	}

	id := s.nextID
	s.nextID++
	s.subscribers[id] = subscriber[T]{onValue: onValue, onCompletion: onCompletion}

	var once sync.Once
	return SubscriptionFunc(func() {
		once.Do(func() {
			s.mux.Lock()
			defer s.mux.Unlock()
			delete(s.subscribers, id)
		})
	})
}

// Send delivers a value to all current subscribers. It returns false when the
// Subject already completed and the value was dropped.
func (s *Subject[T]) Send(v T) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.completion != nil {
		return false
	}
	for _, sub := range s.subscribers {
		sub.onValue(v)
	}
	return true
}

// Complete delivers the given Completion to all current subscribers and
// detaches them. It returns false when the Subject was already completed.
func (s *Subject[T]) Complete(c Completion) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.completion != nil {
		return false
	}
	s.completion = &c
	for id, sub := range s.subscribers {
		sub.onCompletion(c)
		delete(s.subscribers, id)
	}
	return true
}

// SubscriberCount returns the number of subscribers currently attached
func (s *Subject[T]) SubscriberCount() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.subscribers)
}
