package ptest

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/capatazlib/go-pubtest/pub"
)

// ErrCompletedWithoutMatch is returned by Recorder.WaitForValue when the
// publisher completed before publishing a value that matched the predicate
var ErrCompletedWithoutMatch = errors.New("publisher completed without a matching value")

// Recorder subscribes to a publisher and accumulates its values and its
// completion, so they can be inspected from the test goroutine.
//
// The publisher may call the Recorder from any goroutine; all mutations are
// serialized with an internal lock.
type Recorder[T any] struct {
	id  uuid.UUID
	log logrus.FieldLogger

	mux        sync.Mutex
	values     []T
	completion *pub.Completion
	ignored    int

	// changedCh gets closed (and replaced) every time the record changes
	changedCh chan struct{}
	// doneCh gets closed once, when the first completion arrives
	doneCh chan struct{}
}

// NewRecorder returns a Recorder that is not subscribed to any publisher yet.
// Only the WithLogger option is relevant for a Recorder.
func NewRecorder[T any](opts ...Opt) *Recorder[T] {
	return newRecorder[T](newSettings(recorderCell, opts))
}

func newRecorder[T any](s settings) *Recorder[T] {
	id := uuid.New()
	return &Recorder[T]{
		id:        id,
		log:       s.logger.WithField("recorder_id", id.String()),
		values:    make([]T, 0, 10),
		changedCh: make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Record creates a new Recorder and subscribes it to the given publisher. The
// returned Subscription must be kept until the recorded publication is no
// longer needed.
func Record[T any](p pub.Publisher[T], opts ...Opt) (*Recorder[T], pub.Subscription) {
	rec := NewRecorder[T](opts...)
	return rec, rec.Subscribe(p)
}

// ID returns the unique identifier of this Recorder, it is included in every
// log entry and Report
func (r *Recorder[T]) ID() uuid.UUID {
	return r.id
}

// Subscribe attaches this Recorder callbacks to the given publisher
func (r *Recorder[T]) Subscribe(p pub.Publisher[T]) pub.Subscription {
	return p.Subscribe(r.OnValue, r.OnCompletion)
}

// notifyChange wakes up goroutines waiting on the record, it must be called
// with the lock held
func (r *Recorder[T]) notifyChange() {
	close(r.changedCh)
	r.changedCh = make(chan struct{})
}

// OnValue appends the given value to the record. Values that arrive after the
// completion are ignored.
func (r *Recorder[T]) OnValue(v T) {
	r.mux.Lock()
	defer r.mux.Unlock()

	if r.completion != nil {
		r.ignored++
		r.log.WithFields(logrus.Fields{
			"value":      v,
			"completion": r.completion.String(),
		}).Warn("publisher sent a value after completion, ignoring it")
		return
	}

	r.values = append(r.values, v)
	r.notifyChange()
}

// OnCompletion stores the completion of the publisher and signals Done. Only
// the first completion is kept; subsequent ones are ignored.
func (r *Recorder[T]) OnCompletion(c pub.Completion) {
	r.mux.Lock()
	defer r.mux.Unlock()

	if r.completion != nil {
		r.ignored++
		r.log.WithFields(logrus.Fields{
			"completion":         r.completion.String(),
			"ignored_completion": c.String(),
		}).Warn("publisher completed more than once, keeping the first completion")
		return
	}

	r.completion = &c
	close(r.doneCh)
	r.notifyChange()
}

// Done returns a channel that gets closed when the publisher completes
func (r *Recorder[T]) Done() <-chan struct{} {
	return r.doneCh
}

// Wait blocks until the publisher completes or the given context is done, in
// which case the context error is returned
func (r *Recorder[T]) Wait(ctx context.Context) error {
	select {
	case <-r.doneCh:
		return nil
	default:
	}

	select {
	case <-r.doneCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitForValue blocks until a recorded value matches the given predicate and
// returns it. When the publisher completes first ErrCompletedWithoutMatch is
// returned; when the context is done first, the context error is returned.
func (r *Recorder[T]) WaitForValue(ctx context.Context, pred ValueP[T]) (T, error) {
	var zero T
	evIx := 0

	for {
		r.mux.Lock()
		pending := r.values[evIx:len(r.values):len(r.values)]
		completed := r.completion != nil
		changedCh := r.changedCh
		r.mux.Unlock()

		// the predicate runs outside the lock, values are never modified once
		// appended
		for _, v := range pending {
			evIx++
			if pred.Call(v) {
				return v, nil
			}
		}

		if completed {
			return zero, ErrCompletedWithoutMatch
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-changedCh:
		}
	}
}

// Snapshot returns a copy of everything this Recorder has collected so far
func (r *Recorder[T]) Snapshot() Publication[T] {
	r.mux.Lock()
	defer r.mux.Unlock()

	p := Publication[T]{
		values:  append(r.values[:0:0], r.values...),
		ignored: r.ignored,
	}
	if r.completion != nil {
		p.completion = *r.completion
		p.completed = true
	}
	return p
}
