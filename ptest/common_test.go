package ptest_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/capatazlib/go-pubtest/pub"
)

// asyncDelay is how long test publishers wait before running their behavior,
// so that signals always arrive on a different goroutine after the assertion
// started waiting
const asyncDelay = 10 * time.Millisecond

var (
	errCase1 = errors.New("error case 1")
	errCase2 = errors.New("error case 2")
)

// makePublisher builds a publisher that, for every subscription, runs the
// given behavior on a new goroutine after a short delay. The behavior drives a
// fresh Subject, so the same publisher can be asserted multiple times.
func makePublisher(behavior func(*pub.Subject[int])) pub.Publisher[int] {
	return pub.PublisherFunc[int](
		func(onValue func(int), onCompletion func(pub.Completion)) pub.Subscription {
			subject := pub.NewSubject[int]()
			sub := subject.Subscribe(onValue, onCompletion)
			go func() {
				time.Sleep(asyncDelay)
				behavior(subject)
			}()
			return sub
		},
	)
}

// sendThen returns a publisher behavior that sends the given values and then
// completes with c
func sendThen(c pub.Completion, values ...int) func(*pub.Subject[int]) {
	return func(s *pub.Subject[int]) {
		for _, v := range values {
			s.Send(v)
		}
		s.Complete(c)
	}
}

// fakeT is a TestingT that collects failures instead of failing the test, it
// is used to verify the failure paths of the assertions
type fakeT struct {
	mux    sync.Mutex
	errors []string
}

func (ft *fakeT) Helper() {}

func (ft *fakeT) Errorf(format string, args ...any) {
	ft.mux.Lock()
	defer ft.mux.Unlock()
	ft.errors = append(ft.errors, fmt.Sprintf(format, args...))
}

func (ft *fakeT) failures() []string {
	ft.mux.Lock()
	defer ft.mux.Unlock()
	return append(ft.errors[:0:0], ft.errors...)
}

// contains returns true when one of the reported failures contains the given
// text
func (ft *fakeT) contains(text string) bool {
	for _, msg := range ft.failures() {
		if strings.Contains(msg, text) {
			return true
		}
	}
	return false
}
