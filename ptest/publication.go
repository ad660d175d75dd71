package ptest

import (
	"fmt"
	"strings"

	"github.com/capatazlib/go-pubtest/pub"
)

// Publication is the record of everything a publisher signaled to a Recorder
// during one subscription. Values are kept in emission order.
type Publication[T any] struct {
	values     []T
	completion pub.Completion
	completed  bool
	ignored    int
}

// Values returns the values that got published, in emission order
func (p Publication[T]) Values() []T {
	return p.values
}

// Completion returns the terminal signal of the publisher, the second result
// is false when the publisher did not complete (yet)
func (p Publication[T]) Completion() (pub.Completion, bool) {
	return p.completion, p.completed
}

// Ignored returns how many signals were dropped because they arrived after
// the publisher completed
func (p Publication[T]) Ignored() int {
	return p.ignored
}

// String returns an string representation for the Publication
func (p Publication[T]) String() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("values (%d):\n", len(p.values)))
	builder.WriteString(renderValues(p.values))
	builder.WriteString("completion: ")
	builder.WriteString(renderCompletion(p.completion, p.completed))
	if p.ignored > 0 {
		builder.WriteString(fmt.Sprintf("\nignored signals: %d", p.ignored))
	}
	return builder.String()
}

func renderValues[T any](values []T) string {
	var builder strings.Builder
	for i, v := range values {
		builder.WriteString(fmt.Sprintf("  %3d: %+v\n", i, v))
	}
	return builder.String()
}

func renderCompletion(c pub.Completion, completed bool) string {
	if !completed {
		return "<pending>"
	}
	return c.String()
}
