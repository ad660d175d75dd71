package ptest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/capatazlib/go-pubtest/pub"
)

func TestVerifyValues(t *testing.T) {
	isOdd := Match("odd", func(v int) bool { return v%2 == 1 })

	testCases := []struct {
		name   string
		exp    ValueExpectation[int]
		values []int
		reason string
	}{
		{"any without values", AnyValues[int](), nil, ""},
		{"any with values", AnyValues[int](), []int{1, 2}, ""},
		{"none", NoValues[int](), nil, ""},
		{"none with values", NoValues[int](), []int{1}, "expecting no values, but got 1"},
		{"first", FirstValue(1), []int{1, 5, 6}, ""},
		{"first without values", FirstValue(1), nil, "expecting at least one value, but got none"},
		{"first mismatch", FirstValue(1), []int{2, 1}, "first value did not match: criteria == 1, value 2"},
		{"only", OnlyValue(1), []int{1}, ""},
		{"only with more", OnlyValue(1), []int{1, 1}, "expecting exact match, but length is not the same: want 1, given 2"},
		{"exact", Values(1, 2, 3), []int{1, 2, 3}, ""},
		{"exact mismatch", Values(1, 2, 3), []int{1, 3, 2}, "expecting exact match, but entry 1 did not match: criteria == 2, value 3"},
		{"exact empty", Values[int](), nil, ""},
		{"matching", ValuesMatching(isOdd, Eq(2)), []int{7, 2}, ""},
		{"in order", ValuesInOrder(Eq(1), isOdd), []int{0, 1, 2, 3}, ""},
		{"in order empty", ValuesInOrder[int](), []int{1}, ""},
		{"in order pending", ValuesInOrder(Eq(3), Eq(1)), []int{1, 3}, "last match(es) didn't work - pending count: 1: [== 1]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := verifyValues(tc.exp, tc.values)
			if tc.reason == "" {
				assert.NoError(t, err)
				return
			}
			var mismatch *MismatchError
			if assert.True(t, errors.As(err, &mismatch)) {
				assert.Equal(t, ValuesAxis, mismatch.Axis)
				assert.Equal(t, tc.reason, mismatch.Reason)
				assert.Equal(t, tc.exp.String(), mismatch.Expected)
			}
		})
	}
}

func TestVerifyCompletion(t *testing.T) {
	errBoom := errors.New("boom")

	testCases := []struct {
		name      string
		exp       CompletionExpectation
		c         pub.Completion
		completed bool
		reason    string
	}{
		{"any finished", AnyCompletion(), pub.Finish(), true, ""},
		{"any pending", AnyCompletion(), pub.Completion{}, false, ""},
		{"finishes", Finishes(), pub.Finish(), true, ""},
		{"finishes but failed", Finishes(), pub.Fail(errBoom), true, "publisher completed differently"},
		{"finishes but pending", Finishes(), pub.Completion{}, false, "publisher did not complete"},
		{"fails with", FailsWith(errBoom), pub.Fail(errBoom), true, ""},
		{"fails with other", FailsWith(errBoom), pub.Fail(errors.New("boom")), true, "publisher completed differently"},
		{"completes", Completes(pub.Finish()), pub.Finish(), true, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := verifyCompletion(tc.exp, tc.c, tc.completed)
			if tc.reason == "" {
				assert.NoError(t, err)
				return
			}
			var mismatch *MismatchError
			if assert.True(t, errors.As(err, &mismatch)) {
				assert.Equal(t, CompletionAxis, mismatch.Axis)
				assert.Equal(t, tc.reason, mismatch.Reason)
				assert.Equal(t, renderCompletion(tc.c, tc.completed), mismatch.Actual)
			}
		})
	}
}

func TestVerifyPartialMatch(t *testing.T) {
	preds := []ValueP[int]{Eq(1), Eq(2), Eq(3)}

	assert.Empty(t, verifyPartialMatch(preds, []int{1, 9, 2, 9, 3}))
	assert.Len(t, verifyPartialMatch(preds, []int{1, 2}), 1)
	assert.Len(t, verifyPartialMatch(preds, []int{3, 2, 1}), 2)
	assert.Len(t, verifyPartialMatch(preds, nil), 3)
}

func TestExpectationStrings(t *testing.T) {
	assert.Equal(t, "any values", AnyValues[int]().String())
	assert.Equal(t, "no values", NoValues[int]().String())
	assert.Equal(t, "at least one value, first == 1", FirstValue(1).String())
	assert.Equal(t, "exactly 1 value(s) [== 1]", OnlyValue(1).String())
	assert.Equal(t, "values matching in order [== 1 && !(== 2)]", ValuesInOrder[int](
		AndP[int]{Preds: []ValueP[int]{Eq(1), NotP[int]{Pred: Eq(2)}}},
	).String())
	assert.Equal(t, "any completion", AnyCompletion().String())
	assert.Equal(t, "Finished", Finishes().String())
	assert.Equal(t, "Failed(boom)", FailsWith(errors.New("boom")).String())
}
