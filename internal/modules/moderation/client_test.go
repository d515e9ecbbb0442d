package moderation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInvoker struct {
	calls   int
	outcome *ModelOutcome
	err     error
}

func (s *stubInvoker) Classify(context.Context, string) (*ModelOutcome, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}

func TestModerateOverLimitShortCircuits(t *testing.T) {
	invoker := &stubInvoker{}
	client := NewClient(invoker, 1000)
	comment := strings.Repeat("a", 1001)

	outcome, err := client.Moderate(context.Background(), comment)
	require.NoError(t, err)

	assert.Equal(t, 0, invoker.calls, "external service must not be invoked")
	assert.Equal(t, CategoryIrrelevant, outcome.Result.Category)
	assert.Equal(t, "Comment exceeds character limit.", outcome.Result.Reasoning)
	assert.Equal(t, comment, outcome.Result.ResultingText)
	assert.False(t, outcome.Result.IsTranslated)
	assert.False(t, outcome.Result.IsCorrected)
	assert.Empty(t, outcome.ResponseID)
}

func TestModerateAtLimitStillCalls(t *testing.T) {
	invoker := &stubInvoker{outcome: &ModelOutcome{
		ResponseID: "resp_1",
		OutputText: `{"isTranslated":false,"isCorrected":false,"resultingText":"ok","category":"question","validType":null,"reasoning":"r"}`,
	}}
	client := NewClient(invoker, 1000)

	_, err := client.Moderate(context.Background(), strings.Repeat("a", 1000))
	require.NoError(t, err)
	assert.Equal(t, 1, invoker.calls)
}

func TestModeratePolicyViolationRecovered(t *testing.T) {
	invoker := &stubInvoker{err: &PolicyViolationError{Detail: "flagged categories [harassment]"}}
	client := NewClient(invoker, 1000)

	outcome, err := client.Moderate(context.Background(), "some comment")
	require.NoError(t, err, "policy violations are recovered, not propagated")

	assert.Equal(t, CategoryHarmful, outcome.Result.Category)
	assert.Contains(t, outcome.Result.Reasoning, "flagged categories [harassment]")
	assert.Equal(t, "some comment", outcome.Result.ResultingText)
	assert.Empty(t, outcome.ResponseID)
}

func TestModerateEmptyOutputIsProtocolError(t *testing.T) {
	invoker := &stubInvoker{outcome: &ModelOutcome{ResponseID: "resp_1"}}
	client := NewClient(invoker, 1000)

	_, err := client.Moderate(context.Background(), "hi")
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
}

func TestModerateInvalidOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{name: "not json", output: "I will not classify that."},
		{name: "unknown category", output: `{"isTranslated":false,"isCorrected":false,"resultingText":"x","category":"report","validType":null,"reasoning":"r"}`},
		{name: "unknown validType", output: `{"isTranslated":false,"isCorrected":false,"resultingText":"x","category":"valid","validType":"spam","reasoning":"r"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoker := &stubInvoker{outcome: &ModelOutcome{ResponseID: "resp_1", OutputText: tt.output}}
			client := NewClient(invoker, 1000)

			_, err := client.Moderate(context.Background(), "hi")
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.LessOrEqual(t, len([]rune(parseErr.Excerpt)), 100)
		})
	}
}

func TestModerateExcerptIsBounded(t *testing.T) {
	invoker := &stubInvoker{outcome: &ModelOutcome{
		ResponseID: "resp_1",
		OutputText: strings.Repeat("x", 500),
	}}
	client := NewClient(invoker, 1000)

	_, err := client.Moderate(context.Background(), "hi")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Len(t, parseErr.Excerpt, 100)
}

func TestModerateUpstreamErrorPropagates(t *testing.T) {
	boom := errors.New("upstream exploded")
	invoker := &stubInvoker{err: boom}
	client := NewClient(invoker, 1000)

	_, err := client.Moderate(context.Background(), "hi")
	require.ErrorIs(t, err, boom)
}

func TestModerateSuccess(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	invoker := &stubInvoker{outcome: &ModelOutcome{
		ResponseID: "resp_abc",
		CreatedAt:  created,
		OutputText: `{"isTranslated":true,"isCorrected":false,"resultingText":"Is this wall still there?","category":"question","validType":null,"reasoning":"asks about availability"}`,
	}}
	client := NewClient(invoker, 1000)

	outcome, err := client.Moderate(context.Background(), "Is this wall still there?")
	require.NoError(t, err)

	assert.Equal(t, "resp_abc", outcome.ResponseID)
	assert.Equal(t, created, outcome.CreatedAt)
	assert.True(t, outcome.Result.IsTranslated)
	assert.Equal(t, CategoryQuestion, outcome.Result.Category)
	assert.Nil(t, outcome.Result.ValidType)
}
