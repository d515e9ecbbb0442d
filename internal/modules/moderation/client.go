package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"unicode/utf8"
)

const overLimitReasoning = "Comment exceeds character limit."

// ModelOutcome is what a classification call produces: the provider's own
// response id and timestamp plus the raw structured-output text.
type ModelOutcome struct {
	ResponseID string
	CreatedAt  time.Time
	OutputText string
}

// ModelInvoker runs one classification against the external service.
// OpenAIInvoker is the production implementation; tests substitute a stub.
type ModelInvoker interface {
	Classify(ctx context.Context, comment string) (*ModelOutcome, error)
}

// Outcome pairs a moderation result with the provenance of the external
// call. ResponseID is empty when no external call was made (local guard
// paths), and such outcomes are not logged.
type Outcome struct {
	Result     Result
	ResponseID string
	CreatedAt  time.Time
}

// Client moderates comments. Guard rules run locally; classification is
// delegated to the invoker.
type Client struct {
	model  ModelInvoker
	maxLen int
}

func NewClient(model ModelInvoker, maxLen int) *Client {
	return &Client{model: model, maxLen: maxLen}
}

// Moderate classifies one comment.
//
// Comments over the length threshold short-circuit to "irrelevant" without
// an external call. A policy-violation trip from the invoker is recovered
// into a "harmful" result, not an error. Empty output is a ProtocolError,
// unparseable output a ParseError; everything else propagates unchanged.
func (c *Client) Moderate(ctx context.Context, comment string) (*Outcome, error) {
	if utf8.RuneCountInString(comment) > c.maxLen {
		return &Outcome{Result: Result{
			Category:      CategoryIrrelevant,
			Reasoning:     overLimitReasoning,
			ResultingText: comment,
		}}, nil
	}

	out, err := c.model.Classify(ctx, comment)
	if err != nil {
		var policy *PolicyViolationError
		if errors.As(err, &policy) {
			return &Outcome{Result: Result{
				Category:      CategoryHarmful,
				Reasoning:     "Comment flagged by moderation guard: " + policy.Detail,
				ResultingText: comment,
			}}, nil
		}
		return nil, err
	}

	if out.OutputText == "" {
		return nil, &ProtocolError{Message: "no output returned from the classification service"}
	}

	var result Result
	if err := json.Unmarshal([]byte(out.OutputText), &result); err != nil {
		return nil, &ParseError{Excerpt: excerpt(out.OutputText, 100), Err: err}
	}
	if err := result.Validate(); err != nil {
		return nil, &ParseError{Excerpt: excerpt(out.OutputText, 100), Err: err}
	}

	return &Outcome{
		Result:     result,
		ResponseID: out.ResponseID,
		CreatedAt:  out.CreatedAt,
	}, nil
}

func excerpt(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen])
}
