package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/responses"
)

// OpenAIInvoker classifies comments through the OpenAI Responses API using a
// stored prompt. A moderation-endpoint pre-flight stands in for the
// guardrails the hosted prompt relies on: flagged input never reaches the
// classification prompt.
type OpenAIInvoker struct {
	client   openai.Client
	promptID string
}

func NewOpenAIInvoker(apiKey, promptID string) *OpenAIInvoker {
	return &OpenAIInvoker{
		client:   openai.NewClient(option.WithAPIKey(apiKey)),
		promptID: promptID,
	}
}

func (o *OpenAIInvoker) Classify(ctx context.Context, comment string) (*ModelOutcome, error) {
	if err := o.preflight(ctx, comment); err != nil {
		return nil, err
	}

	resp, err := o.client.Responses.New(ctx, responses.ResponseNewParams{
		Prompt: responses.ResponsePromptParam{
			ID: o.promptID,
			Variables: map[string]responses.ResponsePromptVariableUnionParam{
				"comment": {OfString: openai.String(comment)},
			},
		},
		Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(comment)},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:   "moderation_result",
					Schema: resultJSONSchema(),
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.Code == "content_policy_violation" {
			return nil, &PolicyViolationError{Detail: apiErr.Message}
		}
		return nil, err
	}

	return &ModelOutcome{
		ResponseID: resp.ID,
		CreatedAt:  time.Unix(int64(resp.CreatedAt), 0).UTC(),
		OutputText: resp.OutputText(),
	}, nil
}

// preflight runs the comment through the moderation endpoint and converts a
// flagged verdict into a PolicyViolationError naming the tripped categories.
func (o *OpenAIInvoker) preflight(ctx context.Context, comment string) error {
	mod, err := o.client.Moderations.New(ctx, openai.ModerationNewParams{
		Input: openai.ModerationNewParamsInputUnion{OfString: openai.String(comment)},
	})
	if err != nil {
		return err
	}
	for _, result := range mod.Results {
		if !result.Flagged {
			continue
		}
		detail, merr := json.Marshal(result.Categories)
		if merr != nil {
			return &PolicyViolationError{Detail: "input flagged by the moderation endpoint"}
		}
		return &PolicyViolationError{Detail: "flagged categories " + string(detail)}
	}
	return nil
}
