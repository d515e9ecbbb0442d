package moderation

import "fmt"

// Category classifies a comment. The set is closed; anything else is
// rejected, never coerced.
type Category string

const (
	CategoryValid      Category = "valid"
	CategoryQuestion   Category = "question"
	CategoryIrrelevant Category = "irrelevant"
	CategoryHarmful    Category = "harmful"
)

// ValidType refines a "valid" classification.
type ValidType string

const (
	ValidTypeConfirmation ValidType = "confirmation"
	ValidTypeClosed       ValidType = "closed"
	ValidTypeIllegal      ValidType = "illegal"
	ValidTypePrivate      ValidType = "private"
	ValidTypeOther        ValidType = "other"
)

// Result is the classification of one comment.
//
// ValidType is expected to be non-null only when Category is "valid"; that
// cross-field dependency is a convention carried by the moderation prompt,
// not enforced here.
type Result struct {
	IsTranslated  bool       `json:"isTranslated"`
	IsCorrected   bool       `json:"isCorrected"`
	ResultingText string     `json:"resultingText"`
	Category      Category   `json:"category"`
	ValidType     *ValidType `json:"validType"`
	Reasoning     string     `json:"reasoning"`
}

// Validate checks the closed enum sets.
func (r *Result) Validate() error {
	switch r.Category {
	case CategoryValid, CategoryQuestion, CategoryIrrelevant, CategoryHarmful:
	default:
		return fmt.Errorf("unknown category %q", r.Category)
	}
	if r.ValidType != nil {
		switch *r.ValidType {
		case ValidTypeConfirmation, ValidTypeClosed, ValidTypeIllegal, ValidTypePrivate, ValidTypeOther:
		default:
			return fmt.Errorf("unknown validType %q", *r.ValidType)
		}
	}
	return nil
}

// ResultLog is a moderation result plus its provenance, stored once per
// successful external classification and immutable afterwards.
type ResultLog struct {
	ResponseID       string `json:"responseId"`
	CommentID        int    `json:"commentId"`
	PromptID         string `json:"promptId"`
	CreatedAt        string `json:"createdAt"`
	Comment          string `json:"comment"`
	ModerationResult Result `json:"moderationResult"`
}

// resultJSONSchema is the output shape requested from the classification
// service. It mirrors Result field for field.
func resultJSONSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"isTranslated": map[string]interface{}{
				"type":        "boolean",
				"description": "True if the comment was not in English",
			},
			"isCorrected": map[string]interface{}{
				"type":        "boolean",
				"description": "True if the comment contained spelling or grammatical errors that were corrected",
			},
			"resultingText": map[string]interface{}{
				"type":        "string",
				"description": "The comment text in English. If the original was not English, this is the translation. If it was English, this is the original text.",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"valid", "question", "irrelevant", "harmful"},
				"description": "The classification of the comment based on its content",
			},
			"validType": map[string]interface{}{
				"type":        []string{"string", "null"},
				"enum":        []interface{}{"confirmation", "closed", "illegal", "private", "other", nil},
				"description": "When classified as 'valid', the nature of the comment based on its content",
			},
			"reasoning": map[string]interface{}{
				"type":        "string",
				"description": "Brief explanation of the classification decision",
			},
		},
		"required": []string{"isTranslated", "isCorrected", "resultingText", "category", "validType", "reasoning"},
	}
}
