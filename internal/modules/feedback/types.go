package feedback

import (
	"fmt"

	"github.com/wallmod/core/internal/modules/moderation"
)

// Request is a self-contained feedback submission: a comment together with
// the classification the submitter expected. Stored as-is under its id.
type Request struct {
	ID       string            `json:"id"`
	Comment  string            `json:"comment"`
	Expected moderation.Result `json:"expected"`
}

// Log is a human vote merged onto the moderation result it refers to.
// Stored separately from the original result and never mutated.
type Log struct {
	moderation.ResultLog
	Vote   bool   `json:"vote"`
	Reason string `json:"reason"`
}

// NotFoundError reports that no moderation result exists for the referenced
// response id.
type NotFoundError struct {
	ResponseID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("moderation result %s not found", e.ResponseID)
}

// standaloneDTO validates the self-contained shape. Pointer fields make an
// explicit false/empty value distinguishable from an absent key.
type standaloneDTO struct {
	ID       *string    `json:"id"       binding:"required"`
	Comment  *string    `json:"comment"  binding:"required"`
	Expected *resultDTO `json:"expected" binding:"required"`
}

type resultDTO struct {
	IsTranslated  *bool   `json:"isTranslated"  binding:"required"`
	IsCorrected   *bool   `json:"isCorrected"   binding:"required"`
	ResultingText *string `json:"resultingText" binding:"required"`
	Category      string  `json:"category"      binding:"required,oneof=valid question irrelevant harmful"`
	ValidType     *string `json:"validType"     binding:"omitempty,oneof=confirmation closed illegal private other"`
	Reasoning     *string `json:"reasoning"     binding:"required"`
}

// referenceDTO validates the reference shape. Vote is a pointer so a literal
// false still counts as present.
type referenceDTO struct {
	ResponseID string `json:"responseId" binding:"required"`
	Vote       *bool  `json:"vote"       binding:"required"`
	Reason     string `json:"reason"     binding:"required"`
}

func (d *standaloneDTO) toRequest() *Request {
	result := moderation.Result{
		IsTranslated:  *d.Expected.IsTranslated,
		IsCorrected:   *d.Expected.IsCorrected,
		ResultingText: *d.Expected.ResultingText,
		Category:      moderation.Category(d.Expected.Category),
		Reasoning:     *d.Expected.Reasoning,
	}
	if d.Expected.ValidType != nil {
		vt := moderation.ValidType(*d.Expected.ValidType)
		result.ValidType = &vt
	}
	return &Request{
		ID:       *d.ID,
		Comment:  *d.Comment,
		Expected: result,
	}
}
