// Package dataset turns stored feedback into newline-delimited JSON for
// model evaluation.
package dataset

import (
	"encoding/json"
	"strings"

	"github.com/wallmod/core/internal/modules/feedback"
	"github.com/wallmod/core/internal/modules/moderation"
)

// exportRecord is a feedback submission with the identifier stripped.
type exportRecord struct {
	Comment  string            `json:"comment"`
	Expected moderation.Result `json:"expected"`
}

// FormatJSONL serializes the items one JSON object per line, joined with a
// newline and without a trailing one. Empty input yields an empty string.
// Order follows the input slice.
func FormatJSONL(items []feedback.Request) (string, error) {
	var b strings.Builder
	for i, item := range items {
		line, err := json.Marshal(exportRecord{Comment: item.Comment, Expected: item.Expected})
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(line)
	}
	return b.String(), nil
}
