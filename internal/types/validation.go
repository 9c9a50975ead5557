package types

import (
	"fmt"
	"strings"
)

// ------------------------------
// Client-side Validation
// ------------------------------

// ValidateText rejects empty or whitespace-only text before any network I/O.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("text cannot be empty")
	}
	return nil
}

// ValidateBatch checks that the batch is non-empty, every item carries an id
// and text, and ids are unique.
func ValidateBatch(texts []BatchText) error {
	if len(texts) == 0 {
		return NewValidationError("texts list cannot be empty")
	}
	seen := make(map[string]struct{}, len(texts))
	for i, t := range texts {
		if t.ID == "" {
			return NewValidationError(fmt.Sprintf("texts[%d]: id is required", i))
		}
		if strings.TrimSpace(t.Text) == "" {
			return NewValidationError(fmt.Sprintf("texts[%d] (%s): text cannot be empty", i, t.ID))
		}
		if _, dup := seen[t.ID]; dup {
			return NewValidationError(fmt.Sprintf("texts[%d]: duplicate id %q", i, t.ID))
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
