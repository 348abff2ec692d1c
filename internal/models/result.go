package models

import "fmt"

// ValidationError describes one (row, field) violation found while turning
// a raw row into a typed entry. It lives only for the duration of a single
// import attempt and is never persisted.
type ValidationError struct {
	Row     int    `json:"row"` // 1-based data row index
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value"` // original string value
}

// String renders the error for display in a review table.
func (e ValidationError) String() string {
	if e.Value == "" {
		return fmt.Sprintf("row %d, %s: %s", e.Row, e.Field, e.Message)
	}
	return fmt.Sprintf("row %d, %s: %s (value %q)", e.Row, e.Field, e.Message, e.Value)
}

// DuplicateWarning flags a candidate that closely matches an already
// persisted entry. Advisory only - it never blocks an import.
type DuplicateWarning struct {
	Row      int    `json:"row"`
	Message  string `json:"message"`
	Existing string `json:"existing"` // summary of the matching persisted entry
}

// String renders the warning for display in a review table.
func (w DuplicateWarning) String() string {
	return fmt.Sprintf("row %d: %s (existing: %s)", w.Row, w.Message, w.Existing)
}

// ImportResult is the terminal artifact of a batch import. Errors is nil,
// not an empty slice, when every row succeeded, so the success path stays
// trivially checkable.
type ImportResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
