// Package importer submits validated candidate entries to a persistence
// collaborator one at a time, tracking success and failure per row. The
// batch continues on error: one malformed row must not prevent the other
// rows from being saved.
package importer

import (
	"context"
	"fmt"

	"garagelog/internal/logging"
	"garagelog/internal/models"
)

// SubmitFunc persists a single entry. A non-nil error marks the row failed;
// it is recorded and the batch moves on.
type SubmitFunc func(ctx context.Context, entry models.Entry) error

// Progress reports batch progress after every row.
type Progress struct {
	Percent int    // monotonic, 0-100
	Label   string // human-readable summary of the row just processed
}

// ProgressFunc receives a Progress update after each row.
type ProgressFunc func(Progress)

// Importer runs batch submissions.
type Importer struct {
	logger logging.Logger
}

// New creates an Importer with the given logger.
func New(logger logging.Logger) *Importer {
	return &Importer{logger: logger}
}

// Run submits the candidates strictly sequentially. Sequential processing
// keeps progress percentages monotonic and meaningful and bounds load on
// the persistence collaborator. A submission failure increments the failure
// counter and appends a row-indexed message; it never aborts the remaining
// rows. Errors stays nil when every row succeeded.
func (im *Importer) Run(ctx context.Context, candidates []models.Candidate, submit SubmitFunc, progress ProgressFunc) models.ImportResult {
	var result models.ImportResult

	total := len(candidates)
	for i, c := range candidates {
		label := c.Entry.Label()

		if err := submit(ctx, c.Entry); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d (%s): %v", c.Row, label, err))
			im.logger.WithError(err).Warn("Entry submission failed",
				logging.Field{Key: logging.FieldRow, Value: c.Row})
		} else {
			result.Success++
		}

		if progress != nil {
			progress(Progress{
				Percent: (i + 1) * 100 / total,
				Label:   label,
			})
		}
	}

	im.logger.Info("Batch import finished",
		logging.Field{Key: "success", Value: result.Success},
		logging.Field{Key: "failed", Value: result.Failed})

	return result
}
