package importer

import (
	"context"
	"fmt"

	"garagelog/internal/duplicates"
	"garagelog/internal/logging"
	"garagelog/internal/models"
	"garagelog/internal/rowparser"
	"garagelog/internal/validator"
)

// RosterFunc lists the vehicles entries can be logged against.
type RosterFunc func(ctx context.Context) ([]models.Vehicle, error)

// ExistingFunc lists the already persisted entries of one kind, used for
// duplicate detection.
type ExistingFunc func(ctx context.Context, kind models.EntryKind) ([]models.Entry, error)

// Pipeline wires the full import flow: parse, validate and resolve, detect
// duplicates, then batch-submit. Collaborators are injected as narrow
// functions so any persistence backend can drive it.
type Pipeline struct {
	Kind     models.EntryKind
	Roster   RosterFunc
	Existing ExistingFunc
	Submit   SubmitFunc
	Progress ProgressFunc
	Defaults validator.Defaults
	Logger   logging.Logger
}

// Report is everything one import attempt produced, surfaced to the caller
// as values. Validation errors and duplicate warnings are meant to be shown
// in a reviewable table; Result is the final tally.
type Report struct {
	Parsed     int
	Malformed  int
	Candidates []models.Candidate
	Errors     []models.ValidationError
	Warnings   []models.DuplicateWarning
	Result     models.ImportResult
}

// Run executes the pipeline over raw CSV text. Only a missing roster is a
// hard error - without it no reference can be resolved. Everything else is
// reported per row in the returned Report.
func (p *Pipeline) Run(ctx context.Context, raw string) (Report, error) {
	var report Report

	roster, err := p.Roster(ctx)
	if err != nil {
		return report, fmt.Errorf("error listing vehicles: %w", err)
	}

	parsed := rowparser.Parse(raw)
	report.Parsed = len(parsed.Records)
	report.Malformed = parsed.Malformed

	for i, rec := range parsed.Records {
		row := i + 1
		entry, errs := validator.Validate(rec, row, p.Kind, roster, p.Defaults)
		if len(errs) > 0 {
			report.Errors = append(report.Errors, errs...)
			continue
		}
		report.Candidates = append(report.Candidates, models.Candidate{Row: row, Entry: entry})
	}

	p.Logger.Info("Validated import rows",
		logging.Field{Key: logging.FieldKind, Value: p.Kind},
		logging.Field{Key: logging.FieldCount, Value: report.Parsed},
		logging.Field{Key: logging.FieldErrors, Value: len(report.Errors)})

	if len(report.Candidates) == 0 {
		return report, nil
	}

	// One existing-entries lookup per batch, not per row. A failed lookup
	// degrades duplicate detection to "no warnings" instead of blocking
	// the import.
	existing, err := p.Existing(ctx, p.Kind)
	if err != nil {
		p.Logger.WithError(err).Warn("Could not list existing entries, skipping duplicate detection")
	} else {
		report.Warnings = duplicates.Detect(report.Candidates, existing)
	}

	report.Result = New(p.Logger).Run(ctx, report.Candidates, p.Submit, p.Progress)
	return report, nil
}
