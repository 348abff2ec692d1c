// Package rowparser turns raw delimited text into an ordered sequence of
// header-keyed row records. It is deliberately fail-soft: a partially
// malformed upload still yields records for the downstream validator to
// reject row by row, which gives the user actionable per-row errors instead
// of one opaque parse failure.
package rowparser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the field separator used when reading raw text. Configurable
// so exports produced with a non-comma delimiter can be re-imported.
var Delimiter rune = ','

// SetDelimiter sets the field separator for subsequent Parse calls.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// Record is one data row keyed by header name. Records are ephemeral: they
// exist only for the duration of a single import operation and never escape
// the validator boundary.
type Record map[string]string

// Result carries the parsed records plus a diagnostic count of lines whose
// shape did not match the header. Parsing never fails hard; malformed input
// shows up here and as missing-field errors downstream.
type Result struct {
	Records   []Record
	Malformed int
}

// Parse splits raw delimited text into header-keyed records. The first
// non-empty line is the header. Every value is whitespace-trimmed, fully
// empty lines are skipped, and ragged rows are tolerated: missing columns
// surface as empty strings, extra columns are dropped and counted.
func Parse(raw string) Result {
	return ParseReader(strings.NewReader(raw))
}

// ParseReader is Parse for an io.Reader source.
func ParseReader(r io.Reader) Result {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var result Result

	header, err := readHeader(reader)
	if err != nil || len(header) == 0 {
		if err != nil && err != io.EOF {
			result.Malformed++
		}
		log.WithField("malformed", result.Malformed).Debug("No header row found in input")
		return result
	}

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Unreadable line; keep going with the rest of the file.
			result.Malformed++
			continue
		}
		if isEmptyRow(fields) {
			continue
		}
		if len(fields) != len(header) {
			result.Malformed++
		}

		record := make(Record, len(header))
		for i, name := range header {
			if i < len(fields) {
				record[name] = strings.TrimSpace(fields[i])
			} else {
				record[name] = ""
			}
		}
		result.Records = append(result.Records, record)
	}

	log.WithFields(logrus.Fields{
		"count":     len(result.Records),
		"malformed": result.Malformed,
	}).Debug("Parsed delimited text into row records")

	return result
}

// readHeader returns the first non-empty line as trimmed header names.
func readHeader(reader *csv.Reader) ([]string, error) {
	for {
		fields, err := reader.Read()
		if err != nil {
			return nil, err
		}
		if isEmptyRow(fields) {
			continue
		}
		header := make([]string, len(fields))
		for i, f := range fields {
			header[i] = strings.TrimSpace(f)
		}
		return header, nil
	}
}

func isEmptyRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
