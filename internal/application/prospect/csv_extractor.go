package prospect

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"

	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
)

const DefaultMaxRows = 1_000_000

type ExtractResult struct {
	Candidates map[domain.Candidate]struct{}
	LinesRead  int64
}

// ValidRow reports whether a parsed row can satisfy the mapping. A row
// is invalid when the email index is below 1 or any configured index
// points past the end of the row. Total: never fails, only rejects.
func ValidRow(row []string, mapping domain.ColumnMapping) bool {
	cols := len(row)

	if mapping.EmailIndex < 1 || mapping.EmailIndex > cols {
		return false
	}
	if mapping.FirstNameIndex != nil && (*mapping.FirstNameIndex < 1 || *mapping.FirstNameIndex > cols) {
		return false
	}
	if mapping.LastNameIndex != nil && (*mapping.LastNameIndex < 1 || *mapping.LastNameIndex > cols) {
		return false
	}
	return true
}

// ExtractCandidates reads comma-separated, double-quote quoted rows and
// builds the deduplicated candidate set. A header row, when present, is
// discarded without counting toward LinesRead. Invalid rows are skipped
// silently; rows whose email fails validation are logged and skipped.
// Reading stops without error once maxRows rows have been counted.
func ExtractCandidates(r io.Reader, mapping domain.ColumnMapping, maxRows int64) (ExtractResult, error) {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	result := ExtractResult{
		Candidates: make(map[domain.Candidate]struct{}),
	}

	if mapping.HasHeaders {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return result, nil
			}
			return ExtractResult{}, fmt.Errorf("read header row: %w", err)
		}
	}

	for {
		if result.LinesRead >= maxRows {
			break
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ExtractResult{}, fmt.Errorf("read row %d: %w", result.LinesRead+1, err)
		}

		result.LinesRead++

		if !ValidRow(row, mapping) {
			continue
		}

		email := row[mapping.EmailIndex-1]

		firstName := ""
		if mapping.FirstNameIndex != nil {
			firstName = row[*mapping.FirstNameIndex-1]
		}

		lastName := ""
		if mapping.LastNameIndex != nil {
			lastName = row[*mapping.LastNameIndex-1]
		}

		candidate, err := domain.NewCandidate(email, firstName, lastName)
		if err != nil {
			log.Printf("skipping row %d: %v", result.LinesRead, err)
			continue
		}

		result.Candidates[candidate] = struct{}{}
	}

	return result, nil
}
