package prospect_test

import (
	"strings"
	"testing"

	app "github.com/mhkarimi/prospect-import/internal/application/prospect"
	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
)

func intPtr(v int) *int {
	return &v
}

func TestValidRow(t *testing.T) {
	t.Parallel()

	row := []string{"alice@example.com", "Alice", "Ames"}

	tests := []struct {
		name    string
		row     []string
		mapping domain.ColumnMapping
		want    bool
	}{
		{
			name:    "all indices in bounds",
			row:     row,
			mapping: domain.ColumnMapping{EmailIndex: 1, FirstNameIndex: intPtr(2), LastNameIndex: intPtr(3)},
			want:    true,
		},
		{
			name:    "email index below one",
			row:     row,
			mapping: domain.ColumnMapping{EmailIndex: 0},
			want:    false,
		},
		{
			name:    "email index past end of row",
			row:     []string{"alice@example.com"},
			mapping: domain.ColumnMapping{EmailIndex: 2},
			want:    false,
		},
		{
			name:    "first name index past end of row",
			row:     row,
			mapping: domain.ColumnMapping{EmailIndex: 1, FirstNameIndex: intPtr(4)},
			want:    false,
		},
		{
			name:    "last name index past end of row",
			row:     row,
			mapping: domain.ColumnMapping{EmailIndex: 1, LastNameIndex: intPtr(4)},
			want:    false,
		},
		{
			name:    "optional indices absent",
			row:     []string{"alice@example.com"},
			mapping: domain.ColumnMapping{EmailIndex: 1},
			want:    true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := app.ValidRow(tc.row, tc.mapping); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestExtractCandidatesSkipsHeader(t *testing.T) {
	t.Parallel()

	content := "email,first,last\nalice@example.com,Alice,Ames\nbob@example.com,Bob,Burns\n"
	mapping := domain.ColumnMapping{
		EmailIndex:     1,
		FirstNameIndex: intPtr(2),
		LastNameIndex:  intPtr(3),
		HasHeaders:     true,
	}

	result, err := app.ExtractCandidates(strings.NewReader(content), mapping, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.LinesRead != 2 {
		t.Fatalf("expected 2 lines read, got %d", result.LinesRead)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(result.Candidates))
	}
}

func TestExtractCandidatesDedupByTriple(t *testing.T) {
	t.Parallel()

	content := "alice@example.com,Alice,Ames\nalice@example.com,Alice,Ames\nalice@example.com,Alicia,Ames\n"
	mapping := domain.ColumnMapping{
		EmailIndex:     1,
		FirstNameIndex: intPtr(2),
		LastNameIndex:  intPtr(3),
	}

	result, err := app.ExtractCandidates(strings.NewReader(content), mapping, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.LinesRead != 3 {
		t.Fatalf("expected 3 lines read, got %d", result.LinesRead)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 candidates after dedup, got %d", len(result.Candidates))
	}
}

func TestExtractCandidatesShortRowSkippedButCounted(t *testing.T) {
	t.Parallel()

	content := "loner\nalice@example.com,Alice\n"
	mapping := domain.ColumnMapping{
		EmailIndex:     2,
		FirstNameIndex: intPtr(1),
	}

	result, err := app.ExtractCandidates(strings.NewReader(content), mapping, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.LinesRead != 2 {
		t.Fatalf("expected 2 lines read, got %d", result.LinesRead)
	}
	if len(result.Candidates) != 0 {
		t.Fatalf("expected 0 candidates, got %d", len(result.Candidates))
	}
}

func TestExtractCandidatesBadEmailSkipped(t *testing.T) {
	t.Parallel()

	content := "not-an-email,Alice,Ames\nbob@example.com,Bob,Burns\n"
	mapping := domain.ColumnMapping{
		EmailIndex:     1,
		FirstNameIndex: intPtr(2),
		LastNameIndex:  intPtr(3),
	}

	result, err := app.ExtractCandidates(strings.NewReader(content), mapping, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.LinesRead != 2 {
		t.Fatalf("expected 2 lines read, got %d", result.LinesRead)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(result.Candidates))
	}
}

func TestExtractCandidatesAbsentNameIndicesDefaultEmpty(t *testing.T) {
	t.Parallel()

	content := "alice@example.com,Alice,Ames\n"
	mapping := domain.ColumnMapping{EmailIndex: 1}

	result, err := app.ExtractCandidates(strings.NewReader(content), mapping, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := domain.Candidate{Email: "alice@example.com"}
	if _, ok := result.Candidates[want]; !ok {
		t.Fatalf("expected candidate with empty names, got %v", result.Candidates)
	}
}

func TestExtractCandidatesQuotedFields(t *testing.T) {
	t.Parallel()

	content := "\"alice@example.com\",\"Ames, Alice\",\"\"\n"
	mapping := domain.ColumnMapping{
		EmailIndex:     1,
		FirstNameIndex: intPtr(2),
		LastNameIndex:  intPtr(3),
	}

	result, err := app.ExtractCandidates(strings.NewReader(content), mapping, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := domain.Candidate{Email: "alice@example.com", FirstName: "Ames, Alice"}
	if _, ok := result.Candidates[want]; !ok {
		t.Fatalf("expected quoted candidate, got %v", result.Candidates)
	}
}

func TestExtractCandidatesStopsAtMaxRows(t *testing.T) {
	t.Parallel()

	content := "a@example.com\nb@example.com\nc@example.com\n"
	mapping := domain.ColumnMapping{EmailIndex: 1}

	result, err := app.ExtractCandidates(strings.NewReader(content), mapping, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.LinesRead != 2 {
		t.Fatalf("expected 2 lines read, got %d", result.LinesRead)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(result.Candidates))
	}
}

func TestExtractCandidatesHeaderOnlyFile(t *testing.T) {
	t.Parallel()

	mapping := domain.ColumnMapping{EmailIndex: 1, HasHeaders: true}

	result, err := app.ExtractCandidates(strings.NewReader("email\n"), mapping, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.LinesRead != 0 {
		t.Fatalf("expected 0 lines read, got %d", result.LinesRead)
	}
}
