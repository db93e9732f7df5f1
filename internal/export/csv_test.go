package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gradsift/gradsift/internal/jobfeed"
)

func TestWriteCSV(t *testing.T) {
	scored := &jobfeed.Posting{
		ID:           "1",
		Title:        "Graduate Analyst",
		AlternateURL: "https://example.com/jobs/1",
		Seniority:    "",
		Assessment: &jobfeed.Assessment{
			Bucket:  "HIGH_CERTAINTY",
			Score:   11,
			Reasons: []string{"Strong junior title signal", "Explicit entry-level / graduate language"},
		},
	}
	scored.Location.Name = "London"
	scored.Department.Name = "Operations"

	unscored := &jobfeed.Posting{ID: "2", Title: "Skipped"}

	path := filepath.Join(t.TempDir(), "jobs_output.csv")
	postings := &jobfeed.Postings{Items: []*jobfeed.Posting{scored, unscored}}

	if err := WriteCSV(path, postings); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected header and 1 row, got %d rows", len(rows))
	}

	header := rows[0]
	if header[0] != "title" || header[len(header)-1] != "reasons" {
		t.Fatalf("unexpected header: %v", header)
	}

	row := rows[1]
	if row[0] != "Graduate Analyst" || row[1] != "London" {
		t.Fatalf("unexpected row: %v", row)
	}
	if row[5] != "HIGH_CERTAINTY" || row[6] != "11" {
		t.Fatalf("unexpected bucket/score: %v", row)
	}
	if row[7] != "Strong junior title signal | Explicit entry-level / graduate language" {
		t.Fatalf("unexpected reasons column: %q", row[7])
	}
}

func TestWriteCSVEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := WriteCSV(path, &jobfeed.Postings{}); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
