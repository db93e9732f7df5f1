// Package export writes scored postings to a tabular sink.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gradsift/gradsift/internal/jobfeed"
)

// csvHeader is the column layout of the export file.
var csvHeader = []string{
	"title", "location", "url", "department", "seniority",
	"bucket", "score", "reasons",
}

// WriteCSV writes the postings to a CSV file at the given path, one row per
// posting. Excluded postings never reach the exporter; postings without an
// assessment are skipped.
func WriteCSV(path string, postings *jobfeed.Postings) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, posting := range postings.Items {
		if posting.Assessment == nil {
			continue
		}

		row := []string{
			posting.Title,
			posting.Location.Name,
			posting.AlternateURL,
			posting.Department.Name,
			posting.Seniority,
			posting.Assessment.Bucket,
			strconv.Itoa(posting.Assessment.Score),
			posting.Assessment.ReasonsLine(),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing posting %s: %w", posting.ID, err)
		}
	}

	w.Flush()
	return w.Error()
}
