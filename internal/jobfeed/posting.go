package jobfeed

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	PostingIDField         = "ID"
	PostingDepartmentField = "Department"
)

type Postings struct {
	Items []*Posting
}

// Posting is a single job posting as returned by the feed. Content carries
// the raw HTML body of the advert.
type Posting struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title,omitempty"`
	Department struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"department,omitempty"`
	Location struct {
		ID   string `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"location,omitempty"`
	Seniority    string `json:"seniority,omitempty"`
	Content      string `json:"content,omitempty"`
	AlternateURL string `json:"alternate_url,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`

	// Assessment is attached by the suitability filter after scoring.
	Assessment *Assessment `json:"assessment,omitempty"`
}

// Assessment mirrors a scoring result on the posting it belongs to.
type Assessment struct {
	Bucket        string   `json:"bucket"`
	Score         int      `json:"score"`
	Reasons       []string `json:"reasons,omitempty"`
	ExcludeReason string   `json:"exclude_reason,omitempty"`
	YearsMin      *float64 `json:"years_min,omitempty"`
	YearsMax      *float64 `json:"years_max,omitempty"`
}

// ReasonsLine renders the reasons log as a single delimited string for
// tabular export.
func (a *Assessment) ReasonsLine() string {
	return strings.Join(a.Reasons, " | ")
}

type ExcludedPostings struct {
	Items []*ExcludedPosting
}

type ExcludedPosting struct {
	ID         string
	URL        string
	Title      string
	ExcludedAt time.Time
}

func (p *Postings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (p *Postings) ToExcluded() *ExcludedPostings {
	excluded := &ExcludedPostings{}
	for _, posting := range p.Items {
		excluded.Items = append(excluded.Items, &ExcludedPosting{
			ID:         posting.ID,
			URL:        posting.AlternateURL,
			Title:      posting.Title,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

func GetExcludedPostingsFromFile(path string) (*ExcludedPostings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedPostings{}, nil
	}

	var excluded ExcludedPostings
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedPostings) Append(s *ExcludedPostings) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedPostings) PostingsIDs() []string {
	ids := make([]string, 0)
	for _, posting := range e.Items {
		ids = append(ids, posting.ID)
	}
	return ids
}

func (e *ExcludedPostings) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

func (p *Posting) GetStringField(name string) string {
	switch name {
	case PostingIDField:
		return p.ID
	case PostingDepartmentField:
		return p.Department.Name

	default:
		return ""
	}
}

// ReportByDepartment groups postings by department and includes the scoring
// outcome for each.
func (p *Postings) ReportByDepartment() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range p.Items {
		key := posting.Department.Name
		if key == "" {
			key = "(no department)"
		}

		entry := map[string]string{
			"title":    posting.Title,
			"url":      posting.AlternateURL,
			"location": posting.Location.Name,
		}

		if posting.Assessment != nil {
			entry["bucket"] = posting.Assessment.Bucket
			entry["score"] = strconv.Itoa(posting.Assessment.Score)
			entry["reasons"] = posting.Assessment.ReasonsLine()
			if posting.Assessment.YearsMin != nil {
				entry["years_min"] = fmt.Sprintf("%g", *posting.Assessment.YearsMin)
			}
			if posting.Assessment.YearsMax != nil {
				entry["years_max"] = fmt.Sprintf("%g", *posting.Assessment.YearsMax)
			}
		}

		report[key] = append(report[key], entry)
	}
	return report
}

func (p *Postings) Len() int {
	return len(p.Items)
}

func (p *Postings) FindByID(id string) *Posting {
	for _, posting := range p.Items {
		if posting.ID == id {
			return posting
		}
	}
	return nil
}

// Exclude removes every posting whose field matches one of the targets and
// returns the removed IDs.
func (p *Postings) Exclude(name string, targets []string) []string {
	var excluded []string
	for _, target := range targets {
		for idx := len(p.Items) - 1; idx >= 0; idx-- {
			if p.Items[idx].GetStringField(name) == target {
				excluded = append(excluded, p.Items[idx].ID)
				p.RemoveByIndex(idx)
			}
		}
	}
	return excluded
}

// RemoveByIndex removes a posting from the list by index. Does not preserve order.
func (p *Postings) RemoveByIndex(idx int) {
	p.Items[idx] = p.Items[len(p.Items)-1]
	p.Items = p.Items[:len(p.Items)-1]
}
