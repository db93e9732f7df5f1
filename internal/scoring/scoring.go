// Package scoring classifies job postings by their suitability for
// early-career candidates. The classifier is a pure function over four text
// fields: it never performs I/O and never fails, so it is safe to call
// concurrently without synchronization.
package scoring

import "strings"

// Bucket is the tri-state classification outcome.
type Bucket string

const (
	// HighCertainty marks postings that are almost certainly entry-level.
	HighCertainty Bucket = "HIGH_CERTAINTY"
	// LessCertain marks postings that are kept but need human review.
	LessCertain Bucket = "LESS_CERTAIN"
	// Excluded marks postings that are clearly senior and must be dropped.
	Excluded Bucket = "EXCLUDE"
)

// excludedScore is the sentinel score assigned to hard-excluded postings.
const excludedScore = -999

// Input holds the posting fields consumed by the classifier. All fields are
// optional free text; empty values simply fail to match anything.
type Input struct {
	Title       string
	Description string
	Department  string
	Seniority   string
}

// Result is the immutable outcome of a single classification.
type Result struct {
	Bucket Bucket
	Score  int
	// Reasons records, in evaluation order, every rule that fired.
	Reasons []string
	// ExcludeReason is set if and only if Bucket is Excluded. Only the
	// first hard-exclude trigger is recorded.
	ExcludeReason string
	// ParsedYearsMin and ParsedYearsMax carry the years-of-experience
	// figures recovered from the description, when any were found.
	ParsedYearsMin *float64
	ParsedYearsMax *float64
}

// Exclude reasons. Exactly one of these appears on an excluded result.
const (
	ExcludeSeniorTitle    = "Senior title/level keyword"
	ExcludeSeniorLanguage = "Senior language in description"
	ExcludeMinimumYears   = "Minimum experience 5+ years"
)

var seniorTitleExcludes = []string{
	"senior", "lead", "manager", "principal", "head", "director", "vp",
	"vice president", "chief", "c-level", "partner",
}

var strongPositiveTitle = []string{
	"graduate", "junior", "trainee", "assistant", "coordinator",
	"administrator", "admin", "apprentice", "intern", "placement",
}

var stealthJuniorTitle = []string{
	"analyst", "officer", "executive", "associate",
}

var strongPositiveText = []string{
	"entry level", "entry-level", "early career", "recent graduates",
	"new graduate", "graduate programme", "graduate program",
}

var trainingText = []string{
	"training provided", "full training", "we will train",
	"learning and development", "development opportunity",
}

var internshipEquivalentText = []string{
	"internship", "industrial placement", "placement year",
	"part-time", "part time", "volunteer", "volunteering",
	"university project", "capstone", "student society", "society",
	"dissertation", "coursework", "or equivalent experience",
}

var seniorLanguageExcludes = []string{
	"extensive experience", "significant experience", "expert",
	"seasoned", "own the strategy", "set strategy", "define strategy",
	"strategic ownership", "lead a team", "line manage", "people management",
}

var positiveVerbs = []string{
	"assist", "support", "coordinate", "help", "learn", "shadow",
	"contribute", "maintain",
}

var negativeVerbs = []string{
	"lead", "own", "drive strategy", "set strategy", "define roadmap",
	"manage a team", "line manage",
}

// norm produces the comparison form of a field: trimmed and case-folded.
func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func countHits(haystack string, needles []string) int {
	hits := 0
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			hits++
		}
	}
	return hits
}
