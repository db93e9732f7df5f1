package scoring

import (
	"fmt"
	"regexp"
	"strconv"
)

// yearsSpec holds the years-of-experience figures recovered from a
// description, together with an evidence string describing what was parsed.
// Min and Max are independently optional; both nil means nothing matched.
type yearsSpec struct {
	Min      *float64
	Max      *float64
	Evidence string
}

// yearsPattern pairs a regular expression with a handler turning its capture
// groups into a yearsSpec.
type yearsPattern struct {
	re    *regexp.Regexp
	parse func(groups []string) yearsSpec
}

// yearsPatterns is tried in order and the first match wins, even when a later
// pattern would also match elsewhere in the text. The ordering encodes
// precedence: an explicit range beats "up to", which beats "N+", which beats
// "at least".
var yearsPatterns = []yearsPattern{
	{
		// "1-2 years", "1 – 2 years", "0 to 2 years"
		re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:-|–|to)\s*(\d+(?:\.\d+)?)\s*(?:\+?\s*)?years?`),
		parse: func(groups []string) yearsSpec {
			mn := parseYears(groups[1])
			mx := parseYears(groups[2])
			return yearsSpec{
				Min:      &mn,
				Max:      &mx,
				Evidence: fmt.Sprintf("Years range: %g-%g", mn, mx),
			}
		},
	},
	{
		// "up to 2 years"
		re: regexp.MustCompile(`(?i)up to\s*(\d+(?:\.\d+)?)\s*years?`),
		parse: func(groups []string) yearsSpec {
			mn := 0.0
			mx := parseYears(groups[1])
			return yearsSpec{
				Min:      &mn,
				Max:      &mx,
				Evidence: fmt.Sprintf("Years: up to %g", mx),
			}
		},
	},
	{
		// "2+ years", "3+ years"
		re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+\s*years?`),
		parse: func(groups []string) yearsSpec {
			mn := parseYears(groups[1])
			return yearsSpec{
				Min:      &mn,
				Evidence: fmt.Sprintf("Years: %g+", mn),
			}
		},
	},
	{
		// "at least 2 years", "minimum of 1 year"
		re: regexp.MustCompile(`(?i)(?:at least|min(?:imum)?(?: of)?)\s*(\d+(?:\.\d+)?)\s*years?`),
		parse: func(groups []string) yearsSpec {
			mn := parseYears(groups[1])
			return yearsSpec{
				Min:      &mn,
				Evidence: fmt.Sprintf("Years: at least %g", mn),
			}
		},
	},
}

// extractYears attempts to recover experience year requirements from the
// normalized description. No match is not an error: it returns the zero
// yearsSpec, which is the "unknown" state.
func extractYears(text string) yearsSpec {
	for _, p := range yearsPatterns {
		groups := p.re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		return p.parse(groups)
	}
	return yearsSpec{}
}

// parseYears converts a regex-captured numeric string. The patterns only
// capture digit sequences with an optional fraction, so parsing cannot fail.
func parseYears(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
