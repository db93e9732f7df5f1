package scoring

import (
	"reflect"
	"testing"
)

func TestClassifySeniorTitleExcludes(t *testing.T) {
	cases := []struct {
		name string
		in   Input
	}{
		{"title keyword", Input{Title: "Senior Commercial Manager", Description: "5+ years experience required. Lead strategy."}},
		{"seniority level", Input{Title: "Commercial Analyst", Seniority: "Director"}},
		{"case folded", Input{Title: "  PRINCIPAL Engineer "}},
		{"vice president", Input{Title: "Vice President, Operations", Description: "entry level, training provided"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Classify(tc.in)
			if res.Bucket != Excluded {
				t.Fatalf("bucket: got %s, want %s", res.Bucket, Excluded)
			}
			if res.ExcludeReason != ExcludeSeniorTitle {
				t.Fatalf("exclude reason: got %q, want %q", res.ExcludeReason, ExcludeSeniorTitle)
			}
			if res.Score != excludedScore {
				t.Fatalf("score: got %d, want %d", res.Score, excludedScore)
			}
			if len(res.Reasons) != 0 {
				t.Fatalf("expected no reasons, got %v", res.Reasons)
			}
			// The title exclude fires before years are even parsed.
			if res.ParsedYearsMin != nil || res.ParsedYearsMax != nil {
				t.Fatalf("expected no parsed years, got %v/%v", res.ParsedYearsMin, res.ParsedYearsMax)
			}
		})
	}
}

func TestClassifySeniorLanguageExcludes(t *testing.T) {
	res := Classify(Input{
		Title:       "Marketing Analyst",
		Description: "You bring extensive experience and will line manage a small group.",
	})

	if res.Bucket != Excluded {
		t.Fatalf("bucket: got %s, want %s", res.Bucket, Excluded)
	}
	if res.ExcludeReason != ExcludeSeniorLanguage {
		t.Fatalf("exclude reason: got %q, want %q", res.ExcludeReason, ExcludeSeniorLanguage)
	}
	if res.Score != excludedScore {
		t.Fatalf("score: got %d, want %d", res.Score, excludedScore)
	}
}

func TestClassifyMinimumYearsExcludes(t *testing.T) {
	for _, desc := range []string{
		"minimum of 5 years experience required",
		"5+ years in a similar role",
		"at least 6 years experience",
	} {
		res := Classify(Input{Title: "Finance Officer", Description: desc})
		if res.Bucket != Excluded {
			t.Fatalf("%q: bucket: got %s, want %s", desc, res.Bucket, Excluded)
		}
		if res.ExcludeReason != ExcludeMinimumYears {
			t.Fatalf("%q: exclude reason: got %q, want %q", desc, res.ExcludeReason, ExcludeMinimumYears)
		}
		if res.ParsedYearsMin == nil || *res.ParsedYearsMin < 5 {
			t.Fatalf("%q: expected parsed min >= 5, got %v", desc, res.ParsedYearsMin)
		}
		// Years evidence gathered before the exclude check stays on the result.
		if len(res.Reasons) != 1 {
			t.Fatalf("%q: expected years evidence to survive, got %v", desc, res.Reasons)
		}
	}
}

func TestClassifyGraduateAnalystHighCertainty(t *testing.T) {
	res := Classify(Input{
		Title:       "Graduate Analyst",
		Description: "Entry-level role, training provided, internship experience welcome, 0-2 years",
		Department:  "Operations",
	})

	if res.Bucket != HighCertainty {
		t.Fatalf("bucket: got %s, want %s", res.Bucket, HighCertainty)
	}
	// +2 title, +1 stealth title, +2 entry-level, +1 training, +2 internship,
	// +2 max<=2, +1 low min.
	if res.Score != 11 {
		t.Fatalf("score: got %d, want 11", res.Score)
	}
	assertYears(t, "min", res.ParsedYearsMin, fptr(0))
	assertYears(t, "max", res.ParsedYearsMax, fptr(2))

	want := []string{
		"Years range: 0-2",
		"Strong junior title signal",
		"Stealth junior title (needs evidence)",
		"Explicit entry-level / graduate language",
		"Training/development language",
		"Internship/part-time/uni-project experience accepted",
		"Experience requirement within 0–2 years",
		"Low minimum experience (<=2 years)",
	}
	if !reflect.DeepEqual(res.Reasons, want) {
		t.Fatalf("reasons:\n got %v\nwant %v", res.Reasons, want)
	}
}

func TestClassifyBorderlineTwoPlusYears(t *testing.T) {
	res := Classify(Input{
		Title:       "Operations Associate",
		Description: "2+ years experience preferred, help the team",
	})

	if res.Bucket != LessCertain {
		t.Fatalf("bucket: got %s, want %s", res.Bucket, LessCertain)
	}
	// +1 stealth title, +1 low min, -1 borderline without internship evidence.
	if res.Score != 1 {
		t.Fatalf("score: got %d, want 1", res.Score)
	}
	assertYears(t, "min", res.ParsedYearsMin, fptr(2))
	assertYears(t, "max", res.ParsedYearsMax, nil)
}

func TestClassifyBorderlineWithInternshipEquivalence(t *testing.T) {
	res := Classify(Input{
		Title:       "Operations Associate",
		Description: "2+ years or equivalent experience such as an internship",
	})

	// The borderline penalty is waived when internship-equivalent
	// experience is accepted, and the reason is still logged.
	if res.Score != 4 {
		t.Fatalf("score: got %d, want 4", res.Score)
	}
	if res.Bucket != HighCertainty {
		t.Fatalf("bucket: got %s, want %s", res.Bucket, HighCertainty)
	}
	found := false
	for _, r := range res.Reasons {
		if r == "Borderline: 2+ years" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected borderline reason in %v", res.Reasons)
	}
}

func TestClassifyMidLevelPenalty(t *testing.T) {
	res := Classify(Input{
		Title:       "Finance Officer",
		Description: "minimum of 3 years experience",
	})

	if res.Bucket != LessCertain {
		t.Fatalf("bucket: got %s, want %s", res.Bucket, LessCertain)
	}
	// +1 stealth title, -3 mid-level. Low score keeps it, never excludes.
	if res.Score != -2 {
		t.Fatalf("score: got %d, want -2", res.Score)
	}
	if res.ExcludeReason != "" {
		t.Fatalf("expected no exclude reason, got %q", res.ExcludeReason)
	}
}

func TestClassifyNoYearsFound(t *testing.T) {
	res := Classify(Input{
		Title:       "Office Assistant",
		Description: "You will assist the team and support daily operations.",
	})

	if res.Bucket != LessCertain {
		t.Fatalf("bucket: got %s, want %s", res.Bucket, LessCertain)
	}
	// +2 title, +1 two positive verbs.
	if res.Score != 3 {
		t.Fatalf("score: got %d, want 3", res.Score)
	}

	found := false
	for _, r := range res.Reasons {
		if r == "No explicit years found" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected years note in %v", res.Reasons)
	}
}

func TestClassifyNegativeVerbPenalty(t *testing.T) {
	res := Classify(Input{
		Title:       "Programme Coordinator",
		Description: "You will own the delivery calendar end to end.",
	})

	// +2 title, -2 ownership language.
	if res.Score != 0 {
		t.Fatalf("score: got %d, want 0", res.Score)
	}
	if res.Bucket != LessCertain {
		t.Fatalf("bucket: got %s, want %s", res.Bucket, LessCertain)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	res := Classify(Input{})

	if res.Bucket != LessCertain {
		t.Fatalf("bucket: got %s, want %s", res.Bucket, LessCertain)
	}
	if res.Score != 0 {
		t.Fatalf("score: got %d, want 0", res.Score)
	}
	if res.ExcludeReason != "" {
		t.Fatalf("expected no exclude reason, got %q", res.ExcludeReason)
	}
	want := []string{"No explicit years found"}
	if !reflect.DeepEqual(res.Reasons, want) {
		t.Fatalf("reasons: got %v, want %v", res.Reasons, want)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	in := Input{
		Title:       "Graduate Analyst",
		Description: "Entry-level role, training provided, internship experience welcome, 0-2 years",
		Department:  "Operations",
	}

	first := Classify(in)
	second := Classify(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results:\n%+v\n%+v", first, second)
	}
}

func TestClassifyYearsBoundaries(t *testing.T) {
	// min exactly 3 takes the mid-level penalty but is not hard-excluded.
	res := Classify(Input{Title: "Data Officer", Description: "at least 3 years experience"})
	if res.Bucket == Excluded {
		t.Fatalf("min=3 must not hard-exclude, got %s", res.Bucket)
	}

	// min exactly 5 is hard-excluded regardless of other signals.
	res = Classify(Input{
		Title:       "Graduate Officer",
		Description: "entry level, internship welcome, at least 5 years experience",
	})
	if res.Bucket != Excluded || res.ExcludeReason != ExcludeMinimumYears {
		t.Fatalf("min=5 must hard-exclude, got %s (%q)", res.Bucket, res.ExcludeReason)
	}
}
