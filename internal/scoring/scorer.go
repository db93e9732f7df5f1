package scoring

// Classify scores a posting for early-career suitability.
//
// Hard excludes are checked first and short-circuit the evaluation: a senior
// title or seniority level, senior language in the description, or a parsed
// minimum experience of five or more years each force the Excluded bucket
// with the sentinel score. Years evidence gathered before the years-based
// exclude check is preserved on excluded results for audit purposes.
//
// Postings that survive the hard excludes accumulate an additive score from
// the discretionary rules, and reach HighCertainty only when the score is at
// least 4 and at least one strong positive signal is present. Everything else
// stays LessCertain: a low score alone never excludes a posting.
func Classify(in Input) Result {
	title := norm(in.Title)
	desc := norm(in.Description)
	level := norm(in.Seniority)

	if containsAny(title, seniorTitleExcludes) || containsAny(level, seniorTitleExcludes) {
		return Result{
			Bucket:        Excluded,
			Score:         excludedScore,
			Reasons:       []string{},
			ExcludeReason: ExcludeSeniorTitle,
		}
	}

	if containsAny(desc, seniorLanguageExcludes) {
		return Result{
			Bucket:        Excluded,
			Score:         excludedScore,
			Reasons:       []string{},
			ExcludeReason: ExcludeSeniorLanguage,
		}
	}

	reasons := []string{}
	score := 0

	years := extractYears(desc)
	if years.Evidence != "" {
		reasons = append(reasons, years.Evidence)
	}

	if years.Min != nil && *years.Min >= 5 {
		return Result{
			Bucket:         Excluded,
			Score:          excludedScore,
			Reasons:        reasons,
			ExcludeReason:  ExcludeMinimumYears,
			ParsedYearsMin: years.Min,
			ParsedYearsMax: years.Max,
		}
	}

	if containsAny(title, strongPositiveTitle) {
		score += 2
		reasons = append(reasons, "Strong junior title signal")
	}

	if containsAny(title, stealthJuniorTitle) {
		score++
		reasons = append(reasons, "Stealth junior title (needs evidence)")
	}

	if containsAny(desc, strongPositiveText) {
		score += 2
		reasons = append(reasons, "Explicit entry-level / graduate language")
	}

	if containsAny(desc, trainingText) {
		score++
		reasons = append(reasons, "Training/development language")
	}

	internshipEquiv := containsAny(desc, internshipEquivalentText)
	if internshipEquiv {
		score += 2
		reasons = append(reasons, "Internship/part-time/uni-project experience accepted")
	}

	// Years-based adjustments are independent of each other; more than one
	// may fire for the same posting.
	if years.Min != nil || years.Max != nil {
		if years.Max != nil && *years.Max <= 2 {
			score += 2
			reasons = append(reasons, "Experience requirement within 0–2 years")
		}

		if years.Min != nil && *years.Min <= 2 && (years.Max == nil || *years.Max <= 2) {
			score++
			reasons = append(reasons, "Low minimum experience (<=2 years)")
		}

		// "2+ years" with no cap is borderline: kept, but penalized
		// unless internship-equivalent experience is accepted.
		if years.Min != nil && *years.Min == 2 && years.Max == nil {
			if !internshipEquiv {
				score--
			}
			reasons = append(reasons, "Borderline: 2+ years")
		}

		if years.Min != nil && *years.Min >= 3 && *years.Min < 5 {
			score -= 3
			reasons = append(reasons, "Likely mid-level: 3+ years")
		}
	} else {
		reasons = append(reasons, "No explicit years found")
	}

	if countHits(desc, positiveVerbs) >= 2 {
		score++
		reasons = append(reasons, "Responsibilities look support/co-ordination focused")
	}
	if countHits(desc, negativeVerbs) >= 1 {
		score -= 2
		reasons = append(reasons, "Responsibilities include ownership/leadership language")
	}

	strongPositive := containsAny(title, strongPositiveTitle) ||
		containsAny(desc, strongPositiveText) ||
		(years.Max != nil && *years.Max <= 2) ||
		internshipEquiv

	bucket := LessCertain
	if score >= 4 && strongPositive {
		bucket = HighCertainty
	}

	return Result{
		Bucket:         bucket,
		Score:          score,
		Reasons:        reasons,
		ParsedYearsMin: years.Min,
		ParsedYearsMax: years.Max,
	}
}
