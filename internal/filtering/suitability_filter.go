package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/gradsift/gradsift/internal/htmltext"
	"github.com/gradsift/gradsift/internal/jobfeed"
	"github.com/gradsift/gradsift/internal/logger"
	"github.com/gradsift/gradsift/internal/scoring"
)

type suitabilityFilter struct {
	disabled    bool
	reason      string
	highOnly    bool
	assessments map[string]*jobfeed.Assessment
}

// NewSuitability creates the scoring step: every posting is classified for
// early-career suitability, excluded postings are dropped and the assessment
// is attached to the survivors.
func NewSuitability() Filter {
	return &suitabilityFilter{}
}

func (f *suitabilityFilter) Name() string { return "suitability" }

func (f *suitabilityFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *suitabilityFilter) IsEnabled() bool { return !f.disabled }

func (f *suitabilityFilter) Validate(cfg *Config) error {
	f.highOnly = cfg != nil && cfg.HighOnly
	return nil
}

func (f *suitabilityFilter) Apply(_ context.Context, deps Deps, p *jobfeed.Postings) (*jobfeed.Postings, Step, error) {
	initial := p.Len()

	kept := make([]*jobfeed.Posting, 0, initial)
	f.assessments = make(map[string]*jobfeed.Assessment, initial)

	for _, posting := range p.Items {
		result := scoring.Classify(scoring.Input{
			Title:       posting.Title,
			Description: htmltext.Strip(posting.Content),
			Department:  posting.Department.Name,
			Seniority:   posting.Seniority,
		})

		assessment := &jobfeed.Assessment{
			Bucket:        string(result.Bucket),
			Score:         result.Score,
			Reasons:       result.Reasons,
			ExcludeReason: result.ExcludeReason,
			YearsMin:      result.ParsedYearsMin,
			YearsMax:      result.ParsedYearsMax,
		}
		f.assessments[posting.ID] = assessment

		if result.Bucket == scoring.Excluded {
			if deps.Logger != nil {
				deps.Logger.Info("posting excluded by the scorer",
					logger.WithPostingFields(posting.ID, posting.Title,
						zap.String("exclude_reason", result.ExcludeReason))...,
				)
			}
			continue
		}

		if f.highOnly && result.Bucket != scoring.HighCertainty {
			if deps.Logger != nil {
				deps.Logger.Info("posting dropped in high-only mode",
					logger.WithPostingFields(posting.ID, posting.Title,
						zap.String("bucket", string(result.Bucket)),
						zap.Int("score", result.Score))...,
				)
			}
			continue
		}

		if deps.Logger != nil {
			deps.Logger.Debug("posting scored",
				logger.WithPostingFields(posting.ID, posting.Title,
					zap.String("bucket", string(result.Bucket)),
					zap.Int("score", result.Score),
					zap.Strings("reasons", result.Reasons))...,
			)
		}

		posting.Assessment = assessment
		kept = append(kept, posting)
	}

	p.Items = kept

	return p, Step{Initial: initial, Dropped: initial - p.Len(), Left: p.Len()}, nil
}

func (f *suitabilityFilter) Assessments() map[string]*jobfeed.Assessment {
	if f.assessments == nil {
		return map[string]*jobfeed.Assessment{}
	}
	return f.assessments
}

func (f *suitabilityFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{
			"high_only": strconv.FormatBool(f.highOnly),
		},
	}
}
