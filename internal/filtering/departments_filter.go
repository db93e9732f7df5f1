package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/gradsift/gradsift/internal/jobfeed"
)

type departmentsFilter struct {
	departments []string
}

// NewExcludedDepartments creates a filter that removes postings from
// departments configured in the config.
func NewExcludedDepartments() Filter {
	return &departmentsFilter{}
}

func (f *departmentsFilter) Name() string { return "departments" }

func (f *departmentsFilter) Disable(string) {}

func (f *departmentsFilter) IsEnabled() bool { return true }

func (f *departmentsFilter) Validate(cfg *Config) error {
	f.departments = nil
	if cfg != nil {
		f.departments = append(f.departments, cfg.Departments...)
	}
	return nil
}

func (f *departmentsFilter) Apply(_ context.Context, deps Deps, p *jobfeed.Postings) (*jobfeed.Postings, Step, error) {
	initial := p.Len()
	if len(f.departments) == 0 {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	excluded := p.Exclude(jobfeed.PostingDepartmentField, f.departments)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding postings by department",
			zap.Strings("excluded_departments", f.departments),
			zap.Strings("excluded_postings", excluded),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(excluded), Left: p.Len()}, nil
}

func (f *departmentsFilter) Status() Status {
	details := map[string]string{}
	if len(f.departments) > 0 {
		details["departments"] = strings.Join(f.departments, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
