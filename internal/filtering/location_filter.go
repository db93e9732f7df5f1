package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/gradsift/gradsift/internal/jobfeed"
)

// defaultUKMarkers are the location substrings treated as UK when no allow
// list is configured.
var defaultUKMarkers = []string{
	"united kingdom", "uk", "england", "scotland", "wales",
	"northern ireland", "london", "manchester", "birmingham", "leeds",
	"bristol", "edinburgh", "glasgow", "remote (uk)", "remote - uk",
}

type locationFilter struct {
	disabled bool
	reason   string
	allow    []string
}

// NewLocation creates a filter that keeps only postings whose location
// matches the configured allow list.
func NewLocation() Filter {
	return &locationFilter{}
}

func (f *locationFilter) Name() string { return "location" }

func (f *locationFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *locationFilter) IsEnabled() bool { return !f.disabled }

func (f *locationFilter) Validate(cfg *Config) error {
	f.allow = nil
	if cfg != nil {
		for _, marker := range cfg.Locations {
			marker = strings.ToLower(strings.TrimSpace(marker))
			if marker == "" {
				continue
			}
			f.allow = append(f.allow, marker)
		}
	}
	if len(f.allow) == 0 {
		f.allow = defaultUKMarkers
	}
	return nil
}

func (f *locationFilter) Apply(_ context.Context, deps Deps, p *jobfeed.Postings) (*jobfeed.Postings, Step, error) {
	initial := p.Len()

	kept := make([]*jobfeed.Posting, 0, initial)
	var dropped []string
	for _, posting := range p.Items {
		if f.allowed(posting) {
			kept = append(kept, posting)
			continue
		}
		dropped = append(dropped, posting.ID)
	}
	p.Items = kept

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding postings outside the allowed locations",
			zap.Strings("excluded_postings", dropped),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(dropped), Left: p.Len()}, nil
}

// allowed reports whether any allow marker occurs in the posting location.
// Postings without a location are kept: the scorer decides their fate.
func (f *locationFilter) allowed(posting *jobfeed.Posting) bool {
	location := strings.ToLower(strings.TrimSpace(posting.Location.Name))
	if location == "" {
		return true
	}

	for _, marker := range f.allow {
		if strings.Contains(location, marker) {
			return true
		}
	}
	return false
}

func (f *locationFilter) Status() Status {
	details := map[string]string{}
	if len(f.allow) > 0 {
		details["locations"] = strings.Join(f.allow, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
