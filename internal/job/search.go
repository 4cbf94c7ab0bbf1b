package job

import (
	"fmt"
	"sort"
	"strings"
)

// Filter selects entry-level jobs. MaxYearsRequired is inclusive.
type Filter struct {
	MaxYearsRequired int
}

var DefaultFilter = Filter{MaxYearsRequired: EntryLevelMaxYears}

// NewFilter rejects thresholds that would let YearsRequiredUnknown through.
func NewFilter(maxYearsRequired int) (Filter, error) {
	if maxYearsRequired < 0 {
		return Filter{}, fmt.Errorf("max years required cannot be negative, got %d", maxYearsRequired)
	}
	if maxYearsRequired >= YearsRequiredUnknown {
		return Filter{}, fmt.Errorf("max years required must be below %d, got %d", YearsRequiredUnknown, maxYearsRequired)
	}
	return Filter{MaxYearsRequired: maxYearsRequired}, nil
}

// Badge is the experience label shown on every result card.
func (f Filter) Badge() string {
	return fmt.Sprintf("0–%d yrs", f.MaxYearsRequired)
}

// Search runs query with the default entry-level threshold.
func Search(jobs []*Job, query string) SearchResult {
	return DefaultFilter.Search(jobs, query)
}

// Search trims query; an empty query means no search was performed. Otherwise
// jobs are filtered by experience and title, then sorted newest first.
func (f Filter) Search(jobs []*Job, query string) SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResult{}
	}
	matches := TitleContains(f.EntryLevel(jobs), query)
	SortByRecency(matches)
	return SearchResult{
		Query:    query,
		Searched: true,
		Jobs:     matches,
	}
}

func EntryLevel(jobs []*Job) []*Job {
	return DefaultFilter.EntryLevel(jobs)
}

func (f Filter) EntryLevel(jobs []*Job) []*Job {
	out := make([]*Job, 0, len(jobs))
	for _, j := range jobs {
		if j.YearsRequired <= f.MaxYearsRequired {
			out = append(out, j)
		}
	}
	return out
}

// TitleContains keeps jobs whose title contains query, ignoring case.
func TitleContains(jobs []*Job, query string) []*Job {
	q := strings.ToLower(query)
	out := make([]*Job, 0, len(jobs))
	for _, j := range jobs {
		if strings.Contains(strings.ToLower(j.Title), q) {
			out = append(out, j)
		}
	}
	return out
}

// SortByRecency orders jobs newest first in place. Unknown dates go last and
// equal dates keep their relative order.
func SortByRecency(jobs []*Job) {
	sort.SliceStable(jobs, func(a, b int) bool {
		x, y := jobs[a].PostedAt, jobs[b].PostedAt
		if x == nil {
			return false
		}
		if y == nil {
			return true
		}
		return x.After(*y)
	})
}
