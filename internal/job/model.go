package job

import (
	"time"
)

const (
	// YearsRequiredUnknown is assigned when years_required cannot be parsed.
	// It must stay above any entry-level threshold.
	YearsRequiredUnknown = 99

	// EntryLevelMaxYears is the default experience threshold.
	EntryLevelMaxYears = 2

	placeholder = "—"
)

// Columns every job source is expected to carry. Missing ones are tolerated.
const (
	ColumnTitle         = "title"
	ColumnCompany       = "company"
	ColumnLocation      = "location"
	ColumnYearsRequired = "years_required"
	ColumnPostedAt      = "posted_at"
	ColumnSource        = "source"
	ColumnApplyURL      = "apply_url"
)

type Job struct {
	Title         string     `json:"title"`
	Company       string     `json:"company"`
	Location      string     `json:"location"`
	YearsRequired int        `json:"years_required"`
	PostedAt      *time.Time `json:"posted_at"`
	Source        string     `json:"source"`
	ApplyURL      string     `json:"apply_url"`
	Slug          string     `json:"slug"`
}

// HasPostedAt reports whether the posting date could be parsed.
func (j *Job) HasPostedAt() bool {
	return j.PostedAt != nil
}

// PostedDate renders the publication date as YYYY-MM-DD, or a dash when unknown.
func (j *Job) PostedDate() string {
	if j.PostedAt == nil {
		return placeholder
	}
	return j.PostedAt.Format("2006-01-02")
}

func (j *Job) SourceLabel() string {
	if j.Source == "" {
		return placeholder
	}
	return j.Source
}

type SearchResult struct {
	Query    string
	Searched bool
	Jobs     []*Job
}
