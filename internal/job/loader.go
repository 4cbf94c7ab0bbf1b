package job

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

// postedAtLayouts are tried in order. Layouts without a zone are read as UTC.
var postedAtLayouts = []string{
	"2006-01-02",
	"2006-01-02T15",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15Z0700",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15Z0700",
	"2006-01-02 15:04Z0700",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05.999999999Z0700",
}

// Load reads a CSV job source with a header row. Field defects are replaced by
// defaults; only an unreadable stream is an error. Rows keep source order.
func Load(r io.Reader) ([]*Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return []*Job{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to read header row")
	}
	columns := headerIndex(header)

	jobs := make([]*Job, 0, 64)
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read row %d", row)
		}
		jobs = append(jobs, newJob(row, func(column string) string {
			i, ok := columns[column]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}))
	}
	return jobs, nil
}

func newJob(row int, field func(string) string) *Job {
	j := &Job{
		Title:         field(ColumnTitle),
		Company:       field(ColumnCompany),
		Location:      field(ColumnLocation),
		YearsRequired: parseYearsRequired(field(ColumnYearsRequired)),
		PostedAt:      parsePostedAt(field(ColumnPostedAt)),
		Source:        field(ColumnSource),
		ApplyURL:      field(ColumnApplyURL),
	}
	j.Slug = slug.Make(fmt.Sprintf("%s %s %d", j.Title, j.Company, row))
	return j
}

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, seen := columns[name]; seen {
			continue
		}
		columns[name] = i
	}
	return columns
}

func parseYearsRequired(s string) int {
	years, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || years < 0 {
		return YearsRequiredUnknown
	}
	return years
}

func parsePostedAt(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range postedAtLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return &t
		}
	}
	return nil
}
