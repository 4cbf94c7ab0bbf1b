package job

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestSearchScenarios(t *testing.T) {
	t.Run("senior filtered out by experience", func(t *testing.T) {
		jobs := []*Job{
			{Title: "Junior Developer", YearsRequired: 1, PostedAt: day("2024-01-10")},
			{Title: "Senior Developer", YearsRequired: 5, PostedAt: day("2024-02-01")},
		}
		res := Search(jobs, "developer")
		require.True(t, res.Searched)
		assert.Equal(t, []string{"Junior Developer"}, titles(res.Jobs))
	})

	t.Run("newest first", func(t *testing.T) {
		older := &Job{Title: "Data Analyst", YearsRequired: 2, PostedAt: day("2024-01-01")}
		newer := &Job{Title: "Data Analyst", YearsRequired: 0, PostedAt: day("2024-03-01")}
		res := Search([]*Job{newer, older}, "data")
		assert.Equal(t, []*Job{newer, older}, res.Jobs)

		res = Search([]*Job{older, newer}, "data")
		assert.Equal(t, []*Job{newer, older}, res.Jobs)
	})

	t.Run("unparseable years excluded", func(t *testing.T) {
		src := header + "Junior Developer,Acme,Remote,n/a,2024-01-10,,https://acme.example\n"
		jobs, err := Load(strings.NewReader(src))
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, 99, jobs[0].YearsRequired)

		res := Search(jobs, "junior")
		assert.True(t, res.Searched)
		assert.Empty(t, res.Jobs)
	})

	t.Run("unknown date still matches but sorts last", func(t *testing.T) {
		src := header +
			"Junior Developer,A,Remote,0,,,\n" +
			"Junior Developer,B,Remote,1,2023-06-01,,\n" +
			"Junior Developer,C,Remote,2,garbage,,\n" +
			"Junior Developer,D,Remote,2,2024-06-01,,\n"
		jobs, err := Load(strings.NewReader(src))
		require.NoError(t, err)

		res := Search(jobs, "junior developer")
		require.Len(t, res.Jobs, 4)
		var companies []string
		for _, j := range res.Jobs {
			companies = append(companies, j.Company)
		}
		assert.Equal(t, []string{"D", "B", "A", "C"}, companies)
	})
}

func TestSearchEmptyQuery(t *testing.T) {
	jobs := []*Job{{Title: "Junior Developer", YearsRequired: 0}}
	for _, q := range []string{"", " ", "\t\n  "} {
		res := Search(jobs, q)
		assert.False(t, res.Searched, "query %q", q)
		assert.Nil(t, res.Jobs)
	}

	res := Search(jobs, "astronaut")
	assert.True(t, res.Searched)
	assert.NotNil(t, res.Jobs)
	assert.Len(t, res.Jobs, 0)
}

func TestSearchTrimsQuery(t *testing.T) {
	jobs := []*Job{{Title: "Junior Developer", YearsRequired: 0}}
	res := Search(jobs, "  junior ")
	assert.Equal(t, "junior", res.Query)
	assert.Len(t, res.Jobs, 1)
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	a := &Job{Title: "Analyst I", YearsRequired: 0, PostedAt: day("2024-01-01")}
	b := &Job{Title: "Analyst II", YearsRequired: 0, PostedAt: day("2024-05-01")}
	c := &Job{Title: "Lead Analyst", YearsRequired: 8, PostedAt: day("2024-06-01")}
	jobs := []*Job{a, b, c}

	res := Search(jobs, "analyst")
	assert.Equal(t, []*Job{b, a}, res.Jobs)
	assert.Equal(t, []*Job{a, b, c}, jobs)
	assert.Equal(t, "Analyst I", a.Title)
}

func TestEntryLevel(t *testing.T) {
	jobs := []*Job{
		{Title: "a", YearsRequired: 0},
		{Title: "b", YearsRequired: 1},
		{Title: "c", YearsRequired: 2},
		{Title: "d", YearsRequired: 3},
		{Title: "e", YearsRequired: YearsRequiredUnknown},
	}
	once := EntryLevel(jobs)
	assert.Equal(t, []string{"a", "b", "c"}, titles(once))

	twice := EntryLevel(once)
	assert.Equal(t, once, twice)
}

func TestFilterThreshold(t *testing.T) {
	jobs := []*Job{
		{Title: "Associate", YearsRequired: 3},
		{Title: "Associate", YearsRequired: YearsRequiredUnknown},
	}
	f, err := NewFilter(5)
	require.NoError(t, err)
	assert.Len(t, f.EntryLevel(jobs), 1)
	assert.Equal(t, "0–5 yrs", f.Badge())
	assert.Equal(t, "0–2 yrs", DefaultFilter.Badge())

	_, err = NewFilter(-1)
	assert.Error(t, err)
	_, err = NewFilter(YearsRequiredUnknown)
	assert.Error(t, err)
	_, err = NewFilter(YearsRequiredUnknown - 1)
	assert.NoError(t, err)
}

func TestTitleContains(t *testing.T) {
	jobs := []*Job{
		{Title: "Junior Developer"},
		{Title: "JUNIOR QA"},
		{Title: "Developer, Junior"},
		{Title: "Jun ior"},
	}
	tests := []struct {
		query    string
		expected []string
	}{
		{"junior", []string{"Junior Developer", "JUNIOR QA", "Developer, Junior"}},
		{"Junior Developer", []string{"Junior Developer"}},
		{"developer junior", nil},
		{"r d", []string{"Junior Developer"}},
		{"qa", []string{"JUNIOR QA"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := titles(TitleContains(jobs, tt.query))
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSortByRecency(t *testing.T) {
	t.Run("stable for equal dates", func(t *testing.T) {
		jobs := []*Job{
			{Title: "first", PostedAt: day("2024-02-02")},
			{Title: "second", PostedAt: day("2024-02-02")},
			{Title: "newest", PostedAt: day("2024-03-03")},
			{Title: "third", PostedAt: day("2024-02-02")},
		}
		SortByRecency(jobs)
		assert.Equal(t, []string{"newest", "first", "second", "third"}, titles(jobs))
	})

	t.Run("unknown dates last in original order", func(t *testing.T) {
		jobs := []*Job{
			{Title: "u1"},
			{Title: "old", PostedAt: day("1990-01-01")},
			{Title: "u2"},
			{Title: "new", PostedAt: day("2024-01-01")},
			{Title: "u3"},
		}
		SortByRecency(jobs)
		assert.Equal(t, []string{"new", "old", "u1", "u2", "u3"}, titles(jobs))
	})

	t.Run("compares instants across zones", func(t *testing.T) {
		early := time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("", 5*60*60))
		late := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		jobs := []*Job{{Title: "early", PostedAt: &early}, {Title: "late", PostedAt: &late}}
		SortByRecency(jobs)
		assert.Equal(t, []string{"late", "early"}, titles(jobs))
	})
}
