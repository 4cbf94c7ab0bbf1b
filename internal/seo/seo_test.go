package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickSearchPages(t *testing.T) {
	pages := QuickSearchPages([]string{
		"Junior Developer",
		"  Data Analyst ",
		"",
		"junior developer",
		"Support Associate (Remote)",
	})
	assert.Equal(t, []LandingPage{
		{Query: "Junior Developer", Slug: "junior-developer", Path: "/jobs/junior-developer"},
		{Query: "Data Analyst", Slug: "data-analyst", Path: "/jobs/data-analyst"},
		{Query: "Support Associate (Remote)", Slug: "support-associate-remote", Path: "/jobs/support-associate-remote"},
	}, pages)
}

func TestLandingPageBySlug(t *testing.T) {
	pages := QuickSearchPages([]string{"Project Coordinator"})

	p, ok := LandingPageBySlug(pages, "project-coordinator")
	assert.True(t, ok)
	assert.Equal(t, "Project Coordinator", p.Query)

	_, ok = LandingPageBySlug(pages, "astronaut")
	assert.False(t, ok)
}

func TestSitemapURLs(t *testing.T) {
	pages := QuickSearchPages([]string{"Data Analyst"})
	assert.Equal(t, []string{
		"https://jobs.example/",
		"https://jobs.example/jobs/data-analyst",
	}, SitemapURLs("https://jobs.example/", pages))
}
