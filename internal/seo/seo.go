package seo

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

const landingPagePrefix = "/jobs/"

// LandingPage is a quick search reachable under its own path.
type LandingPage struct {
	Query string
	Slug  string
	Path  string
}

// QuickSearchPages builds one landing page per quick search. Blank entries and
// entries whose slug was already taken are skipped.
func QuickSearchPages(quickSearches []string) []LandingPage {
	pages := make([]LandingPage, 0, len(quickSearches))
	seen := make(map[string]bool, len(quickSearches))
	for _, q := range quickSearches {
		q = strings.TrimSpace(q)
		s := slug.Make(q)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		pages = append(pages, LandingPage{
			Query: q,
			Slug:  s,
			Path:  landingPagePrefix + s,
		})
	}
	return pages
}

// LandingPageBySlug finds the quick search for a landing page slug.
func LandingPageBySlug(pages []LandingPage, s string) (LandingPage, bool) {
	for _, p := range pages {
		if p.Slug == s {
			return p, true
		}
	}
	return LandingPage{}, false
}

// StaticPages are the sitemap paths that exist regardless of configuration.
func StaticPages() []string {
	return []string{"/"}
}

// SitemapURLs lists absolute URLs for the index page and every landing page.
func SitemapURLs(baseURL string, pages []LandingPage) []string {
	baseURL = strings.TrimRight(baseURL, "/")
	urls := make([]string, 0, len(pages)+1)
	for _, p := range StaticPages() {
		urls = append(urls, fmt.Sprintf("%s%s", baseURL, p))
	}
	for _, p := range pages {
		urls = append(urls, fmt.Sprintf("%s%s", baseURL, p.Path))
	}
	return urls
}
