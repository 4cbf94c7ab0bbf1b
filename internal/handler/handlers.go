package handler

import (
	"bytes"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/0x13a/launchpad/internal/job"
	"github.com/0x13a/launchpad/internal/seo"
	"github.com/0x13a/launchpad/internal/server"
	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"github.com/snabb/sitemap"
)

type searchResponse struct {
	Query    string     `json:"query"`
	Searched bool       `json:"searched"`
	Count    int        `json:"count"`
	Jobs     []*job.Job `json:"jobs"`
}

func IndexPageHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.RenderSearchPage(w, r, jobRepo, r.URL.Query().Get("q"), "index.html")
	}
}

// QuickSearchPageHandler serves /jobs/{slug} for every configured quick search.
func QuickSearchPageHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := seo.LandingPageBySlug(svr.LandingPages(), mux.Vars(r)["slug"])
		if !ok {
			NotFoundHandler(svr)(w, r)
			return
		}
		svr.RenderSearchPage(w, r, jobRepo, page.Query, "index.html")
	}
}

func SearchAPIHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := jobRepo.Search(svr.GetConfig().Filter(), r.URL.Query().Get("q"))
		if err != nil {
			svr.Log(r, err, "unable to search jobs")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"status": "error"})
			return
		}
		jobs := res.Jobs
		if jobs == nil {
			jobs = []*job.Job{}
		}
		svr.JSON(w, http.StatusOK, searchResponse{
			Query:    res.Query,
			Searched: res.Searched,
			Count:    len(jobs),
			Jobs:     jobs,
		})
	}
}

func ServeRSSFeed(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := svr.GetConfig()
		res, err := jobRepo.Search(cfg.Filter(), r.URL.Query().Get("q"))
		if err != nil {
			svr.Log(r, err, "unable to retrieve jobs for RSS Feed")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		policy := bluemonday.StrictPolicy()
		// strip markup only; feeds escapes the xml
		plainText := func(text string) string {
			return html.UnescapeString(policy.Sanitize(text))
		}
		badge := cfg.Filter().Badge()
		title := fmt.Sprintf("%s Jobs", cfg.SiteName)
		if res.Searched {
			title = fmt.Sprintf("%s %s Jobs", cfg.SiteName, res.Query)
		}
		feed := &feeds.Feed{
			Title:       title,
			Link:        &feeds.Link{Href: cfg.BaseURL()},
			Description: cfg.Site.Headline,
			Author:      &feeds.Author{Name: cfg.SiteName},
			Created:     time.Now(),
		}
		for _, j := range res.Jobs {
			item := &feeds.Item{
				Id:          j.Slug,
				Title:       plainText(fmt.Sprintf("%s with %s - %s", j.Title, j.Company, j.Location)),
				Link:        &feeds.Link{Href: j.ApplyURL},
				Description: plainText(fmt.Sprintf("%s · Posted %s · Source: %s", badge, j.PostedDate(), j.SourceLabel())),
			}
			if j.PostedAt != nil {
				item.Created = *j.PostedAt
			}
			feed.Items = append(feed.Items, item)
		}
		rssFeed, err := feed.ToRss()
		if err != nil {
			svr.Log(r, err, "unable to convert rss feed to xml")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		svr.XML(w, http.StatusOK, []byte(rssFeed))
	}
}

func SitemapHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sitemapFile := sitemap.New()
		for _, loc := range seo.SitemapURLs(svr.GetConfig().BaseURL(), svr.LandingPages()) {
			sitemapFile.Add(&sitemap.URL{
				Loc:        loc,
				ChangeFreq: sitemap.Daily,
			})
		}
		buf := new(bytes.Buffer)
		if _, err := sitemapFile.WriteTo(buf); err != nil {
			svr.Log(r, err, "sitemapFile.WriteTo")
			svr.TEXT(w, http.StatusInternalServerError, "unable to save sitemap file")
			return
		}
		svr.XML(w, http.StatusOK, buf.Bytes())
	}
}

func RobotsTxtHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var b strings.Builder
		b.WriteString("User-agent: *\nAllow: /\n")
		fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", svr.GetConfig().BaseURL())
		svr.TEXT(w, http.StatusOK, b.String())
	}
}

func HealthHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.JSON(w, http.StatusOK, map[string]interface{}{
			"ok":   true,
			"time": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func NotFoundHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.TEXT(w, http.StatusNotFound, "page not found")
	}
}
