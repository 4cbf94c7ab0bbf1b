package main

import (
	"embed"
	"log"

	"github.com/0x13a/launchpad/internal/config"
	"github.com/0x13a/launchpad/internal/handler"
	"github.com/0x13a/launchpad/internal/job"
	"github.com/0x13a/launchpad/internal/server"
	"github.com/0x13a/launchpad/internal/template"

	"github.com/gorilla/mux"
)

//go:embed static/views/*.html
var views embed.FS

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config: %+v", err)
	}
	logger := server.NewLogger(cfg)
	tmpl, err := template.NewTemplate(views)
	if err != nil {
		log.Fatalf("unable to parse views: %v", err)
	}
	jobRepo := job.NewRepository(cfg.JobsSourcePath)

	svr := server.NewServer(
		cfg,
		mux.NewRouter(),
		tmpl,
		logger,
	)

	svr.RegisterRoute("/sitemap.xml", handler.SitemapHandler(svr), []string{"GET"})
	svr.RegisterRoute("/robots.txt", handler.RobotsTxtHandler(svr), []string{"GET"})
	svr.RegisterRoute("/health", handler.HealthHandler(svr), []string{"GET"})

	svr.RegisterRoute("/", handler.IndexPageHandler(svr, jobRepo), []string{"GET"})

	// quick search landing pages
	svr.RegisterRoute("/jobs/{slug}", handler.QuickSearchPageHandler(svr, jobRepo), []string{"GET"})

	svr.RegisterRoute("/api/search", handler.SearchAPIHandler(svr, jobRepo), []string{"GET"})
	svr.RegisterRoute("/rss", handler.ServeRSSFeed(svr, jobRepo), []string{"GET"})

	svr.RegisterNotFound(handler.NotFoundHandler(svr))

	log.Fatal(svr.Run())
}
