package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/0x13a/launchpad/internal/config"
	"github.com/0x13a/launchpad/internal/job"
	"github.com/0x13a/launchpad/internal/middleware"
	"github.com/0x13a/launchpad/internal/seo"
	"github.com/0x13a/launchpad/internal/template"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/getsentry/raven-go"
)

type Server struct {
	cfg          config.Config
	router       *mux.Router
	tmpl         *template.Template
	logger       zerolog.Logger
	landingPages []seo.LandingPage
}

func NewServer(
	cfg config.Config,
	r *mux.Router,
	t *template.Template,
	logger zerolog.Logger,
) Server {
	if cfg.SentryDSN != "" {
		if err := raven.SetDSN(cfg.SentryDSN); err != nil {
			logger.Error().Err(err).Msg("unable to set sentry dsn")
		}
	}

	return Server{
		cfg:          cfg,
		router:       r,
		tmpl:         t,
		logger:       logger,
		landingPages: seo.QuickSearchPages(cfg.Site.QuickSearches),
	}
}

// NewLogger builds the process logger: console output in dev, JSON otherwise.
func NewLogger(cfg config.Config) zerolog.Logger {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.Env == "dev" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func (s Server) RegisterRoute(path string, handler func(w http.ResponseWriter, r *http.Request), methods []string) {
	s.router.HandleFunc(path, handler).Methods(methods...)
}

func (s Server) RegisterNotFound(handler func(w http.ResponseWriter, r *http.Request)) {
	s.router.NotFoundHandler = http.HandlerFunc(handler)
}

func (s Server) GetConfig() config.Config {
	return s.cfg
}

func (s Server) LandingPages() []seo.LandingPage {
	return s.landingPages
}

// RenderSearchPage re-reads the job source, runs query and renders htmlView.
// An unreadable source is logged and answered with a 500.
func (s Server) RenderSearchPage(w http.ResponseWriter, r *http.Request, jobRepo *job.Repository, query, htmlView string) {
	filter := s.cfg.Filter()
	res, err := jobRepo.Search(filter, query)
	if err != nil {
		s.Log(r, err, fmt.Sprintf("unable to search jobs for query %q", query))
		s.TEXT(w, http.StatusInternalServerError, "Oops! Job listings are unavailable right now")
		return
	}
	site := s.cfg.Site
	err = s.Render(w, http.StatusOK, htmlView, map[string]interface{}{
		"SiteName":          s.cfg.SiteName,
		"Headline":          site.Headline,
		"SearchPlaceholder": site.SearchPlaceholder,
		"Footer":            site.Footer,
		"QuickSearches":     s.landingPages,
		"Query":             res.Query,
		"Searched":          res.Searched,
		"Jobs":              res.Jobs,
		"Count":             len(res.Jobs),
		"Badge":             filter.Badge(),
		"RSSPath":           "/rss?q=" + url.QueryEscape(res.Query),
	})
	if err != nil {
		s.Log(r, err, fmt.Sprintf("unable to render %s", htmlView))
		s.TEXT(w, http.StatusInternalServerError, "Oops! An internal error has occurred")
	}
}

func (s Server) Render(w http.ResponseWriter, status int, htmlView string, data interface{}) error {
	return s.tmpl.Render(w, status, htmlView, data)
}

func (s Server) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func (s Server) XML(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(status)
	w.Write(data)
}

func (s Server) TEXT(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

// Log reports err to Sentry when configured and logs it with the request
// scoped logger, falling back to the server logger outside the middleware.
func (s Server) Log(r *http.Request, err error, msg string) {
	if s.cfg.SentryDSN != "" {
		raven.CaptureErrorAndWait(err, map[string]string{"ctx": msg})
	}
	s.requestLogger(r).Error().Err(err).Msg(msg)
}

func (s Server) requestLogger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l != zerolog.Ctx(context.Background()) {
		return l
	}
	return &s.logger
}

// Handler is the router wrapped in the middleware chain used by Run.
func (s Server) Handler() http.Handler {
	return middleware.LoggingMiddleware(
		middleware.HTTPSMiddleware(
			middleware.GzipMiddleware(
				middleware.HeadersMiddleware(s.router, s.cfg.Env),
			),
			s.cfg.Env,
		),
		s.logger,
	)
}

func (s Server) Run() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info().
		Str("addr", srv.Addr).
		Str("source", s.cfg.JobsSourcePath).
		Str("env", s.cfg.Env).
		Msg("listening")
	return srv.ListenAndServe()
}
