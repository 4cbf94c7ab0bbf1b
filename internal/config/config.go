package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/0x13a/launchpad/internal/job"
)

type Config struct {
	Port               string
	Env                string // either prod or dev, dev disables https redirects and security headers
	JobsSourcePath     string // csv file re-read on every search
	EntryLevelMaxYears int    // inclusive experience threshold, always below job.YearsRequiredUnknown
	SiteName           string
	SiteHost           string
	URLProtocol        string
	SentryDSN          string
	LogLevel           zerolog.Level
	Site               Site
}

// LoadConfig reads the environment, after an optional .env file in the
// working directory. SITE_CONFIG_PATH points to an optional YAML overlay.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "unable to load .env file")
	}
	port := os.Getenv("PORT")
	if port == "" {
		return Config{}, fmt.Errorf("PORT cannot be empty")
	}
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = "dev"
	}
	jobsSourcePath := os.Getenv("JOBS_SOURCE_PATH")
	if jobsSourcePath == "" {
		jobsSourcePath = "data/jobs.csv"
	}
	entryLevelMaxYears := job.EntryLevelMaxYears
	if s := os.Getenv("ENTRY_LEVEL_MAX_YEARS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, errors.Wrap(err, "unable to convert ENTRY_LEVEL_MAX_YEARS to int")
		}
		if _, err := job.NewFilter(n); err != nil {
			return Config{}, errors.Wrap(err, "invalid ENTRY_LEVEL_MAX_YEARS")
		}
		entryLevelMaxYears = n
	}
	siteHost := os.Getenv("SITE_HOST")
	if siteHost == "" {
		siteHost = "localhost:" + port
	}
	urlProtocol := os.Getenv("URL_PROTOCOL")
	if urlProtocol == "" {
		urlProtocol = "https"
		if env == "dev" {
			urlProtocol = "http"
		}
	}
	logLevel := zerolog.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			return Config{}, errors.Wrapf(err, "unable to parse LOG_LEVEL %s", s)
		}
		logLevel = lvl
	}
	site := DefaultSite()
	if path := os.Getenv("SITE_CONFIG_PATH"); path != "" {
		overlay, err := LoadSite(path)
		if err != nil {
			return Config{}, err
		}
		site = site.Merge(overlay)
	}
	siteName := os.Getenv("SITE_NAME")
	if siteName == "" {
		siteName = site.Name
	}

	return Config{
		Port:               port,
		Env:                env,
		JobsSourcePath:     jobsSourcePath,
		EntryLevelMaxYears: entryLevelMaxYears,
		SiteName:           siteName,
		SiteHost:           siteHost,
		URLProtocol:        urlProtocol,
		SentryDSN:          os.Getenv("SENTRY_DSN"),
		LogLevel:           logLevel,
		Site:               site,
	}, nil
}

// Filter returns the entry-level filter for the configured threshold.
func (c Config) Filter() job.Filter {
	return job.Filter{MaxYearsRequired: c.EntryLevelMaxYears}
}

// BaseURL is the absolute site root without a trailing slash.
func (c Config) BaseURL() string {
	return fmt.Sprintf("%s://%s", c.URLProtocol, c.SiteHost)
}
