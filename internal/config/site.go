package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Site holds presentation settings. None of them affect search results.
type Site struct {
	Name              string   `yaml:"site_name"`
	Headline          string   `yaml:"headline"`
	SearchPlaceholder string   `yaml:"search_placeholder"`
	Footer            string   `yaml:"footer"`
	QuickSearches     []string `yaml:"quick_searches"`
}

func DefaultSite() Site {
	return Site{
		Name:              "LaunchPad",
		Headline:          "Find real entry-level roles faster",
		SearchPlaceholder: "Try: Junior Developer, Project Coordinator, Data Analyst",
		Footer:            "Built for Zero Boundaries — Social Good · 0–2 yrs only",
		QuickSearches: []string{
			"Junior Developer",
			"Project Coordinator",
			"Data Analyst",
			"Marketing Coordinator",
		},
	}
}

func LoadSite(path string) (Site, error) {
	var site Site
	b, err := os.ReadFile(path)
	if err != nil {
		return site, errors.Wrapf(err, "unable to read site config %s", path)
	}
	if err := yaml.Unmarshal(b, &site); err != nil {
		return site, errors.Wrapf(err, "unable to parse site config %s", path)
	}
	return site, nil
}

// Merge returns s with every non-empty field of overlay applied.
func (s Site) Merge(overlay Site) Site {
	if overlay.Name != "" {
		s.Name = overlay.Name
	}
	if overlay.Headline != "" {
		s.Headline = overlay.Headline
	}
	if overlay.SearchPlaceholder != "" {
		s.SearchPlaceholder = overlay.SearchPlaceholder
	}
	if overlay.Footer != "" {
		s.Footer = overlay.Footer
	}
	if len(overlay.QuickSearches) > 0 {
		s.QuickSearches = overlay.QuickSearches
	}
	return s
}
