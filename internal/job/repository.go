package job

import (
	"os"

	"github.com/pkg/errors"
)

// Repository reads jobs from a CSV file. Nothing is cached between calls.
type Repository struct {
	path string
}

func NewRepository(path string) *Repository {
	return &Repository{path}
}

// All re-reads the source and returns every job in file order.
func (r *Repository) All() ([]*Job, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open job source %s", r.path)
	}
	defer f.Close()
	jobs, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load job source %s", r.path)
	}
	return jobs, nil
}

// Search loads a fresh snapshot and runs query through f.
func (r *Repository) Search(f Filter, query string) (SearchResult, error) {
	jobs, err := r.All()
	if err != nil {
		return SearchResult{}, err
	}
	return f.Search(jobs, query), nil
}
