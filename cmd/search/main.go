package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/0x13a/launchpad/internal/job"

	"github.com/dustin/go-humanize"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(w)
	source := fs.String("source", "data/jobs.csv", "path to the jobs csv")
	maxYears := fs.Int("max-years", job.EntryLevelMaxYears, "inclusive entry-level experience threshold")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter, err := job.NewFilter(*maxYears)
	if err != nil {
		return err
	}
	res, err := job.NewRepository(*source).Search(filter, strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	if !res.Searched {
		fmt.Fprintln(w, "Start by searching a job title.")
		return nil
	}
	fmt.Fprintf(w, "Showing %s role(s)\n", humanize.Comma(int64(len(res.Jobs))))
	for _, j := range res.Jobs {
		posted := j.PostedDate()
		if j.PostedAt != nil {
			posted = fmt.Sprintf("%s (%s)", posted, humanize.Time(*j.PostedAt))
		}
		fmt.Fprintf(w, "%s | %s · %s | %s | Posted %s | Source: %s | %s\n",
			j.Title, j.Company, j.Location, filter.Badge(), posted, j.SourceLabel(), j.ApplyURL)
	}
	return nil
}
