package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	doc2pdf "github.com/alnah/go-doc2pdf"
	"github.com/alnah/go-doc2pdf/internal/hints"
)

// reporter prints queue events. It runs on the presentation goroutine
// only and is never shared with the worker.
type reporter struct {
	stdout  io.Writer
	stderr  io.Writer
	now     func() time.Time
	quiet   bool
	verbose bool

	started  map[string]time.Time
	rows     []summaryRow
	failed   int
	firstErr error
}

// summaryRow is one line of the --verbose table.
type summaryRow struct {
	name     string
	status   string
	output   string
	pages    int
	duration time.Duration
}

func newReporter(env *Environment, common commonFlags) *reporter {
	return &reporter{
		stdout:  env.Stdout,
		stderr:  env.Stderr,
		now:     env.Now,
		quiet:   common.quiet,
		verbose: common.verbose,
		started: make(map[string]time.Time),
	}
}

// handle prints one event.
func (r *reporter) handle(e doc2pdf.Event) {
	name := e.Job.Name()

	switch e.Type {
	case doc2pdf.EventJobStarted:
		r.started[e.Job.ID] = r.now()
		if !r.quiet {
			fmt.Fprintf(r.stdout, "Converting: %s\n", name)
		}

	case doc2pdf.EventJobSucceeded:
		row := summaryRow{
			name:     name,
			status:   "ok",
			output:   e.Result.OutputPath,
			pages:    e.Result.Pages,
			duration: r.elapsed(e.Job.ID),
		}
		if batch := e.Result.Batch; batch != nil && len(batch.Failed) > 0 {
			row.status = fmt.Sprintf("partial (%d skipped)", len(batch.Failed))
			for _, f := range batch.Failed {
				fmt.Fprintf(r.stderr, "FAILED %s: %v\n", filepath.Base(f.Path), f.Err)
			}
		}
		r.rows = append(r.rows, row)
		if !r.quiet {
			fmt.Fprintf(r.stdout, "Created %s\n", e.Result.OutputPath)
		}

	case doc2pdf.EventJobFailed:
		r.failed++
		if r.firstErr == nil {
			r.firstErr = e.Err
		}
		r.rows = append(r.rows, summaryRow{name: name, status: "failed", duration: r.elapsed(e.Job.ID)})
		fmt.Fprintf(r.stderr, "FAILED %s: %v%s\n", name, e.Err, hintFor(e.Err))
	}
}

// finish prints the closing summary.
func (r *reporter) finish() {
	if r.quiet || len(r.rows) == 0 {
		return
	}
	if r.verbose {
		fmt.Fprintln(r.stdout)
		fmt.Fprintln(r.stdout, r.table())
		return
	}
	if len(r.rows) > 1 {
		fmt.Fprintf(r.stdout, "\n%d succeeded, %d failed\n", len(r.rows)-r.failed, r.failed)
	}
}

// err summarizes failed jobs, wrapping the first failure for exit codes.
func (r *reporter) err() error {
	if r.failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d job(s) failed: %w", r.failed, len(r.rows), r.firstErr)
}

func (r *reporter) elapsed(id string) time.Duration {
	start, ok := r.started[id]
	if !ok {
		return 0
	}
	delete(r.started, id)
	return r.now().Sub(start)
}

// table renders the summary rows.
func (r *reporter) table() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"File", "Status", "Pages", "Time", "Output"})

	for _, row := range r.rows {
		pages := ""
		if row.pages > 0 {
			pages = strconv.Itoa(row.pages)
		}
		tw.AppendRow(table.Row{row.name, row.status, pages, row.duration.Round(time.Millisecond).String(), row.output})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// hintFor returns an actionable hint for a job failure.
func hintFor(err error) string {
	switch {
	case errors.Is(err, doc2pdf.ErrDecode):
		return hints.ForDecode(nil)
	case errors.Is(err, doc2pdf.ErrUnsupportedSource):
		return hints.ForDecode(doc2pdf.SupportedExtensions())
	case errors.Is(err, doc2pdf.ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}
