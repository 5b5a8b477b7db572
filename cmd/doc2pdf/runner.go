package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	doc2pdf "github.com/alnah/go-doc2pdf"
	"github.com/alnah/go-doc2pdf/internal/hints"
)

// ErrInterrupted reports jobs left queued after a signal.
var ErrInterrupted = errors.New("interrupted")

// runJobs submits jobs to a fresh queue and drains it with one worker
// goroutine while the calling goroutine group prints events. It returns
// once every job has reported, or once ctx ends between jobs.
func runJobs(ctx context.Context, proc doc2pdf.Processor, jobs []doc2pdf.Job, logger *slog.Logger, rep *reporter) error {
	if len(jobs) == 0 {
		return doc2pdf.ErrEmptyBatch
	}

	// Two events per job, so the worker never blocks on the printer.
	events := make(chan doc2pdf.Event, 2*len(jobs))

	q := doc2pdf.NewQueue(proc,
		doc2pdf.WithLogger(logger),
		doc2pdf.WithClock(rep.now),
		doc2pdf.WithNotifier(func(e doc2pdf.Event) { events <- e }),
	)
	if err := q.Enqueue(jobs...); err != nil {
		return err
	}

	var g errgroup.Group
	var runErr error

	g.Go(func() error {
		defer close(events)
		runErr = q.Run(ctx)
		return nil
	})

	g.Go(func() error {
		finished := 0
		for e := range events {
			rep.handle(e)
			if e.Type == doc2pdf.EventJobStarted {
				continue
			}
			if finished++; finished == len(jobs) {
				q.Stop()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	rep.finish()

	// An interrupt during the last job still leaves every job finished.
	if pending := q.Pending(); runErr != nil && pending > 0 {
		logger.Debug("queue stopped", "error", runErr, "pending", pending)
		return fmt.Errorf("%w: %d job(s) not started%s", ErrInterrupted, pending, hints.ForInterrupted(pending))
	}
	return rep.err()
}
