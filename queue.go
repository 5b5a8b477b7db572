package doc2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Processor performs one job.
type Processor interface {
	Process(ctx context.Context, job Job) (*JobResult, error)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, job Job) (*JobResult, error)

// Process calls f.
func (f ProcessorFunc) Process(ctx context.Context, job Job) (*JobResult, error) {
	return f(ctx, job)
}

// Queue is an unbounded FIFO of jobs drained by a single worker.
// Enqueue, Stop and Pending are safe from any goroutine; Run must be
// called by exactly one.
type Queue struct {
	proc     Processor
	logger   *slog.Logger
	now      func() time.Time
	notifier func(Event)

	mu      sync.Mutex
	jobs    []Job
	stopped bool
	wake    chan struct{} // capacity 1, coalesces signals
}

// NewQueue creates a queue whose worker runs jobs through proc.
func NewQueue(proc Processor, opts ...Option) *Queue {
	o := applyOptions(opts)
	return &Queue{
		proc:     proc,
		logger:   o.logger,
		now:      o.now,
		notifier: o.notifier,
		wake:     make(chan struct{}, 1),
	}
}

// Enqueue appends jobs to the tail. It never blocks on capacity.
// After Stop it returns ErrQueueClosed and enqueues nothing.
func (q *Queue) Enqueue(jobs ...Job) error {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.jobs = append(q.jobs, jobs...)
	q.mu.Unlock()

	q.signal()
	return nil
}

// Stop asks the worker to return before popping another job. A job that
// is already running finishes first. Jobs still queued stay pending.
func (q *Queue) Stop() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()

	q.signal()
}

// Pending returns the number of jobs not yet taken by the worker.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

// Run is the worker loop. It processes jobs in FIFO order and returns nil
// after Stop, or ctx.Err() when ctx ends while idle or between jobs.
// Jobs run under a context detached from ctx: a job is never cut short.
func (q *Queue) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		job, ok, stopped := q.next()
		if stopped {
			return nil
		}
		if !ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-q.wake:
			}
			continue
		}

		q.run(context.WithoutCancel(ctx), job)
	}
}

// next pops the head job. The stop flag wins over queued jobs.
func (q *Queue) next() (job Job, ok, stopped bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return Job{}, false, true
	}
	if len(q.jobs) == 0 {
		return Job{}, false, false
	}
	job = q.jobs[0]
	q.jobs[0] = Job{}
	q.jobs = q.jobs[1:]
	return job, true, false
}

func (q *Queue) run(ctx context.Context, job Job) {
	log := q.logger.With("job", job.ID, "kind", job.Kind.String(), "name", job.Name())
	log.Debug("job started")
	q.notify(Event{Type: EventJobStarted, Job: job})

	start := q.now()
	result, err := q.process(ctx, job)
	if err != nil {
		log.Warn("job failed", "error", err)
		q.notify(Event{Type: EventJobFailed, Job: job, Err: err})
		return
	}

	log.Debug("job finished", "output", result.OutputPath, "pages", result.Pages, "duration", q.now().Sub(start))
	q.notify(Event{Type: EventJobSucceeded, Job: job, Result: result})
}

// process runs one job, turning a panic into an error so the worker
// survives it.
func (q *Queue) process(ctx context.Context, job Job) (result *JobResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrProcessorPanic, r)
		}
	}()

	result, err = q.proc.Process(ctx, job)
	if err == nil && result == nil {
		result = &JobResult{JobID: job.ID, Kind: job.Kind}
	}
	return result, err
}

func (q *Queue) notify(e Event) {
	if q.notifier != nil {
		q.notifier(e)
	}
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
