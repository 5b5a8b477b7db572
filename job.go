package doc2pdf

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// JobKind selects how a job is processed.
type JobKind int

// Job kinds.
const (
	KindImage             JobKind = iota + 1 // one image, one PDF
	KindDocument                             // one EPUB or Markdown file, one PDF
	KindCombinedImages                       // all images in one PDF
	KindCombinedDocuments                    // all documents in one PDF, with title pages
	KindExtract                              // EPUB to JSON
)

var jobKindNames = map[JobKind]string{
	KindImage:             "image",
	KindDocument:          "document",
	KindCombinedImages:    "combined-images",
	KindCombinedDocuments: "combined-documents",
	KindExtract:           "extract",
}

func (k JobKind) String() string {
	if name, ok := jobKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("JobKind(%d)", int(k))
}

// Combined reports whether the kind merges several sources.
func (k JobKind) Combined() bool {
	return k == KindCombinedImages || k == KindCombinedDocuments
}

// Job is one unit of work for the queue. Jobs are values: the config is a
// snapshot taken at submission and never changes afterwards.
type Job struct {
	ID     string
	Kind   JobKind
	Paths  []string // one path, or the ordered sources of a combined job
	Index  int      // 1-based position in the submitted batch
	Config RenderConfig
}

// NewJob creates a job with a fresh ID. The paths slice is copied.
func NewJob(kind JobKind, index int, cfg RenderConfig, paths ...string) Job {
	return Job{
		ID:     uuid.NewString(),
		Kind:   kind,
		Paths:  append([]string(nil), paths...),
		Index:  index,
		Config: cfg,
	}
}

// Name returns a short display name: the source's base name, or the
// output name for combined jobs.
func (j Job) Name() string {
	if j.Kind.Combined() {
		return CombinedFileName(j.Config.CombinedName)
	}
	if len(j.Paths) == 0 {
		return ""
	}
	return filepath.Base(j.Paths[0])
}

// JobResult describes a finished job.
type JobResult struct {
	JobID      string
	Kind       JobKind
	OutputPath string
	Pages      int
	Batch      *BatchResult // combined jobs only
	Duration   time.Duration
}

// BatchResult lists per-source outcomes of a combined job.
type BatchResult struct {
	Succeeded []string
	Failed    []ItemFailure
}

// ItemFailure records one source skipped by a combined job.
type ItemFailure struct {
	Path string
	Err  error
}

func (b *BatchResult) succeed(path string) {
	b.Succeeded = append(b.Succeeded, path)
}

func (b *BatchResult) fail(path string, err error) {
	b.Failed = append(b.Failed, ItemFailure{Path: path, Err: err})
}

// EventType identifies a queue notification.
type EventType int

// Queue notifications, emitted in this order for each job.
const (
	EventJobStarted EventType = iota + 1
	EventJobSucceeded
	EventJobFailed
)

func (t EventType) String() string {
	switch t {
	case EventJobStarted:
		return "started"
	case EventJobSucceeded:
		return "succeeded"
	case EventJobFailed:
		return "failed"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is a progress notification from the queue worker.
type Event struct {
	Type   EventType
	Job    Job
	Result *JobResult // EventJobSucceeded only
	Err    error      // EventJobFailed only
}
