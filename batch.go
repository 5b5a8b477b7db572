package doc2pdf

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Batch is an ordered selection of source files waiting to be submitted.
// It is not safe for concurrent use; the presentation layer owns it.
type Batch struct {
	files []string
}

// Add appends paths not already in the batch and returns how many were added.
func (b *Batch) Add(paths ...string) int {
	added := 0
	for _, p := range paths {
		if slices.Contains(b.files, p) {
			continue
		}
		b.files = append(b.files, p)
		added++
	}
	return added
}

// Remove deletes the file at index i. Out of range indexes are ignored.
func (b *Batch) Remove(i int) {
	if i < 0 || i >= len(b.files) {
		return
	}
	b.files = slices.Delete(b.files, i, i+1)
}

// MoveUp swaps the file at i with its predecessor and returns its new index.
func (b *Batch) MoveUp(i int) int {
	if i <= 0 || i >= len(b.files) {
		return i
	}
	b.files[i-1], b.files[i] = b.files[i], b.files[i-1]
	return i - 1
}

// MoveDown swaps the file at i with its successor and returns its new index.
func (b *Batch) MoveDown(i int) int {
	if i < 0 || i >= len(b.files)-1 {
		return i
	}
	b.files[i+1], b.files[i] = b.files[i], b.files[i+1]
	return i + 1
}

// Clear empties the batch.
func (b *Batch) Clear() {
	b.files = nil
}

// Len returns the number of files.
func (b *Batch) Len() int {
	return len(b.files)
}

// Files returns a copy of the selection in order.
func (b *Batch) Files() []string {
	return slices.Clone(b.files)
}

// Jobs commits the selection into conversion jobs using cfg as the
// snapshot for every job.
//
// Without cfg.Combine each file becomes its own job, numbered by its
// position in the batch. With cfg.Combine all images go into one
// KindCombinedImages job and all documents into one KindCombinedDocuments
// job. When both are present the two outputs get "_images" and
// "_documents" suffixes so neither overwrites the other.
func (b *Batch) Jobs(cfg RenderConfig) ([]Job, error) {
	if len(b.files) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var images, documents []string
	for _, f := range b.files {
		switch t := DetectSource(f); {
		case t == SourceImage:
			images = append(images, f)
		case t.IsDocument():
			documents = append(documents, f)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, filepath.Base(f))
		}
	}

	if !cfg.Combine {
		jobs := make([]Job, 0, len(b.files))
		for i, f := range b.files {
			kind := KindDocument
			if DetectSource(f) == SourceImage {
				kind = KindImage
			}
			jobs = append(jobs, NewJob(kind, i+1, cfg, f))
		}
		return jobs, nil
	}

	name := strings.TrimSuffix(CombinedFileName(cfg.CombinedName), ".pdf")
	both := len(images) > 0 && len(documents) > 0

	var jobs []Job
	if len(images) > 0 {
		c := cfg
		if both {
			c.CombinedName = name + "_images"
		}
		jobs = append(jobs, NewJob(KindCombinedImages, len(jobs)+1, c, images...))
	}
	if len(documents) > 0 {
		c := cfg
		if both {
			c.CombinedName = name + "_documents"
		}
		jobs = append(jobs, NewJob(KindCombinedDocuments, len(jobs)+1, c, documents...))
	}
	return jobs, nil
}

// ExtractJobs commits the selection into EPUB to JSON jobs.
func (b *Batch) ExtractJobs(cfg RenderConfig) ([]Job, error) {
	if len(b.files) == 0 {
		return nil, ErrEmptyBatch
	}

	jobs := make([]Job, 0, len(b.files))
	for i, f := range b.files {
		if DetectSource(f) != SourceEPUB {
			return nil, fmt.Errorf("%w: %s (extract reads EPUB only)", ErrUnsupportedSource, filepath.Base(f))
		}
		jobs = append(jobs, NewJob(KindExtract, i+1, cfg, f))
	}
	return jobs, nil
}
