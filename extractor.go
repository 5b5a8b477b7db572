package doc2pdf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-doc2pdf/internal/epub"
	"github.com/alnah/go-doc2pdf/internal/fileutil"
	"github.com/alnah/go-doc2pdf/internal/markup"
)

// Placeholders for missing EPUB metadata.
const (
	UnknownTitle    = "Unknown Title"
	UnknownAuthor   = "Unknown Author"
	UntitledChapter = "Untitled Chapter"
)

// Book is the JSON shape written by the Extractor.
type Book struct {
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Chapters []Chapter `json:"chapters"`
}

// Chapter is one content document of an EPUB.
type Chapter struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ExtractBook reads the EPUB at path into a Book. Chapters follow the
// spine. A chapter title is the first h1, h2 or h3 of its document.
func ExtractBook(path string) (*Book, error) {
	eb, err := epub.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, filepath.Base(path), err)
	}

	book := &Book{
		Title:    orDefault(eb.Title, UnknownTitle),
		Author:   orDefault(eb.Creator, UnknownAuthor),
		Chapters: make([]Chapter, 0, len(eb.Documents)),
	}

	for _, doc := range eb.Documents {
		root, err := markup.Parse(string(doc.Content))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s: %v", ErrDecode, filepath.Base(path), doc.Href, err)
		}
		book.Chapters = append(book.Chapters, Chapter{
			Title:   orDefault(markup.FirstHeading(root), UntitledChapter),
			Content: strings.TrimSpace(markup.Text(markup.Body(root))),
		})
	}
	return book, nil
}

// WriteJSON encodes b with four-space indentation, leaving non-ASCII and
// HTML characters unescaped.
func (b *Book) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(b)
}

// Extractor converts EPUB jobs to JSON files.
type Extractor struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewExtractor creates an Extractor. It accepts WithLogger and WithClock.
func NewExtractor(opts ...Option) *Extractor {
	o := applyOptions(opts)
	return &Extractor{logger: o.logger, now: o.now}
}

// Process writes <base>.json for the job's EPUB into the output directory.
func (e *Extractor) Process(_ context.Context, job Job) (*JobResult, error) {
	if job.Kind != KindExtract {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJobKind, job.Kind)
	}
	if len(job.Paths) == 0 {
		return nil, ErrEmptyBatch
	}

	start := e.now()
	source := job.Paths[0]
	book, err := ExtractBook(source)
	if err != nil {
		return nil, err
	}

	dir := outputDir(job.Config, source)
	if err := fileutil.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCreateOutputDir, dir, err)
	}
	out := filepath.Join(dir, JSONFileName(source))
	if err := fileutil.WriteFileAtomic(out, book.WriteJSON); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWriteJSON, out, err)
	}

	e.logger.Debug("wrote JSON", "path", out, "chapters", len(book.Chapters))
	return &JobResult{
		JobID:      job.ID,
		Kind:       job.Kind,
		OutputPath: out,
		Duration:   e.now().Sub(start),
	}, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
