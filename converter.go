package doc2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/alnah/go-doc2pdf/internal/fileutil"
)

// Compile-time interface implementation checks.
var (
	_ Processor = (*Converter)(nil)
	_ Processor = (*Extractor)(nil)
	_ canvas    = (*pdfCanvas)(nil)
)

// Converter renders image and document jobs to PDF files.
// A Converter holds no per-job state and may be shared.
type Converter struct {
	logger    *slog.Logger
	now       func() time.Time
	newCanvas canvasFactory
	docs      *documentLoader
}

// NewConverter creates a Converter. It accepts WithLogger and WithClock.
func NewConverter(opts ...Option) *Converter {
	o := applyOptions(opts)
	return &Converter{
		logger:    o.logger,
		now:       o.now,
		newCanvas: newPDFCanvas,
		docs:      newDocumentLoader(),
	}
}

// Process renders job and writes its PDF.
//
// Single-source jobs fail as a whole. Combined jobs skip sources that
// cannot be decoded, record them in JobResult.Batch and fail only when no
// source could be rendered. ctx is used for document decoding only;
// rendering is never interrupted.
func (c *Converter) Process(ctx context.Context, job Job) (*JobResult, error) {
	if len(job.Paths) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := job.Config.Validate(); err != nil {
		return nil, err
	}
	cfg := job.Config.withDefaults()
	start := c.now()

	var (
		result *JobResult
		err    error
	)
	switch job.Kind {
	case KindImage:
		result, err = c.renderImage(job, cfg)
	case KindDocument:
		result, err = c.renderDocument(ctx, job, cfg)
	case KindCombinedImages:
		result, err = c.renderCombinedImages(job, cfg)
	case KindCombinedDocuments:
		result, err = c.renderCombinedDocuments(ctx, job, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownJobKind, job.Kind)
	}
	if err != nil {
		return nil, err
	}

	result.JobID = job.ID
	result.Kind = job.Kind
	result.Duration = c.now().Sub(start)
	return result, nil
}

func (c *Converter) renderImage(job Job, cfg RenderConfig) (*JobResult, error) {
	source := job.Paths[0]
	img, err := loadImage(source, cfg.ImageQuality)
	if err != nil {
		return nil, err
	}

	w, h := cfg.PageDimensions()
	cv := c.newCanvas(w, h, c.now())
	if err := drawImagePage(cv, img, w, h); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWritePDF, filepath.Base(source), err)
	}

	return c.save(cv, outputDir(cfg, source), OutputFileName(source, job.Index, cfg.NamingPattern))
}

func (c *Converter) renderDocument(ctx context.Context, job Job, cfg RenderConfig) (*JobResult, error) {
	source := job.Paths[0]
	blocks, err := c.docs.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	w, h := cfg.PageDimensions()
	cv := c.newCanvas(w, h, c.now())
	newTextLayout(cv, cfg, c.logger).Blocks(source, blocks)

	return c.save(cv, outputDir(cfg, source), OutputFileName(source, job.Index, cfg.NamingPattern))
}

// renderCombinedImages puts each decodable image on its own page.
func (c *Converter) renderCombinedImages(job Job, cfg RenderConfig) (*JobResult, error) {
	w, h := cfg.PageDimensions()
	cv := c.newCanvas(w, h, c.now())
	batch := &BatchResult{}

	for _, source := range job.Paths {
		img, err := loadImage(source, cfg.ImageQuality)
		if err != nil {
			c.logger.Warn("skipping image", "job", job.ID, "source", source, "error", err)
			batch.fail(source, err)
			continue
		}
		if err := drawImagePage(cv, img, w, h); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrWritePDF, filepath.Base(source), err)
		}
		cv.ShowPage()
		batch.succeed(source)
	}

	return c.saveBatch(cv, job, cfg, batch)
}

// renderCombinedDocuments writes, for each decodable document, a title
// page followed by its content starting on a fresh page.
func (c *Converter) renderCombinedDocuments(ctx context.Context, job Job, cfg RenderConfig) (*JobResult, error) {
	w, h := cfg.PageDimensions()
	cv := c.newCanvas(w, h, c.now())
	layout := newTextLayout(cv, cfg, c.logger)
	batch := &BatchResult{}

	for _, source := range job.Paths {
		// Decode before drawing so a broken document leaves no title page.
		blocks, err := c.docs.Load(ctx, source)
		if err != nil {
			c.logger.Warn("skipping document", "job", job.ID, "source", source, "error", err)
			batch.fail(source, err)
			continue
		}
		layout.TitlePage(source)
		layout.Blocks(source, blocks)
		layout.PageBreak()
		batch.succeed(source)
	}

	return c.saveBatch(cv, job, cfg, batch)
}

func (c *Converter) saveBatch(cv canvas, job Job, cfg RenderConfig, batch *BatchResult) (*JobResult, error) {
	if len(batch.Succeeded) == 0 {
		return nil, fmt.Errorf("%w: none of %d sources could be rendered: %v",
			ErrDecode, len(batch.Failed), batch.Failed[0].Err)
	}

	result, err := c.save(cv, outputDir(cfg, job.Paths[0]), CombinedFileName(cfg.CombinedName))
	if err != nil {
		return nil, err
	}
	result.Batch = batch
	return result, nil
}

// save writes the canvas atomically to dir/name.
func (c *Converter) save(cv canvas, dir, name string) (*JobResult, error) {
	if err := fileutil.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCreateOutputDir, dir, err)
	}

	out := filepath.Join(dir, name)
	if err := fileutil.WriteFileAtomic(out, cv.Save); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWritePDF, out, err)
	}

	c.logger.Debug("wrote PDF", "path", out, "pages", cv.PageCount())
	return &JobResult{OutputPath: out, Pages: cv.PageCount()}, nil
}
