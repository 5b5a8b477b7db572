package doc2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrDecode          = errors.New("cannot decode source")
	ErrWritePDF        = errors.New("cannot write PDF")
	ErrWriteJSON       = errors.New("cannot write JSON")
	ErrCreateOutputDir = errors.New("cannot create output directory")
	ErrLayout          = errors.New("cannot lay out text block")

	// Render configuration validation errors.
	ErrInvalidPageSize      = errors.New("invalid page size")
	ErrInvalidOrientation   = errors.New("invalid orientation")
	ErrInvalidMargin        = errors.New("invalid margin")
	ErrInvalidLineHeight    = errors.New("invalid line height")
	ErrInvalidQuality       = errors.New("invalid image quality")
	ErrInvalidNamingPattern = errors.New("invalid naming pattern")

	// Job and queue errors.
	ErrEmptyBatch        = errors.New("batch has no sources")
	ErrUnknownJobKind    = errors.New("unknown job kind")
	ErrUnsupportedSource = errors.New("unsupported source type")
	ErrQueueClosed       = errors.New("queue is stopped")
	ErrProcessorPanic    = errors.New("internal error")
)
