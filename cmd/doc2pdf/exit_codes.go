package main

import (
	"errors"
	"os"

	doc2pdf "github.com/alnah/go-doc2pdf"
	"github.com/alnah/go-doc2pdf/internal/config"
)

// Exit codes for the doc2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All jobs succeeded
	ExitGeneral = 1 // General/unexpected error, interruption
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitDecode  = 4 // Unreadable or corrupt source
)

// ErrUsage wraps flag parsing errors.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, doc2pdf.ErrDecode) {
		return ExitDecode
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, doc2pdf.ErrWritePDF) ||
		errors.Is(err, doc2pdf.ErrWriteJSON) ||
		errors.Is(err, doc2pdf.ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoSources) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldInvalid) ||
		errors.Is(err, doc2pdf.ErrInvalidPageSize) ||
		errors.Is(err, doc2pdf.ErrInvalidOrientation) ||
		errors.Is(err, doc2pdf.ErrInvalidMargin) ||
		errors.Is(err, doc2pdf.ErrInvalidLineHeight) ||
		errors.Is(err, doc2pdf.ErrInvalidQuality) ||
		errors.Is(err, doc2pdf.ErrInvalidNamingPattern) ||
		errors.Is(err, doc2pdf.ErrUnsupportedSource) ||
		errors.Is(err, doc2pdf.ErrEmptyBatch) {
		return ExitUsage
	}

	return ExitGeneral
}
