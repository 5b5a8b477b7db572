package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	doc2pdf "github.com/alnah/go-doc2pdf"
	"github.com/alnah/go-doc2pdf/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"interrupted", ErrInterrupted, ExitGeneral},
		{"panic", doc2pdf.ErrProcessorPanic, ExitGeneral},

		{"decode", doc2pdf.ErrDecode, ExitDecode},
		{"wrapped decode", fmt.Errorf("1 of 2 job(s) failed: %w", fmt.Errorf("%w: x.epub", doc2pdf.ErrDecode)), ExitDecode},

		{"not exist", os.ErrNotExist, ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"write pdf", doc2pdf.ErrWritePDF, ExitIO},
		{"write json", doc2pdf.ErrWriteJSON, ExitIO},
		{"output dir", doc2pdf.ErrCreateOutputDir, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no sources", fmt.Errorf("discovering files: %w", ErrNoSources), ExitIO},

		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field invalid", config.ErrFieldInvalid, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"page size", doc2pdf.ErrInvalidPageSize, ExitUsage},
		{"orientation", doc2pdf.ErrInvalidOrientation, ExitUsage},
		{"margin", doc2pdf.ErrInvalidMargin, ExitUsage},
		{"line height", doc2pdf.ErrInvalidLineHeight, ExitUsage},
		{"quality", doc2pdf.ErrInvalidQuality, ExitUsage},
		{"naming pattern", doc2pdf.ErrInvalidNamingPattern, ExitUsage},
		{"unsupported source", doc2pdf.ErrUnsupportedSource, ExitUsage},
		{"empty batch", doc2pdf.ErrEmptyBatch, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
