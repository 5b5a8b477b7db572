package doc2pdf

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-doc2pdf/internal/fileutil"
)

// Naming pattern placeholders.
const (
	PlaceholderName = "{name}"
	PlaceholderNum  = "{num}"
)

// OutputFileName returns the PDF file name for a single source.
// Without a pattern the result is the source's base name with a .pdf
// extension. A pattern has {name} replaced by the base name and {num} by
// the 1-based batch position; ".pdf" is appended when missing.
func OutputFileName(source string, index int, pattern string) string {
	base := fileutil.BaseName(source)
	if pattern == "" {
		return base + ".pdf"
	}

	name := strings.ReplaceAll(pattern, PlaceholderName, base)
	name = strings.ReplaceAll(name, PlaceholderNum, strconv.Itoa(index))
	return withExt(name, ".pdf")
}

// CombinedFileName returns the file name of a combined batch.
func CombinedFileName(name string) string {
	if name == "" {
		name = DefaultCombinedName
	}
	return withExt(name, ".pdf")
}

// JSONFileName returns the extraction output name for an EPUB.
func JSONFileName(source string) string {
	return fileutil.BaseName(source) + ".json"
}

// outputDir returns where outputs for source are written.
func outputDir(cfg RenderConfig, source string) string {
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return filepath.Dir(source)
}

func withExt(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return name + ext
}
