package doc2pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-doc2pdf/internal/epub"
	"github.com/alnah/go-doc2pdf/internal/markup"
)

// SourceType classifies an input file by extension.
type SourceType int

// Source types.
const (
	SourceUnknown SourceType = iota
	SourceImage
	SourceEPUB
	SourceMarkdown
)

// Recognized file extensions, lower case.
var (
	ImageExtensions    = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff", ".webp"}
	EPUBExtensions     = []string{".epub"}
	MarkdownExtensions = []string{".md", ".markdown"}
)

// DetectSource returns the source type for path.
func DetectSource(path string) SourceType {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case slices.Contains(ImageExtensions, ext):
		return SourceImage
	case slices.Contains(EPUBExtensions, ext):
		return SourceEPUB
	case slices.Contains(MarkdownExtensions, ext):
		return SourceMarkdown
	}
	return SourceUnknown
}

// IsDocument reports whether the source lays out as text.
func (t SourceType) IsDocument() bool {
	return t == SourceEPUB || t == SourceMarkdown
}

// SupportedExtensions lists every extension a converter accepts.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(ImageExtensions)+len(EPUBExtensions)+len(MarkdownExtensions))
	exts = append(exts, ImageExtensions...)
	exts = append(exts, EPUBExtensions...)
	return append(exts, MarkdownExtensions...)
}

// documentLoader decodes text documents into blocks.
type documentLoader struct {
	md *markup.MarkdownConverter
}

func newDocumentLoader() *documentLoader {
	return &documentLoader{md: markup.NewMarkdownConverter()}
}

// Load returns the blocks of an EPUB (spine order) or Markdown file.
// Any read or parse failure is reported as ErrDecode.
func (l *documentLoader) Load(ctx context.Context, path string) ([]markup.Block, error) {
	switch DetectSource(path) {
	case SourceEPUB:
		return l.loadEPUB(path)
	case SourceMarkdown:
		return l.loadMarkdown(ctx, path)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, filepath.Base(path))
}

func (l *documentLoader) loadEPUB(path string) ([]markup.Block, error) {
	book, err := epub.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, filepath.Base(path), err)
	}

	var blocks []markup.Block
	for _, doc := range book.Documents {
		docBlocks, err := markup.ExtractBlocks(bytes.NewReader(doc.Content))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s: %v", ErrDecode, filepath.Base(path), doc.Href, err)
		}
		blocks = append(blocks, docBlocks...)
	}
	return blocks, nil
}

func (l *documentLoader) loadMarkdown(ctx context.Context, path string) ([]markup.Block, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	blocks, err := l.md.MarkdownBlocks(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, filepath.Base(path), err)
	}
	return blocks, nil
}
