package markup

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrMarkdownConversion indicates Markdown to HTML conversion failed.
var ErrMarkdownConversion = errors.New("markdown conversion failed")

// MarkdownConverter converts Markdown to an HTML fragment with goldmark.
type MarkdownConverter struct {
	md goldmark.Markdown
}

// NewMarkdownConverter creates a converter with GFM and footnotes enabled.
func NewMarkdownConverter() *MarkdownConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Raw HTML stays escaped; it would otherwise leak tags into text blocks.
		),
	)
	return &MarkdownConverter{md: md}
}

// ToHTML converts Markdown content to HTML.
// Goldmark takes no context, so conversion runs in a goroutine and the
// caller returns early on cancellation.
func (c *MarkdownConverter) ToHTML(ctx context.Context, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert(content, &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// MarkdownBlocks converts Markdown and extracts its blocks.
func (c *MarkdownConverter) MarkdownBlocks(ctx context.Context, content []byte) ([]Block, error) {
	out, err := c.ToHTML(ctx, content)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarkdownConversion, err)
	}
	return Blocks(doc), nil
}
