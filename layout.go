package doc2pdf

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-doc2pdf/internal/markup"
)

// Title page offsets from the top edge, in points.
const (
	titleOffset  = 100
	sourceOffset = 120
)

// pageCursor tracks the vertical write position of one render call.
type pageCursor struct {
	Y          float64 // baseline of the next line
	PageWidth  float64
	PageHeight float64
	Margin     float64
	LineHeight float64
	Page       int // 1-based number of the page being written
}

func newPageCursor(cfg RenderConfig) *pageCursor {
	w, h := cfg.PageDimensions()
	return &pageCursor{
		Y:          h - cfg.Margin,
		PageWidth:  w,
		PageHeight: h,
		Margin:     cfg.Margin,
		LineHeight: cfg.LineHeight,
		Page:       1,
	}
}

// full reports whether another line would cross the bottom margin.
func (c *pageCursor) full() bool {
	return c.Y < c.Margin+c.LineHeight
}

func (c *pageCursor) textWidth() float64 {
	return c.PageWidth - 2*c.Margin
}

// textLayout flows text blocks onto a canvas.
type textLayout struct {
	cv     canvas
	cur    *pageCursor
	logger *slog.Logger
}

func newTextLayout(cv canvas, cfg RenderConfig, logger *slog.Logger) *textLayout {
	return &textLayout{cv: cv, cur: newPageCursor(cfg), logger: logger}
}

// Blocks lays out blocks in order. Whitespace-only blocks are skipped
// silently; blocks that cannot be laid out are skipped and logged. It
// returns the number of blocks skipped because of errors.
func (l *textLayout) Blocks(source string, blocks []markup.Block) int {
	skipped := 0
	for i, b := range blocks {
		if strings.TrimSpace(b.Text) == "" {
			continue
		}
		if err := l.block(b); err != nil {
			skipped++
			l.logger.Warn("skipping block", "source", source, "block", i, "error", err)
		}
	}
	return skipped
}

// TitlePage writes the title page that precedes each document of a
// combined batch and ends the page.
func (l *textLayout) TitlePage(source string) {
	l.cv.SetFont(titleFont)
	l.cv.DrawString(l.cur.Margin, l.cur.PageHeight-titleOffset, "Book: "+filepath.Base(source))
	l.cv.SetFont(sourceFont)
	l.cv.DrawString(l.cur.Margin, l.cur.PageHeight-sourceOffset, "Source: "+source)
	l.PageBreak()
}

// PageBreak ends the current page and moves the cursor to the top of the
// next one.
func (l *textLayout) PageBreak() {
	l.cv.ShowPage()
	l.cur.Y = l.cur.PageHeight - l.cur.Margin
	l.cur.Page++
}

func (l *textLayout) block(b markup.Block) error {
	if !utf8.ValidString(b.Text) {
		return fmt.Errorf("%w: invalid UTF-8", ErrLayout)
	}

	l.ensureRoom()
	if b.Heading {
		l.heading(b.Text)
	} else {
		l.paragraph(b.Text)
	}
	l.cur.Y -= l.cur.LineHeight
	return nil
}

// heading draws a bold heading and leaves two line heights below it.
// Headings wider than the text area wrap.
func (l *textLayout) heading(text string) {
	l.cv.SetFont(headingFont)
	lines := wrapText(text, l.cur.textWidth(), l.cv.StringWidth)
	for i, line := range lines {
		if i > 0 {
			l.cur.Y -= l.cur.LineHeight
			l.ensureRoom()
		}
		l.cv.DrawString(l.cur.Margin, l.cur.Y, line)
	}
	l.cur.Y -= 2 * l.cur.LineHeight
}

// paragraph draws word-wrapped body text, breaking the page between lines
// when the bottom margin is reached.
func (l *textLayout) paragraph(text string) {
	l.cv.SetFont(bodyFont)
	lines := wrapText(text, l.cur.textWidth(), l.cv.StringWidth)
	for i, line := range lines {
		if i > 0 {
			l.ensureRoom()
		}
		l.cv.DrawString(l.cur.Margin, l.cur.Y, line)
		l.cur.Y -= l.cur.LineHeight
	}
}

func (l *textLayout) ensureRoom() {
	if l.cur.full() {
		l.PageBreak()
	}
}

// wrapText greedily packs words into lines whose measured width stays
// strictly under width. A word that alone reaches width is split between
// runes.
func wrapText(text string, width float64, measure func(string) float64) []string {
	var lines []string
	line := ""

	for _, word := range strings.Fields(text) {
		if measure(word) >= width {
			if line != "" {
				lines = append(lines, line)
			}
			chunks := splitWord(word, width, measure)
			lines = append(lines, chunks[:len(chunks)-1]...)
			line = chunks[len(chunks)-1]
			continue
		}

		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) < width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}

	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitWord cuts word into pieces narrower than width. Each piece holds at
// least one rune, so a single glyph wider than the page still progresses.
func splitWord(word string, width float64, measure func(string) float64) []string {
	var chunks []string
	var cur strings.Builder
	for _, r := range word {
		if cur.Len() > 0 && measure(cur.String()+string(r)) >= width {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		cur.WriteRune(r)
	}
	return append(chunks, cur.String())
}
