package doc2pdf

import (
	"archive/zip"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// Recording canvas
// ---------------------------------------------------------------------------

// drawOp is one call recorded by recordingCanvas.
type drawOp struct {
	Kind string // "text" or "image"
	Page int
	X, Y float64
	W, H float64
	Text string
	Font fontSpec
}

// recordingCanvas records draw calls. Strings measure half the font size
// per rune, which keeps expected wrap points easy to compute.
type recordingCanvas struct {
	width, height float64
	created       time.Time
	font          fontSpec
	pages         int
	pending       bool
	breaks        int
	ops           []drawOp
	imageErr      error
}

func newRecordingCanvas(width, height float64, created time.Time) *recordingCanvas {
	return &recordingCanvas{width: width, height: height, created: created, font: bodyFont, pending: true}
}

// useRecorder installs a recording canvas factory on c and returns a
// function yielding the most recently created canvas.
func useRecorder(c *Converter) func() *recordingCanvas {
	var last *recordingCanvas
	c.newCanvas = func(w, h float64, created time.Time) canvas {
		last = newRecordingCanvas(w, h, created)
		return last
	}
	return func() *recordingCanvas { return last }
}

func (r *recordingCanvas) SetFont(f fontSpec) { r.font = f }

func (r *recordingCanvas) StringWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * r.font.Size * 0.5
}

func (r *recordingCanvas) DrawString(x, y float64, s string) {
	r.ensurePage()
	r.ops = append(r.ops, drawOp{Kind: "text", Page: r.pages, X: x, Y: y, Text: s, Font: r.font})
}

func (r *recordingCanvas) DrawImage(img *encodedImage, x, y, w, h float64) error {
	if r.imageErr != nil {
		return r.imageErr
	}
	r.ensurePage()
	r.ops = append(r.ops, drawOp{Kind: "image", Page: r.pages, X: x, Y: y, W: w, H: h})
	return nil
}

func (r *recordingCanvas) ShowPage() {
	r.breaks++
	r.pending = true
}

func (r *recordingCanvas) PageCount() int { return r.pages }

func (r *recordingCanvas) Save(w io.Writer) error {
	if r.pages == 0 {
		r.pages = 1
	}
	_, err := fmt.Fprintf(w, "%%PDF-recorded pages=%d ops=%d\n", r.pages, len(r.ops))
	return err
}

func (r *recordingCanvas) ensurePage() {
	if r.pending {
		r.pages++
		r.pending = false
	}
}

// texts returns the text of every string drawn, in order.
func (r *recordingCanvas) texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *recordingCanvas) countPrefix(prefix string) int {
	n := 0
	for _, s := range r.texts() {
		if strings.HasPrefix(s, prefix) {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func fixedClock() time.Time {
	return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
}

// writePNG writes a w×h PNG. Opaque images are solid; others are half
// transparent.
func writePNG(t *testing.T, dir, name string, w, h int, opaque bool) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	c := color.NRGBA{R: 200, G: 80, B: 40, A: 255}
	if !opaque {
		c.A = 128
	}
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

// writeFile writes raw content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// writeEPUB builds a minimal EPUB whose chapters are the given XHTML
// body fragments, in spine order.
func writeEPUB(t *testing.T, dir, name, title, author string, chapters ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	var manifest, spine strings.Builder
	for i := range chapters {
		fmt.Fprintf(&manifest, `<item id="ch%d" href="ch%d.xhtml" media-type="application/xhtml+xml"/>`, i, i)
		fmt.Fprintf(&spine, `<itemref idref="ch%d"/>`, i)
	}

	var metadata strings.Builder
	if title != "" {
		fmt.Fprintf(&metadata, "<dc:title>%s</dc:title>", title)
	}
	if author != "" {
		fmt.Fprintf(&metadata, "<dc:creator>%s</dc:creator>", author)
	}

	files := []struct{ name, body string }{
		{"mimetype", "application/epub+zip"},
		{"META-INF/container.xml", `<?xml version="1.0"?><container><rootfiles><rootfile full-path="OEBPS/book.opf"/></rootfiles></container>`},
		{"OEBPS/book.opf", `<?xml version="1.0"?><package xmlns:dc="http://purl.org/dc/elements/1.1/"><metadata>` +
			metadata.String() + `</metadata><manifest>` + manifest.String() + `</manifest><spine>` + spine.String() + `</spine></package>`},
	}
	for i, ch := range chapters {
		files = append(files, struct{ name, body string }{
			fmt.Sprintf("OEBPS/ch%d.xhtml", i),
			`<?xml version="1.0" encoding="utf-8"?><html xmlns="http://www.w3.org/1999/xhtml"><head><title>x</title></head><body>` + ch + `</body></html>`,
		})
	}

	zw := zip.NewWriter(f)
	for _, file := range files {
		w, err := zw.Create(file.name)
		if err != nil {
			t.Fatalf("zip create %s: %v", file.name, err)
		}
		if _, err := io.WriteString(w, file.body); err != nil {
			t.Fatalf("zip write %s: %v", file.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return path
}

// longParagraph returns n words of filler text.
func longParagraph(n int) string {
	words := []string{"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit"}
	var sb strings.Builder
	for i := range n {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(words[i%len(words)])
	}
	return sb.String()
}
