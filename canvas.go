package doc2pdf

import (
	"io"
	"time"
)

// fontSpec selects one of the core PDF fonts.
type fontSpec struct {
	Family string
	Style  string // "" regular, "B" bold
	Size   float64
}

var (
	headingFont = fontSpec{Family: "Helvetica", Style: "B", Size: 14}
	bodyFont    = fontSpec{Family: "Helvetica", Size: 11}
	titleFont   = fontSpec{Family: "Helvetica", Style: "B", Size: 18}
	sourceFont  = fontSpec{Family: "Helvetica", Size: 12}
)

// canvas is the drawing surface a render call writes to. Coordinates are
// points with the origin at the bottom-left corner of the page; y is the
// text baseline for strings and the lower edge for images.
type canvas interface {
	SetFont(f fontSpec)
	// StringWidth measures s in the current font.
	StringWidth(s string) float64
	DrawString(x, y float64, s string)
	DrawImage(img *encodedImage, x, y, w, h float64) error
	// ShowPage ends the current page. The next page opens on the next
	// draw call, so a trailing ShowPage adds no blank page.
	ShowPage()
	PageCount() int
	// Save writes the document. A document with nothing drawn gets a
	// single blank page.
	Save(w io.Writer) error
}

// canvasFactory creates a canvas with pages of the given size.
type canvasFactory func(width, height float64, created time.Time) canvas
