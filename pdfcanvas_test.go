package doc2pdf

// Notes:
// - Output is parsed back with ledongthuc/pdf; only the page count is
//   asserted, glyph placement is covered by layout tests on the fake canvas

import (
	"bytes"
	"testing"

	"github.com/ledongthuc/pdf"
)

func pageCountOf(t *testing.T, data []byte) int {
	t.Helper()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("parsing PDF: %v", err)
	}
	return r.NumPage()
}

func savePDF(t *testing.T, cv canvas) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := cv.Save(&buf); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	return buf.Bytes()
}

func TestPDFCanvas_Pages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		draw      func(cv canvas)
		wantPages int
	}{
		{
			name:      "nothing drawn",
			draw:      func(canvas) {},
			wantPages: 1,
		},
		{
			name: "one page",
			draw: func(cv canvas) {
				cv.DrawString(50, 742, "hello")
			},
			wantPages: 1,
		},
		{
			name: "trailing breaks are free",
			draw: func(cv canvas) {
				cv.DrawString(50, 742, "hello")
				cv.ShowPage()
				cv.ShowPage()
			},
			wantPages: 1,
		},
		{
			name: "break between draws",
			draw: func(cv canvas) {
				cv.DrawString(50, 742, "one")
				cv.ShowPage()
				cv.DrawString(50, 742, "two")
				cv.ShowPage()
				cv.ShowPage()
				cv.DrawString(50, 742, "three")
			},
			wantPages: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cv := newPDFCanvas(612, 792, fixedClock())
			tt.draw(cv)
			data := savePDF(t, cv)

			if got := pageCountOf(t, data); got != tt.wantPages {
				t.Errorf("page count = %d, want %d", got, tt.wantPages)
			}
			if cv.PageCount() != tt.wantPages {
				t.Errorf("PageCount() = %d, want %d", cv.PageCount(), tt.wantPages)
			}
		})
	}
}

func TestPDFCanvas_StringWidth(t *testing.T) {
	t.Parallel()

	cv := newPDFCanvas(612, 792, fixedClock())

	cv.SetFont(bodyFont)
	regular := cv.StringWidth("Hello world")
	cv.SetFont(headingFont)
	bold := cv.StringWidth("Hello world")

	if regular <= 0 {
		t.Fatalf("StringWidth() = %v, want positive", regular)
	}
	if bold <= regular {
		t.Errorf("bold 14pt width %v <= regular 11pt width %v", bold, regular)
	}

	// Unsupported runes measure as '?', not as nothing.
	cv.SetFont(bodyFont)
	if cv.StringWidth("日本") != cv.StringWidth("??") {
		t.Error("unsupported runes should measure like '?'")
	}
}

func TestPDFCanvas_DrawImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, opaque := range []bool{true, false} {
		img, err := loadImage(writePNG(t, dir, "img.png", 30, 60, opaque), DefaultImageQuality)
		if err != nil {
			t.Fatalf("loadImage() error = %v", err)
		}

		cv := newPDFCanvas(612, 792, fixedClock())
		if err := drawImagePage(cv, img, 612, 792); err != nil {
			t.Fatalf("DrawImage(%s) error = %v", img.Format, err)
		}
		if got := pageCountOf(t, savePDF(t, cv)); got != 1 {
			t.Errorf("page count = %d, want 1", got)
		}
	}
}

func TestPDFCanvas_DrawImageRejectsGarbage(t *testing.T) {
	t.Parallel()

	cv := newPDFCanvas(612, 792, fixedClock())
	err := cv.DrawImage(&encodedImage{Format: "JPG", Data: []byte("not a jpeg"), Width: 1, Height: 1}, 0, 0, 10, 10)
	if err == nil {
		t.Error("DrawImage() expected error for invalid image data")
	}
}

func TestPDFCanvas_Deterministic(t *testing.T) {
	t.Parallel()

	render := func() []byte {
		cv := newPDFCanvas(612, 792, fixedClock())
		cv.SetFont(headingFont)
		cv.DrawString(50, 742, "Title")
		cv.ShowPage()
		cv.SetFont(bodyFont)
		cv.DrawString(50, 742, "Body")
		return savePDF(t, cv)
	}

	if !bytes.Equal(render(), render()) {
		t.Error("identical drawing produced different bytes")
	}
}
