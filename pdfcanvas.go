package doc2pdf

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const pdfCreator = "go-doc2pdf"

// pdfCanvas draws on a gofpdf document. gofpdf puts the origin at the top
// left, so y coordinates are flipped on the way in.
type pdfCanvas struct {
	pdf     *gofpdf.Fpdf
	width   float64
	height  float64
	font    fontSpec
	pending bool // a page must be added before the next draw
	images  int
}

func newPDFCanvas(width, height float64, created time.Time) canvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	pdf.SetCatalogSort(true)
	pdf.SetCreator(pdfCreator, false)
	pdf.SetFont(bodyFont.Family, bodyFont.Style, bodyFont.Size)

	return &pdfCanvas{
		pdf:     pdf,
		width:   width,
		height:  height,
		font:    bodyFont,
		pending: true,
	}
}

func (c *pdfCanvas) SetFont(f fontSpec) {
	c.font = f
	c.pdf.SetFont(f.Family, f.Style, f.Size)
}

func (c *pdfCanvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(encodeWinAnsi(s))
}

func (c *pdfCanvas) DrawString(x, y float64, s string) {
	c.ensurePage()
	c.pdf.Text(x, c.height-y, encodeWinAnsi(s))
}

func (c *pdfCanvas) DrawImage(img *encodedImage, x, y, w, h float64) error {
	c.ensurePage()

	c.images++
	name := fmt.Sprintf("img%d", c.images)
	opts := gofpdf.ImageOptions{ImageType: img.Format}

	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if err := c.pdf.Error(); err != nil {
		return err
	}
	c.pdf.ImageOptions(name, x, c.height-y-h, w, h, false, opts, 0, "")
	return c.pdf.Error()
}

func (c *pdfCanvas) ShowPage() {
	c.pending = true
}

func (c *pdfCanvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *pdfCanvas) Save(w io.Writer) error {
	if c.pdf.PageCount() == 0 {
		c.pdf.AddPage()
	}
	return c.pdf.Output(w)
}

func (c *pdfCanvas) ensurePage() {
	if !c.pending {
		return
	}
	c.pdf.AddPage()
	c.pdf.SetFont(c.font.Family, c.font.Style, c.font.Size)
	c.pending = false
}
