package doc2pdf

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP with image.Decode
)

// encodedImage is a decoded source re-encoded for embedding.
type encodedImage struct {
	Format string // gofpdf image type: "JPG" or "PNG"
	Data   []byte
	Width  int
	Height int
}

// loadImage decodes path, applies its EXIF orientation and re-encodes it.
// Opaque images become JPEG at the given quality; images with
// transparency become PNG so the alpha channel survives.
func loadImage(path string, quality int) (*encodedImage, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, filepath.Base(path), err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %s: empty image", ErrDecode, filepath.Base(path))
	}

	var buf bytes.Buffer
	format := "JPG"
	if isOpaque(img) {
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	} else {
		format = "PNG"
		err = imaging.Encode(&buf, img, imaging.PNG)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: re-encoding: %v", ErrDecode, filepath.Base(path), err)
	}

	return &encodedImage{
		Format: format,
		Data:   buf.Bytes(),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

// placement is an image rectangle on the page, bottom-left origin.
type placement struct {
	X, Y, W, H float64
}

// fitImage scales an image to the largest size that fits the page while
// keeping its aspect ratio, and centers it.
func fitImage(imgW, imgH int, pageW, pageH float64) placement {
	scale := min(pageW/float64(imgW), pageH/float64(imgH))
	w := float64(imgW) * scale
	h := float64(imgH) * scale
	return placement{
		X: (pageW - w) / 2,
		Y: (pageH - h) / 2,
		W: w,
		H: h,
	}
}

// drawImagePage places img centered on the current page.
func drawImagePage(cv canvas, img *encodedImage, pageW, pageH float64) error {
	p := fitImage(img.Width, img.Height, pageW, pageH)
	return cv.DrawImage(img, p.X, p.Y, p.W, p.H)
}
