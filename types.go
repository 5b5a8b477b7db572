package doc2pdf

import (
	"fmt"
	"strings"
)

// PageSize names a paper format.
type PageSize string

// Supported page sizes.
const (
	PageSizeLetter  PageSize = "letter"
	PageSizeA4      PageSize = "a4"
	PageSizeLegal   PageSize = "legal"
	PageSizeTabloid PageSize = "tabloid"
)

// pageDimensions holds portrait width and height in points (1/72 inch).
var pageDimensions = map[PageSize][2]float64{
	PageSizeLetter:  {612, 792},
	PageSizeA4:      {595.2755905511812, 841.8897637795277},
	PageSizeLegal:   {612, 1008},
	PageSizeTabloid: {792, 1224},
}

// PageSizes lists the accepted page size names.
func PageSizes() []string {
	return []string{
		string(PageSizeLetter),
		string(PageSizeA4),
		string(PageSizeLegal),
		string(PageSizeTabloid),
	}
}

// ParsePageSize parses a case-insensitive page size name.
// The empty string means Letter.
func ParsePageSize(s string) (PageSize, error) {
	if strings.TrimSpace(s) == "" {
		return PageSizeLetter, nil
	}
	size := PageSize(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := pageDimensions[size]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPageSize, s)
	}
	return size, nil
}

// Orientation selects portrait or landscape pages.
type Orientation string

// Orientation constants.
const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// ParseOrientation parses a case-insensitive orientation.
// The empty string means portrait.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(OrientationPortrait):
		return OrientationPortrait, nil
	case string(OrientationLandscape):
		return OrientationLandscape, nil
	}
	return "", fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, s)
}

// Layout defaults in points.
const (
	DefaultMargin       = 50.0
	DefaultLineHeight   = 14.0
	DefaultImageQuality = 95
	DefaultCombinedName = "combined_document"

	MaxMargin     = 216.0
	MaxLineHeight = 144.0
)

// RenderConfig is the rendering snapshot carried by every job.
// Zero numeric fields and empty names fall back to their defaults.
type RenderConfig struct {
	PageSize      PageSize
	Orientation   Orientation
	OutputDir     string // empty = next to the source
	Combine       bool
	CombinedName  string  // combined output base name
	NamingPattern string  // {name} and {num} placeholders, empty = source name
	Margin        float64 // points
	LineHeight    float64 // points
	ImageQuality  int     // JPEG quality 1-100
}

// DefaultRenderConfig returns a config with every default filled in.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		PageSize:     PageSizeLetter,
		Orientation:  OrientationPortrait,
		CombinedName: DefaultCombinedName,
		Margin:       DefaultMargin,
		LineHeight:   DefaultLineHeight,
		ImageQuality: DefaultImageQuality,
	}
}

// Validate checks that c can be rendered.
// Does not mutate; zero values are accepted as "use default".
func (c RenderConfig) Validate() error {
	if _, err := ParsePageSize(string(c.PageSize)); err != nil {
		return err
	}
	if _, err := ParseOrientation(string(c.Orientation)); err != nil {
		return err
	}
	if c.Margin < 0 || c.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between 0 and %.0f)", ErrInvalidMargin, c.Margin, MaxMargin)
	}
	if c.LineHeight < 0 || c.LineHeight > MaxLineHeight {
		return fmt.Errorf("%w: %.2f (must be between 0 and %.0f)", ErrInvalidLineHeight, c.LineHeight, MaxLineHeight)
	}
	if c.ImageQuality < 0 || c.ImageQuality > 100 {
		return fmt.Errorf("%w: %d (must be between 1 and 100)", ErrInvalidQuality, c.ImageQuality)
	}
	if strings.ContainsAny(c.NamingPattern, `/\`+"\x00") {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidNamingPattern, c.NamingPattern)
	}
	if strings.ContainsAny(c.CombinedName, `/\`+"\x00") {
		return fmt.Errorf("%w: combined name %q contains a path separator", ErrInvalidNamingPattern, c.CombinedName)
	}
	return nil
}

// withDefaults returns a copy with zero values replaced by defaults.
// Callers must Validate first; unknown names are left as they are.
func (c RenderConfig) withDefaults() RenderConfig {
	if size, err := ParsePageSize(string(c.PageSize)); err == nil {
		c.PageSize = size
	}
	if o, err := ParseOrientation(string(c.Orientation)); err == nil {
		c.Orientation = o
	}
	if c.CombinedName == "" {
		c.CombinedName = DefaultCombinedName
	}
	if c.Margin == 0 {
		c.Margin = DefaultMargin
	}
	if c.LineHeight == 0 {
		c.LineHeight = DefaultLineHeight
	}
	if c.ImageQuality == 0 {
		c.ImageQuality = DefaultImageQuality
	}
	return c
}

// PageDimensions returns the page width and height in points, with
// landscape swapping the two. Unknown sizes report Letter.
func (c RenderConfig) PageDimensions() (width, height float64) {
	dims, ok := pageDimensions[c.PageSize]
	if !ok {
		dims = pageDimensions[PageSizeLetter]
	}
	if c.Orientation == OrientationLandscape {
		return dims[1], dims[0]
	}
	return dims[0], dims[1]
}
