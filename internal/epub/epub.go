// Package epub reads the parts of an EPUB container needed for text
// extraction: package metadata and the content documents in reading order.
package epub

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
)

// Sentinel errors for EPUB reading.
var (
	ErrNotEPUB       = errors.New("not an EPUB container")
	ErrNoRootfile    = errors.New("container has no package document")
	ErrMissingItem   = errors.New("manifest item missing from archive")
	ErrEntryTooLarge = errors.New("archive entry exceeds maximum size")
)

// MaxEntrySize caps the decompressed size of any single archive entry.
var MaxEntrySize int64 = 64 << 20

const containerPath = "META-INF/container.xml"

// Book is the decoded view of an EPUB file.
type Book struct {
	Title     string
	Creator   string
	Language  string
	Documents []Document // reading order
}

// Document is one XHTML content document.
type Document struct {
	ID        string
	Href      string // path inside the archive
	MediaType string
	Content   []byte
}

type containerXML struct {
	Rootfiles []struct {
		FullPath  string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"rootfiles>rootfile"`
}

type packageXML struct {
	Metadata struct {
		Titles    []string `xml:"title"`
		Creators  []string `xml:"creator"`
		Languages []string `xml:"language"`
	} `xml:"metadata"`
	Manifest []manifestItem `xml:"manifest>item"`
	Spine    []struct {
		IDRef string `xml:"idref,attr"`
	} `xml:"spine>itemref"`
}

type manifestItem struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
}

// Open reads the EPUB at path. The archive is closed before returning.
func Open(path string) (*Book, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotEPUB, err)
	}
	defer func() { _ = zr.Close() }()

	return readArchive(&zr.Reader)
}

// Read decodes an EPUB from r, which holds size bytes.
func Read(r io.ReaderAt, size int64) (*Book, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotEPUB, err)
	}
	return readArchive(zr)
}

func readArchive(zr *zip.Reader) (*Book, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	containerFile, ok := files[containerPath]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrNotEPUB, containerPath)
	}

	var container containerXML
	if err := decodeXML(containerFile, &container); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", containerPath, err)
	}

	opfPath := ""
	for _, rf := range container.Rootfiles {
		if rf.FullPath != "" {
			opfPath = rf.FullPath
			break
		}
	}
	if opfPath == "" {
		return nil, ErrNoRootfile
	}

	opfFile, ok := files[opfPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRootfile, opfPath)
	}

	var pkg packageXML
	if err := decodeXML(opfFile, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", opfPath, err)
	}

	book := &Book{
		Title:    first(pkg.Metadata.Titles),
		Creator:  first(pkg.Metadata.Creators),
		Language: first(pkg.Metadata.Languages),
	}

	baseDir := path.Dir(opfPath)
	for _, item := range readingOrder(&pkg) {
		name, err := resolveHref(baseDir, item.Href)
		if err != nil {
			return nil, fmt.Errorf("manifest item %q: %w", item.ID, err)
		}
		f, ok := files[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingItem, name)
		}
		content, err := readEntry(f)
		if err != nil {
			return nil, err
		}
		book.Documents = append(book.Documents, Document{
			ID:        item.ID,
			Href:      name,
			MediaType: item.MediaType,
			Content:   content,
		})
	}

	return book, nil
}

// readingOrder returns content documents in spine order. Books without a
// usable spine fall back to manifest order.
func readingOrder(pkg *packageXML) []manifestItem {
	byID := make(map[string]manifestItem, len(pkg.Manifest))
	for _, item := range pkg.Manifest {
		byID[item.ID] = item
	}

	var items []manifestItem
	seen := make(map[string]bool)
	for _, ref := range pkg.Spine {
		item, ok := byID[ref.IDRef]
		if !ok || seen[item.ID] || !IsContentDocument(item.MediaType) {
			continue
		}
		seen[item.ID] = true
		items = append(items, item)
	}
	if len(items) > 0 {
		return items
	}

	for _, item := range pkg.Manifest {
		if IsContentDocument(item.MediaType) {
			items = append(items, item)
		}
	}
	return items
}

// IsContentDocument reports whether a manifest media type holds XHTML text.
func IsContentDocument(mediaType string) bool {
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "application/xhtml+xml", "text/html":
		return true
	}
	return false
}

// resolveHref turns a manifest href into an archive entry name.
func resolveHref(baseDir, href string) (string, error) {
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}
	unescaped, err := url.PathUnescape(href)
	if err != nil {
		return "", err
	}
	return path.Join(baseDir, unescaped), nil
}

func decodeXML(f *zip.File, v any) error {
	data, err := readEntry(f)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}

func readEntry(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > uint64(MaxEntrySize) {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrEntryTooLarge, f.Name, f.UncompressedSize64)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, MaxEntrySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name, err)
	}
	if int64(len(data)) > MaxEntrySize {
		return nil, fmt.Errorf("%w: %s", ErrEntryTooLarge, f.Name)
	}
	return data, nil
}

func first(values []string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
