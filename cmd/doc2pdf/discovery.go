package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	doc2pdf "github.com/alnah/go-doc2pdf"
	"github.com/alnah/go-doc2pdf/internal/hints"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput   = errors.New("no input specified")
	ErrNoSources = errors.New("no supported files found")
)

// discoverFiles expands args into the source files accepted by keep.
// Directories are walked recursively in lexical order and unaccepted
// files inside them are skipped. A file named explicitly must be
// accepted. The result keeps argument order and has no duplicates.
func discoverFiles(args []string, keep func(string) bool) ([]string, error) {
	if len(args) == 0 {
		return nil, ErrNoInput
	}

	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !keep(arg) {
				return nil, fmt.Errorf("%w: %s%s", doc2pdf.ErrUnsupportedSource, arg,
					hints.ForDecode(doc2pdf.SupportedExtensions()))
			}
			add(arg)
			continue
		}

		found := 0
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !keep(path) {
				return nil
			}
			add(path)
			found++
			return nil
		})
		if err != nil {
			return nil, err
		}
		if found == 0 {
			return nil, fmt.Errorf("%w in %s", ErrNoSources, arg)
		}
	}

	return files, nil
}

// isConvertible accepts images and text documents.
func isConvertible(path string) bool {
	t := doc2pdf.DetectSource(path)
	return t == doc2pdf.SourceImage || t.IsDocument()
}

// isEPUB accepts EPUB books only.
func isEPUB(path string) bool {
	return doc2pdf.DetectSource(path) == doc2pdf.SourceEPUB
}
