package doc2pdf

import (
	"path/filepath"
	"testing"
)

func TestOutputFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		index   int
		pattern string
		want    string
	}{
		{"default uses base name", "/books/novel.epub", 1, "", "novel.pdf"},
		{"image default", "scan.JPG", 4, "", "scan.pdf"},
		{"name and num", "/in/chapter.epub", 3, "{name}_{num}", "chapter_3.pdf"},
		{"pdf extension kept", "a.png", 2, "{num}-{name}.pdf", "2-a.pdf"},
		{"uppercase extension kept", "a.png", 2, "{name}.PDF", "a.PDF"},
		{"repeated placeholders", "x.md", 7, "{name}{name}{num}", "xx7.pdf"},
		{"literal pattern", "x.md", 1, "report", "report.pdf"},
		{"dotted base name", "v1.2.notes.md", 1, "", "v1.2.notes.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := OutputFileName(tt.source, tt.index, tt.pattern); got != tt.want {
				t.Errorf("OutputFileName(%q, %d, %q) = %q, want %q", tt.source, tt.index, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestCombinedFileName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":           "combined_document.pdf",
		"album":      "album.pdf",
		"album.pdf":  "album.pdf",
		"2024.04.01": "2024.04.01.pdf",
	}
	for in, want := range tests {
		if got := CombinedFileName(in); got != want {
			t.Errorf("CombinedFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJSONFileName(t *testing.T) {
	t.Parallel()

	if got := JSONFileName("/lib/My Book.epub"); got != "My Book.json" {
		t.Errorf("JSONFileName() = %q, want %q", got, "My Book.json")
	}
}

func TestOutputDir(t *testing.T) {
	t.Parallel()

	source := filepath.Join("in", "photos", "a.png")

	if got := outputDir(RenderConfig{}, source); got != filepath.Join("in", "photos") {
		t.Errorf("outputDir() without OutputDir = %q, want source directory", got)
	}
	if got := outputDir(RenderConfig{OutputDir: "out"}, source); got != "out" {
		t.Errorf("outputDir() = %q, want %q", got, "out")
	}
}
