package markup

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestMarkdownConverter_ToHTML
// ---------------------------------------------------------------------------

func TestMarkdownConverter_ToHTML(t *testing.T) {
	t.Parallel()

	c := NewMarkdownConverter()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{"heading", "# Hello", []string{"<h1>Hello</h1>"}},
		{"paragraph", "Some text.", []string{"<p>Some text.</p>"}},
		{"strikethrough", "~~gone~~", []string{"<del>gone</del>"}},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", []string{"<table>", "<td>1</td>"}},
		{"raw html escaped", "<script>x</script>", []string{"<!-- raw HTML omitted -->"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ToHTML(context.Background(), []byte(tt.input))
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() = %q, want substring %q", got, want)
				}
			}
		})
	}
}

func TestMarkdownConverter_ToHTML_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMarkdownConverter().ToHTML(ctx, []byte("# x"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestMarkdownConverter_MarkdownBlocks
// ---------------------------------------------------------------------------

func TestMarkdownConverter_MarkdownBlocks(t *testing.T) {
	t.Parallel()

	input := "# Title\n\nFirst *para*.\n\n## Sub\n\n- list item\n\n```\ncode\n```\n\nLast."
	got, err := NewMarkdownConverter().MarkdownBlocks(context.Background(), []byte(input))
	if err != nil {
		t.Fatalf("MarkdownBlocks() error = %v", err)
	}

	want := []Block{
		{Text: "Title", Heading: true, Level: 1},
		{Text: "First para."},
		{Text: "Sub", Heading: true, Level: 2},
		{Text: "Last."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MarkdownBlocks() = %#v, want %#v", got, want)
	}
}
