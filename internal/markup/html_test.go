package markup

// Notes:
// - Blocks is tested through Parse and ExtractBlocks; the traversal has no
//   other entry point worth isolating
// - html.Parse never fails on string input, so Parse error paths are not covered

import (
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestExtractBlocks
// ---------------------------------------------------------------------------

func TestExtractBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "paragraphs and headings in order",
			input: `<h1>Title</h1><p>First.</p><h2>Part</h2><p>Second.</p>`,
			want: []Block{
				{Text: "Title", Heading: true, Level: 1},
				{Text: "First."},
				{Text: "Part", Heading: true, Level: 2},
				{Text: "Second."},
			},
		},
		{
			name: "full xhtml document",
			input: `<?xml version="1.0" encoding="utf-8"?>
<html xmlns="http://www.w3.org/1999/xhtml"><head><title>Ignored</title></head>
<body><h3>Chapter</h3><p>Body text.</p></body></html>`,
			want: []Block{
				{Text: "Chapter", Heading: true, Level: 3},
				{Text: "Body text."},
			},
		},
		{
			name:  "whitespace collapsed",
			input: "<p>  one\n\t two  <em>three</em>\n</p>",
			want:  []Block{{Text: "one two three"}},
		},
		{
			name:  "line break separates words",
			input: `<p>line<br/>break</p>`,
			want:  []Block{{Text: "line break"}},
		},
		{
			name:  "whitespace only paragraph kept empty",
			input: "<p>   </p><p>x</p>",
			want:  []Block{{Text: ""}, {Text: "x"}},
		},
		{
			name:  "script and style ignored",
			input: `<style>p{}</style><p>a<script>var x;</script>b</p>`,
			want:  []Block{{Text: "ab"}},
		},
		{
			name:  "text outside blocks dropped",
			input: `<div>loose</div><ul><li>item</li></ul><p>kept</p>`,
			want:  []Block{{Text: "kept"}},
		},
		{
			name:  "all heading levels",
			input: `<h4>4</h4><h5>5</h5><h6>6</h6>`,
			want: []Block{
				{Text: "4", Heading: true, Level: 4},
				{Text: "5", Heading: true, Level: 5},
				{Text: "6", Heading: true, Level: 6},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractBlocks(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ExtractBlocks() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractBlocks() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFirstHeading
// ---------------------------------------------------------------------------

func TestFirstHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"h1 wins over earlier h2", `<h2>Second</h2><h1>First</h1>`, "First"},
		{"h2 when no h1", `<h3>Third</h3><h2>Second</h2>`, "Second"},
		{"h3 only", `<p>x</p><h3> Deep </h3>`, "Deep"},
		{"h4 ignored", `<h4>Nope</h4>`, ""},
		{"none", `<p>text</p>`, ""},
		{"empty h1 falls through", `<h1> </h1><h2>Two</h2>`, "Two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := FirstHeading(doc); got != tt.want {
				t.Errorf("FirstHeading() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestText
// ---------------------------------------------------------------------------

func TestText(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<html><head><title>T</title></head><body><h1>Head</h1><p>Para</p></body></html>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := strings.TrimSpace(Text(Body(doc)))
	if got != "HeadPara" {
		t.Errorf("Text(Body()) = %q, want %q", got, "HeadPara")
	}
	if !strings.Contains(Text(doc), "T") {
		t.Error("Text(doc) should include head text")
	}
}

func TestBody_Fragment(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<p>frag</p>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if Body(doc) != doc {
		t.Error("Body() of a fragment should return the container")
	}
}
