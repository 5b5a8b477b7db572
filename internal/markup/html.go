package markup

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Block is one paragraph or heading in document order.
type Block struct {
	Text    string // whitespace collapsed to single spaces
	Heading bool
	Level   int // 1-6 for headings, 0 for paragraphs
}

// Parse parses HTML content, handling both full documents and fragments.
// Fragments are parsed in a body context and wrapped in a document node.
func Parse(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") ||
		strings.HasPrefix(trimmed, "<html") ||
		strings.HasPrefix(trimmed, "<?xml") {
		return html.Parse(strings.NewReader(content))
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// ExtractBlocks parses r and returns its paragraphs and headings.
func ExtractBlocks(r io.Reader) ([]Block, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	return Blocks(doc), nil
}

// Blocks walks the tree in document order. A matched element is not
// descended into, so nested matches never produce duplicate text.
func Blocks(n *html.Node) []Block {
	var blocks []Block
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipElement(n) {
				return
			}
			if level := headingLevel(n); level > 0 {
				blocks = append(blocks, Block{Text: collapse(Text(n)), Heading: true, Level: level})
				return
			}
			if n.DataAtom == atom.P {
				blocks = append(blocks, Block{Text: collapse(Text(n))})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return blocks
}

// Text returns the concatenated text of n and its descendants. Line
// breaks (br) become newlines; script and style content is ignored.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			return
		case html.ElementNode:
			if skipElement(n) {
				return
			}
			if n.DataAtom == atom.Br {
				sb.WriteByte('\n')
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// FirstHeading returns the text of the first h1 in the document, else the
// first h2, else the first h3. It returns "" when none has text.
func FirstHeading(n *html.Node) string {
	for _, a := range []atom.Atom{atom.H1, atom.H2, atom.H3} {
		if el := findFirst(n, a); el != nil {
			if s := collapse(Text(el)); s != "" {
				return s
			}
		}
	}
	return ""
}

// Body returns the body element, or n itself when there is none.
func Body(n *html.Node) *html.Node {
	if b := findFirst(n, atom.Body); b != nil {
		return b
	}
	return n
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

func skipElement(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Template, atom.Noscript:
		return true
	}
	return false
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
