// Package markup turns HTML, XHTML and Markdown sources into the flat
// sequence of text blocks the renderer lays out.
//
// Only paragraphs (p) and headings (h1-h6) produce blocks. Lists, tables,
// code and images carry no block of their own; text they hold outside a
// paragraph is dropped.
package markup
