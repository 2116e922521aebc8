package parser

import (
	"bytes"
	"io"

	"github.com/docsense/docsense/internal/docmodel"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Heading levels map
// directly onto the outline (deeper than four clamps to H4); markdown has
// no pages, so every entry reports page 1.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*docmodel.Extraction, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	title := stripExt(filename)
	acc := newAccumulator(filename)

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			headingText := string(node.Text(src))
			if node.Level == 1 && len(acc.outline) == 0 && headingText != "" {
				title = headingText
			}
			acc.heading(node.Level, headingText, 1)
		default:
			acc.text(extractText(n, src))
		}
	}

	entries, sections := acc.finish()
	return &docmodel.Extraction{
		Document: filename,
		Title:    title,
		Outline:  entries,
		Sections: sections,
	}, nil
}

// extractText gets the text content of a goldmark AST node. A leaf block
// carries its raw source lines; its inline children cover the same
// segments, so a node with lines must not also be walked for inlines.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
			return buf.String()
		}
	}
	// Container blocks and inline nodes: text lives in the children.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
			continue
		}
		buf.WriteString(extractText(c, src))
		if c.Type() == ast.TypeBlock {
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
