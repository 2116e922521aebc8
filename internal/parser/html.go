package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/docsense/docsense/internal/docmodel"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files; h1-h6 tags drive the outline.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*docmodel.Extraction, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := stripExt(filename)
	if t := findTitle(doc); t != "" {
		title = t
	}

	acc := newAccumulator(filename)

	// Page headers carry chrome text but often also the document's top
	// heading, so they are scanned for heading tags only.
	var headingsOnly func(*html.Node)
	headingsOnly = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				acc.heading(level, textContent(n), 1)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			headingsOnly(c)
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				acc.heading(level, textContent(n), 1)
				return // Heading text already extracted; don't recurse.
			}
			switch n.Data {
			case "script", "style", "nav", "footer":
				return
			case "header":
				headingsOnly(n)
				return
			case "p", "li", "td", "blockquote":
				acc.text(textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	entries, sections := acc.finish()
	return &docmodel.Extraction{
		Document: filename,
		Title:    title,
		Outline:  entries,
		Sections: sections,
	}, nil
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
