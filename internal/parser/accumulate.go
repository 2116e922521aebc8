package parser

import (
	"strings"

	"github.com/docsense/docsense/internal/docmodel"
)

// accumulator assembles an outline and sections from a linear stream of
// headings and body text, for formats that expose explicit structure.
// The heading line itself opens its section's body, matching what the
// PDF segmenter produces.
type accumulator struct {
	document string
	outline  []docmodel.OutlineEntry
	sections []docmodel.Section
	open     bool
	current  docmodel.Section
	body     []string
}

func newAccumulator(document string) *accumulator {
	return &accumulator{
		document: document,
		outline:  []docmodel.OutlineEntry{},
		sections: []docmodel.Section{},
	}
}

func (a *accumulator) heading(depth int, text string, page int) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	a.flush()
	level := docmodel.LevelForDepth(depth)
	a.outline = append(a.outline, docmodel.OutlineEntry{Level: level, Text: text, Page: page})
	a.open = true
	a.current = docmodel.Section{Document: a.document, Page: page, Title: text}
	a.body = append(a.body[:0], text)
}

func (a *accumulator) text(t string) {
	t = strings.TrimSpace(t)
	if t == "" || !a.open {
		// Preamble text before the first heading belongs to no section.
		return
	}
	a.body = append(a.body, strings.Join(strings.Fields(t), " "))
}

func (a *accumulator) flush() {
	if !a.open {
		return
	}
	a.current.Body = strings.Join(a.body, " ")
	a.sections = append(a.sections, a.current)
	a.open = false
}

func (a *accumulator) finish() ([]docmodel.OutlineEntry, []docmodel.Section) {
	a.flush()
	return a.outline, a.sections
}
