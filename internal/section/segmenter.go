// Package section materializes outline entries into contiguous text spans.
// Each section runs from its heading's first line to the line before the
// next heading, or to the end of the document.
package section

import (
	"strings"

	"github.com/docsense/docsense/internal/docmodel"
	"github.com/docsense/docsense/internal/outline"
	"github.com/docsense/docsense/internal/pdftext"
)

// Segmenter converts an ordered outline into sections.
type Segmenter struct {
	CollapseRepeats bool
}

// Extract builds one section per outline entry. A heading whose text can
// no longer be located (line re-tokenization between passes) yields an
// empty body rather than an error; downstream ranking scores it 0.
func (s Segmenter) Extract(doc *pdftext.Document, docName string, entries []docmodel.OutlineEntry) []docmodel.Section {
	sections := make([]docmodel.Section, 0, len(entries))
	for i, entry := range entries {
		var next *docmodel.OutlineEntry
		if i+1 < len(entries) {
			next = &entries[i+1]
		}
		sections = append(sections, docmodel.Section{
			Document: docName,
			Page:     entry.Page,
			Title:    entry.Text,
			Body:     s.extractBody(doc, entry, next),
		})
	}
	return sections
}

func (s Segmenter) extractBody(doc *pdftext.Document, entry docmodel.OutlineEntry, next *docmodel.OutlineEntry) string {
	var parts []string
	found := false

	for _, page := range doc.Pages {
		if page.Number < entry.Page {
			continue
		}
		for _, row := range page.Rows {
			text := outline.Clean(row.Text, s.CollapseRepeats)
			if text == "" {
				continue
			}
			if !found {
				if strings.Contains(text, entry.Text) {
					found = true
					parts = append(parts, text)
				}
				continue
			}
			if next != nil && page.Number == next.Page && strings.Contains(text, next.Text) {
				return strings.Join(parts, " ")
			}
			parts = append(parts, text)
		}
		// Past the next heading's page with no anchor hit on it; stop
		// rather than bleed into the following section.
		if next != nil && page.Number >= next.Page {
			break
		}
	}

	return strings.Join(parts, " ")
}
