package outline

import (
	"strconv"
	"strings"

	"github.com/docsense/docsense/internal/docmodel"
	"github.com/docsense/docsense/internal/pdftext"
)

// Builder drives the heading classifier across a whole document and
// assembles the ordered outline.
type Builder struct {
	Policy          Policy
	CollapseRepeats bool
}

// Build extracts the title and outline from a read PDF. An empty document
// yields an empty outline; Build itself never fails.
func (b Builder) Build(doc *pdftext.Document) docmodel.OutlineDocument {
	if len(doc.Pages) == 0 {
		return docmodel.OutlineDocument{Title: "Empty Document", Outline: []docmodel.OutlineEntry{}}
	}

	profile := BuildProfile(doc, b.Policy)
	title := ExtractTitle(doc, profile, b.CollapseRepeats)

	outline := []docmodel.OutlineEntry{}
	seen := make(map[string]struct{})

	for _, page := range doc.Pages {
		for _, row := range page.Rows {
			line := b.MakeLine(row, page.Number)
			lvl, ok := Classify(line, profile)
			if !ok {
				continue
			}
			// Running headers repeat the same text on the same page;
			// only the first occurrence survives. The same text on a
			// different page is a distinct entry.
			key := strings.ToLower(line.Text) + "\x00" + strconv.Itoa(page.Number)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			outline = append(outline, docmodel.OutlineEntry{
				Level: lvl,
				Text:  line.Text,
				Page:  page.Number,
			})
		}
	}

	return docmodel.OutlineDocument{Title: title, Outline: outline}
}

// MakeLine turns a raw extracted row into the cleaned classifier input.
func (b Builder) MakeLine(row pdftext.Row, page int) docmodel.Line {
	text := Clean(row.Text, b.CollapseRepeats)
	return docmodel.Line{
		Text:      text,
		FontSize:  row.FontSize,
		FontName:  row.FontName,
		Bold:      IsBoldFont(row.FontName),
		Uppercase: IsUppercase(text),
		WordCount: len(strings.Fields(text)),
		Page:      page,
	}
}
