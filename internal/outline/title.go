package outline

import (
	"math"
	"sort"
	"strings"

	"github.com/docsense/docsense/internal/pdftext"
)

// UntitledFallback is used when no usable title can be found on the first
// page. Title extraction never fails.
const UntitledFallback = "Untitled Document"

// titleMaxRows caps how many top rows of max-size text are merged into the
// title, so a large-print cover page cannot swallow half the page.
const titleMaxRows = 3

// ExtractTitle pulls the document title off the first page: the words
// whose size matches the document's maximum relevant size, grouped by row
// and merged top to bottom.
func ExtractTitle(doc *pdftext.Document, profile FontProfile, collapseRepeats bool) string {
	if len(doc.Pages) == 0 {
		return UntitledFallback
	}
	maxSize := profile.TitleSize()
	if maxSize <= 0 {
		return UntitledFallback
	}

	first := doc.Pages[0]
	rows := make(map[int][]pdftext.Word)
	for _, w := range first.Words {
		if sameSize(w.FontSize, maxSize) {
			key := int(math.Round(w.Y))
			rows[key] = append(rows[key], w)
		}
	}
	if len(rows) == 0 {
		return UntitledFallback
	}

	keys := make([]int, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	// Top of the page first (PDF Y grows upward).
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	if len(keys) > titleMaxRows {
		keys = keys[:titleMaxRows]
	}

	var parts []string
	for _, k := range keys {
		ws := rows[k]
		sort.Slice(ws, func(i, j int) bool { return ws[i].X < ws[j].X })
		for _, w := range ws {
			parts = append(parts, w.Text)
		}
	}

	title := Clean(strings.Join(parts, " "), collapseRepeats)
	if len(title) < 5 {
		return UntitledFallback
	}
	return title
}
