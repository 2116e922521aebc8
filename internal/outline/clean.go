package outline

import "strings"

// Clean normalizes an extracted line or title candidate: optionally
// collapses runs of immediately repeated characters, then collapses
// whitespace runs to single spaces and trims.
//
// The repeat collapse defends against extraction artifacts that duplicate
// every glyph ("RRFFPP" -> "RFP"). It is lossy for genuinely doubled
// letters ("bookkeeper" -> "bokeper"), which is why it can be switched off.
func Clean(text string, collapseRepeats bool) string {
	if collapseRepeats {
		text = collapseRuns(text)
	}
	return strings.Join(strings.Fields(text), " ")
}

// collapseRuns keeps one occurrence of each run of identical runes.
func collapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	for _, r := range s {
		if r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
