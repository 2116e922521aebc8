package outline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/docsense/docsense/internal/docmodel"
)

// The classifier is a decision list: rejection rules run first, in order,
// and the first match wins; only a line surviving every rejection reaches
// level assignment. Numbering patterns are authoritative over the line's
// own style; the bold/uppercase font fallback is last resort.

var (
	reTOCRow       = regexp.MustCompile(`\.{4,}\s*\d+$`)
	reRevisionRow  = regexp.MustCompile(`^\d\.\d\s+[A-Z0-9\s]+$`)
	reNumberedLine = regexp.MustCompile(`^\d+\.\s`)
	rePageFooter   = regexp.MustCompile(`(?i)^Page\s*\d+(\s*of\s*\d+)?$`)
	reDigitsOnly   = regexp.MustCompile(`^\d+$`)

	// The frequency-policy variant rejects more aggressively: shorter
	// leader-dot runs, any x.y-prefixed row, any long numbered line.
	reFreqTOCRow   = regexp.MustCompile(`\.{3,}\s*\d+$`)
	reFreqVersion  = regexp.MustCompile(`^\d\.\d\s`)
	reFreqNumbered = regexp.MustCompile(`^\d+(\.\d+)*\s`)

	reH4 = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+\s`)
	reH3 = regexp.MustCompile(`^\d+\.\d+\.\d+\s`)
	reH2 = regexp.MustCompile(`^\d+\.\d+\s`)
	reH1 = regexp.MustCompile(`^(Appendix\s[A-Z]|\d+)\.\s`)
)

// rejection is one named predicate in the decision list.
type rejection struct {
	name  string
	match func(l docmodel.Line, p FontProfile) bool
}

var rejections = []rejection{
	{"too-short", func(l docmodel.Line, _ FontProfile) bool {
		return len(l.Text) < 3
	}},
	{"toc-row", func(l docmodel.Line, _ FontProfile) bool {
		return reTOCRow.MatchString(l.Text)
	}},
	{"body-text", func(l docmodel.Line, _ FontProfile) bool {
		return l.WordCount > 12 || strings.HasSuffix(l.Text, ",")
	}},
	{"revision-row", func(l docmodel.Line, _ FontProfile) bool {
		return reRevisionRow.MatchString(l.Text)
	}},
	{"numbered-sentence", func(l docmodel.Line, _ FontProfile) bool {
		return reNumberedLine.MatchString(l.Text) && l.WordCount > 8
	}},
	{"decorative-caps", func(l docmodel.Line, p FontProfile) bool {
		return l.Uppercase && l.WordCount > 1 && l.FontSize < p.H2
	}},
	{"page-footer", func(l docmodel.Line, _ FontProfile) bool {
		return rePageFooter.MatchString(l.Text) || reDigitsOnly.MatchString(l.Text)
	}},
	{"form-field", func(l docmodel.Line, p FontProfile) bool {
		return reNumberedLine.MatchString(l.Text) && !l.Bold && l.FontSize < p.H2
	}},
}

// Classify decides whether a cleaned line is a heading and at what level.
// It is a pure function of the line and profile; the profile's policy
// selects which decision list applies.
func Classify(l docmodel.Line, p FontProfile) (docmodel.Level, bool) {
	if p.Policy == PolicyFrequency {
		return classifyBySize(l, p)
	}
	return classifyByRules(l, p)
}

func classifyByRules(l docmodel.Line, p FontProfile) (docmodel.Level, bool) {
	for _, r := range rejections {
		if r.match(l, p) {
			return "", false
		}
	}

	// Numbering patterns, most specific first.
	switch {
	case reH4.MatchString(l.Text):
		return docmodel.H4, true
	case reH3.MatchString(l.Text):
		return docmodel.H3, true
	case reH2.MatchString(l.Text):
		return docmodel.H2, true
	case reH1.MatchString(l.Text):
		return docmodel.H1, true
	}

	// Style fallback for un-numbered headings. A zero threshold means the
	// level was never observed and must not trigger.
	if l.Bold || l.Uppercase {
		switch {
		case p.H1 > 0 && l.FontSize >= p.H1*0.9:
			return docmodel.H1, true
		case p.H2 > 0 && l.FontSize >= p.H2*0.9:
			return docmodel.H2, true
		case p.H3 > 0 && l.FontSize >= p.H3*0.9:
			return docmodel.H3, true
		}
	}

	return "", false
}

// classifyBySize is the frequency-policy variant: the line's size must be
// in the pre-identified heading set and the line must be bold or all caps;
// the level comes straight from the size-to-level map.
func classifyBySize(l docmodel.Line, p FontProfile) (docmodel.Level, bool) {
	if !p.IsHeadingSize(l.FontSize) {
		return "", false
	}
	if !l.Bold && !l.Uppercase {
		return "", false
	}
	if reFreqTOCRow.MatchString(l.Text) || reFreqVersion.MatchString(l.Text) {
		return "", false
	}
	if reFreqNumbered.MatchString(l.Text) && l.WordCount > 8 {
		return "", false
	}
	if l.WordCount > 12 {
		return "", false
	}
	return p.LevelForSize(l.FontSize), true
}

// IsUppercase mirrors the "all cased characters are upper" test: the text
// must contain at least one letter and no lowercase letters.
func IsUppercase(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// IsBoldFont reports whether a PDF font name suggests a bold face.
func IsBoldFont(fontName string) bool {
	f := strings.ToLower(fontName)
	return strings.Contains(f, "bold") ||
		strings.Contains(f, "black") ||
		strings.Contains(f, "heavy")
}
