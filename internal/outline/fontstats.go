package outline

import (
	"math"
	"sort"

	"github.com/docsense/docsense/internal/docmodel"
	"github.com/docsense/docsense/internal/pdftext"
)

// Policy selects how document-wide font statistics translate into heading
// thresholds. The two strategies are deliberately kept separate: the
// classifier consumes exactly one, never a blend.
type Policy string

const (
	// PolicyRank takes the four largest distinct sizes seen anywhere as
	// the H1..H4 thresholds. Biased toward outlier large text such as a
	// title. This is the default, and the policy the rejection rules and
	// style fallback are calibrated against.
	PolicyRank Policy = "rank"

	// PolicyFrequency treats the modal size as body text; heading sizes
	// are sizes strictly greater than body+1, ranked descending, with a
	// direct size-to-level map instead of threshold comparisons.
	PolicyFrequency Policy = "frequency"
)

// sizeTolerance absorbs floating-point jitter between characters that are
// nominally the same visual size.
const sizeTolerance = 0.1

// FontProfile holds the heading-size thresholds for one document.
// Thresholds of 0 mean "never triggers". Immutable after construction.
type FontProfile struct {
	Policy Policy

	// Rank-based thresholds, descending. Zero when fewer distinct sizes
	// exist than levels.
	H1, H2, H3, H4 float64

	// Frequency-based statistics.
	BodySize     float64
	HeadingSizes []float64              // descending, sizes > body+1
	levels       map[int]docmodel.Level // rounded size -> level
}

// BuildProfile computes a document's font profile from every extracted
// word, under the given policy.
func BuildProfile(doc *pdftext.Document, policy Policy) FontProfile {
	switch policy {
	case PolicyFrequency:
		return buildFrequencyProfile(doc)
	default:
		return buildRankProfile(doc)
	}
}

func buildRankProfile(doc *pdftext.Document) FontProfile {
	seen := make(map[float64]struct{})
	for _, page := range doc.Pages {
		for _, w := range page.Words {
			seen[w.FontSize] = struct{}{}
		}
	}

	sizes := make([]float64, 0, len(seen))
	for s := range seen {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	p := FontProfile{Policy: PolicyRank}
	thresholds := []*float64{&p.H1, &p.H2, &p.H3, &p.H4}
	for i, t := range thresholds {
		if i < len(sizes) {
			*t = sizes[i]
		}
	}
	return p
}

func buildFrequencyProfile(doc *pdftext.Document) FontProfile {
	counts := make(map[int]int)
	for _, page := range doc.Pages {
		for _, w := range page.Words {
			counts[int(math.Round(w.FontSize))]++
		}
	}

	p := FontProfile{Policy: PolicyFrequency, levels: make(map[int]docmodel.Level)}
	if len(counts) == 0 {
		return p
	}

	// The most frequent size is almost always the body text. Ties go to
	// the smaller size so oversized decorations never win.
	body, best := 0, -1
	sizes := make([]int, 0, len(counts))
	for s := range counts {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	for _, s := range sizes {
		if counts[s] > best {
			body, best = s, counts[s]
		}
	}
	p.BodySize = float64(body)

	// The +1 buffer keeps minor font variations out of the heading set.
	var heading []int
	for _, s := range sizes {
		if s > body+1 {
			heading = append(heading, s)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(heading)))
	for i, s := range heading {
		p.HeadingSizes = append(p.HeadingSizes, float64(s))
		p.levels[s] = docmodel.LevelForDepth(i + 1)
	}
	return p
}

// TitleSize is the maximum font size relevant for title extraction.
func (p FontProfile) TitleSize() float64 {
	if p.Policy == PolicyFrequency {
		if len(p.HeadingSizes) == 0 {
			return 0
		}
		return p.HeadingSizes[0]
	}
	return p.H1
}

// IsHeadingSize reports whether a size belongs to the frequency profile's
// heading set.
func (p FontProfile) IsHeadingSize(size float64) bool {
	_, ok := p.levels[int(math.Round(size))]
	return ok
}

// LevelForSize maps a size to its level under the frequency policy.
// Sizes outside the heading set fall back to H4.
func (p FontProfile) LevelForSize(size float64) docmodel.Level {
	if lvl, ok := p.levels[int(math.Round(size))]; ok {
		return lvl
	}
	return docmodel.H4
}

// sameSize compares two sizes under the jitter tolerance.
func sameSize(a, b float64) bool {
	return math.Abs(a-b) < sizeTolerance
}
