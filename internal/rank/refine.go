package rank

import (
	"strings"

	"github.com/docsense/docsense/internal/docmodel"
)

// Linguist is the slice of the NLP engine the refiner needs.
type Linguist interface {
	Sentences(text string) []string
	Lemmas(text string) []string
}

// Refiner selects, from the top-ranked sections, the sentences whose lemma
// overlap with the query clears a threshold.
type Refiner struct {
	Lang Linguist

	// Top is how many ranked sections are considered (default 5). The
	// window is positional: an empty-bodied section inside it still
	// consumes a slot.
	Top int

	// Threshold is the minimum Jaccard similarity between a sentence's
	// lemma set and the query's (default 0.05).
	Threshold float64

	// MaxChars caps the cumulative length of retained sentences per
	// section; retention is a greedy prefix cutoff, not a best-sentences
	// selection (default 1000).
	MaxChars int
}

// Refine walks the top-ranked sections in order and keeps, per section,
// the sentences relevant to the query. Sections yielding no sentences are
// omitted entirely.
func (r Refiner) Refine(scored []Scored, query docmodel.Query) []docmodel.RefinedSection {
	top := r.Top
	if top <= 0 {
		top = 5
	}
	threshold := r.Threshold
	if threshold <= 0 {
		threshold = 0.05
	}
	maxChars := r.MaxChars
	if maxChars <= 0 {
		maxChars = 1000
	}

	queryLemmas := lemmaSet(r.Lang.Lemmas(query.String()))

	refined := []docmodel.RefinedSection{}
	for i, s := range scored {
		if i >= top {
			break
		}
		if s.Section.Body == "" {
			continue
		}

		var kept []string
		total := 0
		for _, sent := range r.Lang.Sentences(s.Section.Body) {
			sentLemmas := lemmaSet(r.Lang.Lemmas(sent))
			if jaccard(queryLemmas, sentLemmas) > threshold {
				kept = append(kept, sent)
				total += len(sent)
			}
			if total > maxChars {
				break
			}
		}
		if len(kept) == 0 {
			continue
		}

		refined = append(refined, docmodel.RefinedSection{
			Document:    s.Section.Document,
			Page:        s.Section.Page,
			RefinedText: strings.Join(kept, " "),
		})
	}
	return refined
}

func lemmaSet(lemmas []string) map[string]struct{} {
	set := make(map[string]struct{}, len(lemmas))
	for _, l := range lemmas {
		set[l] = struct{}{}
	}
	return set
}

// jaccard is intersection over union; two empty sets have no similarity.
func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
