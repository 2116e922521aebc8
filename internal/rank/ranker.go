// Package rank scores extracted sections against a persona/task query and
// refines the best of them down to individual sentences. Ranking always
// runs over the union of sections from every input document.
package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/docsense/docsense/internal/docmodel"
	"github.com/james-bowman/nlp"
	"github.com/james-bowman/nlp/measures/pairwise"
	"gonum.org/v1/gonum/mat"
)

// DefaultMaxVocabulary bounds the term space; an engineering limit, not a
// relevance tweak.
const DefaultMaxVocabulary = 5000

// Scored pairs a section with its query similarity. The section body is
// retained here for the refinement stage and dropped from external output.
type Scored struct {
	Section docmodel.Section
	Score   float64
}

// Ranker builds a TF-IDF vector space over all section bodies plus the
// query and orders sections by cosine similarity to the query.
type Ranker struct {
	// MaxVocabulary caps the number of distinct terms kept; zero means
	// DefaultMaxVocabulary.
	MaxVocabulary int
}

// Rank produces a total order over sections: descending similarity, ties
// broken by input order so repeated runs are identical. Empty section
// bodies (and any degenerate vectorization) score exactly 0.
func (r Ranker) Rank(sections []docmodel.Section, query docmodel.Query) []Scored {
	if len(sections) == 0 {
		return nil
	}

	scored := make([]Scored, len(sections))
	for i, s := range sections {
		scored[i] = Scored{Section: s}
	}

	corpus := make([]string, 0, len(sections)+1)
	for _, s := range sections {
		corpus = append(corpus, normalize(s.Body))
	}
	corpus = append(corpus, normalize(query.String()))
	corpus = capVocabulary(corpus, r.maxVocabulary())

	vectoriser := nlp.NewCountVectoriser()
	transformer := nlp.NewTfidfTransformer()
	pipeline := nlp.NewPipeline(vectoriser, transformer)

	matrix, err := pipeline.FitTransform(corpus...)
	if err == nil {
		dense := mat.DenseCopyOf(matrix)
		_, cols := dense.Dims()
		queryVec := dense.ColView(cols - 1)
		for i := range scored {
			scored[i].Score = clampScore(pairwise.CosineSimilarity(queryVec, dense.ColView(i)))
		}
	}
	// A vectorization failure leaves every score at 0; the order below is
	// then the stable input order.

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func (r Ranker) maxVocabulary() int {
	if r.MaxVocabulary > 0 {
		return r.MaxVocabulary
	}
	return DefaultMaxVocabulary
}

// Ranked converts scored sections to the external records, dropping the
// body text.
func Ranked(scored []Scored) []docmodel.RankedSection {
	out := make([]docmodel.RankedSection, 0, len(scored))
	for _, s := range scored {
		out = append(out, docmodel.RankedSection{
			Document: s.Section.Document,
			Page:     s.Section.Page,
			Title:    s.Section.Title,
			Score:    s.Score,
		})
	}
	return out
}

// normalize lowercases and strips stop words and punctuation so the
// vectoriser sees content words only.
func normalize(text string) string {
	return strings.TrimSpace(stopwords.CleanString(text, "en", false))
}

// capVocabulary enforces the term limit before vectorization: terms are
// ranked by corpus frequency (ties alphabetical, for determinism) and
// tokens outside the top maxTerms are dropped from every document.
func capVocabulary(corpus []string, maxTerms int) []string {
	freq := make(map[string]int)
	for _, doc := range corpus {
		for _, tok := range strings.Fields(doc) {
			freq[tok]++
		}
	}
	if len(freq) <= maxTerms {
		return corpus
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	keep := make(map[string]struct{}, maxTerms)
	for _, t := range terms[:maxTerms] {
		keep[t] = struct{}{}
	}

	out := make([]string, len(corpus))
	for i, doc := range corpus {
		fields := strings.Fields(doc)
		kept := fields[:0]
		for _, tok := range fields {
			if _, ok := keep[tok]; ok {
				kept = append(kept, tok)
			}
		}
		out[i] = strings.Join(kept, " ")
	}
	return out
}

// clampScore maps the undefined zero-vector case (NaN) to 0 and pins the
// result into [0, 1].
func clampScore(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
