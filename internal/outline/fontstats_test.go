package outline

import (
	"testing"

	"github.com/docsense/docsense/internal/docmodel"
	"github.com/docsense/docsense/internal/pdftext"
)

// docWithSizes builds a one-page document containing one word per size,
// repeated count times, for profile tests.
func docWithSizes(sizeCounts map[float64]int) *pdftext.Document {
	page := pdftext.Page{Number: 1}
	for size, count := range sizeCounts {
		for i := 0; i < count; i++ {
			page.Words = append(page.Words, pdftext.Word{Text: "w", FontSize: size})
		}
	}
	return &pdftext.Document{Pages: []pdftext.Page{page}}
}

func TestBuildRankProfile_FourLargestSizes(t *testing.T) {
	doc := docWithSizes(map[float64]int{24: 1, 18: 3, 14: 5, 12: 8, 10: 100})
	p := BuildProfile(doc, PolicyRank)

	if p.H1 != 24 || p.H2 != 18 || p.H3 != 14 || p.H4 != 12 {
		t.Errorf("expected thresholds 24/18/14/12, got %v/%v/%v/%v", p.H1, p.H2, p.H3, p.H4)
	}
}

func TestBuildRankProfile_FewerSizesThanLevels(t *testing.T) {
	doc := docWithSizes(map[float64]int{16: 2, 10: 50})
	p := BuildProfile(doc, PolicyRank)

	if p.H1 != 16 || p.H2 != 10 {
		t.Errorf("expected H1=16 H2=10, got H1=%v H2=%v", p.H1, p.H2)
	}
	// Unfilled thresholds stay zero and must never trigger.
	if p.H3 != 0 || p.H4 != 0 {
		t.Errorf("expected H3/H4 to be zero, got %v/%v", p.H3, p.H4)
	}
}

func TestBuildRankProfile_EmptyDocument(t *testing.T) {
	p := BuildProfile(&pdftext.Document{}, PolicyRank)
	if p.H1 != 0 {
		t.Errorf("expected zero H1 for empty document, got %v", p.H1)
	}
}

func TestBuildFrequencyProfile_ModalBodySize(t *testing.T) {
	doc := docWithSizes(map[float64]int{20: 2, 16: 4, 10: 100})
	p := BuildProfile(doc, PolicyFrequency)

	if p.BodySize != 10 {
		t.Errorf("expected body size 10, got %v", p.BodySize)
	}
	if len(p.HeadingSizes) != 2 || p.HeadingSizes[0] != 20 || p.HeadingSizes[1] != 16 {
		t.Fatalf("expected heading sizes [20 16], got %v", p.HeadingSizes)
	}
	if got := p.LevelForSize(20); got != docmodel.H1 {
		t.Errorf("expected size 20 -> H1, got %v", got)
	}
	if got := p.LevelForSize(16); got != docmodel.H2 {
		t.Errorf("expected size 16 -> H2, got %v", got)
	}
}

func TestBuildFrequencyProfile_TieGoesToSmallerSize(t *testing.T) {
	doc := docWithSizes(map[float64]int{14: 10, 10: 10})
	p := BuildProfile(doc, PolicyFrequency)
	if p.BodySize != 10 {
		t.Errorf("expected tie to resolve to smaller size 10, got %v", p.BodySize)
	}
}

func TestBuildFrequencyProfile_BufferExcludesNearBodySizes(t *testing.T) {
	// 11 is within body+1 of a body size of 10 and must not become a heading.
	doc := docWithSizes(map[float64]int{11: 5, 10: 50, 16: 2})
	p := BuildProfile(doc, PolicyFrequency)

	if len(p.HeadingSizes) != 1 || p.HeadingSizes[0] != 16 {
		t.Errorf("expected heading sizes [16], got %v", p.HeadingSizes)
	}
	if p.IsHeadingSize(11) {
		t.Error("expected size 11 to be outside the heading set")
	}
}

func TestFontProfile_TitleSize(t *testing.T) {
	rank := FontProfile{Policy: PolicyRank, H1: 24}
	if rank.TitleSize() != 24 {
		t.Errorf("expected rank title size 24, got %v", rank.TitleSize())
	}

	freq := FontProfile{Policy: PolicyFrequency, HeadingSizes: []float64{18, 14}}
	if freq.TitleSize() != 18 {
		t.Errorf("expected frequency title size 18, got %v", freq.TitleSize())
	}

	empty := FontProfile{Policy: PolicyFrequency}
	if empty.TitleSize() != 0 {
		t.Errorf("expected zero title size with no headings, got %v", empty.TitleSize())
	}
}

func TestSameSize_Tolerance(t *testing.T) {
	if !sameSize(12.0, 12.05) {
		t.Error("expected sizes within tolerance to match")
	}
	if sameSize(12.0, 12.2) {
		t.Error("expected sizes outside tolerance not to match")
	}
}
