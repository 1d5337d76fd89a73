package extract

import (
	"strings"

	"github.com/hammamikhairi/ottodish/internal/template"
)

// Section identifies one of the six template sections.
type Section int

const (
	SectionIdentity Section = iota
	SectionIngredients
	SectionProcess
	SectionPortion
	SectionNutrition
	SectionRecommendations
)

// Sections lists all sections in canonical order.
var Sections = []Section{
	SectionIdentity,
	SectionIngredients,
	SectionProcess,
	SectionPortion,
	SectionNutrition,
	SectionRecommendations,
}

// String returns a human-readable section name.
func (s Section) String() string {
	switch s {
	case SectionIdentity:
		return "identity"
	case SectionIngredients:
		return "ingredients"
	case SectionProcess:
		return "process"
	case SectionPortion:
		return "portion"
	case SectionNutrition:
		return "nutrition"
	case SectionRecommendations:
		return "recommendations"
	default:
		return "unknown"
	}
}

// SectionExtractor finds section bodies by their literal markers.
// A section runs from the first occurrence of its marker to the nearest
// following occurrence of any known marker, or to the end of the text.
// Each lookup scans the whole text; there is no shared cursor, so a
// missing or misplaced section never disturbs another one.
type SectionExtractor struct {
	markers []string // indexed by Section
}

// NewSectionExtractor builds an extractor for the vocabulary's markers.
func NewSectionExtractor(v *template.Vocabulary) *SectionExtractor {
	return &SectionExtractor{markers: v.Markers.Ordered()}
}

// Find returns the trimmed body of section s, or ok=false when its marker
// does not occur in text.
func (x *SectionExtractor) Find(text string, s Section) (body string, ok bool) {
	if int(s) < 0 || int(s) >= len(x.markers) {
		return "", false
	}
	start := x.markers[s]
	i := strings.Index(text, start)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(start):]
	return strings.TrimSpace(rest[:nearest(rest, x.markers)]), true
}

// nearest returns the offset of the earliest occurrence in s of any of the
// tokens, or len(s) if none occurs.
func nearest(s string, tokens []string) int {
	end := len(s)
	for _, tok := range tokens {
		if j := strings.Index(s, tok); j >= 0 && j < end {
			end = j
		}
	}
	return end
}
