// Package extract converts template-shaped dish descriptions into
// domain.DishAnalysis records. Extraction is pure: no I/O, no shared
// mutable state, and every call returns a fully shaped record unless the
// payload is not text.
package extract

import (
	"github.com/hammamikhairi/ottodish/internal/domain"
	"github.com/hammamikhairi/ottodish/internal/logger"
	"github.com/hammamikhairi/ottodish/internal/template"
)

// Compile-time interface check.
var _ domain.Extractor = (*Extractor)(nil)

// Option configures the Extractor.
type Option func(*Extractor)

// WithVocabulary overrides the default (Russian v1) vocabulary. The
// vocabulary must already be validated.
func WithVocabulary(v *template.Vocabulary) Option {
	return func(e *Extractor) { e.vocab = v }
}

// WithBulletMode selects the bullet stripping rule.
func WithBulletMode(m BulletMode) Option {
	return func(e *Extractor) { e.bullets = m }
}

// WithLogger sets the logger used for debug output about missing sections.
func WithLogger(log *logger.Logger) Option {
	return func(e *Extractor) { e.log = log.Named("extract") }
}

// Extractor assembles records from section and field rules. It holds only
// immutable tables and is safe for concurrent use.
type Extractor struct {
	vocab    *template.Vocabulary
	sections *SectionExtractor
	bullets  BulletMode
	log      *logger.Logger
}

// New creates an extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		vocab:   template.Default(),
		bullets: BulletPrefix,
		log:     logger.Nop(),
	}
	for _, o := range opts {
		o(e)
	}
	e.sections = NewSectionExtractor(e.vocab)
	return e
}

// Extract decodes payload and assembles a record from it. The only error is
// one wrapping domain.ErrNotText.
func (e *Extractor) Extract(payload []byte) (*domain.DishAnalysis, error) {
	text, err := Decode(payload)
	if err != nil {
		e.log.Debug("rejected payload (%d bytes): %v", len(payload), err)
		return nil, err
	}
	return e.assemble(text), nil
}

// ExtractString is Extract for string payloads.
func (e *Extractor) ExtractString(s string) (*domain.DishAnalysis, error) {
	return e.Extract([]byte(s))
}

// assemble runs every section in canonical order against the full text.
func (e *Extractor) assemble(text string) *domain.DishAnalysis {
	rec := domain.NewDishAnalysis()
	labels := e.vocab.Labels

	for _, s := range Sections {
		body, ok := e.sections.Find(text, s)
		if !ok {
			e.log.Debug("section %s not found (marker %q)", s, e.vocab.Markers.Ordered()[s])
			continue
		}

		switch s {
		case SectionIdentity:
			v := labeledScalars(body, labels.Identity())
			rec.Name, rec.Description, rec.Kitchen = v[0], v[1], v[2]
		case SectionIngredients:
			rec.Ingredients = bulletList(body, e.bullets)
		case SectionProcess:
			rec.CookingProcess = cookingProcess(body, labels.Process())
		case SectionPortion:
			v := labeledScalars(body, labels.Portion())
			rec.Portion = domain.Portion{Weight: v[0], Quantity: v[1]}
		case SectionNutrition:
			v := labeledScalars(body, labels.Nutrition())
			rec.Nutrition = domain.Nutrition{
				Calories:      v[0],
				Proteins:      v[1],
				Fats:          v[2],
				Carbohydrates: v[3],
			}
		case SectionRecommendations:
			rec.Recommendations = recommendations(body, e.bullets)
		}
	}

	e.log.Debug("assembled %q: %d ingredients, %d steps, %d recommendations",
		rec.Name, len(rec.Ingredients), len(rec.CookingProcess.Steps), len(rec.Recommendations))
	return rec
}
