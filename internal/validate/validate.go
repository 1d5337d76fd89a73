// Package validate checks an assembled DishAnalysis against the record
// schema: required fields and maximum lengths. Extraction never fails on
// sparse input, so this is where an under-populated record gets rejected.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hammamikhairi/ottodish/internal/domain"
)

// Maximum field lengths, in characters.
const (
	MaxName           = 255
	MaxKitchen        = 100
	MaxIngredient     = 255
	MaxProcessScalar  = 50
	MaxPortionScalar  = 100
	MaxNutrition      = 50
	MaxRecommendation = 500
)

// FieldError is one schema violation.
type FieldError struct {
	Field   string // dotted path, e.g. "cooking_process.steps[2].description"
	Message string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// Error collects every violation found in a record.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("%s: %s", domain.ErrInvalidRecord, strings.Join(parts, "; "))
}

// Unwrap lets callers match with errors.Is(err, domain.ErrInvalidRecord).
func (e *Error) Unwrap() error {
	return domain.ErrInvalidRecord
}

// Problems returns the violations as plain strings.
func (e *Error) Problems() []string {
	out := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		out[i] = f.String()
	}
	return out
}

type checker struct {
	errs []FieldError
}

func (c *checker) add(field, format string, args ...any) {
	c.errs = append(c.errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// text checks a string field. Blank values are rejected unless allowBlank.
func (c *checker) text(field, value string, max int, allowBlank bool) {
	if strings.TrimSpace(value) == "" {
		if !allowBlank {
			c.add(field, "may not be blank")
		}
		return
	}
	if max > 0 {
		if n := utf8.RuneCountInString(value); n > max {
			c.add(field, "ensure this field has no more than %d characters (has %d)", max, n)
		}
	}
}

// Record validates a record. It returns nil or an *Error listing every
// violation in field order.
func Record(r *domain.DishAnalysis) error {
	if r == nil {
		return &Error{Fields: []FieldError{{Field: "record", Message: "is missing"}}}
	}

	var c checker
	c.text("name", r.Name, MaxName, false)
	c.text("description", r.Description, 0, false)
	c.text("kitchen", r.Kitchen, MaxKitchen, true)

	for i, ing := range r.Ingredients {
		c.text(fmt.Sprintf("ingredients[%d]", i), ing, MaxIngredient, false)
	}

	cp := r.CookingProcess
	for i, s := range cp.Steps {
		if s.StepNumber < 1 {
			c.add(fmt.Sprintf("cooking_process.steps[%d].step_number", i), "must be a positive integer (got %d)", s.StepNumber)
		}
		c.text(fmt.Sprintf("cooking_process.steps[%d].description", i), s.Description, 0, false)
	}
	c.text("cooking_process.difficulty", cp.Difficulty, MaxProcessScalar, false)
	c.text("cooking_process.duration", cp.Duration, MaxProcessScalar, false)

	c.text("portion.weight", r.Portion.Weight, MaxPortionScalar, false)
	c.text("portion.quantity", r.Portion.Quantity, MaxPortionScalar, false)

	n := r.Nutrition
	c.text("nutrition.calories", n.Calories, MaxNutrition, false)
	c.text("nutrition.proteins", n.Proteins, MaxNutrition, false)
	c.text("nutrition.fats", n.Fats, MaxNutrition, false)
	c.text("nutrition.carbohydrates", n.Carbohydrates, MaxNutrition, false)

	for i, rec := range r.Recommendations {
		c.text(fmt.Sprintf("recommendations[%d]", i), rec, MaxRecommendation, false)
	}

	if len(c.errs) == 0 {
		return nil
	}
	return &Error{Fields: c.errs}
}

// Problems runs Record and flattens the result for reporting. It returns
// nil for a valid record.
func Problems(r *domain.DishAnalysis) []string {
	err := Record(r)
	if err == nil {
		return nil
	}
	if ve, ok := err.(*Error); ok {
		return ve.Problems()
	}
	return []string{err.Error()}
}
