// Package domain defines the core types and interfaces for the dish extractor.
// All other packages depend on domain; domain depends on nothing.
package domain

import "time"

// DishAnalysis is the structured record extracted from a dish description.
// Every field is always present: strings may be empty, slices are never nil.
type DishAnalysis struct {
	Name            string         `json:"name" yaml:"name"`
	Description     string         `json:"description" yaml:"description"`
	Kitchen         string         `json:"kitchen" yaml:"kitchen"` // cuisine of origin
	Ingredients     []string       `json:"ingredients" yaml:"ingredients"`
	CookingProcess  CookingProcess `json:"cooking_process" yaml:"cooking_process"`
	Portion         Portion        `json:"portion" yaml:"portion"`
	Nutrition       Nutrition      `json:"nutrition" yaml:"nutrition"`
	Recommendations []string       `json:"recommendations" yaml:"recommendations"`
}

// CookingProcess holds the numbered steps plus the two trailing scalars.
type CookingProcess struct {
	Steps      []Step `json:"steps" yaml:"steps"`
	Difficulty string `json:"difficulty" yaml:"difficulty"` // free text, e.g. "Средняя"
	Duration   string `json:"duration" yaml:"duration"`     // free text, never parsed
}

// Step is a single cooking step. StepNumber is assigned by parse order
// starting at 1; numerals found in the source are discarded.
type Step struct {
	StepNumber  int    `json:"step_number" yaml:"step_number"`
	Description string `json:"description" yaml:"description"`
}

// Portion describes serving size in free text.
type Portion struct {
	Weight   string `json:"weight" yaml:"weight"`
	Quantity string `json:"quantity" yaml:"quantity"`
}

// Nutrition values are kept verbatim; ranges like "250-300" are not decomposed.
type Nutrition struct {
	Calories      string `json:"calories" yaml:"calories"`
	Proteins      string `json:"proteins" yaml:"proteins"`
	Fats          string `json:"fats" yaml:"fats"`
	Carbohydrates string `json:"carbohydrates" yaml:"carbohydrates"`
}

// NewDishAnalysis returns a record with the complete shape and default
// empty values.
func NewDishAnalysis() *DishAnalysis {
	return &DishAnalysis{
		Ingredients: []string{},
		CookingProcess: CookingProcess{
			Steps: []Step{},
		},
		Recommendations: []string{},
	}
}

// Result is a record produced from one input payload, as tracked by the CLI.
type Result struct {
	Source   string        `json:"source" yaml:"source"`
	Digest   string        `json:"digest" yaml:"digest"`
	Analysis *DishAnalysis `json:"analysis" yaml:"analysis"`
	ParsedAt time.Time     `json:"parsed_at" yaml:"parsed_at"`
	Problems []string      `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// Valid reports whether the validator found nothing wrong with the record.
func (r *Result) Valid() bool {
	return len(r.Problems) == 0
}
