package template

import (
	"fmt"
	"strings"
)

// Prompt renders the producer prompt for the vocabulary: preamble, the
// section skeleton with placeholder hints, and the closing instructions.
// The extractor only understands text that follows this skeleton.
func Prompt(v *Vocabulary) string {
	h := v.Hints
	var b strings.Builder

	if h.Preamble != "" {
		b.WriteString(h.Preamble)
		b.WriteByte('\n')
	}

	b.WriteString(v.Markers.Identity + "\n")
	writeField(&b, v.Labels.Name, h.Fields.Name)
	writeField(&b, v.Labels.Description, h.Fields.Description)
	writeField(&b, v.Labels.Kitchen, h.Fields.Kitchen)

	b.WriteString(v.Markers.Ingredients + "\n")
	for _, ing := range orPlaceholder(h.Ingredients, 3) {
		fmt.Fprintf(&b, "- %s\n", ing)
	}

	b.WriteString(v.Markers.Process + "\n")
	for i, step := range orPlaceholder(h.Steps, 3) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	writeField(&b, v.Labels.Difficulty, h.Fields.Difficulty)
	writeField(&b, v.Labels.Duration, h.Fields.Duration)

	b.WriteString(v.Markers.Portion + "\n")
	writeField(&b, v.Labels.Weight, h.Fields.Weight)
	writeField(&b, v.Labels.Quantity, h.Fields.Quantity)

	b.WriteString(v.Markers.Nutrition + "\n")
	writeField(&b, v.Labels.Calories, h.Fields.Calories)
	writeField(&b, v.Labels.Proteins, h.Fields.Proteins)
	writeField(&b, v.Labels.Fats, h.Fields.Fats)
	writeField(&b, v.Labels.Carbohydrates, h.Fields.Carbohydrates)

	b.WriteString(v.Markers.Recommendations + "\n")
	rec := h.Recommendations
	if rec == "" {
		rec = "[...]"
	}
	b.WriteString(rec + "\n")

	if h.Closing != "" {
		b.WriteString(h.Closing)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeField(b *strings.Builder, label, hint string) {
	if hint == "" {
		hint = "[...]"
	}
	fmt.Fprintf(b, "%s: %s\n", label, hint)
}

func orPlaceholder(items []string, n int) []string {
	if len(items) > 0 {
		return items
	}
	out := make([]string, n)
	for i := range out {
		out[i] = "[...]"
	}
	return out
}
