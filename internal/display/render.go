package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/ottodish/internal/domain"
)

// Output formats understood by NewRenderer.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatMarkdown}
}

// NormalizeFormat maps a user-supplied format name, aliases and case
// included, to one of Formats. An empty name is text.
func NormalizeFormat(format string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return FormatText, true
	case FormatJSON:
		return FormatJSON, true
	case FormatYAML, "yml":
		return FormatYAML, true
	case FormatMarkdown, "md":
		return FormatMarkdown, true
	}
	return "", false
}

// NewRenderer returns the renderer for a format name. Width applies to the
// terminal formats; 0 means the current terminal width.
func NewRenderer(format string, width int) (domain.Renderer, error) {
	name, ok := NormalizeFormat(format)
	if !ok {
		return nil, fmt.Errorf("display: %q: %w", format, domain.ErrUnknownFormat)
	}
	switch name {
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	case FormatMarkdown:
		return NewMarkdownRenderer(width, "auto"), nil
	default:
		return NewTextRenderer(width), nil
	}
}

// JSONRenderer writes the record as indented JSON with snake_case keys.
type JSONRenderer struct{}

// Render writes the record.
func (JSONRenderer) Render(w io.Writer, a *domain.DishAnalysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(a)
}

// YAMLRenderer writes the record as YAML.
type YAMLRenderer struct{}

// Render writes the record.
func (YAMLRenderer) Render(w io.Writer, a *domain.DishAnalysis) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return err
	}
	return enc.Close()
}

// MarkdownRenderer renders the record as markdown through glamour. If the
// glamour renderer cannot be built the raw markdown is written instead.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer builds a glamour renderer. style is a glamour
// standard style name ("auto", "dark", "light", "notty", ...).
func NewMarkdownRenderer(width int, style string) *MarkdownRenderer {
	if width <= 0 {
		width = termWidth()
	}
	styleOpt := glamour.WithStandardStyle(style)
	if style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width-4))
	if err != nil {
		return &MarkdownRenderer{}
	}
	return &MarkdownRenderer{renderer: r}
}

// Render writes the record.
func (m *MarkdownRenderer) Render(w io.Writer, a *domain.DishAnalysis) error {
	md := Markdown(a)
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			md = out
		}
	}
	_, err := io.WriteString(w, md)
	return err
}

// Markdown formats a record as a markdown document.
func Markdown(a *domain.DishAnalysis) string {
	var b strings.Builder

	name := a.Name
	if name == "" {
		name = "Untitled dish"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)
	if a.Kitchen != "" {
		fmt.Fprintf(&b, "*%s*\n\n", a.Kitchen)
	}
	if a.Description != "" {
		b.WriteString(a.Description + "\n\n")
	}

	if len(a.Ingredients) > 0 {
		b.WriteString("## Ingredients\n\n")
		for _, ing := range a.Ingredients {
			fmt.Fprintf(&b, "- %s\n", ing)
		}
		b.WriteByte('\n')
	}

	cp := a.CookingProcess
	if len(cp.Steps) > 0 || cp.Difficulty != "" || cp.Duration != "" {
		b.WriteString("## Preparation\n\n")
		for _, s := range cp.Steps {
			fmt.Fprintf(&b, "%d. %s\n", s.StepNumber, s.Description)
		}
		if len(cp.Steps) > 0 {
			b.WriteByte('\n')
		}
		writeRow(&b, "Difficulty", cp.Difficulty)
		writeRow(&b, "Time", cp.Duration)
		b.WriteByte('\n')
	}

	rows := [][2]string{
		{"Weight", a.Portion.Weight},
		{"Quantity", a.Portion.Quantity},
		{"Calories", a.Nutrition.Calories},
		{"Proteins", a.Nutrition.Proteins},
		{"Fats", a.Nutrition.Fats},
		{"Carbohydrates", a.Nutrition.Carbohydrates},
	}
	b.WriteString("## Portion and nutrition\n\n| | |\n|---|---|\n")
	for _, r := range rows {
		v := r[1]
		if v == "" {
			v = "—"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], v)
	}
	b.WriteByte('\n')

	if len(a.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		quoted := make([]string, len(a.Recommendations))
		for i, rec := range a.Recommendations {
			quoted[i] = "> " + rec
		}
		b.WriteString(strings.Join(quoted, "\n>\n") + "\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeRow(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "**%s:** %s  \n", label, value)
	}
}
