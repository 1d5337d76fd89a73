// Package display renders dish records for the terminal and for machines.
//
// [NewRenderer] picks a [domain.Renderer] by format name: "text" is a
// lipgloss-styled summary sized to the terminal, "markdown" goes through
// glamour, and "json"/"yaml" are plain serializations of the record.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/hammamikhairi/ottodish/internal/domain"
)

// ── Styles (soft palette) ────────────────────────────────────────

var (
	// BannerStyle is a muted slate for the banner and CLI notices.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	// UrgentStyle is a soft coral for errors and validation problems.
	UrgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
)

// ── Text renderer ────────────────────────────────────────────────

var _ domain.Renderer = (*TextRenderer)(nil)

// TextRenderer prints a styled, human-readable summary of a record.
// Empty fields are shown as a dimmed dash so a sparse record is still
// visibly complete.
type TextRenderer struct {
	width int
}

// NewTextRenderer creates a text renderer. A width of 0 means the current
// terminal width.
func NewTextRenderer(width int) *TextRenderer {
	if width <= 0 {
		width = termWidth()
	}
	if width < 40 {
		width = 40
	}
	return &TextRenderer{width: width}
}

// Render writes the record.
func (r *TextRenderer) Render(w io.Writer, a *domain.DishAnalysis) error {
	var b strings.Builder
	body := primaryStyle.Width(r.width - 4)

	title := orDash(a.Name)
	if a.Kitchen != "" {
		title += labelStyle.Render("  (" + a.Kitchen + ")")
	}
	b.WriteString("  " + titleStyle.Render(title) + "\n")
	if a.Description != "" {
		b.WriteString(indent(body.Render(a.Description)) + "\n")
	}

	r.heading(&b, "Ingredients")
	if len(a.Ingredients) == 0 {
		b.WriteString("  " + secondaryStyle.Render("none listed") + "\n")
	}
	for _, ing := range a.Ingredients {
		b.WriteString("  • " + primaryStyle.Render(ing) + "\n")
	}

	r.heading(&b, "Preparation")
	for _, s := range a.CookingProcess.Steps {
		fmt.Fprintf(&b, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%2d.", s.StepNumber)),
			primaryStyle.Render(s.Description))
	}
	field(&b, "Difficulty", a.CookingProcess.Difficulty)
	field(&b, "Time", a.CookingProcess.Duration)

	r.heading(&b, "Portion")
	field(&b, "Weight", a.Portion.Weight)
	field(&b, "Quantity", a.Portion.Quantity)

	r.heading(&b, "Nutrition")
	field(&b, "Calories", a.Nutrition.Calories)
	field(&b, "Proteins", a.Nutrition.Proteins)
	field(&b, "Fats", a.Nutrition.Fats)
	field(&b, "Carbohydrates", a.Nutrition.Carbohydrates)

	if len(a.Recommendations) > 0 {
		r.heading(&b, "Recommendations")
		for _, rec := range a.Recommendations {
			b.WriteString(indent(body.Render(rec)) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TextRenderer) heading(b *strings.Builder, name string) {
	rule := r.width - lipgloss.Width(name) - 6
	if rule < 2 {
		rule = 2
	}
	b.WriteString("\n  " + headingStyle.Render(name) + " " + sepStyle.Render(strings.Repeat("─", rule)) + "\n")
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", label+":")), orDash(value))
}

func orDash(s string) string {
	if s == "" {
		return secondaryStyle.Render("—")
	}
	return primaryStyle.Render(s)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

// Problems writes validation findings, one per line.
func Problems(w io.Writer, problems []string) {
	for _, p := range problems {
		fmt.Fprintln(w, UrgentStyle.Render("  ✗ "+p))
	}
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
