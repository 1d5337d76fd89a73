package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hammamikhairi/ottodish/internal/domain"
)

// BulletMode selects how list bullets are removed from a line.
type BulletMode int

const (
	// BulletPrefix strips a single leading "- " from the trimmed line.
	// "-Onion" is left as is.
	BulletPrefix BulletMode = iota
	// BulletReplaceAll removes every "- " occurrence anywhere in the line,
	// the behavior of the first producer integration. "1- 2 cloves"
	// becomes "12 cloves".
	BulletReplaceAll
)

// String returns the config name of the mode.
func (m BulletMode) String() string {
	switch m {
	case BulletReplaceAll:
		return "replace_all"
	default:
		return "prefix"
	}
}

// ParseBulletMode maps a config name to a BulletMode.
func ParseBulletMode(s string) (BulletMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prefix":
		return BulletPrefix, nil
	case "replace_all", "replace-all":
		return BulletReplaceAll, nil
	default:
		return BulletPrefix, fmt.Errorf("unknown bullet mode %q (want prefix or replace_all)", s)
	}
}

const bulletToken = "- "

// strip trims the line and removes the bullet token according to the mode.
// A line holding only a bullet counts as blank.
func (m BulletMode) strip(line string) string {
	line = strings.TrimSpace(line)
	if m == BulletReplaceAll {
		return strings.TrimSpace(strings.ReplaceAll(line, bulletToken, ""))
	}
	if line == "-" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(line, bulletToken))
}

// StepLine is the grammar of a numbered step: a leading integer, a literal
// period, optional spaces, then the step text. It is matched against
// trimmed lines.
var StepLine = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)

// labeledScalars extracts "LABEL: value" pairs from body. A value runs from
// its label to the nearest following label of the same block, or to the
// end of body. Missing labels yield "". The result is indexed like labels.
func labeledScalars(body string, labels []string) []string {
	tokens := make([]string, len(labels))
	for i, l := range labels {
		tokens[i] = l + ":"
	}

	out := make([]string, len(labels))
	for i, tok := range tokens {
		start := strings.Index(body, tok)
		if start < 0 {
			continue
		}
		rest := body[start+len(tok):]
		out[i] = strings.TrimSpace(rest[:nearest(rest, tokens)])
	}
	return out
}

// bulletList returns one item per non-blank line, bullets stripped, in
// source order. Never nil.
func bulletList(body string, mode BulletMode) []string {
	items := []string{}
	for _, line := range strings.Split(body, "\n") {
		if item := mode.strip(line); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// numberedSteps keeps the lines matching StepLine and renumbers them from
// 1 in the order they appear. Never nil.
func numberedSteps(region string) []domain.Step {
	steps := []domain.Step{}
	for _, line := range strings.Split(region, "\n") {
		m := StepLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		steps = append(steps, domain.Step{
			StepNumber:  len(steps) + 1,
			Description: strings.TrimSpace(m[2]),
		})
	}
	return steps
}

// cookingProcess splits the body into steps and trailing scalars. The
// split is the earliest trailing label (difficulty or duration) that opens
// a line, so a step mentioning a label mid-sentence stays a step. When no
// label opens a line, the difficulty label is searched anywhere. labels
// holds the difficulty label followed by the duration label.
func cookingProcess(body string, labels []string) domain.CookingProcess {
	split := len(body)
	for _, l := range labels {
		if k := lineStart(body, l+":"); k >= 0 && k < split {
			split = k
		}
	}
	if split == len(body) {
		if k := strings.Index(body, labels[0]+":"); k >= 0 {
			split = k
		}
	}

	scalars := labeledScalars(body[split:], labels)
	return domain.CookingProcess{
		Steps:      numberedSteps(body[:split]),
		Difficulty: scalars[0],
		Duration:   scalars[1],
	}
}

// lineStart returns the offset of the first occurrence of tok that begins
// a line, leading spaces and tabs aside, or -1.
func lineStart(s, tok string) int {
	offset := 0
	for _, line := range strings.SplitAfter(s, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, tok) {
			return offset + len(line) - len(trimmed)
		}
		offset += len(line)
	}
	return -1
}

// recommendations yields one entry per non-blank line when the body spans
// several lines, otherwise the whole body as a single entry. An empty body
// yields no entries.
func recommendations(body string, mode BulletMode) []string {
	if body == "" {
		return []string{}
	}
	if !strings.Contains(body, "\n") {
		return []string{body}
	}
	return bulletList(body, mode)
}
