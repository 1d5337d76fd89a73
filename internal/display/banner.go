package display

import (
	"strings"
	"unicode/utf8"
)

const bannerRaw = `
       _   _            _ _     _
  ___ | |_| |_ ___   __| (_)___| |__
 / _ \| __| __/ _ \ / _' | / __| '_ \
| (_) | |_| || (_) | (_| | \__ \ | | |
 \___/ \__|\__\___/ \__,_|_|___/_| |_|
`

// RenderBanner returns the banner art horizontally centred for the given
// width. A width of 0 means the current terminal width. No scaling is
// applied.
func RenderBanner(width int) string {
	if width <= 0 {
		width = termWidth()
	}

	lines := strings.Split(strings.Trim(bannerRaw, "\n"), "\n")

	// Find the widest line.
	maxW := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > maxW {
			maxW = n
		}
	}

	pad := 0
	if width > maxW {
		pad = (width - maxW) / 2
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
	return b.String()
}
