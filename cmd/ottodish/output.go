package main

import (
	"fmt"
	"io"

	"github.com/hammamikhairi/ottodish/internal/display"
	"github.com/hammamikhairi/ottodish/internal/domain"
)

// rendererSet writes results in the configured format. When several
// results share one stream, each gets a header (text, markdown) or a
// document separator (yaml).
type rendererSet struct {
	format string
	r      domain.Renderer
}

func (s *rendererSet) result(out, errOut io.Writer, res *domain.Result, many bool) error {
	if many {
		switch s.format {
		case display.FormatYAML:
			fmt.Fprintln(out, "---")
		case display.FormatJSON:
		default:
			fmt.Fprintln(out, display.BannerStyle.Render("── "+res.Source))
		}
	}
	if err := s.r.Render(out, res.Analysis); err != nil {
		return fmt.Errorf("render %s: %w", res.Source, err)
	}
	if len(res.Problems) > 0 {
		if many {
			fmt.Fprintln(errOut, display.UrgentStyle.Render(res.Source+":"))
		}
		display.Problems(errOut, res.Problems)
	}
	return nil
}
