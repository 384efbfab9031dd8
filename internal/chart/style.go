package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"

	"tradelog/internal/config"
)

// Style is the resolved color/style scheme for one figure.
type Style struct {
	Up         color.Color
	Down       color.Color
	Background color.Color
	Grid       color.Color
	GridDashed bool
	Width      vg.Length
	Height     vg.Length
	DPI        int
	FontPath   string
}

// StyleFromConfig resolves the configured scheme into drawable colors
// and canvas dimensions.
func StyleFromConfig(cfg config.ChartConfig) (Style, error) {
	up, err := parseHexColor(cfg.UpColor)
	if err != nil {
		return Style{}, fmt.Errorf("up color: %w", err)
	}
	down, err := parseHexColor(cfg.DownColor)
	if err != nil {
		return Style{}, fmt.Errorf("down color: %w", err)
	}
	background, err := parseHexColor(cfg.Background)
	if err != nil {
		return Style{}, fmt.Errorf("background color: %w", err)
	}
	grid, err := parseHexColor(cfg.GridColor)
	if err != nil {
		return Style{}, fmt.Errorf("grid color: %w", err)
	}

	return Style{
		Up:         up,
		Down:       down,
		Background: background,
		Grid:       grid,
		GridDashed: cfg.GridDashed,
		Width:      vg.Length(cfg.WidthInches) * vg.Inch,
		Height:     vg.Length(cfg.HeightInches) * vg.Inch,
		DPI:        int(cfg.DPI),
		FontPath:   cfg.FontPath,
	}, nil
}

// parseHexColor parses a #RRGGBB string.
func parseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	c.A = 0xff
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}
