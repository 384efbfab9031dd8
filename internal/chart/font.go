package chart

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
)

const hangulTypeface font.Typeface = "TradelogHangul"

// LoadFont registers a TTF/OTF file as the default plot typeface so
// Hangul titles and labels render correctly. A failure here is
// non-fatal: the caller logs a warning and the stock typeface is used.
func LoadFont(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", path, err)
	}
	font.DefaultCache.Add([]font.Face{{
		Font: font.Font{Typeface: hangulTypeface},
		Face: otf,
	}})
	plot.DefaultFont = font.Font{Typeface: hangulTypeface}
	return nil
}
