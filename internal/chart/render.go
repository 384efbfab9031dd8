package chart

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pplcc/plotext/custplotter"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"tradelog/internal/dataflows"
)

// Overlays are the derived series drawn on top of the candles.
type Overlays struct {
	ShortEMA   []float64
	LongEMA    []float64
	ShortLabel string
	LongLabel  string
	Buy        MarkerSeries
	Sell       MarkerSeries
}

// Render composes the candlestick figure with a volume subplot, the two
// EMA lines and the buy/sell marker overlays, and writes it as a PNG to
// path, overwriting any existing file.
func Render(series dataflows.Series, overlays Overlays, style Style, title, path string) error {
	dates := series.Dates()

	p := plot.New()
	p.Title.Text = title
	p.BackgroundColor = style.Background
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Y.Label.Text = "가격 (원)"
	p.Add(newGrid(style))
	p.Legend.Top = true
	p.Legend.Left = true

	candles, err := custplotter.NewCandlesticks(series)
	if err != nil {
		return fmt.Errorf("build candlesticks: %w", err)
	}
	candles.ColorUp = style.Up
	candles.ColorDown = style.Down
	// Wicks and edges follow the body color.
	candles.FixedLineColor = false
	p.Add(candles)

	shortLine, err := emaLine(dates, overlays.ShortEMA)
	if err != nil {
		return fmt.Errorf("build %s line: %w", overlays.ShortLabel, err)
	}
	shortLine.Color = style.Up
	p.Add(shortLine)
	p.Legend.Add(overlays.ShortLabel, shortLine)

	longLine, err := emaLine(dates, overlays.LongEMA)
	if err != nil {
		return fmt.Errorf("build %s line: %w", overlays.LongLabel, err)
	}
	longLine.Color = style.Down
	p.Add(longLine)
	p.Legend.Add(overlays.LongLabel, longLine)

	if pts := markerXYs(dates, overlays.Buy); len(pts) > 0 {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("build buy markers: %w", err)
		}
		scatter.GlyphStyle.Shape = draw.PyramidGlyph{}
		scatter.GlyphStyle.Color = style.Up
		scatter.GlyphStyle.Radius = vg.Points(6)
		p.Add(scatter)
		p.Legend.Add("Buy", scatter)
	}
	if pts := markerXYs(dates, overlays.Sell); len(pts) > 0 {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("build sell markers: %w", err)
		}
		scatter.GlyphStyle.Shape = downPyramidGlyph{}
		scatter.GlyphStyle.Color = style.Down
		scatter.GlyphStyle.Radius = vg.Points(6)
		p.Add(scatter)
		p.Legend.Add("Sell", scatter)
	}

	pv := plot.New()
	pv.BackgroundColor = style.Background
	pv.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	pv.Y.Label.Text = "거래량"
	pv.Add(newGrid(style))

	volume, err := custplotter.NewVBars(series)
	if err != nil {
		return fmt.Errorf("build volume bars: %w", err)
	}
	volume.ColorUp = style.Up
	volume.ColorDown = style.Down
	pv.Add(volume)

	// Keep both subplots on the same date range.
	pv.X.Min, pv.X.Max = p.X.Min, p.X.Max

	img := vgimg.NewWith(
		vgimg.UseWH(style.Width, style.Height),
		vgimg.UseDPI(style.DPI),
		vgimg.UseBackgroundColor(style.Background),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 1,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align([][]*plot.Plot{{p}, {pv}}, tiles, dc)
	p.Draw(canvases[0][0])
	pv.Draw(canvases[1][0])

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer out.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(out); err != nil {
		return fmt.Errorf("write chart file: %w", err)
	}
	return nil
}

func newGrid(style Style) *plotter.Grid {
	grid := plotter.NewGrid()
	grid.Vertical.Color = style.Grid
	grid.Horizontal.Color = style.Grid
	if style.GridDashed {
		dashes := []vg.Length{vg.Points(2), vg.Points(2)}
		grid.Vertical.Dashes = dashes
		grid.Horizontal.Dashes = dashes
	}
	return grid
}

func emaLine(dates []time.Time, values []float64) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i].X = float64(dates[i].Unix())
		xys[i].Y = v
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Width = vg.Points(1.5)
	return line, nil
}

func markerXYs(dates []time.Time, markers MarkerSeries) plotter.XYs {
	var xys plotter.XYs
	for i, v := range markers {
		if math.IsNaN(v) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(dates[i].Unix()), Y: v})
	}
	return xys
}

// downPyramidGlyph draws a filled downward-pointing triangle, the
// counterpart of draw.PyramidGlyph for sell markers.
type downPyramidGlyph struct{}

func (downPyramidGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Close()
	c.Fill(p)
}
