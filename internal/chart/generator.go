package chart

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"tradelog/internal/config"
	"tradelog/internal/dataflows"
)

// Resolver maps a company name or ticker to its listing.
type Resolver interface {
	Resolve(ctx context.Context, nameOrTicker string) (dataflows.Listing, error)
}

// MarketData provides historical OHLCV bars.
type MarketData interface {
	DailyOHLCV(ctx context.Context, ticker string, start, end time.Time) (dataflows.Series, error)
}

// Outcome is the result of one chart run.
type Outcome struct {
	OK     bool
	Name   string
	Ticker string
	Rows   int
	File   string
}

// Generator runs the chart pipeline: resolve, fetch, indicators,
// markers, compose, save.
type Generator struct {
	resolver  Resolver
	market    MarketData
	cfg       config.ChartConfig
	outputDir string
	log       zerolog.Logger
}

// NewGenerator creates a chart generator.
func NewGenerator(resolver Resolver, market MarketData, cfg *config.Config, log zerolog.Logger) *Generator {
	return &Generator{
		resolver:  resolver,
		market:    market,
		cfg:       cfg.Chart,
		outputDir: cfg.OutputDir,
		log:       log,
	}
}

// Run executes the pipeline for one trade. Failures at any stage are
// logged and reported through the outcome instead of being propagated.
func (g *Generator) Run(ctx context.Context, trade dataflows.Trade) Outcome {
	outcome, err := g.generate(ctx, trade)
	if err != nil {
		g.log.Error().Err(err).Str("name", trade.Name).Msg("chart generation failed")
		return Outcome{Name: trade.Name}
	}
	return outcome
}

func (g *Generator) generate(ctx context.Context, trade dataflows.Trade) (Outcome, error) {
	listing, err := g.resolver.Resolve(ctx, trade.Name)
	if err != nil {
		return Outcome{}, err
	}
	g.log.Info().
		Str("name", listing.Name).
		Str("ticker", listing.ShortCode).
		Msg("resolved ticker")

	// The chart window ends today and is independent of the trade dates.
	end := time.Now()
	start := end.AddDate(0, 0, -g.cfg.WindowDays)
	series, err := g.market.DailyOHLCV(ctx, listing.ShortCode, start, end)
	if err != nil {
		return Outcome{}, err
	}
	g.log.Info().
		Int("rows", len(series)).
		Str("range", dataflows.FormatDateRange(start, end)).
		Msg("fetched OHLCV window")

	closes := series.Closes()
	dates := series.Dates()
	overlays := Overlays{
		ShortEMA:   dataflows.EMA(closes, g.cfg.ShortEMASpan),
		LongEMA:    dataflows.EMA(closes, g.cfg.LongEMASpan),
		ShortLabel: fmt.Sprintf("EMA %d", g.cfg.ShortEMASpan),
		LongLabel:  fmt.Sprintf("EMA %d", g.cfg.LongEMASpan),
		Buy:        BuildMarkerSeries(dates, trade.BuyDate, trade.BuyPrice),
		Sell:       BuildMarkerSeries(dates, trade.SellDate, trade.SellPrice),
	}
	if overlays.Buy.Empty() {
		g.log.Warn().
			Str("date", dataflows.FormatCompactDate(trade.BuyDate)).
			Msg("buy date not in chart window, marker omitted")
	}
	if overlays.Sell.Empty() {
		g.log.Warn().
			Str("date", dataflows.FormatCompactDate(trade.SellDate)).
			Msg("sell date not in chart window, marker omitted")
	}

	style, err := StyleFromConfig(g.cfg)
	if err != nil {
		return Outcome{}, err
	}
	if style.FontPath != "" {
		if err := LoadFont(style.FontPath); err != nil {
			g.log.Warn().Err(err).Msg("font unavailable, falling back to default")
		}
	}

	filename := OutputFilename(listing.Name, listing.ShortCode, trade.BuyDate, trade.SellDate)
	path := filepath.Join(g.outputDir, filename)
	title := fmt.Sprintf("%s (%s) Trading Log", listing.Name, listing.ShortCode)
	if err := Render(series, overlays, style, title, path); err != nil {
		return Outcome{}, err
	}
	g.log.Info().Str("file", path).Msg("chart saved")

	return Outcome{
		OK:     true,
		Name:   listing.Name,
		Ticker: listing.ShortCode,
		Rows:   len(series),
		File:   path,
	}, nil
}
