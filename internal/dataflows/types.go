package dataflows

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle is one daily OHLCV bar with adjusted prices.
type Candle struct {
	Date   time.Time       `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// Series is an OHLCV sequence ordered by date, oldest first.
type Series []Candle

// Dates returns the date index of the series.
func (s Series) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i, c := range s {
		dates[i] = c.Date
	}
	return dates
}

// Closes returns the closing prices as floats for indicator math.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, c := range s {
		closes[i] = c.Close.InexactFloat64()
	}
	return closes
}

// Len and TOHLCV implement custplotter.TOHLCVer so a Series can feed
// candlestick and volume-bar plotters directly.
func (s Series) Len() int { return len(s) }

func (s Series) TOHLCV(i int) (t, o, h, l, c, v float64) {
	bar := s[i]
	return float64(bar.Date.Unix()),
		bar.Open.InexactFloat64(),
		bar.High.InexactFloat64(),
		bar.Low.InexactFloat64(),
		bar.Close.InexactFloat64(),
		float64(bar.Volume)
}

// Listing is one entry of the KRX stock master list.
type Listing struct {
	FullCode  string `json:"full_code"`
	ShortCode string `json:"short_code"`
	Name      string `json:"codeName"`
	Market    string `json:"marketName"`
}

// Trade describes one completed buy/sell pair to chart.
type Trade struct {
	Name      string
	BuyDate   time.Time
	BuyPrice  decimal.Decimal
	SellDate  time.Time
	SellPrice decimal.Decimal
}
