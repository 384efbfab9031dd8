package chart

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MarkerSeries is a price series aligned to an OHLCV date index where
// every position is empty (NaN) except at most one.
type MarkerSeries []float64

// BuildMarkerSeries places price at the position of date in the index.
// If the date is absent (a non-trading day) the series stays entirely
// empty; there is no interpolation or nearest-neighbor search.
func BuildMarkerSeries(index []time.Time, date time.Time, price decimal.Decimal) MarkerSeries {
	markers := make(MarkerSeries, len(index))
	for i := range markers {
		markers[i] = math.NaN()
	}
	for i, d := range index {
		if sameDay(d, date) {
			markers[i] = price.InexactFloat64()
			break
		}
	}
	return markers
}

// Empty reports whether no position holds a price.
func (m MarkerSeries) Empty() bool {
	for _, v := range m {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
