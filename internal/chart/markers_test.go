package chart

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testIndex() []time.Time {
	start := time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC)
	index := make([]time.Time, 5)
	for i := range index {
		index[i] = start.AddDate(0, 0, i)
	}
	return index
}

func TestMarkerPlacedAtExactDate(t *testing.T) {
	index := testIndex()
	markers := BuildMarkerSeries(index, index[2], decimal.NewFromInt(58000))

	for i, v := range markers {
		if i == 2 {
			if v != 58000 {
				t.Errorf("markers[2] = %f, want 58000", v)
			}
			continue
		}
		if !math.IsNaN(v) {
			t.Errorf("markers[%d] = %f, want NaN", i, v)
		}
	}
	if markers.Empty() {
		t.Error("series with one marker reported empty")
	}
}

func TestMarkerOmittedForAbsentDate(t *testing.T) {
	index := testIndex()
	offDay := index[len(index)-1].AddDate(0, 0, 7)

	markers := BuildMarkerSeries(index, offDay, decimal.NewFromInt(61000))
	if !markers.Empty() {
		t.Error("marker placed for a date absent from the index")
	}
	if len(markers) != len(index) {
		t.Errorf("got len %d, want %d", len(markers), len(index))
	}
}

func TestMarkerIgnoresTimeOfDay(t *testing.T) {
	index := testIndex()
	sameDayLater := index[1].Add(15 * time.Hour)

	markers := BuildMarkerSeries(index, sameDayLater, decimal.NewFromInt(100))
	if markers.Empty() {
		t.Error("marker missing for same calendar day with different clock time")
	}
}
