package dataflows

import (
	"math"
	"testing"
)

func TestEMAConstantSeriesConverges(t *testing.T) {
	for _, span := range []int{10, 60} {
		prices := make([]float64, 120)
		for i := range prices {
			prices[i] = 58000
		}

		ema := EMA(prices, span)
		if len(ema) != len(prices) {
			t.Fatalf("span %d: got %d values, want %d", span, len(ema), len(prices))
		}
		for i, v := range ema {
			if math.Abs(v-58000) > 1e-6 {
				t.Errorf("span %d: ema[%d] = %f, want 58000", span, i, v)
			}
		}
	}
}

func TestEMAFirstObservationSeeds(t *testing.T) {
	prices := []float64{1, 2, 3}
	// alpha = 0.5 for span 3
	want := []float64{1, 1.5, 2.25}

	ema := EMA(prices, 3)
	if len(ema) != len(want) {
		t.Fatalf("got %d values, want %d", len(ema), len(want))
	}
	for i := range want {
		if math.Abs(ema[i]-want[i]) > 1e-9 {
			t.Errorf("ema[%d] = %f, want %f", i, ema[i], want[i])
		}
	}
}

func TestEMADegenerateInputs(t *testing.T) {
	if got := EMA(nil, 10); got != nil {
		t.Errorf("EMA(nil) = %v, want nil", got)
	}
	if got := EMA([]float64{1, 2}, 0); got != nil {
		t.Errorf("EMA with zero span = %v, want nil", got)
	}
}
