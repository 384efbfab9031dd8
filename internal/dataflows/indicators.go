package dataflows

// EMA computes the exponential moving average of a price series with the
// given span. The smoothing factor is 2/(span+1) and the first
// observation seeds the average, so the result has the same length as
// the input.
func EMA(prices []float64, span int) []float64 {
	if len(prices) == 0 || span <= 0 {
		return nil
	}

	alpha := 2.0 / (float64(span) + 1.0)
	ema := make([]float64, len(prices))
	ema[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		ema[i] = alpha*prices[i] + (1-alpha)*ema[i-1]
	}
	return ema
}
