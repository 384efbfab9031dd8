package chart

import (
	"fmt"
	"time"

	"tradelog/internal/dataflows"
)

// OutputFilename derives the chart image name from the display name,
// ticker and the two trade dates. Identical inputs always produce the
// identical name.
func OutputFilename(name, ticker string, buyDate, sellDate time.Time) string {
	return fmt.Sprintf("%s(%s)_%s-%s_trade.png",
		name, ticker,
		dataflows.FormatCompactDate(buyDate),
		dataflows.FormatCompactDate(sellDate))
}
