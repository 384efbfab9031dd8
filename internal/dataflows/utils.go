package dataflows

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// krxDateLayout is the date format used in KRX responses.
	krxDateLayout = "2006/01/02"
	// CompactDateLayout is the YYYYMMDD format used for request
	// parameters and trade dates.
	CompactDateLayout = "20060102"
)

// ParseCommaDecimal parses a comma-grouped KRX price string such as
// "58,000" into a decimal.
func ParseCommaDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return decimal.Zero, fmt.Errorf("empty price field")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", s, err)
	}
	return d, nil
}

// ParseCommaInt parses a comma-grouped volume string into an int64.
func ParseCommaInt(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" || s == "-" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse volume %q: %w", s, err)
	}
	return n, nil
}

// ParseKRXDate parses a trade date in the provider's YYYY/MM/DD form.
func ParseKRXDate(s string) (time.Time, error) {
	t, err := time.Parse(krxDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse trade date %q: %w", s, err)
	}
	return t, nil
}

// ParseCompactDate parses a YYYYMMDD date string.
func ParseCompactDate(s string) (time.Time, error) {
	t, err := time.Parse(CompactDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatCompactDate formats a time as YYYYMMDD.
func FormatCompactDate(t time.Time) string {
	return t.Format(CompactDateLayout)
}

// FormatDateRange creates a human-readable date range string.
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s to %s",
		start.Format("2006-01-02"),
		end.Format("2006-01-02"))
}
