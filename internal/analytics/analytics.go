// Package analytics holds the arithmetic behind dashboards.
package analytics

import (
	"github.com/shopspring/decimal"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"

	trendThreshold = 5
)

var hundred = decimal.NewFromInt(100)

// Rate is count/total*100 rounded half away from zero to two decimals. Zero total gives 0.
func Rate(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(2).
		InexactFloat64()
}

// Change is the relative change from previous to current in percent. Zero previous gives 0.
func Change(current, previous int) float64 {
	if previous == 0 {
		return 0
	}

	return decimal.NewFromInt(int64(current - previous)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(previous))).
		Round(2).
		InexactFloat64()
}

func Classify(change float64) Trend {
	switch {
	case change > trendThreshold:
		return TrendUp
	case change < -trendThreshold:
		return TrendDown
	default:
		return TrendStable
	}
}
