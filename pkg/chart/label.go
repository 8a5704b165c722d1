package chart

import (
	"github.com/shopspring/decimal"
)

// LabelThreshold is the largest proportion that is drawn without a label.
const LabelThreshold = 0.04

// Label formats a proportion as a percentage with two decimals, rounding
// half away from zero ("50.00%"). Proportions at or below [LabelThreshold]
// get an empty label: their wedges are too thin to hold text.
func Label(p float64) string {
	if !(p > LabelThreshold) {
		return ""
	}
	return decimal.NewFromFloat(p).Shift(2).StringFixed(2) + "%"
}
