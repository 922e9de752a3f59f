package calculator

import "github.com/shopspring/decimal"

// RoundUnits rounds to whole currency units, ties to even.
func RoundUnits(v float64) float64 {
	return decimal.NewFromFloat(v).RoundBank(0).InexactFloat64()
}

// RoundTenth rounds to one decimal place, ties to even.
func RoundTenth(v float64) float64 {
	return decimal.NewFromFloat(v).RoundBank(1).InexactFloat64()
}

// percentChange returns (to/from - 1) * 100 rounded to one decimal.
// The ratio is taken in float64 so borderline moves such as 2041/2000
// land on 2.0, not 2.1. from must be non-zero.
func percentChange(to, from float64) float64 {
	return RoundTenth((to/from - 1) * 100)
}
