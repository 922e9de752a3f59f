package model

import "time"

// IndicatorValue is one point of a provider-computed indicator series.
type IndicatorValue struct {
	Time  time.Time
	Value float64
}

// Indicators holds the technical context attached to an alert.
type Indicators struct {
	RSI       []float64 // oldest -> newest, rounded to 1 decimal
	SMA       float64   // whole units
	SMAPeriod int
	Interval  string
}
