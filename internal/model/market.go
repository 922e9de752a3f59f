package model

import "time"

// PriceSample is a single close price from the intraday series.
type PriceSample struct {
	Time  time.Time
	Close float64
}

// Direction tells which extremum came first inside the sampling window.
type Direction string

const (
	DirectionAscent  Direction = "ASCENT"
	DirectionDescent Direction = "DESCENT"
)

// SwingResult is the derived view of one intraday window.
// Prices are whole currency units, PercentMove has one decimal.
type SwingResult struct {
	CurrentPrice float64
	MinPrice     float64
	MaxPrice     float64
	MinAt        time.Time
	MaxAt        time.Time
	PercentMove  float64
	Direction    Direction
}
