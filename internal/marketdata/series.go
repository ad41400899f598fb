package marketdata

import (
	"math"
	"sort"
	"time"
)

// Point is a single (date, closing price) observation.
type Point struct {
	Date  time.Time
	Close float64
}

// Series is a daily closing-price history, sorted ascending by date with no
// duplicate dates and only finite positive prices. Build one with Clean.
type Series struct {
	Points []Point
}

// Clean normalizes raw observations into a valid Series: prices that are not
// finite positive numbers are dropped, duplicate dates keep the latest
// observation, and the result is sorted ascending. Cleaning an already-clean
// series yields an identical series.
func Clean(raw []Point) Series {
	byDate := make(map[time.Time]Point, len(raw))
	order := make([]time.Time, 0, len(raw))
	for _, p := range raw {
		// A zero close is the provider's null bar (holiday, halted session).
		if math.IsNaN(p.Close) || math.IsInf(p.Close, 0) || p.Close <= 0 {
			continue
		}
		d := p.Date.Truncate(24 * time.Hour)
		if _, seen := byDate[d]; !seen {
			order = append(order, d)
		}
		byDate[d] = Point{Date: d, Close: p.Close}
	}

	points := make([]Point, 0, len(order))
	for _, d := range order {
		points = append(points, byDate[d])
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return Series{Points: points}
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Points) }

// Empty reports whether the series holds no usable observations.
func (s Series) Empty() bool { return len(s.Points) == 0 }

// Last returns the most recent observation. Panics on an empty series.
func (s Series) Last() Point { return s.Points[len(s.Points)-1] }

// Closes returns the closing prices in date order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// DistinctDates counts unique observation dates.
func (s Series) DistinctDates() int {
	seen := make(map[time.Time]struct{}, len(s.Points))
	for _, p := range s.Points {
		seen[p.Date] = struct{}{}
	}
	return len(seen)
}
