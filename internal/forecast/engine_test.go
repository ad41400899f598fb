package forecast

import (
	"errors"
	"math"
	"testing"
	"time"

	"smart-stock-bot/internal/marketdata"
)

func seriesOf(start time.Time, closes ...float64) marketdata.Series {
	points := make([]marketdata.Point, len(closes))
	for i, c := range closes {
		points[i] = marketdata.Point{Date: start.AddDate(0, 0, i), Close: c}
	}
	return marketdata.Clean(points)
}

func engineAt(t time.Time) *Engine {
	return &Engine{now: func() time.Time { return t }}
}

var monday = time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)

func TestProjectBoundsInvariant(t *testing.T) {
	s := seriesOf(monday, 100, 101.5, 99.8, 103, 102.2, 104.1, 103.5, 105, 106.2, 105.8)
	eng := engineAt(monday.AddDate(0, 0, 20))

	f, err := eng.Project(s)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if !(f.Lower <= f.Point && f.Point <= f.Upper) {
		t.Errorf("Bounds violated: lower=%f point=%f upper=%f", f.Lower, f.Point, f.Upper)
	}
}

func TestProjectFlatSeries(t *testing.T) {
	s := seriesOf(monday, 50, 50, 50, 50, 50)
	eng := engineAt(monday.AddDate(0, 0, 20))

	f, err := eng.Project(s)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if math.Abs(f.Point-50) > 1e-9 {
		t.Errorf("Expected flat projection 50, got %f", f.Point)
	}
	if math.Abs(f.Upper-f.Lower) > 1e-9 {
		t.Errorf("Expected zero-width band on flat series, got [%f, %f]", f.Lower, f.Upper)
	}
}

func TestProjectTrendDirection(t *testing.T) {
	s := seriesOf(monday, 100, 102, 104, 106, 108, 110, 112)
	eng := engineAt(monday.AddDate(0, 0, 20))

	f, err := eng.Project(s)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if f.Point <= 112 {
		t.Errorf("Expected uptrend to project above last close 112, got %f", f.Point)
	}
}

func TestProjectRejectsDegenerateSeries(t *testing.T) {
	single := seriesOf(monday, 100)
	eng := engineAt(monday)

	_, err := eng.Project(single)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}

	_, err = eng.Project(marketdata.Series{})
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData for empty series, got %v", err)
	}
}

func TestProjectTargetIsDayAfterLast(t *testing.T) {
	s := seriesOf(monday, 100, 101, 102, 103, 104)
	last := monday.AddDate(0, 0, 4)
	eng := engineAt(last.AddDate(0, 0, 1)) // "today" is the projected day

	f, err := eng.Project(s)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if !f.Date.Equal(last.AddDate(0, 0, 1)) {
		t.Errorf("Expected target %v, got %v", last.AddDate(0, 0, 1), f.Date)
	}
}

func TestProjectTargetPrefersObservedToday(t *testing.T) {
	s := seriesOf(monday, 100, 101, 102, 103, 104)
	today := monday.AddDate(0, 0, 2) // an observed date inside the grid
	eng := engineAt(today)

	f, err := eng.Project(s)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if !f.Date.Equal(today) {
		t.Errorf("Expected today's row %v, got %v", today, f.Date)
	}
}

func TestProjectFallsBackToLastRow(t *testing.T) {
	s := seriesOf(monday, 100, 101, 102, 103, 104)
	last := monday.AddDate(0, 0, 4)
	eng := engineAt(last.AddDate(0, 0, 10)) // stale history, today not in grid

	f, err := eng.Project(s)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if !f.Date.Equal(last.AddDate(0, 0, 1)) {
		t.Errorf("Expected fallback to last projected row %v, got %v", last.AddDate(0, 0, 1), f.Date)
	}
}
