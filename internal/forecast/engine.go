package forecast

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"smart-stock-bot/internal/marketdata"
)

// ErrInsufficientData signals a series too degenerate to fit a model.
var ErrInsufficientData = errors.New("insufficient distinct data points")

// Forecast is a one-step projection with a confidence band. Date is the
// actual target date of the returned row, which is not necessarily today.
type Forecast struct {
	Date  time.Time
	Point float64
	Lower float64
	Upper float64
}

// band is the residual-spread multiplier for the confidence interval,
// roughly a 95% band under normal residuals.
const band = 1.96

// Engine fits an additive model to a daily closing-price series: a linear
// trend plus a day-of-week seasonal component, with a confidence band from
// the spread of the fit residuals.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Project fits the model over the full series and projects one step beyond
// the last observed date. The returned row is the one matching the current
// calendar date when the fitted grid contains it, otherwise the last
// projected row. Values are carried at full precision; rounding happens at
// presentation time.
func (e *Engine) Project(series marketdata.Series) (Forecast, error) {
	if series.Len() < 2 || series.DistinctDates() < 2 {
		return Forecast{}, fmt.Errorf("%w: have %d", ErrInsufficientData, series.DistinctDates())
	}

	first := series.Points[0].Date
	xs := make([]float64, series.Len())
	ys := series.Closes()
	for i, p := range series.Points {
		xs[i] = p.Date.Sub(first).Hours() / 24
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return Forecast{}, fmt.Errorf("%w: trend fit produced NaN", ErrInsufficientData)
	}

	// Day-of-week seasonal component: mean trend residual per weekday.
	var sums, counts [7]float64
	for i, p := range series.Points {
		w := int(p.Date.Weekday())
		sums[w] += ys[i] - (alpha + beta*xs[i])
		counts[w]++
	}
	var seasonal [7]float64
	for w := range seasonal {
		if counts[w] > 0 {
			seasonal[w] = sums[w] / counts[w]
		}
	}

	resid := make([]float64, series.Len())
	for i, p := range series.Points {
		resid[i] = ys[i] - (alpha + beta*xs[i] + seasonal[p.Date.Weekday()])
	}
	sigma := stat.StdDev(resid, nil)
	if math.IsNaN(sigma) {
		sigma = 0
	}

	target := e.selectTarget(series)
	x := target.Sub(first).Hours() / 24
	point := alpha + beta*x + seasonal[target.Weekday()]

	return Forecast{
		Date:  target,
		Point: point,
		Lower: point - band*sigma,
		Upper: point + band*sigma,
	}, nil
}

// selectTarget picks the projected row to report. The fitted grid is every
// observed date plus one day beyond the last observation; today's row is
// preferred when the grid contains it, and the final (future) row is the
// fallback.
func (e *Engine) selectTarget(series marketdata.Series) time.Time {
	next := series.Last().Date.AddDate(0, 0, 1)
	today := e.now().UTC().Truncate(24 * time.Hour)

	if today.Equal(next) {
		return next
	}
	for _, p := range series.Points {
		if p.Date.Equal(today) {
			return today
		}
	}
	return next
}
