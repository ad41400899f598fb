package pipeline

import "fmt"

// DataUnavailableError aborts a request when no usable price history exists
// for the requested symbol.
type DataUnavailableError struct {
	Symbol string
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("no usable price history for %s", e.Symbol)
}

// ForecastError aborts a request when the model could not produce a valid
// projection from the fetched history.
type ForecastError struct {
	Symbol string
	Err    error
}

func (e *ForecastError) Error() string {
	return fmt.Sprintf("forecast failed for %s: %v", e.Symbol, e.Err)
}

func (e *ForecastError) Unwrap() error { return e.Err }
