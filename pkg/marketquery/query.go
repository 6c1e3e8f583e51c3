package marketquery

import (
	"net/url"
	"time"

	"github.com/dmitrymomot/marketparams/pkg/validator"
)

// Request parameter names.
const (
	FieldSymbol     = "symbol"
	FieldChartType  = "chart_type"
	FieldTimeSeries = "time_series"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
)

// Query is a market-data request as received from a caller.
type Query struct {
	Symbol     string `json:"symbol" form:"symbol" validate:"symbol"`
	ChartType  string `json:"chart_type" form:"chart_type" validate:"chart_type"`
	TimeSeries string `json:"time_series" form:"time_series" validate:"time_series"`
	StartDate  string `json:"start_date" form:"start_date" validate:"ymd_date"`
	EndDate    string `json:"end_date" form:"end_date" validate:"ymd_date"`
}

// FromValues reads a Query from URL query values. Values are taken as is;
// missing parameters become empty strings and fail validation.
func FromValues(v url.Values) Query {
	return Query{
		Symbol:     v.Get(FieldSymbol),
		ChartType:  v.Get(FieldChartType),
		TimeSeries: v.Get(FieldTimeSeries),
		StartDate:  v.Get(FieldStartDate),
		EndDate:    v.Get(FieldEndDate),
	}
}

// Values encodes q back into URL query values.
func (q Query) Values() url.Values {
	v := make(url.Values, 5)
	v.Set(FieldSymbol, q.Symbol)
	v.Set(FieldChartType, q.ChartType)
	v.Set(FieldTimeSeries, q.TimeSeries)
	v.Set(FieldStartDate, q.StartDate)
	v.Set(FieldEndDate, q.EndDate)
	return v
}

// Validate checks every parameter and the date range.
func (q Query) Validate() error {
	return validator.Apply(
		validator.ValidSymbol(FieldSymbol, q.Symbol),
		validator.ValidChartType(FieldChartType, q.ChartType),
		validator.ValidTimeSeries(FieldTimeSeries, q.TimeSeries),
		validator.ValidDate(FieldStartDate, q.StartDate),
		validator.ValidDate(FieldEndDate, q.EndDate),
		validator.DateNotAfter(FieldStartDate, q.StartDate, q.EndDate),
	)
}

// Range returns the parsed start and end dates.
func (q Query) Range() (start, end time.Time, err error) {
	if start, err = validator.ParseDate(q.StartDate); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = validator.ParseDate(q.EndDate); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
