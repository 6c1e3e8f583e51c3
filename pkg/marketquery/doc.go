// Package marketquery validates complete market-data requests.
//
// A Query carries the five request parameters: symbol, chart type, time
// series and a start/end date pair. Validate reports every bad parameter at
// once as validator.ValidationErrors:
//
//	q := marketquery.FromValues(r.URL.Query())
//	if err := q.Validate(); err != nil {
//	    verrs := validator.ExtractValidationErrors(err)
//	    // respond with verrs.Fields()
//	}
//
// For code that already uses github.com/go-playground/validator/v10,
// RegisterValidations adds the symbol, chart_type, time_series and ymd_date
// struct tags.
package marketquery
