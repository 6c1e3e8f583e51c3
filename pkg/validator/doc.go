// Package validator checks market-data request parameters: ticker symbols,
// chart type codes, time series codes and calendar dates.
//
// Each parameter has a plain predicate that never panics and reports any
// malformed input as false:
//
//	validator.IsValidSymbol("AAPL")        // true
//	validator.IsValidChartType("01")       // false, exact match only
//	validator.IsValidTimeSeries("4")       // true
//	validator.IsValidDate("2023-02-29")    // false, not a leap year
//
// # Rules
//
// For request handling the predicates are also available as Rule values.
// A Rule bundles a Check function with translation-friendly error metadata.
// Apply evaluates all rules and aggregates failures into ValidationErrors,
// which implements error:
//
//	err := validator.Apply(
//	    validator.ValidSymbol("symbol", symbol),
//	    validator.ValidChartType("chart_type", chartType),
//	    validator.ValidDate("start_date", start),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Fields(), verrs.Get("symbol"), ...
//	}
//
// # Dates
//
// Dates must be exactly ten bytes in zero-padded YYYY-MM-DD form and must
// name a real Gregorian date, so 2024-02-29 passes while 2023-02-29,
// 2024-02-30, 2024-11-8 and 2024/11/08 fail. ParseDate returns the parsed
// day as midnight UTC.
//
// The package holds no mutable state and every function is safe for
// concurrent use.
package validator
