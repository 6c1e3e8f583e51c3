package validator

import "fmt"

// ChartType selects how a symbol's price history is drawn.
type ChartType string

const (
	ChartTypeLine        ChartType = "1"
	ChartTypeCandlestick ChartType = "2"
)

func (c ChartType) Valid() bool { return IsValidChartType(string(c)) }

func (c ChartType) String() string { return string(c) }

// ParseChartType converts a raw request value into a ChartType.
func ParseChartType(s string) (ChartType, error) {
	if !IsValidChartType(s) {
		return "", fmt.Errorf("%w: chart type %q", ErrInvalidValue, s)
	}
	return ChartType(s), nil
}

// TimeSeriesCode selects the granularity of a price series.
type TimeSeriesCode string

const (
	TimeSeriesDaily    TimeSeriesCode = "1"
	TimeSeriesWeekly   TimeSeriesCode = "2"
	TimeSeriesMonthly  TimeSeriesCode = "3"
	TimeSeriesIntraday TimeSeriesCode = "4"
)

func (t TimeSeriesCode) Valid() bool { return IsValidTimeSeries(string(t)) }

func (t TimeSeriesCode) String() string { return string(t) }

// ParseTimeSeries converts a raw request value into a TimeSeriesCode.
func ParseTimeSeries(s string) (TimeSeriesCode, error) {
	if !IsValidTimeSeries(s) {
		return "", fmt.Errorf("%w: time series %q", ErrInvalidValue, s)
	}
	return TimeSeriesCode(s), nil
}

// Symbol is a market ticker such as AAPL.
type Symbol string

func (s Symbol) Valid() bool { return IsValidSymbol(string(s)) }

func (s Symbol) String() string { return string(s) }

// ParseSymbol converts a raw request value into a Symbol. No trimming or
// case folding is applied.
func ParseSymbol(s string) (Symbol, error) {
	if !IsValidSymbol(s) {
		return "", fmt.Errorf("%w: symbol %q", ErrInvalidFormat, s)
	}
	return Symbol(s), nil
}
