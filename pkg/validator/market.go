package validator

import (
	"fmt"
	"time"
)

const (
	SymbolMinLen = 1
	SymbolMaxLen = 7

	// DateLayout is the only accepted request date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
)

var (
	chartTypeCodes  = []string{"1", "2"}
	timeSeriesCodes = []string{"1", "2", "3", "4"}
)

// ChartTypeCodes returns the accepted chart type codes.
func ChartTypeCodes() []string {
	return append([]string(nil), chartTypeCodes...)
}

// TimeSeriesCodes returns the accepted time series codes.
func TimeSeriesCodes() []string {
	return append([]string(nil), timeSeriesCodes...)
}

// IsValidSymbol reports whether s is a ticker of 1 to 7 uppercase ASCII letters.
func IsValidSymbol(s string) bool {
	if len(s) < SymbolMinLen || len(s) > SymbolMaxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// IsValidChartType reports whether s is exactly one of the chart type codes.
func IsValidChartType(s string) bool {
	return inCodes(s, chartTypeCodes)
}

// IsValidTimeSeries reports whether s is exactly one of the time series codes.
func IsValidTimeSeries(s string) bool {
	return inCodes(s, timeSeriesCodes)
}

// IsValidDate reports whether s is a zero-padded YYYY-MM-DD string naming a
// real Gregorian calendar date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC of that day.
// Errors wrap ErrInvalidDate; shape errors also wrap ErrInvalidFormat.
func ParseDate(s string) (time.Time, error) {
	if !hasDateShape(s) {
		return time.Time{}, fmt.Errorf("%w: %w: %q is not YYYY-MM-DD", ErrInvalidDate, ErrInvalidFormat, s)
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	// Year zero does not exist in the Gregorian calendar.
	if t.Year() < 1 {
		return time.Time{}, fmt.Errorf("%w: year out of range in %q", ErrInvalidDate, s)
	}
	return t, nil
}

// hasDateShape checks the fixed-width layout byte by byte: digits everywhere
// except hyphens at offsets 4 and 7.
func hasDateShape(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}

func inCodes(s string, codes []string) bool {
	for _, c := range codes {
		if s == c {
			return true
		}
	}
	return false
}
