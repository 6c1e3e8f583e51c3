package validator

import (
	"fmt"
	"strings"
)

func ValidSymbol(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidSymbol(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be %d to %d uppercase letters", SymbolMinLen, SymbolMaxLen),
			TranslationKey: "validation.symbol",
			TranslationValues: map[string]any{
				"field": field,
				"min":   SymbolMinLen,
				"max":   SymbolMaxLen,
			},
		},
	}
}

func ValidChartType(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidChartType(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(chartTypeCodes, ", ")),
			TranslationKey: "validation.chart_type",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": ChartTypeCodes(),
			},
		},
	}
}

func ValidTimeSeries(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidTimeSeries(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(timeSeriesCodes, ", ")),
			TranslationKey: "validation.time_series",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": TimeSeriesCodes(),
			},
		},
	}
}

func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidDate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date in YYYY-MM-DD format",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field":  field,
				"format": "YYYY-MM-DD",
			},
		},
	}
}

// DateNotAfter checks that value is on or before limit. Malformed dates on
// either side pass; ValidDate reports those.
func DateNotAfter(field, value, limit string) Rule {
	return Rule{
		Check: func() bool {
			v, err := ParseDate(value)
			if err != nil {
				return true
			}
			l, err := ParseDate(limit)
			if err != nil {
				return true
			}
			return !v.After(l)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("date must not be after %s", limit),
			TranslationKey: "validation.date_not_after",
			TranslationValues: map[string]any{
				"field": field,
				"limit": limit,
			},
		},
	}
}
