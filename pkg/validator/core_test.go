package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/marketparams/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "symbol",
			Message: "must be 1 to 7 uppercase letters",
		})
		assert.Equal(t, "validation failed: symbol: must be 1 to 7 uppercase letters", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "symbol", Message: "bad"})
		errs.Add(validator.ValidationError{Field: "start_date", Message: "worse"})

		msg := errs.Error()
		assert.Contains(t, msg, "symbol: bad")
		assert.Contains(t, msg, "start_date: worse")
		assert.Contains(t, msg, "; ")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "start_date", Message: "must be a valid date", TranslationKey: "validation.date"})
	errs.Add(validator.ValidationError{Field: "symbol", Message: "too long", TranslationKey: "validation.symbol"})
	errs.Add(validator.ValidationError{Field: "start_date", Message: "after end", TranslationKey: "validation.date_not_after"})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("symbol"))
		assert.True(t, errs.Has("start_date"))
		assert.False(t, errs.Has("chart_type"))
	})

	t.Run("get keeps rule order", func(t *testing.T) {
		assert.Equal(t, []string{"must be a valid date", "after end"}, errs.Get("start_date"))
		assert.Nil(t, errs.Get("chart_type"))
	})

	t.Run("get errors", func(t *testing.T) {
		got := errs.GetErrors("start_date")
		require.Len(t, got, 2)
		assert.Equal(t, "validation.date", got[0].TranslationKey)
		assert.Equal(t, "validation.date_not_after", got[1].TranslationKey)
		assert.Empty(t, errs.GetErrors("time_series"))
	})

	t.Run("fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"start_date", "symbol"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidSymbol("symbol", "AAPL"),
			validator.ValidChartType("chart_type", "1"),
		)
		assert.NoError(t, err)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidSymbol("symbol", "aapl"),
			validator.ValidChartType("chart_type", "1"),
			validator.ValidTimeSeries("time_series", "9"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"symbol", "time_series"}, verrs.Fields())
	})

	t.Run("matches ErrValidationFailed", func(t *testing.T) {
		err := validator.Apply(validator.ValidDate("start_date", ""))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorIs(t, fmt.Errorf("quote request: %w", err), validator.ErrValidationFailed)
		assert.NotErrorIs(t, errors.New("validation failed"), validator.ErrValidationFailed)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from wrapped error", func(t *testing.T) {
		err := validator.Apply(validator.ValidSymbol("symbol", ""))
		wrapped := fmt.Errorf("quote request: %w", err)

		verrs := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("symbol"))
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("returns nil for regular error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestRule(t *testing.T) {
	called := 0
	rule := validator.Rule{
		Check: func() bool {
			called++
			return false
		},
		Error: validator.ValidationError{Field: "custom", Message: "nope"},
	}

	err := validator.Apply(rule, rule)
	require.Error(t, err)
	assert.Equal(t, 2, called)
	assert.Len(t, validator.ExtractValidationErrors(err), 2)
}
