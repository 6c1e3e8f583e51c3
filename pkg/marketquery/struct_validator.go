package marketquery

import (
	"fmt"
	"reflect"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/marketparams/pkg/validator"
)

var tags = map[string]func(string) bool{
	"symbol":      validator.IsValidSymbol,
	"chart_type":  validator.IsValidChartType,
	"time_series": validator.IsValidTimeSeries,
	"ymd_date":    validator.IsValidDate,
}

// RegisterValidations adds the market parameter tags to v. Tagged fields
// must have string kind, so named types such as validator.Symbol work;
// any other kind fails validation.
func RegisterValidations(v *playground.Validate) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, stringFunc(fn)); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return nil
}

// NewStructValidator returns a go-playground validator with the market
// parameter tags registered.
func NewStructValidator() *playground.Validate {
	v := playground.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

func stringFunc(fn func(string) bool) playground.Func {
	return func(fl playground.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return fn(field.String())
	}
}
