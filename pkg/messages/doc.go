// Package messages turns validator.ValidationErrors into localized,
// human-readable messages.
//
// Templates live in YAML files keyed by language, then by the dotted
// translation key carried by each ValidationError. Placeholders use the
// %{name} form and are filled from the error's TranslationValues:
//
//	en:
//	  validation:
//	    symbol: "%{field} must be %{min} to %{max} uppercase letters"
//
// English and German templates are bundled and available through Default.
package messages
