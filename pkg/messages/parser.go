package messages

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML document whose top-level keys are language codes,
// each holding a nested map of message templates.
func Parse(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = m
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}
