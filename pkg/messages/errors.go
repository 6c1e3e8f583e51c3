package messages

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse YAML translations")
	ErrInvalidStructure  = errors.New("invalid translation structure")
	ErrNoTranslations    = errors.New("no translations found")
)
