package i18n

import "errors"

var (
	// ErrFailedToParseYAML is returned when a catalog is not valid YAML.
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")

	// ErrInvalidCatalog is returned when a catalog does not map language codes to key trees.
	ErrInvalidCatalog = errors.New("invalid translation catalog")

	// ErrNoTranslations is returned when a translator is built without any language.
	ErrNoTranslations = errors.New("no translations provided")
)
