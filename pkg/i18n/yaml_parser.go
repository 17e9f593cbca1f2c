package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a catalog whose top-level keys are language codes:
//
//	es:
//	  date:
//	    invalid_month: "Mes inválido"
//
// Several catalogs can be parsed separately and combined with Merge.
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidCatalog, lang, val)
		}
		result[lang] = tree
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

// Merge combines catalogs. Later catalogs win on conflicting top-level keys
// within the same language.
func Merge(catalogs ...map[string]map[string]any) map[string]map[string]any {
	out := make(map[string]map[string]any)
	for _, catalog := range catalogs {
		for lang, tree := range catalog {
			if out[lang] == nil {
				out[lang] = make(map[string]any, len(tree))
			}
			for k, v := range tree {
				out[lang][k] = v
			}
		}
	}
	return out
}
