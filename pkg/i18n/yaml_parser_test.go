package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/curp/pkg/i18n"
)

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("valid catalog", func(t *testing.T) {
		catalog, err := i18n.ParseYAML([]byte("es:\n  date:\n    invalid_month: \"Mes inválido\"\n"))
		require.NoError(t, err)
		require.Contains(t, catalog, "es")
		date, ok := catalog["es"]["date"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Mes inválido", date["invalid_month"])
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := i18n.ParseYAML([]byte("es: [unclosed"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("language must map to a tree", func(t *testing.T) {
		_, err := i18n.ParseYAML([]byte("es: \"hola\"\n"))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := i18n.ParseYAML([]byte(""))
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a := map[string]map[string]any{"en": {"date": "a"}, "es": {"date": "b"}}
	b := map[string]map[string]any{"en": {"curp": "c", "date": "override"}}

	merged := i18n.Merge(a, b)
	assert.Equal(t, "override", merged["en"]["date"])
	assert.Equal(t, "c", merged["en"]["curp"])
	assert.Equal(t, "b", merged["es"]["date"])
	assert.Equal(t, "a", a["en"]["date"], "inputs are not modified")
}
