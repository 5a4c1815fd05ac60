// internal/domain/claim/category_test.go
package claim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	got, err := ParseCategory("glas")
	require.NoError(t, err)
	assert.Equal(t, CategoryGlass, got)

	got, err = ParseCategory("keys")
	require.NoError(t, err)
	assert.Equal(t, CategoryKeys, got)

	_, err = ParseCategory("locks")
	assert.Error(t, err)
	_, err = ParseCategory("")
	assert.Error(t, err)
}

func TestCategoryTables(t *testing.T) {
	assert.Equal(t, "glas_claims", CategoryGlass.Table())
	assert.Equal(t, "key_claims", CategoryKeys.Table())
}

func TestOnlyGlassHasPhotos(t *testing.T) {
	assert.True(t, CategoryGlass.HasPhotos())
	assert.False(t, CategoryKeys.HasPhotos())
}

func TestCategoryFetchErrorMessages(t *testing.T) {
	assert.Equal(t, "Kunde inte hämta glasskador", CategoryGlass.FetchErrorMessage())
	assert.Equal(t, "Kunde inte hämta nycklar", CategoryKeys.FetchErrorMessage())
}

func TestParseStatus(t *testing.T) {
	for _, s := range StatusOptions() {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("Klar")
	assert.Error(t, err)
	_, err = ParseStatus("")
	assert.Error(t, err)
}
