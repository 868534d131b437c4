package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguagesSorted(t *testing.T) {
	items := NewRegistry().Languages()
	require.NotEmpty(t, items)

	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].Name, items[i].Name)
	}
}

func TestExtensionsForLanguageCaseInsensitive(t *testing.T) {
	registry := NewRegistry()

	exts, ok := registry.ExtensionsForLanguage("RUST")
	require.True(t, ok)
	assert.Equal(t, []string{"rs"}, exts)

	_, ok = registry.ExtensionsForLanguage("cobol")
	assert.False(t, ok)
}

func TestExpand(t *testing.T) {
	registry := NewRegistry()

	exts, err := registry.Expand([]string{"rs", ".md", "rs"}, []string{"go", "Rust"})
	require.NoError(t, err)
	assert.Equal(t, []string{"rs", "md", "go"}, exts)
}

func TestExpandUnknownLanguage(t *testing.T) {
	_, err := NewRegistry().Expand(nil, []string{"cobol"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cobol")
}

func TestExpandDoesNotMutatePreset(t *testing.T) {
	registry := NewRegistry()

	exts, ok := registry.ExtensionsForLanguage("go")
	require.True(t, ok)
	exts[0] = "mutated"

	again, _ := registry.ExtensionsForLanguage("go")
	assert.Equal(t, []string{"go"}, again)
}
