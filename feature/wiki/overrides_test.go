package wiki_test

import (
	"testing"

	"data-exporter/feature/wiki"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrides_WikiName(t *testing.T) {
	o := wiki.DefaultOverrides()

	tests := []struct {
		rowName string
		name    string
		want    string
	}{
		{"glue", "Glue", "Glue"},
		{"glue", `"Sticky" Glue`, "Sticky Glue"},
		{"nuts", "Nuts & Bolts", "Nuts and Bolts"},
		{"rnd", "R&D Terminal", "RD Terminal"},
		{"solder", "Solder", "Solder (Material)"},
		{"soup_solder", "Solder", "Solder (Soup)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, o.WikiName(tt.rowName, tt.name))
		})
	}

	assert.Equal(t, "Nuts & Bolts", o.RawName("nuts", `"Nuts & Bolts"`))
}

func TestOverrides_IsIgnored(t *testing.T) {
	o := wiki.DefaultOverrides()

	assert.True(t, o.IsIgnored("tutorialheater", "Heater"))
	assert.True(t, o.IsIgnored("Painting_Square", "Colorful Abstract Painting (Regular)"))
	assert.False(t, o.IsIgnored("heater", "Heater"))
}

func TestOverrides_Status(t *testing.T) {
	o := wiki.DefaultOverrides()

	assert.Equal(t, "Chilly", o.Status("Debuff_Frost"))
	assert.Equal(t, "Buff_Unmapped", o.Status("Buff_Unmapped"))
}

func TestLoadOverrides(t *testing.T) {
	t.Run("EmptyPathReturnsDefaults", func(t *testing.T) {
		got, err := wiki.LoadOverrides(afero.NewMemMapFs(), "")
		require.NoError(t, err)
		assert.Equal(t, wiki.DefaultOverrides(), got)
	})

	t.Run("FileSectionsReplaceDefaults", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/overrides.yaml", []byte(`
ignoredItems:
  - glue
nameOverrides:
  glue: Super Glue
allowedLiquids: []
`), 0o644))

		got, err := wiki.LoadOverrides(fs, "/overrides.yaml")
		require.NoError(t, err)

		defaults := wiki.DefaultOverrides()
		assert.Equal(t, []string{"glue"}, got.IgnoredItems)
		assert.Equal(t, map[string]string{"glue": "Super Glue"}, got.NameOverrides)
		assert.Empty(t, got.AllowedLiquids)
		assert.Equal(t, defaults.GearSlots, got.GearSlots)
		assert.Equal(t, defaults.Statuses, got.Statuses)
		assert.Equal(t, defaults.Categories, got.Categories)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := wiki.LoadOverrides(afero.NewMemMapFs(), "/nope.yaml")
		assert.Error(t, err)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("ignoredItems: {"), 0o644))

		_, err := wiki.LoadOverrides(fs, "/bad.yaml")
		assert.ErrorContains(t, err, "failed to decode overrides")
	})
}
