package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Alchemy_Go/internal/domain"
)

func TestLoadFile(t *testing.T) {
	for _, path := range []string{"testdata/catalog.yaml", "testdata/catalog.json"} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			c, err := LoadFile(path)
			require.NoError(t, err)

			assert.Equal(t, 3, c.EffectCount())
			assert.Equal(t, 2, c.IngredientCount())

			wheat, ok := c.Ingredient("Wheat")
			require.True(t, ok)
			slot, ok := wheat.Slot("Fortify Health")
			require.True(t, ok)
			assert.Equal(t, domain.DefaultMultiplier, slot.Power, "omitted multipliers default to 1.0")

			bmf, _ := c.Ingredient("Blue Mountain Flower")
			slot, _ = bmf.Slot("Fortify Health")
			assert.Equal(t, 1.5, slot.Value)
		})
	}
}

func TestLoadFile_FormatsAgree(t *testing.T) {
	fromYAML, err := LoadFile("testdata/catalog.yaml")
	require.NoError(t, err)
	fromJSON, err := LoadFile("testdata/catalog.json")
	require.NoError(t, err)

	assert.Equal(t, fromYAML.Version(), fromJSON.Version())
}

func TestLoader_Load_Errors(t *testing.T) {
	l, err := NewLoader()
	require.NoError(t, err)

	t.Run("missing file", func(t *testing.T) {
		_, err := l.Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := l.Load("catalog.toml")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoader_Parse(t *testing.T) {
	l, err := NewLoader()
	require.NoError(t, err)

	tests := []struct {
		name     string
		format   Format
		data     string
		wantErr  bool
		contains string
	}{
		{
			name:   "valid json",
			format: FormatJSON,
			data:   `{"effects":[{"name":"A","cost":1}],"ingredients":[]}`,
		},
		{
			name:     "missing effects",
			format:   FormatJSON,
			data:     `{"ingredients":[]}`,
			wantErr:  true,
			contains: "required",
		},
		{
			name:     "zero cost",
			format:   FormatJSON,
			data:     `{"effects":[{"name":"A","cost":0}],"ingredients":[]}`,
			wantErr:  true,
			contains: "exclusiveMinimum",
		},
		{
			name:     "fractional duration",
			format:   FormatJSON,
			data:     `{"effects":[{"name":"A","cost":1,"dur":1.5}],"ingredients":[]}`,
			wantErr:  true,
			contains: "/effects/0/dur",
		},
		{
			name:     "five slots",
			format:   FormatYAML,
			data:     "effects: [{name: A, cost: 1}]\ningredients:\n  - name: X\n    effects: [{name: A}, {name: A}, {name: A}, {name: A}, {name: A}]\n",
			wantErr:  true,
			contains: "maxItems",
		},
		{
			name:     "malformed yaml",
			format:   FormatYAML,
			data:     "effects: [",
			wantErr:  true,
			contains: "failed to parse catalog",
		},
		{
			name:   "valid yaml",
			format: FormatYAML,
			data:   "effects:\n  - name: A\n    cost: 2\ningredients: []\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := l.Parse([]byte(tt.data), tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.contains)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, doc)
			assert.Len(t, doc.Effects, 1)
		})
	}
}

func TestLoader_Build_UnknownEffect(t *testing.T) {
	l, err := NewLoader()
	require.NoError(t, err)

	doc, err := l.Parse([]byte(`{
		"effects":[{"name":"A","cost":1}],
		"ingredients":[{"name":"X","effects":[{"name":"B"}]}]
	}`), FormatJSON)
	require.NoError(t, err)

	_, err = l.Build(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownEffect)

	_, err = l.Build(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("x/CATALOG.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("catalog.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = FormatFromPath("catalog")
	assert.Error(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadFile_ShippedCatalog(t *testing.T) {
	c, err := LoadFile("../../configs/alchemy/catalog.yaml")
	require.NoError(t, err)

	assert.Equal(t, 55, c.EffectCount())
	assert.Equal(t, 93, c.IngredientCount())

	carriers := c.IngredientsWithAnyEffect([]string{"Waterbreathing"})
	names := make([]string, len(carriers))
	for i, ing := range carriers {
		names[i] = ing.Name
	}
	assert.Equal(t, []string{"Chicken's Egg", "Hawk's Egg", "Histcarp", "Nordic Barnacle", "Salmon Roe"}, names)

	ing, err := c.ResolveIngredient("river betty")
	require.NoError(t, err)
	assert.True(t, ing.Buffed())
}
