package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Alchemy_Go/internal/catalog/catalogtest"
	"github.com/osse101/Alchemy_Go/internal/domain"
)

func newFixtureCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(catalogtest.Effects(), catalogtest.Ingredients())
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c := newFixtureCatalog(t)

	assert.Equal(t, len(catalogtest.Effects()), c.EffectCount())
	assert.Equal(t, len(catalogtest.Ingredients()), c.IngredientCount())
	assert.Len(t, c.Version(), VersionLength)

	wheat, ok := c.Ingredient(catalogtest.Wheat)
	require.True(t, ok)
	assert.True(t, wheat.HasEffect(catalogtest.FortifyHealth))

	_, ok = c.Effect("Nope")
	assert.False(t, ok)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(effects []domain.Effect, ings []domain.Ingredient) ([]domain.Effect, []domain.Ingredient)
		wantErr error
	}{
		{
			name: "slot references missing effect",
			mutate: func(e []domain.Effect, i []domain.Ingredient) ([]domain.Effect, []domain.Ingredient) {
				i[0].Effects[0].Name = "Fortify Nonsense"
				return e, i
			},
			wantErr: domain.ErrUnknownEffect,
		},
		{
			name: "duplicate ingredient",
			mutate: func(e []domain.Effect, i []domain.Ingredient) ([]domain.Effect, []domain.Ingredient) {
				return e, append(i, i[0])
			},
			wantErr: ErrDuplicateName,
		},
		{
			name: "duplicate effect",
			mutate: func(e []domain.Effect, i []domain.Ingredient) ([]domain.Effect, []domain.Ingredient) {
				return append(e, e[0]), i
			},
			wantErr: ErrDuplicateName,
		},
		{
			name: "zero cost",
			mutate: func(e []domain.Effect, i []domain.Ingredient) ([]domain.Effect, []domain.Ingredient) {
				e[0].Cost = 0
				return e, i
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "negative magnitude",
			mutate: func(e []domain.Effect, i []domain.Ingredient) ([]domain.Effect, []domain.Ingredient) {
				e[1].Magnitude = -1
				return e, i
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "blank ingredient name",
			mutate: func(e []domain.Effect, i []domain.Ingredient) ([]domain.Effect, []domain.Ingredient) {
				i[2].Name = "  "
				return e, i
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "five effect slots",
			mutate: func(e []domain.Effect, i []domain.Ingredient) ([]domain.Effect, []domain.Ingredient) {
				i[0].Effects = append(i[0].Effects, domain.EffectSlot{Name: catalogtest.Frenzy})
				return e, i
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "repeated slot effect",
			mutate: func(e []domain.Effect, i []domain.Ingredient) ([]domain.Effect, []domain.Ingredient) {
				i[0].Effects[1].Name = i[0].Effects[0].Name
				return e, i
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "negative multiplier",
			mutate: func(e []domain.Effect, i []domain.Ingredient) ([]domain.Effect, []domain.Ingredient) {
				i[0].Effects[0].Value = -2
				return e, i
			},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effects, ings := tt.mutate(catalogtest.Effects(), catalogtest.Ingredients())
			_, err := New(effects, ings)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_FewerThanFourSlots(t *testing.T) {
	ings := []domain.Ingredient{{
		Name:    "Single",
		Effects: []domain.EffectSlot{{Name: catalogtest.RestoreHealth}},
	}}

	c, err := New(catalogtest.Effects(), ings)
	require.NoError(t, err)

	ing, ok := c.Ingredient("Single")
	require.True(t, ok)
	assert.Len(t, ing.Effects, 1)
}

func TestNew_DefaultsMultipliers(t *testing.T) {
	ings := catalogtest.Ingredients()
	ings[0].Effects[0].Power = 0
	ings[0].Effects[0].Value = 0

	c, err := New(catalogtest.Effects(), ings)
	require.NoError(t, err)

	ing, _ := c.Ingredient(ings[0].Name)
	assert.Equal(t, domain.DefaultMultiplier, ing.Effects[0].Power)
	assert.Equal(t, domain.DefaultMultiplier, ing.Effects[0].Value)
	// caller's slice is untouched
	assert.Zero(t, ings[0].Effects[0].Power)
}

func TestVersion(t *testing.T) {
	a := newFixtureCatalog(t)
	b := newFixtureCatalog(t)
	assert.Equal(t, a.Version(), b.Version(), "same content gives same version")

	// input order does not matter
	ings := catalogtest.Ingredients()
	ings[0], ings[1] = ings[1], ings[0]
	c, err := New(catalogtest.Effects(), ings)
	require.NoError(t, err)
	assert.Equal(t, a.Version(), c.Version())

	ings = catalogtest.Ingredients()
	ings[0].Effects[0].Value = 2
	d, err := New(catalogtest.Effects(), ings)
	require.NoError(t, err)
	assert.NotEqual(t, a.Version(), d.Version())
}

func TestResolveIngredient(t *testing.T) {
	c := newFixtureCatalog(t)

	t.Run("exact", func(t *testing.T) {
		ing, err := c.ResolveIngredient(catalogtest.BlueMountainFlower)
		require.NoError(t, err)
		assert.Equal(t, catalogtest.BlueMountainFlower, ing.Name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		ing, err := c.ResolveIngredient("  blue MOUNTAIN flower ")
		require.NoError(t, err)
		assert.Equal(t, catalogtest.BlueMountainFlower, ing.Name)
	})

	t.Run("unknown with suggestion", func(t *testing.T) {
		_, err := c.ResolveIngredient("Wheet")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownIngredient)

		var unknown *UnknownNameError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "Wheet", unknown.Name)
		assert.Contains(t, unknown.Suggestions, catalogtest.Wheat)
		assert.Contains(t, err.Error(), `did you mean "Wheat"`)
	})

	t.Run("unknown without suggestion", func(t *testing.T) {
		_, err := c.ResolveIngredient("NOT-AN-INGREDIENT")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownIngredient)

		var unknown *UnknownNameError
		require.True(t, errors.As(err, &unknown))
		assert.Empty(t, unknown.Suggestions)
	})
}

func TestResolveEffect(t *testing.T) {
	c := newFixtureCatalog(t)

	e, err := c.ResolveEffect("waterbreathing")
	require.NoError(t, err)
	assert.Equal(t, catalogtest.Waterbreathing, e.Name)

	_, err = c.ResolveEffect("Water Breathing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEffectNotFound)
	assert.Contains(t, err.Error(), catalogtest.Waterbreathing)
}

func TestEffects_Filter(t *testing.T) {
	c := newFixtureCatalog(t)

	all := c.Effects(EffectFilter{})
	require.Len(t, all, c.EffectCount())
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}

	for _, e := range c.Effects(EffectFilter{School: "alteration"}) {
		assert.Equal(t, "Alteration", e.School)
	}

	harmful := c.Effects(EffectFilter{Type: domain.EffectTypeHarmful, School: "Illusion"})
	require.Len(t, harmful, 1)
	assert.Equal(t, catalogtest.Frenzy, harmful[0].Name)
}

func TestIngredients_Filter(t *testing.T) {
	c := newFixtureCatalog(t)

	withHealth := c.Ingredients(IngredientFilter{
		Effects: []string{catalogtest.RestoreHealth, catalogtest.FortifyHealth},
	})
	names := make([]string, len(withHealth))
	for i, ing := range withHealth {
		names[i] = ing.Name
	}
	assert.Equal(t, []string{catalogtest.BlueMountainFlower, catalogtest.Wheat}, names)

	farmable := true
	for _, ing := range c.Ingredients(IngredientFilter{Farmable: &farmable}) {
		assert.True(t, ing.Farmable)
	}
}

func TestIngredientsWithAnyEffect(t *testing.T) {
	c := newFixtureCatalog(t)

	got := c.IngredientsWithAnyEffect([]string{catalogtest.Waterbreathing})
	names := make([]string, len(got))
	for i, ing := range got {
		names[i] = ing.Name
	}
	assert.Equal(t, []string{
		catalogtest.ChickensEgg,
		catalogtest.HawksEgg,
		catalogtest.Histcarp,
		catalogtest.NordicBarnacle,
		catalogtest.SalmonRoe,
	}, names)

	assert.Empty(t, c.IngredientsWithAnyEffect(nil))
}
