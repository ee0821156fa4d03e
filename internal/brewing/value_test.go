package brewing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Alchemy_Go/internal/catalog/catalogtest"
	"github.com/osse101/Alchemy_Go/internal/domain"
)

func TestValue(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name   string
		active map[string]domain.ActiveEffect
		want   int
	}{
		{
			name:   "empty",
			active: map[string]domain.ActiveEffect{},
			want:   0,
		},
		{
			name: "restore and fortify health",
			active: map[string]domain.ActiveEffect{
				catalogtest.RestoreHealth: {Name: catalogtest.RestoreHealth, Power: 1, Value: 1},
				catalogtest.FortifyHealth: {Name: catalogtest.FortifyHealth, Power: 1, Value: 1},
			},
			want: 13,
		},
		{
			name: "value multiplier scales base value",
			active: map[string]domain.ActiveEffect{
				catalogtest.FortifyHealth: {Name: catalogtest.FortifyHealth, Power: 1, Value: 2.5},
			},
			want: 27,
		},
		{
			name: "power does not affect value",
			active: map[string]domain.ActiveEffect{
				catalogtest.FortifyHealth: {Name: catalogtest.FortifyHealth, Power: 10, Value: 1},
			},
			want: 11,
		},
		{
			name: "floor is applied to the sum",
			active: map[string]domain.ActiveEffect{
				catalogtest.RestoreHealth:  {Name: catalogtest.RestoreHealth, Power: 1, Value: 1.25},
				catalogtest.Waterbreathing: {Name: catalogtest.Waterbreathing, Power: 1, Value: 1.5},
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Value(tt.active, c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_UnknownEffect(t *testing.T) {
	_, err := Value(map[string]domain.ActiveEffect{"Fortify Nothing": {Name: "Fortify Nothing", Value: 1}}, newTestCatalog(t))
	assert.ErrorIs(t, err, domain.ErrUnknownEffect)
}
