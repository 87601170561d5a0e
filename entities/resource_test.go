package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcesUpdateSaturatesAtZero(t *testing.T) {
	var r Resources
	r.Set(Ruby, 2)

	r.Update(Ruby, -5)
	assert.Equal(t, 0, r.Get(Ruby))

	r.Update(Ruby, 3)
	r.Update(Ruby, -1)
	assert.Equal(t, 2, r.Get(Ruby))
}

func TestResourcesAvailableKeepsEnumOrder(t *testing.T) {
	r := NewResources(0, 1, 0, 2, 1)
	r.Set(Gold, 1)

	assert.Equal(t, []Resource{Sapphire, Onyx, Ruby, Gold}, r.Available())
	assert.Equal(t, 5, r.Total())
}

func TestResourcesAvailableEmpty(t *testing.T) {
	var r Resources
	assert.Empty(t, r.Available())
	assert.True(t, r.IsZero())
	assert.Equal(t, "none", r.String())
}

func TestResourcesAdd(t *testing.T) {
	a := NewResources(1, 0, 2, 0, 0)
	a.Add(NewResources(0, 3, -5, 0, 1))

	assert.Equal(t, NewResources(1, 3, 0, 0, 1), a)
}

func TestParseResource(t *testing.T) {
	tests := []struct {
		in   string
		want Resource
	}{
		{"DIAMOND", Diamond},
		{"sapphire", Sapphire},
		{" Emerald ", Emerald},
		{"onyx", Onyx},
		{"Ruby", Ruby},
		{"gold", Gold},
	}
	for _, tt := range tests {
		got, err := ParseResource(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseResource("topaz")
	assert.Error(t, err)
}

func TestResourceString(t *testing.T) {
	assert.Equal(t, "gold", Gold.String())
	assert.True(t, Gold.IsGold())
	assert.False(t, Resource(9).Valid())
	assert.Equal(t, "Resource(9)", Resource(9).String())
}

func TestResourcesMap(t *testing.T) {
	r := NewResources(1, 2, 3, 4, 5)
	m := r.Map()
	assert.Len(t, m, NumResources)
	assert.Equal(t, 3, m["emerald"])
	assert.Equal(t, 0, m["gold"])
}
