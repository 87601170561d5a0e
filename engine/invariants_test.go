package engine

import (
	"testing"

	"go-splendor/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInvariantsCardConservation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board, p *Player)
		ok    bool
	}{
		{
			name:  "fresh board",
			setup: func(b *Board, p *Player) {},
			ok:    true,
		},
		{
			name: "drawn card not yet placed",
			setup: func(b *Board, p *Player) {
				b.DrawCard(1)
			},
			ok: true,
		},
		{
			name: "card outside the catalog",
			setup: func(b *Board, p *Player) {
				p.addReservedCard(newCard(9999, 3, 5, entities.Ruby, entities.Resources{}))
			},
		},
		{
			name: "card in two places",
			setup: func(b *Board, p *Player) {
				p.addPurchasedCard(b.Card(1, 0))
			},
		},
		{
			name: "card lost",
			setup: func(b *Board, p *Player) {
				b.stacks[2] = b.stacks[2][1:]
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, 2, 1)
			p := NewPlayer(1, "P1")
			tt.setup(b, p)

			err := CheckInvariants(b, []*Player{p})
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvariant)
		})
	}
}
