package engine

import (
	"testing"

	"go-splendor/const_data"
	"go-splendor/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	tests := []struct {
		players int
		perGem  int
	}{
		{2, 4},
		{3, 5},
		{4, 7},
	}
	for _, tt := range tests {
		b := newTestBoard(t, tt.players, 1)

		bank := b.Bank()
		for _, kind := range entities.Gems {
			assert.Equal(t, tt.perGem, bank.Get(kind), "%d players %s", tt.players, kind)
		}
		assert.Equal(t, 5, bank.Get(entities.Gold))
		assert.Equal(t, bank, b.InitialBank())

		assert.Len(t, b.Nobles(), tt.players+1)
		assert.Equal(t, tt.players+1, b.NobleSlots())

		assert.Equal(t, 36, b.StackSize(1))
		assert.Equal(t, 26, b.StackSize(2))
		assert.Equal(t, 16, b.StackSize(3))
		for tier := entities.MinTier; tier <= entities.MaxTier; tier++ {
			cards := b.VisibleCards(tier)
			require.Len(t, cards, GridColumns)
			for col, card := range cards {
				assert.Equal(t, tier, card.Tier)
				assert.Same(t, card, b.Card(tier, col))
			}
		}
		assert.NoError(t, CheckInvariants(b, nil))
	}
}

func TestNewBoardSeedIsReproducible(t *testing.T) {
	a := newTestBoard(t, 3, 99)
	b := newTestBoard(t, 3, 99)
	for tier := entities.MinTier; tier <= entities.MaxTier; tier++ {
		for col := 0; col < GridColumns; col++ {
			assert.Equal(t, a.Card(tier, col).ID, b.Card(tier, col).ID)
		}
	}
	for i, n := range a.Nobles() {
		assert.Equal(t, n.ID, b.Nobles()[i].ID)
	}
}

func TestNewBoardErrors(t *testing.T) {
	records, err := const_data.Default()
	require.NoError(t, err)

	for _, n := range []int{0, 1, 5} {
		_, err := NewBoard(n, records, NewRand(1))
		assert.ErrorIs(t, err, ErrConfiguration, "%d players", n)
	}

	_, err = NewBoard(2, nil, NewRand(1))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestBoardOutOfRange(t *testing.T) {
	b := newTestBoard(t, 2, 1)
	assert.Nil(t, b.Card(0, 0))
	assert.Nil(t, b.Card(4, 0))
	assert.Nil(t, b.Card(1, GridColumns))
	assert.Nil(t, b.VisibleCards(0))
	assert.Zero(t, b.StackSize(4))
	assert.False(t, b.CanDrawPile(0))
	assert.Nil(t, b.DrawCard(4))
}

func TestCanGiveTokens(t *testing.T) {
	b := newTestBoard(t, 2, 1)

	assert.True(t, b.CanGiveSameTokens(entities.Ruby))
	assert.False(t, b.CanGiveSameTokens(entities.Gold))
	b.updateBank(entities.Ruby, -1)
	assert.False(t, b.CanGiveSameTokens(entities.Ruby), "bank has only 3")

	assert.True(t, b.CanGiveDiffTokens([]entities.Resource{entities.Diamond}))
	assert.True(t, b.CanGiveDiffTokens([]entities.Resource{entities.Diamond, entities.Onyx, entities.Ruby}))
	assert.False(t, b.CanGiveDiffTokens(nil))
	assert.False(t, b.CanGiveDiffTokens([]entities.Resource{entities.Diamond, entities.Diamond}))
	assert.False(t, b.CanGiveDiffTokens([]entities.Resource{entities.Diamond, entities.Gold}))
	assert.False(t, b.CanGiveDiffTokens([]entities.Resource{entities.Diamond, entities.Onyx, entities.Ruby, entities.Emerald}))

	b.updateBank(entities.Emerald, -4)
	assert.False(t, b.CanGiveDiffTokens([]entities.Resource{entities.Diamond, entities.Emerald}))
}

func TestCanObtainNobleUsesBonusesOnly(t *testing.T) {
	b := newTestBoard(t, 2, 1)
	noble := &entities.Noble{ID: 1, Cost: entities.NewResources(0, 4, 4, 0, 0), Points: 3}
	p := NewPlayer(1, "P1")

	giveTokens(b, p, entities.Sapphire, 4)
	giveTokens(b, p, entities.Emerald, 4)
	assert.False(t, b.CanObtainNoble(noble, p), "tokens do not count")

	giveBonus(p, entities.Sapphire, 4)
	giveBonus(p, entities.Emerald, 3)
	assert.False(t, b.CanObtainNoble(noble, p))

	giveBonus(p, entities.Emerald, 1)
	assert.True(t, b.CanObtainNoble(noble, p))
	assert.False(t, b.CanObtainNoble(nil, p))
}

func TestUpdateCardRefillsFromStack(t *testing.T) {
	b := newTestBoard(t, 2, 1)
	card := b.Card(3, 2)
	size := b.StackSize(3)

	require.True(t, b.UpdateCard(card))
	assert.False(t, b.IsVisible(card))
	assert.NotNil(t, b.Card(3, 2))
	assert.Equal(t, size-1, b.StackSize(3))
	assert.False(t, b.UpdateCard(card), "card is no longer on the grid")

	// 牌堆摸完后空位保持为 nil
	for b.CanDrawPile(3) {
		require.NotNil(t, b.DrawCard(3))
	}
	card = b.Card(3, 0)
	require.True(t, b.UpdateCard(card))
	assert.Nil(t, b.Card(3, 0))
	assert.Len(t, b.VisibleCards(3), GridColumns-1)
	assert.Nil(t, b.DrawCard(3))
}

func TestRemoveNobleIsIdempotent(t *testing.T) {
	b := newTestBoard(t, 2, 1)
	nobles := b.Nobles()
	target := nobles[1]

	assert.True(t, b.RemoveNoble(target))
	assert.Len(t, b.Nobles(), len(nobles)-1)
	assert.NotContains(t, b.Nobles(), target)

	assert.False(t, b.RemoveNoble(target))
	assert.Len(t, b.Nobles(), len(nobles)-1)
	assert.Equal(t, len(nobles), b.NobleSlots())
	assert.Len(t, nobles, 3, "callers keep their own copy")
}
