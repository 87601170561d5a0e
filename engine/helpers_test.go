package engine

import (
	"context"
	"testing"

	"go-splendor/const_data"
	"go-splendor/entities"

	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, nbPlayers int, seed uint64) *Board {
	t.Helper()
	records, err := const_data.Default()
	require.NoError(t, err)
	b, err := NewBoard(nbPlayers, records, NewRand(seed))
	require.NoError(t, err)
	return b
}

// giveTokens 从银行转给玩家，保持守恒
func giveTokens(b *Board, p *Player, kind entities.Resource, n int) {
	b.updateBank(kind, -n)
	p.updateTokens(kind, n)
}

// giveBonus 直接给玩家若干张某颜色的 0 分卡
func giveBonus(p *Player, kind entities.Resource, n int) {
	for i := 0; i < n; i++ {
		p.purchasedCards = append(p.purchasedCards, &entities.DevCard{ID: 1000 + len(p.purchasedCards), Tier: 1, Bonus: kind})
	}
}

func newCard(id, tier, points int, bonus entities.Resource, cost entities.Resources) *entities.DevCard {
	return &entities.DevCard{ID: id, Tier: tier, Cost: cost, Points: points, Bonus: bonus}
}

// scriptedStrategy 按顺序返回预设的操作，用完后一直 Pass
type scriptedStrategy struct {
	actions  []*Action
	discards []entities.Resources
	noble    func(nobles []*entities.Noble) *entities.Noble

	actionCalls  int
	discardCalls int
	nobleCalls   int
}

func (s *scriptedStrategy) ChooseAction(_ context.Context, _ BoardView, _ PlayerView) (*Action, error) {
	s.actionCalls++
	if len(s.actions) == 0 {
		a := Pass()
		return &a, nil
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a, nil
}

func (s *scriptedStrategy) ChooseDiscardingTokens(_ context.Context, _ PlayerView) (entities.Resources, error) {
	s.discardCalls++
	if len(s.discards) == 0 {
		return entities.Resources{}, nil
	}
	d := s.discards[0]
	s.discards = s.discards[1:]
	return d, nil
}

func (s *scriptedStrategy) ChooseNoble(_ context.Context, _ PlayerView, nobles []*entities.Noble) (*entities.Noble, error) {
	s.nobleCalls++
	if s.noble != nil {
		return s.noble(nobles), nil
	}
	return nobles[len(nobles)-1], nil
}

func actionPtr(a Action) *Action {
	return &a
}

func newTestGame(t *testing.T, board *Board, strategies ...Strategy) *Game {
	t.Helper()
	seats := make([]Seat, len(strategies))
	for i, s := range strategies {
		seats[i] = Seat{Player: NewPlayer(i+1, "P"+string(rune('1'+i))), Strategy: s}
	}
	g, err := NewGame("test", board, seats)
	require.NoError(t, err)
	return g
}

// placeCard 把测试卡放到明牌区并登记到卡牌表，原来的卡放回牌堆底
func placeCard(b *Board, col int, card *entities.DevCard) {
	t := card.Tier - 1
	if old := b.visible[t][col]; old != nil {
		b.stacks[t] = append([]*entities.DevCard{old}, b.stacks[t]...)
	}
	b.visible[t][col] = card
	b.catalog[card] = true
}

// adoptCards 把测试里直接发给玩家的卡登记到卡牌表
func adoptCards(b *Board, cards ...*entities.DevCard) {
	for _, card := range cards {
		b.catalog[card] = true
	}
}
