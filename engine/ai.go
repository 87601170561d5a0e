package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go-splendor/entities"

	"golang.org/x/exp/rand"
)

var (
	_ Strategy = (*DumbStrategy)(nil) // 编译期断言实现
	_ Strategy = (*RandomStrategy)(nil)
)

// DumbStrategy 最简单的机器人：
// 能买就买（高层优先），否则拿 2 个同色，否则拿 3 个不同色，都不行就跳过
type DumbStrategy struct {
	rng *rand.Rand
}

func NewDumbStrategy(rng *rand.Rand) *DumbStrategy {
	if rng == nil {
		rng = NewRand(0)
	}
	return &DumbStrategy{rng: rng}
}

func (s *DumbStrategy) ChooseAction(ctx context.Context, board BoardView, player PlayerView) (*Action, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for tier := entities.MaxTier; tier >= entities.MinTier; tier-- {
		for _, card := range board.VisibleCards(tier) {
			if player.CanBuyCard(card) {
				action := BuyCard(card, false)
				return &action, nil
			}
		}
	}

	for _, kind := range entities.Gems {
		if board.CanGiveSameTokens(kind) {
			action := PickSameTokens(kind)
			return &action, nil
		}
	}

	bank := board.Bank()
	var kinds []entities.Resource
	for _, kind := range entities.Gems {
		if bank.Get(kind) > 0 && len(kinds) < maxDiffTokens {
			kinds = append(kinds, kind)
		}
	}
	if len(kinds) == maxDiffTokens {
		action := PickDiffTokens(kinds...)
		return &action, nil
	}

	action := Pass()
	return &action, nil
}

func (s *DumbStrategy) ChooseDiscardingTokens(ctx context.Context, player PlayerView) (entities.Resources, error) {
	if err := ctx.Err(); err != nil {
		return entities.Resources{}, err
	}
	return randomDiscard(s.rng, player), nil
}

// ChooseNoble 总是选第一位
func (s *DumbStrategy) ChooseNoble(ctx context.Context, player PlayerView, nobles []*entities.Noble) (*entities.Noble, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(nobles) == 0 {
		return nil, nil
	}
	return nobles[0], nil
}

// RandomStrategy 在所有合法操作中均匀随机选择
type RandomStrategy struct {
	rng *rand.Rand
}

func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	if rng == nil {
		rng = NewRand(0)
	}
	return &RandomStrategy{rng: rng}
}

func (s *RandomStrategy) ChooseAction(ctx context.Context, board BoardView, player PlayerView) (*Action, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	actions := LegalActions(board, player)
	action := actions[s.rng.Intn(len(actions))]
	return &action, nil
}

func (s *RandomStrategy) ChooseDiscardingTokens(ctx context.Context, player PlayerView) (entities.Resources, error) {
	if err := ctx.Err(); err != nil {
		return entities.Resources{}, err
	}
	return randomDiscard(s.rng, player), nil
}

func (s *RandomStrategy) ChooseNoble(ctx context.Context, player PlayerView, nobles []*entities.Noble) (*entities.Noble, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(nobles) == 0 {
		return nil, nil
	}
	return nobles[s.rng.Intn(len(nobles))], nil
}

// randomDiscard 每次随机丢一个持有的宝石，直到剩 10 个。
// 在副本上计算，不修改玩家状态
func randomDiscard(rng *rand.Rand, player PlayerView) entities.Resources {
	var discard entities.Resources
	tokens := player.Tokens()
	for excess := player.TotalTokens() - MaxTokens; excess > 0; excess-- {
		available := tokens.Available()
		kind := available[rng.Intn(len(available))]
		tokens.Update(kind, -1)
		discard.Update(kind, 1)
	}
	return discard
}

// StrategyFactory 按名称创建机器人
type StrategyFactory func(rng *rand.Rand) Strategy

var strategyFactories = map[string]StrategyFactory{
	"dumb":   func(rng *rand.Rand) Strategy { return NewDumbStrategy(rng) },
	"random": func(rng *rand.Rand) Strategy { return NewRandomStrategy(rng) },
}

// NewStrategy 根据名称创建策略，名称不区分大小写
func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	factory, ok := strategyFactories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: 未知的策略 %q，可选: %s", ErrConfiguration, name, strings.Join(StrategyNames(), ", "))
	}
	return factory(rng), nil
}

func StrategyNames() []string {
	names := make([]string, 0, len(strategyFactories))
	for name := range strategyFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
