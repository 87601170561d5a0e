package engine

import (
	"errors"
	"fmt"

	"go-splendor/entities"

	"go.uber.org/multierr"
)

var ErrInvariant = errors.New("局面不一致")

// CheckInvariants 检查宝石守恒、卡牌守恒、持有上限、明牌区、预定上限和贵族唯一性，一次返回所有问题
func CheckInvariants(b *Board, players []*Player) error {
	var errs error
	fail := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
	}

	total := b.bank
	for _, p := range players {
		total.Add(p.tokens)
		if p.TotalTokens() > MaxTokens {
			fail("玩家 %d 持有 %d 个宝石", p.ID(), p.TotalTokens())
		}
		if len(p.reservedCards) > MaxReserved {
			fail("玩家 %d 预定了 %d 张卡", p.ID(), len(p.reservedCards))
		}
	}
	for i := range total {
		kind := entities.Resource(i)
		if total.Get(kind) != b.initialBank.Get(kind) {
			fail("%s 总数 %d，初始 %d", kind, total.Get(kind), b.initialBank.Get(kind))
		}
	}

	for t := range b.visible {
		for col, card := range b.visible[t] {
			if card == nil && len(b.stacks[t]) > 0 {
				fail("第 %d 层第 %d 列为空但牌堆还有 %d 张", t+1, col+1, len(b.stacks[t]))
			}
			if card != nil && card.Tier != t+1 {
				fail("%s 出现在第 %d 层", card, t+1)
			}
		}
	}

	// 每张发展卡恰好在一个位置：牌堆、明牌区、待放置、某位玩家的预定区或已购买区
	places := make(map[*entities.DevCard]int, len(b.catalog))
	for t := range b.stacks {
		for _, card := range b.stacks[t] {
			places[card]++
		}
		for _, card := range b.visible[t] {
			if card != nil {
				places[card]++
			}
		}
	}
	for card := range b.drawn {
		places[card]++
	}
	for _, p := range players {
		for _, card := range p.reservedCards {
			places[card]++
		}
		for _, card := range p.purchasedCards {
			places[card]++
		}
	}
	for card, n := range places {
		switch {
		case !b.catalog[card]:
			fail("%s 不在卡牌表中", card)
		case n > 1:
			fail("%s 同时出现在 %d 个位置", card, n)
		}
	}
	for card := range b.catalog {
		if places[card] == 0 {
			fail("%s 丢失", card)
		}
	}

	seen := make(map[*entities.Noble]string)
	for _, n := range b.nobles {
		seen[n] = "桌面"
	}
	for _, p := range players {
		for _, n := range p.nobles {
			owner := fmt.Sprintf("玩家 %d", p.ID())
			if prev, ok := seen[n]; ok {
				fail("%s 同时属于%s和%s", n, prev, owner)
			}
			seen[n] = owner
		}
	}
	return errs
}

func (g *Game) CheckInvariants() error {
	return CheckInvariants(g.board, g.players())
}
