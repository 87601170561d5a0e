package engine

import (
	"errors"
	"fmt"
	"strings"

	"go-splendor/entities"
)

var (
	ErrIllegalAction = errors.New("非法操作")
	ErrCapacity      = errors.New("超出容量限制")
)

// ActionKind 操作类型
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionPickSameTokens
	ActionPickDiffTokens
	ActionBuyCard
	ActionReserveCard
	ActionDiscardTokens
	ActionPass
)

var actionKindNames = map[ActionKind]string{
	ActionPickSameTokens: "pick_same_tokens",
	ActionPickDiffTokens: "pick_diff_tokens",
	ActionBuyCard:        "buy_card",
	ActionReserveCard:    "reserve_card",
	ActionDiscardTokens:  "discard_tokens",
	ActionPass:           "pass",
}

func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action 一次操作的参数，只使用与 Kind 对应的字段，执行一次即丢弃
type Action struct {
	Kind ActionKind

	Resource  entities.Resource   // PickSameTokens
	Resources []entities.Resource // PickDiffTokens

	Card         *entities.DevCard // BuyCard / ReserveCard
	FromReserved bool              // BuyCard：从自己的预定区购买
	FromDeck     bool              // ReserveCard：暗牌预定
	Tier         int               // ReserveCard：FromDeck 且 Card 为 nil 时由 Apply 从该层牌堆摸牌

	Amounts entities.Resources // DiscardTokens
}

func PickSameTokens(kind entities.Resource) Action {
	return Action{Kind: ActionPickSameTokens, Resource: kind}
}

func PickDiffTokens(kinds ...entities.Resource) Action {
	return Action{Kind: ActionPickDiffTokens, Resources: kinds}
}

func BuyCard(card *entities.DevCard, fromReserved bool) Action {
	return Action{Kind: ActionBuyCard, Card: card, FromReserved: fromReserved}
}

// ReserveCard 预定明牌；fromDeck 为 true 时 card 必须是 Board.DrawCard 摸出且尚未放置的卡
func ReserveCard(card *entities.DevCard, fromDeck bool) Action {
	return Action{Kind: ActionReserveCard, Card: card, FromDeck: fromDeck}
}

// ReserveFromDeck 预定某层牌堆顶的暗牌，由 Apply 负责摸牌
func ReserveFromDeck(tier int) Action {
	return Action{Kind: ActionReserveCard, FromDeck: true, Tier: tier}
}

func DiscardTokens(amounts entities.Resources) Action {
	return Action{Kind: ActionDiscardTokens, Amounts: amounts}
}

func Pass() Action {
	return Action{Kind: ActionPass}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionPickSameTokens:
		return fmt.Sprintf("%s: 2 %s", a.Kind, a.Resource)
	case ActionPickDiffTokens:
		names := make([]string, len(a.Resources))
		for i, r := range a.Resources {
			names[i] = r.String()
		}
		return fmt.Sprintf("%s: %s", a.Kind, strings.Join(names, ", "))
	case ActionBuyCard:
		if a.FromReserved {
			return fmt.Sprintf("%s: %s (reserved)", a.Kind, a.Card)
		}
		return fmt.Sprintf("%s: %s", a.Kind, a.Card)
	case ActionReserveCard:
		if a.FromDeck && a.Card == nil {
			return fmt.Sprintf("%s: tier %d (face down)", a.Kind, a.Tier)
		}
		if a.FromDeck {
			return fmt.Sprintf("%s: %s (face down)", a.Kind, a.Card)
		}
		return fmt.Sprintf("%s: %s", a.Kind, a.Card)
	case ActionDiscardTokens:
		return fmt.Sprintf("%s: %s", a.Kind, a.Amounts)
	default:
		return a.Kind.String()
	}
}

// Result 操作执行后的结果
type Result struct {
	Action Action
	Card   *entities.DevCard  // 购买或预定的卡（暗牌预定时为摸到的卡）
	Paid   entities.Resources // 玩家交给银行的宝石（购买、弃牌）
	Gained entities.Resources // 玩家从银行拿到的宝石
}

// Validate 检查操作在当前状态下是否合法，不修改任何状态
func Validate(b *Board, p *Player, a Action) error {
	switch a.Kind {
	case ActionPickSameTokens:
		if !a.Resource.Valid() || a.Resource.IsGold() {
			return fmt.Errorf("%w: 不能拿 2 个 %s", ErrIllegalAction, a.Resource)
		}
		if !b.CanGiveSameTokens(a.Resource) {
			return fmt.Errorf("%w: 银行 %s 只剩 %d 个，至少需要 %d 个", ErrCapacity, a.Resource, b.bank.Get(a.Resource), sameTokensThreshold)
		}
	case ActionPickDiffTokens:
		if err := validateDiffKinds(a.Resources); err != nil {
			return err
		}
		if !b.CanGiveDiffTokens(a.Resources) {
			return fmt.Errorf("%w: 银行宝石不足", ErrCapacity)
		}
	case ActionBuyCard:
		if a.Card == nil {
			return fmt.Errorf("%w: 未指定卡牌", ErrIllegalAction)
		}
		if a.FromReserved && !p.IsReserved(a.Card) {
			return fmt.Errorf("%w: %s 不在预定区", ErrIllegalAction, a.Card)
		}
		if !a.FromReserved && !b.IsVisible(a.Card) {
			return fmt.Errorf("%w: %s 不在桌面上", ErrIllegalAction, a.Card)
		}
		if !p.CanBuyCard(a.Card) {
			return fmt.Errorf("%w: 宝石不足，无法购买 %s", ErrIllegalAction, a.Card)
		}
	case ActionReserveCard:
		if !p.CanReserve() {
			return fmt.Errorf("%w: 预定区已满 (%d)", ErrCapacity, MaxReserved)
		}
		switch {
		case a.FromDeck && a.Card == nil:
			if !b.CanDrawPile(a.Tier) {
				return fmt.Errorf("%w: 第 %d 层牌堆为空", ErrIllegalAction, a.Tier)
			}
		case a.FromDeck:
			if !b.IsDrawn(a.Card) {
				return fmt.Errorf("%w: %s 不是刚摸到的暗牌", ErrIllegalAction, a.Card)
			}
		case a.Card == nil:
			return fmt.Errorf("%w: 未指定卡牌", ErrIllegalAction)
		case !b.IsVisible(a.Card):
			return fmt.Errorf("%w: %s 不在桌面上", ErrIllegalAction, a.Card)
		}
	case ActionDiscardTokens:
		excess := p.TotalTokens() - MaxTokens
		if excess <= 0 {
			return fmt.Errorf("%w: 宝石未超过 %d 个，无需弃牌", ErrIllegalAction, MaxTokens)
		}
		for i, n := range a.Amounts {
			kind := entities.Resource(i)
			if n < 0 || n > p.tokens.Get(kind) {
				return fmt.Errorf("%w: 不能弃掉 %d 个 %s (持有 %d)", ErrCapacity, n, kind, p.tokens.Get(kind))
			}
		}
		if total := a.Amounts.Total(); total != excess {
			return fmt.Errorf("%w: 必须恰好弃掉 %d 个宝石，实际 %d 个", ErrIllegalAction, excess, total)
		}
	case ActionPass:
	default:
		return fmt.Errorf("%w: 未知操作类型 %d", ErrIllegalAction, a.Kind)
	}
	return nil
}

func validateDiffKinds(kinds []entities.Resource) error {
	if len(kinds) < 1 || len(kinds) > maxDiffTokens {
		return fmt.Errorf("%w: 只能拿 1~%d 种不同宝石，实际 %d 种", ErrIllegalAction, maxDiffTokens, len(kinds))
	}
	seen := make(map[entities.Resource]bool, len(kinds))
	for _, kind := range kinds {
		if !kind.Valid() || kind.IsGold() {
			return fmt.Errorf("%w: 不能拿 %s", ErrIllegalAction, kind)
		}
		if seen[kind] {
			return fmt.Errorf("%w: 宝石颜色重复: %s", ErrIllegalAction, kind)
		}
		seen[kind] = true
	}
	return nil
}

// Apply 校验并执行操作。校验失败时不修改任何状态
func Apply(b *Board, p *Player, a Action) (Result, error) {
	if err := Validate(b, p, a); err != nil {
		return Result{Action: a}, err
	}
	return apply(b, p, a), nil
}

func apply(b *Board, p *Player, a Action) Result {
	res := Result{Action: a}
	switch a.Kind {
	case ActionPickSameTokens:
		takeFromBank(b, p, a.Resource, 2, &res)
	case ActionPickDiffTokens:
		for _, kind := range a.Resources {
			takeFromBank(b, p, kind, 1, &res)
		}
	case ActionBuyCard:
		buyCard(b, p, a, &res)
	case ActionReserveCard:
		reserveCard(b, p, a, &res)
	case ActionDiscardTokens:
		for i, n := range a.Amounts {
			if n > 0 {
				giveToBank(b, p, entities.Resource(i), n, &res)
			}
		}
	}
	return res
}

func takeFromBank(b *Board, p *Player, kind entities.Resource, n int, res *Result) {
	b.updateBank(kind, -n)
	p.updateTokens(kind, n)
	res.Gained.Update(kind, n)
}

func giveToBank(b *Board, p *Player, kind entities.Resource, n int, res *Result) {
	p.updateTokens(kind, -n)
	b.updateBank(kind, n)
	res.Paid.Update(kind, n)
}

func buyCard(b *Board, p *Player, a Action, res *Result) {
	card := a.Card
	// 黄金数量要在扣除普通宝石之前算好
	goldNeeded := p.GoldNeeded(card)

	for _, kind := range entities.Gems {
		toPay := min(max(0, card.Cost.Get(kind)-p.Bonus(kind)), p.tokens.Get(kind))
		if toPay > 0 {
			giveToBank(b, p, kind, toPay, res)
		}
	}
	if goldNeeded > 0 {
		giveToBank(b, p, entities.Gold, goldNeeded, res)
	}

	p.addPurchasedCard(card)
	if a.FromReserved {
		p.removeReservedCard(card)
	} else {
		b.UpdateCard(card)
	}
	res.Card = card
}

func reserveCard(b *Board, p *Player, a Action, res *Result) {
	card := a.Card
	if a.FromDeck && card == nil {
		card = b.DrawCard(a.Tier)
	}
	if a.FromDeck {
		b.placeDrawn(card)
	}

	p.addReservedCard(card)
	if b.bank.Get(entities.Gold) > 0 {
		takeFromBank(b, p, entities.Gold, 1, res)
	}
	// 暗牌已经离开牌堆，不需要补位
	if !a.FromDeck {
		b.UpdateCard(card)
	}
	res.Card = card
}
