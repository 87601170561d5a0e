package engine

import (
	"go-splendor/entities"
	"go-splendor/utils"
)

const (
	GridColumns = 4

	sameTokensThreshold = 4 // 银行中该颜色至少 4 个才能拿 2 个相同
	maxDiffTokens       = 3
)

// Board 桌面：三层牌堆、3x4 明牌区、银行宝石、贵族
type Board struct {
	stacks  [entities.MaxTier][]*entities.DevCard // 栈顶为切片末尾
	visible [entities.MaxTier][GridColumns]*entities.DevCard
	bank    entities.Resources
	nobles  []*entities.Noble

	initialBank entities.Resources
	nobleSlots  int // 仅用于展示布局

	catalog map[*entities.DevCard]bool // 开局时全部发展卡，卡牌只移动不新建
	drawn   map[*entities.DevCard]bool // 已从牌堆摸出、尚未放到任何地方的暗牌
}

var _ BoardView = (*Board)(nil) // 编译期断言实现

func validTier(tier int) bool {
	return tier >= entities.MinTier && tier <= entities.MaxTier
}

func (b *Board) Bank() entities.Resources {
	return b.bank
}

// InitialBank 开局时银行的宝石数量，守恒检查用
func (b *Board) InitialBank() entities.Resources {
	return b.initialBank
}

// Card 返回明牌区某个位置的卡，空位或越界返回 nil
func (b *Board) Card(tier, col int) *entities.DevCard {
	if !validTier(tier) || col < 0 || col >= GridColumns {
		return nil
	}
	return b.visible[tier-1][col]
}

// VisibleCards 某层所有非空明牌，按列顺序
func (b *Board) VisibleCards(tier int) []*entities.DevCard {
	if !validTier(tier) {
		return nil
	}
	cards := make([]*entities.DevCard, 0, GridColumns)
	for _, c := range b.visible[tier-1] {
		if c != nil {
			cards = append(cards, c)
		}
	}
	return cards
}

func (b *Board) StackSize(tier int) int {
	if !validTier(tier) {
		return 0
	}
	return len(b.stacks[tier-1])
}

func (b *Board) Nobles() []*entities.Noble {
	nobles := make([]*entities.Noble, len(b.nobles))
	copy(nobles, b.nobles)
	return nobles
}

func (b *Board) NobleSlots() int {
	return b.nobleSlots
}

func (b *Board) IsVisible(card *entities.DevCard) bool {
	_, _, ok := b.locate(card)
	return ok
}

func (b *Board) locate(card *entities.DevCard) (int, int, bool) {
	if card == nil {
		return 0, 0, false
	}
	for t := range b.visible {
		for col, c := range b.visible[t] {
			if c == card {
				return t, col, true
			}
		}
	}
	return 0, 0, false
}

// CanGiveSameTokens 黄金不能拿 2 个；普通宝石银行中需 >= 4
func (b *Board) CanGiveSameTokens(kind entities.Resource) bool {
	if !kind.Valid() || kind.IsGold() {
		return false
	}
	return b.bank.Get(kind) >= sameTokensThreshold
}

// CanGiveDiffTokens 1~3 种互不相同的非黄金宝石，且银行中每种至少 1 个
func (b *Board) CanGiveDiffTokens(kinds []entities.Resource) bool {
	if len(kinds) < 1 || len(kinds) > maxDiffTokens {
		return false
	}
	seen := make(map[entities.Resource]bool, len(kinds))
	for _, kind := range kinds {
		if !kind.Valid() || kind.IsGold() || seen[kind] {
			return false
		}
		seen[kind] = true
		if b.bank.Get(kind) < 1 {
			return false
		}
	}
	return true
}

func (b *Board) CanDrawPile(tier int) bool {
	return b.StackSize(tier) > 0
}

// CanObtainNoble 比较的是折扣卡数量，不看宝石
func (b *Board) CanObtainNoble(noble *entities.Noble, p PlayerView) bool {
	if noble == nil || p == nil {
		return false
	}
	for _, kind := range entities.Gems {
		if p.Bonus(kind) < noble.Cost.Get(kind) {
			return false
		}
	}
	return true
}

// UpdateCard 明牌被拿走后，用同层牌堆顶补位；牌堆空则置为 nil
func (b *Board) UpdateCard(card *entities.DevCard) bool {
	t, col, ok := b.locate(card)
	if !ok {
		return false
	}
	b.visible[t][col] = b.pop(t + 1)
	return true
}

// DrawCard 从牌堆顶摸一张（预定暗牌），牌堆空返回 nil。
// 摸出的卡在被预定之前记为待放置
func (b *Board) DrawCard(tier int) *entities.DevCard {
	if !b.CanDrawPile(tier) {
		return nil
	}
	card := b.pop(tier)
	b.drawn[card] = true
	return card
}

// IsDrawn 是否是用 DrawCard 摸出、还没放置的暗牌
func (b *Board) IsDrawn(card *entities.DevCard) bool {
	return card != nil && b.drawn[card]
}

func (b *Board) placeDrawn(card *entities.DevCard) {
	delete(b.drawn, card)
}

// RemoveNoble 按身份移除贵族，不存在时什么也不做
func (b *Board) RemoveNoble(noble *entities.Noble) bool {
	var ok bool
	b.nobles, ok = utils.RemoveFirst(b.nobles, noble)
	return ok
}

func (b *Board) pop(tier int) *entities.DevCard {
	stack := b.stacks[tier-1]
	if len(stack) == 0 {
		return nil
	}
	top := stack[len(stack)-1]
	b.stacks[tier-1] = stack[:len(stack)-1]
	return top
}

func (b *Board) updateBank(kind entities.Resource, delta int) {
	b.bank.Update(kind, delta)
}
