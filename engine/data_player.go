package engine

import (
	"slices"

	"go-splendor/entities"
	"go-splendor/utils"
)

const (
	MaxTokens   = 10 // 回合结束时手上宝石上限
	MaxReserved = 3
)

// Player 玩家数据。修改只能通过 Action，导出的方法全部只读
type Player struct {
	id     int
	name   string
	score  int
	tokens entities.Resources

	purchasedCards []*entities.DevCard // 只增不减
	reservedCards  []*entities.DevCard // 最多 3 张
	nobles         []*entities.Noble
}

var _ PlayerView = (*Player)(nil)

func NewPlayer(id int, name string) *Player {
	return &Player{id: id, name: name}
}

func (p *Player) ID() int      { return p.id }
func (p *Player) Name() string { return p.name }
func (p *Player) Score() int   { return p.score }

func (p *Player) Tokens() entities.Resources {
	return p.tokens
}

func (p *Player) TotalTokens() int {
	return p.tokens.Total()
}

// Bonus 已购买卡牌中该颜色的数量
func (p *Player) Bonus(kind entities.Resource) int {
	count := 0
	for _, card := range p.purchasedCards {
		if card.Bonus == kind {
			count++
		}
	}
	return count
}

func (p *Player) Bonuses() entities.Resources {
	var bonuses entities.Resources
	for _, card := range p.purchasedCards {
		bonuses.Update(card.Bonus, 1)
	}
	return bonuses
}

func (p *Player) PurchasedCards() []*entities.DevCard {
	return slices.Clone(p.purchasedCards)
}

func (p *Player) NbPurchasedCards() int {
	return len(p.purchasedCards)
}

func (p *Player) ReservedCards() []*entities.DevCard {
	return slices.Clone(p.reservedCards)
}

func (p *Player) Nobles() []*entities.Noble {
	return slices.Clone(p.nobles)
}

func (p *Player) IsReserved(card *entities.DevCard) bool {
	return card != nil && slices.Contains(p.reservedCards, card)
}

// GoldNeeded 扣除折扣和同色宝石后仍缺的数量，全部由黄金补足
func (p *Player) GoldNeeded(card *entities.DevCard) int {
	gold := 0
	for _, kind := range entities.Gems {
		shortage := card.Cost.Get(kind) - p.Bonus(kind) - p.tokens.Get(kind)
		gold += max(0, shortage)
	}
	return gold
}

func (p *Player) CanBuyCard(card *entities.DevCard) bool {
	if card == nil {
		return false
	}
	return p.GoldNeeded(card) <= p.tokens.Get(entities.Gold)
}

func (p *Player) CanReserve() bool {
	return len(p.reservedCards) < MaxReserved
}

func (p *Player) updateTokens(kind entities.Resource, delta int) {
	p.tokens.Update(kind, delta)
}

func (p *Player) addPurchasedCard(card *entities.DevCard) {
	p.purchasedCards = append(p.purchasedCards, card)
	p.score += card.Points
}

func (p *Player) addReservedCard(card *entities.DevCard) {
	p.reservedCards = append(p.reservedCards, card)
}

func (p *Player) removeReservedCard(card *entities.DevCard) bool {
	var ok bool
	p.reservedCards, ok = utils.RemoveFirst(p.reservedCards, card)
	return ok
}

func (p *Player) addNoble(noble *entities.Noble) {
	p.nobles = append(p.nobles, noble)
	p.score += noble.Points
}
