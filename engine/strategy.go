package engine

import (
	"context"

	"go-splendor/entities"
)

// BoardView 桌面的只读视图，策略和展示层只能通过它读取状态
type BoardView interface {
	Bank() entities.Resources
	Card(tier, col int) *entities.DevCard
	VisibleCards(tier int) []*entities.DevCard
	StackSize(tier int) int
	Nobles() []*entities.Noble
	NobleSlots() int
	IsVisible(card *entities.DevCard) bool
	CanGiveSameTokens(kind entities.Resource) bool
	CanGiveDiffTokens(kinds []entities.Resource) bool
	CanDrawPile(tier int) bool
	CanObtainNoble(noble *entities.Noble, p PlayerView) bool
}

// PlayerView 玩家的只读视图
type PlayerView interface {
	ID() int
	Name() string
	Score() int
	Tokens() entities.Resources
	TotalTokens() int
	Bonus(kind entities.Resource) int
	Bonuses() entities.Resources
	PurchasedCards() []*entities.DevCard
	NbPurchasedCards() int
	ReservedCards() []*entities.DevCard
	Nobles() []*entities.Noble
	IsReserved(card *entities.DevCard) bool
	GoldNeeded(card *entities.DevCard) int
	CanBuyCard(card *entities.DevCard) bool
	CanReserve() bool
}

// Strategy 每个座位的决策方（真人输入或机器人）。
// 调用期间不得修改桌面或玩家；返回后才由 Game 执行。
type Strategy interface {
	// ChooseAction 返回 nil 表示还没决定，Game 会再次询问
	ChooseAction(ctx context.Context, board BoardView, player PlayerView) (*Action, error)
	// ChooseDiscardingTokens 返回的数量之和必须恰好等于 TotalTokens()-10
	ChooseDiscardingTokens(ctx context.Context, player PlayerView) (entities.Resources, error)
	// ChooseNoble 只在有 2 位及以上贵族可选时调用
	ChooseNoble(ctx context.Context, player PlayerView, nobles []*entities.Noble) (*entities.Noble, error)
}
