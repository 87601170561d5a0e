package engine

import (
	"go-splendor/entities"
	"go-splendor/utils"
)

// LegalActions 列出当前玩家所有合法操作，Pass 总在最后。
// 不包含 DiscardTokens，弃牌由回合控制单独处理
func LegalActions(board BoardView, player PlayerView) []Action {
	var actions []Action

	for _, kind := range entities.Gems {
		if board.CanGiveSameTokens(kind) {
			actions = append(actions, PickSameTokens(kind))
		}
	}

	bank := board.Bank()
	var inBank []entities.Resource
	for _, kind := range entities.Gems {
		if bank.Get(kind) > 0 {
			inBank = append(inBank, kind)
		}
	}
	for k := 1; k <= maxDiffTokens; k++ {
		for _, kinds := range utils.Combinations(inBank, k) {
			actions = append(actions, PickDiffTokens(kinds...))
		}
	}

	for tier := entities.MaxTier; tier >= entities.MinTier; tier-- {
		for _, card := range board.VisibleCards(tier) {
			if player.CanBuyCard(card) {
				actions = append(actions, BuyCard(card, false))
			}
		}
	}
	for _, card := range player.ReservedCards() {
		if player.CanBuyCard(card) {
			actions = append(actions, BuyCard(card, true))
		}
	}

	if player.CanReserve() {
		for tier := entities.MinTier; tier <= entities.MaxTier; tier++ {
			for _, card := range board.VisibleCards(tier) {
				actions = append(actions, ReserveCard(card, false))
			}
			if board.CanDrawPile(tier) {
				actions = append(actions, ReserveFromDeck(tier))
			}
		}
	}

	return append(actions, Pass())
}
