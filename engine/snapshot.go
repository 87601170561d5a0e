package engine

import (
	"go-splendor/dto"
	"go-splendor/entities"
)

// Snapshot 组装当前局面的展示数据
func Snapshot(g GameView) dto.GameSnapshot {
	board := g.Board()

	roomData := dto.BoardData{
		Card:       make(map[int][]dto.CardData, entities.MaxTier),
		StackSize:  make(map[int]int, entities.MaxTier),
		Gems:       board.Bank().Map(),
		Nobles:     dto.NewNobleList(board.Nobles()),
		NobleSlots: board.NobleSlots(),
	}
	for tier := entities.MinTier; tier <= entities.MaxTier; tier++ {
		roomData.Card[tier] = dto.NewCardList(board.VisibleCards(tier))
		roomData.StackSize[tier] = board.StackSize(tier)
	}

	players := g.Players()
	playerData := make([]dto.SplendorPlayerData, 0, len(players))
	for _, p := range players {
		playerData = append(playerData, NewPlayerData(p))
	}

	status := dto.GameStatusPlaying
	var result *dto.GameResult
	if outcome, ok := g.Outcome(); ok {
		status = dto.GameStatusEnd
		result = outcome.toDTO()
	}

	return dto.GameSnapshot{
		GameInfo: dto.GameInfo{
			GameID:        g.ID(),
			Status:        status,
			Phase:         g.Phase().String(),
			Round:         g.Round(),
			CurrentPlayer: g.CurrentPlayer().ID(),
		},
		RoomData:   roomData,
		PlayerData: playerData,
		LastData:   g.LastActions(),
		Result:     result,
	}
}

func NewPlayerData(p PlayerView) dto.SplendorPlayerData {
	bonuses := p.Bonuses()
	card := make(map[string]int, len(entities.Gems))
	for _, kind := range entities.Gems {
		card[kind.String()] = bonuses.Get(kind)
	}
	return dto.SplendorPlayerData{
		PlayerID:    p.ID(),
		Name:        p.Name(),
		Card:        card,
		Gem:         p.Tokens().Map(),
		Score:       p.Score(),
		NormalCard:  dto.NewCardList(p.PurchasedCards()),
		ReserveCard: dto.NewCardList(p.ReservedCards()),
		NobleCard:   dto.NewNobleList(p.Nobles()),
	}
}
