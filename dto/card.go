package dto

import "go-splendor/entities"

type CardData struct {
	ID     int            `json:"id"`
	Tier   int            `json:"tier"`
	Points int            `json:"points"`
	Bonus  string         `json:"bonus"`
	Cost   map[string]int `json:"cost"`
}

type NobleData struct {
	ID     int            `json:"id"`
	Points int            `json:"points"`
	Cost   map[string]int `json:"cost"`
}

// NewCardData 转换为展示用结构，空位返回 nil
func NewCardData(card *entities.DevCard) *CardData {
	if card == nil {
		return nil
	}
	return &CardData{
		ID:     card.ID,
		Tier:   card.Tier,
		Points: card.Points,
		Bonus:  card.Bonus.String(),
		Cost:   gemMap(card.Cost),
	}
}

func NewCardList(cards []*entities.DevCard) []CardData {
	list := make([]CardData, 0, len(cards))
	for _, card := range cards {
		if data := NewCardData(card); data != nil {
			list = append(list, *data)
		}
	}
	return list
}

func NewNobleList(nobles []*entities.Noble) []NobleData {
	list := make([]NobleData, 0, len(nobles))
	for _, noble := range nobles {
		if noble == nil {
			continue
		}
		list = append(list, NobleData{
			ID:     noble.ID,
			Points: noble.Points,
			Cost:   gemMap(noble.Cost),
		})
	}
	return list
}

// 费用只有五种宝石，去掉黄金
func gemMap(r entities.Resources) map[string]int {
	m := r.Map()
	delete(m, entities.Gold.String())
	return m
}
