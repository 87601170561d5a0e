package dto

type SplendorPlayerData struct {
	PlayerID    int            `json:"playerID"`
	Name        string         `json:"name"`
	Card        map[string]int `json:"card"` // 各颜色折扣卡数量
	Gem         map[string]int `json:"gem"`
	Score       int            `json:"score"`
	NormalCard  []CardData     `json:"normalCard"`
	ReserveCard []CardData     `json:"reserveCard"`
	NobleCard   []NobleData    `json:"nobleCard"`
}
