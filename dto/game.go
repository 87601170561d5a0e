package dto

import "encoding/json"

type GameStatus string

const (
	GameStatusPlaying GameStatus = "playing"
	GameStatusEnd     GameStatus = "end"
)

type GameInfo struct {
	GameID        string     `json:"gameID"`
	Status        GameStatus `json:"status"`
	Phase         string     `json:"phase"`
	Round         int        `json:"round"`
	CurrentPlayer int        `json:"currentPlayer"`
}

type BoardData struct {
	Card       map[int][]CardData `json:"card"` // tier -> 明牌
	StackSize  map[int]int        `json:"stackSize"`
	Gems       map[string]int     `json:"gems"`
	Nobles     []NobleData        `json:"nobles"`
	NobleSlots int                `json:"nobleSlots"`
}

type GameResult struct {
	Winners  []int `json:"winners"`
	Draw     bool  `json:"draw"`
	MaxScore int   `json:"maxScore"`
	Rounds   int   `json:"rounds"`
	Stalled  bool  `json:"stalled"`
}

// GameSnapshot 某一时刻的完整局面，只用于展示和日志
type GameSnapshot struct {
	GameInfo   GameInfo             `json:"gameInfo"`
	RoomData   BoardData            `json:"roomData"`
	PlayerData []SplendorPlayerData `json:"playerData"`
	LastData   []LastAction         `json:"lastData,omitempty"`
	Result     *GameResult          `json:"result,omitempty"`
}

type LastAction struct {
	Action   string          `json:"action"` // pick_same_tokens / buy_card / reserve_card ...
	PlayerID int             `json:"playerID"`
	Payload  json.RawMessage `json:"payload"` // 原始 JSON 数据，延迟反序列化
}
