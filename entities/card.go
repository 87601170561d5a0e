package entities

import "fmt"

const (
	MinTier = 1
	MaxTier = 3

	NoblePoints = 3
)

// DevCard 发展卡，创建后不可修改；同一张卡以指针身份识别
type DevCard struct {
	ID     int       `json:"id"`     // 卡牌ID
	Tier   int       `json:"tier"`   // 1/2/3
	Cost   Resources `json:"cost"`   // 五色费用，黄金恒为 0
	Points int       `json:"points"` // 荣誉分
	Bonus  Resource  `json:"bonus"`  // 购买后永久获得的折扣颜色
}

func (c *DevCard) String() string {
	if c == nil {
		return "<empty>"
	}
	return fmt.Sprintf("T%d #%d %s +%dpt [%s]", c.Tier, c.ID, c.Bonus, c.Points, c.Cost)
}

// Noble 贵族，费用以折扣卡数量计算（不是宝石）
type Noble struct {
	ID     int       `json:"id"`
	Cost   Resources `json:"cost"`   // 奖励条件，如 {emerald:4, sapphire:4}
	Points int       `json:"points"` // 固定 3 分
}

func (n *Noble) String() string {
	if n == nil {
		return "<empty>"
	}
	return fmt.Sprintf("Noble #%d +%dpt [%s]", n.ID, n.Points, n.Cost)
}
