package engine

import "go-splendor/dto"

// WinningScore 回合结束时有人达到该分数即游戏结束
const WinningScore = 15

// Outcome 游戏结果。Draw 为 true 时 Winners 是所有并列的玩家
type Outcome struct {
	Winners  []*Player
	Draw     bool
	MaxScore int
	Rounds   int
	Stalled  bool // 达到 MaxRounds 被强制结束
}

func (o Outcome) WinnerIDs() []int {
	ids := make([]int, len(o.Winners))
	for i, p := range o.Winners {
		ids[i] = p.ID()
	}
	return ids
}

func (o Outcome) toDTO() *dto.GameResult {
	return &dto.GameResult{
		Winners:  o.WinnerIDs(),
		Draw:     o.Draw,
		MaxScore: o.MaxScore,
		Rounds:   o.Rounds,
		Stalled:  o.Stalled,
	}
}

// ResolveWinners 最高分获胜；同分时购买卡牌更少者胜；仍然同分则平局
func ResolveWinners(players []*Player) (winners []*Player, maxScore int, draw bool) {
	if len(players) == 0 {
		return nil, 0, false
	}

	maxScore = players[0].Score()
	for _, p := range players[1:] {
		maxScore = max(maxScore, p.Score())
	}

	fewest := -1
	for _, p := range players {
		if p.Score() != maxScore {
			continue
		}
		n := p.NbPurchasedCards()
		switch {
		case fewest < 0 || n < fewest:
			fewest = n
			winners = []*Player{p}
		case n == fewest:
			winners = append(winners, p)
		}
	}
	return winners, maxScore, len(winners) > 1
}

// isGameOver 只在一轮结束时调用
func isGameOver(players []*Player) bool {
	for _, p := range players {
		if p.Score() >= WinningScore {
			return true
		}
	}
	return false
}
