package engine

import (
	"fmt"
	"time"

	"go-splendor/const_data"
	"go-splendor/entities"
	"go-splendor/utils"

	"golang.org/x/exp/rand"
)

const (
	MinPlayers = 2
	MaxPlayers = 4

	goldTokens = 5
)

// ErrConfiguration 与数据加载共用同一个错误，便于 errors.Is 判断
var ErrConfiguration = const_data.ErrConfiguration

// NewRand 按种子创建随机数生成器，seed 为 0 时使用当前时间
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// TokensPerGem 每种宝石的初始数量：4 人 7 个，否则人数 + 2
func TokensPerGem(nbPlayers int) int {
	if nbPlayers == 4 {
		return 7
	}
	return nbPlayers + 2
}

// NewBoard 根据数据表初始化桌面：洗牌、翻开每层前 4 张、抽取 nbPlayers+1 位贵族
func NewBoard(nbPlayers int, records []const_data.Record, rng *rand.Rand) (*Board, error) {
	if nbPlayers < MinPlayers || nbPlayers > MaxPlayers {
		return nil, fmt.Errorf("%w: 玩家人数必须在 %d~%d 之间，当前 %d", ErrConfiguration, MinPlayers, MaxPlayers, nbPlayers)
	}
	if err := const_data.Validate(records); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	b := &Board{
		catalog: make(map[*entities.DevCard]bool, len(records)),
		drawn:   make(map[*entities.DevCard]bool),
	}

	// 初始化宝石 token 池
	perGem := TokensPerGem(nbPlayers)
	for _, kind := range entities.Gems {
		b.bank.Set(kind, perGem)
	}
	b.bank.Set(entities.Gold, goldTokens)
	b.initialBank = b.bank

	// 初始化卡牌信息
	var nobles []*entities.Noble
	for i, rec := range records {
		if rec.IsNoble() {
			nobles = append(nobles, &entities.Noble{
				ID:     i + 1,
				Cost:   rec.Cost(),
				Points: rec.Points,
			})
			continue
		}
		bonus, _ := rec.Bonus()
		card := &entities.DevCard{
			ID:     i + 1,
			Tier:   rec.Tier,
			Cost:   rec.Cost(),
			Points: rec.Points,
			Bonus:  bonus,
		}
		b.stacks[rec.Tier-1] = append(b.stacks[rec.Tier-1], card)
		b.catalog[card] = true
	}

	for t := range b.stacks {
		stack := b.stacks[t]
		rng.Shuffle(len(stack), func(i, j int) {
			stack[i], stack[j] = stack[j], stack[i]
		})
		for col := 0; col < GridColumns; col++ {
			b.visible[t][col] = b.pop(t + 1)
		}
	}

	b.nobles = drawNobles(nobles, nbPlayers+1, rng)
	b.nobleSlots = len(b.nobles)
	return b, nil
}

// 打乱后取前 max 位，其余贵族直接移出游戏
func drawNobles(pool []*entities.Noble, max int, rng *rand.Rand) []*entities.Noble {
	nobleList := make([]*entities.Noble, len(pool))
	copy(nobleList, pool)

	rng.Shuffle(len(nobleList), func(i, j int) {
		nobleList[i], nobleList[j] = nobleList[j], nobleList[i]
	})

	return utils.SafeSlice(nobleList, max)
}
