package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-splendor/dto"
	"go-splendor/entities"

	"go.uber.org/zap"
)

var ErrGameOver = errors.New("游戏已结束")

// DefaultMaxInvalidAttempts 策略连续给出非法操作的次数上限
const DefaultMaxInvalidAttempts = 3

// Phase 回合状态
type Phase int

const (
	PhasePlayerTurn Phase = iota
	PhaseNobleCheck
	PhaseDiscard
	PhaseRoundEnd
	PhaseGameOver
)

var phaseNames = [...]string{
	PhasePlayerTurn: "player_turn",
	PhaseNobleCheck: "noble_check",
	PhaseDiscard:    "discard",
	PhaseRoundEnd:   "round_end",
	PhaseGameOver:   "game_over",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Seat 一个座位：玩家数据 + 决策方
type Seat struct {
	Player   *Player
	Strategy Strategy
}

type Option func(*Game)

func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

func WithObserver(o Observer) Option {
	return func(g *Game) {
		if o != nil {
			g.observer = o
		}
	}
}

// WithMaxRounds 轮数上限，0 表示不限制
func WithMaxRounds(n int) Option {
	return func(g *Game) {
		g.maxRounds = max(0, n)
	}
}

func WithMaxInvalidAttempts(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.maxInvalidAttempts = n
		}
	}
}

// Game 回合控制。所有座位串行行动，不支持并发调用
type Game struct {
	id      string
	board   *Board
	seats   []Seat
	current int
	round   int
	phase   Phase
	outcome *Outcome

	lastActions map[int]dto.LastAction

	logger             *zap.Logger
	observer           Observer
	maxRounds          int
	maxInvalidAttempts int
}

var _ GameView = (*Game)(nil)

func NewGame(id string, board *Board, seats []Seat, opts ...Option) (*Game, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: 桌面未初始化", ErrConfiguration)
	}
	if len(seats) < MinPlayers || len(seats) > MaxPlayers {
		return nil, fmt.Errorf("%w: 玩家人数必须在 %d~%d 之间，当前 %d", ErrConfiguration, MinPlayers, MaxPlayers, len(seats))
	}
	ids := make(map[int]bool, len(seats))
	for i, seat := range seats {
		if seat.Player == nil || seat.Strategy == nil {
			return nil, fmt.Errorf("%w: 第 %d 个座位缺少玩家或策略", ErrConfiguration, i+1)
		}
		if ids[seat.Player.ID()] {
			return nil, fmt.Errorf("%w: 玩家ID重复: %d", ErrConfiguration, seat.Player.ID())
		}
		ids[seat.Player.ID()] = true
	}

	g := &Game{
		id:                 id,
		board:              board,
		seats:              seats,
		round:              1,
		phase:              PhasePlayerTurn,
		lastActions:        make(map[int]dto.LastAction, len(seats)),
		logger:             zap.NewNop(),
		observer:           NopObserver{},
		maxInvalidAttempts: DefaultMaxInvalidAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("game_id", id))
	return g, nil
}

func (g *Game) ID() string   { return g.id }
func (g *Game) Round() int   { return g.round }
func (g *Game) Phase() Phase { return g.phase }
func (g *Game) IsOver() bool { return g.phase == PhaseGameOver }

func (g *Game) Board() BoardView {
	return g.board
}

func (g *Game) Players() []PlayerView {
	players := make([]PlayerView, len(g.seats))
	for i, seat := range g.seats {
		players[i] = seat.Player
	}
	return players
}

func (g *Game) CurrentPlayer() PlayerView {
	return g.seats[g.current].Player
}

func (g *Game) Outcome() (Outcome, bool) {
	if g.outcome == nil {
		return Outcome{}, false
	}
	return *g.outcome, true
}

// LastAction 该玩家最近一次执行的操作
func (g *Game) LastAction(playerID int) (dto.LastAction, bool) {
	last, ok := g.lastActions[playerID]
	return last, ok
}

// LastActions 按座位顺序返回
func (g *Game) LastActions() []dto.LastAction {
	list := make([]dto.LastAction, 0, len(g.lastActions))
	for _, seat := range g.seats {
		if last, ok := g.lastActions[seat.Player.ID()]; ok {
			list = append(list, last)
		}
	}
	return list
}

// Run 一直进行到游戏结束
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	for !g.IsOver() {
		if err := g.PlayTurn(ctx); err != nil {
			return Outcome{}, err
		}
	}
	return *g.outcome, nil
}

// PlayTurn 当前座位完成一个完整回合：行动、贵族、弃牌，然后轮到下一位。
// 返回错误时局面停留在出错的阶段，可以修正策略后再次调用
func (g *Game) PlayTurn(ctx context.Context) error {
	if g.IsOver() {
		return ErrGameOver
	}
	seat := g.seats[g.current]
	player := seat.Player
	log := g.logger.With(zap.Int("round", g.round), zap.Int("player_id", player.ID()))

	if g.phase == PhasePlayerTurn {
		g.notify(Event{Type: EventTurnStart, PlayerID: player.ID()})

		res, err := g.playerTurn(ctx, seat, log)
		if err != nil {
			return err
		}
		log.Debug("执行操作", zap.Stringer("action", res.Action), zap.Int("score", player.Score()))
		g.setLastData(player.ID(), res)
		g.notify(Event{Type: EventAction, PlayerID: player.ID(), Action: &res.Action, Result: &res})

		if res.Action.Kind == ActionBuyCard {
			g.phase = PhaseNobleCheck
		} else {
			g.phase = PhaseDiscard
		}
	}

	if g.phase == PhaseNobleCheck {
		if err := g.nobleCheck(ctx, seat, log); err != nil {
			return err
		}
		g.phase = PhaseDiscard
	}

	if g.phase == PhaseDiscard {
		if err := g.enforceDiscard(ctx, seat, log); err != nil {
			return err
		}
		g.nextSeat(log)
	}
	return nil
}

// playerTurn 询问策略直到得到一个合法操作并执行。
// nil 表示还没决定，不计入非法次数
func (g *Game) playerTurn(ctx context.Context, seat Seat, log *zap.Logger) (Result, error) {
	invalid := 0
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		action, err := seat.Strategy.ChooseAction(ctx, g.board, seat.Player)
		if err != nil {
			return Result{}, fmt.Errorf("玩家 %d 选择操作失败: %w", seat.Player.ID(), err)
		}
		if action == nil {
			continue
		}

		var res Result
		if action.Kind == ActionDiscardTokens {
			err = fmt.Errorf("%w: 回合中不能主动弃牌", ErrIllegalAction)
		} else {
			res, err = Apply(g.board, seat.Player, *action)
		}
		if err == nil {
			return res, nil
		}

		invalid++
		log.Warn("非法操作", zap.Stringer("action", action), zap.Int("attempt", invalid), zap.Error(err))
		if invalid >= g.maxInvalidAttempts {
			return Result{}, fmt.Errorf("玩家 %d 连续 %d 次非法操作: %w", seat.Player.ID(), invalid, err)
		}
	}
}

// nobleCheck 每次购买最多获得一位贵族
func (g *Game) nobleCheck(ctx context.Context, seat Seat, log *zap.Logger) error {
	var eligible []*entities.Noble
	for _, noble := range g.board.Nobles() {
		if g.board.CanObtainNoble(noble, seat.Player) {
			eligible = append(eligible, noble)
		}
	}

	var chosen *entities.Noble
	switch len(eligible) {
	case 0:
		return nil
	case 1:
		chosen = eligible[0]
	default:
		invalid := 0
		for chosen == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			noble, err := seat.Strategy.ChooseNoble(ctx, seat.Player, eligible)
			if err != nil {
				return fmt.Errorf("玩家 %d 选择贵族失败: %w", seat.Player.ID(), err)
			}
			if noble == nil {
				continue
			}
			if !containsNoble(eligible, noble) {
				invalid++
				log.Warn("选择了不可获得的贵族", zap.Stringer("noble", noble), zap.Int("attempt", invalid))
				if invalid >= g.maxInvalidAttempts {
					return fmt.Errorf("%w: 玩家 %d 选择了不可获得的贵族 %s", ErrIllegalAction, seat.Player.ID(), noble)
				}
				continue
			}
			chosen = noble
		}
	}

	g.board.RemoveNoble(chosen)
	seat.Player.addNoble(chosen)
	log.Debug("获得贵族", zap.Stringer("noble", chosen), zap.Int("score", seat.Player.Score()))
	g.notify(Event{Type: EventNoble, PlayerID: seat.Player.ID(), Noble: chosen})
	return nil
}

func containsNoble(nobles []*entities.Noble, noble *entities.Noble) bool {
	for _, n := range nobles {
		if n == noble {
			return true
		}
	}
	return false
}

// enforceDiscard 宝石超过 10 个时要求弃到 10 个
func (g *Game) enforceDiscard(ctx context.Context, seat Seat, log *zap.Logger) error {
	invalid := 0
	for seat.Player.TotalTokens() > MaxTokens {
		if err := ctx.Err(); err != nil {
			return err
		}
		amounts, err := seat.Strategy.ChooseDiscardingTokens(ctx, seat.Player)
		if err != nil {
			return fmt.Errorf("玩家 %d 选择弃牌失败: %w", seat.Player.ID(), err)
		}

		action := DiscardTokens(amounts)
		res, err := Apply(g.board, seat.Player, action)
		if err != nil {
			invalid++
			log.Warn("非法弃牌", zap.Stringer("amounts", amounts), zap.Int("attempt", invalid), zap.Error(err))
			if invalid >= g.maxInvalidAttempts {
				return fmt.Errorf("玩家 %d 连续 %d 次非法弃牌: %w", seat.Player.ID(), invalid, err)
			}
			continue
		}
		log.Debug("弃掉宝石", zap.Stringer("amounts", amounts))
		g.notify(Event{Type: EventDiscard, PlayerID: seat.Player.ID(), Action: &action, Result: &res})
	}
	return nil
}

// nextSeat 切换到下一位，回到第一位时进行一轮结束检查
func (g *Game) nextSeat(log *zap.Logger) {
	g.current = (g.current + 1) % len(g.seats)
	if g.current != 0 {
		g.phase = PhasePlayerTurn
		return
	}

	g.phase = PhaseRoundEnd
	g.notify(Event{Type: EventRoundEnd})

	players := g.players()
	switch {
	case isGameOver(players):
		g.finish(false, log)
	case g.maxRounds > 0 && g.round >= g.maxRounds:
		log.Warn("达到轮数上限，强制结束", zap.Int("max_rounds", g.maxRounds))
		g.finish(true, log)
	default:
		g.round++
		g.phase = PhasePlayerTurn
	}
}

func (g *Game) finish(stalled bool, log *zap.Logger) {
	winners, maxScore, draw := ResolveWinners(g.players())
	g.outcome = &Outcome{
		Winners:  winners,
		Draw:     draw,
		MaxScore: maxScore,
		Rounds:   g.round,
		Stalled:  stalled,
	}
	g.phase = PhaseGameOver

	log.Info("游戏结束",
		zap.Ints("winners", g.outcome.WinnerIDs()),
		zap.Bool("draw", draw),
		zap.Int("max_score", maxScore),
		zap.Bool("stalled", stalled),
	)
	g.notify(Event{Type: EventGameOver, Outcome: g.outcome})
}

func (g *Game) players() []*Player {
	players := make([]*Player, len(g.seats))
	for i, seat := range g.seats {
		players[i] = seat.Player
	}
	return players
}

func (g *Game) notify(ev Event) {
	ev.Round = g.round
	ev.Game = g
	g.observer.OnEvent(ev)
}

type actionPayload struct {
	Action       string         `json:"action"`
	Card         *dto.CardData  `json:"card,omitempty"`
	FromReserved bool           `json:"fromReserved,omitempty"`
	FromDeck     bool           `json:"fromDeck,omitempty"`
	Gained       map[string]int `json:"gained,omitempty"`
	Paid         map[string]int `json:"paid,omitempty"`
}

// setLastData 记录玩家刚才执行的操作，供展示层读取
func (g *Game) setLastData(playerID int, res Result) {
	payload := actionPayload{
		Action:       res.Action.String(),
		Card:         dto.NewCardData(res.Card),
		FromReserved: res.Action.FromReserved,
		FromDeck:     res.Action.FromDeck,
	}
	if !res.Gained.IsZero() {
		payload.Gained = res.Gained.Map()
	}
	if !res.Paid.IsZero() {
		payload.Paid = res.Paid.Map()
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		g.logger.Warn("序列化 Payload 失败", zap.Error(err))
		return
	}
	g.lastActions[playerID] = dto.LastAction{
		Action:   res.Action.Kind.String(),
		PlayerID: playerID,
		Payload:  raw,
	}
}
