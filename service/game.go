package service

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"go-splendor/config"
	"go-splendor/const_data"
	"go-splendor/engine"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// AIPlayerPrefix 机器人玩家名称前缀
const AIPlayerPrefix = "ai_"

// Session 一局游戏以及它持有的资源（游戏日志文件）
type Session struct {
	Game    *engine.Game
	LogPath string

	closers []io.Closer
}

func (s *Session) Close() error {
	var errs error
	for _, c := range s.closers {
		errs = multierr.Append(errs, c.Close())
	}
	s.closers = nil
	return errs
}

// NewGameID 生成 8 位唯一游戏 ID
func NewGameID() string {
	uuidStr := uuid.New().String()
	return strings.ReplaceAll(uuidStr, "-", "")[:8]
}

// LoadCatalog 未配置路径时使用内置卡牌数据
func LoadCatalog(path string) ([]const_data.Record, error) {
	if path == "" {
		return const_data.Default()
	}
	return const_data.LoadFile(path)
}

// CreateGame 加载卡牌、初始化桌面和座位，配置了 LogDir 时附带游戏日志。
// 调用方用完后需要 Close
func CreateGame(cfg config.GameConfig, records []const_data.Record, logger *zap.Logger, observers ...engine.Observer) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.Strategies) != cfg.Players {
		return nil, fmt.Errorf("%w: 策略数量 (%d) 与玩家人数 (%d) 不一致", engine.ErrConfiguration, len(cfg.Strategies), cfg.Players)
	}

	rng := engine.NewRand(cfg.Seed)
	board, err := engine.NewBoard(cfg.Players, records, rng)
	if err != nil {
		return nil, fmt.Errorf("初始化桌面失败: %w", err)
	}

	seats := make([]engine.Seat, 0, cfg.Players)
	for i, name := range cfg.Strategies {
		// 每个机器人独立的随机源，保证同一种子可以复现
		strategy, err := engine.NewStrategy(name, rand.New(rand.NewSource(rng.Uint64())))
		if err != nil {
			return nil, err
		}
		player := engine.NewPlayer(i+1, fmt.Sprintf("%s%s_%d", AIPlayerPrefix, strings.ToLower(name), i+1))
		seats = append(seats, engine.Seat{Player: player, Strategy: strategy})
	}

	gameID := NewGameID()
	session := &Session{}
	observers = slices.Clone(observers)
	if cfg.LogDir != "" {
		f, err := engine.OpenGameLog(cfg.LogDir, gameID)
		if err != nil {
			return nil, err
		}
		session.closers = append(session.closers, f)
		session.LogPath = f.Name()
		observers = append(observers, engine.NewGameLogObserver(f, logger))
	}

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithMaxRounds(cfg.MaxRounds),
		engine.WithMaxInvalidAttempts(cfg.MaxInvalidAttempts),
	}
	if len(observers) > 0 {
		opts = append(opts, engine.WithObserver(engine.MultiObserver(observers)))
	}

	game, err := engine.NewGame(gameID, board, seats, opts...)
	if err != nil {
		session.Close()
		return nil, err
	}
	session.Game = game

	logger.Info("创建游戏",
		zap.String("game_id", gameID),
		zap.Int("players", cfg.Players),
		zap.Strings("strategies", cfg.Strategies),
		zap.Uint64("seed", cfg.Seed),
	)
	return session, nil
}

// Report 一局游戏的结果
type Report struct {
	GameID  string
	Outcome engine.Outcome
	LogPath string
}

// RunGames 依次进行 cfg.Games 局。指定种子时第 i 局使用 seed+i
func RunGames(ctx context.Context, cfg config.GameConfig, logger *zap.Logger, observers ...engine.Observer) ([]Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	records, err := LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("加载卡牌数据失败: %w", err)
	}

	reports := make([]Report, 0, cfg.Games)
	for i := 0; i < max(1, cfg.Games); i++ {
		gameCfg := cfg
		if cfg.Seed != 0 {
			gameCfg.Seed = cfg.Seed + uint64(i)
		}
		report, err := runGame(ctx, gameCfg, records, logger, observers)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func runGame(ctx context.Context, cfg config.GameConfig, records []const_data.Record, logger *zap.Logger, observers []engine.Observer) (report Report, err error) {
	session, err := CreateGame(cfg, records, logger, observers...)
	if err != nil {
		return Report{}, err
	}
	defer func() {
		err = multierr.Append(err, session.Close())
	}()

	outcome, err := session.Game.Run(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("游戏 %s 运行失败: %w", session.Game.ID(), err)
	}
	return Report{GameID: session.Game.ID(), Outcome: outcome, LogPath: session.LogPath}, nil
}
