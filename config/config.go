package config

import (
	"errors"
	"fmt"
	"strings"

	"go-splendor/engine"
	"go-splendor/utils"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidConfig = errors.New("配置错误")

// EnvPrefix 环境变量前缀，如 SPLENDOR_GAME_PLAYERS
const EnvPrefix = "SPLENDOR"

type Config struct {
	Game GameConfig `mapstructure:"game"`
	Log  LogConfig  `mapstructure:"log"`
}

type GameConfig struct {
	Players            int      `mapstructure:"players"`
	Seed               uint64   `mapstructure:"seed"` // 0 表示使用当前时间
	Strategies         []string `mapstructure:"strategies"`
	MaxRounds          int      `mapstructure:"max_rounds"`
	MaxInvalidAttempts int      `mapstructure:"max_invalid_attempts"`
	Catalog            string   `mapstructure:"catalog"` // 为空使用内置卡牌数据
	LogDir             string   `mapstructure:"log_dir"` // 为空不写游戏日志
	Games              int      `mapstructure:"games"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json / console
}

// flagKeys 命令行参数名 -> 配置项
var flagKeys = map[string]string{
	"players":    "game.players",
	"seed":       "game.seed",
	"strategies": "game.strategies",
	"max-rounds": "game.max_rounds",
	"catalog":    "game.catalog",
	"log-dir":    "game.log_dir",
	"games":      "game.games",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.players", 2)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.strategies", []string{})
	v.SetDefault("game.max_rounds", 100)
	v.SetDefault("game.max_invalid_attempts", engine.DefaultMaxInvalidAttempts)
	v.SetDefault("game.catalog", "")
	v.SetDefault("game.log_dir", "")
	v.SetDefault("game.games", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load 按 默认值 < 配置文件 < 环境变量 < 命令行参数 的优先级加载配置。
// configPath 为空时不读文件，flags 可以为 nil
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("绑定参数 %s 失败: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize 未指定策略时全部使用 dumb；只指定一个时所有座位共用
func (c *Config) normalize() {
	var names []string
	for _, s := range c.Game.Strategies {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, strings.ToLower(name))
			}
		}
	}
	switch len(names) {
	case 0:
		names = []string{"dumb"}
		fallthrough
	case 1:
		if c.Game.Players > 1 {
			for len(names) < c.Game.Players {
				names = append(names, names[0])
			}
		}
	}
	c.Game.Strategies = names
	c.Log.Format = strings.ToLower(c.Log.Format)
}

func (c *Config) Validate() error {
	var errs error
	invalid := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	g := c.Game
	if g.Players < engine.MinPlayers || g.Players > engine.MaxPlayers {
		invalid("game.players 必须在 %d~%d 之间，当前 %d", engine.MinPlayers, engine.MaxPlayers, g.Players)
	}
	if len(g.Strategies) != g.Players {
		invalid("game.strategies 数量 (%d) 与玩家人数 (%d) 不一致", len(g.Strategies), g.Players)
	}
	known := engine.StrategyNames()
	for _, name := range g.Strategies {
		if !utils.StringInSlice(name, known) {
			invalid("未知的策略 %q，可选: %s", name, strings.Join(known, ", "))
		}
	}
	if g.MaxRounds < 0 {
		invalid("game.max_rounds 不能为负数")
	}
	if g.MaxInvalidAttempts < 1 {
		invalid("game.max_invalid_attempts 至少为 1")
	}
	if g.Games < 1 {
		invalid("game.games 至少为 1")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		invalid("log.level: %v", err)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		invalid("log.format 只能是 json 或 console，当前 %q", c.Log.Format)
	}
	return errs
}

// NewLogger json 使用生产配置，console 使用开发配置
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
