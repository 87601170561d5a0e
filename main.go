package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-splendor/config"
	"go-splendor/engine"
	"go-splendor/service"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("splendor", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "配置文件路径 (yaml)")
	flags.Int("players", 2, "玩家人数 (2-4)")
	flags.Uint64("seed", 0, "随机种子，0 表示使用当前时间")
	flags.StringSlice("strategies", nil, "每个座位的策略: "+fmt.Sprint(engine.StrategyNames()))
	flags.Int("max-rounds", 100, "轮数上限，0 表示不限制")
	flags.String("catalog", "", "卡牌数据文件 (csv / yaml)，为空使用内置数据")
	flags.String("log-dir", "", "游戏日志目录，为空不写日志")
	flags.Int("games", 1, "连续进行的局数")
	flags.String("log-level", "info", "日志级别")
	flags.String("log-format", "console", "日志格式: json / console")
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ 加载配置失败:", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ 初始化日志失败:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := service.RunGames(ctx, cfg.Game, logger)
	for i, report := range reports {
		printReport(i+1, report)
	}
	if err != nil {
		logger.Error("游戏运行失败", zap.Error(err))
		os.Exit(1)
	}
}

func printReport(n int, report service.Report) {
	o := report.Outcome
	result := fmt.Sprintf("胜者 %v", o.WinnerIDs())
	if o.Draw {
		result = fmt.Sprintf("平局 %v", o.WinnerIDs())
	}
	if o.Stalled {
		result += " (达到轮数上限)"
	}
	fmt.Printf("第 %d 局 [%s] %d 轮, 最高分 %d, %s\n", n, report.GameID, o.Rounds, o.MaxScore, result)
	if report.LogPath != "" {
		fmt.Println("✅ 游戏日志保存于:", report.LogPath)
	}
}
