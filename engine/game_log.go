package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-splendor/dto"
	"go-splendor/entities"

	"go.uber.org/zap"
)

// GameLogObserver 每个事件写一行 JSON，包含事件和完整局面
type GameLogObserver struct {
	mu     sync.Mutex
	w      io.Writer
	logger *zap.Logger
}

var _ Observer = (*GameLogObserver)(nil)

type gameLogEntry struct {
	Timestamp string           `json:"timestamp"`
	Event     EventType        `json:"event"`
	PlayerID  int              `json:"playerID,omitempty"`
	Action    string           `json:"action,omitempty"`
	Noble     *dto.NobleData   `json:"noble,omitempty"`
	Snapshot  dto.GameSnapshot `json:"snapshot"`
}

func NewGameLogObserver(w io.Writer, logger *zap.Logger) *GameLogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameLogObserver{w: w, logger: logger}
}

func (o *GameLogObserver) OnEvent(ev Event) {
	entry := gameLogEntry{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Event:     ev.Type,
		PlayerID:  ev.PlayerID,
		Snapshot:  Snapshot(ev.Game),
	}
	if ev.Action != nil {
		entry.Action = ev.Action.String()
	}
	if ev.Noble != nil {
		nobles := dto.NewNobleList([]*entities.Noble{ev.Noble})
		entry.Noble = &nobles[0]
	}

	jsonEntry, err := json.Marshal(entry)
	if err != nil {
		o.logger.Warn("序列化日志 entry 失败", zap.Error(err))
		return
	}
	jsonEntry = append(jsonEntry, '\n')

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := o.w.Write(jsonEntry); err != nil {
		o.logger.Warn("写入游戏日志失败", zap.Error(err))
	}
}

// GameLogFilePath 日志文件名：<dir>/<gameID>_<时间>.jsonl
func GameLogFilePath(dir, gameID string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.jsonl", gameID, time.Now().Format("20060102_150405")))
}

// OpenGameLog 创建日志目录并打开日志文件，调用方负责关闭
func OpenGameLog(dir, gameID string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("创建日志目录失败: %w", err)
	}
	logPath := GameLogFilePath(dir, gameID)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("打开游戏日志文件失败: %w", err)
	}
	return f, nil
}
