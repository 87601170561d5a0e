package engine

import (
	"go-splendor/dto"
	"go-splendor/entities"
)

type EventType string

const (
	EventTurnStart EventType = "turn_start"
	EventAction    EventType = "action"
	EventNoble     EventType = "noble"
	EventDiscard   EventType = "discard"
	EventRoundEnd  EventType = "round_end"
	EventGameOver  EventType = "game_over"
)

// GameView 游戏的只读视图，观察者通过它读取局面
type GameView interface {
	ID() string
	Round() int
	Phase() Phase
	Board() BoardView
	Players() []PlayerView
	CurrentPlayer() PlayerView
	LastActions() []dto.LastAction
	Outcome() (Outcome, bool)
}

// Event 通知给观察者的事件，未涉及的字段为零值
type Event struct {
	Type     EventType
	Round    int
	PlayerID int
	Action   *Action
	Result   *Result
	Noble    *entities.Noble
	Outcome  *Outcome
	Game     GameView
}

// Observer 展示层。OnEvent 在游戏循环里同步调用，不能阻塞太久
type Observer interface {
	OnEvent(ev Event)
}

type NopObserver struct{}

func (NopObserver) OnEvent(Event) {}

// MultiObserver 依次通知多个观察者
type MultiObserver []Observer

func (m MultiObserver) OnEvent(ev Event) {
	for _, o := range m {
		o.OnEvent(ev)
	}
}

// ObserverFunc 允许用普通函数作为观察者
type ObserverFunc func(ev Event)

func (f ObserverFunc) OnEvent(ev Event) { f(ev) }
