package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type ActionMetric struct {
	Step     int
	Player   int // Player ID
	Action   string
	Duration time.Duration
}

type GameMetric struct {
	GameID    string
	Players   int
	Winner    int // Player ID, -1 if the turn cap was reached
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
	Actions   int
}

type Collector interface {
	Start(gameID string, players int)
	AddAction(player int, action string, took time.Duration)
	AddTurn()
	Complete(winner int) (GameMetric, []ActionMetric)
}

type collector struct {
	gameID    string
	players   int
	startTime time.Time
	turns     atomic.Int32
	mu        sync.Mutex
	actions   []ActionMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(gameID string, players int) {
	m.startTime = time.Now()
	m.gameID = gameID
	m.players = players
}

func (m *collector) AddAction(player int, action string, took time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, ActionMetric{
		Step:     len(m.actions) + 1,
		Player:   player,
		Action:   action,
		Duration: took,
	})
}

func (m *collector) AddTurn() {
	m.turns.Add(1)
}

func (m *collector) Complete(winner int) (GameMetric, []ActionMetric) {
	m.mu.Lock()
	defer m.mu.Unlock()
	end := time.Now()
	return GameMetric{
		GameID:    m.gameID,
		Players:   m.players,
		Winner:    winner,
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
		Turns:     int(m.turns.Load()),
		Actions:   len(m.actions),
	}, append([]ActionMetric(nil), m.actions...)
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(gameID string, players int)                     {}
func (m *dummyCollector) AddAction(player int, action string, d time.Duration) {}
func (m *dummyCollector) AddTurn()                                             {}
func (m *dummyCollector) Complete(winner int) (GameMetric, []ActionMetric) {
	return GameMetric{Winner: winner}, nil
}
