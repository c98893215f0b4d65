package fleet

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
)

// tickPeriod is the outer loop cadence.
const tickPeriod = time.Millisecond

// Event is a fleet lifecycle notification pushed to observers (the console
// WebSocket feed).
type Event struct {
	Type string         `json:"type"`
	Bot  string         `json:"bot,omitempty"`
	Data map[string]any `json:"data,omitempty"`
}

// Manager holds the live bots and runs the tick loop.
type Manager struct {
	mu   sync.RWMutex
	bots []*bot.Bot
	byID map[string]*bot.Bot

	queue *Queue
	log   *slog.Logger

	subMu sync.Mutex
	subs  map[chan Event]struct{}
}

func NewManager(queue *Queue, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		byID:  make(map[string]*bot.Bot),
		queue: queue,
		log:   log,
		subs:  make(map[chan Event]struct{}),
	}
}

// Add registers a bot with the fleet.
func (m *Manager) Add(b *bot.Bot) {
	m.mu.Lock()
	m.bots = append(m.bots, b)
	m.byID[b.UUID()] = b
	m.mu.Unlock()
	m.publish(Event{Type: "bot.added", Bot: b.UUID()})
}

// Remove disconnects and drops a bot by uuid.
func (m *Manager) Remove(uuid string) bool {
	m.mu.Lock()
	b, ok := m.byID[uuid]
	if ok {
		delete(m.byID, uuid)
		for i, candidate := range m.bots {
			if candidate == b {
				m.bots = append(m.bots[:i], m.bots[i+1:]...)
				break
			}
		}
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	b.Disconnect()
	m.publish(Event{Type: "bot.removed", Bot: uuid})
	return true
}

// Get resolves a bot by uuid.
func (m *Manager) Get(uuid string) (*bot.Bot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.byID[uuid]
	return b, ok
}

// All returns a snapshot of the fleet in insertion order.
func (m *Manager) All() []*bot.Bot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*bot.Bot, len(m.bots))
	copy(out, m.bots)
	return out
}

// Count returns the fleet size.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bots)
}

// Run drives the tick loop until ctx is cancelled: admission first, then
// one process pass over the fleet in order.
func (m *Manager) Run(ctx context.Context) {
	m.log.Info("fleet tick loop started")
	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.shutdown()
			return
		case <-ticker.C:
			m.Tick()
		}
	}
}

// Tick runs one admission+process pass. Exposed for tests.
func (m *Manager) Tick() {
	bots := m.All()
	m.queue.TryConnect(bots)
	for _, b := range bots {
		b.Process()
	}
}

// shutdown disconnects every connected bot.
func (m *Manager) shutdown() {
	for _, b := range m.All() {
		if b.Status() != bot.Disconnected {
			b.Disconnect()
		}
	}
	m.log.Info("fleet tick loop stopped")
}

// Subscribe returns a channel receiving fleet events until cancel is
// called. Slow subscribers drop events rather than stalling the loop.
func (m *Manager) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 64)
	m.subMu.Lock()
	m.subs[ch] = struct{}{}
	m.subMu.Unlock()

	cancel := func() {
		m.subMu.Lock()
		if _, ok := m.subs[ch]; ok {
			delete(m.subs, ch)
			close(ch)
		}
		m.subMu.Unlock()
	}
	return ch, cancel
}

func (m *Manager) publish(ev Event) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for ch := range m.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Publish forwards an event from another subsystem (querier results) onto
// the fleet feed.
func (m *Manager) Publish(ev Event) { m.publish(ev) }
