package llm

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
	"github.com/nextlevelbuilder/botmaster/internal/store"
)

const (
	// DefaultUpdateInterval paces the session worker.
	DefaultUpdateInterval = 5 * time.Second
	// DefaultSessionTimeout expires idle sessions.
	DefaultSessionTimeout = 30 * time.Minute
	// DefaultActionCooldown throttles individual tool invocations.
	DefaultActionCooldown = 2 * time.Second
	// llmUpdateCooldown throttles autonomous rounds per session. It
	// composes with the per-action cooldown; both gates apply.
	llmUpdateCooldown = 10 * time.Second
	// llmUpdateAction is the cooldown key for autonomous rounds.
	llmUpdateAction = "llm_update"

	// maxHistory bounds the conversation deque.
	maxHistory = 20
)

// Session binds one bot to one provider plus a bounded conversation.
type Session struct {
	ID       string
	Bot      *bot.Bot
	Provider *Provider

	history        []Message
	cooldowns      map[string]time.Time
	lastActivity   time.Time
	active         bool
	idleWaitingLLM bool
}

// Manager owns every session. One mutex guards the session map, the
// reverse map and all session fields including cooldowns.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	byBot    map[string]string // bot uuid → session id

	dispatcher *Dispatcher
	store      *store.Store
	basePrompt func() string
	log        *slog.Logger
	now        func() time.Time

	updateInterval time.Duration
	sessionTimeout time.Duration
	actionCooldown time.Duration
}

// ManagerConfig wires a Manager.
type ManagerConfig struct {
	Dispatcher *Dispatcher
	Store      *store.Store // optional: session persistence
	BasePrompt func() string
	Logger     *slog.Logger
	Now        func() time.Time

	UpdateInterval time.Duration
	SessionTimeout time.Duration
	ActionCooldown time.Duration
}

func NewManager(cfg ManagerConfig) *Manager {
	if cfg.UpdateInterval <= 0 {
		cfg.UpdateInterval = DefaultUpdateInterval
	}
	if cfg.SessionTimeout <= 0 {
		cfg.SessionTimeout = DefaultSessionTimeout
	}
	if cfg.ActionCooldown <= 0 {
		cfg.ActionCooldown = DefaultActionCooldown
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.BasePrompt == nil {
		cfg.BasePrompt = func() string { return "" }
	}
	m := &Manager{
		sessions:       make(map[string]*Session),
		byBot:          make(map[string]string),
		dispatcher:     cfg.Dispatcher,
		store:          cfg.Store,
		basePrompt:     cfg.BasePrompt,
		log:            cfg.Logger,
		now:            cfg.Now,
		updateInterval: cfg.UpdateInterval,
		sessionTimeout: cfg.SessionTimeout,
		actionCooldown: cfg.ActionCooldown,
	}
	if cfg.Dispatcher != nil {
		cfg.Dispatcher.SetCooldownGate(m)
	}
	return m
}

// generateSessionID produces a 16-hex-char session id.
func generateSessionID() string {
	var b [8]byte
	rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// CreateSession binds a bot to a provider. An existing session for the bot
// is ended first: at most one active session per bot.
func (m *Manager) CreateSession(b *bot.Bot, provider *Provider) string {
	m.mu.Lock()
	expired := m.cleanupExpiredLocked()
	var replaced string
	if old, ok := m.byBot[b.UUID()]; ok {
		m.endSessionLocked(old)
		replaced = old
	}

	id := generateSessionID()
	m.sessions[id] = &Session{
		ID:           id,
		Bot:          b,
		Provider:     provider,
		cooldowns:    make(map[string]time.Time),
		lastActivity: m.now(),
		active:       true,
	}
	m.byBot[b.UUID()] = id
	m.mu.Unlock()

	m.deleteRows(expired)
	if m.store != nil {
		if replaced != "" {
			if err := m.store.DeleteSession(context.Background(), replaced); err != nil {
				m.log.Warn("replaced session delete failed", "session", replaced, "error", err)
			}
		}
		if err := m.store.CreateSession(context.Background(), id, b.UUID(), provider.ID); err != nil {
			m.log.Warn("session persist failed", "session", id, "error", err)
		}
	}
	m.log.Info("llm session created", "session", id, "bot", b.Name(), "provider", provider.Name)
	return id
}

// RestoreSession recreates a persisted session under its original id.
func (m *Manager) RestoreSession(sessionID string, b *bot.Bot, provider *Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.byBot[b.UUID()]; taken {
		return
	}
	m.sessions[sessionID] = &Session{
		ID:           sessionID,
		Bot:          b,
		Provider:     provider,
		cooldowns:    make(map[string]time.Time),
		lastActivity: m.now(),
		active:       true,
	}
	m.byBot[b.UUID()] = sessionID
	m.log.Info("llm session restored", "session", sessionID, "bot", b.Name())
}

// EndSession deactivates and removes a session.
func (m *Manager) EndSession(sessionID string) bool {
	m.mu.Lock()
	_, ok := m.sessions[sessionID]
	if ok {
		m.endSessionLocked(sessionID)
	}
	m.mu.Unlock()

	if ok && m.store != nil {
		if err := m.store.DeleteSession(context.Background(), sessionID); err != nil {
			m.log.Warn("session delete failed", "session", sessionID, "error", err)
		}
	}
	return ok
}

func (m *Manager) endSessionLocked(sessionID string) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return
	}
	s.active = false
	delete(m.sessions, sessionID)
	delete(m.byBot, s.Bot.UUID())
}

// EndSessionForBot removes the bot's session, if any.
func (m *Manager) EndSessionForBot(botUUID string) bool {
	m.mu.Lock()
	id, ok := m.byBot[botUUID]
	m.mu.Unlock()
	if !ok {
		return false
	}
	return m.EndSession(id)
}

// BotForSession resolves the owning bot of a session.
func (m *Manager) BotForSession(sessionID string) (*bot.Bot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok || !s.active {
		return nil, false
	}
	return s.Bot, true
}

// SessionForBot resolves the session id bound to a bot uuid.
func (m *Manager) SessionForBot(botUUID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byBot[botUUID]
	return id, ok
}

// ActiveCount returns the number of live sessions.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// SessionsInfo summarises every session for the control plane.
func (m *Manager) SessionsInfo() []map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]map[string]any, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, map[string]any{
			"session_id":          s.ID,
			"bot_id":              s.Bot.Name(),
			"bot_uuid":            s.Bot.UUID(),
			"provider":            s.Provider.Name,
			"is_active":           s.active,
			"is_idle_waiting_llm": s.idleWaitingLLM,
			"conversation_length": len(s.history),
			"last_activity":       s.lastActivity.Unix(),
		})
	}
	return out
}

// CheckActionCooldown reports whether an action is off cooldown for a
// session. Unknown sessions allow the action.
func (m *Manager) CheckActionCooldown(sessionID, action string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checkCooldownLocked(sessionID, action, m.actionCooldown)
}

func (m *Manager) checkCooldownLocked(sessionID, action string, cooldown time.Duration) bool {
	s, ok := m.sessions[sessionID]
	if !ok {
		return true
	}
	last, ok := s.cooldowns[action]
	if !ok {
		return true
	}
	return m.now().Sub(last) >= cooldown
}

// SetActionCooldown stamps an action's last-used time.
func (m *Manager) SetActionCooldown(sessionID, action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		s.cooldowns[action] = m.now()
	}
}

// TouchActivity bumps a session's idle timer.
func (m *Manager) TouchActivity(sessionID string) {
	m.mu.Lock()
	if s, ok := m.sessions[sessionID]; ok {
		s.lastActivity = m.now()
	}
	m.mu.Unlock()

	if m.store != nil {
		_ = m.store.TouchSession(context.Background(), sessionID)
	}
}

// cleanupExpiredLocked drops idle sessions and returns their ids so the
// caller can delete the persisted rows outside the lock.
func (m *Manager) cleanupExpiredLocked() []string {
	var expired []string
	for id, s := range m.sessions {
		if m.now().Sub(s.lastActivity) > m.sessionTimeout {
			m.log.Info("llm session expired", "session", id, "bot", s.Bot.Name())
			m.endSessionLocked(id)
			expired = append(expired, id)
		}
	}
	return expired
}

func (m *Manager) deleteRows(sessionIDs []string) {
	if m.store == nil {
		return
	}
	for _, id := range sessionIDs {
		if err := m.store.DeleteSession(context.Background(), id); err != nil {
			m.log.Warn("expired session delete failed", "session", id, "error", err)
		}
	}
}

// Run walks sessions on the update interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) {
	m.log.Info("llm session worker started", "interval", m.updateInterval)
	ticker := time.NewTicker(m.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("llm session worker stopped")
			return
		case <-ticker.C:
			m.UpdateSessions(ctx)
		}
	}
}

// UpdateSessions runs one worker pass: autonomous updates for every
// eligible session, then expiry collection.
func (m *Manager) UpdateSessions(ctx context.Context) {
	m.mu.Lock()
	var due []*Session
	for id, s := range m.sessions {
		if !s.active || s.idleWaitingLLM {
			continue
		}
		if !m.checkCooldownLocked(id, llmUpdateAction, llmUpdateCooldown) {
			continue
		}
		s.cooldowns[llmUpdateAction] = m.now()
		due = append(due, s)
	}
	expired := m.cleanupExpiredLocked()
	m.mu.Unlock()

	m.deleteRows(expired)
	for _, s := range due {
		m.performAutonomousUpdate(ctx, s)
	}
}

// ProcessedPrompt expands the base prompt placeholders for a session.
// Replacement is greedy left-to-right and non-recursive.
func (m *Manager) ProcessedPrompt(s *Session) string {
	return strings.NewReplacer(
		"[NAME]", s.Bot.Name(),
		"[SESSION_ID]", s.ID,
		"[PASSWORD]", s.Bot.Password(),
	).Replace(m.basePrompt())
}

// performAutonomousUpdate snapshots the bot, assembles the conversation and
// fires the asynchronous tool-calling round.
func (m *Manager) performAutonomousUpdate(ctx context.Context, s *Session) {
	state := s.Bot.StateSnapshot()
	stateJSON, err := json.Marshal(state)
	if err != nil {
		m.log.Error("state snapshot marshal", "session", s.ID, "error", err)
		return
	}
	m.log.Debug("autonomous update", "session", s.ID, "state", string(stateJSON))

	userMsg := Message{Role: "user", Content: string(stateJSON)}

	m.mu.Lock()
	messages := make([]Message, 0, len(s.history)+3)
	messages = append(messages, Message{Role: "system", Content: m.ProcessedPrompt(s)})
	if sp := s.Bot.SystemPrompt(); sp != "" {
		messages = append(messages, Message{Role: "system", Content: sp})
	}
	messages = append(messages, s.history...)
	messages = append(messages, userMsg)

	m.appendHistoryLocked(s, userMsg)
	s.idleWaitingLLM = true
	provider := s.Provider
	sessionID := s.ID
	m.mu.Unlock()

	m.dispatcher.CallWithToolsAsync(ctx, messages, provider, func(resp map[string]any, resultType string, results []ToolCallResult) {
		m.handleLLMCallback(sessionID, resp, resultType, results)
	}, sessionID)
}

// handleLLMCallback resumes a session when its LLM round completes. The
// assistant message (with its tool calls) lands in history first, then the
// synthesised tool messages in call order.
func (m *Manager) handleLLMCallback(sessionID string, resp map[string]any, resultType string, results []ToolCallResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return
	}
	s.idleWaitingLLM = false

	switch resultType {
	case "function_calls_executed":
		if msg, ok := responseMessage(resp); ok {
			m.appendHistoryLocked(s, msg)
		}
		for _, toolMsg := range CreateFunctionCallMessages(results) {
			m.appendHistoryLocked(s, toolMsg)
		}
		m.log.Info("llm round complete", "session", sessionID, "tool_calls", len(results))

	case "message":
		if msg, ok := responseMessage(resp); ok && msg.Content != "" {
			m.appendHistoryLocked(s, Message{Role: "assistant", Content: msg.Content})
			m.log.Info("llm round complete", "session", sessionID, "content", msg.Content)
		}

	default:
		reason, _ := resp["error"].(string)
		m.log.Error("llm update failed", "session", sessionID, "error", reason)
	}
}

// appendHistoryLocked pushes to the history deque, evicting from the front
// past the window.
func (m *Manager) appendHistoryLocked(s *Session, msg Message) {
	s.history = append(s.history, msg)
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
}

// History returns a copy of a session's conversation.
func (m *Manager) History(sessionID string) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil
	}
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// IdleWaiting reports whether a session has an LLM round in flight.
func (m *Manager) IdleWaiting(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		return s.idleWaitingLLM
	}
	return false
}

// responseMessage extracts choices[0].message from the raw response map.
func responseMessage(resp map[string]any) (Message, bool) {
	data, err := json.Marshal(resp)
	if err != nil {
		return Message{}, false
	}
	var typed ChatResponse
	if err := json.Unmarshal(data, &typed); err != nil || len(typed.Choices) == 0 {
		return Message{}, false
	}
	return typed.Choices[0].Message, true
}
