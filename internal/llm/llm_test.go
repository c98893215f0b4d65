package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
	"github.com/nextlevelbuilder/botmaster/internal/geom"
	"github.com/nextlevelbuilder/botmaster/internal/store"
	"github.com/nextlevelbuilder/botmaster/internal/transport"
	"github.com/nextlevelbuilder/botmaster/internal/world"
)

// fakeClock is a manually advanced time source shared by a test.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestBot(t *testing.T) *bot.Bot {
	t.Helper()
	return bot.New(bot.Config{
		Name:      "tester",
		Host:      "gta.example",
		Port:      7777,
		Transport: transport.NewLoopback(),
		Shared:    world.NewSharedPool(),
	})
}

func newTestManager(t *testing.T, clock *fakeClock, prompt string) (*Manager, *Dispatcher) {
	t.Helper()
	d := NewDispatcher(nil)
	m := NewManager(ManagerConfig{
		Dispatcher: d,
		BasePrompt: func() string { return prompt },
		Now:        clock.Now,
	})
	return m, d
}

func TestExecuteUnknownFunction(t *testing.T) {
	_, d := newTestManager(t, newFakeClock(), "")
	result := d.Execute("nope", nil, "")
	if result["error"] != "Function not found: nope" {
		t.Errorf("unexpected result: %v", result)
	}
}

func TestActionCooldown(t *testing.T) {
	clock := newFakeClock()
	m, d := newTestManager(t, clock, "")
	b := newTestBot(t)
	provider := NewProvider(storeProvider("p"))
	sid := m.CreateSession(b, provider)

	calls := 0
	d.Register("goto", "move", map[string]any{"type": "object"}, func(args map[string]any, sessionID string) map[string]any {
		calls++
		return Success(map[string]any{"ok": true})
	})

	first := d.Execute("goto", nil, sid)
	if first["error"] != nil {
		t.Fatalf("first call failed: %v", first)
	}

	clock.Advance(500 * time.Millisecond)
	second := d.Execute("goto", nil, sid)
	if second["error"] != "Action goto is on cooldown" {
		t.Fatalf("second call = %v, want cooldown error", second)
	}
	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}

	clock.Advance(2 * time.Second)
	third := d.Execute("goto", nil, sid)
	if third["error"] != nil {
		t.Errorf("call after cooldown failed: %v", third)
	}
}

func TestPlaceholderExpansion(t *testing.T) {
	clock := newFakeClock()
	m, _ := newTestManager(t, clock, "You are [NAME] in session [SESSION_ID]. Password: [PASSWORD].")
	b := newTestBot(t)
	b.SetPassword("hunter2")
	sid := m.CreateSession(b, NewProvider(storeProvider("p")))

	s := &Session{ID: sid, Bot: b}
	got := m.ProcessedPrompt(s)
	want := fmt.Sprintf("You are tester in session %s. Password: hunter2.", sid)
	if got != want {
		t.Errorf("ProcessedPrompt = %q, want %q", got, want)
	}
}

func TestOneActiveSessionPerBot(t *testing.T) {
	clock := newFakeClock()
	m, _ := newTestManager(t, clock, "")
	b := newTestBot(t)
	p := NewProvider(storeProvider("p"))

	first := m.CreateSession(b, p)
	second := m.CreateSession(b, p)

	if m.ActiveCount() != 1 {
		t.Fatalf("ActiveCount = %d, want 1", m.ActiveCount())
	}
	if _, ok := m.BotForSession(first); ok {
		t.Error("first session still active after replacement")
	}
	if got, ok := m.SessionForBot(b.UUID()); !ok || got != second {
		t.Errorf("reverse map = %q ok=%v, want %q", got, ok, second)
	}
}

func TestEndSessionRestoresEmptyMaps(t *testing.T) {
	clock := newFakeClock()
	m, _ := newTestManager(t, clock, "")
	b := newTestBot(t)
	sid := m.CreateSession(b, NewProvider(storeProvider("p")))

	if !m.EndSession(sid) {
		t.Fatal("EndSession returned false")
	}
	if m.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d after end", m.ActiveCount())
	}
	if _, ok := m.SessionForBot(b.UUID()); ok {
		t.Error("reverse map still holds ended session")
	}
}

func TestSessionExpiry(t *testing.T) {
	clock := newFakeClock()
	m, _ := newTestManager(t, clock, "")
	b := newTestBot(t)
	m.CreateSession(b, NewProvider(storeProvider("p")))

	clock.Advance(31 * time.Minute)
	m.UpdateSessions(context.Background())

	if m.ActiveCount() != 0 {
		t.Errorf("expired session survived: ActiveCount = %d", m.ActiveCount())
	}
}

func TestHistoryWindow(t *testing.T) {
	clock := newFakeClock()
	m, _ := newTestManager(t, clock, "")
	b := newTestBot(t)
	sid := m.CreateSession(b, NewProvider(storeProvider("p")))

	m.mu.Lock()
	s := m.sessions[sid]
	for i := 0; i < 30; i++ {
		m.appendHistoryLocked(s, Message{Role: "user", Content: fmt.Sprintf("msg %d", i)})
	}
	m.mu.Unlock()

	history := m.History(sid)
	if len(history) != maxHistory {
		t.Fatalf("history length = %d, want %d", len(history), maxHistory)
	}
	if history[0].Content != "msg 10" {
		t.Errorf("history[0] = %q, eviction not front-first", history[0].Content)
	}
}

// TestToolCallRound drives a full autonomous round against a stub
// completions endpoint that requests one get_position call.
func TestToolCallRound(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		if _, ok := req["tools"]; !ok {
			t.Error("request carries no tools array")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"","tool_calls":[
			{"id":"t1","type":"function","function":{"name":"get_position","arguments":"{}"}}
		]},"finish_reason":"tool_calls"}]}`)
	}))
	defer server.Close()

	clock := newFakeClock()
	d := NewDispatcher(nil)
	m := NewManager(ManagerConfig{
		Dispatcher: d,
		BasePrompt: func() string { return "base" },
		Now:        clock.Now,
	})

	b := newTestBot(t)
	b.SetPosition(geom.Vec3{X: 1, Y: 2, Z: 3})

	d.Register("get_position", "where am I", map[string]any{"type": "object"}, func(args map[string]any, sessionID string) map[string]any {
		bb, ok := m.BotForSession(sessionID)
		if !ok {
			return Errorf("Bot not found for session")
		}
		pos := bb.Position()
		return Success(map[string]any{"x": pos.X, "y": pos.Y, "z": pos.Z})
	})

	provider := NewProvider(storeProvider(server.URL))
	sid := m.CreateSession(b, provider)

	m.UpdateSessions(context.Background())

	// The round runs on its own goroutine; wait for the callback.
	deadline := time.Now().Add(5 * time.Second)
	for m.IdleWaiting(sid) && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if m.IdleWaiting(sid) {
		t.Fatal("session still waiting on LLM after deadline")
	}
	if requests != 1 {
		t.Fatalf("LLM endpoint hit %d times, want 1", requests)
	}

	history := m.History(sid)
	// user snapshot + assistant tool_calls + tool result
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3: %+v", len(history), history)
	}
	if history[1].Role != "assistant" || len(history[1].ToolCalls) != 1 {
		t.Errorf("history[1] is not the assistant tool_calls message: %+v", history[1])
	}
	toolMsg := history[2]
	if toolMsg.Role != "tool" || toolMsg.ToolCallID != "t1" {
		t.Fatalf("history[2] is not the tool message: %+v", toolMsg)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(toolMsg.Content), &result); err != nil {
		t.Fatalf("tool content is not JSON: %v", err)
	}
	data, _ := result["data"].(map[string]any)
	if result["success"] != true || data["x"] != 1.0 || data["y"] != 2.0 || data["z"] != 3.0 {
		t.Errorf("tool result = %v", result)
	}

	// A second pass inside the llm_update cooldown must not call out.
	m.UpdateSessions(context.Background())
	time.Sleep(50 * time.Millisecond)
	if requests != 1 {
		t.Errorf("llm_update cooldown not enforced: %d requests", requests)
	}
}

func TestLLMErrorClearsWaiting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	clock := newFakeClock()
	m, _ := newTestManager(t, clock, "")
	b := newTestBot(t)
	sid := m.CreateSession(b, NewProvider(storeProvider(server.URL)))

	m.UpdateSessions(context.Background())

	deadline := time.Now().Add(5 * time.Second)
	for m.IdleWaiting(sid) && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if m.IdleWaiting(sid) {
		t.Fatal("error callback did not clear isIdleWaitingLLM")
	}
}

// storeProvider builds provider seed data with the given base URL.
func storeProvider(baseURL string) store.LLMProviderData {
	return store.LLMProviderData{
		Name:    "test",
		APIKey:  "key",
		BaseURL: baseURL,
		Model:   "test-model",
	}
}
