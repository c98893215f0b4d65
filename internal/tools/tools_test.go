package tools

import (
	"sync"
	"testing"
	"time"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
	"github.com/nextlevelbuilder/botmaster/internal/gamedata"
	"github.com/nextlevelbuilder/botmaster/internal/geom"
	"github.com/nextlevelbuilder/botmaster/internal/llm"
	"github.com/nextlevelbuilder/botmaster/internal/store"
	"github.com/nextlevelbuilder/botmaster/internal/transport"
	"github.com/nextlevelbuilder/botmaster/internal/world"
	"github.com/nextlevelbuilder/botmaster/pkg/protocol"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	dispatcher *llm.Dispatcher
	sessions   *llm.Manager
	shared     *world.SharedPool
	bot        *bot.Bot
	tr         *transport.Loopback
	clock      *testClock
	sessionID  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	shared := world.NewSharedPool()
	tr := transport.NewLoopback()
	b := bot.New(bot.Config{
		Name:      "tool-bot",
		Host:      "gta.example",
		Port:      7777,
		Transport: tr,
		Shared:    shared,
	})

	clock := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	d := llm.NewDispatcher(nil)
	m := llm.NewManager(llm.ManagerConfig{Dispatcher: d, Now: clock.Now})
	RegisterAll(d, Deps{Sessions: m, Shared: shared, Objects: gamedata.NewObjectNames()})

	provider := llm.NewProvider(store.LLMProviderData{Name: "p", BaseURL: "http://unused", Model: "m"})
	sid := m.CreateSession(b, provider)
	return &fixture{dispatcher: d, sessions: m, shared: shared, bot: b, tr: tr, clock: clock, sessionID: sid}
}

// exec runs a tool, advancing the clock past the action cooldown first so
// back-to-back calls in one test do not trip it.
func (f *fixture) exec(name string, args map[string]any) map[string]any {
	f.clock.Advance(3 * time.Second)
	return f.dispatcher.Execute(name, args, f.sessionID)
}

func TestGetPosition(t *testing.T) {
	f := newFixture(t)
	f.bot.SetPosition(geom.Vec3{X: 1, Y: 2, Z: 3})

	result := f.exec("get_position", nil)
	data, _ := result["data"].(map[string]any)
	if result["success"] != true || data == nil {
		t.Fatalf("get_position = %v", result)
	}
	if data["x"].(float32) != 1 || data["y"].(float32) != 2 || data["z"].(float32) != 3 {
		t.Errorf("position data = %v", data)
	}
}

func TestUnknownSessionIsError(t *testing.T) {
	f := newFixture(t)
	result := f.dispatcher.Execute("get_position", nil, "bogus-session")
	if result["error"] != "Bot not found for session" {
		t.Errorf("result = %v", result)
	}
}

func TestSendPickupRangeCheck(t *testing.T) {
	f := newFixture(t)
	f.bot.SetPosition(geom.Vec3{})
	f.bot.Pool().AddPickup(world.Pickup{ID: 7, Model: 1240, Position: geom.Vec3{X: 10}})
	f.bot.Pool().AddPickup(world.Pickup{ID: 8, Model: 1240, Position: geom.Vec3{X: 2}})

	far := f.exec("send_pickup", map[string]any{"pickup_id": float64(7)})
	if far["error"] != "Pickup is too far, distance: 10.00" {
		t.Errorf("far pickup result = %v", far)
	}
	if len(f.tr.RPCsByID(protocol.RPCPickedUpPickup)) != 0 {
		t.Error("pickup RPC sent despite range error")
	}

	near := f.exec("send_pickup", map[string]any{"pickup_id": float64(8)})
	if near["success"] != true {
		t.Errorf("near pickup result = %v", near)
	}
	if len(f.tr.RPCsByID(protocol.RPCPickedUpPickup)) != 1 {
		t.Error("pickup RPC not sent for in-range pickup")
	}
}

func TestListObjectsCapAndOrder(t *testing.T) {
	f := newFixture(t)
	f.bot.SetPosition(geom.Vec3{})
	for i := 0; i < 120; i++ {
		f.bot.Pool().AddObject(world.Object{ID: i, Model: 3000, Position: geom.Vec3{X: float32(120 - i)}})
	}

	result := f.exec("list_objects", nil)
	data, _ := result["data"].(map[string]any)
	objects, _ := data["objects"].([]map[string]any)
	if len(objects) != maxObjectList {
		t.Fatalf("list_objects returned %d entries, want %d", len(objects), maxObjectList)
	}
	prev := float32(-1)
	for i, o := range objects {
		pos := o["position"].(map[string]any)
		x := pos["x"].(float32)
		if x < prev {
			t.Fatalf("objects not ordered by ascending distance at %d: %v < %v", i, x, prev)
		}
		prev = x
	}
}

func TestGotoValidation(t *testing.T) {
	f := newFixture(t)

	missing := f.exec("goto", map[string]any{"x": float64(1), "y": float64(2)})
	if missing["error"] != "X, Y, Z coordinates required" {
		t.Errorf("missing coords result = %v", missing)
	}

	badType := f.exec("forced_goto", map[string]any{
		"x": float64(1), "y": float64(2), "z": float64(3), "move_type": "fly",
	})
	if badType["error"] != "Invalid move_type. Use 'walk', 'run'" {
		t.Errorf("bad move_type result = %v", badType)
	}
}

func TestForcedGotoStartsMovement(t *testing.T) {
	f := newFixture(t)
	f.bot.SetPosition(geom.Vec3{})

	result := f.exec("forced_goto", map[string]any{
		"x": float64(10), "y": float64(0), "z": float64(0), "move_type": "run",
	})
	if result["success"] != true {
		t.Fatalf("forced_goto = %v", result)
	}
	if !f.bot.Flag(bot.FlagMoving) {
		t.Error("bot not moving after forced_goto")
	}
}

func TestRandomExploreRangeCap(t *testing.T) {
	f := newFixture(t)
	result := f.exec("random_explore", map[string]any{"move_type": "walk", "dist": float64(200)})
	if result["error"] != "Distance parameter out of range" {
		t.Errorf("result = %v", result)
	}
}

func TestCommandPrependsSlash(t *testing.T) {
	f := newFixture(t)
	result := f.exec("command", map[string]any{"cmd": "help"})
	data, _ := result["data"].(map[string]any)
	if data["command_sent"] != "/help" {
		t.Errorf("command_sent = %v", data["command_sent"])
	}
	rpcs := f.tr.RPCsByID(protocol.RPCServerCommand)
	if len(rpcs) != 1 {
		t.Fatalf("server command RPC count = %d", len(rpcs))
	}
}

func TestChatSendsChatRPC(t *testing.T) {
	f := newFixture(t)
	result := f.exec("chat", map[string]any{"msg": "hello"})
	if result["success"] != true {
		t.Fatalf("chat = %v", result)
	}
	if len(f.tr.RPCsByID(protocol.RPCChat)) != 1 {
		t.Error("chat RPC not recorded")
	}
}

func TestDialogResponseRequiresActiveDialog(t *testing.T) {
	f := newFixture(t)
	result := f.exec("dialog_response", map[string]any{"button": true})
	if result["error"] != "No active dialog to respond to" {
		t.Errorf("result = %v", result)
	}
}

func TestListServerPlayerNPCFilter(t *testing.T) {
	f := newFixture(t)
	addr := f.bot.Addr()
	f.shared.AddPlayer(addr, world.Player{ID: 1, Name: "human"})
	f.shared.AddPlayer(addr, world.Player{ID: 2, Name: "npc", IsNPC: true})

	noNPC := f.exec("list_server_player", map[string]any{})
	data, _ := noNPC["data"].(map[string]any)
	players, _ := data["players"].([]map[string]any)
	if len(players) != 1 || players[0]["name"] != "human" {
		t.Errorf("players without npc = %v", players)
	}

	withNPC := f.exec("list_server_player", map[string]any{"npc_included": true})
	data2, _ := withNPC["data"].(map[string]any)
	players2, _ := data2["players"].([]map[string]any)
	if len(players2) != 2 {
		t.Errorf("players with npc = %v", players2)
	}
}
