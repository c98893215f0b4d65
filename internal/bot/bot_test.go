package bot

import (
	"sync"
	"testing"
	"time"

	"github.com/nextlevelbuilder/botmaster/internal/geom"
	"github.com/nextlevelbuilder/botmaster/internal/transport"
	"github.com/nextlevelbuilder/botmaster/internal/wire"
	"github.com/nextlevelbuilder/botmaster/internal/world"
	"github.com/nextlevelbuilder/botmaster/pkg/protocol"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
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

func newTestBot(t *testing.T) (*Bot, *transport.Loopback, *testClock) {
	t.Helper()
	clock := newTestClock()
	tr := transport.NewLoopback()
	b := New(Config{
		Name:      "testbot",
		Host:      "gta.example",
		Port:      7777,
		Transport: tr,
		Shared:    world.NewSharedPool(),
		Now:       clock.Now,
	})
	return b, tr, clock
}

func TestConnectionDelay(t *testing.T) {
	b, _, clock := newTestBot(t)

	// A fresh bot has a zero reconnect stamp far in the past.
	if !b.CheckConnectionDelay() {
		t.Fatal("fresh bot should pass the connection delay")
	}

	if err := b.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if b.Status() != Connecting {
		t.Fatalf("status = %v, want Connecting", b.Status())
	}

	// Disconnect resets to Disconnected and stamps the throttle.
	b.Disconnect()
	if b.CheckConnectionDelay() {
		t.Error("delay passed immediately after disconnect")
	}
	clock.Advance(4100 * time.Millisecond)
	if !b.CheckConnectionDelay() {
		t.Error("delay still blocking after 4.1s")
	}
}

func TestHandshakeLifecycle(t *testing.T) {
	b, tr, _ := newTestBot(t)
	b.Connect()

	// Auth challenge from the server.
	salt := authKeyTable[3][0]
	tr.Deliver(transport.Event{Kind: transport.EventAuthChallenge, Salt: salt})
	b.Process()
	if b.Status() != WaitForJoin {
		t.Fatalf("status after auth = %v, want WaitForJoin", b.Status())
	}
	if len(tr.SentRaw) != 1 {
		t.Fatalf("auth response not sent: %d raw sends", len(tr.SentRaw))
	}

	// Connection accepted: ClientJoin goes out.
	tr.Deliver(transport.Event{Kind: transport.EventAccepted, PlayerID: 42, Challenge: 0xDEADBEEF})
	b.Process()
	if b.Status() != Connected || b.PlayerID() != 42 {
		t.Fatalf("status=%v player=%d after accept", b.Status(), b.PlayerID())
	}
	joins := tr.RPCsByID(protocol.RPCClientJoin)
	if len(joins) != 1 {
		t.Fatalf("ClientJoin count = %d", len(joins))
	}
	r := wire.NewReader(joins[0].Payload)
	if v := r.I32(); v != protocol.NetVersion {
		t.Errorf("join version = %d", v)
	}
	r.U8()
	if name := r.String8(); name != "testbot" {
		t.Errorf("join name = %q", name)
	}
	if resp := r.U32(); resp != 0xDEADBEEF^protocol.NetVersion {
		t.Errorf("challenge response = %#x", resp)
	}

	// InitGame: class request goes out, gameInited set.
	tr.Deliver(transport.Event{Kind: transport.EventRPC, RPCID: protocol.RPCInitGame, Payload: wire.NewReader(nil)})
	b.Process()
	if !b.GameInited() {
		t.Fatal("gameInited not set after InitGame")
	}
	if len(tr.RPCsByID(protocol.RPCRequestClass)) != 1 {
		t.Fatal("RequestClass not sent")
	}

	// RequestClass reply → RequestSpawn; spawn accepted → Spawned.
	classReply := wire.NewWriter().U8(1).U8(0).U32(0).U8(0).F32(10).F32(20).F32(3).Bytes()
	tr.Deliver(transport.Event{Kind: transport.EventRPC, RPCID: protocol.RPCRequestClass, Payload: wire.NewReader(classReply)})
	b.Process()
	if len(tr.RPCsByID(protocol.RPCRequestSpawn)) != 1 {
		t.Fatal("RequestSpawn not sent")
	}

	spawnReply := wire.NewWriter().U8(1).Bytes()
	tr.Deliver(transport.Event{Kind: transport.EventRPC, RPCID: protocol.RPCRequestSpawn, Payload: wire.NewReader(spawnReply)})
	b.Process()
	if b.Status() != Spawned {
		t.Fatalf("status = %v, want Spawned", b.Status())
	}
	if len(tr.RPCsByID(protocol.RPCSpawn)) != 1 {
		t.Fatal("Spawn not sent")
	}
}

func TestErrorEventResets(t *testing.T) {
	b, tr, _ := newTestBot(t)
	b.Connect()
	tr.Deliver(transport.Event{Kind: transport.EventAccepted, PlayerID: 5, Challenge: 1})
	b.Process()
	b.Pool().AddPickup(world.Pickup{ID: 1})

	tr.Deliver(transport.Event{Kind: transport.EventConnectionLost, Reason: "timeout"})
	b.Process()

	if b.Status() != Disconnected {
		t.Fatalf("status = %v, want Disconnected", b.Status())
	}
	if b.PlayerID() != 0xFFFF {
		t.Errorf("playerID = %d, want 0xFFFF", b.PlayerID())
	}
	if b.GameInited() {
		t.Error("gameInited survived reset")
	}
	if b.Pool().PickupCount() != 0 {
		t.Error("streamable pool survived reset")
	}
	if b.CheckConnectionDelay() {
		t.Error("reconnect throttle not stamped on reset")
	}
}

func TestMovementKinematics(t *testing.T) {
	b, _, clock := newTestBot(t)
	b.mu.Lock()
	b.status = Spawned
	b.mu.Unlock()
	b.SetPosition(geom.Vec3{})

	b.Go(geom.Vec3{X: 10}, protocol.MoveTypeRun, 0, true, protocol.MoveSpeedRun, 0, 0)
	if !b.Flag(FlagMoving) {
		t.Fatal("not moving after Go")
	}
	// Facing +X: atan2(0, 1) + 270 = 270 degrees.
	if a := b.Angle(); a != 270 {
		t.Errorf("angle = %v, want 270", a)
	}
	vel := b.Velocity()
	wantStep := protocol.MoveSpeedRun / 100
	if abs32(vel.X-wantStep) > 1e-5 || vel.Y != 0 {
		t.Errorf("velocity = %+v, want X=%v", vel, wantStep)
	}

	// One second of movement advances X by 1000 * step.
	clock.Advance(time.Second)
	b.Process()
	pos := b.Position()
	want := wantStep * 1000
	if abs32(pos.X-want) > 0.01 {
		t.Errorf("position.X = %v, want %v", pos.X, want)
	}

	// After the move duration plus stop delay the bot stops.
	dur, _ := b.moveTimings()
	clock.Advance(dur)
	b.Process()
	clock.Advance(time.Millisecond)
	b.Process()
	if b.Flag(FlagMoving) {
		t.Error("still moving after arrival")
	}
	if b.Velocity() != (geom.Vec3{}) {
		t.Errorf("velocity after stop = %+v", b.Velocity())
	}
}

func TestDeathAndRespawn(t *testing.T) {
	b, tr, clock := newTestBot(t)
	b.mu.Lock()
	b.status = Spawned
	b.mu.Unlock()

	b.Kill(24, 7)
	if !b.Flag(FlagDead) || b.Health() != 0 {
		t.Fatalf("dead=%v health=%v after Kill", b.Flag(FlagDead), b.Health())
	}
	deaths := tr.RPCsByID(protocol.RPCDeath)
	if len(deaths) != 1 {
		t.Fatalf("Death RPC count = %d", len(deaths))
	}
	r := wire.NewReader(deaths[0].Payload)
	if reason := r.U8(); reason != 24 {
		t.Errorf("death reason = %d", reason)
	}
	if killer := r.U16(); killer != 7 {
		t.Errorf("killer = %d", killer)
	}

	// Not yet respawned inside the delay window.
	clock.Advance(2 * time.Second)
	b.Process()
	if len(tr.RPCsByID(protocol.RPCSpawn)) != 0 {
		t.Fatal("respawned too early")
	}

	clock.Advance(2100 * time.Millisecond)
	b.Process()
	if len(tr.RPCsByID(protocol.RPCSpawn)) != 1 {
		t.Fatal("no respawn after delay")
	}
	if b.Health() != 100 {
		t.Errorf("health after respawn = %v", b.Health())
	}
	if b.Flag(FlagDead) {
		t.Error("dead flag survived respawn")
	}
}

func TestSyncPacing(t *testing.T) {
	b, tr, clock := newTestBot(t)
	b.mu.Lock()
	b.status = Spawned
	b.mu.Unlock()

	// First process emits one sync; repeated processing inside 40ms must
	// not emit another.
	clock.Advance(50 * time.Millisecond)
	b.Process()
	b.Process()
	if got := len(tr.SentRaw); got != 1 {
		t.Fatalf("sync count = %d, want 1", got)
	}
	clock.Advance(41 * time.Millisecond)
	b.Process()
	if got := len(tr.SentRaw); got != 2 {
		t.Fatalf("sync count = %d, want 2", got)
	}
}

func TestSnapshotConsumesBuffers(t *testing.T) {
	b, tr, _ := newTestBot(t)

	chat := wire.NewWriter().U32(0xFFFFFF).String32("hello there").Bytes()
	tr.Deliver(transport.Event{Kind: transport.EventRPC, RPCID: protocol.RPCClientMessage, Payload: wire.NewReader(chat)})
	forced := wire.NewWriter().F32(1).F32(2).F32(3).Bytes()
	tr.Deliver(transport.Event{Kind: transport.EventRPC, RPCID: protocol.RPCSetPlayerPos, Payload: wire.NewReader(forced)})
	b.Process()

	state := b.StateSnapshot()
	msgs := state["new_chat_message"].([]string)
	events := state["important_events"].([]string)
	if len(msgs) != 1 || msgs[0] != "hello there" {
		t.Errorf("new_chat_message = %v", msgs)
	}
	if len(events) != 1 {
		t.Errorf("important_events = %v", events)
	}
	if state["has_active_dialog"] != false {
		t.Errorf("has_active_dialog = %v", state["has_active_dialog"])
	}

	// Second snapshot sees cleared buffers.
	state2 := b.StateSnapshot()
	if len(state2["new_chat_message"].([]string)) != 0 || len(state2["important_events"].([]string)) != 0 {
		t.Error("buffers not consumed by snapshot")
	}
}

func TestChatboxBounded(t *testing.T) {
	b, tr, _ := newTestBot(t)
	for i := 0; i < 70; i++ {
		payload := wire.NewWriter().U32(0).String32("spam").Bytes()
		tr.Deliver(transport.Event{Kind: transport.EventRPC, RPCID: protocol.RPCClientMessage, Payload: wire.NewReader(payload)})
	}
	b.Process()
	if got := len(b.Chatbox()); got != 64 {
		t.Errorf("chatbox length = %d, want 64", got)
	}
}

func TestDialogRoundTrip(t *testing.T) {
	b, tr, _ := newTestBot(t)
	payload := wire.NewWriter().
		I16(33).
		U8(protocol.DialogStyleList).
		String8("Shop").
		String8("Buy").
		String8("Close").
		String16("Pistol\nShotgun").
		Bytes()
	tr.Deliver(transport.Event{Kind: transport.EventRPC, RPCID: protocol.RPCShowDialog, Payload: wire.NewReader(payload)})
	b.Process()

	d, active := b.CurrentDialog()
	if !active || d.ID != 33 || d.Title != "Shop" || d.LeftButton != "Buy" {
		t.Fatalf("dialog = %+v active=%v", d, active)
	}

	b.SendDialogResponse(true, "", 1)
	if b.DialogActive() {
		t.Error("dialog still active after response")
	}
	responses := tr.RPCsByID(protocol.RPCDialogResponse)
	if len(responses) != 1 {
		t.Fatalf("DialogResponse count = %d", len(responses))
	}
	r := wire.NewReader(responses[0].Payload)
	if id := r.I16(); id != 33 {
		t.Errorf("response dialog id = %d", id)
	}
	if button := r.U8(); button != 1 {
		t.Errorf("response button = %d", button)
	}
	if item := r.I16(); item != 1 {
		t.Errorf("response listitem = %d", item)
	}
}

func TestBulletDamageAndArmorSoak(t *testing.T) {
	b, tr, _ := newTestBot(t)
	b.mu.Lock()
	b.status = Spawned
	b.playerID = 9
	b.health = 100
	b.armor = 30
	b.mu.Unlock()

	// Desert Eagle: 46 damage. Armor soaks 30, health takes 16.
	bullet := wire.NewWriter().U8(1).U16(9).U8(24).Bytes()
	tr.Deliver(transport.Event{Kind: transport.EventSync, Sync: transport.SyncBullet, SyncFrom: 3, SyncData: wire.NewReader(bullet)})
	b.Process()
	if b.Armor() != 0 || b.Health() != 84 {
		t.Fatalf("armor=%v health=%v after hit, want 0/84", b.Armor(), b.Health())
	}

	// A second and third hit kill the bot.
	for i := 0; i < 2; i++ {
		tr.Deliver(transport.Event{Kind: transport.EventSync, Sync: transport.SyncBullet, SyncFrom: 3,
			SyncData: wire.NewReader(wire.NewWriter().U8(1).U16(9).U8(24).Bytes())})
		b.Process()
	}
	if !b.Flag(FlagDead) {
		t.Fatal("bot survived lethal damage")
	}
	if len(tr.RPCsByID(protocol.RPCDeath)) != 1 {
		t.Error("Death RPC not sent exactly once")
	}
}

func TestBulletIgnoredForOtherTargets(t *testing.T) {
	b, tr, _ := newTestBot(t)
	b.mu.Lock()
	b.status = Spawned
	b.playerID = 9
	b.mu.Unlock()

	bullet := wire.NewWriter().U8(1).U16(10).U8(24).Bytes() // hit id 10, not us
	tr.Deliver(transport.Event{Kind: transport.EventSync, Sync: transport.SyncBullet, SyncFrom: 3, SyncData: wire.NewReader(bullet)})
	b.Process()
	if b.Health() != 100 {
		t.Errorf("health = %v after miss", b.Health())
	}
}

func TestInvulnerableIgnoresForcedHealth(t *testing.T) {
	clock := newTestClock()
	tr := transport.NewLoopback()
	b := New(Config{
		Name: "tank", Host: "h", Port: 7777,
		Transport: tr, Shared: world.NewSharedPool(),
		Invulnerable: true, Now: clock.Now,
	})

	payload := wire.NewWriter().F32(5).Bytes()
	tr.Deliver(transport.Event{Kind: transport.EventRPC, RPCID: protocol.RPCSetPlayerHealth, Payload: wire.NewReader(payload)})
	b.Process()
	if b.Health() != 100 {
		t.Errorf("invulnerable bot health = %v", b.Health())
	}
}
