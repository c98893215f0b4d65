package fleet

import (
	"testing"
	"time"

	"github.com/nextlevelbuilder/botmaster/internal/bot"
	"github.com/nextlevelbuilder/botmaster/internal/transport"
	"github.com/nextlevelbuilder/botmaster/internal/wire"
	"github.com/nextlevelbuilder/botmaster/internal/world"
	"github.com/nextlevelbuilder/botmaster/pkg/protocol"
)

func newQueueBot(name, host string) (*bot.Bot, *transport.Loopback) {
	tr := transport.NewLoopback()
	b := bot.New(bot.Config{
		Name:      name,
		Host:      host,
		Port:      7777,
		Transport: tr,
		Shared:    world.NewSharedPool(),
	})
	return b, tr
}

// finishJoin walks a bot through accept + init so gameInited becomes true.
func finishJoin(b *bot.Bot, tr *transport.Loopback) {
	tr.Deliver(
		transport.Event{Kind: transport.EventAccepted, PlayerID: 1, Challenge: 1},
		transport.Event{Kind: transport.EventRPC, RPCID: protocol.RPCInitGame, Payload: wire.NewReader(nil)},
	)
	b.Process()
}

func TestQueuedAdmissionSerialisesPerServer(t *testing.T) {
	b1, tr1 := newQueueBot("b1", "gta.example")
	b2, _ := newQueueBot("b2", "gta.example")
	bots := []*bot.Bot{b1, b2}
	q := NewQueue(PolicyQueued)

	if got := q.TryConnect(bots); got != 1 {
		t.Fatalf("first TryConnect admitted %d, want 1", got)
	}
	if b1.Status() != bot.Connecting {
		t.Errorf("b1 status = %v, want Connecting (insertion order)", b1.Status())
	}
	if b2.Status() != bot.Disconnected {
		t.Errorf("b2 status = %v, want Disconnected", b2.Status())
	}

	// While b1 is still joining, b2 stays held back.
	if got := q.TryConnect(bots); got != 0 {
		t.Fatalf("second TryConnect admitted %d, want 0", got)
	}

	// b1 finishes game init; b2 is now admitted.
	finishJoin(b1, tr1)
	if got := q.TryConnect(bots); got != 1 {
		t.Fatalf("third TryConnect admitted %d, want 1", got)
	}
	if b2.Status() != bot.Connecting {
		t.Errorf("b2 status = %v, want Connecting", b2.Status())
	}
}

func TestQueuedAdmissionIndependentServers(t *testing.T) {
	b1, _ := newQueueBot("b1", "server-a")
	b2, _ := newQueueBot("b2", "server-b")
	q := NewQueue(PolicyQueued)

	if got := q.TryConnect([]*bot.Bot{b1, b2}); got != 2 {
		t.Fatalf("admitted %d across distinct servers, want 2", got)
	}
}

func TestAggressiveAdmitsAll(t *testing.T) {
	b1, _ := newQueueBot("b1", "gta.example")
	b2, _ := newQueueBot("b2", "gta.example")
	q := NewQueue(PolicyAggressive)

	if got := q.TryConnect([]*bot.Bot{b1, b2}); got != 2 {
		t.Fatalf("aggressive admitted %d, want 2", got)
	}
}

func TestAdmissionRespectsReconnectDelay(t *testing.T) {
	b1, tr1 := newQueueBot("b1", "gta.example")
	q := NewQueue(PolicyQueued)

	q.TryConnect([]*bot.Bot{b1})
	tr1.Deliver(transport.Event{Kind: transport.EventConnectionLost})
	b1.Process()
	if b1.Status() != bot.Disconnected {
		t.Fatal("bot not reset by connection loss")
	}

	// Freshly reset: the 4s throttle blocks re-admission.
	if got := q.TryConnect([]*bot.Bot{b1}); got != 0 {
		t.Fatalf("admitted %d inside reconnect delay, want 0", got)
	}
}

func TestManagerAddRemove(t *testing.T) {
	m := NewManager(NewQueue(PolicyQueued), nil)
	b1, _ := newQueueBot("b1", "h")

	m.Add(b1)
	if m.Count() != 1 {
		t.Fatalf("Count = %d", m.Count())
	}
	if _, ok := m.Get(b1.UUID()); !ok {
		t.Fatal("Get failed for added bot")
	}
	if !m.Remove(b1.UUID()) {
		t.Fatal("Remove returned false")
	}
	if m.Count() != 0 {
		t.Errorf("Count after remove = %d", m.Count())
	}
	if m.Remove("missing") {
		t.Error("Remove of unknown uuid returned true")
	}
}

func TestManagerEventFeed(t *testing.T) {
	m := NewManager(NewQueue(PolicyQueued), nil)
	events, cancel := m.Subscribe()
	defer cancel()

	b1, _ := newQueueBot("b1", "h")
	m.Add(b1)

	select {
	case ev := <-events:
		if ev.Type != "bot.added" || ev.Bot != b1.UUID() {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}
