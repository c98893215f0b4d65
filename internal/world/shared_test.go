package world

import (
	"testing"

	"github.com/nextlevelbuilder/botmaster/internal/geom"
)

var testAddr = Addr{Host: "gta.example", Port: 7777}

func TestAddPlayerDedup(t *testing.T) {
	sp := NewSharedPool()
	p := Player{ID: 5, Name: "A", StreamCount: 1}

	sp.AddPlayer(testAddr, p)
	sp.AddPlayer(testAddr, p)

	if got := sp.PlayerCount(testAddr); got != 1 {
		t.Fatalf("PlayerCount = %d, want 1", got)
	}
}

func TestAddPlayerDistinctNamesSameID(t *testing.T) {
	sp := NewSharedPool()
	sp.AddPlayer(testAddr, Player{ID: 5, Name: "A"})
	sp.AddPlayer(testAddr, Player{ID: 5, Name: "B"})

	if got := sp.PlayerCount(testAddr); got != 2 {
		t.Fatalf("PlayerCount = %d, want 2", got)
	}
}

func TestDecrementPlayerStreamRemovesAtZero(t *testing.T) {
	sp := NewSharedPool()
	sp.AddPlayer(testAddr, Player{ID: 1, Name: "A", StreamCount: 2})
	sp.AddPlayer(testAddr, Player{ID: 2, Name: "B", StreamCount: 1})

	sp.DecrementPlayerStream(testAddr, 1)
	if got := sp.PlayerCount(testAddr); got != 2 {
		t.Fatalf("after first decrement: PlayerCount = %d, want 2", got)
	}

	sp.DecrementPlayerStream(testAddr, 1)
	if got := sp.PlayerCount(testAddr); got != 1 {
		t.Fatalf("after second decrement: PlayerCount = %d, want 1", got)
	}
	if name := sp.PlayerName(testAddr, 1); name != "" {
		t.Errorf("removed player still resolvable: %q", name)
	}
	if name := sp.PlayerName(testAddr, 2); name != "B" {
		t.Errorf("survivor corrupted by swap: got %q, want B", name)
	}

	// Re-adding the removed identity must succeed: its hash left the set.
	sp.AddPlayer(testAddr, Player{ID: 1, Name: "A", StreamCount: 1})
	if got := sp.PlayerCount(testAddr); got != 2 {
		t.Fatalf("re-add after removal: PlayerCount = %d, want 2", got)
	}
}

func TestRemovePlayerByNameSwap(t *testing.T) {
	sp := NewSharedPool()
	for i, name := range []string{"A", "B", "C"} {
		sp.AddPlayer(testAddr, Player{ID: i, Name: name})
	}

	sp.RemovePlayerByName(testAddr, "B")

	if got := sp.PlayerCount(testAddr); got != 2 {
		t.Fatalf("PlayerCount = %d, want 2", got)
	}
	if name := sp.PlayerName(testAddr, 2); name != "C" {
		t.Errorf("PlayerName(2) = %q, want C", name)
	}
}

func TestVehicleStreamCountLifecycle(t *testing.T) {
	sp := NewSharedPool()
	sp.AddVehicle(testAddr, Vehicle{ID: 10, Model: 411})
	sp.IncrementVehicleStream(testAddr, 10)
	sp.IncrementVehicleStream(testAddr, 10)
	sp.DecrementVehicleStream(testAddr, 10)

	if got := sp.VehicleCount(testAddr); got != 1 {
		t.Fatalf("VehicleCount = %d, want 1", got)
	}

	sp.DecrementVehicleStream(testAddr, 10)
	if got := sp.VehicleCount(testAddr); got != 0 {
		t.Fatalf("VehicleCount = %d, want 0", got)
	}
}

func TestPlayersInRange(t *testing.T) {
	sp := NewSharedPool()
	sp.AddPlayer(testAddr, Player{ID: 1, Name: "near", Position: geom.Vec3{X: 10}})
	sp.AddPlayer(testAddr, Player{ID: 2, Name: "far", Position: geom.Vec3{X: 500}})
	sp.AddPlayer(testAddr, Player{ID: 3, Name: "npc", IsNPC: true, Position: geom.Vec3{X: 5}})

	got := sp.PlayersInRange(testAddr, geom.Vec3{}, 300, false)
	if len(got) != 1 || got[0].Name != "near" {
		t.Fatalf("PlayersInRange(no npc) = %+v, want only near", got)
	}

	withNPCs := sp.PlayersInRange(testAddr, geom.Vec3{}, 300, true)
	if len(withNPCs) != 2 {
		t.Fatalf("PlayersInRange(npc) returned %d, want 2", len(withNPCs))
	}
}

func TestRangeQueryUnknownServer(t *testing.T) {
	sp := NewSharedPool()
	if got := sp.PlayersInRange(Addr{Host: "nowhere", Port: 1}, geom.Vec3{}, 300, true); len(got) != 0 {
		t.Fatalf("query on unknown server returned %d entries", len(got))
	}
}

func TestUpdatePlayerState(t *testing.T) {
	sp := NewSharedPool()
	sp.AddPlayer(testAddr, Player{ID: 7, Name: "X", Health: 100})

	sp.UpdatePlayer(testAddr, 7, PlayerState{
		Position: geom.Vec3{X: 1, Y: 2, Z: 3},
		Health:   55,
		Armor:    20,
		Weapon:   24,
	})

	players := sp.AllPlayers(testAddr, true)
	if len(players) != 1 {
		t.Fatalf("AllPlayers returned %d entries", len(players))
	}
	p := players[0]
	if p.Health != 55 || p.Armor != 20 || p.Weapon != 24 || p.Position.X != 1 {
		t.Errorf("update not applied: %+v", p)
	}
}
