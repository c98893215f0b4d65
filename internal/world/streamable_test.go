package world

import (
	"testing"

	"github.com/nextlevelbuilder/botmaster/internal/geom"
)

func TestLabelSwapDelete(t *testing.T) {
	p := NewStreamablePool()
	p.AddLabel(Label{ID: 10, Position: geom.Vec3{X: 1}, AttachedPlayer: -1, AttachedVehicle: -1, Text: "ten"})
	p.AddLabel(Label{ID: 20, Position: geom.Vec3{X: 10}, AttachedPlayer: 3, AttachedVehicle: -1, Text: "twenty"})
	p.AddLabel(Label{ID: 30, Position: geom.Vec3{X: 20}, AttachedPlayer: -1, AttachedVehicle: 7, Text: "thirty"})

	p.RemoveLabel(20)

	if got := p.LabelCount(); got != 2 {
		t.Fatalf("LabelCount = %d, want 2", got)
	}
	if _, ok := p.LabelByID(20); ok {
		t.Error("label 20 still resolvable after removal")
	}
	l, ok := p.LabelByID(30)
	if !ok || l.Text != "thirty" || l.AttachedVehicle != 7 {
		t.Errorf("swapped-in label corrupted: %+v ok=%v", l, ok)
	}
	if got := p.gridIndexSize(); got != 2 {
		t.Errorf("spatial hash holds %d indices, want 2", got)
	}
	if got := p.LabelsAttachedToPlayer(3); len(got) != 0 {
		t.Errorf("attachment index still lists removed label: %+v", got)
	}
	if got := p.LabelsAttachedToVehicle(7); len(got) != 1 || got[0].ID != 30 {
		t.Errorf("vehicle attachment broken after swap: %+v", got)
	}
}

func TestLabelAddRemoveRoundTrip(t *testing.T) {
	p := NewStreamablePool()
	p.AddLabel(Label{ID: 1, Position: geom.Vec3{X: 4, Y: 4}, AttachedPlayer: 9, AttachedVehicle: -1})

	p.RemoveLabel(1)

	if got := p.LabelCount(); got != 0 {
		t.Fatalf("LabelCount = %d, want 0", got)
	}
	if got := p.gridIndexSize(); got != 0 {
		t.Errorf("spatial hash not empty: %d indices", got)
	}
	if got := p.LabelsAttachedToPlayer(9); len(got) != 0 {
		t.Errorf("player attachment not empty: %+v", got)
	}
}

func TestLabelIndicesConsistentAfterChurn(t *testing.T) {
	p := NewStreamablePool()
	for i := 0; i < 50; i++ {
		p.AddLabel(Label{
			ID:              i,
			Position:        geom.Vec3{X: float32(i) * 3},
			AttachedPlayer:  i % 5,
			AttachedVehicle: -1,
		})
	}
	for i := 0; i < 50; i += 2 {
		p.RemoveLabel(i)
	}

	if got := p.LabelCount(); got != 25 {
		t.Fatalf("LabelCount = %d, want 25", got)
	}
	if got := p.gridIndexSize(); got != 25 {
		t.Errorf("spatial hash holds %d indices, want 25", got)
	}
	attached := 0
	for pid := 0; pid < 5; pid++ {
		for _, l := range p.LabelsAttachedToPlayer(pid) {
			if l.ID%5 != pid {
				t.Errorf("label %d filed under player %d", l.ID, pid)
			}
			attached++
		}
	}
	if attached != 25 {
		t.Errorf("attachment indices reference %d labels, want 25", attached)
	}
}

func TestLabelsInRangeMatchesLinear(t *testing.T) {
	p := NewStreamablePool()
	coords := []geom.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1.5, Y: 1.5, Z: 0},
		{X: 5, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 10},
		{X: -3, Y: 4, Z: 0},
	}
	for i, c := range coords {
		p.AddLabel(Label{ID: i, Position: c, AttachedPlayer: -1, AttachedVehicle: -1})
	}

	for _, rng := range []float32{1, 3, 6, 20} {
		hashed := p.LabelsInRange(geom.Vec3{}, rng)
		linear := p.LabelsInRangeLinear(geom.Vec3{}, rng)
		if len(hashed) != len(linear) {
			t.Errorf("range %.0f: spatial %d results, linear %d", rng, len(hashed), len(linear))
		}
	}
}

func TestPickupSwapDelete(t *testing.T) {
	p := NewStreamablePool()
	for i := 1; i <= 3; i++ {
		p.AddPickup(Pickup{ID: i, Model: 1000 + i, Position: geom.Vec3{X: float32(i)}})
	}

	p.RemovePickup(1)

	if got := p.PickupCount(); got != 2 {
		t.Fatalf("PickupCount = %d, want 2", got)
	}
	pos, ok := p.PickupPosition(3)
	if !ok || pos.X != 3 {
		t.Errorf("PickupPosition(3) = %v ok=%v after swap", pos, ok)
	}
	if _, ok := p.PickupPosition(1); ok {
		t.Error("removed pickup still resolvable")
	}
	p.RemovePickup(1) // repeated removal is a no-op
	if got := p.PickupCount(); got != 2 {
		t.Fatalf("no-op removal changed count to %d", got)
	}
}

func TestClearResetsEverything(t *testing.T) {
	p := NewStreamablePool()
	p.AddPickup(Pickup{ID: 1})
	p.AddObject(Object{ID: 2})
	p.AddLabel(Label{ID: 3, AttachedPlayer: 1, AttachedVehicle: -1})

	p.Clear()

	if p.PickupCount() != 0 || p.ObjectCount() != 0 || p.LabelCount() != 0 {
		t.Fatalf("Clear left %d/%d/%d entries", p.PickupCount(), p.ObjectCount(), p.LabelCount())
	}
	if got := p.LabelsAttachedToPlayer(1); len(got) != 0 {
		t.Errorf("attachment index survived Clear: %+v", got)
	}
}
