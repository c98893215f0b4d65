package bot

import (
	"testing"

	"github.com/nextlevelbuilder/botmaster/internal/geom"
	"github.com/nextlevelbuilder/botmaster/internal/transport"
	"github.com/nextlevelbuilder/botmaster/internal/world"
)

// terraced returns ground height by x band, simulating steps.
type terraced struct{}

func (terraced) heightAt(x float32) float32 {
	switch {
	case x < 5:
		return 0
	case x < 10:
		return 0.9
	default:
		return 1.8
	}
}

func (t terraced) Raycast(from, to geom.Vec3) (geom.Vec3, bool) {
	// Only vertical probes hit; lateral visibility rays report blocked so
	// GoWithPath always runs the pathfinder.
	if from.X == to.X && from.Y == to.Y {
		return geom.Vec3{X: from.X, Y: from.Y, Z: t.heightAt(from.X)}, true
	}
	return geom.Vec3{}, true
}

func (t terraced) GroundZ(x, y float32) float32 { return t.heightAt(x) }

// cliff is flat ground with nothing at height; the goal floats high above.
type cliff struct{}

func (cliff) Raycast(from, to geom.Vec3) (geom.Vec3, bool) {
	if from.X == to.X && from.Y == to.Y {
		return geom.Vec3{X: from.X, Y: from.Y, Z: 0}, true
	}
	return geom.Vec3{}, true
}

func (cliff) GroundZ(x, y float32) float32 { return 0 }

func pathBot(t *testing.T, ray transport.Raycaster) *Bot {
	t.Helper()
	return New(Config{
		Name:      "pather",
		Host:      "h",
		Port:      7777,
		Transport: transport.NewLoopback(),
		Shared:    world.NewSharedPool(),
		Raycaster: ray,
	})
}

func TestFindPathTooFar(t *testing.T) {
	b := pathBot(t, terraced{})
	if path := b.findPath(geom.Vec3{}, geom.Vec3{X: 200}); path != nil {
		t.Fatalf("span > 150 returned %d waypoints", len(path))
	}
}

func TestFindPathAcrossTerraces(t *testing.T) {
	b := pathBot(t, terraced{})
	from := geom.Vec3{X: 1, Y: 0, Z: 0}
	to := geom.Vec3{X: 12, Y: 0, Z: 1.8}

	path := b.findPath(from, to)
	if len(path) == 0 {
		t.Fatal("no path across climbable terraces")
	}
	if first := path[0]; first != from {
		t.Errorf("path starts at %+v, want %+v", first, from)
	}
	if last := path[len(path)-1]; last != to {
		t.Errorf("path ends at %+v, want %+v", last, to)
	}
}

func TestFindPathUnreachableGoal(t *testing.T) {
	b := pathBot(t, cliff{})
	from := geom.Vec3{X: 0, Y: 0, Z: 0}
	to := geom.Vec3{X: 10, Y: 0, Z: 50} // far above every ground sample

	if path := b.findPath(from, to); path != nil {
		t.Fatalf("unreachable goal returned %d waypoints", len(path))
	}
}

func TestGoWithPathFailureRecordsEvent(t *testing.T) {
	b := pathBot(t, cliff{})
	b.SetPosition(geom.Vec3{})

	b.GoWithPath(geom.Vec3{X: 10, Y: 0, Z: 50}, 2, 0.56)

	if b.Flag(FlagMoving) {
		t.Error("bot moving despite pathfinder failure")
	}
	state := b.StateSnapshot()
	events := state["important_events"].([]string)
	if len(events) != 1 || events[0] != "Pathfinder failed! Target too far or the goal too complex!" {
		t.Errorf("important_events = %v", events)
	}
}

func TestGoWithPathStartsMovepath(t *testing.T) {
	b := pathBot(t, terraced{})
	b.SetPosition(geom.Vec3{X: 1, Y: 0, Z: 0})

	b.GoWithPath(geom.Vec3{X: 12, Y: 0, Z: 1.8}, 2, 0.56)

	if b.MovepathStatus() != MovepathActive {
		t.Fatalf("movepath status = %v, want active", b.MovepathStatus())
	}
	if !b.Flag(FlagMoving) {
		t.Error("bot not moving along movepath")
	}
}
