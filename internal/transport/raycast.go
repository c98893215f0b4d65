package transport

import "github.com/nextlevelbuilder/botmaster/internal/geom"

// FlatWorld is the default Raycaster when no collision database is loaded:
// an infinite ground plane at the configured height and nothing else.
// Rays never hit obstacles, so pathfinding degenerates to straight moves,
// which is the desired behaviour without collision data.
type FlatWorld struct {
	GroundLevel float32
}

func (f FlatWorld) Raycast(from, to geom.Vec3) (geom.Vec3, bool) {
	// Only downward rays can hit the plane.
	if from.Z <= f.GroundLevel || to.Z >= from.Z {
		return geom.Vec3{}, false
	}
	if to.Z > f.GroundLevel {
		return geom.Vec3{}, false
	}
	t := (from.Z - f.GroundLevel) / (from.Z - to.Z)
	hit := from.Add(to.Sub(from).Scale(t))
	hit.Z = f.GroundLevel
	return hit, true
}

func (f FlatWorld) GroundZ(x, y float32) float32 { return f.GroundLevel }
