// Package geom holds the small amount of 3D math the bots need: vectors,
// a Z-axis rotation quaternion and angle helpers.
package geom

import "math"

// Vec3 is a world-space position or velocity.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) LenSq() float32 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

func (v Vec3) Len() float32 { return float32(math.Sqrt(float64(v.LenSq()))) }

func (v Vec3) DistSq(o Vec3) float32 { return v.Sub(o).LenSq() }

func (v Vec3) Dist(o Vec3) float32 { return v.Sub(o).Len() }

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Quat is a rotation quaternion in (W, X, Y, Z) order as carried by the
// on-foot sync payload.
type Quat struct {
	W, X, Y, Z float32
}

// QuatFromFacing builds the rotation for a facing angle in degrees. The
// game's angle system runs clockwise, so the angle is mirrored before the
// Z-axis rotation is built.
func QuatFromFacing(deg float32) Quat {
	g := 360 - deg
	if g >= 360 {
		g -= 360
	}
	half := float64(g) * math.Pi / 180 / 2
	return Quat{
		W: float32(math.Cos(half)),
		Z: float32(math.Sin(half)),
	}
}

// FacingAngle returns the facing angle in degrees toward dir, normalised to
// [0, 360). Matches atan2(dy,dx)+270 of the original movement math.
func FacingAngle(dir Vec3) float32 {
	a := float32(math.Atan2(float64(dir.Y), float64(dir.X))*180/math.Pi) + 270
	for a >= 360 {
		a -= 360
	}
	for a < 0 {
		a += 360
	}
	return a
}

// Round2 rounds to two decimal places for LLM-facing output.
func Round2(v float32) float32 {
	return float32(math.Round(float64(v)*100) / 100)
}
