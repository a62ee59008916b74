package core

import "fmt"

// Bounds are the current world dimensions. The playfield is a torus: the
// left/right and top/bottom edges are identified.
type Bounds struct {
	W, H float64
}

// MinEdge returns the shorter side, used to scale entity sizes.
func (b Bounds) MinEdge() float64 {
	return min(float64(int(b.W)), float64(int(b.H)))
}

// Center returns the middle of the playfield.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.W / 2, Y: b.H / 2}
}

// Contains reports whether p lies inside [0, W] x [0, H].
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= b.W && p.Y >= 0 && p.Y <= b.H
}

// MustBounds panics unless both extents are positive and finite.
// Bounds come from the host; bad values are a programming error.
func MustBounds(b Bounds) Bounds {
	if !isFinite(b.W) || !isFinite(b.H) || b.W <= 0 || b.H <= 0 {
		panic(fmt.Sprintf("core: invalid world bounds %vx%v", b.W, b.H))
	}
	return b
}

// Wrap folds a coordinate back onto [0, extent]. Crossing an edge is a hard
// reset to the opposite edge, not a modulo: a body moving more than a full
// extent in one tick skips rather than wrapping continuously.
func Wrap(coord, extent float64) float64 {
	if coord > extent {
		return 0
	}
	if coord < 0 {
		return extent
	}
	return coord
}

// WrapVec applies Wrap independently on both axes.
func WrapVec(p Vec2, b Bounds) Vec2 {
	return Vec2{X: Wrap(p.X, b.W), Y: Wrap(p.Y, b.H)}
}

// ToroidalDelta returns the shortest signed displacement a - b along one
// axis of the given extent.
func ToroidalDelta(a, b, extent float64) float64 {
	d := a - b
	if d > extent/2 {
		d -= extent
	} else if d < -extent/2 {
		d += extent
	}
	return d
}

// CircleOverlap reports whether two circles overlap on the torus.
// Touching circles do not overlap.
func CircleOverlap(p1 Vec2, r1 float64, p2 Vec2, r2 float64, b Bounds) bool {
	dx := ToroidalDelta(p1.X, p2.X, b.W)
	dy := ToroidalDelta(p1.Y, p2.Y, b.H)
	radii := r1 + r2
	return dx*dx+dy*dy < radii*radii
}
