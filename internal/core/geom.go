// Package core provides fundamental types and utilities for the breakout platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer cell rectangle used by the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V creates a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// AABB is an axis-aligned box in world space (y grows upward).
type AABB struct {
	Center Vec2
	Half   Vec2 // Half-extents
}

// BoxFromSize builds an AABB from a center and a full size vector.
func BoxFromSize(center, size Vec2) AABB {
	return AABB{Center: center, Half: size.Scale(0.5)}
}

// Min returns the bottom-left corner.
func (b AABB) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Half.X, Y: b.Center.Y - b.Half.Y}
}

// Max returns the top-right corner.
func (b AABB) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Half.X, Y: b.Center.Y + b.Half.Y}
}

// Size returns the full width and height.
func (b AABB) Size() Vec2 {
	return b.Half.Scale(2)
}

// Overlaps reports whether the two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin.X < oMax.X && bMax.X > oMin.X && bMin.Y < oMax.Y && bMax.Y > oMin.Y
}

// Edge names the side of a collider that was struck.
type Edge int

const (
	EdgeNone   Edge = iota // No overlap
	EdgeLeft               // Struck from the left
	EdgeRight              // Struck from the right
	EdgeTop                // Struck from above
	EdgeBottom             // Struck from below
	EdgeInside             // Contained on both axes, no usable edge
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "None"
	case EdgeLeft:
		return "Left"
	case EdgeRight:
		return "Right"
	case EdgeTop:
		return "Top"
	case EdgeBottom:
		return "Bottom"
	case EdgeInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Collide tests a against b and reports which edge of b was struck.
//
// Each axis is classified independently: if a straddles exactly one edge of b
// on that axis, the axis gets that edge and its penetration depth; otherwise
// the axis is Inside with infinite depth. The axis with the smaller absolute
// depth wins, x on ties.
func Collide(a, b AABB) Edge {
	if !a.Overlaps(b) {
		return EdgeNone
	}

	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	xEdge, xDepth := EdgeInside, math.Inf(1)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xEdge, xDepth = EdgeLeft, aMax.X-bMin.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xEdge, xDepth = EdgeRight, bMax.X-aMin.X
	}

	yEdge, yDepth := EdgeInside, math.Inf(1)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		yEdge, yDepth = EdgeBottom, aMax.Y-bMin.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		yEdge, yDepth = EdgeTop, bMax.Y-aMin.Y
	}

	if yDepth < xDepth {
		return yEdge
	}
	return xEdge
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
