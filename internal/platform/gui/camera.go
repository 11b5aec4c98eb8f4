package gui

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Camera maps world coordinates (y up, origin at the arena center) onto the
// logical screen (y down, origin top-left).
type Camera struct {
	MinX, MaxY float64
	Width      float64 // World units visible horizontally
	Height     float64 // World units visible vertically
	Scale      float64 // Screen pixels per world unit
}

// NewCamera frames the walled arena at the given scale.
func NewCamera(a config.BreakoutArena, scale float64) Camera {
	if scale <= 0 {
		scale = 1
	}
	half := a.WallThickness / 2
	minX := math.Min(a.LeftWall-half, a.HorizontalOffset-a.WallSpan/2)
	maxX := math.Max(a.RightWall+half, a.HorizontalOffset+a.WallSpan/2)
	minY := a.BottomWall - half
	maxY := a.TopWall + half
	return Camera{
		MinX:   minX,
		MaxY:   maxY,
		Width:  maxX - minX,
		Height: maxY - minY,
		Scale:  scale,
	}
}

// ScreenSize returns the logical screen size in pixels.
func (c Camera) ScreenSize() (int, int) {
	return int(math.Ceil(c.Width * c.Scale)), int(math.Ceil(c.Height * c.Scale))
}

// ToScreen converts a world point to screen pixels.
func (c Camera) ToScreen(p core.Vec2) (x, y float64) {
	return (p.X - c.MinX) * c.Scale, (c.MaxY - p.Y) * c.Scale
}

// Rect converts a world box to a screen rectangle: top-left corner, width
// and height.
func (c Camera) Rect(b core.AABB) (x, y, w, h float64) {
	lo, hi := b.Min(), b.Max()
	x, _ = c.ToScreen(lo)
	_, y = c.ToScreen(hi)
	return x, y, (hi.X - lo.X) * c.Scale, (hi.Y - lo.Y) * c.Scale
}
