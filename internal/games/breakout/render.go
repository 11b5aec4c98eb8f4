package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
)

// Visual characters for rendering
const (
	WallChar   = '▒'
	BrickChar  = '█'
	PaddleChar = '='
	BallChar   = '●'
)

// Minimum terminal size that still shows every brick column.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// hudRows is the number of rows above the arena.
const hudRows = 1

// BrickColors cycles by brick row.
var BrickColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Viewport maps world coordinates (y up) onto screen cells (y down).
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Cols, Rows int
	Top        int // First screen row of the arena
}

// NewViewport fits the walled arena into a cols x rows region starting at top.
func NewViewport(a config.BreakoutArena, cols, rows, top int) Viewport {
	half := a.WallThickness / 2
	return Viewport{
		MinX: math.Min(a.LeftWall-half, a.HorizontalOffset-a.WallSpan/2),
		MaxX: math.Max(a.RightWall+half, a.HorizontalOffset+a.WallSpan/2),
		MinY: a.BottomWall - half,
		MaxY: a.TopWall + half,
		Cols: cols,
		Rows: rows,
		Top:  top,
	}
}

// Col returns the screen column containing world x.
func (v Viewport) Col(x float64) int {
	return int(math.Floor((x - v.MinX) / (v.MaxX - v.MinX) * float64(v.Cols)))
}

// Row returns the screen row containing world y.
func (v Viewport) Row(y float64) int {
	return v.Top + int(math.Floor((v.MaxY-y)/(v.MaxY-v.MinY)*float64(v.Rows)))
}

// Cells returns the screen rectangle covered by a box, at least one cell.
func (v Viewport) Cells(b core.AABB) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0, x1 := v.Col(lo.X), v.Col(hi.X)
	y0, y1 := v.Row(hi.Y), v.Row(lo.Y)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Simulation stopped")
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}
	if g.ctx == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	vp := NewViewport(g.ctx.Config.Arena, dst.Width(), dst.Height()-hudRows, hudRows)

	g.renderHUD(dst)
	renderActors(dst, vp, g.ctx.World.Actors())
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	if g.ctx.Config.Rules.Scoring {
		dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.ctx.Score))
	}

	dst.DrawTextCentered(0, fmt.Sprintf("Bricks: %d", g.ctx.BricksLeft()))

	title := g.Title()
	dst.DrawText(dst.Width()-len([]rune(title))-1, 0, title)
}

func renderActors(dst *core.Screen, vp Viewport, actors []engine.Actor) {
	for i := range actors {
		a := &actors[i]
		r := vp.Cells(a.Box)

		switch a.Kind {
		case engine.KindWall:
			dst.DrawRectColored(r, WallChar, core.ColorGray)
		case engine.KindBrick:
			// Leave a one-cell gap so neighbours stay distinguishable
			if r.W > 2 {
				r.W--
			}
			dst.DrawRectColored(r, BrickChar, BrickColors[a.Row%len(BrickColors)])
		case engine.KindPaddle:
			dst.DrawRectColored(core.NewRect(r.X, r.Y, r.W, 1), PaddleChar, core.ColorBrightWhite)
		}
	}

	// Ball last so it is never hidden behind a collider
	for i := range actors {
		if actors[i].Kind != engine.KindBall {
			continue
		}
		c := actors[i].Box.Center
		dst.SetColored(vp.Col(c.X), vp.Row(c.Y), BallChar, core.ColorBrightYellow)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.ctx.Overlay {
	case engine.OverlayStart:
		drawCenteredBox(dst, "BREAKOUT", "Press ENTER to start")
	case engine.OverlayPause:
		drawCenteredBox(dst, "PAUSED", "Press ENTER to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
