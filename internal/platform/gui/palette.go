package gui

import (
	"image/color"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorWall    = color.RGBA{80, 80, 100, 255}
	colorPaddle  = rgba(core.ColorBrightWhite)
	colorBall    = rgba(core.ColorBrightYellow)
	colorOverlay = color.RGBA{0, 0, 0, 160}
)

// rgba converts a palette color for ebiten.
func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 255}
}

// actorColor returns the fill color for an actor.
func actorColor(a *engine.Actor) color.RGBA {
	switch a.Kind {
	case engine.KindWall:
		return colorWall
	case engine.KindBrick:
		return rgba(breakout.BrickColors[a.Row%len(breakout.BrickColors)])
	case engine.KindPaddle:
		return colorPaddle
	default:
		return colorBall
	}
}
