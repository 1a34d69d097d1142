package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"termrpg/assets"
	"termrpg/internal/gamemap"
	"termrpg/internal/player"
)

// HUDRows is the number of rows reserved below the map.
const HUDRows = 6

// Renderer draws the game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(1, h-HUDRows)),
	}
}

// Resize adapts the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(1, h-HUDRows))
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawWorld clears the screen and renders the visible tiles and the player.
func (r *Renderer) DrawWorld(gmap *gamemap.GameMap, p *player.Player) {
	r.screen.Clear()
	r.CenterOn(p.Pos.X, p.Pos.Y)
	style := tcell.StyleDefault.Background(tcell.ColorBlack)

	x0, y0 := r.camera.ScreenToWorld(0, 0)
	cols := r.camera.ViewWidth/2 + 1
	for y := y0; y < y0+r.camera.ViewHeight; y++ {
		for x := x0; x < x0+cols; x++ {
			if !gmap.InBounds(x, y) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, TileGlyphs[gmap.At(x, y).Kind], style)
		}
	}
	if sx, sy, ok := r.camera.WorldToScreen(p.Pos.X, p.Pos.Y); ok {
		r.putGlyph(sx, sy, assets.GlyphPlayer, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text from (x, y) and returns the column after it.
// Wide runes take two columns.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col+cw > w {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += cw
	}
	return col
}

func (r *Renderer) drawHLine(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// Show flushes pending drawing to the terminal.
func (r *Renderer) Show() { r.screen.Show() }
