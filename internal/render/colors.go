package render

import (
	"github.com/gdamore/tcell/v2"

	"termrpg/assets"
	"termrpg/internal/gamemap"
)

// TileGlyphs maps each overworld tile to its emoji. Emoji are rendered by
// the terminal with their own colours, so tiles are told apart by glyph
// rather than by foreground colour.
var TileGlyphs = map[gamemap.TileKind]string{
	gamemap.TileGrass:    assets.GlyphGrass,
	gamemap.TileTree:     assets.GlyphTree,
	gamemap.TileRock:     assets.GlyphRock,
	gamemap.TileWater:    assets.GlyphWater,
	gamemap.TileSand:     assets.GlyphSand,
	gamemap.TileCampfire: assets.GlyphCampfire,
}

// Shared text styles.
var (
	styleWhite     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGray      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleYellow    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleLog       = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleGreen     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleRed       = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCyan      = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHighlight = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
)

// hpStyle colours a health fraction.
func hpStyle(frac float64) tcell.Style {
	switch {
	case frac > 0.6:
		return styleGreen
	case frac > 0.3:
		return styleYellow
	default:
		return styleRed
	}
}
