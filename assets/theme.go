// Package assets holds the game's static content: the YAML catalog of
// items, loot tables, enemies and the starting character, plus glyphs and
// flavour text.
package assets

// Emoji constants used by the renderer.
const (
	GlyphPlayer   = "🧙"
	GlyphGrass    = "🟩"
	GlyphTree     = "🌲"
	GlyphRock     = "🪨"
	GlyphWater    = "🟦"
	GlyphCampfire = "🔥"
	GlyphSand     = "🟨"
)
