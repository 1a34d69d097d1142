package generate

import (
	"math/rand"

	"termrpg/internal/gamemap"
)

// Config drives procedural generation of the overworld.
type Config struct {
	MapWidth, MapHeight int
	Lakes               int     // number of lakes
	MaxLakeRadius       int     // lakes are ellipses up to this radius
	Groves              int     // number of dense tree clusters
	TreeDensity         float64 // chance a grass tile outside groves gets a tree
	RockDensity         float64 // chance a grass tile gets a boulder
	ClearRadius         int     // open ground kept around the start
	Rand                *rand.Rand
}

// DefaultConfig returns the standard overworld settings for a map of the
// given size.
func DefaultConfig(width, height int, rng *rand.Rand) *Config {
	area := width * height
	return &Config{
		MapWidth:      width,
		MapHeight:     height,
		Lakes:         max(1, area/6000),
		MaxLakeRadius: 9,
		Groves:        max(1, area/4000),
		TreeDensity:   0.04,
		RockDensity:   0.015,
		ClearRadius:   3,
		Rand:          rng,
	}
}

// Generate builds the overworld and returns the map and the player start.
// The campfire sits one tile south of the start.
func Generate(cfg *Config) (*gamemap.GameMap, int, int) {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	rng := cfg.Rand
	px, py := cfg.MapWidth/2, cfg.MapHeight/2
	start := gamemap.Rect{
		X1: px - cfg.ClearRadius, Y1: py - cfg.ClearRadius,
		X2: px + cfg.ClearRadius, Y2: py + cfg.ClearRadius + 1,
	}

	for i := 0; i < cfg.Lakes; i++ {
		if r, ok := placeFeature(cfg, gmap, start, cfg.MaxLakeRadius); ok {
			carveLake(gmap, r)
		}
	}
	for i := 0; i < cfg.Groves; i++ {
		if r, ok := placeFeature(cfg, gmap, start, 5); ok {
			plantGrove(gmap, rng, r)
		}
	}
	scatter(cfg, gmap, start)

	gmap.Set(px, py, gamemap.MakeGrass())
	if gmap.InBounds(px, py+1) {
		gmap.PlaceCampfire(px, py+1)
	}
	return gmap, px, py
}

// placeFeature picks a rectangle that avoids the start area and other
// features. It gives up after a fixed number of attempts.
func placeFeature(cfg *Config, gmap *gamemap.GameMap, start gamemap.Rect, maxRadius int) (gamemap.Rect, bool) {
	rng := cfg.Rand
	for attempt := 0; attempt < 30; attempt++ {
		rx := 2 + rng.Intn(max(1, maxRadius-1))
		ry := 2 + rng.Intn(max(1, maxRadius-1))
		if cfg.MapWidth <= 2*rx+2 || cfg.MapHeight <= 2*ry+2 {
			return gamemap.Rect{}, false
		}
		cx := rx + 1 + rng.Intn(cfg.MapWidth-2*rx-1)
		cy := ry + 1 + rng.Intn(cfg.MapHeight-2*ry-1)
		r := gamemap.Rect{X1: cx - rx, Y1: cy - ry, X2: cx + rx, Y2: cy + ry}
		if r.Intersects(start) {
			continue
		}
		overlap := false
		for _, f := range gmap.Features {
			if r.Intersects(f) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}
		gmap.Features = append(gmap.Features, r)
		return r, true
	}
	return gamemap.Rect{}, false
}

// carveLake fills an ellipse inside r with water and rings it with sand.
func carveLake(gmap *gamemap.GameMap, r gamemap.Rect) {
	cx, cy := r.Center()
	rx := float64(r.X2-r.X1) / 2
	ry := float64(r.Y2-r.Y1) / 2
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			dx := float64(x-cx) / rx
			dy := float64(y-cy) / ry
			d := dx*dx + dy*dy
			switch {
			case d <= 0.6:
				gmap.Set(x, y, gamemap.MakeWater())
			case d <= 1.0:
				gmap.Set(x, y, gamemap.MakeSand())
			}
		}
	}
}

// plantGrove fills r with trees, leaving gaps so groves can be walked through.
func plantGrove(gmap *gamemap.GameMap, rng *rand.Rand, r gamemap.Rect) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			if rng.Float64() < 0.55 {
				gmap.Set(x, y, gamemap.MakeTree())
			}
		}
	}
}

func scatter(cfg *Config, gmap *gamemap.GameMap, start gamemap.Rect) {
	rng := cfg.Rand
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			if gmap.At(x, y).Kind != gamemap.TileGrass || start.Contains(x, y) {
				continue
			}
			roll := rng.Float64()
			switch {
			case roll < cfg.RockDensity:
				gmap.Set(x, y, gamemap.MakeRock())
			case roll < cfg.RockDensity+cfg.TreeDensity:
				gmap.Set(x, y, gamemap.MakeTree())
			}
		}
	}
}
