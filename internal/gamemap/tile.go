package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileGrass TileKind = iota
	TileTree
	TileRock
	TileWater
	TileSand
	TileCampfire
)

// Tile holds the kind and passability of one map cell.
type Tile struct {
	Kind     TileKind
	Walkable bool
}

// MakeGrass returns open grassland.
func MakeGrass() Tile { return Tile{Kind: TileGrass, Walkable: true} }

// MakeTree returns an impassable tree.
func MakeTree() Tile { return Tile{Kind: TileTree} }

// MakeRock returns an impassable boulder.
func MakeRock() Tile { return Tile{Kind: TileRock} }

// MakeWater returns impassable water.
func MakeWater() Tile { return Tile{Kind: TileWater} }

// MakeSand returns a walkable shore tile.
func MakeSand() Tile { return Tile{Kind: TileSand, Walkable: true} }

// MakeCampfire returns the respawn campfire. It can be stood on.
func MakeCampfire() Tile { return Tile{Kind: TileCampfire, Walkable: true} }
