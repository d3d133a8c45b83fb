package terrain

import (
	"fmt"
	"image/color"
)

// Tile is a terrain-classified hex payload. It carries no coordinate;
// the board that holds it owns placement.
type Tile struct {
	Terrain Terrain `json:"terrain"`
	Scale   float64 `json:"scale"`
}

// FromColor classifies c and returns a tile of that terrain at scale.
func (Tile) FromColor(scale float64, c color.Color) Tile {
	return Tile{Terrain: Classify(c), Scale: scale}
}

// DrawScale reports the edge length the tile is drawn at.
func (t Tile) DrawScale() float64 {
	return t.Scale
}

// Resize returns a copy of t at the new scale.
func (t Tile) Resize(scale float64) Tile {
	t.Scale = scale
	return t
}

// Void returns the empty tile.
func (Tile) Void() Tile {
	return Tile{Terrain: Void}
}

func (t Tile) String() string {
	return fmt.Sprintf("%s@%g", t.Terrain.Name(), t.Scale)
}
