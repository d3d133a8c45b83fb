// Board generation. Every generator is a pure function of its arguments
// and returns a freshly allocated mapping.
package board

import (
	"image/color"

	"github.com/talgya/hexboard/internal/hex"
)

// Template ring colours. For terrain tiles these classify as plains and
// ocean.
var (
	TemplateInner color.Color = color.RGBA{R: 0x8d, G: 0xc2, B: 0x4a, A: 0xff}
	TemplateOuter color.Color = color.RGBA{R: 0x1f, G: 0x4e, B: 0x8c, A: 0xff}
)

// Sample pairs a coordinate with the colour that produces its tile.
type Sample struct {
	Coord hex.Coord
	Color color.Color
}

// Template builds a fixed 19-tile board: a void origin, a ring of
// TemplateInner tiles and a ring of TemplateOuter tiles.
func Template[T Tile[T]](scale float64) *Tiles[T] {
	var proto T
	tiles := NewTiles[T]()

	tiles.Put(hex.Origin, proto.Void().Resize(scale))
	for _, c := range hex.Origin.Ring(1, hex.CCW) {
		tiles.Put(c, proto.FromColor(scale, TemplateInner))
	}
	for _, c := range hex.Origin.Ring(2, hex.CCW) {
		tiles.Put(c, proto.FromColor(scale, TemplateOuter))
	}
	return tiles
}

// Rings fills the origin and every ring from 1 up to, but not including,
// layers with void tiles. Rings(s, 3) therefore holds 1+6+12 tiles.
func Rings[T Tile[T]](scale float64, layers int) *Tiles[T] {
	var proto T
	void := proto.Void().Resize(scale)

	tiles := NewTiles[T]()
	tiles.Put(hex.Origin, void)

	for layer := 1; layer < layers; layer++ {
		if layer == 1 {
			for _, c := range hex.Origin.Neighbors() {
				tiles.Put(c, void)
			}
			continue
		}
		for _, c := range hex.Origin.Ring(layer, hex.CCW) {
			tiles.Put(c, void)
		}
	}
	return tiles
}

// FromSamples builds one tile per sample. When a coordinate repeats, the
// later sample wins.
func FromSamples[T Tile[T]](samples []Sample, scale float64) *Tiles[T] {
	var proto T
	tiles := NewTiles[T]()
	for _, s := range samples {
		tiles.Put(s.Coord, proto.FromColor(scale, s.Color))
	}
	return tiles
}
