// Package board holds hex tiles keyed by axial coordinate, builds them
// from the generators, and filters them through a viewport for drawing.
package board

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/talgya/hexboard/internal/hex"
	"github.com/talgya/hexboard/internal/raster"
)

// Viewport bounds the projected pixel space that gets drawn. It describes
// the screen, so rescaling a board leaves it untouched. An inverted
// viewport is accepted and shows nothing.
type Viewport struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Contains reports whether (x, y) lies strictly inside the bounds.
// Points on an edge are outside.
func (v Viewport) Contains(x, y float64) bool {
	return v.Left < x && x < v.Right && v.Bottom < y && y < v.Top
}

// Centered returns a w×h viewport centred on the origin.
func Centered(w, h float64) Viewport {
	return Viewport{Left: -w / 2, Right: w / 2, Top: h / 2, Bottom: -h / 2}
}

// Renderer draws one visible tile at its translated coordinate.
type Renderer[T any] interface {
	Draw(c hex.Coord, t T)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc[T any] func(c hex.Coord, t T)

func (f RendererFunc[T]) Draw(c hex.Coord, t T) { f(c, t) }

// Board maps coordinates to tiles. A board is never modified after
// construction; UpdateScale returns a new one.
type Board[T Tile[T]] struct {
	tiles    *Tiles[T]
	viewport Viewport
}

// Wrap takes ownership of tiles. Callers must not modify tiles afterwards.
func Wrap[T Tile[T]](tiles *Tiles[T], vp Viewport) *Board[T] {
	return &Board[T]{tiles: tiles, viewport: vp}
}

// New builds a board of void tiles from the ring generator.
func New[T Tile[T]](scale float64, layers int, vp Viewport) (*Board[T], error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	if err := checkLayers(layers); err != nil {
		return nil, err
	}
	b := Wrap(Rings[T](scale, layers), vp)
	slog.Debug("board generated", "generator", "rings", "layers", layers, "tiles", b.Len())
	return b, nil
}

// NewTemplate builds the fixed 19-tile board.
func NewTemplate[T Tile[T]](scale float64, vp Viewport) (*Board[T], error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return Wrap(Template[T](scale), vp), nil
}

// FromImage decodes the image at path and builds one tile per pixel.
// Decode failures are returned as *raster.DecodeError.
func FromImage[T Tile[T]](path string, scale float64, vp Viewport) (*Board[T], error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	src, err := raster.Open(path)
	if err != nil {
		return nil, fmt.Errorf("board from image: %w", err)
	}
	return FromRaster[T](src, scale, vp)
}

// FromRaster projects every pixel of src onto the axial lattice with
// hex.FromRaster and builds one tile per pixel in scan order.
func FromRaster[T Tile[T]](src raster.Source, scale float64, vp Viewport) (*Board[T], error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	w, h := src.Bounds()
	samples := make([]Sample, 0, w*h)
	src.Each(func(x, y int, c color.Color) {
		samples = append(samples, Sample{Coord: hex.FromRaster(x, y, w, h), Color: c})
	})

	b := Wrap(FromSamples[T](samples, scale), vp)
	slog.Debug("board generated", "generator", "raster", "width", w, "height", h, "tiles", b.Len())
	return b, nil
}

// Len returns the number of tiles.
func (b *Board[T]) Len() int {
	return b.tiles.Len()
}

// Get returns the tile at c.
func (b *Board[T]) Get(c hex.Coord) (T, bool) {
	return b.tiles.Get(c)
}

// Keys returns the occupied coordinates in ascending order.
func (b *Board[T]) Keys() []hex.Coord {
	return b.tiles.Keys()
}

// Each calls fn for every tile in ascending coordinate order.
func (b *Board[T]) Each(fn func(c hex.Coord, t T)) {
	b.tiles.Each(fn)
}

// Viewport returns the board's viewport.
func (b *Board[T]) Viewport() Viewport {
	return b.viewport
}

// IsVisible projects c at scale and reports whether it falls strictly
// inside the viewport.
func (b *Board[T]) IsVisible(c hex.Coord, scale float64) bool {
	x, y := c.ToPixel(scale)
	return b.viewport.Contains(x, y)
}

// Display translates every coordinate by offset and hands the visible
// tiles to r in ascending coordinate order. It returns the number drawn.
func (b *Board[T]) Display(offset hex.Coord, r Renderer[T]) int {
	drawn := 0
	b.tiles.Each(func(c hex.Coord, t T) {
		at := c.Add(offset)
		if !b.IsVisible(at, t.DrawScale()) {
			return
		}
		r.Draw(at, t)
		drawn++
	})
	return drawn
}

// UpdateScale returns a board with the same coordinates where every tile
// is resized to scale. The viewport is copied unchanged.
func (b *Board[T]) UpdateScale(scale float64) (*Board[T], error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	tiles := NewTiles[T]()
	b.tiles.Each(func(c hex.Coord, t T) {
		tiles.Put(c, t.Resize(scale))
	})
	return Wrap(tiles, b.viewport), nil
}

func (b *Board[T]) String() string {
	return fmt.Sprintf("Board(tiles=%d, viewport=[%g,%g]x[%g,%g])",
		b.Len(), b.viewport.Left, b.viewport.Right, b.viewport.Bottom, b.viewport.Top)
}
