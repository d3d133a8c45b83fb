package board

import (
	"image/color"

	"github.com/zyedidia/generic/avl"

	"github.com/talgya/hexboard/internal/hex"
)

// Tile is the capability a payload needs to live on a board. FromColor and
// Void are called on the zero value of T and must not read the receiver.
type Tile[T any] interface {
	FromColor(scale float64, c color.Color) T
	DrawScale() float64
	Resize(scale float64) T
	Void() T
}

// Tiles maps coordinates to tiles in (Q, R) order.
type Tiles[T any] struct {
	tree *avl.Tree[hex.Coord, T]
	n    int
}

// NewTiles returns an empty mapping.
func NewTiles[T any]() *Tiles[T] {
	return &Tiles[T]{tree: avl.New[hex.Coord, T](hex.Less)}
}

// Put stores t at c, replacing any tile already there.
func (m *Tiles[T]) Put(c hex.Coord, t T) {
	if _, ok := m.tree.Get(c); !ok {
		m.n++
	}
	m.tree.Put(c, t)
}

// Get returns the tile at c.
func (m *Tiles[T]) Get(c hex.Coord) (T, bool) {
	return m.tree.Get(c)
}

// Len returns the number of occupied coordinates.
func (m *Tiles[T]) Len() int {
	return m.n
}

// Each calls fn for every entry in ascending coordinate order.
func (m *Tiles[T]) Each(fn func(c hex.Coord, t T)) {
	m.tree.Each(fn)
}

// Keys returns the occupied coordinates in ascending order.
func (m *Tiles[T]) Keys() []hex.Coord {
	keys := make([]hex.Coord, 0, m.n)
	m.tree.Each(func(c hex.Coord, _ T) {
		keys = append(keys, c)
	})
	return keys
}
