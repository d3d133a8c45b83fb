// Package hex provides axial hex coordinates and the flat-top pixel layout.
// Uses axial coordinates (q, r); the third cube coordinate is derived.
package hex

import "fmt"

// Coord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Origin is the centre of every generated board.
var Origin = Coord{}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add translates c by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{Q: c.Q * k, R: c.R * k}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Compare orders coordinates lexicographically on (Q, R).
func Compare(a, b Coord) int {
	switch {
	case a.Q < b.Q:
		return -1
	case a.Q > b.Q:
		return 1
	case a.R < b.R:
		return -1
	case a.R > b.R:
		return 1
	}
	return 0
}

// Less reports whether a sorts before b.
func Less(a, b Coord) bool {
	return Compare(a, b) < 0
}

// Directions defines the six neighbor offsets in axial coordinates,
// counter-clockwise starting east.
var Directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, dir := range Directions {
		result[i] = c.Add(dir)
	}
	return result
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	// Max of the three absolute differences in cube coordinates.
	return max(dq, dr, ds)
}

// Spin selects the rotational direction of a ring walk.
type Spin uint8

const (
	CCW Spin = iota
	CW
)

// Ring returns the 6*radius coordinates at exactly radius steps from c.
// A radius of 0 yields c alone; a negative radius yields nil.
func (c Coord) Ring(radius int, spin Spin) []Coord {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Coord{c}
	}

	out := make([]Coord, 0, 6*radius)
	// Start on the south-west corner and walk each side.
	cur := c.Add(Directions[4].Scale(radius))
	for side := 0; side < 6; side++ {
		dir := Directions[side]
		if spin == CW {
			// Retrace the counter-clockwise sides backwards from the same corner.
			dir = Directions[(8-side)%6]
		}
		for step := 0; step < radius; step++ {
			out = append(out, cur)
			cur = cur.Add(dir)
		}
	}
	return out
}

// Spiral returns c followed by every ring out to radius inclusive.
func (c Coord) Spiral(radius int) []Coord {
	if radius < 0 {
		return nil
	}
	out := make([]Coord, 0, 1+3*radius*(radius+1))
	for k := 0; k <= radius; k++ {
		out = append(out, c.Ring(k, CCW)...)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
