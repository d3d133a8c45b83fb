// Package terrain provides the terrain-classified hex tile stored on boards.
package terrain

import (
	"image/color"
)

// Terrain types for hex tiles.
type Terrain uint8

const (
	Void     Terrain = iota // Empty cell, drawn as an outline only
	Plains                  // Fertile plains
	Forest                  // Timber, herbs, game
	Mountain                // High ground
	Coast                   // Shoreline
	River                   // Freshwater
	Desert                  // Arid
	Swamp                   // Wetland
	Tundra                  // Frozen
	Ocean                   // Open water

	numTerrains
)

// palette holds the reference colour of each terrain. Classification and
// rendering both read from it.
var palette = [numTerrains]color.RGBA{
	Void:     {A: 0},
	Plains:   {R: 0x8d, G: 0xc2, B: 0x4a, A: 0xff},
	Forest:   {R: 0x2e, G: 0x6b, B: 0x30, A: 0xff},
	Mountain: {R: 0x8a, G: 0x84, B: 0x7b, A: 0xff},
	Coast:    {R: 0xe8, G: 0xd8, B: 0x9c, A: 0xff},
	River:    {R: 0x4f, G: 0x9d, B: 0xd9, A: 0xff},
	Desert:   {R: 0xd9, G: 0xb0, B: 0x5b, A: 0xff},
	Swamp:    {R: 0x5b, G: 0x6b, B: 0x3a, A: 0xff},
	Tundra:   {R: 0xe6, G: 0xee, B: 0xf0, A: 0xff},
	Ocean:    {R: 0x1f, G: 0x4e, B: 0x8c, A: 0xff},
}

// Color returns the palette colour for t.
func (t Terrain) Color() color.RGBA {
	if t >= numTerrains {
		return palette[Void]
	}
	return palette[t]
}

// Name returns a human-readable name for a terrain type.
func (t Terrain) Name() string {
	switch t {
	case Void:
		return "Void"
	case Plains:
		return "Plains"
	case Forest:
		return "Forest"
	case Mountain:
		return "Mountain"
	case Coast:
		return "Coast"
	case River:
		return "River"
	case Desert:
		return "Desert"
	case Swamp:
		return "Swamp"
	case Tundra:
		return "Tundra"
	case Ocean:
		return "Ocean"
	default:
		return "Unknown"
	}
}

func (t Terrain) String() string { return t.Name() }

// All returns every terrain kind in declaration order.
func All() []Terrain {
	out := make([]Terrain, 0, numTerrains)
	for t := Void; t < numTerrains; t++ {
		out = append(out, t)
	}
	return out
}

// Classify maps a colour sample to the terrain with the nearest palette
// colour. Samples with zero alpha are Void.
func Classify(c color.Color) Terrain {
	if c == nil {
		return Void
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba.A == 0 {
		return Void
	}

	best := Plains
	bestDist := -1
	for t := Plains; t < numTerrains; t++ {
		p := palette[t]
		dr := int(rgba.R) - int(p.R)
		dg := int(rgba.G) - int(p.G)
		db := int(rgba.B) - int(p.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = t
			bestDist = d
		}
	}
	return best
}
