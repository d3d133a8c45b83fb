package raster

import (
	"image/color"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexboard/internal/terrain"
)

// NoiseConfig holds synthetic terrain parameters.
type NoiseConfig struct {
	Width       int
	Height      int
	Seed        int64   // Random seed (0 = random)
	SeaLevel    float64 // Elevation threshold for ocean (0.0–1.0)
	MountainLvl float64 // Elevation threshold for mountains (0.0–1.0)
}

// DefaultNoiseConfig returns a reasonable starting configuration.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		Width:       48,
		Height:      48,
		Seed:        0,
		SeaLevel:    0.25,
		MountainLvl: 0.72,
	}
}

// Noise is a synthetic raster whose pixels carry terrain palette colours
// derived from layered simplex noise. Samples are computed once.
type Noise struct {
	w, h    int
	samples []color.RGBA
}

// NewNoise renders cfg into a raster. A fixed non-zero seed always yields
// the same raster.
func NewNoise(cfg NoiseConfig) *Noise {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Three noise generators for independent layers.
	elevNoise := opensimplex.NewNormalized(seed)
	rainNoise := opensimplex.NewNormalized(seed + 1)
	tempNoise := opensimplex.NewNormalized(seed + 2)

	n := &Noise{w: cfg.Width, h: cfg.Height, samples: make([]color.RGBA, 0, cfg.Width*cfg.Height)}
	cx := float64(cfg.Width) / 2
	cy := float64(cfg.Height) / 2
	radius := math.Max(cx, cy)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			fx := float64(x)
			fy := float64(y)

			elev := octaveNoise(elevNoise, fx, fy, 4, 0.08, 0.5)
			rain := octaveNoise(rainNoise, fx, fy, 3, 0.06, 0.5)
			temp := octaveNoise(tempNoise, fx, fy, 3, 0.05, 0.5)

			// Continental shaping: reduce elevation near edges to create ocean border.
			dist := math.Hypot(fx-cx, fy-cy) / radius
			edgeFalloff := 1.0 - math.Pow(dist, 3.5)
			if edgeFalloff < 0 {
				edgeFalloff = 0
			}
			elev *= edgeFalloff

			// Temperature decreases with elevation and distance from the equator row.
			temp = temp*0.6 + (1.0-math.Abs(fy-cy)/radius)*0.3 + (1.0-elev)*0.1

			n.samples = append(n.samples, deriveTerrain(elev, rain, temp, cfg).Color())
		}
	}
	return n
}

func (n *Noise) Bounds() (w, h int) { return n.w, n.h }

func (n *Noise) Each(fn func(x, y int, c color.Color)) {
	for i, c := range n.samples {
		fn(i%n.w, i/n.w, c)
	}
}

// deriveTerrain determines terrain type from environmental parameters.
func deriveTerrain(elev, rain, temp float64, cfg NoiseConfig) terrain.Terrain {
	if elev < cfg.SeaLevel {
		return terrain.Ocean
	}
	if elev > cfg.MountainLvl {
		return terrain.Mountain
	}
	if elev < cfg.SeaLevel+0.03 {
		return terrain.Coast
	}
	if temp < 0.25 {
		return terrain.Tundra
	}
	if rain < 0.25 && temp > 0.5 {
		return terrain.Desert
	}
	if rain > 0.7 && elev < 0.45 {
		return terrain.Swamp
	}
	if rain > 0.45 && elev > 0.45 {
		return terrain.Forest
	}
	return terrain.Plains
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
