package hex

import "math"

var sqrt3 = math.Sqrt(3.0)

// ToPixel projects c onto the plane using a flat-top layout where scale is
// the hex edge length. The transform is linear in scale.
func (c Coord) ToPixel(scale float64) (x, y float64) {
	q := float64(c.Q)
	r := float64(c.R)
	x = scale * 1.5 * q
	y = scale * sqrt3 * (r + q/2)
	return x, y
}

// FromPixel returns the hex containing the point (x, y) under the same
// flat-top layout. scale must be positive.
func FromPixel(x, y, scale float64) Coord {
	q := (2.0 / 3.0 * x) / scale
	r := (-1.0/3.0*x + sqrt3/3.0*y) / scale
	return round(q, r)
}

// round snaps fractional axial coordinates to the nearest hex by
// rounding in cube space and fixing the component with the largest error.
func round(fq, fr float64) Coord {
	fs := -fq - fr
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	if dq > dr && dq > ds {
		q = -r - s
	} else if dr > ds {
		r = -q - s
	}
	return Coord{Q: int(q), R: int(r)}
}

// FromRaster de-skews pixel (x, y) of a w×h raster onto the axial lattice:
// q = x - w/2, r = y - h/4 - x/2, all in truncating integer division.
// Any other rounding shifts pixels into different hexes.
func FromRaster(x, y, w, h int) Coord {
	return Coord{
		Q: x - w/2,
		R: y - h/4 - x/2,
	}
}
