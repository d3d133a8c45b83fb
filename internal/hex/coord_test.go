package hex

import (
	"math"
	"testing"
)

func TestRingCompleteness(t *testing.T) {
	centers := []Coord{Origin, {Q: 3, R: -7}}
	for _, center := range centers {
		for _, spin := range []Spin{CCW, CW} {
			for k := 1; k <= 6; k++ {
				ring := center.Ring(k, spin)
				if len(ring) != 6*k {
					t.Fatalf("ring(%v, %d) has %d coords, want %d", center, k, len(ring), 6*k)
				}
				seen := make(map[Coord]bool, len(ring))
				for _, c := range ring {
					if seen[c] {
						t.Fatalf("ring(%v, %d) repeats %v", center, k, c)
					}
					seen[c] = true
					if d := Distance(center, c); d != k {
						t.Fatalf("ring(%v, %d) contains %v at distance %d", center, k, c, d)
					}
				}
			}
		}
	}
}

func TestRingZeroAndNegative(t *testing.T) {
	c := Coord{Q: 2, R: 5}
	ring := c.Ring(0, CCW)
	if len(ring) != 1 || ring[0] != c {
		t.Fatalf("ring radius 0 = %v, want [%v]", ring, c)
	}
	if got := c.Ring(-1, CCW); got != nil {
		t.Fatalf("ring radius -1 = %v, want nil", got)
	}
}

func TestRingSpinsCoverSameSet(t *testing.T) {
	ccw := Origin.Ring(4, CCW)
	cw := Origin.Ring(4, CW)
	set := make(map[Coord]bool)
	for _, c := range ccw {
		set[c] = true
	}
	for _, c := range cw {
		if !set[c] {
			t.Fatalf("clockwise ring has %v, counter-clockwise does not", c)
		}
	}
	if ccw[0] != cw[0] {
		t.Fatalf("rings start at %v and %v, want the same corner", ccw[0], cw[0])
	}
	if ccw[1] == cw[1] {
		t.Fatalf("rings walk the same way: both step to %v", ccw[1])
	}
}

func TestNeighborsMatchRingOne(t *testing.T) {
	for _, center := range []Coord{Origin, {Q: -4, R: 9}} {
		ring := make(map[Coord]bool)
		for _, c := range center.Ring(1, CCW) {
			ring[c] = true
		}
		n := center.Neighbors()
		if len(ring) != len(n) {
			t.Fatalf("ring 1 has %d coords, neighbors has %d", len(ring), len(n))
		}
		for _, c := range n {
			if !ring[c] {
				t.Fatalf("neighbor %v of %v missing from ring 1", c, center)
			}
		}
	}
}

func TestSpiral(t *testing.T) {
	s := Origin.Spiral(3)
	if len(s) != 37 {
		t.Fatalf("spiral(3) has %d coords, want 37", len(s))
	}
	if s[0] != Origin {
		t.Fatalf("spiral starts at %v, want origin", s[0])
	}
}

func TestAddAlgebra(t *testing.T) {
	a := Coord{Q: 1, R: -2}
	b := Coord{Q: -5, R: 7}
	c := Coord{Q: 3, R: 3}
	if a.Add(b) != b.Add(a) {
		t.Fatalf("addition not commutative: %v vs %v", a.Add(b), b.Add(a))
	}
	if a.Add(b).Add(c) != a.Add(b.Add(c)) {
		t.Fatal("addition not associative")
	}
	if a.Add(Origin) != a {
		t.Fatal("origin is not the identity")
	}
}

func TestOrdering(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{Coord{Q: 0, R: 0}, Coord{Q: 0, R: 0}, 0},
		{Coord{Q: -1, R: 5}, Coord{Q: 0, R: -5}, -1},
		{Coord{Q: 2, R: -1}, Coord{Q: 2, R: 1}, -1},
		{Coord{Q: 2, R: 1}, Coord{Q: 2, R: -1}, 1},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := Less(tt.a, tt.b); got != (tt.want < 0) {
			t.Errorf("Less(%v, %v) = %v", tt.a, tt.b, got)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Origin, Coord{Q: 3, R: -1}); d != 3 {
		t.Fatalf("distance = %d, want 3", d)
	}
	if d := Distance(Coord{Q: -2, R: 2}, Coord{Q: 2, R: -2}); d != 4 {
		t.Fatalf("distance = %d, want 4", d)
	}
}

func TestToPixelLinear(t *testing.T) {
	coords := []Coord{Origin, {Q: 1, R: 0}, {Q: -3, R: 7}, {Q: 11, R: -4}}
	for _, c := range coords {
		for _, s := range []float64{0.5, 1, 13.25} {
			x1, y1 := c.ToPixel(s)
			x2, y2 := c.ToPixel(2 * s)
			if !near(x2, 2*x1) || !near(y2, 2*y1) {
				t.Fatalf("ToPixel(%v, %v) = (%v,%v), doubled (%v,%v)", c, s, x1, y1, x2, y2)
			}
		}
	}
}

func TestToPixelFlatTop(t *testing.T) {
	x, y := Coord{Q: 1, R: 0}.ToPixel(10)
	if !near(x, 15) || !near(y, 5*math.Sqrt(3)) {
		t.Fatalf("ToPixel((1,0), 10) = (%v,%v)", x, y)
	}
	x, y = Coord{Q: 0, R: 1}.ToPixel(10)
	if !near(x, 0) || !near(y, 10*math.Sqrt(3)) {
		t.Fatalf("ToPixel((0,1), 10) = (%v,%v)", x, y)
	}
}

func TestFromPixelRoundTrip(t *testing.T) {
	for _, c := range Origin.Spiral(5) {
		x, y := c.ToPixel(7)
		if got := FromPixel(x, y, 7); got != c {
			t.Fatalf("FromPixel(ToPixel(%v)) = %v", c, got)
		}
		// A point nudged towards the centre stays in the same hex.
		if got := FromPixel(x+1, y-1, 7); got != c {
			t.Fatalf("FromPixel near %v = %v", c, got)
		}
	}
}

func TestFromRaster(t *testing.T) {
	tests := []struct {
		x, y, w, h int
		want       Coord
	}{
		{0, 0, 4, 4, Coord{Q: -2, R: -1}},
		{3, 3, 4, 4, Coord{Q: 1, R: 1}},
		{5, 2, 10, 6, Coord{Q: 0, R: -1}},
		{1, 0, 3, 3, Coord{Q: 0, R: 0}},
	}
	for _, tt := range tests {
		if got := FromRaster(tt.x, tt.y, tt.w, tt.h); got != tt.want {
			t.Errorf("FromRaster(%d,%d,%d,%d) = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
		}
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
