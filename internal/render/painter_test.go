package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/hex"
	"github.com/talgya/hexboard/internal/terrain"
)

func closeTo(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestPainterFillsTerrainColour(t *testing.T) {
	p := NewPainter(64, 64)
	defer p.Close()

	p.Draw(hex.Origin, terrain.Tile{Terrain: terrain.Ocean, Scale: 12})
	if err := p.Err(); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	got := color.RGBAModel.Convert(p.Image().At(32, 32)).(color.RGBA)
	want := terrain.Ocean.Color()
	if !closeTo(got.R, want.R) || !closeTo(got.G, want.G) || !closeTo(got.B, want.B) {
		t.Fatalf("centre pixel = %v, want %v", got, want)
	}

	corner := color.RGBAModel.Convert(p.Image().At(1, 1)).(color.RGBA)
	if closeTo(corner.B, want.B) && closeTo(corner.G, want.G) {
		t.Fatalf("corner pixel %v painted with tile colour", corner)
	}
}

func TestPainterWithBoard(t *testing.T) {
	p := NewPainter(200, 160)
	defer p.Close()

	b, err := board.NewTemplate[terrain.Tile](10, p.Viewport())
	if err != nil {
		t.Fatal(err)
	}
	n := b.Display(hex.Origin, p)
	if n != 19 || p.Drawn() != 19 {
		t.Fatalf("displayed %d, painter drew %d, want 19", n, p.Drawn())
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Fatalf("frame not written: %v", err)
	}
}

func TestPainterViewport(t *testing.T) {
	p := NewPainter(100, 50)
	defer p.Close()
	want := board.Viewport{Left: -50, Right: 50, Top: 25, Bottom: -25}
	if got := p.Viewport(); got != want {
		t.Fatalf("Viewport = %+v, want %+v", got, want)
	}
}
