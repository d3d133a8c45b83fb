// Package render draws terrain boards onto a gg canvas.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/hex"
	"github.com/talgya/hexboard/internal/terrain"
)

var (
	background  = gg.RGB(0.07, 0.08, 0.10)
	voidOutline = color.RGBA{R: 0x55, G: 0x5a, B: 0x66, A: 0xff}
	tileBorder  = color.RGBA{R: 0x10, G: 0x12, B: 0x16, A: 0xff}
	borderWidth = 1.0
)

// Painter renders visible tiles as flat-top hexagons. Board pixel space has
// its origin at the canvas centre with y pointing up.
type Painter struct {
	dc     *gg.Context
	cx, cy float64
	drawn  int
	err    error
}

// NewPainter returns a painter with a cleared w×h canvas.
func NewPainter(w, h int) *Painter {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(background)
	return &Painter{
		dc: dc,
		cx: float64(w) / 2,
		cy: float64(h) / 2,
	}
}

// Viewport returns the board viewport that exactly covers the canvas.
func (p *Painter) Viewport() board.Viewport {
	return board.Centered(float64(p.dc.Width()), float64(p.dc.Height()))
}

// Draw paints t at c. Void tiles are outlined, all others filled with
// their terrain colour.
func (p *Painter) Draw(c hex.Coord, t terrain.Tile) {
	scale := t.DrawScale()
	x, y := c.ToPixel(scale)
	px, py := p.cx+x, p.cy-y

	p.dc.DrawRegularPolygon(6, px, py, scale, 0)
	p.dc.SetLineWidth(borderWidth)

	var err error
	if t.Terrain == terrain.Void {
		p.dc.SetColor(voidOutline)
		err = p.dc.Stroke()
	} else {
		p.dc.SetColor(t.Terrain.Color())
		if err = p.dc.FillPreserve(); err == nil {
			p.dc.SetColor(tileBorder)
			err = p.dc.Stroke()
		}
	}
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("draw %v: %w", c, err)
	}
	p.drawn++
}

// Drawn returns the number of tiles drawn so far.
func (p *Painter) Drawn() int {
	return p.drawn
}

// Err returns the first drawing error, if any.
func (p *Painter) Err() error {
	return p.err
}

// Image returns the canvas.
func (p *Painter) Image() image.Image {
	return p.dc.Image()
}

// SavePNG writes the canvas to path.
func (p *Painter) SavePNG(path string) error {
	if p.err != nil {
		return p.err
	}
	return p.dc.SavePNG(path)
}

// Close releases the canvas.
func (p *Painter) Close() error {
	return p.dc.Close()
}
