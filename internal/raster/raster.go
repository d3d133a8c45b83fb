// Package raster supplies the pixel grids boards are generated from:
// decoded image files and synthetic noise terrain.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode matches every DecodeError with errors.Is.
var ErrDecode = errors.New("raster: decode failed")

// DecodeError reports an image file that could not be opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Source is a rectangular grid of colour samples.
type Source interface {
	// Bounds returns the width and height in pixels.
	Bounds() (w, h int)
	// Each calls fn for every pixel in row-major order with device
	// coordinates starting at (0, 0).
	Each(fn func(x, y int, c color.Color))
}

// Image adapts an image.Image to Source.
type Image struct {
	img image.Image
}

// FromImage wraps img.
func FromImage(img image.Image) *Image {
	return &Image{img: img}
}

func (m *Image) Bounds() (w, h int) {
	b := m.img.Bounds()
	return b.Dx(), b.Dy()
}

func (m *Image) Each(fn func(x, y int, c color.Color)) {
	b := m.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			fn(x-b.Min.X, y-b.Min.Y, m.img.At(x, y))
		}
	}
}

// Open decodes the image file at path. PNG, JPEG, GIF, BMP, TIFF and WebP
// are supported. Failures are returned as *DecodeError.
func Open(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		slog.Debug("image decode failed", "path", path, "error", err)
		return nil, &DecodeError{Path: path, Err: err}
	}

	b := img.Bounds()
	slog.Debug("image decoded", "path", path, "format", format, "width", b.Dx(), "height", b.Dy())
	return FromImage(img), nil
}
