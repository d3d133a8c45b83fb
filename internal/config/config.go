// Package config holds hexboard runtime settings.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/hex"
)

// Config holds all command settings.
type Config struct {
	Scale    float64        // Hex edge length in pixels
	Layers   int            // Ring generator layer count (half-open)
	Rescale  float64        // Scale to switch to before drawing (0 = keep)
	Width    int            // Canvas width in pixels
	Height   int            // Canvas height in pixels
	Viewport board.Viewport // Zero value means "cover the canvas"
	Offset   hex.Coord      // Translation applied while drawing

	ImagePath string // Build from this image when set
	NoiseSeed int64  // Build from synthetic noise when non-zero
	Template  bool   // Build the fixed template board

	PNGPath  string // Write the frame here when set
	DBPath   string // Save a snapshot here when set
	LoadID   string // Load this snapshot instead of generating
	List     bool   // List snapshots and exit
	LogLevel slog.Level
}

// Default returns a reasonable starting configuration.
func Default() Config {
	return Config{
		Scale:    12,
		Layers:   8,
		Width:    800,
		Height:   600,
		LogLevel: slog.LevelInfo,
	}
}

// FromEnv applies HEXBOARD_* environment overrides to c.
func FromEnv(c Config) (Config, error) {
	if v := os.Getenv("HEXBOARD_SCALE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("HEXBOARD_SCALE: %w", err)
		}
		c.Scale = f
	}
	if v := os.Getenv("HEXBOARD_LAYERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("HEXBOARD_LAYERS: %w", err)
		}
		c.Layers = n
	}
	if v := os.Getenv("HEXBOARD_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("HEXBOARD_LOG_LEVEL"); v != "" {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return c, fmt.Errorf("HEXBOARD_LOG_LEVEL: %w", err)
		}
	}
	return c, nil
}

// Validate checks the numeric settings.
func (c Config) Validate() error {
	if !(c.Scale > 0) {
		return fmt.Errorf("scale %v: %w", c.Scale, board.ErrInvalidParameter)
	}
	if c.Rescale < 0 {
		return fmt.Errorf("rescale %v: %w", c.Rescale, board.ErrInvalidParameter)
	}
	if c.Layers < 0 {
		return fmt.Errorf("layers %d: %w", c.Layers, board.ErrInvalidParameter)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas %dx%d: %w", c.Width, c.Height, board.ErrInvalidParameter)
	}
	sources := 0
	for _, set := range []bool{c.ImagePath != "", c.NoiseSeed != 0, c.Template, c.LoadID != ""} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("choose one of image, noise, template or load: %w", board.ErrInvalidParameter)
	}
	return nil
}

// ParseViewport reads "left,right,top,bottom".
func ParseViewport(s string) (board.Viewport, error) {
	f, err := parseFloats(s, 4)
	if err != nil {
		return board.Viewport{}, fmt.Errorf("viewport %q: %w", s, err)
	}
	return board.Viewport{Left: f[0], Right: f[1], Top: f[2], Bottom: f[3]}, nil
}

// ParseCoord reads "q,r".
func ParseCoord(s string) (hex.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return hex.Coord{}, fmt.Errorf("coordinate %q: want q,r", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return hex.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return hex.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return hex.Coord{Q: q, R: r}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
