// Command hexboard builds a hex tile board, draws the visible part of it to
// a PNG and optionally stores a snapshot.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gogpu/gg"
	"github.com/mattn/go-isatty"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/config"
	"github.com/talgya/hexboard/internal/hex"
	"github.com/talgya/hexboard/internal/persistence"
	"github.com/talgya/hexboard/internal/raster"
	"github.com/talgya/hexboard/internal/render"
	"github.com/talgya/hexboard/internal/terrain"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	setupLogging(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("hexboard failed", "error", err)
		os.Exit(1)
	}
}

// setupLogging installs a text handler on a terminal and JSON otherwise.
func setupLogging(level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	gg.SetLogger(logger)
}

func loadConfig(args []string) (config.Config, error) {
	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		return cfg, err
	}

	var viewport, offset string
	fs := flag.NewFlagSet("hexboard", flag.ContinueOnError)
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "hex edge length in pixels")
	fs.IntVar(&cfg.Layers, "layers", cfg.Layers, "ring layers to generate (the last is excluded)")
	fs.Float64Var(&cfg.Rescale, "rescale", cfg.Rescale, "rescale the board before drawing")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "canvas width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "canvas height")
	fs.StringVar(&viewport, "viewport", "", "viewport bounds left,right,top,bottom (default: the canvas)")
	fs.StringVar(&offset, "offset", "", "draw offset q,r")
	fs.StringVar(&cfg.ImagePath, "image", cfg.ImagePath, "build from an image file")
	fs.Int64Var(&cfg.NoiseSeed, "noise", cfg.NoiseSeed, "build from synthetic noise with this seed")
	fs.BoolVar(&cfg.Template, "template", cfg.Template, "build the fixed template board")
	fs.StringVar(&cfg.PNGPath, "png", cfg.PNGPath, "write the frame to this PNG")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "snapshot database")
	fs.StringVar(&cfg.LoadID, "load", cfg.LoadID, "load this snapshot id from -db")
	fs.BoolVar(&cfg.List, "list", cfg.List, "list snapshots in -db and exit")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if viewport != "" {
		if cfg.Viewport, err = config.ParseViewport(viewport); err != nil {
			return cfg, err
		}
	}
	if offset != "" {
		if cfg.Offset, err = config.ParseCoord(offset); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	var db *persistence.DB
	if cfg.DBPath != "" {
		var err error
		db, err = persistence.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		slog.Info("database opened", "path", cfg.DBPath)
	} else if cfg.List || cfg.LoadID != "" {
		return fmt.Errorf("-list and -load need -db")
	}

	if cfg.List {
		return listSnapshots(db)
	}

	painter := render.NewPainter(cfg.Width, cfg.Height)
	defer painter.Close()

	vp := cfg.Viewport
	if vp == (board.Viewport{}) {
		vp = painter.Viewport()
	}

	b, err := build(cfg, db, vp)
	if err != nil {
		return err
	}
	logTerrain(b)

	if cfg.Rescale > 0 {
		if b, err = b.UpdateScale(cfg.Rescale); err != nil {
			return err
		}
		slog.Info("board rescaled", "scale", cfg.Rescale)
	}

	drawn := b.Display(cfg.Offset, painter)
	if err := painter.Err(); err != nil {
		return err
	}
	slog.Info("board displayed",
		"tiles", humanize.Comma(int64(b.Len())),
		"visible", humanize.Comma(int64(drawn)),
		"offset", cfg.Offset,
	)

	if cfg.PNGPath != "" {
		if err := painter.SavePNG(cfg.PNGPath); err != nil {
			return fmt.Errorf("save frame: %w", err)
		}
		slog.Info("frame written", "path", cfg.PNGPath)
	}

	if db != nil && cfg.LoadID == "" {
		id, err := db.SaveBoard(b)
		if err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		slog.Info("snapshot saved", "id", id)
	}
	return nil
}

func build(cfg config.Config, db *persistence.DB, vp board.Viewport) (*board.Board[terrain.Tile], error) {
	switch {
	case cfg.LoadID != "":
		slog.Info("loading snapshot", "id", cfg.LoadID)
		b, err := db.LoadBoard(cfg.LoadID)
		if err != nil {
			return nil, err
		}
		return b, nil
	case cfg.ImagePath != "":
		slog.Info("generating board from image", "path", cfg.ImagePath)
		return board.FromImage[terrain.Tile](cfg.ImagePath, cfg.Scale, vp)
	case cfg.NoiseSeed != 0:
		slog.Info("generating board from noise", "seed", cfg.NoiseSeed)
		nc := raster.DefaultNoiseConfig()
		nc.Seed = cfg.NoiseSeed
		return board.FromRaster[terrain.Tile](raster.NewNoise(nc), cfg.Scale, vp)
	case cfg.Template:
		slog.Info("generating template board")
		return board.NewTemplate[terrain.Tile](cfg.Scale, vp)
	default:
		slog.Info("generating ring board", "layers", cfg.Layers)
		return board.New[terrain.Tile](cfg.Scale, cfg.Layers, vp)
	}
}

func logTerrain(b *board.Board[terrain.Tile]) {
	counts := make(map[terrain.Terrain]int)
	b.Each(func(_ hex.Coord, t terrain.Tile) {
		counts[t.Terrain]++
	})
	for _, t := range terrain.All() {
		if c := counts[t]; c > 0 {
			slog.Info("terrain", "type", t.Name(), "count", humanize.Comma(int64(c)))
		}
	}
}

func listSnapshots(db *persistence.DB) error {
	snaps, err := db.ListBoards()
	if err != nil {
		return err
	}
	for _, s := range snaps {
		fmt.Printf("%s  %-14s  %s tiles\n", s.ID, humanize.Time(s.CreatedAt), humanize.Comma(int64(s.Tiles)))
	}
	return nil
}
