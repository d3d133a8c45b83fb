// Package persistence provides SQLite-based board snapshot storage.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/hex"
	"github.com/talgya/hexboard/internal/terrain"
)

// ErrNotFound is returned when no snapshot has the requested id.
var ErrNotFound = errors.New("snapshot not found")

// DB wraps a SQLite connection for board snapshots.
type DB struct {
	conn *sqlx.DB
}

// Snapshot describes one stored board.
type Snapshot struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"-"`
	Created   int64     `db:"created_at"`
	Tiles     int       `db:"tiles"`
	Left      float64   `db:"vp_left"`
	Right     float64   `db:"vp_right"`
	Top       float64   `db:"vp_top"`
	Bottom    float64   `db:"vp_bottom"`
}

// Viewport returns the stored viewport.
func (s Snapshot) Viewport() board.Viewport {
	return board.Viewport{Left: s.Left, Right: s.Right, Top: s.Top, Bottom: s.Bottom}
}

type boardRow struct {
	ID      string  `db:"id"`
	Created int64   `db:"created_at"`
	Left    float64 `db:"vp_left"`
	Right   float64 `db:"vp_right"`
	Top     float64 `db:"vp_top"`
	Bottom  float64 `db:"vp_bottom"`
}

type tileRow struct {
	Q       int     `db:"q"`
	R       int     `db:"r"`
	Terrain uint8   `db:"terrain"`
	Scale   float64 `db:"scale"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		vp_left REAL NOT NULL,
		vp_right REAL NOT NULL,
		vp_top REAL NOT NULL,
		vp_bottom REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tiles (
		board_id TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		terrain INTEGER NOT NULL,
		scale REAL NOT NULL,
		PRIMARY KEY (board_id, q, r)
	);

	CREATE INDEX IF NOT EXISTS idx_boards_created ON boards(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveBoard stores b as a new snapshot and returns its id.
func (db *DB) SaveBoard(b *board.Board[terrain.Tile]) (string, error) {
	id := uuid.NewString()
	vp := b.Viewport()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO boards
		(id, created_at, vp_left, vp_right, vp_top, vp_bottom)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UnixNano(), vp.Left, vp.Right, vp.Top, vp.Bottom,
	)
	if err != nil {
		return "", fmt.Errorf("insert board: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO tiles (board_id, q, r, terrain, scale) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	var insertErr error
	b.Each(func(c hex.Coord, t terrain.Tile) {
		if insertErr != nil {
			return
		}
		if _, err := stmt.Exec(id, c.Q, c.R, uint8(t.Terrain), t.Scale); err != nil {
			insertErr = fmt.Errorf("insert tile %v: %w", c, err)
		}
	})
	if insertErr != nil {
		return "", insertErr
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	slog.Debug("board saved", "id", id, "tiles", b.Len())
	return id, nil
}

// LoadBoard rebuilds the snapshot with the given id.
func (db *DB) LoadBoard(id string) (*board.Board[terrain.Tile], error) {
	var row boardRow
	err := db.conn.Get(&row,
		"SELECT id, created_at, vp_left, vp_right, vp_top, vp_bottom FROM boards WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load board %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load board %s: %w", id, err)
	}

	var rows []tileRow
	err = db.conn.Select(&rows, "SELECT q, r, terrain, scale FROM tiles WHERE board_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("load tiles %s: %w", id, err)
	}

	tiles := board.NewTiles[terrain.Tile]()
	for _, r := range rows {
		tiles.Put(hex.Coord{Q: r.Q, R: r.R}, terrain.Tile{Terrain: terrain.Terrain(r.Terrain), Scale: r.Scale})
	}

	vp := board.Viewport{Left: row.Left, Right: row.Right, Top: row.Top, Bottom: row.Bottom}
	slog.Debug("board loaded", "id", id, "tiles", tiles.Len())
	return board.Wrap(tiles, vp), nil
}

// ListBoards returns every snapshot, newest first.
func (db *DB) ListBoards() ([]Snapshot, error) {
	var snaps []Snapshot
	err := db.conn.Select(&snaps, `
		SELECT b.id, b.created_at, b.vp_left, b.vp_right, b.vp_top, b.vp_bottom,
			(SELECT COUNT(*) FROM tiles t WHERE t.board_id = b.id) AS tiles
		FROM boards b
		ORDER BY b.created_at DESC, b.rowid DESC`)
	if err != nil {
		return nil, err
	}
	for i := range snaps {
		snaps[i].CreatedAt = time.Unix(0, snaps[i].Created)
	}
	return snaps, nil
}

// DeleteBoard removes a snapshot and its tiles.
func (db *DB) DeleteBoard(id string) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tiles WHERE board_id = ?", id); err != nil {
		return err
	}
	res, err := tx.Exec("DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete board %s: %w", id, ErrNotFound)
	}
	return tx.Commit()
}
