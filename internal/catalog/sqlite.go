package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS dungeons (
	id INTEGER PRIMARY KEY AUTOINCREMENT
);

CREATE TABLE IF NOT EXISTS dungeon_names (
	dungeon_id INTEGER NOT NULL REFERENCES dungeons(id),
	locale     TEXT NOT NULL,
	name       TEXT NOT NULL,
	PRIMARY KEY (dungeon_id, locale)
);

CREATE TABLE IF NOT EXISTS players (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE COLLATE NOCASE
);
`

// Store is a SQLite-backed catalog. It implements DungeonCatalog and
// PlayerDirectory and additionally supports seeding records, which the
// extraction core never does on its own.
type Store struct {
	db *sqlx.DB
}

// OpenStore opens (and if necessary initializes) a catalog database file.
func OpenStore(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dungeons implements DungeonCatalog. Every call reads fresh rows.
func (s *Store) Dungeons(ctx context.Context) ([]Dungeon, error) {
	var rows []struct {
		DungeonID int64  `db:"dungeon_id"`
		Locale    string `db:"locale"`
		Name      string `db:"name"`
	}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT dungeon_id, locale, name FROM dungeon_names ORDER BY dungeon_id, locale`)
	if err != nil {
		return nil, fmt.Errorf("list dungeons: %w", err)
	}

	var out []Dungeon
	for _, r := range rows {
		if len(out) == 0 || out[len(out)-1].ID != r.DungeonID {
			out = append(out, Dungeon{ID: r.DungeonID, Names: make(map[string]string)})
		}
		out[len(out)-1].Names[r.Locale] = r.Name
	}
	return out, nil
}

// FindPlayer implements PlayerDirectory.
func (s *Store) FindPlayer(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := s.db.GetContext(ctx, &id,
		`SELECT id FROM players WHERE name = ? COLLATE NOCASE`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("find player %q: %w", name, err)
	}
	return id, true, nil
}

// AddDungeon inserts a dungeon with its localized names and returns its id.
func (s *Store) AddDungeon(ctx context.Context, names map[string]string) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("add dungeon: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO dungeons DEFAULT VALUES`)
	if err != nil {
		return 0, fmt.Errorf("add dungeon: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add dungeon: %w", err)
	}

	for locale, name := range names {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO dungeon_names (dungeon_id, locale, name) VALUES (?, ?, ?)`,
			id, locale, name)
		if err != nil {
			return 0, fmt.Errorf("add dungeon name %s=%q: %w", locale, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("add dungeon: %w", err)
	}
	return id, nil
}

// AddPlayer inserts a player name and returns its id. Re-adding a name that
// already exists (case-insensitively) returns the existing id.
func (s *Store) AddPlayer(ctx context.Context, name string) (int64, error) {
	if id, ok, err := s.FindPlayer(ctx, name); err != nil {
		return 0, err
	} else if ok {
		return id, nil
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO players (name) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("add player %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add player %q: %w", name, err)
	}
	return id, nil
}
