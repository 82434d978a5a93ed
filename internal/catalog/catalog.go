// Package catalog provides read access to the canonical dungeon and player
// records that extraction results are reconciled against.
//
// The extraction core only ever reads from these interfaces; creating new
// canonical records is a separate, human-driven step. Implementations are
// expected to return fresh data on every call rather than cache snapshots.
package catalog

import "context"

// Dungeon is a read-only snapshot of one canonical dungeon.
type Dungeon struct {
	ID int64

	// Names maps a locale tag ("en", "de", ...) to the dungeon's localized
	// name. Every locale the game client supports has one entry.
	Names map[string]string
}

// DungeonCatalog lists every known dungeon.
type DungeonCatalog interface {
	Dungeons(ctx context.Context) ([]Dungeon, error)
}

// PlayerDirectory looks up canonical players by name.
type PlayerDirectory interface {
	// FindPlayer returns the id of the player whose name equals the given
	// name case-insensitively, or ok=false when no such player exists.
	FindPlayer(ctx context.Context, name string) (id int64, ok bool, err error)
}
