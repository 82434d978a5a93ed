package catalog

import (
	"context"
	"strings"
	"sync"
)

// Memory is an in-memory catalog for tests and ad-hoc extraction runs
// without a database file. Safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	dungeons []Dungeon
	players  map[string]int64 // lower-cased name -> id
	nextID   int64
}

// NewMemory creates an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{players: make(map[string]int64), nextID: 1}
}

// AddDungeon registers a dungeon with its localized names and returns its id.
func (m *Memory) AddDungeon(names map[string]string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	copied := make(map[string]string, len(names))
	for locale, name := range names {
		copied[locale] = name
	}
	m.dungeons = append(m.dungeons, Dungeon{ID: id, Names: copied})
	return id
}

// AddPlayer registers a player name and returns its id. Names are unique
// case-insensitively; re-adding an existing name returns the existing id.
func (m *Memory) AddPlayer(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(name)
	if id, ok := m.players[key]; ok {
		return id
	}
	id := m.nextID
	m.nextID++
	m.players[key] = id
	return id
}

// Dungeons implements DungeonCatalog.
func (m *Memory) Dungeons(ctx context.Context) ([]Dungeon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Dungeon, len(m.dungeons))
	copy(out, m.dungeons)
	return out, nil
}

// FindPlayer implements PlayerDirectory.
func (m *Memory) FindPlayer(ctx context.Context, name string) (int64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.players[strings.ToLower(name)]
	return id, ok, nil
}
