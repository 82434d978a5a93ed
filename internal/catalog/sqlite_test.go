package catalog

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := OpenStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreDungeons(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id1, err := s.AddDungeon(ctx, map[string]string{"en": "Frost Hollow", "de": "Frosthöhle"})
	if err != nil {
		t.Fatalf("AddDungeon failed: %v", err)
	}
	id2, err := s.AddDungeon(ctx, map[string]string{"en": "Ember Keep"})
	if err != nil {
		t.Fatalf("AddDungeon failed: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("dungeon ids collide: %d", id1)
	}

	dungeons, err := s.Dungeons(ctx)
	if err != nil {
		t.Fatalf("Dungeons failed: %v", err)
	}
	if len(dungeons) != 2 {
		t.Fatalf("got %d dungeons, want 2", len(dungeons))
	}

	byID := map[int64]Dungeon{}
	for _, d := range dungeons {
		byID[d.ID] = d
	}
	if got := byID[id1].Names["de"]; got != "Frosthöhle" {
		t.Errorf("dungeon %d de name = %q, want %q", id1, got, "Frosthöhle")
	}
	if got := byID[id2].Names["en"]; got != "Ember Keep" {
		t.Errorf("dungeon %d en name = %q, want %q", id2, got, "Ember Keep")
	}
}

func TestStoreFindPlayerCaseInsensitive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.AddPlayer(ctx, "John Doe")
	if err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}

	for _, name := range []string{"John Doe", "john doe", "JOHN DOE"} {
		got, ok, err := s.FindPlayer(ctx, name)
		if err != nil {
			t.Fatalf("FindPlayer(%q) failed: %v", name, err)
		}
		if !ok || got != id {
			t.Errorf("FindPlayer(%q) = (%d, %v), want (%d, true)", name, got, ok, id)
		}
	}

	if _, ok, err := s.FindPlayer(ctx, "Nobody"); err != nil || ok {
		t.Errorf("FindPlayer(Nobody) = (_, %v, %v), want no match", ok, err)
	}
}

func TestStoreAddPlayerIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.AddPlayer(ctx, "Aria")
	if err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}
	second, err := s.AddPlayer(ctx, "ARIA")
	if err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}
	if first != second {
		t.Errorf("re-adding player created new id %d, want %d", second, first)
	}
}

func TestMemoryCatalog(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	did := m.AddDungeon(map[string]string{"en": "Frost Hollow"})
	pid := m.AddPlayer("Aria")

	dungeons, err := m.Dungeons(ctx)
	if err != nil {
		t.Fatalf("Dungeons failed: %v", err)
	}
	if len(dungeons) != 1 || dungeons[0].ID != did {
		t.Fatalf("Dungeons = %+v, want one entry with id %d", dungeons, did)
	}

	got, ok, err := m.FindPlayer(ctx, "aria")
	if err != nil || !ok || got != pid {
		t.Errorf("FindPlayer(aria) = (%d, %v, %v), want (%d, true, nil)", got, ok, err, pid)
	}
}
