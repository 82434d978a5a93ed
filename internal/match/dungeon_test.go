package match

import (
	"testing"

	"github.com/guildtools/runboard/internal/catalog"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Frost Hollow", "FROST HOLLOW"},
		{"frost-hollow!!", "FROST HOLLOW"},
		{"  The   Ember/Keep  ", "THE EMBER KEEP"},
		{"Frosthöhle", "FROSTHÖHLE"},
		{"***", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func testCandidates() []catalog.Dungeon {
	return []catalog.Dungeon{
		{ID: 1, Names: map[string]string{"en": "Frost Hollow", "de": "Frosthöhle"}},
		{ID: 2, Names: map[string]string{"en": "Ember Keep", "de": "Glutfeste"}},
		{ID: 3, Names: map[string]string{"en": "Sunken Archive", "de": "Versunkenes Archiv"}},
	}
}

func TestBestDungeonExactMatch(t *testing.T) {
	id, score, ok := BestDungeon("Frost Hollow", testCandidates())
	if !ok || id != 1 {
		t.Fatalf("BestDungeon = (%d, %v, %v), want id 1", id, score, ok)
	}
	if score < 0.999 {
		t.Errorf("exact match score = %v, want ~1.0", score)
	}
}

func TestBestDungeonNoisyMatch(t *testing.T) {
	// Typical OCR noise: dropped letter, stray punctuation, wrong case.
	tests := []struct {
		input string
		want  int64
	}{
		{"FROST HOLL0W", 1},
		{"frost  hollow.", 1},
		{"Ember Kep", 2},
		{"Sunken Archiv", 3},
		{"Versunkenes Archl", 3}, // matches via the German variant
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, score, ok := BestDungeon(tt.input, testCandidates())
			if !ok || id != tt.want {
				t.Errorf("BestDungeon(%q) = (%d, %v, %v), want id %d", tt.input, id, score, ok, tt.want)
			}
		})
	}
}

func TestBestDungeonBelowThreshold(t *testing.T) {
	tests := []string{
		"completely unrelated text",
		"xq zzyw",
		"",
		"!!!",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if id, score, ok := BestDungeon(input, testCandidates()); ok {
				t.Errorf("BestDungeon(%q) = (%d, %v, true), want no match", input, id, score)
			}
		})
	}
}

func TestBestDungeonNoCandidates(t *testing.T) {
	if id, _, ok := BestDungeon("Frost Hollow", nil); ok {
		t.Errorf("BestDungeon with no candidates = (%d, _, true), want no match", id)
	}
}

func TestBestDungeonThresholdNeverYieldsIDBelowCutoff(t *testing.T) {
	// Every accepted match must carry a score at or above the threshold.
	inputs := []string{"Frost Hollow", "Frst Hllw", "E K", "archive", "zzz"}
	for _, input := range inputs {
		id, score, ok := BestDungeon(input, testCandidates())
		if ok && score < SimilarityThreshold {
			t.Errorf("BestDungeon(%q) accepted id %d with score %v below threshold", input, id, score)
		}
	}
}
