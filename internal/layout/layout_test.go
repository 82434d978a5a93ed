package layout

import (
	"image"
	"testing"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"zero width", 0, 1080},
		{"zero height", 1920, 0},
		{"negative width", -1, 1080},
		{"negative height", 1920, -1},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(DefaultConfig(), tt.width, tt.height); err == nil {
				t.Errorf("New(%d, %d) succeeded, want error", tt.width, tt.height)
			}
		})
	}
}

func TestNewRejectsZeroRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	if _, err := New(cfg, 1920, 1080); err == nil {
		t.Error("New with zero rows succeeded, want error")
	}
}

func TestBannerRegions(t *testing.T) {
	g, err := New(DefaultConfig(), 1920, 1080)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		name string
		got  image.Rectangle
		want image.Rectangle
	}{
		{"dungeon banner", g.DungeonBanner(), image.Rect(576, 21, 1344, 97)},
		{"week banner", g.WeekBanner(), image.Rect(76, 21, 422, 97)},
		{"mode banner", g.ModeBanner(), image.Rect(1420, 118, 1804, 183)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRowBandsPartitionTable(t *testing.T) {
	cfg := DefaultConfig()
	g, err := New(cfg, 1920, 1080)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	prevBottom := -1
	for i := 0; i < g.Rows(); i++ {
		row := g.Row(i)

		if row.Names.Dy() <= 0 || row.Value.Dy() <= 0 {
			t.Errorf("row %d has empty band: names=%v value=%v", i, row.Names, row.Value)
		}
		if row.Names.Min.Y != row.Value.Min.Y || row.Names.Max.Y != row.Value.Max.Y {
			t.Errorf("row %d columns disagree vertically: names=%v value=%v", i, row.Names, row.Value)
		}
		if prevBottom >= 0 && row.Names.Min.Y != prevBottom {
			t.Errorf("row %d starts at y=%d, want %d (bands must tile)", i, row.Names.Min.Y, prevBottom)
		}
		prevBottom = row.Names.Max.Y
	}
}

func TestRowColumns(t *testing.T) {
	g, err := New(DefaultConfig(), 1920, 1080)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	row := g.Row(0)

	// Name column: 32% to 70% of image width.
	if row.Names.Min.X != 614 || row.Names.Max.X != 1344 {
		t.Errorf("name column x-range = [%d,%d), want [614,1344)", row.Names.Min.X, row.Names.Max.X)
	}
	// Value column: 74% to 88% of image width.
	if row.Value.Min.X != 1420 || row.Value.Max.X != 1689 {
		t.Errorf("value column x-range = [%d,%d), want [1420,1689)", row.Value.Min.X, row.Value.Max.X)
	}
}

func TestRowPanicsOutOfRange(t *testing.T) {
	g, err := New(DefaultConfig(), 1920, 1080)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, i := range []int{-1, 5, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Row(%d) did not panic", i)
				}
			}()
			g.Row(i)
		}()
	}
}
