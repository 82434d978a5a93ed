// Package layout maps screenshot dimensions to the pixel regions of the
// leaderboard overlay.
//
// The overlay is rendered by the game at a fixed aspect layout, so every
// region of interest sits at a fixed fraction of the image dimensions. The
// fractions are a contract with the upstream renderer: this package only
// converts them to absolute pixel rectangles, it never inspects pixels. A
// screenshot taken at an unexpected resolution is rejected upstream (see
// internal/imaging), not compensated for here.
package layout

import (
	"fmt"
	"image"
)

// FracRect describes a region as fractions of the image width and height.
type FracRect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Config holds the fractional constants for every overlay region.
//
// All values are fractions in [0,1] of the full image width or height.
// Column fractions are relative to the full image width, not to the table
// region, because that is how the overlay renderer positions them.
type Config struct {
	// DungeonBanner is the banner showing the dungeon's localized name.
	DungeonBanner FracRect

	// WeekBanner is the banner showing the week label, e.g. "Week 7".
	WeekBanner FracRect

	// ModeBanner declares whether the table lists scores or clear times.
	ModeBanner FracRect

	// Table is the area containing the result rows.
	Table FracRect

	// Rows is the number of equal-height row bands inside Table.
	Rows int

	// NameColX/NameColW bound the player-name column of each row.
	NameColX float64
	NameColW float64

	// ValueColX/ValueColW bound the score-or-time column of each row.
	ValueColX float64
	ValueColW float64
}

// DefaultConfig returns the layout of the current overlay renderer.
func DefaultConfig() Config {
	return Config{
		DungeonBanner: FracRect{X: 0.30, Y: 0.02, W: 0.40, H: 0.07},
		WeekBanner:    FracRect{X: 0.04, Y: 0.02, W: 0.18, H: 0.07},
		ModeBanner:    FracRect{X: 0.74, Y: 0.11, W: 0.20, H: 0.06},
		Table:         FracRect{X: 0.0, Y: 0.20, W: 1.0, H: 0.72},
		Rows:          5,
		NameColX:      0.32,
		NameColW:      0.38,
		ValueColX:     0.74,
		ValueColW:     0.14,
	}
}

// Geometry resolves a Config against one image's pixel dimensions.
type Geometry struct {
	cfg    Config
	width  int
	height int
}

// New creates a Geometry for an image of the given dimensions.
// Non-positive dimensions are a contract violation and fail immediately.
func New(cfg Config, width, height int) (*Geometry, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if cfg.Rows <= 0 {
		return nil, fmt.Errorf("invalid row count %d", cfg.Rows)
	}
	return &Geometry{cfg: cfg, width: width, height: height}, nil
}

// Rows returns the number of row bands in the table area.
func (g *Geometry) Rows() int {
	return g.cfg.Rows
}

// DungeonBanner returns the pixel rectangle of the dungeon-name banner.
func (g *Geometry) DungeonBanner() image.Rectangle {
	return g.rect(g.cfg.DungeonBanner)
}

// WeekBanner returns the pixel rectangle of the week banner.
func (g *Geometry) WeekBanner() image.Rectangle {
	return g.rect(g.cfg.WeekBanner)
}

// ModeBanner returns the pixel rectangle of the score/time mode banner.
func (g *Geometry) ModeBanner() image.Rectangle {
	return g.rect(g.cfg.ModeBanner)
}

// RowRegions holds the sub-column rectangles of one table row.
type RowRegions struct {
	// Names covers the player-name column of the row.
	Names image.Rectangle

	// Value covers the score-or-time cell of the row.
	Value image.Rectangle
}

// Row returns the sub-column rectangles of row band i, 0 <= i < Rows().
func (g *Geometry) Row(i int) RowRegions {
	if i < 0 || i >= g.cfg.Rows {
		panic(fmt.Sprintf("row index %d out of range [0,%d)", i, g.cfg.Rows))
	}

	table := g.rect(g.cfg.Table)
	bandH := float64(table.Dy()) / float64(g.cfg.Rows)
	y1 := table.Min.Y + int(float64(i)*bandH)
	y2 := table.Min.Y + int(float64(i+1)*bandH)

	nameX1 := int(g.cfg.NameColX * float64(g.width))
	nameX2 := int((g.cfg.NameColX + g.cfg.NameColW) * float64(g.width))
	valueX1 := int(g.cfg.ValueColX * float64(g.width))
	valueX2 := int((g.cfg.ValueColX + g.cfg.ValueColW) * float64(g.width))

	return RowRegions{
		Names: image.Rect(nameX1, y1, nameX2, y2),
		Value: image.Rect(valueX1, y1, valueX2, y2),
	}
}

func (g *Geometry) rect(f FracRect) image.Rectangle {
	x1 := int(f.X * float64(g.width))
	y1 := int(f.Y * float64(g.height))
	x2 := int((f.X + f.W) * float64(g.width))
	y2 := int((f.Y + f.H) * float64(g.height))
	return image.Rect(x1, y1, x2, y2)
}
