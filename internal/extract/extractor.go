package extract

import (
	"context"
	"image"
	"log"
	"strings"

	"github.com/guildtools/runboard/internal/catalog"
	"github.com/guildtools/runboard/internal/layout"
	"github.com/guildtools/runboard/internal/match"
	"github.com/guildtools/runboard/internal/ocr"
	"github.com/guildtools/runboard/internal/parse"
)

// timeWhitelist restricts value-cell recognition once the page has declared
// clear times; it keeps the engine from reading "12:34" as "lZ:3A".
const timeWhitelist = "0123456789:"

// Extractor converts leaderboard screenshots into provisional runs.
//
// All fields except OCR are optional: a nil catalog leaves dungeons
// unresolved, a nil directory leaves players unresolved, a nil logger falls
// back to the process-wide default, and a zero Layout is replaced by
// layout.DefaultConfig().
//
// An Extractor holds no per-image state; one instance may be used for any
// number of sequential extractions.
type Extractor struct {
	OCR      ocr.Recognizer
	Layout   layout.Config
	Dungeons catalog.DungeonCatalog
	Players  catalog.PlayerDirectory
	Logger   *log.Logger

	// Preprocess enables region preprocessing before each recognition.
	Preprocess bool
}

// ExtractAll processes images in order and returns one run list per image.
// Images are processed sequentially because each recognition call owns the
// engine for its duration.
func (e *Extractor) ExtractAll(ctx context.Context, images []image.Image) ([][]ContributionRun, error) {
	out := make([][]ContributionRun, 0, len(images))
	for _, img := range images {
		runs, err := e.ExtractImage(ctx, img)
		if err != nil {
			return nil, err
		}
		out = append(out, runs)
	}
	return out, nil
}

// ExtractImage converts one screenshot into zero or more provisional runs.
//
// Unreadable regions, unmatched entities, and malformed rows all degrade
// gracefully: the run list may be empty and its fields may be nil, but the
// only error condition is an image with non-positive dimensions, which is a
// caller contract violation.
func (e *Extractor) ExtractImage(ctx context.Context, img image.Image) ([]ContributionRun, error) {
	cfg := e.Layout
	if cfg.Rows == 0 {
		cfg = layout.DefaultConfig()
	}

	bounds := img.Bounds()
	geom, err := layout.New(cfg, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	page := e.detectPageMetadata(ctx, img, geom)
	rows := e.extractRows(img, geom, page.mode)
	return e.buildRuns(ctx, rows, page), nil
}

// detectPageMetadata reads the three page-level banners. Each may fail
// independently; a page with unknown mode, week, or dungeon still yields
// rows with those fields left open for the reviewer.
func (e *Extractor) detectPageMetadata(ctx context.Context, img image.Image, geom *layout.Geometry) pageMetadata {
	var page pageMetadata

	modeText := e.recognize(img, geom.ModeBanner(), ocr.Options{Mode: ocr.SegModeLine, Preprocess: e.Preprocess}, "mode banner")
	page.mode = detectMode(modeText)

	weekText := e.recognize(img, geom.WeekBanner(), ocr.Options{Mode: ocr.SegModeLine, Preprocess: e.Preprocess}, "week banner")
	if week, ok := parse.WeekNumber(weekText); ok {
		page.week = &week
	}

	dungeonText := e.recognize(img, geom.DungeonBanner(), ocr.Options{Mode: ocr.SegModeLine, Preprocess: e.Preprocess}, "dungeon banner")
	if dungeonText != "" && e.Dungeons != nil {
		candidates, err := e.Dungeons.Dungeons(ctx)
		if err != nil {
			e.logf("dungeon catalog unavailable: %v", err)
		} else if id, score, ok := match.BestDungeon(dungeonText, candidates); ok {
			page.dungeonID = &id
		} else {
			e.logf("no dungeon match for %q (best score %.2f)", dungeonText, score)
		}
	}

	return page
}

// extractRows reads every row band, keeping only rows with at least one
// player-name line. Empty bands are unused slots, not errors.
func (e *Extractor) extractRows(img image.Image, geom *layout.Geometry, mode Mode) []rowExtraction {
	whitelist := ""
	if mode == ModeTime {
		whitelist = timeWhitelist
	}

	var rows []rowExtraction
	for i := 0; i < geom.Rows(); i++ {
		regions := geom.Row(i)

		namesText := e.recognize(img, regions.Names, ocr.Options{Mode: ocr.SegModeBlock, Preprocess: e.Preprocess}, "row names")
		names := parse.PlayerLines(namesText)
		if len(names) == 0 {
			continue
		}

		valueText := e.recognize(img, regions.Value, ocr.Options{Mode: ocr.SegModeLine, Whitelist: whitelist, Preprocess: e.Preprocess}, "row value")
		rows = append(rows, rowExtraction{names: names, valueText: valueText})
	}
	return rows
}

// buildRuns turns extracted rows into accepted runs. Rows without a usable
// metric or without any resolvable player name are dropped silently.
func (e *Extractor) buildRuns(ctx context.Context, rows []rowExtraction, page pageMetadata) []ContributionRun {
	resolver := match.PlayerResolver{Directory: e.Players}

	runs := make([]ContributionRun, 0, len(rows))
	for _, row := range rows {
		score, timeSeconds, ok := rowMetric(row.valueText, page.mode)
		if !ok {
			e.logf("dropping row %v: no usable %s value in %q", row.names, page.mode, row.valueText)
			continue
		}

		players := e.resolvePlayers(ctx, &resolver, row.names)
		if len(players) == 0 {
			e.logf("dropping row: no player names survived normalization")
			continue
		}

		runs = append(runs, ContributionRun{
			Week:        page.week,
			DungeonID:   page.dungeonID,
			Score:       score,
			TimeSeconds: timeSeconds,
			Players:     players,
		})
	}
	return runs
}

func (e *Extractor) resolvePlayers(ctx context.Context, resolver *match.PlayerResolver, names []string) []ContributionPlayer {
	players := make([]ContributionPlayer, 0, len(names))
	for _, raw := range names {
		if e.Players == nil {
			if name := match.NormalizeName(raw); name != "" {
				players = append(players, ContributionPlayer{Name: name})
			}
			continue
		}

		name, id, err := resolver.Resolve(ctx, raw)
		if err != nil {
			e.logf("player lookup failed for %q: %v", name, err)
			id = nil
		}
		if name == "" {
			continue
		}
		players = append(players, ContributionPlayer{Name: name, PlayerID: id})
	}
	return players
}

// rowMetric decides the metric of one row. A declared page mode is binding;
// otherwise the value cell is interpreted as a time when it looks like one,
// since a colon pattern is a stronger signal than bare digits.
func rowMetric(valueText string, mode Mode) (score *int64, timeSeconds *int, ok bool) {
	s, scoreOK := parse.Score(valueText)
	t, timeOK := parse.DurationSeconds(valueText)

	switch mode {
	case ModeScore:
		timeOK = false
	case ModeTime:
		scoreOK = false
	default:
		if timeOK {
			scoreOK = false
		}
	}

	if timeOK && t > 0 {
		return nil, &t, true
	}
	if scoreOK && s > 0 {
		return &s, nil, true
	}
	return nil, nil, false
}

// detectMode interprets the mode banner text.
func detectMode(s string) Mode {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "time"):
		return ModeTime
	case strings.Contains(lower, "score"):
		return ModeScore
	default:
		return ModeUnknown
	}
}

// recognize runs one region through the engine, degrading failures to an
// absent field.
func (e *Extractor) recognize(img image.Image, region image.Rectangle, opts ocr.Options, what string) string {
	text, err := e.OCR.Recognize(img, region, opts)
	if err != nil {
		e.logf("recognition failed for %s %v: %v", what, region, err)
		return ""
	}
	return text
}

func (e *Extractor) logf(format string, args ...interface{}) {
	l := e.Logger
	if l == nil {
		l = log.Default()
	}
	l.Printf(format, args...)
}
