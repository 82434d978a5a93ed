// Package match reconciles recognized text against the canonical dungeon
// and player catalogs without ever fabricating a match: anything below the
// acceptance threshold is reported as unresolved for a human to settle.
package match

import (
	"strings"
	"unicode"

	"github.com/xrash/smetrics"

	"github.com/guildtools/runboard/internal/catalog"
)

// SimilarityThreshold is the minimum Jaro-Winkler score required before an
// OCR'd dungeon name is trusted to identify a canonical dungeon.
const SimilarityThreshold = 0.75

// Normalize prepares text for similarity comparison: uppercase, every run
// of non-alphanumeric characters collapsed to a single space, and trimmed.
func Normalize(s string) string {
	var b strings.Builder
	pendingSpace := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(unicode.ToUpper(r))
		} else {
			pendingSpace = true
		}
	}
	return b.String()
}

// BestDungeon finds the candidate whose localized name variant is most
// similar to the recognized text. It returns the candidate's id and the
// winning score when that score reaches SimilarityThreshold; otherwise
// ok is false. When two candidates score equally, the first encountered
// maximum wins.
func BestDungeon(recognized string, candidates []catalog.Dungeon) (id int64, score float64, ok bool) {
	text := Normalize(recognized)
	if text == "" {
		return 0, 0, false
	}

	best := -1.0
	var bestID int64
	for _, d := range candidates {
		for _, name := range d.Names {
			s := smetrics.JaroWinkler(text, Normalize(name), 0.7, 4)
			if s > best {
				best = s
				bestID = d.ID
			}
		}
	}

	if best < SimilarityThreshold {
		return 0, best, false
	}
	return bestID, best, true
}
