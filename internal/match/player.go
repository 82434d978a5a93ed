package match

import (
	"context"
	"regexp"
	"strings"

	"github.com/guildtools/runboard/internal/catalog"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeName collapses internal whitespace (including newlines) to single
// spaces and trims the result.
func NormalizeName(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// PlayerResolver maps recognized player names onto the canonical player
// directory. Unmatched names are returned with a nil id; deciding whether
// they warrant a new canonical record is downstream work.
type PlayerResolver struct {
	Directory catalog.PlayerDirectory
}

// Resolve normalizes a raw recognized name and looks it up case-insensitively.
// The returned name is the normalized form regardless of whether a canonical
// player matched.
func (r *PlayerResolver) Resolve(ctx context.Context, raw string) (name string, playerID *int64, err error) {
	name = NormalizeName(raw)
	if name == "" {
		return "", nil, nil
	}

	id, ok, err := r.Directory.FindPlayer(ctx, name)
	if err != nil {
		return name, nil, err
	}
	if !ok {
		return name, nil, nil
	}
	return name, &id, nil
}
