package extract

// Mode identifies which metric a leaderboard page declares for its rows.
type Mode int

const (
	// ModeUnknown means the mode banner was unreadable or ambiguous; the
	// metric is then inferred per row from the value cell.
	ModeUnknown Mode = iota

	// ModeScore marks pages whose value column lists point scores.
	ModeScore

	// ModeTime marks pages whose value column lists clear times.
	ModeTime
)

func (m Mode) String() string {
	switch m {
	case ModeScore:
		return "score"
	case ModeTime:
		return "time"
	default:
		return "unknown"
	}
}

// ContributionPlayer is one player slot of a provisional run. PlayerID is
// nil when the recognized name matched no canonical player.
type ContributionPlayer struct {
	Name     string `json:"name"`
	PlayerID *int64 `json:"playerId,omitempty"`
}

// ContributionRun is one provisional run record awaiting human review.
//
// Week and DungeonID are nil when the page metadata could not be determined;
// the reviewer fills them in downstream. Exactly one of Score and
// TimeSeconds is set, and Players is never empty.
type ContributionRun struct {
	Week        *int                 `json:"week,omitempty"`
	DungeonID   *int64               `json:"dungeonId,omitempty"`
	Score       *int64               `json:"score,omitempty"`
	TimeSeconds *int                 `json:"timeSeconds,omitempty"`
	Players     []ContributionPlayer `json:"players"`
}

// pageMetadata is what one screenshot declares about all of its rows.
type pageMetadata struct {
	mode      Mode
	week      *int
	dungeonID *int64
}

// rowExtraction is the raw text of one table row. It is only constructed
// for rows with at least one non-empty player-name line.
type rowExtraction struct {
	names     []string
	valueText string
}
