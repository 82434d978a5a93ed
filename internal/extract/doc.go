// Package extract assembles provisional run records from leaderboard
// screenshots.
//
// One screenshot is processed in three phases: the page banners are read
// once (mode, week, dungeon), every table row band is read for player names
// and a value cell, and accepted rows become ContributionRun entries sharing
// the page metadata. Each phase degrades independently — an unreadable
// banner leaves a nil field, an unparseable row is dropped — so a valid
// image always yields a (possibly empty) run list rather than an error.
//
// The package performs no writes: runs are handed to a human reviewer, and
// unresolved dungeon or player references stay nil until that review.
package extract
