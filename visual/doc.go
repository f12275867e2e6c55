// Package visual turns a search.Result into the reveal feed a presentation layer
// animates: visited cells first, then path cells, one at a time.
//
// Start and End keep their own role marking, so they never appear in the feed.
// Their slots still count toward the timing: visited cell i is revealed at
// i×VisitedDelay, and path cell j at (len(Visited)-1)×VisitedDelay + j×PathDelay.
//
// Marks is the per-cell overlay a reveal paints (Unmarked, VisitedMark, PathMark).
// It is what a renderer draws on top of the board's terrain.
package visual
