// Package engine is the controller between a board and whoever drives it.
//
// A Session owns one gridgraph.Grid, the reveal overlay and a single
// run-in-progress flag. Run computes a search to completion synchronously and
// hands back a *Run; the flag stays set until that run's reveal finishes or the
// caller releases it. While the flag is set, further runs and every board edit
// are ignored: they report false and change nothing.
//
// Sessions share nothing. A server keeps one per connection; the CLI keeps one
// per invocation.
package engine
