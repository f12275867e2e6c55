package visual

import (
	"context"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Steps flattens res into reveal order, skipping res.Start and res.End.
// A nil result yields no steps.
func Steps(res *search.Result) []Step {
	if res == nil {
		return nil
	}
	steps := make([]Step, 0, len(res.Visited)+len(res.Path))
	steps = appendPhase(steps, res, VisitedPhase, res.Visited)
	steps = appendPhase(steps, res, PathPhase, res.Path)

	return steps
}

func appendPhase(dst []Step, res *search.Result, p Phase, cells []gridgraph.Cell) []Step {
	for i, c := range cells {
		if c == res.Start || c == res.End {
			continue
		}
		dst = append(dst, Step{Phase: p, Cell: c, Index: i})
	}

	return dst
}

// At returns the offset from the start of the reveal at which s is shown.
// visitedLen is len(res.Visited).
func (t Timing) At(s Step, visitedLen int) time.Duration {
	if s.Phase == VisitedPhase {
		return time.Duration(s.Index) * t.VisitedDelay
	}
	base := 0
	if visitedLen > 0 {
		base = visitedLen - 1
	}

	return time.Duration(base)*t.VisitedDelay + time.Duration(s.Index)*t.PathDelay
}

// Total returns the duration of the whole reveal of res.
func (t Timing) Total(res *search.Result) time.Duration {
	if res == nil {
		return 0
	}
	n := len(res.Visited)
	if len(res.Path) == 0 {
		return time.Duration(n) * t.VisitedDelay
	}

	return t.At(Step{Phase: PathPhase, Index: len(res.Path) - 1}, n)
}

// Play reveals res into sink on the schedule given by t. It returns ctx.Err() if
// the context ends first and the sink's error if the sink fails; either way the
// remaining steps are dropped. The path phase is skipped when the path is empty.
func Play(ctx context.Context, res *search.Result, t Timing, sink Sink) error {
	began := time.Now()
	for _, s := range Steps(res) {
		if err := waitUntil(ctx, began.Add(t.At(s, len(res.Visited)))); err != nil {
			return err
		}
		if err := sink(s); err != nil {
			return err
		}
	}

	return nil
}

// waitUntil blocks until deadline or until ctx is done.
func waitUntil(ctx context.Context, deadline time.Time) error {
	d := time.Until(deadline)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
