package visual

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Reveal intervals of the reference animation.
const (
	DefaultVisitedDelay = 10 * time.Millisecond
	DefaultPathDelay    = 50 * time.Millisecond
)

// Phase tells which sequence a Step belongs to.
type Phase uint8

const (
	// VisitedPhase reveals the visit order.
	VisitedPhase Phase = iota
	// PathPhase reveals the reconstructed path.
	PathPhase
)

// String returns "visited" or "path".
func (p Phase) String() string {
	switch p {
	case VisitedPhase:
		return "visited"
	case PathPhase:
		return "path"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Step is one reveal: Cell at position Index of its phase's sequence.
type Step struct {
	Phase Phase
	Cell  gridgraph.Cell
	Index int
}

// Timing holds the per-cell reveal interval of each phase.
type Timing struct {
	VisitedDelay time.Duration
	PathDelay    time.Duration
}

// DefaultTiming returns 10ms per visited cell and 50ms per path cell.
func DefaultTiming() Timing {
	return Timing{VisitedDelay: DefaultVisitedDelay, PathDelay: DefaultPathDelay}
}

// Sink receives each revealed step. A non-nil error stops the reveal.
type Sink func(Step) error
