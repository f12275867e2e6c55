package engine

import (
	"context"
	"sync"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/visual"
)

// Option configures a Session.
type Option func(*Session)

// WithFrontier selects the frontier used by Dijkstra and A*.
func WithFrontier(kind frontier.Kind) Option {
	return func(s *Session) { s.kind = kind }
}

// WithTiming sets the reveal schedule.
func WithTiming(t visual.Timing) Option {
	return func(s *Session) { s.timing = t }
}

// Session is one interactive board. All methods are safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	grid    *gridgraph.Grid
	marks   *visual.Marks
	kind    frontier.Kind
	timing  visual.Timing
	running bool
	last    *search.Result
}

// NewSession wraps g. The session takes ownership of g; callers must not mutate
// it afterwards.
func NewSession(g *gridgraph.Grid, opts ...Option) *Session {
	s := &Session{
		grid:   g,
		marks:  visual.MarksFor(g),
		kind:   frontier.Scan,
		timing: visual.DefaultTiming(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run is a completed search awaiting its reveal.
type Run struct {
	Result *search.Result
	Err    error

	session *Session
	timing  visual.Timing
	once    sync.Once
}

// Run computes alg on the current board. It returns (nil, false) if a run is
// already in flight. Otherwise it clears the overlay, searches to completion and
// returns the run with the flag still held. A dispatch failure is reported in
// Run.Err and releases the flag at once.
func (s *Session) Run(alg search.Algorithm) (*Run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil, false
	}
	s.marks.Clear()
	res, err := Search(s.grid, alg, s.kind)
	r := &Run{Result: res, Err: err, session: s, timing: s.timing}
	if err != nil {
		r.once.Do(func() {})
		return r, true
	}
	s.running = true
	s.last = res

	return r, true
}

// Reveal plays the run's feed into the session overlay and then into sink, which
// may be nil. The flag is released when Reveal returns, whatever the reason.
func (r *Run) Reveal(ctx context.Context, sink visual.Sink) error {
	if r.Err != nil {
		return r.Err
	}
	defer r.Release()

	return visual.Play(ctx, r.Result, r.timing, func(step visual.Step) error {
		r.session.mu.Lock()
		r.session.marks.Apply(step)
		r.session.mu.Unlock()
		if sink == nil {
			return nil
		}
		return sink(step)
	})
}

// Release clears the run-in-progress flag without revealing. Safe to call more
// than once.
func (r *Run) Release() {
	r.once.Do(func() {
		r.session.mu.Lock()
		r.session.running = false
		r.session.mu.Unlock()
	})
}

// Running reports whether a run is in flight.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Timing returns the session's reveal schedule.
func (s *Session) Timing() visual.Timing {
	return s.timing
}

// Last returns the most recent successful result, or nil.
func (s *Session) Last() *search.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Snapshot returns copies of the board and overlay.
func (s *Session) Snapshot() (*gridgraph.Grid, *visual.Marks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone(), s.marks.Clone()
}
