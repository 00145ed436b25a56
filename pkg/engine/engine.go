// Package engine encapsulates game-playing logic on top of the rules
// engine and search agent.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/610th/rusty-duke/pkg/board"
	"github.com/610th/rusty-duke/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are default agent-creation options.
type Options struct {
	// Depth is the search depth limit. If zero, there is no limit, except
	// that New uses 4 when Duration is also zero.
	Depth int
	// Duration is the search wall-clock budget. If zero, there is no limit.
	Duration time.Duration
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, duration=%v}", o.Depth, o.Duration)
}

// Engine encapsulates game-playing logic, search and evaluation for a
// single in-progress game. It is synchronous: Analyze blocks for the
// duration of the search, matching spec §5's single-threaded,
// cooperative-null scheduling model (there is no iterative-deepening
// launcher to halt mid-search).
type Engine struct {
	name, author string

	seed int64
	opts Options

	s  *board.GameState
	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithSeed configures the engine to seed new games' bag draws with the
// given RNG seed instead of a time-derived default.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// New returns a new Engine at the bit-exact initial state.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
	}
	for _, fn := range opts {
		fn(e)
	}
	if e.opts.Depth == 0 && e.opts.Duration == 0 {
		e.opts.Depth = 4
	}

	e.Reset(ctx)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetDepth(depth int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
}

func (e *Engine) SetDuration(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Duration = d
}

// State returns the current game state. Callers must treat it as
// read-only; use Apply to mutate via the engine.
func (e *Engine) State() *board.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.s
}

// Reset starts a new game from the bit-exact initial state.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset, depth=%v, duration=%v", e.opts.Depth, e.opts.Duration)

	seed := e.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e.s = board.NewGameWithRNG(rand.New(rand.NewSource(seed)))

	logw.Infof(ctx, "New game: ply=%v", e.s.Ply)
}

// Apply applies action to the current state, usually an opponent or user
// action selected from GetActions.
func (e *Engine) Apply(ctx context.Context, action board.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	legal := false
	for _, a := range board.GetActions(e.s) {
		if a == action {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("illegal action: %v", action)
	}

	board.DoUnsafeAction(e.s, action)
	logw.Infof(ctx, "Applied %v: ply=%v", action, e.s.Ply)
	return nil
}

// Analyze runs the search agent for color from the current state and
// returns its chosen action, if any.
func (e *Engine) Analyze(ctx context.Context, color board.Color) (board.Action, bool, error) {
	e.mu.Lock()
	s := e.s
	opts := e.opts
	e.mu.Unlock()

	var depth lang.Optional[int]
	if opts.Depth > 0 {
		depth = lang.Some(opts.Depth)
	}
	var duration lang.Optional[time.Duration]
	if opts.Duration > 0 {
		duration = lang.Some(opts.Duration)
	}
	if _, ok := depth.V(); !ok {
		if _, ok := duration.V(); !ok {
			return board.Action{}, false, fmt.Errorf("depth and/or duration has to be set")
		}
	}

	logw.Infof(ctx, "Analyze ply=%v, opt=%v", s.Ply, opts)

	agent := search.NewAgent(color, depth, duration)
	action, ok := agent.GetAction(ctx, s)
	if ok {
		logw.Infof(ctx, "Analyze result: %v", action)
	}
	return action, ok, nil
}
