package screen

import (
	"context"
	"log/slog"
	"sync"

	"birchwood/internal/debuglog"
	"birchwood/internal/domain"
)

// Phase is the lifecycle position of a screen.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseRefreshing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseRefreshing:
		return "refreshing"
	default:
		return "unknown"
	}
}

// State is a snapshot of a screen. Data must be treated as read-only.
type State[T any] struct {
	Phase        Phase
	IsLoading    bool // true until the mount fetch settles
	IsRefreshing bool // true while any user refresh is in flight
	Data         T
	LastError    domain.ErrorKind
	FromFallback bool
	Generation   uint64 // number of settled fetches
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Controller owns the State of one screen.
type Controller[T any] struct {
	name   string
	source Source[T]
	log    *slog.Logger

	mu        sync.Mutex
	state     State[T]
	mounted   bool
	loading   int // mount fetches in flight
	refreshes int
	subs      []func(State[T])

	// Snapshots waiting for delivery, in the order they were produced.
	// Only the goroutine that set delivering drains the queue.
	pending    []State[T]
	delivering bool
}

// New returns an idle controller for the screen called name.
func New[T any](name string, src Source[T], opts ...Option) *Controller[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[T]{
		name:   name,
		source: src,
		log:    debuglog.Component(o.log, "screen").With("screen", name),
		state:  State[T]{Phase: PhaseIdle, IsLoading: true},
	}
}

// Name returns the screen name.
func (c *Controller[T]) Name() string { return c.name }

// State returns the current snapshot.
func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to receive every new snapshot. Snapshots are
// delivered one at a time in the order they were produced, with no lock
// held, so fn may call State. fn runs on whichever goroutine is draining the
// queue and should not block.
func (c *Controller[T]) Subscribe(fn func(State[T])) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

// Mount starts the initial load and blocks until it settles. Calling Mount
// again is a no-op that returns the current state.
func (c *Controller[T]) Mount(ctx context.Context) State[T] {
	c.mu.Lock()
	if c.mounted {
		defer c.mu.Unlock()
		return c.state
	}
	c.mounted = true
	c.loading++
	c.state.Phase = PhaseLoading
	c.state.IsLoading = true
	c.publishLocked()

	c.log.Debug("mount")
	return c.settle(c.source(ctx), false)
}

// Refresh re-fetches and blocks until this fetch settles. Overlapping calls
// each fetch; the last to settle wins. Refreshing an unmounted screen mounts it.
func (c *Controller[T]) Refresh(ctx context.Context) State[T] {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return c.Mount(ctx)
	}
	c.refreshes++
	inFlight := c.refreshes
	c.state.IsRefreshing = true
	if c.state.Phase == PhaseReady {
		c.state.Phase = PhaseRefreshing
	}
	c.publishLocked()

	c.log.Debug("refresh", "in_flight", inFlight)
	return c.settle(c.source(ctx), true)
}

func (c *Controller[T]) settle(out Outcome[T], refresh bool) State[T] {
	c.mu.Lock()
	if refresh {
		c.refreshes--
	} else {
		c.loading--
	}
	c.state.Generation++
	c.state.Data = out.Data
	c.state.LastError = out.Err
	c.state.FromFallback = out.Fallback
	c.state.IsLoading = c.loading > 0
	c.state.IsRefreshing = c.refreshes > 0
	switch {
	case c.loading > 0:
		c.state.Phase = PhaseLoading
	case c.refreshes > 0:
		c.state.Phase = PhaseRefreshing
	default:
		c.state.Phase = PhaseReady
	}
	snap := c.state
	c.publishLocked()

	c.log.Debug("settled", "generation", snap.Generation, "kind", snap.LastError, "fallback", snap.FromFallback)
	return snap
}

// publishLocked queues the current state and releases c.mu. If no other
// goroutine is delivering, this one drains the queue.
func (c *Controller[T]) publishLocked() {
	c.pending = append(c.pending, c.state)
	if c.delivering {
		c.mu.Unlock()
		return
	}
	c.delivering = true
	for len(c.pending) > 0 {
		batch, subs := c.pending, c.subs
		c.pending = nil
		c.mu.Unlock()
		for _, snap := range batch {
			for _, fn := range subs {
				fn(snap)
			}
		}
		c.mu.Lock()
	}
	c.delivering = false
	c.mu.Unlock()
}
