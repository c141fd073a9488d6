// Package carousel implements the rotating single-item viewer behind the
// gallery: an index over a fixed item sequence that advances on a timer, on
// explicit commands and on rate-limited wheel gestures, always wrapping
// modulo the item count.
package carousel

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultInterval           = 5 * time.Second
	DefaultWheelInterval      = 600 * time.Millisecond
	DefaultScrollFlagDuration = 400 * time.Millisecond
)

// Direction of a navigation step.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// DirectionFromDelta maps a wheel deltaY to a direction: scrolling down
// moves forward, anything else moves back.
func DirectionFromDelta(deltaY float64) Direction {
	if deltaY > 0 {
		return Forward
	}
	return Backward
}

// Options tune the wheel rate limiter. Zero values fall back to the defaults
// and to the real clock.
type Options struct {
	WheelInterval      time.Duration
	ScrollFlagDuration time.Duration
	Now                func() time.Time
	AfterFunc          func(d time.Duration, f func())
}

func (o Options) withDefaults() Options {
	if o.WheelInterval <= 0 {
		o.WheelInterval = DefaultWheelInterval
	}
	if o.ScrollFlagDuration <= 0 {
		o.ScrollFlagDuration = DefaultScrollFlagDuration
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.AfterFunc == nil {
		o.AfterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return o
}

// Controller holds the current index over a fixed sequence of items. With no
// items every transition is a no-op.
type Controller[T any] struct {
	mu        sync.Mutex
	items     []T
	index     int
	opts      Options
	lastWheel time.Time
	wheeled   bool
	scrolling bool
	// scrollGen identifies the gesture whose timer may clear scrolling.
	scrollGen uint64
}

// New starts a controller at index 0.
func New[T any](items []T, opts Options) *Controller[T] {
	return &Controller[T]{
		items: items,
		opts:  opts.withDefaults(),
	}
}

// State is a consistent snapshot for rendering one frame.
type State[T any] struct {
	Index     int
	Len       int
	Current   T
	Previous  T
	Next      T
	Scrolling bool
}

// Len returns the number of items.
func (c *Controller[T]) Len() int { return len(c.items) }

// Items returns the item sequence. Callers must not modify it.
func (c *Controller[T]) Items() []T { return c.items }

// Index returns the current index; ok is false when there are no items.
func (c *Controller[T]) Index() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return 0, false
	}
	return c.index, true
}

// Current returns the item at the current index.
func (c *Controller[T]) Current() (T, bool) {
	return c.Peek(0)
}

// Peek returns the item offset positions away from the current one.
func (c *Controller[T]) Peek(offset int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	n := len(c.items)
	if n == 0 {
		return zero, false
	}
	return c.items[wrap(c.index+offset, n)], true
}

// Snapshot captures the current frame; ok is false when there are no items.
func (c *Controller[T]) Snapshot() (State[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	if n == 0 {
		return State[T]{}, false
	}
	return State[T]{
		Index:     c.index,
		Len:       n,
		Current:   c.items[c.index],
		Previous:  c.items[wrap(c.index-1, n)],
		Next:      c.items[wrap(c.index+1, n)],
		Scrolling: c.scrolling,
	}, true
}

// Scrolling reports whether a wheel gesture was accepted recently.
func (c *Controller[T]) Scrolling() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scrolling
}

// Tick advances one position; it is what the auto-advance timer fires.
func (c *Controller[T]) Tick() { c.step(Forward) }

// Next advances one position.
func (c *Controller[T]) Next() { c.step(Forward) }

// Previous moves back one position.
func (c *Controller[T]) Previous() { c.step(Backward) }

// Select jumps to index j. Out-of-range indices are ignored.
func (c *Controller[T]) Select(j int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if j < 0 || j >= len(c.items) {
		return false
	}
	c.index = j
	return true
}

// Wheel applies a wheel gesture unless it arrives within WheelInterval of the
// last accepted one. It reports whether the gesture was applied.
func (c *Controller[T]) Wheel(dir Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	if n == 0 {
		return false
	}
	now := c.opts.Now()
	if c.wheeled && now.Sub(c.lastWheel) < c.opts.WheelInterval {
		return false
	}
	c.lastWheel = now
	c.wheeled = true
	c.scrolling = true
	c.scrollGen++
	gen := c.scrollGen
	c.opts.AfterFunc(c.opts.ScrollFlagDuration, func() { c.clearScrolling(gen) })
	c.index = wrap(c.index+int(dir), n)
	return true
}

// Run fires Tick every interval until ctx is done. It returns at once when
// there is nothing to rotate.
func (c *Controller[T]) Run(ctx context.Context, interval time.Duration) error {
	if len(c.items) == 0 {
		return nil
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Tick()
		}
	}
}

func (c *Controller[T]) step(dir Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(c.items); n > 0 {
		c.index = wrap(c.index+int(dir), n)
	}
}

// clearScrolling drops the flag unless a later gesture has set it again.
func (c *Controller[T]) clearScrolling(gen uint64) {
	c.mu.Lock()
	if gen == c.scrollGen {
		c.scrolling = false
	}
	c.mu.Unlock()
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
