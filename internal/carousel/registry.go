package carousel

import (
	"context"
	"sync"
	"time"
)

// Registry keeps one controller per visitor session. Mounting a session
// starts its auto-advance loop; unmounting cancels it.
type Registry[T any] struct {
	mu       sync.Mutex
	sessions map[string]*session[T]
	interval time.Duration
	opts     Options
	now      func() time.Time
	limit    int
	wg       sync.WaitGroup
}

type session[T any] struct {
	ctrl     *Controller[T]
	cancel   context.CancelFunc
	lastSeen time.Time
}

// NewRegistry creates an empty registry whose controllers auto-advance every
// interval.
func NewRegistry[T any](interval time.Duration, opts Options) *Registry[T] {
	opts = opts.withDefaults()
	return &Registry[T]{
		sessions: make(map[string]*session[T]),
		interval: interval,
		opts:     opts,
		now:      opts.Now,
	}
}

// SetLimit caps the number of mounted sessions. Mounting beyond the cap
// unmounts the least recently seen session. Zero means no cap.
func (r *Registry[T]) SetLimit(n int) {
	r.mu.Lock()
	r.limit = n
	r.mu.Unlock()
}

// Get returns the mounted controller for id and marks the session as seen.
func (r *Registry[T]) Get(id string) (*Controller[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = r.now()
	return s.ctrl, true
}

// Acquire returns the controller for id, mounting one over items() when the
// session is not mounted yet. Concurrent calls for the same id share one
// controller.
func (r *Registry[T]) Acquire(id string, items func() []T) *Controller[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.lastSeen = r.now()
		return s.ctrl
	}
	return r.mountLocked(id, items())
}

// Mount starts a fresh controller for id at index 0, replacing any previous
// one.
func (r *Registry[T]) Mount(id string, items []T) *Controller[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mountLocked(id, items)
}

func (r *Registry[T]) mountLocked(id string, items []T) *Controller[T] {
	if old, ok := r.sessions[id]; ok {
		old.cancel()
		delete(r.sessions, id)
	}
	if r.limit > 0 && len(r.sessions) >= r.limit {
		r.evictOldestLocked()
	}

	ctrl := New(items, r.opts)
	ctx, cancel := context.WithCancel(context.Background())
	r.sessions[id] = &session[T]{ctrl: ctrl, cancel: cancel, lastSeen: r.now()}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		_ = ctrl.Run(ctx, r.interval)
	}()
	return ctrl
}

func (r *Registry[T]) evictOldestLocked() {
	var (
		oldestID string
		oldest   *session[T]
	)
	for id, s := range r.sessions {
		if oldest == nil || s.lastSeen.Before(oldest.lastSeen) {
			oldestID, oldest = id, s
		}
	}
	if oldest != nil {
		oldest.cancel()
		delete(r.sessions, oldestID)
	}
}

// Unmount stops the session's auto-advance loop and forgets it.
func (r *Registry[T]) Unmount(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	s.cancel()
	delete(r.sessions, id)
	return true
}

// Prune unmounts every session not seen within idle and returns how many
// were removed.
func (r *Registry[T]) Prune(idle time.Duration) int {
	cutoff := r.now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			s.cancel()
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Janitor prunes idle sessions every period until ctx is done.
func (r *Registry[T]) Janitor(ctx context.Context, period, idle time.Duration, onPrune func(int)) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Prune(idle); n > 0 && onPrune != nil {
				onPrune(n)
			}
		}
	}
}

// Len returns the number of mounted sessions.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close unmounts every session and waits for their loops to exit.
func (r *Registry[T]) Close() {
	r.mu.Lock()
	for id, s := range r.sessions {
		s.cancel()
		delete(r.sessions, id)
	}
	r.mu.Unlock()
	r.wg.Wait()
}
