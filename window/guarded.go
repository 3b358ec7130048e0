package window

import "sync"

// Guarded holds a callback of type F. Replacing the callback and invoking it are
// serialized, so a callback is never replaced while it is running.
//
// A callback must not call Set or Clear on the Guarded that is invoking it; doing so
// deadlocks.
type Guarded[F any] struct {
	mu  sync.Mutex
	fn  F
	set bool
}

// Set replaces the callback, waiting for any running invocation to finish.
func (g *Guarded[F]) Set(fn F) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fn = fn
	g.set = true
}

// Clear removes the callback, waiting for any running invocation to finish.
func (g *Guarded[F]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	var zero F
	g.fn = zero
	g.set = false
}

// IsSet reports whether a callback is registered.
func (g *Guarded[F]) IsSet() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.set
}

// Call passes the callback to invoke while holding the guard. It reports whether a
// callback was registered; if none was, invoke is not called.
func (g *Guarded[F]) Call(invoke func(fn F)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.set {
		return false
	}
	invoke(g.fn)
	return true
}
