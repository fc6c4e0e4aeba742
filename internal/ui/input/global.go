package input

import (
	"context"
	"sync"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// KeyEscape is the key name delivered for the Escape key.
const KeyEscape = "esc"

// GlobalListener sees every pointer press and key press before any
// window or component does.
type GlobalListener interface {
	OnPointerDown(ctx context.Context, p entity.Point)
	// OnKey returns true when the key was consumed.
	OnKey(ctx context.Context, key string) bool
}

// GlobalListeners is the registry of desktop-wide listeners.
type GlobalListeners struct {
	mu        sync.Mutex
	nextID    uint64
	order     []uint64
	listeners map[uint64]GlobalListener
}

// NewGlobalListeners creates an empty registry.
func NewGlobalListeners() *GlobalListeners {
	return &GlobalListeners{
		listeners: make(map[uint64]GlobalListener),
	}
}

// Attach registers l and returns a function that removes it.
// Calling the returned function more than once is safe.
func (g *GlobalListeners) Attach(l GlobalListener) (detach func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextID
	g.nextID++
	g.listeners[id] = l
	g.order = append(g.order, id)

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if _, ok := g.listeners[id]; !ok {
			return
		}
		delete(g.listeners, id)
		for i, v := range g.order {
			if v == id {
				g.order = append(g.order[:i], g.order[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of attached listeners.
func (g *GlobalListeners) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.listeners)
}

func (g *GlobalListeners) snapshot() []GlobalListener {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]GlobalListener, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.listeners[id])
	}
	return out
}

// PointerDown notifies every listener in attach order.
func (g *GlobalListeners) PointerDown(ctx context.Context, p entity.Point) {
	for _, l := range g.snapshot() {
		l.OnPointerDown(ctx, p)
	}
}

// Key offers key to listeners in attach order until one consumes it.
func (g *GlobalListeners) Key(ctx context.Context, key string) bool {
	for _, l := range g.snapshot() {
		if l.OnKey(ctx, key) {
			return true
		}
	}
	return false
}
