package input

import (
	"context"
	"sync"

	"github.com/bnema/dumbdesk/internal/application/port"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/logging"
)

// OverlayDismisser closes the active overlay on an outside press or Escape.
// Its global listener is attached only while an overlay is open.
type OverlayDismisser struct {
	store    port.SessionStore
	geometry port.OverlayGeometry
	hub      *GlobalListeners

	mu          sync.Mutex
	ctx         context.Context
	detach      func()
	unsubscribe func()
}

// NewOverlayDismisser wires a dismisser to the session and listener hub.
func NewOverlayDismisser(store port.SessionStore, geometry port.OverlayGeometry, hub *GlobalListeners) *OverlayDismisser {
	return &OverlayDismisser{
		store:    store,
		geometry: geometry,
		hub:      hub,
	}
}

// Start begins tracking the active overlay.
func (d *OverlayDismisser) Start(ctx context.Context) {
	d.mu.Lock()
	if d.unsubscribe != nil {
		d.mu.Unlock()
		return
	}
	d.ctx = logging.WithComponent(ctx, "overlay-dismisser")
	d.mu.Unlock()

	unsubscribe := d.store.Subscribe(d.sync)

	d.mu.Lock()
	d.unsubscribe = unsubscribe
	d.mu.Unlock()

	d.sync(d.store.State())
}

// Stop unsubscribes and detaches any listener.
func (d *OverlayDismisser) Stop() {
	d.mu.Lock()
	unsubscribe, detach := d.unsubscribe, d.detach
	d.unsubscribe, d.detach = nil, nil
	d.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if detach != nil {
		detach()
	}
}

// Attached reports whether the global listener is currently attached.
func (d *OverlayDismisser) Attached() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detach != nil
}

func (d *OverlayDismisser) sync(state entity.SessionState) {
	d.mu.Lock()
	defer d.mu.Unlock()

	open := state.ActiveOverlay.IsOpen()
	switch {
	case open && d.detach == nil:
		d.detach = d.hub.Attach(dismissListener{d: d})
		logging.FromContext(d.ctx).Trace().
			Str("overlay", state.ActiveOverlay.Kind.String()).
			Msg("dismiss listener attached")
	case !open && d.detach != nil:
		d.detach()
		d.detach = nil
		logging.FromContext(d.ctx).Trace().Msg("dismiss listener detached")
	}
}

type dismissListener struct {
	d *OverlayDismisser
}

func (l dismissListener) OnPointerDown(ctx context.Context, p entity.Point) {
	state := l.d.store.State()
	if !state.ActiveOverlay.IsOpen() {
		return
	}
	if bounds, ok := l.d.geometry.OverlayBounds(state); ok && bounds.Contains(p) {
		return
	}
	l.d.store.Dispatch(ctx, entity.CloseOverlay{})
}

func (l dismissListener) OnKey(ctx context.Context, key string) bool {
	if key != KeyEscape {
		return false
	}
	if !l.d.store.State().ActiveOverlay.IsOpen() {
		return false
	}
	l.d.store.Dispatch(ctx, entity.CloseOverlay{})
	return true
}
