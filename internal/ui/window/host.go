package window

import (
	"context"
	"sync"

	"github.com/bnema/dumbdesk/internal/application/port"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/logging"
)

// ContentHost keeps one mounted content unit per visible window.
//
// A unit is mounted when its window first becomes visible and stays mounted
// through focus, move, resize and maximize. Minimizing or closing the window
// unmounts it.
type ContentHost struct {
	resolver port.ContentResolver

	mu     sync.Mutex
	units  map[entity.WindowID]port.ContentUnit
	failed map[entity.WindowID]error
	mounts map[entity.WindowID]int
}

// NewContentHost creates an empty host.
func NewContentHost(resolver port.ContentResolver) *ContentHost {
	return &ContentHost{
		resolver: resolver,
		units:    make(map[entity.WindowID]port.ContentUnit),
		failed:   make(map[entity.WindowID]error),
		mounts:   make(map[entity.WindowID]int),
	}
}

// Sync reconciles mounted units with state.
func (h *ContentHost) Sync(ctx context.Context, state entity.SessionState) {
	log := logging.FromContext(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	visible := make(map[entity.WindowID]entity.Window, len(state.Windows))
	for _, w := range state.Windows {
		if w.IsVisible() {
			visible[w.ID] = w
		}
	}

	for id, unit := range h.units {
		if _, ok := visible[id]; ok {
			continue
		}
		unit.Unmount()
		delete(h.units, id)
		log.Debug().Str("window_id", string(id)).Msg("content unmounted")
	}
	for id := range h.failed {
		if _, ok := visible[id]; !ok {
			delete(h.failed, id)
		}
	}

	for _, w := range state.Windows {
		if !w.IsVisible() {
			continue
		}
		if _, ok := h.units[w.ID]; ok {
			continue
		}
		if _, ok := h.failed[w.ID]; ok {
			continue
		}
		h.mount(ctx, w)
	}
}

func (h *ContentHost) mount(ctx context.Context, w entity.Window) {
	log := logging.FromContext(ctx)

	factory, err := h.resolver.Resolve(w.AppID)
	if err != nil {
		h.failed[w.ID] = err
		log.Warn().Err(err).Str("app_id", string(w.AppID)).Msg("no content for application")
		return
	}

	unit := factory()
	if err := unit.Mount(ctx, w.Seed); err != nil {
		h.failed[w.ID] = err
		log.Error().Err(err).Str("window_id", string(w.ID)).Msg("content mount failed")
		return
	}

	h.units[w.ID] = unit
	h.mounts[w.ID]++
	log.Debug().Str("window_id", string(w.ID)).Int("mounts", h.mounts[w.ID]).Msg("content mounted")
}

// Render draws the unit for id. The second result is false when nothing is mounted.
func (h *ContentHost) Render(id entity.WindowID, size entity.Size) (string, bool) {
	h.mu.Lock()
	unit, ok := h.units[id]
	failure := h.failed[id]
	h.mu.Unlock()

	if !ok {
		if failure != nil {
			return "error: " + failure.Error(), false
		}
		return "", false
	}
	return unit.Render(size), true
}

// ClickContent forwards a click to the unit for id, if mounted.
func (h *ContentHost) ClickContent(id entity.WindowID, p entity.Point) {
	h.mu.Lock()
	unit, ok := h.units[id]
	h.mu.Unlock()
	if ok {
		unit.Click(p)
	}
}

// Mounted reports whether id has a mounted unit.
func (h *ContentHost) Mounted(id entity.WindowID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.units[id]
	return ok
}

// MountCount returns how many times content was mounted for id.
func (h *ContentHost) MountCount(id entity.WindowID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mounts[id]
}

// Close unmounts everything.
func (h *ContentHost) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, unit := range h.units {
		unit.Unmount()
		delete(h.units, id)
	}
}
