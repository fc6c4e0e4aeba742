package usecase

import (
	"fmt"

	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/domain/repository"
)

// IgnoreReason explains why an intent left the state unchanged.
type IgnoreReason string

const (
	ReasonNone               IgnoreReason = ""
	ReasonUnknownApplication IgnoreReason = "unknown_application"
	ReasonStaleTarget        IgnoreReason = "stale_target"
	ReasonNoOp               IgnoreReason = "no_op"
	ReasonRejected           IgnoreReason = "rejected"
)

// Outcome describes what a reduction did.
type Outcome struct {
	Intent  entity.IntentKind
	Applied bool
	Reason  IgnoreReason
	Err     error // Set for unknown applications and stale targets
}

func applied(kind entity.IntentKind) Outcome {
	return Outcome{Intent: kind, Applied: true}
}

func ignored(kind entity.IntentKind, reason IgnoreReason, err error) Outcome {
	return Outcome{Intent: kind, Reason: reason, Err: err}
}

// SessionReducer is the deterministic session state machine.
// Reduce does no I/O and never mutates its input state.
type SessionReducer struct {
	apps    repository.ApplicationRepository
	cascade CascadePolicy
}

// NewSessionReducer creates a reducer backed by the given application catalog.
func NewSessionReducer(apps repository.ApplicationRepository, cascade CascadePolicy) *SessionReducer {
	return &SessionReducer{
		apps:    apps,
		cascade: cascade,
	}
}

// Reduce applies intent to state and returns the next state.
// Invalid intents are absorbed: the input state is returned unchanged and
// the outcome says why.
func (r *SessionReducer) Reduce(state entity.SessionState, intent entity.Intent) (entity.SessionState, Outcome) {
	switch in := intent.(type) {
	case entity.Open:
		return r.open(state, in)
	case entity.Close:
		return r.close(state, in)
	case entity.Focus:
		return r.focus(state, in.WindowID, entity.IntentFocus)
	case entity.Minimize:
		return r.minimize(state, in)
	case entity.Maximize:
		return r.maximize(state, in)
	case entity.Reposition:
		return r.reposition(state, in)
	case entity.Resize:
		return r.resize(state, in)
	case entity.OpenOverlay:
		return r.openOverlay(state, in)
	case entity.CloseOverlay:
		return r.closeOverlay(state)
	case entity.SetTheme:
		return r.setTheme(state, in)
	case entity.SetWallpaper:
		return r.setWallpaper(state, in)
	case nil:
		return state, ignored("", ReasonRejected, fmt.Errorf("nil intent"))
	default:
		return state, ignored(intent.Kind(), ReasonRejected, fmt.Errorf("unsupported intent %T", intent))
	}
}

// ReduceAll folds a sequence of intents over state.
func (r *SessionReducer) ReduceAll(state entity.SessionState, intents ...entity.Intent) entity.SessionState {
	for _, in := range intents {
		state, _ = r.Reduce(state, in)
	}
	return state
}

func stale(kind entity.IntentKind, id entity.WindowID) Outcome {
	return ignored(kind, ReasonStaleTarget, fmt.Errorf("%w: %s", entity.ErrStaleTarget, id))
}

func (r *SessionReducer) open(state entity.SessionState, in entity.Open) (entity.SessionState, Outcome) {
	id := entity.WindowIDFor(in.AppID)
	if state.Has(id) {
		// Re-opening brings the existing window forward instead of duplicating it.
		return r.focus(state, id, entity.IntentOpen)
	}

	desc, err := r.apps.Lookup(in.AppID)
	if err != nil {
		return state, ignored(entity.IntentOpen, ReasonUnknownApplication, err)
	}

	next := state.Clone()
	next.ZCounter++
	next.Windows = append(next.Windows, entity.Window{
		ID:       id,
		AppID:    desc.ID,
		Title:    desc.Title,
		Seed:     in.Seed,
		Position: r.cascade.Next(state, desc.DefaultSize),
		Size:     desc.DefaultSize,
		ZOrder:   next.ZCounter,
	})
	next.FocusedID = id

	return next, applied(entity.IntentOpen)
}

func (r *SessionReducer) close(state entity.SessionState, in entity.Close) (entity.SessionState, Outcome) {
	idx := state.Index(in.WindowID)
	if idx < 0 {
		return state, stale(entity.IntentClose, in.WindowID)
	}

	next := state.Clone()
	next.Windows = append(next.Windows[:idx], next.Windows[idx+1:]...)
	if next.FocusedID == in.WindowID {
		next.FocusedID = nextFocus(next, in.WindowID)
	}
	// ZCounter is never reclaimed.

	return next, applied(entity.IntentClose)
}

// focus implements Focus and the re-open path of Open.
func (r *SessionReducer) focus(state entity.SessionState, id entity.WindowID, kind entity.IntentKind) (entity.SessionState, Outcome) {
	idx := state.Index(id)
	if idx < 0 {
		return state, stale(kind, id)
	}
	if state.FocusedID == id && !state.Windows[idx].Minimized {
		return state, ignored(kind, ReasonNoOp, nil)
	}

	next := state.Clone()
	next.ZCounter++
	w := &next.Windows[idx]
	w.Minimized = false
	w.ZOrder = next.ZCounter
	next.FocusedID = id

	return next, applied(kind)
}

func (r *SessionReducer) minimize(state entity.SessionState, in entity.Minimize) (entity.SessionState, Outcome) {
	idx := state.Index(in.WindowID)
	if idx < 0 {
		return state, stale(entity.IntentMinimize, in.WindowID)
	}
	if state.Windows[idx].Minimized {
		// Restoring a minimized window brings it to the front with focus.
		return r.focus(state, in.WindowID, entity.IntentMinimize)
	}

	next := state.Clone()
	next.Windows[idx].Minimized = true
	if next.FocusedID == in.WindowID {
		next.FocusedID = nextFocus(next, in.WindowID)
	}

	return next, applied(entity.IntentMinimize)
}

func (r *SessionReducer) maximize(state entity.SessionState, in entity.Maximize) (entity.SessionState, Outcome) {
	idx := state.Index(in.WindowID)
	if idx < 0 {
		return state, stale(entity.IntentMaximize, in.WindowID)
	}

	// Position and size are kept so un-maximizing restores the old geometry.
	next := state.Clone()
	next.Windows[idx].Maximized = !next.Windows[idx].Maximized

	return next, applied(entity.IntentMaximize)
}

func (r *SessionReducer) reposition(state entity.SessionState, in entity.Reposition) (entity.SessionState, Outcome) {
	idx := state.Index(in.WindowID)
	if idx < 0 {
		return state, stale(entity.IntentReposition, in.WindowID)
	}

	w := state.Windows[idx]
	if w.Maximized {
		return state, ignored(entity.IntentReposition, ReasonRejected, nil)
	}
	if w.Position == in.Position {
		return state, ignored(entity.IntentReposition, ReasonNoOp, nil)
	}

	next := state.Clone()
	next.Windows[idx].Position = in.Position

	return next, applied(entity.IntentReposition)
}

func (r *SessionReducer) resize(state entity.SessionState, in entity.Resize) (entity.SessionState, Outcome) {
	idx := state.Index(in.WindowID)
	if idx < 0 {
		return state, stale(entity.IntentResize, in.WindowID)
	}

	w := state.Windows[idx]
	desc, err := r.apps.Lookup(w.AppID)
	if err != nil {
		// The catalog changed under an open window; keep its geometry.
		return state, ignored(entity.IntentResize, ReasonRejected, err)
	}
	if !desc.Resizable {
		return state, ignored(entity.IntentResize, ReasonRejected, nil)
	}

	size := desc.ClampSize(in.Size)
	if size == w.Size {
		return state, ignored(entity.IntentResize, ReasonNoOp, nil)
	}

	next := state.Clone()
	next.Windows[idx].Size = size

	return next, applied(entity.IntentResize)
}

func (r *SessionReducer) openOverlay(state entity.SessionState, in entity.OpenOverlay) (entity.SessionState, Outcome) {
	if !in.Overlay.IsOpen() {
		return r.closeOverlay(state)
	}

	next := state.Clone()
	// A single overlay field: opening one replaces whatever was open.
	next.ActiveOverlay = entity.Overlay{Kind: in.Overlay.Kind}
	if in.Overlay.Kind == entity.OverlayContextMenu {
		next.ActiveOverlay.Position = in.Overlay.Position
		next.ActiveOverlay.Items = append([]entity.MenuItem(nil), in.Overlay.Items...)
	}

	return next, applied(entity.IntentOpenOverlay)
}

func (r *SessionReducer) closeOverlay(state entity.SessionState) (entity.SessionState, Outcome) {
	if !state.ActiveOverlay.IsOpen() {
		return state, ignored(entity.IntentCloseOverlay, ReasonNoOp, nil)
	}

	next := state.Clone()
	next.ActiveOverlay = entity.NoOverlay

	return next, applied(entity.IntentCloseOverlay)
}

func (r *SessionReducer) setTheme(state entity.SessionState, in entity.SetTheme) (entity.SessionState, Outcome) {
	if !in.Theme.IsValid() {
		return state, ignored(entity.IntentSetTheme, ReasonRejected, fmt.Errorf("invalid theme %q", in.Theme))
	}
	if state.Theme == in.Theme {
		return state, ignored(entity.IntentSetTheme, ReasonNoOp, nil)
	}

	next := state.Clone()
	next.Theme = in.Theme

	return next, applied(entity.IntentSetTheme)
}

func (r *SessionReducer) setWallpaper(state entity.SessionState, in entity.SetWallpaper) (entity.SessionState, Outcome) {
	if state.Wallpaper == in.Ref {
		return state, ignored(entity.IntentSetWallpaper, ReasonNoOp, nil)
	}

	next := state.Clone()
	next.Wallpaper = in.Ref

	return next, applied(entity.IntentSetWallpaper)
}

// nextFocus picks the visible window with the highest z-order, excluding id.
// Focus moves without allocating a new z-order: that window is already on top.
func nextFocus(state entity.SessionState, id entity.WindowID) entity.WindowID {
	if w, ok := state.TopVisible(id); ok {
		return w.ID
	}
	return ""
}
