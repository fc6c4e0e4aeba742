// Package input turns raw pointer and key events into session intents.
package input

import (
	"context"
	"sync"

	"github.com/bnema/dumbdesk/internal/application/port"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/domain/repository"
	"github.com/bnema/dumbdesk/internal/logging"
)

// Options configures a Controller.
type Options struct {
	Wallpapers  []string          // Cycled by the next-wallpaper menu item
	DesktopMenu []entity.MenuItem // Items of the desktop context menu
}

// DefaultDesktopMenu returns the desktop right-click menu.
func DefaultDesktopMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{Label: "Toggle theme", Action: entity.MenuToggleTheme},
		{Label: "Next wallpaper", Action: entity.MenuNextWallpaper},
		{Label: "Notifications", Action: entity.MenuShowNotifications},
		{Label: "Start", Action: entity.MenuOpenStart},
	}
}

// Controller is the interaction controller. It owns drag and resize
// sessions and emits one intent sequence per logical gesture.
type Controller struct {
	store   port.SessionStore
	hits    HitTester
	content ContentClicker
	apps    repository.ApplicationRepository
	global  *GlobalListeners
	view    Viewport
	opts    Options

	mu          sync.Mutex
	drag        *DragSession
	resize      *ResizeSession
	unsubscribe func()
}

// NewController creates a controller.
func NewController(
	store port.SessionStore,
	hits HitTester,
	content ContentClicker,
	apps repository.ApplicationRepository,
	global *GlobalListeners,
	view Viewport,
	opts Options,
) *Controller {
	if opts.DesktopMenu == nil {
		opts.DesktopMenu = DefaultDesktopMenu()
	}
	return &Controller{
		store:   store,
		hits:    hits,
		content: content,
		apps:    apps,
		global:  global,
		view:    view,
		opts:    opts,
	}
}

// Start tracks session changes so that a drag or resize ends with the
// window it targets.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.unsubscribe != nil {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	unsubscribe := c.store.Subscribe(c.sync)

	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
}

// Stop stops tracking session changes.
func (c *Controller) Stop() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// sync drops gestures whose window was closed. A window reopened under the
// same id is a new window and never inherits the old gesture.
func (c *Controller) sync(state entity.SessionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drag != nil && !state.Has(c.drag.WindowID) {
		c.drag = nil
	}
	if c.resize != nil && !state.Has(c.resize.WindowID) {
		c.resize = nil
	}
}

// ViewportChanged re-evaluates the layout after the screen size changed.
// Entering the compact layout cancels any drag or resize in flight.
func (c *Controller) ViewportChanged() {
	if !c.IsCompact() {
		return
	}
	c.Cancel()
}

// IsCompact reports whether the live viewport uses the compact layout.
func (c *Controller) IsCompact() bool {
	return c.view != nil && c.view.IsCompact()
}

// Dragging returns the active drag session, if any.
func (c *Controller) Dragging() (DragSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drag == nil {
		return DragSession{}, false
	}
	return *c.drag, true
}

// Resizing returns the active resize session, if any.
func (c *Controller) Resizing() (ResizeSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.resize == nil {
		return ResizeSession{}, false
	}
	return *c.resize, true
}

// Cancel drops any drag or resize without emitting further intents.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drag = nil
	c.resize = nil
}

func (c *Controller) emit(ctx context.Context, intents ...entity.Intent) {
	for _, in := range intents {
		c.store.Dispatch(ctx, in)
	}
}

// PointerDown handles a button press at p.
func (c *Controller) PointerDown(ctx context.Context, p entity.Point, button Button) {
	// Snapshot before global listeners run: toggles read the pre-press overlay.
	state := c.store.State()
	target := c.hits.HitTest(state, p)

	c.global.PointerDown(ctx, p)

	if target.Region.IsWindowChrome() {
		ctx = logging.WithWindowID(ctx, string(target.WindowID))
		if !state.Has(target.WindowID) {
			return
		}
		c.windowPress(ctx, state, target, p, button)
		return
	}

	switch target.Region {
	case RegionDesktop:
		if button == ButtonSecondary {
			c.emit(ctx, entity.OpenOverlay{Overlay: entity.NewContextMenu(p, c.opts.DesktopMenu)})
		}
	case RegionTaskbarEntry:
		c.taskbarPress(ctx, state, target.WindowID)
	case RegionStartButton:
		if state.ActiveOverlay.Kind == entity.OverlayStartPanel {
			c.emit(ctx, entity.CloseOverlay{})
		} else {
			c.emit(ctx, entity.OpenOverlay{Overlay: entity.NewStartPanel()})
		}
	case RegionMenuItem:
		items := state.ActiveOverlay.Items
		if target.Index >= 0 && target.Index < len(items) {
			c.emit(ctx, c.menuIntents(state, items[target.Index].Action)...)
		}
	case RegionStartEntry:
		c.emit(ctx, entity.Open{AppID: target.AppID}, entity.CloseOverlay{})
	}
}

func (c *Controller) windowPress(ctx context.Context, state entity.SessionState, target Target, p entity.Point, button Button) {
	w, _ := state.Find(target.WindowID)
	focus := func() []entity.Intent {
		if state.IsFocused(w.ID) {
			return nil
		}
		return []entity.Intent{entity.Focus{WindowID: w.ID}}
	}

	if button != ButtonPrimary {
		c.emit(ctx, focus()...)
		return
	}

	switch target.Region {
	case RegionTitleBar:
		if c.beginDrag(w, p) {
			// Dragging a background window also raises it.
			c.emit(ctx, entity.Focus{WindowID: w.ID})
			return
		}
		c.emit(ctx, focus()...)
	case RegionResizeHandle:
		if c.beginResize(w, p) {
			c.emit(ctx, entity.Focus{WindowID: w.ID})
			return
		}
		c.emit(ctx, focus()...)
	case RegionContent:
		c.emit(ctx, focus()...)
		if c.content != nil {
			c.content.ClickContent(w.ID, target.Local)
		}
	case RegionCloseButton:
		c.emit(ctx, append(focus(), entity.Close{WindowID: w.ID})...)
	case RegionMinimizeButton:
		c.emit(ctx, append(focus(), entity.Minimize{WindowID: w.ID})...)
	case RegionMaximizeButton:
		c.emit(ctx, append(focus(), entity.Maximize{WindowID: w.ID})...)
	}
}

func (c *Controller) beginDrag(w entity.Window, p entity.Point) bool {
	if w.Maximized || c.IsCompact() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drag = newDragSession(w, p)
	c.resize = nil
	return true
}

func (c *Controller) beginResize(w entity.Window, p entity.Point) bool {
	if w.Maximized || c.IsCompact() {
		return false
	}
	desc, err := c.apps.Lookup(w.AppID)
	if err != nil || !desc.Resizable {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.resize = newResizeSession(w, p)
	c.drag = nil
	return true
}

func (c *Controller) taskbarPress(ctx context.Context, state entity.SessionState, id entity.WindowID) {
	w, ok := state.Find(id)
	if !ok {
		return
	}
	if state.IsFocused(id) && !w.Minimized {
		c.emit(ctx, entity.Minimize{WindowID: id})
		return
	}
	c.emit(ctx, entity.Focus{WindowID: id})
}

func (c *Controller) menuIntents(state entity.SessionState, action entity.MenuAction) []entity.Intent {
	switch action {
	case entity.MenuToggleTheme:
		return []entity.Intent{entity.SetTheme{Theme: state.Theme.Toggle()}, entity.CloseOverlay{}}
	case entity.MenuNextWallpaper:
		return []entity.Intent{entity.SetWallpaper{Ref: c.nextWallpaper(state.Wallpaper)}, entity.CloseOverlay{}}
	case entity.MenuShowNotifications:
		return []entity.Intent{entity.OpenOverlay{Overlay: entity.NewNotificationPanel()}}
	case entity.MenuOpenStart:
		return []entity.Intent{entity.OpenOverlay{Overlay: entity.NewStartPanel()}}
	default:
		return []entity.Intent{entity.CloseOverlay{}}
	}
}

func (c *Controller) nextWallpaper(current string) string {
	list := c.opts.Wallpapers
	if len(list) == 0 {
		return current
	}
	for i, ref := range list {
		if ref == current {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}

// PointerMove updates an active drag or resize.
func (c *Controller) PointerMove(ctx context.Context, p entity.Point) {
	if in := c.track(p); in != nil {
		c.emit(ctx, in)
	}
}

// PointerUp ends an active drag or resize, emitting the final geometry.
func (c *Controller) PointerUp(ctx context.Context, p entity.Point) {
	c.mu.Lock()
	var in entity.Intent
	switch {
	case c.drag != nil:
		in = entity.Reposition{WindowID: c.drag.WindowID, Position: c.drag.Candidate(p)}
	case c.resize != nil:
		in = entity.Resize{WindowID: c.resize.WindowID, Size: c.resize.Candidate(p)}
	}
	c.drag = nil
	c.resize = nil
	c.mu.Unlock()

	if in != nil {
		c.emit(ctx, in)
	}
}

func (c *Controller) track(p entity.Point) entity.Intent {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.drag != nil:
		pos := c.drag.Candidate(p)
		if pos == c.drag.last {
			return nil
		}
		c.drag.last = pos
		return entity.Reposition{WindowID: c.drag.WindowID, Position: pos}
	case c.resize != nil:
		size := c.resize.Candidate(p)
		if size == c.resize.last {
			return nil
		}
		c.resize.last = size
		return entity.Resize{WindowID: c.resize.WindowID, Size: size}
	}
	return nil
}

// KeyPress routes a key to global listeners first.
// Returns true when the key was consumed.
func (c *Controller) KeyPress(ctx context.Context, key string) bool {
	return c.global.Key(ctx, key)
}
