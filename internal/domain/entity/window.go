package entity

// WindowID identifies an open window. A window's ID equals the ID of the
// application it hosts: at most one window per application is open.
type WindowID string

// WindowIDFor returns the window ID used for an application.
func WindowIDFor(app AppID) WindowID {
	return WindowID(app)
}

// Window is one open application instance.
// Focus is not stored here: SessionState.FocusedID is the single owner.
// The window keeps only the app id; the hosted content is resolved from
// the application registry at render time.
type Window struct {
	ID        WindowID `json:"id"`
	AppID     AppID    `json:"app_id"`
	Title     string   `json:"title"`
	Seed      string   `json:"seed,omitempty"` // Opaque parameter passed to the content at mount
	Position  Point    `json:"position"`
	Size      Size     `json:"size"`
	ZOrder    int      `json:"z_order"`
	Minimized bool     `json:"minimized"`
	Maximized bool     `json:"maximized"`
}

// IsVisible reports whether the window is rendered (not minimized).
func (w Window) IsVisible() bool {
	return !w.Minimized
}

// Bounds returns the window's stored geometry.
func (w Window) Bounds() Rect {
	return RectAt(w.Position, w.Size)
}
