package entity

// OverlayKind identifies the transient overlay shown above the desktop.
type OverlayKind int

const (
	OverlayNone              OverlayKind = iota // No overlay open
	OverlayContextMenu                          // Pointer-anchored menu
	OverlayStartPanel                           // Application launcher panel
	OverlayNotificationPanel                    // Notification drawer
)

// String returns a human-readable overlay name.
func (k OverlayKind) String() string {
	switch k {
	case OverlayNone:
		return "none"
	case OverlayContextMenu:
		return "context_menu"
	case OverlayStartPanel:
		return "start_panel"
	case OverlayNotificationPanel:
		return "notification_panel"
	default:
		return "unknown"
	}
}

// MenuAction names what a context menu item does when selected.
type MenuAction string

const (
	MenuToggleTheme       MenuAction = "toggle_theme"
	MenuNextWallpaper     MenuAction = "next_wallpaper"
	MenuShowNotifications MenuAction = "show_notifications"
	MenuOpenStart         MenuAction = "open_start"
)

// MenuItem is a single context menu entry.
type MenuItem struct {
	Label  string     `json:"label"`
	Action MenuAction `json:"action"`
}

// Overlay describes the single active overlay. Session state holds exactly one
// Overlay value, so two overlays can never be open at once.
type Overlay struct {
	Kind     OverlayKind `json:"kind"`
	Position Point       `json:"position,omitempty"` // Context menu anchor
	Items    []MenuItem  `json:"items,omitempty"`    // Context menu entries
}

// NoOverlay is the empty overlay.
var NoOverlay = Overlay{Kind: OverlayNone}

// NewContextMenu creates a context menu overlay anchored at pos.
func NewContextMenu(pos Point, items []MenuItem) Overlay {
	return Overlay{Kind: OverlayContextMenu, Position: pos, Items: items}
}

// NewStartPanel creates the start panel overlay.
func NewStartPanel() Overlay {
	return Overlay{Kind: OverlayStartPanel}
}

// NewNotificationPanel creates the notification panel overlay.
func NewNotificationPanel() Overlay {
	return Overlay{Kind: OverlayNotificationPanel}
}

// IsOpen reports whether the overlay is something other than none.
func (o Overlay) IsOpen() bool {
	return o.Kind != OverlayNone
}

// IsPanel reports whether the overlay is a full panel (start or notifications).
func (o Overlay) IsPanel() bool {
	return o.Kind == OverlayStartPanel || o.Kind == OverlayNotificationPanel
}

// clone deep-copies the item slice.
func (o Overlay) clone() Overlay {
	if o.Items != nil {
		o.Items = append([]MenuItem(nil), o.Items...)
	}
	return o
}
