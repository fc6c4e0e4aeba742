package entity

import "sort"

// Theme is the desktop color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid reports whether t is a known theme.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// SessionState is the single source of truth for the desktop.
//
// Windows are kept in insertion order; paint order is ZOrder.
// ZCounter only grows and is never reclaimed after a close.
type SessionState struct {
	Windows       []Window `json:"windows"`
	FocusedID     WindowID `json:"focused_id,omitempty"` // Empty when nothing is focused
	ActiveOverlay Overlay  `json:"active_overlay"`
	Theme         Theme    `json:"theme"`
	Wallpaper     string   `json:"wallpaper"`
	ZCounter      int      `json:"z_counter"`
}

// NewSessionState creates an empty session.
func NewSessionState(theme Theme, wallpaper string) SessionState {
	if !theme.IsValid() {
		theme = ThemeDark
	}
	return SessionState{
		Windows:       make([]Window, 0),
		ActiveOverlay: NoOverlay,
		Theme:         theme,
		Wallpaper:     wallpaper,
	}
}

// Clone returns a deep copy so reductions never share backing arrays.
func (s SessionState) Clone() SessionState {
	out := s
	out.Windows = append(make([]Window, 0, len(s.Windows)), s.Windows...)
	out.ActiveOverlay = s.ActiveOverlay.clone()
	return out
}

// Index returns the position of the window in insertion order, or -1.
func (s SessionState) Index(id WindowID) int {
	for i := range s.Windows {
		if s.Windows[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the window with the given ID.
func (s SessionState) Find(id WindowID) (Window, bool) {
	if i := s.Index(id); i >= 0 {
		return s.Windows[i], true
	}
	return Window{}, false
}

// Has reports whether a window with the given ID is open.
func (s SessionState) Has(id WindowID) bool {
	return s.Index(id) >= 0
}

// IsFocused reports whether id is the focused window.
func (s SessionState) IsFocused(id WindowID) bool {
	return id != "" && s.FocusedID == id
}

// Focused returns the focused window, if any.
func (s SessionState) Focused() (Window, bool) {
	if s.FocusedID == "" {
		return Window{}, false
	}
	return s.Find(s.FocusedID)
}

// MaxZOrder returns the highest ZOrder among open windows (0 when empty).
func (s SessionState) MaxZOrder() int {
	top := 0
	for _, w := range s.Windows {
		top = max(top, w.ZOrder)
	}
	return top
}

// TopVisible returns the visible window with the highest ZOrder,
// skipping the given ID.
func (s SessionState) TopVisible(except WindowID) (Window, bool) {
	var (
		best  Window
		found bool
	)
	for _, w := range s.Windows {
		if w.ID == except || w.Minimized {
			continue
		}
		if !found || w.ZOrder > best.ZOrder {
			best = w
			found = true
		}
	}
	return best, found
}

// PaintOrder returns the windows sorted bottom-to-top by ZOrder.
// Ties fall back to insertion order.
func (s SessionState) PaintOrder() []Window {
	out := append([]Window(nil), s.Windows...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZOrder < out[j].ZOrder
	})
	return out
}
