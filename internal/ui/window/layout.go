// Package window presents session state as terminal frames. It only reads
// state: positions, focus and stacking all come from the reducer.
package window

import "github.com/bnema/dumbdesk/internal/domain/entity"

const (
	DefaultTaskbarHeight = 1
	DefaultCompactWidth  = 80

	startButtonLabel  = "[Start]"
	taskbarEntryStart = 8
	taskbarEntryWidth = 14
	taskbarEntryGap   = 1
	clockWidth        = 5

	// Title bars narrower than this have no buttons.
	minButtonsWidth = 10
)

// Layout describes the screen the desktop is drawn on.
type Layout struct {
	Screen        entity.Size
	TaskbarHeight int
	CompactWidth  int
}

// DefaultLayout returns a layout for the given screen size.
func DefaultLayout(screen entity.Size) Layout {
	return Layout{
		Screen:        screen,
		TaskbarHeight: DefaultTaskbarHeight,
		CompactWidth:  DefaultCompactWidth,
	}
}

// Desktop returns the area above the taskbar.
func (l Layout) Desktop() entity.Rect {
	return entity.Rect{W: l.Screen.Width, H: max(l.Screen.Height-l.TaskbarHeight, 0)}
}

// Taskbar returns the taskbar area.
func (l Layout) Taskbar() entity.Rect {
	d := l.Desktop()
	return entity.Rect{Y: d.H, W: l.Screen.Width, H: l.Screen.Height - d.H}
}

// IsCompact reports whether windows are shown full size.
// Compact layout is derived from the current screen on every call. A zero
// CompactWidth disables it.
func (l Layout) IsCompact() bool {
	return l.Screen.Width < l.CompactWidth
}

// Frame is a window as drawn: its stored geometry resolved against the
// current layout.
type Frame struct {
	ID        entity.WindowID
	AppID     entity.AppID
	Title     string
	Rect      entity.Rect
	Focused   bool
	Maximized bool
	Resizable bool
}

// Client returns the area inside the border.
func (f Frame) Client() entity.Rect {
	return entity.Rect{
		X: f.Rect.X + 1,
		Y: f.Rect.Y + 1,
		W: max(f.Rect.W-2, 0),
		H: max(f.Rect.H-2, 0),
	}
}

func (f Frame) hasButtons() bool {
	return f.Rect.W >= minButtonsWidth
}

// CloseButton returns the close button cell.
func (f Frame) CloseButton() entity.Point {
	return entity.Point{X: f.Rect.X + f.Rect.W - 3, Y: f.Rect.Y}
}

// MaximizeButton returns the maximize button cell.
func (f Frame) MaximizeButton() entity.Point {
	return entity.Point{X: f.Rect.X + f.Rect.W - 5, Y: f.Rect.Y}
}

// MinimizeButton returns the minimize button cell.
func (f Frame) MinimizeButton() entity.Point {
	return entity.Point{X: f.Rect.X + f.Rect.W - 7, Y: f.Rect.Y}
}

// ResizeHandle returns the bottom-right corner cell.
func (f Frame) ResizeHandle() entity.Point {
	return entity.Point{X: f.Rect.X + f.Rect.W - 1, Y: f.Rect.Y + f.Rect.H - 1}
}

// CanResize reports whether the frame shows a resize handle.
func (f Frame) CanResize() bool {
	return f.Resizable && !f.Maximized
}

// resolveRect maps a window's stored geometry to screen space. Maximized
// windows and every window in a compact layout fill the desktop; stored
// position and size are left untouched for later restore.
func (l Layout) resolveRect(w entity.Window) entity.Rect {
	if w.Maximized || l.IsCompact() {
		return l.Desktop()
	}
	return w.Bounds()
}

func taskbarSlot(i int) entity.Rect {
	return entity.Rect{
		X: taskbarEntryStart + i*(taskbarEntryWidth+taskbarEntryGap),
		W: taskbarEntryWidth,
		H: 1,
	}
}
