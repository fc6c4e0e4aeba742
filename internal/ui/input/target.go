package input

import "github.com/bnema/dumbdesk/internal/domain/entity"

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Region is the part of the desktop under the pointer.
type Region int

const (
	RegionDesktop Region = iota
	RegionTitleBar
	RegionContent
	RegionCloseButton
	RegionMinimizeButton
	RegionMaximizeButton
	RegionResizeHandle
	RegionTaskbar
	RegionTaskbarEntry
	RegionStartButton
	RegionOverlay
	RegionMenuItem
	RegionStartEntry
)

func (r Region) String() string {
	switch r {
	case RegionDesktop:
		return "desktop"
	case RegionTitleBar:
		return "title_bar"
	case RegionContent:
		return "content"
	case RegionCloseButton:
		return "close_button"
	case RegionMinimizeButton:
		return "minimize_button"
	case RegionMaximizeButton:
		return "maximize_button"
	case RegionResizeHandle:
		return "resize_handle"
	case RegionTaskbar:
		return "taskbar"
	case RegionTaskbarEntry:
		return "taskbar_entry"
	case RegionStartButton:
		return "start_button"
	case RegionOverlay:
		return "overlay"
	case RegionMenuItem:
		return "menu_item"
	case RegionStartEntry:
		return "start_entry"
	default:
		return "unknown"
	}
}

// IsWindowChrome reports whether r belongs to a window frame.
func (r Region) IsWindowChrome() bool {
	switch r {
	case RegionTitleBar, RegionContent, RegionCloseButton,
		RegionMinimizeButton, RegionMaximizeButton, RegionResizeHandle:
		return true
	}
	return false
}

// Target is the result of hit testing a pointer position.
type Target struct {
	Region   Region
	WindowID entity.WindowID // Window regions and taskbar entries
	AppID    entity.AppID    // Start panel entries
	Index    int             // Menu item index
	Local    entity.Point    // Position relative to the window's client area
}

// HitTester resolves a desktop position against what is drawn there.
type HitTester interface {
	HitTest(state entity.SessionState, p entity.Point) Target
}

// ContentClicker forwards clicks into hosted application content.
type ContentClicker interface {
	ClickContent(id entity.WindowID, p entity.Point)
}

// Viewport reports the layout policy of the screen the desktop is drawn on.
type Viewport interface {
	IsCompact() bool
}
