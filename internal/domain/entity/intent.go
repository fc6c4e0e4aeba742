package entity

// IntentKind names an intent for logging and scripting.
type IntentKind string

const (
	IntentOpen         IntentKind = "open"
	IntentClose        IntentKind = "close"
	IntentFocus        IntentKind = "focus"
	IntentMinimize     IntentKind = "minimize"
	IntentMaximize     IntentKind = "maximize"
	IntentReposition   IntentKind = "reposition"
	IntentResize       IntentKind = "resize"
	IntentOpenOverlay  IntentKind = "open_overlay"
	IntentCloseOverlay IntentKind = "close_overlay"
	IntentSetTheme     IntentKind = "set_theme"
	IntentSetWallpaper IntentKind = "set_wallpaper"
)

// Intent is a discrete request to change session state.
// The set of intents is closed: only types in this package implement it.
type Intent interface {
	Kind() IntentKind
	isIntent()
}

// WindowIntent is an intent that targets a single window.
type WindowIntent interface {
	Intent
	Target() WindowID
}

// Open opens an application, or focuses it when already open.
type Open struct {
	AppID AppID
	Seed  string // Optional, passed unchanged to the hosted content
}

// Close removes a window from the session.
type Close struct{ WindowID WindowID }

// Focus brings a window to the front and gives it focus.
type Focus struct{ WindowID WindowID }

// Minimize toggles a window's minimized flag.
type Minimize struct{ WindowID WindowID }

// Maximize toggles a window's maximized flag.
type Maximize struct{ WindowID WindowID }

// Reposition moves a window.
type Reposition struct {
	WindowID WindowID
	Position Point
}

// Resize changes a window's size.
type Resize struct {
	WindowID WindowID
	Size     Size
}

// OpenOverlay replaces the active overlay.
type OpenOverlay struct{ Overlay Overlay }

// CloseOverlay clears the active overlay.
type CloseOverlay struct{}

// SetTheme replaces the theme.
type SetTheme struct{ Theme Theme }

// SetWallpaper replaces the wallpaper reference.
type SetWallpaper struct{ Ref string }

func (Open) Kind() IntentKind         { return IntentOpen }
func (Close) Kind() IntentKind        { return IntentClose }
func (Focus) Kind() IntentKind        { return IntentFocus }
func (Minimize) Kind() IntentKind     { return IntentMinimize }
func (Maximize) Kind() IntentKind     { return IntentMaximize }
func (Reposition) Kind() IntentKind   { return IntentReposition }
func (Resize) Kind() IntentKind       { return IntentResize }
func (OpenOverlay) Kind() IntentKind  { return IntentOpenOverlay }
func (CloseOverlay) Kind() IntentKind { return IntentCloseOverlay }
func (SetTheme) Kind() IntentKind     { return IntentSetTheme }
func (SetWallpaper) Kind() IntentKind { return IntentSetWallpaper }

func (Open) isIntent()         {}
func (Close) isIntent()        {}
func (Focus) isIntent()        {}
func (Minimize) isIntent()     {}
func (Maximize) isIntent()     {}
func (Reposition) isIntent()   {}
func (Resize) isIntent()       {}
func (OpenOverlay) isIntent()  {}
func (CloseOverlay) isIntent() {}
func (SetTheme) isIntent()     {}
func (SetWallpaper) isIntent() {}

func (i Close) Target() WindowID      { return i.WindowID }
func (i Focus) Target() WindowID      { return i.WindowID }
func (i Minimize) Target() WindowID   { return i.WindowID }
func (i Maximize) Target() WindowID   { return i.WindowID }
func (i Reposition) Target() WindowID { return i.WindowID }
func (i Resize) Target() WindowID     { return i.WindowID }
