package window

import (
	"github.com/mattn/go-runewidth"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

const (
	startPanelMinWidth = 24
	notificationWidth  = 34
	notificationHeight = 6
)

// OverlayBounds returns where the active overlay is drawn.
// Overlays are shifted to stay on screen.
func (p *Presenter) OverlayBounds(state entity.SessionState) (entity.Rect, bool) {
	layout := p.Layout()
	desktop := layout.Desktop()
	overlay := state.ActiveOverlay

	var r entity.Rect
	switch overlay.Kind {
	case entity.OverlayContextMenu:
		width := 0
		for _, it := range overlay.Items {
			width = max(width, runewidth.StringWidth(it.Label))
		}
		r = entity.Rect{X: overlay.Position.X, Y: overlay.Position.Y, W: width + 4, H: len(overlay.Items) + 2}
	case entity.OverlayStartPanel:
		apps := p.apps.List()
		width := startPanelMinWidth
		for _, d := range apps {
			width = max(width, runewidth.StringWidth(d.Title)+6)
		}
		h := min(len(apps)+2, desktop.H)
		r = entity.Rect{X: 0, Y: desktop.H - h, W: width, H: h}
	case entity.OverlayNotificationPanel:
		r = entity.Rect{X: desktop.W - notificationWidth, Y: desktop.H - notificationHeight, W: notificationWidth, H: notificationHeight}
	default:
		return entity.Rect{}, false
	}

	return keepInside(r, desktop), true
}

func keepInside(r, area entity.Rect) entity.Rect {
	if r.X+r.W > area.X+area.W {
		r.X = area.X + area.W - r.W
	}
	if r.Y+r.H > area.Y+area.H {
		r.Y = area.Y + area.H - r.H
	}
	r.X = max(r.X, area.X)
	r.Y = max(r.Y, area.Y)
	return r
}

// startEntries returns the applications that fit in the start panel.
func (p *Presenter) startEntries(bounds entity.Rect) []entity.ApplicationDescriptor {
	apps := p.apps.List()
	if rows := max(bounds.H-2, 0); len(apps) > rows {
		apps = apps[:rows]
	}
	return apps
}
