package window

import (
	"context"
	"sync"

	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/domain/repository"
	"github.com/bnema/dumbdesk/internal/ui/input"
)

// Presenter lays out, hit tests and draws session state.
type Presenter struct {
	apps repository.ApplicationRepository
	host *ContentHost

	mu     sync.RWMutex
	layout Layout
}

var (
	_ input.HitTester      = (*Presenter)(nil)
	_ input.ContentClicker = (*Presenter)(nil)
	_ input.Viewport       = (*Presenter)(nil)
)

// NewPresenter creates a presenter.
func NewPresenter(apps repository.ApplicationRepository, host *ContentHost, layout Layout) *Presenter {
	return &Presenter{
		apps:   apps,
		host:   host,
		layout: layout,
	}
}

// Layout returns the current layout.
func (p *Presenter) Layout() Layout {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.layout
}

// SetScreen updates the screen size.
func (p *Presenter) SetScreen(size entity.Size) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.layout.Screen = size
}

// IsCompact reports whether the current screen uses the compact layout.
func (p *Presenter) IsCompact() bool {
	return p.Layout().IsCompact()
}

// Host returns the content host.
func (p *Presenter) Host() *ContentHost {
	return p.host
}

// Sync mounts and unmounts content to match state.
func (p *Presenter) Sync(ctx context.Context, state entity.SessionState) {
	p.host.Sync(ctx, state)
}

// ClickContent forwards a client-area click to the window's content.
func (p *Presenter) ClickContent(id entity.WindowID, pt entity.Point) {
	p.host.ClickContent(id, pt)
}

// Frames returns visible windows bottom to top. Minimized windows are not
// drawn at all.
func (p *Presenter) Frames(state entity.SessionState) []Frame {
	layout := p.Layout()

	ordered := state.PaintOrder()
	frames := make([]Frame, 0, len(ordered))
	for _, w := range ordered {
		if !w.IsVisible() {
			continue
		}
		resizable := false
		if desc, err := p.apps.Lookup(w.AppID); err == nil {
			resizable = desc.Resizable
		}
		frames = append(frames, Frame{
			ID:        w.ID,
			AppID:     w.AppID,
			Title:     w.Title,
			Rect:      layout.resolveRect(w),
			Focused:   state.IsFocused(w.ID),
			Maximized: w.Maximized,
			Resizable: resizable,
		})
	}
	return frames
}

// HitTest resolves pt to the topmost thing drawn there.
func (p *Presenter) HitTest(state entity.SessionState, pt entity.Point) input.Target {
	if bounds, ok := p.OverlayBounds(state); ok && bounds.Contains(pt) {
		return p.overlayTarget(state, bounds, pt)
	}

	layout := p.Layout()
	if layout.Taskbar().Contains(pt) {
		return taskbarTarget(state, layout, pt)
	}

	frames := p.Frames(state)
	for i := len(frames) - 1; i >= 0; i-- {
		if frames[i].Rect.Contains(pt) {
			return frameTarget(frames[i], pt)
		}
	}
	return input.Target{Region: input.RegionDesktop}
}

func frameTarget(f Frame, pt entity.Point) input.Target {
	t := input.Target{WindowID: f.ID}

	switch {
	case f.hasButtons() && pt == f.CloseButton():
		t.Region = input.RegionCloseButton
	case f.hasButtons() && pt == f.MaximizeButton():
		t.Region = input.RegionMaximizeButton
	case f.hasButtons() && pt == f.MinimizeButton():
		t.Region = input.RegionMinimizeButton
	case pt.Y == f.Rect.Y:
		t.Region = input.RegionTitleBar
	case f.CanResize() && pt == f.ResizeHandle():
		t.Region = input.RegionResizeHandle
	default:
		t.Region = input.RegionContent
		client := f.Client()
		dx, dy := pt.Sub(client.Origin())
		t.Local = entity.Point{
			X: clamp(dx, 0, client.W-1),
			Y: clamp(dy, 0, client.H-1),
		}
	}
	return t
}

func taskbarTarget(state entity.SessionState, layout Layout, pt entity.Point) input.Target {
	bar := layout.Taskbar()
	x := pt.X - bar.X

	if x < len(startButtonLabel) {
		return input.Target{Region: input.RegionStartButton}
	}
	for i, w := range state.Windows {
		slot := taskbarSlot(i)
		if x >= slot.X && x < slot.X+slot.W {
			return input.Target{Region: input.RegionTaskbarEntry, WindowID: w.ID}
		}
	}
	return input.Target{Region: input.RegionTaskbar}
}

func (p *Presenter) overlayTarget(state entity.SessionState, bounds entity.Rect, pt entity.Point) input.Target {
	row := pt.Y - bounds.Y - 1
	switch state.ActiveOverlay.Kind {
	case entity.OverlayContextMenu:
		if row >= 0 && row < len(state.ActiveOverlay.Items) {
			return input.Target{Region: input.RegionMenuItem, Index: row}
		}
	case entity.OverlayStartPanel:
		apps := p.startEntries(bounds)
		if row >= 0 && row < len(apps) {
			return input.Target{Region: input.RegionStartEntry, AppID: apps[row].ID, Index: row}
		}
	}
	return input.Target{Region: input.RegionOverlay}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
