package window

import (
	"strings"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

var wallpaperFill = map[string]rune{
	"plain":  ' ',
	"dots":   '·',
	"grid":   '+',
	"waves":  '~',
	"aurora": '░',
	"dunes":  '▒',
}

// WallpaperNames lists the built-in wallpapers in cycle order.
func WallpaperNames() []string {
	return []string{"plain", "dots", "grid", "waves", "aurora", "dunes"}
}

// Draw renders state to a canvas. clock is shown at the right of the taskbar.
func (p *Presenter) Draw(state entity.SessionState, clock string) *Canvas {
	layout := p.Layout()
	c := NewCanvas(layout.Screen)

	fill, ok := wallpaperFill[state.Wallpaper]
	if !ok {
		fill = ' '
	}
	c.Fill(layout.Desktop(), fill, RoleDesktop)

	for _, f := range p.Frames(state) {
		p.drawFrame(c, f)
	}
	drawTaskbar(c, layout, state, clock)
	p.drawOverlay(c, state)

	return c
}

func (p *Presenter) drawFrame(c *Canvas, f Frame) {
	border, title := RoleFrame, RoleTitle
	box := thinBorder
	if f.Focused {
		border, title = RoleFrameFocused, RoleTitleFocused
		box = doubleBorder
	}
	c.Box(f.Rect, box, border, RoleContent)

	titleWidth := f.Rect.W - 4
	if f.hasButtons() {
		titleWidth = f.Rect.W - 10
	}
	if titleWidth > 0 {
		c.Text(f.Rect.X+2, f.Rect.Y, " "+f.Title+" ", title, titleWidth)
	}

	if f.hasButtons() {
		restore := '□'
		if f.Maximized {
			restore = '◱'
		}
		set := func(pt entity.Point, r rune) { c.Set(pt.X, pt.Y, r, RoleButton) }
		set(f.MinimizeButton(), '_')
		set(f.MaximizeButton(), restore)
		set(f.CloseButton(), 'x')
	}
	if f.CanResize() {
		h := f.ResizeHandle()
		c.Set(h.X, h.Y, '◢', border)
	}

	client := f.Client()
	if client.W == 0 || client.H == 0 {
		return
	}
	body, _ := p.host.Render(f.ID, entity.Size{Width: client.W, Height: client.H})
	for i, line := range strings.Split(body, "\n") {
		if i >= client.H {
			break
		}
		c.Text(client.X, client.Y+i, line, RoleContent, client.W)
	}
}

func drawTaskbar(c *Canvas, layout Layout, state entity.SessionState, clock string) {
	bar := layout.Taskbar()
	if bar.H <= 0 {
		return
	}
	c.Fill(bar, ' ', RoleTaskbar)

	startRole := RoleStartButton
	if state.ActiveOverlay.Kind == entity.OverlayStartPanel {
		startRole = RoleStartButtonActive
	}
	c.Text(bar.X, bar.Y, startButtonLabel, startRole, len(startButtonLabel))

	clockX := bar.X + bar.W - clockWidth - 1
	for i, w := range state.Windows {
		slot := taskbarSlot(i)
		if slot.X+slot.W > clockX {
			break
		}
		role := RoleTaskbarEntry
		switch {
		case w.Minimized:
			role = RoleTaskbarEntryMinimized
		case state.IsFocused(w.ID):
			role = RoleTaskbarEntryFocused
		}
		c.Fill(entity.Rect{X: slot.X, Y: bar.Y, W: slot.W, H: 1}, ' ', role)
		c.Text(slot.X+1, bar.Y, w.Title, role, slot.W-2)
	}

	if clock != "" && clockX > 0 {
		c.Text(clockX, bar.Y, clock, RoleClock, clockWidth)
	}
}

func (p *Presenter) drawOverlay(c *Canvas, state entity.SessionState) {
	bounds, ok := p.OverlayBounds(state)
	if !ok {
		return
	}
	c.Box(bounds, roundBorder, RoleOverlay, RoleOverlay)

	inner := bounds.W - 4
	switch state.ActiveOverlay.Kind {
	case entity.OverlayContextMenu:
		for i, it := range state.ActiveOverlay.Items {
			c.Text(bounds.X+2, bounds.Y+1+i, it.Label, RoleOverlayItem, inner)
		}
	case entity.OverlayStartPanel:
		c.Text(bounds.X+2, bounds.Y, " Applications ", RoleOverlay, inner)
		for i, d := range p.startEntries(bounds) {
			c.Text(bounds.X+2, bounds.Y+1+i, d.Title, RoleOverlayItem, inner)
		}
	case entity.OverlayNotificationPanel:
		c.Text(bounds.X+2, bounds.Y, " Notifications ", RoleOverlay, inner)
		c.Text(bounds.X+2, bounds.Y+2, "No new notifications", RoleOverlayItem, inner)
	}
}
