package input

import (
	"context"
	"sort"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// Action is a keyboard-triggered desktop command.
type Action string

const (
	ActionDismissOverlay  Action = "dismiss_overlay"
	ActionToggleStart     Action = "toggle_start"
	ActionCycleFocus      Action = "cycle_focus"
	ActionCloseFocused    Action = "close_focused"
	ActionMinimizeFocused Action = "minimize_focused"
	ActionMaximizeFocused Action = "maximize_focused"
	ActionToggleTheme     Action = "toggle_theme"
)

// Perform runs action against the current state.
// Actions that need a focused window do nothing when none is focused.
func (c *Controller) Perform(ctx context.Context, action Action) {
	state := c.store.State()
	focused := state.FocusedID

	switch action {
	case ActionDismissOverlay:
		if state.ActiveOverlay.IsOpen() {
			c.emit(ctx, entity.CloseOverlay{})
		}
	case ActionToggleStart:
		if state.ActiveOverlay.Kind == entity.OverlayStartPanel {
			c.emit(ctx, entity.CloseOverlay{})
		} else {
			c.emit(ctx, entity.OpenOverlay{Overlay: entity.NewStartPanel()})
		}
	case ActionCycleFocus:
		if id, ok := cycleTarget(state); ok {
			c.emit(ctx, entity.Focus{WindowID: id})
		}
	case ActionCloseFocused:
		if focused != "" {
			c.emit(ctx, entity.Close{WindowID: focused})
		}
	case ActionMinimizeFocused:
		if focused != "" {
			c.emit(ctx, entity.Minimize{WindowID: focused})
		}
	case ActionMaximizeFocused:
		if focused != "" {
			c.emit(ctx, entity.Maximize{WindowID: focused})
		}
	case ActionToggleTheme:
		c.emit(ctx, entity.SetTheme{Theme: state.Theme.Toggle()})
	}
}

// cycleTarget picks the bottom-most visible window other than the focused
// one. Repeating the action rotates through every visible window.
func cycleTarget(state entity.SessionState) (entity.WindowID, bool) {
	var candidates []entity.Window
	for _, w := range state.Windows {
		if w.IsVisible() && w.ID != state.FocusedID {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ZOrder < candidates[j].ZOrder
	})
	return candidates[0].ID, true
}
