package usecase

import (
	"fmt"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// CheckInvariants validates a session state.
// Returns an *entity.InvariantViolation listing every broken rule, or nil.
func CheckInvariants(state entity.SessionState) error {
	var violations []string

	ids := make(map[entity.WindowID]struct{}, len(state.Windows))
	zs := make(map[int]entity.WindowID, len(state.Windows))
	visible := 0

	for _, w := range state.Windows {
		if _, dup := ids[w.ID]; dup {
			violations = append(violations, fmt.Sprintf("window %q appears more than once", w.ID))
		}
		ids[w.ID] = struct{}{}

		if w.ID != entity.WindowIDFor(w.AppID) {
			violations = append(violations, fmt.Sprintf("window %q hosts app %q", w.ID, w.AppID))
		}
		if other, dup := zs[w.ZOrder]; dup {
			violations = append(violations, fmt.Sprintf("windows %q and %q share z-order %d", other, w.ID, w.ZOrder))
		}
		zs[w.ZOrder] = w.ID

		if w.ZOrder > state.ZCounter {
			violations = append(violations, fmt.Sprintf("window %q z-order %d exceeds counter %d", w.ID, w.ZOrder, state.ZCounter))
		}
		if w.IsVisible() {
			visible++
		}
	}

	if state.FocusedID != "" {
		w, ok := state.Find(state.FocusedID)
		switch {
		case !ok:
			violations = append(violations, fmt.Sprintf("focused window %q is not open", state.FocusedID))
		case w.Minimized:
			violations = append(violations, fmt.Sprintf("focused window %q is minimized", state.FocusedID))
		}
	} else if visible > 0 {
		violations = append(violations, fmt.Sprintf("no window focused while %d are visible", visible))
	}

	if state.ActiveOverlay.Kind != entity.OverlayContextMenu && len(state.ActiveOverlay.Items) > 0 {
		violations = append(violations, fmt.Sprintf("%s overlay carries menu items", state.ActiveOverlay.Kind))
	}

	if len(violations) == 0 {
		return nil
	}
	return &entity.InvariantViolation{Violations: violations}
}
