package port

import "github.com/bnema/dumbdesk/internal/domain/entity"

// OverlayGeometry reports where the active overlay is drawn.
// Implemented by the presenter so outside-click detection uses real bounds.
type OverlayGeometry interface {
	OverlayBounds(state entity.SessionState) (entity.Rect, bool)
}
