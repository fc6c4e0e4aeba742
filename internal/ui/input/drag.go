package input

import "github.com/bnema/dumbdesk/internal/domain/entity"

// DragSession tracks a title-bar drag. It lives only in the controller and
// never reaches session state.
type DragSession struct {
	WindowID             entity.WindowID
	OriginPointer        entity.Point
	OriginWindowPosition entity.Point
	last                 entity.Point
}

func newDragSession(w entity.Window, pointer entity.Point) *DragSession {
	return &DragSession{
		WindowID:             w.ID,
		OriginPointer:        pointer,
		OriginWindowPosition: w.Position,
		last:                 w.Position,
	}
}

// Candidate returns the unclamped window position for pointer.
// Negative and off-screen positions are allowed.
func (d *DragSession) Candidate(pointer entity.Point) entity.Point {
	dx, dy := pointer.Sub(d.OriginPointer)
	return d.OriginWindowPosition.Add(dx, dy)
}

// ResizeSession tracks a resize-handle drag.
type ResizeSession struct {
	WindowID      entity.WindowID
	OriginPointer entity.Point
	OriginSize    entity.Size
	last          entity.Size
}

func newResizeSession(w entity.Window, pointer entity.Point) *ResizeSession {
	return &ResizeSession{
		WindowID:      w.ID,
		OriginPointer: pointer,
		OriginSize:    w.Size,
		last:          w.Size,
	}
}

// Candidate returns the requested size for pointer.
// Clamping to the minimum size is left to the reducer.
func (r *ResizeSession) Candidate(pointer entity.Point) entity.Size {
	dx, dy := pointer.Sub(r.OriginPointer)
	return entity.Size{
		Width:  r.OriginSize.Width + dx,
		Height: r.OriginSize.Height + dy,
	}
}
