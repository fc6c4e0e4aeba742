package port

import (
	"context"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// ContentUnit is the mountable body of a hosted application.
// The desktop treats it as opaque: it is mounted once per window lifetime,
// asked to render into the window's client area, and unmounted when the
// window is minimized or closed.
type ContentUnit interface {
	// Mount prepares the unit. seed is the value given at Open time, unchanged.
	Mount(ctx context.Context, seed string) error

	// Unmount releases everything the unit holds.
	Unmount()

	// Render draws the unit into a client area of the given size.
	Render(size entity.Size) string

	// Click delivers a pointer press in client-area coordinates.
	Click(p entity.Point)
}

// ContentFactory creates a fresh content unit.
type ContentFactory func() ContentUnit

// ContentResolver maps an application to its content factory.
// Windows store only the app id; the presenter resolves content through this.
type ContentResolver interface {
	Resolve(id entity.AppID) (ContentFactory, error)
}
