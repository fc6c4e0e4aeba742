package window

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/dumbdesk/internal/application/port"
	portmocks "github.com/bnema/dumbdesk/internal/application/port/mocks"
	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// staticResolver renders the app id for every window.
type staticResolver struct{}

func (staticResolver) Resolve(id entity.AppID) (port.ContentFactory, error) {
	return func() port.ContentUnit { return &labelUnit{label: string(id)} }, nil
}

type labelUnit struct{ label string }

func (u *labelUnit) Mount(context.Context, string) error { return nil }
func (u *labelUnit) Unmount()                            {}
func (u *labelUnit) Render(entity.Size) string           { return u.label }
func (u *labelUnit) Click(entity.Point)                  {}

type mockResolver struct {
	unit  port.ContentUnit
	calls int
	err   error
}

func (r *mockResolver) Resolve(entity.AppID) (port.ContentFactory, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return func() port.ContentUnit { return r.unit }, nil
}

func oneWindow(mutate func(*entity.Window)) entity.SessionState {
	s := entity.NewSessionState(entity.ThemeDark, "")
	w := entity.Window{ID: "notes", AppID: "notes", Seed: "todo.txt", Size: entity.Size{Width: 30, Height: 10}, ZOrder: 1}
	if mutate != nil {
		mutate(&w)
	}
	s.Windows = append(s.Windows, w)
	if !w.Minimized {
		s.FocusedID = w.ID
	}
	s.ZCounter = w.ZOrder
	return s
}

func TestContentHost_MountsOncePerVisibleLifetime(t *testing.T) {
	ctx := context.Background()
	unit := portmocks.NewMockContentUnit(t)
	unit.EXPECT().Mount(mock.Anything, "todo.txt").Return(nil).Twice()
	unit.EXPECT().Unmount().Return().Twice()
	unit.EXPECT().Click(entity.Point{X: 1, Y: 2}).Return().Once()

	host := NewContentHost(&mockResolver{unit: unit})

	host.Sync(ctx, oneWindow(nil))
	// Focus, move, resize and maximize keep the same mount.
	host.Sync(ctx, oneWindow(func(w *entity.Window) { w.ZOrder = 5 }))
	host.Sync(ctx, oneWindow(func(w *entity.Window) { w.Position = entity.Point{X: -10, Y: 3} }))
	host.Sync(ctx, oneWindow(func(w *entity.Window) { w.Size = entity.Size{Width: 50, Height: 20} }))
	host.Sync(ctx, oneWindow(func(w *entity.Window) { w.Maximized = true }))
	assert.Equal(t, 1, host.MountCount("notes"))

	host.ClickContent("notes", entity.Point{X: 1, Y: 2})

	// Minimized content is unmounted, then mounted again on restore.
	host.Sync(ctx, oneWindow(func(w *entity.Window) { w.Minimized = true }))
	assert.False(t, host.Mounted("notes"))
	host.ClickContent("notes", entity.Point{X: 9, Y: 9})

	host.Sync(ctx, oneWindow(nil))
	assert.True(t, host.Mounted("notes"))
	assert.Equal(t, 2, host.MountCount("notes"))

	// Closing unmounts.
	host.Sync(ctx, entity.NewSessionState(entity.ThemeDark, ""))
	assert.False(t, host.Mounted("notes"))
}

func TestContentHost_FailedResolveIsNotRetried(t *testing.T) {
	ctx := context.Background()
	resolver := &mockResolver{err: fmt.Errorf("%w: notes", entity.ErrUnknownApplication)}
	host := NewContentHost(resolver)

	host.Sync(ctx, oneWindow(nil))
	host.Sync(ctx, oneWindow(func(w *entity.Window) { w.ZOrder = 2 }))

	assert.Equal(t, 1, resolver.calls)
	body, ok := host.Render("notes", entity.Size{Width: 10, Height: 2})
	assert.False(t, ok)
	assert.Contains(t, body, "unknown application")
}

func TestContentHost_MountErrorLeavesWindowEmpty(t *testing.T) {
	ctx := context.Background()
	unit := portmocks.NewMockContentUnit(t)
	unit.EXPECT().Mount(mock.Anything, "todo.txt").Return(errors.New("boom")).Once()

	host := NewContentHost(&mockResolver{unit: unit})
	host.Sync(ctx, oneWindow(nil))
	host.Sync(ctx, oneWindow(nil))

	assert.False(t, host.Mounted("notes"))
	assert.Equal(t, 0, host.MountCount("notes"))
}

func TestContentHost_CloseUnmountsAll(t *testing.T) {
	unit := portmocks.NewMockContentUnit(t)
	unit.EXPECT().Mount(mock.Anything, mock.Anything).Return(nil).Once()
	unit.EXPECT().Unmount().Return().Once()

	host := NewContentHost(&mockResolver{unit: unit})
	host.Sync(context.Background(), oneWindow(nil))
	host.Close()

	assert.False(t, host.Mounted("notes"))
}
