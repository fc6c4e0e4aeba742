package session

import (
	"context"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// OpenApplication opens appID, or focuses it when already open.
// seed is handed unchanged to the application's content at mount.
func (s *Session) OpenApplication(ctx context.Context, appID entity.AppID, seed string) {
	s.Dispatch(ctx, entity.Open{AppID: appID, Seed: seed})
}

func (s *Session) CloseWindow(ctx context.Context, id entity.WindowID) {
	s.Dispatch(ctx, entity.Close{WindowID: id})
}

func (s *Session) MinimizeWindow(ctx context.Context, id entity.WindowID) {
	s.Dispatch(ctx, entity.Minimize{WindowID: id})
}

func (s *Session) MaximizeWindow(ctx context.Context, id entity.WindowID) {
	s.Dispatch(ctx, entity.Maximize{WindowID: id})
}

func (s *Session) FocusWindow(ctx context.Context, id entity.WindowID) {
	s.Dispatch(ctx, entity.Focus{WindowID: id})
}

func (s *Session) RepositionWindow(ctx context.Context, id entity.WindowID, pos entity.Point) {
	s.Dispatch(ctx, entity.Reposition{WindowID: id, Position: pos})
}

func (s *Session) ResizeWindow(ctx context.Context, id entity.WindowID, size entity.Size) {
	s.Dispatch(ctx, entity.Resize{WindowID: id, Size: size})
}

func (s *Session) OpenOverlay(ctx context.Context, overlay entity.Overlay) {
	s.Dispatch(ctx, entity.OpenOverlay{Overlay: overlay})
}

func (s *Session) CloseOverlay(ctx context.Context) {
	s.Dispatch(ctx, entity.CloseOverlay{})
}

func (s *Session) SetTheme(ctx context.Context, theme entity.Theme) {
	s.Dispatch(ctx, entity.SetTheme{Theme: theme})
}

func (s *Session) SetWallpaper(ctx context.Context, ref string) {
	s.Dispatch(ctx, entity.SetWallpaper{Ref: ref})
}
