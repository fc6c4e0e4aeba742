package cli

import (
	"context"

	"github.com/bnema/dumbdesk/internal/session"
	"github.com/bnema/dumbdesk/internal/ui/input"
	"github.com/bnema/dumbdesk/internal/ui/window"
)

// Desktop is a session wired to a presenter and interaction controller.
type Desktop struct {
	Session    *session.Session
	Presenter  *window.Presenter
	Controller *input.Controller

	host      *window.ContentHost
	dismisser *input.OverlayDismisser
}

// NewDesktop builds the interactive desktop. The screen size is set later
// from the terminal.
func (a *App) NewDesktop(ctx context.Context) *Desktop {
	sess := a.NewSession()
	desktop := a.Config.Desktop

	host := window.NewContentHost(a.Catalog)
	presenter := window.NewPresenter(a.Catalog, host, window.Layout{
		TaskbarHeight: desktop.TaskbarHeight,
		CompactWidth:  desktop.CompactWidth,
	})

	hub := input.NewGlobalListeners()
	controller := input.NewController(sess, presenter, presenter, a.Catalog, hub, presenter, input.Options{
		Wallpapers:  window.WallpaperNames(),
		DesktopMenu: input.DefaultDesktopMenu(),
	})
	controller.Start()

	dismisser := input.NewOverlayDismisser(sess, presenter, hub)
	dismisser.Start(ctx)

	return &Desktop{
		Session:    sess,
		Presenter:  presenter,
		Controller: controller,
		host:       host,
		dismisser:  dismisser,
	}
}

// Close stops gesture and overlay tracking and unmounts all content.
func (d *Desktop) Close() {
	d.Controller.Stop()
	d.dismisser.Stop()
	d.host.Close()
}
