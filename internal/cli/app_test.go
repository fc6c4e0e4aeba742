package cli

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbdesk/internal/domain/build"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/infrastructure/catalog"
	"github.com/bnema/dumbdesk/internal/infrastructure/config"
	"github.com/bnema/dumbdesk/internal/logging"
	"github.com/bnema/dumbdesk/internal/ui/input"
)

func testApp(version string) *App {
	return &App{
		Config:    config.DefaultConfig(),
		Catalog:   catalog.New(),
		BuildInfo: build.Info{Version: version},
		ctx:       context.Background(),
	}
}

func TestApp_AssertInvariants(t *testing.T) {
	tests := []struct {
		name    string
		version string
		flag    bool
		want    bool
	}{
		{name: "dev build", version: "dev", want: true},
		{name: "release build", version: "1.2.0", want: false},
		{name: "release build with debug flag", version: "1.2.0", flag: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp(tt.version)
			app.Config.Debug.AssertInvariants = tt.flag
			assert.Equal(t, tt.want, app.AssertInvariants())
		})
	}
}

func TestApp_NewSessionUsesConfiguredCascade(t *testing.T) {
	app := testApp("1.0.0")
	app.Config.Appearance.Theme = entity.ThemeLight
	app.Config.Appearance.Wallpaper = "grid"
	app.Config.Desktop.CascadeOriginX = 10
	app.Config.Desktop.CascadeOriginY = 3
	app.Config.Desktop.CascadeStep = 1

	ctx := context.Background()
	sess := app.NewSession()

	state := sess.State()
	assert.Equal(t, entity.ThemeLight, state.Theme)
	assert.Equal(t, "grid", state.Wallpaper)

	sess.OpenApplication(ctx, "calc", "")
	sess.OpenApplication(ctx, "notes", "")

	state = sess.State()
	require.Len(t, state.Windows, 2)
	assert.Equal(t, entity.Point{X: 10, Y: 3}, state.Windows[0].Position)
	assert.Equal(t, entity.Point{X: 12, Y: 4}, state.Windows[1].Position)
}

func TestApp_NewDesktop(t *testing.T) {
	app := testApp("1.0.0")
	ctx := context.Background()

	desk := app.NewDesktop(ctx)
	defer desk.Close()

	desk.Presenter.SetScreen(entity.Size{Width: 120, Height: 36})
	desk.Controller.ViewportChanged()

	desk.Session.OpenApplication(ctx, "notes", "")
	id := entity.WindowIDFor("notes")
	assert.False(t, desk.Presenter.Host().Mounted(id), "desktop does not mount until a view subscribes")

	desk.Controller.PointerDown(ctx, entity.Point{X: 100, Y: 30}, input.ButtonSecondary)
	assert.Equal(t, entity.OverlayContextMenu, desk.Session.State().ActiveOverlay.Kind)

	assert.True(t, desk.Controller.KeyPress(ctx, input.KeyEscape))
	assert.False(t, desk.Session.State().ActiveOverlay.IsOpen())
}

func TestApp_NewDesktop_CompactWidth(t *testing.T) {
	tests := []struct {
		name         string
		compactWidth int
		wantCompact  bool
	}{
		{name: "zero disables compact layout", compactWidth: 0, wantCompact: false},
		{name: "below threshold", compactWidth: 100, wantCompact: true},
		{name: "above threshold", compactWidth: 60, wantCompact: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp("1.0.0")
			app.Config.Desktop.CompactWidth = tt.compactWidth
			ctx := context.Background()

			desk := app.NewDesktop(ctx)
			defer desk.Close()

			desk.Presenter.SetScreen(entity.Size{Width: 70, Height: 30})
			desk.Controller.ViewportChanged()

			assert.Equal(t, tt.wantCompact, desk.Presenter.IsCompact())
			assert.Equal(t, tt.wantCompact, desk.Controller.IsCompact(), "controller follows the presenter's layout")

			desk.Session.OpenApplication(ctx, "calc", "")
			frames := desk.Presenter.Frames(desk.Session.State())
			require.Len(t, frames, 1)
			title := entity.Point{X: frames[0].Rect.X + 1, Y: frames[0].Rect.Y}

			desk.Controller.PointerDown(ctx, title, input.ButtonPrimary)
			_, dragging := desk.Controller.Dragging()
			assert.Equal(t, !tt.wantCompact, dragging, "windows drawn at their own geometry can be dragged")
			desk.Controller.PointerUp(ctx, title)
		})
	}
}

func TestApp_AttachSessionLog(t *testing.T) {
	t.Run("file logging disabled", func(t *testing.T) {
		app := testApp("1.0.0")
		app.Config.Logging.EnableFileLog = false

		id, err := app.AttachSessionLog()
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("writes a session file", func(t *testing.T) {
		dir := t.TempDir()
		app := testApp("1.0.0")
		app.Config.Logging.EnableFileLog = true
		app.Config.Logging.LogDir = dir
		defer func() { _ = app.Close() }()

		id, err := app.AttachSessionLog()
		require.NoError(t, err)
		require.NotEmpty(t, id)

		_, statErr := os.Stat(logging.SessionLogPath(dir, id))
		assert.NoError(t, statErr)
		assert.NotNil(t, logging.FromContext(app.Ctx()))
	})
}
