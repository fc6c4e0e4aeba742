package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbdesk/internal/cli"
	"github.com/bnema/dumbdesk/internal/cli/model"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/infrastructure/config"
	"github.com/bnema/dumbdesk/internal/logging"
)

var (
	desktopOpen     []string
	desktopShowHelp bool
	desktopNoWatch  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the desktop",
	Long: `Start the interactive desktop in the terminal.

Applications given with --open are opened in order before the first frame.
A seed for the application's content can follow an equals sign.

Examples:
  dumbdesk run
  dumbdesk run --open calc=42 --open notes
  dumbdesk run --open browser=https://example.com --help-bar`,
	RunE: runDesktop,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addDesktopFlags(runCmd)
}

func addDesktopFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&desktopOpen, "open", nil, "open an application at start (id or id=seed, repeatable)")
	cmd.Flags().BoolVar(&desktopShowHelp, "help-bar", false, "show the key help line")
	cmd.Flags().BoolVar(&desktopNoWatch, "no-watch", false, "do not follow config file changes")
}

// parseOpenFlag splits "id=seed" into its parts.
func parseOpenFlag(s string) (entity.AppID, string) {
	id, seed, _ := strings.Cut(s, "=")
	return entity.AppID(strings.TrimSpace(id)), seed
}

func runDesktop(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	sessionID, err := app.AttachSessionLog()
	if err != nil {
		// The desktop owns the terminal; run without a log file.
		fmt.Fprintf(os.Stderr, "warning: session log disabled: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)
	if app.ConfigErr != nil {
		log.Warn().Err(app.ConfigErr).Msg("using default configuration")
	}

	desk := app.NewDesktop(ctx)
	defer desk.Close()

	m := model.NewDesktopModel(ctx, model.DesktopModelConfig{
		Session:    desk.Session,
		Presenter:  desk.Presenter,
		Controller: desk.Controller,
		ShowHelp:   desktopShowHelp,
	})
	defer m.Close()

	for _, arg := range desktopOpen {
		id, seed := parseOpenFlag(arg)
		desk.Session.OpenApplication(ctx, id, seed)
	}

	if !desktopNoWatch {
		watchAppearance(ctx, app, desk)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	runCtx, cancel := context.WithCancel(ctx)
	g := new(errgroup.Group)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		<-runCtx.Done()
		p.Quit()
		return nil
	})

	err = g.Wait()
	log.Info().
		Str("session_id", sessionID).
		Int("windows", len(desk.Session.State().Windows)).
		Msg("desktop closed")
	return err
}

// watchAppearance follows theme and wallpaper edits in the config file.
func watchAppearance(ctx context.Context, app *cli.App, desk *cli.Desktop) {
	mgr := app.ConfigManager
	if mgr == nil {
		return
	}

	log := logging.FromContext(ctx)
	mgr.OnConfigChange(func(cfg *config.Config) {
		log.Info().
			Str("theme", string(cfg.Appearance.Theme)).
			Str("wallpaper", cfg.Appearance.Wallpaper).
			Msg("config reloaded")
		desk.Session.SetTheme(ctx, cfg.Appearance.Theme)
		desk.Session.SetWallpaper(ctx, cfg.Appearance.Wallpaper)
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch disabled")
	}
}
