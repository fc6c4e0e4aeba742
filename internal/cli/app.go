// Package cli wires configuration, logging and the desktop session for
// the command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/dumbdesk/internal/application/usecase"
	"github.com/bnema/dumbdesk/internal/cli/styles"
	"github.com/bnema/dumbdesk/internal/domain/build"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/infrastructure/catalog"
	"github.com/bnema/dumbdesk/internal/infrastructure/config"
	"github.com/bnema/dumbdesk/internal/logging"
	"github.com/bnema/dumbdesk/internal/session"
)

const (
	logTimeFormat = "15:04:05"
	devVersion    = "dev"
)

// App holds CLI dependencies.
type App struct {
	Config *config.Config
	// ConfigManager is nil when the config file could not be loaded and
	// defaults are in use. ConfigErr then holds the reason.
	ConfigManager *config.Manager
	ConfigErr     error
	Theme         *styles.Theme
	BuildInfo     build.Info
	Catalog       *catalog.Catalog
	// SkippedApps are configured applications shadowed by a built-in.
	SkippedApps []entity.AppID

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	// Quiet until a command asks for a session log.
	logger, logCleanup, err := logging.NewWithFile(loggerConfig(cfg), logging.FileConfig{Enabled: false})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	apps := catalog.New()
	skipped := apps.Merge(cfg.ExtraApps())
	for _, id := range skipped {
		logger.Warn().Str("app_id", string(id)).Msg("configured app shadowed by built-in")
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		ConfigErr:     cfgErr,
		Theme:         styles.NewTheme(cfg.Appearance.Theme),
		Catalog:       apps,
		SkippedApps:   skipped,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// AttachSessionLog switches the app logger to a new per-session log file
// and returns the session ID. With file logging disabled it keeps the
// quiet logger and returns an empty ID.
func (a *App) AttachSessionLog() (string, error) {
	cfg := a.Config.Logging
	if !cfg.EnableFileLog {
		return "", nil
	}

	logDir := cfg.LogDir
	if logDir == "" {
		dir, err := config.GetLogDir()
		if err != nil {
			return "", fmt.Errorf("resolve log dir: %w", err)
		}
		logDir = dir
	}

	sessionID := logging.GenerateSessionID()
	logger, cleanup, err := logging.NewWithFile(loggerConfig(a.Config), logging.FileConfig{
		Enabled:   true,
		LogDir:    logDir,
		SessionID: sessionID,
		Rotation: logging.RotationConfig{
			MaxSizeMB:  cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAgeDays: cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
	})
	if err != nil {
		return "", err
	}

	if a.logCleanup != nil {
		a.logCleanup()
	}
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)

	logger.Info().
		Str("version", a.BuildInfo.Version).
		Str("log_dir", logDir).
		Msg("session started")
	return sessionID, nil
}

// AssertInvariants reports whether sessions check their invariants after
// every intent.
func (a *App) AssertInvariants() bool {
	return a.Config.Debug.AssertInvariants || a.BuildInfo.Version == devVersion
}

// NewSession creates a session seeded from the configured appearance.
func (a *App) NewSession() *session.Session {
	desktop := a.Config.Desktop
	reducer := usecase.NewSessionReducer(a.Catalog, usecase.CascadePolicy{
		Origin: desktop.CascadeOrigin(),
		Step:   desktop.CascadeOffset(),
		Bounds: desktop.CascadeBounds(),
	})
	initial := entity.NewSessionState(a.Config.Appearance.Theme, a.Config.Appearance.Wallpaper)
	return session.New(reducer, initial, session.Options{AssertInvariants: a.AssertInvariants()})
}

func loggerConfig(cfg *config.Config) logging.Config {
	level := cfg.Logging.Level
	if envLevel := os.Getenv("DUMBDESK_LOG_LEVEL"); envLevel != "" {
		level = envLevel
	}
	return logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: logTimeFormat,
	}
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file is missing or invalid.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
