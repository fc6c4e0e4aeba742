package config

import "github.com/bnema/dumbdesk/internal/domain/entity"

// Config represents the complete configuration for dumbdesk.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Desktop    DesktopConfig    `mapstructure:"desktop" toml:"desktop" json:"desktop"`
	Debug      DebugConfig      `mapstructure:"debug" toml:"debug" json:"debug"`
	// Apps are extra catalog entries. Built-in applications win on id collision.
	Apps []AppConfig `mapstructure:"apps" toml:"apps" json:"apps,omitempty"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// EnableFileLog writes a per-session log file under the state directory.
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// AppearanceConfig holds the initial theme and wallpaper.
type AppearanceConfig struct {
	Theme     entity.Theme `mapstructure:"theme" toml:"theme" json:"theme" jsonschema:"enum=light,enum=dark"`
	Wallpaper string       `mapstructure:"wallpaper" toml:"wallpaper" json:"wallpaper"`
}

// DesktopConfig controls window placement and layout.
type DesktopConfig struct {
	// CompactWidth is the terminal width below which windows are shown full
	// size and cannot be dragged. Zero disables the compact layout.
	CompactWidth   int `mapstructure:"compact_width" toml:"compact_width" json:"compact_width" jsonschema:"minimum=0"`
	CascadeOriginX int `mapstructure:"cascade_origin_x" toml:"cascade_origin_x" json:"cascade_origin_x" jsonschema:"minimum=0"`
	CascadeOriginY int `mapstructure:"cascade_origin_y" toml:"cascade_origin_y" json:"cascade_origin_y" jsonschema:"minimum=0"`
	CascadeStep    int `mapstructure:"cascade_step" toml:"cascade_step" json:"cascade_step" jsonschema:"minimum=1"`
	// ScreenWidth and ScreenHeight bound the cascade. Zero disables wrapping.
	ScreenWidth   int `mapstructure:"screen_width" toml:"screen_width" json:"screen_width" jsonschema:"minimum=0"`
	ScreenHeight  int `mapstructure:"screen_height" toml:"screen_height" json:"screen_height" jsonschema:"minimum=0"`
	TaskbarHeight int `mapstructure:"taskbar_height" toml:"taskbar_height" json:"taskbar_height" jsonschema:"minimum=1"`
}

// DebugConfig holds development switches.
type DebugConfig struct {
	// AssertInvariants checks session invariants after every intent and panics on violation.
	AssertInvariants bool `mapstructure:"assert_invariants" toml:"assert_invariants" json:"assert_invariants"`
}

// AppConfig describes an extra application.
type AppConfig struct {
	ID        string `mapstructure:"id" toml:"id" json:"id"`
	Title     string `mapstructure:"title" toml:"title" json:"title"`
	Icon      string `mapstructure:"icon" toml:"icon" json:"icon,omitempty"`
	Width     int    `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=3"`
	Height    int    `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=3"`
	MinWidth  int    `mapstructure:"min_width" toml:"min_width" json:"min_width,omitempty"`
	MinHeight int    `mapstructure:"min_height" toml:"min_height" json:"min_height,omitempty"`
	Resizable bool   `mapstructure:"resizable" toml:"resizable" json:"resizable"`
	Category  string `mapstructure:"category" toml:"category" json:"category,omitempty" jsonschema:"enum=system,enum=productivity,enum=internet,enum=games,enum=utilities"`
}

// Descriptor converts the entry to a catalog descriptor.
func (a AppConfig) Descriptor() entity.ApplicationDescriptor {
	d := entity.ApplicationDescriptor{
		ID:          entity.AppID(a.ID),
		Title:       a.Title,
		IconRef:     a.Icon,
		DefaultSize: entity.Size{Width: a.Width, Height: a.Height},
		Resizable:   a.Resizable,
		Category:    entity.Category(a.Category),
	}
	if a.MinWidth > 0 || a.MinHeight > 0 {
		d.MinSize = &entity.Size{Width: a.MinWidth, Height: a.MinHeight}
	}
	return d
}

// ExtraApps returns the configured applications as descriptors.
func (c *Config) ExtraApps() []entity.ApplicationDescriptor {
	out := make([]entity.ApplicationDescriptor, 0, len(c.Apps))
	for _, a := range c.Apps {
		out = append(out, a.Descriptor())
	}
	return out
}

// CascadeOrigin is where the first window opens.
func (d DesktopConfig) CascadeOrigin() entity.Point {
	return entity.Point{X: d.CascadeOriginX, Y: d.CascadeOriginY}
}

// CascadeOffset is the offset between cascaded windows. Terminal cells are
// about twice as tall as wide, so the horizontal step is doubled.
func (d DesktopConfig) CascadeOffset() entity.Point {
	return entity.Point{X: 2 * d.CascadeStep, Y: d.CascadeStep}
}

// CascadeBounds is the area cascaded windows wrap within.
func (d DesktopConfig) CascadeBounds() entity.Size {
	return entity.Size{Width: d.ScreenWidth, Height: d.ScreenHeight}
}
