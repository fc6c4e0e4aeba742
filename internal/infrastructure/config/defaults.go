package config

import "github.com/bnema/dumbdesk/internal/domain/entity"

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 5
	defaultLogMaxAgeDays = 14

	defaultWallpaper = "dots"

	defaultCompactWidth   = 80
	defaultCascadeOriginX = 4
	defaultCascadeOriginY = 2
	defaultCascadeStep    = 2
	defaultScreenWidth    = 120
	defaultScreenHeight   = 36
	defaultTaskbarHeight  = 1
)

func getDefaultLogDir() string {
	dir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return dir
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultLogMaxAgeDays,
			Compress:      true,
		},
		Appearance: AppearanceConfig{
			Theme:     entity.ThemeDark,
			Wallpaper: defaultWallpaper,
		},
		Desktop: DesktopConfig{
			CompactWidth:   defaultCompactWidth,
			CascadeOriginX: defaultCascadeOriginX,
			CascadeOriginY: defaultCascadeOriginY,
			CascadeStep:    defaultCascadeStep,
			ScreenWidth:    defaultScreenWidth,
			ScreenHeight:   defaultScreenHeight,
			TaskbarHeight:  defaultTaskbarHeight,
		},
		Debug: DebugConfig{
			AssertInvariants: false,
		},
	}
}
