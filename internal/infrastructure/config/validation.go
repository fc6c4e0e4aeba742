package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// validateConfig performs validation of configuration values and reports
// every problem at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateDesktop(config)...)
	validationErrors = append(validationErrors, validateApps(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error, disabled", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	if !config.Appearance.Theme.IsValid() {
		return []string{fmt.Sprintf("appearance.theme %q must be light or dark", config.Appearance.Theme)}
	}
	return nil
}

func validateDesktop(config *Config) []string {
	var validationErrors []string
	d := config.Desktop

	if d.CompactWidth < 0 {
		validationErrors = append(validationErrors, "desktop.compact_width must be non-negative")
	}
	if d.CascadeOriginX < 0 || d.CascadeOriginY < 0 {
		validationErrors = append(validationErrors, "desktop.cascade_origin_x and cascade_origin_y must be non-negative")
	}
	if d.CascadeStep < 1 {
		validationErrors = append(validationErrors, "desktop.cascade_step must be at least 1")
	}
	if d.ScreenWidth < 0 || d.ScreenHeight < 0 {
		validationErrors = append(validationErrors, "desktop.screen_width and screen_height must be non-negative")
	}
	if d.TaskbarHeight < 1 {
		validationErrors = append(validationErrors, "desktop.taskbar_height must be at least 1")
	}
	return validationErrors
}

func validateApps(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]bool, len(config.Apps))

	for i, app := range config.Apps {
		prefix := fmt.Sprintf("apps[%d]", i)
		if app.ID == "" {
			validationErrors = append(validationErrors, prefix+".id is required")
		} else if seen[app.ID] {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.id %q is duplicated", prefix, app.ID))
		}
		seen[app.ID] = true

		if app.Width < 3 || app.Height < 3 {
			validationErrors = append(validationErrors, prefix+".width and height must be at least 3")
		}
		if app.MinWidth > app.Width || app.MinHeight > app.Height {
			validationErrors = append(validationErrors, prefix+" minimum size exceeds its default size")
		}
		switch entity.Category(app.Category) {
		case entity.CategorySystem, entity.CategoryProductivity, entity.CategoryInternet,
			entity.CategoryGames, entity.CategoryUtilities:
		default:
			validationErrors = append(validationErrors, fmt.Sprintf("%s.category %q is unknown", prefix, app.Category))
		}
	}
	return validationErrors
}
