package config

import (
	"fmt"
	"strings"
)

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}

	if config.Snapshots.DefaultExpiresHours < 0 {
		validationErrors = append(validationErrors, "snapshots.default_expires_hours must be non-negative")
	}
	if config.LibraryPanels.CacheSize < 0 {
		validationErrors = append(validationErrors, "library_panels.cache_size must be non-negative")
	}
	if config.LibraryPanels.CacheTTLSeconds < 0 {
		validationErrors = append(validationErrors, "library_panels.cache_ttl_seconds must be non-negative")
	}
	if config.Query.TimeoutSeconds < 1 {
		validationErrors = append(validationErrors, "query.timeout_seconds must be at least 1")
	}
	if config.Watch.DebounceMs < 0 {
		validationErrors = append(validationErrors, "watch.debounce_ms must be non-negative")
	}

	switch config.Output.Format {
	case OutputFormatText, OutputFormatJSON:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("output.format must be one of: text, json (got: %s)", config.Output.Format))
	}

	if config.Database.Path == "" {
		validationErrors = append(validationErrors, "database.path cannot be empty")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%s", strings.Join(validationErrors, "; "))
	}
	return nil
}
