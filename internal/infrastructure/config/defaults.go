package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3

	defaultSnapshotExpiresHours = 0 // never

	defaultLibraryPanelCacheSize = 256
	defaultLibraryPanelTTL       = 300 // seconds

	defaultQueryTimeoutSeconds = 30
	defaultWatchDebounceMs     = 200

	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Snapshots: SnapshotConfig{
			DefaultExpiresHours: defaultSnapshotExpiresHours,
		},
		LibraryPanels: LibraryPanelConfig{
			CacheSize:       defaultLibraryPanelCacheSize,
			CacheTTLSeconds: defaultLibraryPanelTTL,
		},
		Query: QueryConfig{
			TimeoutSeconds: defaultQueryTimeoutSeconds,
		},
		Watch: WatchConfig{
			DebounceMs: defaultWatchDebounceMs,
		},
		Output: OutputConfig{
			Color:  true,
			Format: OutputFormatText,
		},
	}
}
