// Package config loads dashctl settings from a TOML file, environment
// variables and defaults through viper.
package config

// Config represents the complete dashctl configuration.
type Config struct {
	Database      DatabaseConfig     `mapstructure:"database" toml:"database" json:"database"`
	Logging       LoggingConfig      `mapstructure:"logging" toml:"logging" json:"logging"`
	Snapshots     SnapshotConfig     `mapstructure:"snapshots" toml:"snapshots" json:"snapshots"`
	LibraryPanels LibraryPanelConfig `mapstructure:"library_panels" toml:"library_panels" json:"library_panels"`
	Query         QueryConfig        `mapstructure:"query" toml:"query" json:"query"`
	Watch         WatchConfig        `mapstructure:"watch" toml:"watch" json:"watch"`
	Output        OutputConfig       `mapstructure:"output" toml:"output" json:"output"`
}

// DatabaseConfig locates the SQLite store.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/dashctl/dashctl.sqlite
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// Dir enables a rotating JSON log file in that directory.
	Dir        string `mapstructure:"dir" toml:"dir" json:"dir,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// SnapshotConfig controls snapshot creation and retention.
type SnapshotConfig struct {
	// DefaultExpiresHours is the lifetime of new snapshots; 0 never expires.
	DefaultExpiresHours int `mapstructure:"default_expires_hours" toml:"default_expires_hours" json:"default_expires_hours" jsonschema:"minimum=0"`
	// PurgeOnOpen removes expired snapshots whenever the store is opened.
	PurgeOnOpen bool `mapstructure:"purge_on_open" toml:"purge_on_open" json:"purge_on_open"`
}

// LibraryPanelConfig sizes the library panel cache.
type LibraryPanelConfig struct {
	CacheSize       int `mapstructure:"cache_size" toml:"cache_size" json:"cache_size" jsonschema:"minimum=0"`
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" toml:"cache_ttl_seconds" json:"cache_ttl_seconds" jsonschema:"minimum=0"`
}

// QueryConfig configures the offline query executor.
type QueryConfig struct {
	// FixturesPath is a JSON file of canned frames used when rendering
	// snapshots without a datasource.
	FixturesPath string `mapstructure:"fixtures_path" toml:"fixtures_path" json:"fixtures_path,omitempty"`
	// TimeoutSeconds bounds how long a render waits for query results.
	TimeoutSeconds int `mapstructure:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds" jsonschema:"minimum=1"`
}

// WatchConfig tunes `dashctl watch`.
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" jsonschema:"minimum=0"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Color  bool   `mapstructure:"color" toml:"color" json:"color"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=text,enum=json"`
}
