package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	explicitFile   bool
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, overridable through DASHCTL_* environment variables.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// DASHCTL_DATABASE_PATH, DASHCTL_QUERY_TIMEOUT_SECONDS, ...
	v.SetEnvPrefix("DASHCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// shorter names shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "DASHCTL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DASHCTL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DASHCTL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DASHCTL_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("database.path", "DASHCTL_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind DASHCTL_DB: %w", err)
	}

	return &Manager{viper: v}, nil
}

// SetConfigFile reads path instead of the XDG config file. The file must
// exist.
func (m *Manager) SetConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viper.SetConfigFile(path)
	m.explicitFile = true
}

// Load loads the configuration from file and environment variables. A
// missing default config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.rebuild()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if m.explicitFile || !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// rebuild decodes viper's current view into a validated Config. Must be
// called with m.mu held for write.
func (m *Manager) rebuild() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(), err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	switch strings.ToLower(strings.TrimSpace(config.Output.Format)) {
	case OutputFormatJSON:
		config.Output.Format = OutputFormatJSON
	default:
		config.Output.Format = OutputFormatText
	}

	config.Database.Path = expandHome(strings.TrimSpace(config.Database.Path))
	config.Query.FixturesPath = expandHome(strings.TrimSpace(config.Query.FixturesPath))
	config.Logging.Dir = expandHome(strings.TrimSpace(config.Logging.Dir))
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// Value returns the effective value of a dotted key such as "logging.level".
func (m *Manager) Value(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.viper.IsSet(key) {
		return nil, false
	}
	return m.viper.Get(key), true
}

// Keys lists every known dotted key, sorted.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := m.viper.AllKeys()
	sort.Strings(keys)
	return keys
}

// Set changes one dotted key, validates the result and writes the file.
// An invalid value leaves the configuration unchanged.
func (m *Manager) Set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.knownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	prev := m.viper.Get(key)
	m.viper.Set(key, value)
	if err := m.rebuild(); err != nil {
		m.viper.Set(key, prev)
		return err
	}
	return m.writeLocked(m.config)
}

func (m *Manager) knownKey(key string) bool {
	for _, k := range m.viper.AllKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := m.writeLocked(cfg); err != nil {
		return err
	}
	if m.watching {
		return nil
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	return m.rebuild()
}

func (m *Manager) writeLocked(cfg *Config) error {
	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if m.watching {
		m.skipNextReload = true
	}
	return WriteConfigOrdered(cfg, path)
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and the JSON schema editors use
// to validate the file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := WriteSchemaFile(filepath.Join(filepath.Dir(configFile), schemaName)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.dir", defaults.Logging.Dir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("snapshots.default_expires_hours", defaults.Snapshots.DefaultExpiresHours)
	m.viper.SetDefault("snapshots.purge_on_open", defaults.Snapshots.PurgeOnOpen)

	m.viper.SetDefault("library_panels.cache_size", defaults.LibraryPanels.CacheSize)
	m.viper.SetDefault("library_panels.cache_ttl_seconds", defaults.LibraryPanels.CacheTTLSeconds)

	m.viper.SetDefault("query.fixtures_path", defaults.Query.FixturesPath)
	m.viper.SetDefault("query.timeout_seconds", defaults.Query.TimeoutSeconds)

	m.viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)

	m.viper.SetDefault("output.color", defaults.Output.Color)
	m.viper.SetDefault("output.format", defaults.Output.Format)
}
