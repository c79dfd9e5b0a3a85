package config

import (
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/grafana/grafana-sub060/internal/logging"
)

// Watch follows the config file and rebuilds the config whenever it
// changes. Calling it again is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.handleFileEvent)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	log := logging.NewFromEnv().With().Str("file", e.Name).Logger()

	m.mu.Lock()
	if m.skipNextReload {
		// written by Save: the config is current, viper only needs to catch up
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("config resync after save failed")
		}
	} else if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("config reload rejected, keeping previous settings")
		return
	}
	cfg := m.config
	listeners := slices.Clone(m.callbacks)
	m.mu.Unlock()

	log.Debug().Str("op", e.Op.String()).Int("listeners", len(listeners)).Msg("config reloaded")
	for _, fn := range listeners {
		fn(cfg)
	}
}

// OnConfigChange registers fn to run with the new config after each reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, fn)
	m.mu.Unlock()
}

// reload re-reads the file. m.mu must be held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	return m.rebuild()
}
