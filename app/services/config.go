package services

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"smart-stock-insider/pkg/fsutil"
)

// ConfigService manages persisted application preferences.
type ConfigService struct {
	configPath string
	logger     *log.Logger
	config     *Config
}

// Config represents the persisted preferences.
type Config struct {
	DataServiceURL   string `json:"dataServiceUrl"`
	Theme            string `json:"theme"`
	AutoCheckUpdates bool   `json:"autoCheckUpdates"`
	LastLogPath      string `json:"lastLogPath"`
}

// NewConfigService creates a ConfigService storing its file under the app
// data directory.
func NewConfigService(logger *log.Logger) (*ConfigService, error) {
	dataDir, err := fsutil.AppDataDir()
	if err != nil {
		return nil, err
	}
	return newConfigService(filepath.Join(dataDir, "config.json"), logger)
}

func newConfigService(configPath string, logger *log.Logger) (*ConfigService, error) {
	service := &ConfigService{
		configPath: configPath,
		logger:     logger,
		config: &Config{
			Theme:            "dark",
			AutoCheckUpdates: true,
		},
	}

	// Load existing config if it exists
	if err := service.Load(); err != nil {
		logger.Printf("[ConfigService] Failed to load config: %v", err)
		// Continue with default config
	}

	return service, nil
}

// Load loads the configuration from disk. A missing file leaves the
// defaults in place.
func (s *ConfigService) Load() error {
	s.logger.Printf("[ConfigService] Load: Loading config from %s", s.configPath)

	data, err := fsutil.ReadFromFile(s.configPath)
	if err != nil {
		if fsutil.IsNotExist(err) {
			s.logger.Printf("[ConfigService] Load: Config file does not exist, using defaults")
			return nil
		}
		return err
	}

	var config Config
	if err := json.Unmarshal([]byte(data), &config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	s.config = &config
	s.logger.Printf("[ConfigService] Load: Config loaded: theme=%s, dataServiceUrl=%s", config.Theme, config.DataServiceURL)
	return nil
}

// Save saves the configuration to disk.
func (s *ConfigService) Save() error {
	s.logger.Printf("[ConfigService] Save: Saving config to %s", s.configPath)

	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fsutil.WriteToFile(s.configPath, string(data)); err != nil {
		return err
	}

	s.logger.Printf("[ConfigService] Save: Config saved successfully")
	return nil
}

// GetConfig returns the current configuration.
func (s *ConfigService) GetConfig() Config {
	if s.config == nil {
		return Config{}
	}
	return *s.config
}

// SetTheme sets the UI theme and saves the config.
func (s *ConfigService) SetTheme(theme string) error {
	s.logger.Printf("[ConfigService] SetTheme: theme=%s", theme)
	s.config.Theme = theme
	return s.Save()
}

// SetDataServiceURL sets the backend data service URL and saves the config.
func (s *ConfigService) SetDataServiceURL(url string) error {
	s.logger.Printf("[ConfigService] SetDataServiceURL: url=%s", url)
	s.config.DataServiceURL = url
	return s.Save()
}

// SetAutoCheckUpdates toggles the automatic update check and saves the
// config.
func (s *ConfigService) SetAutoCheckUpdates(enabled bool) error {
	s.logger.Printf("[ConfigService] SetAutoCheckUpdates: enabled=%v", enabled)
	s.config.AutoCheckUpdates = enabled
	return s.Save()
}
