package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/banterhq/banter/internal/mock"
)

// DefaultAPIBaseURL is used when the config does not specify a server.
const DefaultAPIBaseURL = "http://localhost:8000"

// Config holds the application configuration
type Config struct {
	APIBaseURL           string `json:"api_base_url,omitempty"`          // Backend server base URL
	AuthToken            string `json:"auth_token,omitempty"`            // Bearer token for the backend API (empty = signed out)
	DefaultMood          string `json:"default_mood,omitempty"`          // Mood used for new messages (e.g., "funny", "precise")
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications when a reply arrives

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".banter"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from a specific path. Primarily for tests.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		APIBaseURL:  DefaultAPIBaseURL,
		DefaultMood: mock.DefaultMood,
		filePath:    path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Fill gaps left by older config files
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.DefaultMood == "" {
		cfg.DefaultMood = mock.DefaultMood
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, err := url.Parse(c.APIBaseURL); err != nil {
		return fmt.Errorf("invalid api_base_url %q: %w", c.APIBaseURL, err)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	// Token lives in this file, keep it out of other users' reach
	return os.WriteFile(c.filePath, data, 0600)
}

// GetAPIBaseURL returns the backend server base URL
func (c *Config) GetAPIBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.APIBaseURL
}

// GetAuthToken returns the stored API token, or empty when signed out
func (c *Config) GetAuthToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthToken
}

// SetAuthToken stores the API token. An empty token signs the user out.
func (c *Config) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.AuthToken = token
}

// IsAuthenticated returns whether a token is present
func (c *Config) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthToken != ""
}

// GetDefaultMood returns the mood used for new messages
func (c *Config) GetDefaultMood() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DefaultMood
}

// SetDefaultMood sets the mood used for new messages
func (c *Config) SetDefaultMood(mood string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DefaultMood = mood
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
