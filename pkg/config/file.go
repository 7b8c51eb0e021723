package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Profile represents the connection settings for one Langfuse project.
// SecretKey is only populated when the keyring was unavailable or explicitly
// bypassed; otherwise the secret lives in the system keyring.
type Profile struct {
	Host      string `yaml:"host"`
	PublicKey string `yaml:"public-key,omitempty"`
	SecretKey string `yaml:"secret-key,omitempty"`
}

// Config represents the entire configuration file.
type Config struct {
	Profiles       map[string]*Profile `yaml:"profiles"`
	CurrentProfile string              `yaml:"current-profile,omitempty"`
	LogLevel       string              `yaml:"log-level,omitempty"`
	DefaultLimit   int                 `yaml:"default-limit,omitempty"`
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	if envPath := os.Getenv("LFCONFIG"); envPath != "" {
		return envPath, nil
	}
	return filepath.Join(xdg.ConfigHome, "lf", "config.yaml"), nil
}

// LoadConfig loads the configuration from the config file. A missing file is
// not an error; it yields an empty config.
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	info, statErr := os.Stat(configPath)
	if os.IsNotExist(statErr) {
		return &Config{Profiles: make(map[string]*Profile)}, nil
	}
	if statErr != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, statErr)
	}

	// Warn when the file is readable by others; it may hold a secret key.
	mode := info.Mode().Perm()
	if mode&0077 != 0 {
		fmt.Fprintf(os.Stderr, "Warning: Config file %s has permissions %o. Consider changing to 0600 for better security.\n",
			configPath, mode)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}
	return &cfg, nil
}

// SaveConfig saves the configuration to the config file.
func SaveConfig(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(configPath), 0700); mkdirErr != nil {
		return fmt.Errorf("failed to create config directory: %w", mkdirErr)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600: the file may contain a secret key when no keyring is available.
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetCurrentProfile returns the current profile configuration and its name.
// Both are empty when no current profile is set.
func GetCurrentProfile() (*Profile, string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, "", err
	}
	if cfg.CurrentProfile == "" {
		return nil, "", nil
	}
	profile, exists := cfg.Profiles[cfg.CurrentProfile]
	if !exists {
		return nil, "", fmt.Errorf("current profile %q not found", cfg.CurrentProfile)
	}
	return profile, cfg.CurrentProfile, nil
}

// SetProfile adds or updates a profile in the config.
func SetProfile(name string, profile *Profile, makeCurrent bool) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg.Profiles[name] = profile
	if makeCurrent || cfg.CurrentProfile == "" {
		cfg.CurrentProfile = name
	}
	return SaveConfig(cfg)
}

// DeleteProfile removes a profile from the config.
func DeleteProfile(name string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if _, exists := cfg.Profiles[name]; !exists {
		return fmt.Errorf("profile %q not found", name)
	}
	delete(cfg.Profiles, name)

	if cfg.CurrentProfile == name {
		cfg.CurrentProfile = ""
		for profileName := range cfg.Profiles {
			cfg.CurrentProfile = profileName
			break
		}
	}
	return SaveConfig(cfg)
}

// UseProfile switches the current profile.
func UseProfile(name string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if _, exists := cfg.Profiles[name]; !exists {
		return fmt.Errorf("profile %q not found", name)
	}
	cfg.CurrentProfile = name
	return SaveConfig(cfg)
}
