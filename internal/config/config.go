package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PickerDefaults are the picker settings used when the command line
// leaves them unset.
type PickerDefaults struct {
	Mode    string  `yaml:"mode"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Wrap    bool    `yaml:"wrap"`
	Haptics bool    `yaml:"haptics"`
}

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
	Picker      PickerDefaults `yaml:"picker"`
}

// loadThemeFile loads and merges theme from the SPINDLE_THEME_FILE
// environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("SPINDLE_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := defaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

func defaultConfig() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: defaultScheme(),
		Picker:      defaultPicker(),
	}
}

func defaultPicker() PickerDefaults {
	return PickerDefaults{
		Mode:    "time",
		Min:     0,
		Max:     10,
		Step:    1,
		Wrap:    true,
		Haptics: false,
	}
}

// applyDefaults fills in any missing values with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Picker.Mode == "" {
		c.Picker.Mode = defaultPicker().Mode
	}
	if c.Picker.Step <= 0 {
		c.Picker.Step = defaultPicker().Step
	}
	if c.Picker.Max <= c.Picker.Min {
		c.Picker.Max = defaultPicker().Max
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "spindle", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "spindle", "config.yaml"), nil
}
