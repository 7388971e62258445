package config

// Config holds the persisted application preferences.
type Config struct {
	Version       int  `yaml:"version"`
	LaunchAtLogin bool `yaml:"launch_at_login"`
}

// DefaultConfig returns the configuration used on first launch.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
	}
}
