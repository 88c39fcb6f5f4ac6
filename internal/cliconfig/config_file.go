package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	WorkDir       string `toml:"work_dir"`
	Compress      *bool  `toml:"compress"`
	ZipLevel      int    `toml:"zip_level"`
	Workers       int    `toml:"workers"`
	WatchDir      string `toml:"watch_dir"`
	SettleDelay   string `toml:"settle_delay"`
	HistoryPath   string `toml:"history_path"`
	Retention     string `toml:"retention"`
	SweepInterval string `toml:"sweep_interval"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.sheaf/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".sheaf", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("work-dir", fc.WorkDir, &cfg.WorkDir)
	s.setString("watch", fc.WatchDir, &cfg.WatchDir)
	s.setString("history", fc.HistoryPath, &cfg.HistoryPath)

	s.setInt("zip-level", fc.ZipLevel, &cfg.ZipLevel)
	s.setInt("workers", fc.Workers, &cfg.Workers)

	if err := s.setDuration("settle", fc.SettleDelay, &cfg.SettleDelay); err != nil {
		return err
	}
	if err := s.setDuration("retention", fc.Retention, &cfg.Retention); err != nil {
		return err
	}
	if err := s.setDuration("sweep-interval", fc.SweepInterval, &cfg.SweepInterval); err != nil {
		return err
	}

	s.setBool("compress", fc.Compress, &cfg.Compress)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
