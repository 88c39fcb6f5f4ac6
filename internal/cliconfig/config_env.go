package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SHEAF_*).
// Respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("work-dir", os.Getenv("SHEAF_WORK_DIR"), &cfg.WorkDir)
	s.setString("watch", os.Getenv("SHEAF_WATCH_DIR"), &cfg.WatchDir)
	s.setString("history", os.Getenv("SHEAF_HISTORY_PATH"), &cfg.HistoryPath)

	if err := s.setIntFromString("zip-level", os.Getenv("SHEAF_ZIP_LEVEL"), &cfg.ZipLevel); err != nil {
		return err
	}
	if err := s.setIntFromString("workers", os.Getenv("SHEAF_WORKERS"), &cfg.Workers); err != nil {
		return err
	}

	if err := s.setDuration("settle", os.Getenv("SHEAF_SETTLE_DELAY"), &cfg.SettleDelay); err != nil {
		return err
	}
	if err := s.setDuration("retention", os.Getenv("SHEAF_RETENTION"), &cfg.Retention); err != nil {
		return err
	}
	if err := s.setDuration("sweep-interval", os.Getenv("SHEAF_SWEEP_INTERVAL"), &cfg.SweepInterval); err != nil {
		return err
	}

	s.setBoolFromString("compress", os.Getenv("SHEAF_COMPRESS"), &cfg.Compress)
	s.setBoolFromString("metrics-only", os.Getenv("SHEAF_METRICS_ONLY"), &cfg.MetricsOnly)

	return nil
}
