package watcher

import "time"

type WatcherConfig struct {
	Enabled        bool          `yaml:"enabled" json:"enabled"`
	DebounceWindow time.Duration `yaml:"debounce_window" json:"debounce_window"`
	MaxBatchSize   int           `yaml:"max_batch_size" json:"max_batch_size"`
	IgnorePatterns []string      `yaml:"ignore_patterns" json:"ignore_patterns"`
}

func DefaultWatcherConfig() WatcherConfig {
	return WatcherConfig{
		Enabled:        true,
		DebounceWindow: 300 * time.Millisecond,
		MaxBatchSize:   50,
		IgnorePatterns: []string{
			"**/.git/**",
			"**/node_modules/**",
			"**/*.log",
			"**/*.swp",
			"**/*~",
		},
	}
}
