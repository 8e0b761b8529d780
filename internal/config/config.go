// Package config loads the buffer pool's runtime configuration: pool
// capacity, replacement policy selector, and the on-disk location of the
// page store. The two-argument BufferManager constructor is the actual
// configuration surface (spec-mandated); this package turns a YAML file
// into those two arguments plus the store's path.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the top-level configuration document.
type Config struct {
	BufferPool struct {
		Capacity int    `mapstructure:"capacity"`
		Policy   string `mapstructure:"policy"`
		PageSize int    `mapstructure:"page_size"`
	} `mapstructure:"buffer_pool"`

	PageStore struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"pagestore"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("buffer_pool.capacity", 64)
	v.SetDefault("buffer_pool.policy", "LRU")
	v.SetDefault("buffer_pool.page_size", 8192)
	v.SetDefault("pagestore.path", "./data/pages.db")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}

	return &cfg, nil
}
