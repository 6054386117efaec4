package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var ErrInvalidPageSize = errors.New("page size must be at least 1")

// Config holds runtime settings for the postdesk CLI.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	PageSize            int
	SuccessMessageTTL   time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with the values the demo API expects.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://jsonplaceholder.typicode.com"
	c.RequestTimeout = 10 * time.Second
	c.PageSize = 10
	c.SuccessMessageTTL = 3 * time.Second
	c.OnlineCheckInterval = 15 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if any) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)

	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// Validate reports settings no source may produce.
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, c.PageSize)
	}
	return nil
}
