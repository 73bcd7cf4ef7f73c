package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

type Config struct {
	TelegramToken     string
	StatsAPIURL       string // required, see Check
	CommandTimeout    time.Duration
	LogLevel          zerolog.Level
	MetricsAddr       string // empty disables the metrics listener
	RenderConcurrency int
	CooldownBurst     int
	CooldownWindow    time.Duration
}

func Load() (*Config, error) {
	timeout, err := duration("COMMAND_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		level, err = zerolog.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	renders, err := positive("RENDER_CONCURRENCY", 2)
	if err != nil {
		return nil, err
	}
	burst, err := positive("COOLDOWN_BURST", 3)
	if err != nil {
		return nil, err
	}
	window, err := duration("COOLDOWN_WINDOW", 10*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		StatsAPIURL:       os.Getenv("STATS_API_URL"),
		CommandTimeout:    timeout,
		LogLevel:          level,
		MetricsAddr:       os.Getenv("METRICS_ADDR"),
		RenderConcurrency: renders,
		CooldownBurst:     burst,
		CooldownWindow:    window,
	}, nil
}

// Check reports settings every host needs but Load cannot default.
func (c *Config) Check() error {
	if c.StatsAPIURL == "" {
		return fmt.Errorf("STATS_API_URL must be provided")
	}
	return nil
}

func duration(name string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	d, err := cast.ToDurationE(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", name, s)
	}
	return d, nil
}

func positive(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	n, err := cast.ToIntE(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	return n, nil
}
