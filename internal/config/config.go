package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultDataDir   = "~/.promocast"
	defaultOutputDir = "/tmp/promocast"
	maxDuration      = 60
	databaseFilename = "promocast.sqlite"
	logFilename      = "promocast.log"
)

// AppConfig holds application configuration
type AppConfig struct {
	DataDir         string        `env:"PROMOCAST_DATA_DIR" envDefault:"~/.promocast"`
	DBPath          string        `env:"PROMOCAST_DB_PATH"`
	OutputDir       string        `env:"PROMOCAST_OUTPUT_DIR" envDefault:"/tmp/promocast"`
	DefaultDuration int           `env:"PROMOCAST_DEFAULT_DURATION" envDefault:"5"`
	TickInterval    time.Duration `env:"PROMOCAST_TICK_INTERVAL" envDefault:"100ms"`
	EntranceDelay   time.Duration `env:"PROMOCAST_ENTRANCE_DELAY" envDefault:"300ms"`
	TransitionDelay time.Duration `env:"PROMOCAST_TRANSITION_DELAY" envDefault:"500ms"`
	Inhibit         bool          `env:"PROMOCAST_INHIBIT_SCREENSAVER" envDefault:"true"`
	LogFile         string        `env:"PROMOCAST_LOG_FILE"`
	LogLevel        string        `env:"PROMOCAST_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and fills in derived paths
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *AppConfig) normalize() {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir
	}
	c.DataDir = expandPath(c.DataDir)

	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, databaseFilename)
	}
	c.DBPath = expandPath(c.DBPath)

	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
	c.OutputDir = expandPath(c.OutputDir)

	if c.LogFile != "" {
		c.LogFile = expandPath(c.LogFile)
	}

	c.DefaultDuration = ClampDuration(c.DefaultDuration)
	if c.TickInterval <= 0 {
		c.TickInterval = 100 * time.Millisecond
	}
	if c.EntranceDelay < 0 {
		c.EntranceDelay = 0
	}
	if c.TransitionDelay < 0 {
		c.TransitionDelay = 0
	}
}

// ClampDuration keeps a slide duration within 1..60 seconds
func ClampDuration(seconds int) int {
	if seconds < 1 {
		return 1
	}
	if seconds > maxDuration {
		return maxDuration
	}
	return seconds
}

// expandPath resolves environment variables and a leading ~
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// InteractiveLogFile returns where logs go while the terminal UI owns the screen
func (c *AppConfig) InteractiveLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, logFilename)
}

// GetOutputDir returns the directory for composed frames
func (c *AppConfig) GetOutputDir() string {
	return c.OutputDir
}

// GetDefaultDuration returns the per-slide duration in seconds
func (c *AppConfig) GetDefaultDuration() int {
	return c.DefaultDuration
}

// GetTickInterval returns the clock period
func (c *AppConfig) GetTickInterval() time.Duration {
	return c.TickInterval
}

// GetEntranceDelay returns the grace window before the first slide shows
func (c *AppConfig) GetEntranceDelay() time.Duration {
	return c.EntranceDelay
}

// GetTransitionDelay returns the hide window between slides
func (c *AppConfig) GetTransitionDelay() time.Duration {
	return c.TransitionDelay
}

// InhibitScreensaver reports whether playback keeps the screen awake
func (c *AppConfig) InhibitScreensaver() bool {
	return c.Inhibit
}
