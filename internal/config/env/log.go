package env

import (
	"fmt"
	"os"
	"spin_wheel/internal/config"
	"strconv"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logModeEnvName  = "LOG_MODE"
	logDirEnvName   = "LOG_DIR"
	logFileEnvName  = "LOG_FILE"
)

type logConfig struct {
	level string
	mode  string
	dir   string
	file  bool
}

func NewLogConfig() (config.LogConfig, error) {
	cfg := &logConfig{
		level: os.Getenv(logLevelEnvName),
		mode:  os.Getenv(logModeEnvName),
		dir:   os.Getenv(logDirEnvName),
	}
	if cfg.level == "" {
		cfg.level = "info"
	}
	if cfg.mode == "" {
		cfg.mode = "dev"
	}
	if cfg.mode != "dev" && cfg.mode != "prod" {
		return nil, fmt.Errorf("invalid log mode %q", cfg.mode)
	}
	if cfg.dir == "" {
		cfg.dir = "logs"
	}

	if raw := os.Getenv(logFileEnvName); raw != "" {
		file, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", logFileEnvName, err)
		}
		cfg.file = file
	}

	return cfg, nil
}

func (l *logConfig) Level() string { return l.level }
func (l *logConfig) Mode() string  { return l.mode }
func (l *logConfig) Dir() string   { return l.dir }
func (l *logConfig) File() bool    { return l.file }
