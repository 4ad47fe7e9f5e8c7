package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "paper"
	DefaultConfigName = "paper-gallery"
	DefaultDBName     = "paper-gallery.db"
	DefaultLogName    = "paper-gallery.log"
	EnvPrefix         = "paper"

	defaultFPS          = 60
	defaultHistoryLimit = 250
)

type Config struct {
	Theme    string `mapstructure:"theme"`
	FPS      int    `mapstructure:"fps"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	// MouseEnabled turns terminal mouse tracking on. Without it the kit is
	// keyboard only; ink surfaces still animate from key presses.
	MouseEnabled bool   `mapstructure:"mouse_enabled"`
	DBPath       string `mapstructure:"db_path"`
	// HistoryEnabled persists every posted notification to the local store so
	// the history subcommand can show it later.
	HistoryEnabled bool `mapstructure:"history_enabled"`
	HistoryLimit   int  `mapstructure:"history_limit"`
	ToastTimeoutMs int  `mapstructure:"toast_timeout_ms"`
	ToastFadeMs    int  `mapstructure:"toast_fade_ms"`
}

// Level maps the configured log level onto slog. Unknown values fall back to
// info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ToastTimeout returns the configured display window for posted messages.
func (c Config) ToastTimeout() time.Duration {
	return time.Duration(c.ToastTimeoutMs) * time.Millisecond
}

// ToastFade returns the configured fade window for posted messages.
func (c Config) ToastFade() time.Duration {
	return time.Duration(c.ToastFadeMs) * time.Millisecond
}

// Path resolves name to a file under this apps $XDG_CONFIG_HOME directory.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LogPath returns where LoggerInit writes, which is also what the activity
// log page tails.
func LogPath() string {
	return path.Join(xdg.ConfigHome, ConfigDirName, DefaultLogName)
}

// LoggerInit points the global slog handler at a log file, since stdout is not
// usable once the ui owns the terminal.
func LoggerInit(name string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, name))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
