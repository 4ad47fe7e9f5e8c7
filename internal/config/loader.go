package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

func NewLoader(changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("theme", "dark")
	loader.SetDefault("fps", defaultFPS)
	loader.SetDefault("debug", false)
	loader.SetDefault("log_level", "info")
	loader.SetDefault("mouse_enabled", true)
	loader.SetDefault("db_path", Path(DefaultDBName))
	loader.SetDefault("history_enabled", true)
	loader.SetDefault("history_limit", defaultHistoryLimit)
	loader.SetDefault("toast_timeout_ms", 2750)
	loader.SetDefault("toast_fade_ms", 250)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()

	return &loader
}

// Watch starts rebroadcasting file changes onto the changes channel. Callers
// that pin a config file with SetConfigFile must do so before watching.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

func (cl *Loader) Write(config Config) error {
	cl.Set("theme", config.Theme)
	cl.Set("fps", config.FPS)
	cl.Set("debug", config.Debug)
	cl.Set("log_level", config.LogLevel)
	cl.Set("mouse_enabled", config.MouseEnabled)
	cl.Set("db_path", config.DBPath)
	cl.Set("history_enabled", config.HistoryEnabled)
	cl.Set("history_limit", config.HistoryLimit)
	cl.Set("toast_timeout_ms", config.ToastTimeoutMs)
	cl.Set("toast_fade_ms", config.ToastFadeMs)

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if config.FPS <= 0 {
		config.FPS = defaultFPS
	}

	if config.HistoryLimit <= 0 {
		config.HistoryLimit = defaultHistoryLimit
	}

	return config, nil
}
