package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLevelMapping(t *testing.T) {
	type tc struct {
		value string
		level slog.Level
	}

	cases := []tc{
		{value: "debug", level: slog.LevelDebug},
		{value: "info", level: slog.LevelInfo},
		{value: "WARN", level: slog.LevelWarn},
		{value: "error", level: slog.LevelError},
		{value: "bogus", level: slog.LevelInfo},
		{value: "", level: slog.LevelInfo},
	}

	for _, testCase := range cases {
		require.Equal(t, testCase.level, Config{LogLevel: testCase.value}.Level(), testCase.value)
	}
}

func TestReadMergesFileOverDefaults(t *testing.T) {
	loader := NewLoader(make(chan Config, 1))

	cfgPath := filepath.Join(t.TempDir(), DefaultConfigName+".yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("fps: 30\nlog_level: debug\n"), 0o600))
	loader.SetConfigFile(cfgPath)

	cfg, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, 30, cfg.FPS)
	require.Equal(t, slog.LevelDebug, cfg.Level())

	// Everything not in the file keeps its default.
	require.True(t, cfg.HistoryEnabled)
	require.True(t, cfg.MouseEnabled)
	require.Equal(t, defaultHistoryLimit, cfg.HistoryLimit)
	require.Equal(t, 2750*time.Millisecond, cfg.ToastTimeout())
	require.Equal(t, 250*time.Millisecond, cfg.ToastFade())
}

func TestReadClampsNonsenseValues(t *testing.T) {
	loader := NewLoader(make(chan Config, 1))

	cfgPath := filepath.Join(t.TempDir(), DefaultConfigName+".yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("fps: -5\nhistory_limit: 0\n"), 0o600))
	loader.SetConfigFile(cfgPath)

	cfg, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, defaultFPS, cfg.FPS)
	require.Equal(t, defaultHistoryLimit, cfg.HistoryLimit)
}

func TestWriteRoundTrip(t *testing.T) {
	loader := NewLoader(make(chan Config, 1))

	cfgPath := filepath.Join(t.TempDir(), DefaultConfigName+".yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o600))
	loader.SetConfigFile(cfgPath)

	cfg, err := loader.Read()
	require.NoError(t, err)

	cfg.FPS = 90
	cfg.LogLevel = "warn"
	require.NoError(t, loader.Write(cfg))

	again, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, 90, again.FPS)
	require.Equal(t, slog.LevelWarn, again.Level())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PAPER_FPS", "120")

	loader := NewLoader(make(chan Config, 1))

	cfgPath := filepath.Join(t.TempDir(), DefaultConfigName+".yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o600))
	loader.SetConfigFile(cfgPath)

	cfg, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, 120, cfg.FPS)
}
