package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnviron_Defaults(t *testing.T) {
	for _, key := range []string{
		"TURBOMATE_LOG_FILE", "TURBOMATE_LOG_LEVEL", "TURBOMATE_DETAILED",
		"TURBOMATE_ALT_SCREEN", "TURBOMATE_USER_LABEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := FromEnviron()
	require.NoError(t, err)
	require.Equal(t, Config{
		LogFile:   "/tmp/turbomate.log",
		LogLevel:  "INFO",
		Detailed:  false,
		AltScreen: true,
		UserLabel: "AD",
	}, cfg)
	require.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestFromEnviron_Overrides(t *testing.T) {
	t.Setenv("TURBOMATE_LOG_FILE", "/var/log/tm.log")
	t.Setenv("TURBOMATE_LOG_LEVEL", " debug ")
	t.Setenv("TURBOMATE_DETAILED", "true")
	t.Setenv("TURBOMATE_ALT_SCREEN", "false")
	t.Setenv("TURBOMATE_USER_LABEL", "JD")

	cfg, err := FromEnviron()
	require.NoError(t, err)
	require.Equal(t, "/var/log/tm.log", cfg.LogFile)
	require.Equal(t, "DEBUG", cfg.LogLevel)
	require.True(t, cfg.Detailed)
	require.False(t, cfg.AltScreen)
	require.Equal(t, "JD", cfg.UserLabel)
	require.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestFromEnviron_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown level", "TURBOMATE_LOG_LEVEL", "VERBOSE"},
		{"label too long", "TURBOMATE_USER_LABEL", "ABC"},
		{"label too short", "TURBOMATE_USER_LABEL", "A"},
		{"not a bool", "TURBOMATE_DETAILED", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnviron()
			require.Error(t, err)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseLogLevel(tt.in), tt.in)
	}
}

func TestNewFanoutLogger(t *testing.T) {
	var console, file bytes.Buffer
	log := newFanoutLogger(&console, &file, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("message rendered", "sender", "user")

	require.Contains(t, console.String(), "msg=\"message rendered\"")
	require.NotContains(t, console.String(), "hidden")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(file.String())), &record))
	require.Equal(t, "message rendered", record["msg"])
	require.Equal(t, "user", record["sender"])
}

func TestSetupLogger_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turbomate.log")
	var console bytes.Buffer

	log, cleanup := SetupLogger(path, slog.LevelDebug, &console)
	log.Debug("reply scheduled", "delay", "800ms")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"reply scheduled"`)
	require.Contains(t, console.String(), "reply scheduled")
}

func TestSetupLogger_FallsBackToConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "turbomate.log")
	var console bytes.Buffer

	log, cleanup := SetupLogger(path, slog.LevelInfo, &console)
	require.NoError(t, cleanup())
	log.Info("still logging")

	require.Contains(t, console.String(), "failed to open log file")
	require.Contains(t, console.String(), "still logging")
}
