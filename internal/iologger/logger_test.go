package iologger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/pkg/config"
	"github.com/gnames/squadcheck/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	tests := []struct {
		msg    string
		cfg    config.LogConfig
		want   []string
		absent []string
	}{
		{
			msg:  "json",
			cfg:  config.LogConfig{Format: "json", Level: "info"},
			want: []string{`"msg":"Check passed"`, `"check":"valid_positions"`},
		},
		{
			msg:  "text",
			cfg:  config.LogConfig{Format: "text", Level: "info"},
			want: []string{`msg="Check passed"`, "check=valid_positions"},
		},
		{
			msg:    "tint without colors in a buffer",
			cfg:    config.LogConfig{Format: "tint", Level: "info"},
			want:   []string{"Check passed", "check=valid_positions"},
			absent: []string{"\x1b["},
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(NewHandler(&buf, tt.cfg))
			log.Info("Check passed", "check", "valid_positions")
			for _, v := range tt.want {
				assert.Contains(t, buf.String(), v)
			}
			for _, v := range tt.absent {
				assert.NotContains(t, buf.String(), v)
			}
		})
	}
}

func TestNewHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, config.LogConfig{Format: "json", Level: "warn"}))
	log.Info("hidden")
	log.Warn("shown")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestInit_File(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	require.NoError(t, Init(dir, cfg))
	slog.Info("Starting integrity checks", "checks", 17)

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Starting integrity checks")
}

func TestInit_Error(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	err := Init(dir, cfg)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
	assert.Equal(t, filepath.Join(dir, LogFile), gnErr.Vars[0])
}
