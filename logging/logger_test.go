package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"verbose", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			require.NoError(t, Init(tt.level, false, ""))
			require.Equal(t, tt.want, Logger.GetLevel())
		})
	}
}

func TestInitProductionUsesJSON(t *testing.T) {
	require.NoError(t, Init("info", true, ""))
	_, ok := Logger.Formatter.(*logrus.JSONFormatter)
	require.True(t, ok)
}

func TestInitWritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init("info", false, dir))

	Logger.Info("hello from test")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	require.Contains(t, string(content), "hello from test")
}
