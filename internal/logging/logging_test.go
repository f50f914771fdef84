package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"iris-predictor-service/internal/config"
)

func TestConfigure_LevelAndFormat(t *testing.T) {
	logger := log.New()
	Configure(logger, config.LoggerConfig{Level: "debug", Format: "json"})

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, logger.Formatter)
}

func TestConfigure_Fallbacks(t *testing.T) {
	logger := log.New()
	Configure(logger, config.LoggerConfig{Level: "chatty", Format: "text"})

	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, logger.Formatter)
}

func TestConfigure_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iris.log")
	logger := log.New()
	Configure(logger, config.LoggerConfig{
		Level:      "info",
		Format:     "json",
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	})
	t.Cleanup(func() {
		if out, ok := logger.Out.(*lumberjack.Logger); ok {
			_ = out.Close()
		}
	})

	logger.WithField("component", "IrisPredictor").Info("Starting: IrisPredictor")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"Starting: IrisPredictor"`)
	assert.Contains(t, string(raw), `"component":"IrisPredictor"`)
}
