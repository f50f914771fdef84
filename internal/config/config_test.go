package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/predict", cfg.Server.PredictRoute)
	assert.Equal(t, "models/iris_knn.json", cfg.Model.Path)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Empty(t, cfg.Logger.File)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("PREDICT_ROUTE", "/v1/iris/predict")
	t.Setenv("MODEL_PATH", "/srv/models/knn.json")
	t.Setenv("LOGGER_FORMAT", "text")
	t.Setenv("LOGGER_FILE", "/var/log/iris.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/v1/iris/predict", cfg.Server.PredictRoute)
	assert.Equal(t, "/srv/models/knn.json", cfg.Model.Path)
	assert.Equal(t, "text", cfg.Logger.Format)
	assert.Equal(t, "/var/log/iris.log", cfg.Logger.File)
}

func TestLoad_BadShutdownTimeoutFallsBack(t *testing.T) {
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port too large", "SERVER_PORT", "70000"},
		{"route without slash", "PREDICT_ROUTE", "predict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
