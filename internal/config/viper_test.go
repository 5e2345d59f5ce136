package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkatz/portfolio-parser/internal/models"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
	assert.Equal(t, "portfolio:jobs", cfg.Redis.StreamKey)
	assert.Equal(t, "portfolio-workers", cfg.Redis.ConsumerGroup)
	assert.Equal(t, 1000, cfg.Redis.BlockTimeMs)
	assert.Equal(t, 10, cfg.Redis.MessageCount)
	assert.Equal(t, models.DefaultColumnMap(), cfg.ColumnMap())
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")
	t.Setenv("REDIS_URL", "redis://queue.internal:6379")
	t.Setenv("CONSUMER_GROUP", "staging-workers")

	cfg, err := InitializeConfig()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "redis://queue.internal:6379", cfg.Redis.URL)
	assert.Equal(t, "staging-workers", cfg.Redis.ConsumerGroup)
}

func TestInitializeConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Bad log level", "PORTFOLIO_LOG_LEVEL", "verbose"},
		{"Bad log format", "PORTFOLIO_LOG_FORMAT", "xml"},
		{"Bad Redis URL", "REDIS_URL", "localhost:6379"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&cfg)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "nonsense"
	cfg.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(&cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestConfigureLogging_EnvDriven(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
