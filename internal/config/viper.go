package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"rkatz/portfolio-parser/internal/models"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Redis struct {
		URL           string `mapstructure:"url" yaml:"url"`
		StreamKey     string `mapstructure:"stream_key" yaml:"stream_key"`
		ConsumerGroup string `mapstructure:"consumer_group" yaml:"consumer_group"`
		ConsumerName  string `mapstructure:"consumer_name" yaml:"consumer_name"`
		BlockTimeMs   int    `mapstructure:"block_time_ms" yaml:"block_time_ms"`
		MessageCount  int    `mapstructure:"message_count" yaml:"message_count"`
	} `mapstructure:"redis" yaml:"redis"`

	Columns struct {
		Date            int `mapstructure:"date" yaml:"date"`
		Symbol          int `mapstructure:"symbol" yaml:"symbol"`
		Quantity        int `mapstructure:"quantity" yaml:"quantity"`
		UnitPrice       int `mapstructure:"unit_price" yaml:"unit_price"`
		Currency        int `mapstructure:"currency" yaml:"currency"`
		TransactionFee  int `mapstructure:"transaction_fee" yaml:"transaction_fee"`
		ProceedsForeign int `mapstructure:"proceeds_foreign" yaml:"proceeds_foreign"`
		ProceedsLocal   int `mapstructure:"proceeds_local" yaml:"proceeds_local"`
	} `mapstructure:"columns" yaml:"columns"`

	Categorizer struct {
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"categorizer" yaml:"categorizer"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then environment variables with the
// PORTFOLIO prefix.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.portfolio-parser")
	v.AddConfigPath(".portfolio-parser")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PORTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The worker historically read its Redis settings from bare env vars;
	// keep those bindings for compatibility with existing deployments.
	for key, env := range map[string]string{
		"redis.url":            "REDIS_URL",
		"redis.stream_key":     "REDIS_STREAM_KEY",
		"redis.consumer_group": "CONSUMER_GROUP",
		"redis.consumer_name":  "CONSUMER_NAME",
	} {
		if err := v.BindEnv(key, env); err != nil {
			fmt.Printf("Warning: failed to bind %s environment variable: %v\n", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("redis.url", "redis://localhost:6379")
	v.SetDefault("redis.stream_key", "portfolio:jobs")
	v.SetDefault("redis.consumer_group", "portfolio-workers")
	v.SetDefault("redis.consumer_name", "")
	v.SetDefault("redis.block_time_ms", 1000)
	v.SetDefault("redis.message_count", 10)

	columns := models.DefaultColumnMap()
	v.SetDefault("columns.date", columns.Date)
	v.SetDefault("columns.symbol", columns.Symbol)
	v.SetDefault("columns.quantity", columns.Quantity)
	v.SetDefault("columns.unit_price", columns.UnitPrice)
	v.SetDefault("columns.currency", columns.Currency)
	v.SetDefault("columns.transaction_fee", columns.TransactionFee)
	v.SetDefault("columns.proceeds_foreign", columns.ProceedsForeign)
	v.SetDefault("columns.proceeds_local", columns.ProceedsLocal)

	v.SetDefault("categorizer.rules_file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if !strings.HasPrefix(config.Redis.URL, "redis://") && !strings.HasPrefix(config.Redis.URL, "rediss://") {
		return fmt.Errorf("invalid Redis URL format: %s", config.Redis.URL)
	}

	if config.Redis.BlockTimeMs < 0 {
		return fmt.Errorf("redis.block_time_ms must be non-negative, got: %d", config.Redis.BlockTimeMs)
	}

	if config.Redis.MessageCount < 1 {
		return fmt.Errorf("redis.message_count must be at least 1, got: %d", config.Redis.MessageCount)
	}

	for name, idx := range map[string]int{
		"columns.date":             config.Columns.Date,
		"columns.symbol":           config.Columns.Symbol,
		"columns.quantity":         config.Columns.Quantity,
		"columns.unit_price":       config.Columns.UnitPrice,
		"columns.currency":         config.Columns.Currency,
		"columns.transaction_fee":  config.Columns.TransactionFee,
		"columns.proceeds_foreign": config.Columns.ProceedsForeign,
		"columns.proceeds_local":   config.Columns.ProceedsLocal,
	} {
		if idx < 0 {
			return fmt.Errorf("%s must be non-negative, got: %d", name, idx)
		}
	}

	return nil
}

// ColumnMap converts the configured column indices into the transformer's
// column map.
func (c *Config) ColumnMap() models.ColumnMap {
	return models.ColumnMap{
		Date:            c.Columns.Date,
		Symbol:          c.Columns.Symbol,
		Quantity:        c.Columns.Quantity,
		UnitPrice:       c.Columns.UnitPrice,
		Currency:        c.Columns.Currency,
		TransactionFee:  c.Columns.TransactionFee,
		ProceedsForeign: c.Columns.ProceedsForeign,
		ProceedsLocal:   c.Columns.ProceedsLocal,
	}
}

// ConfigureLoggingFromConfig configures a logrus logger based on the Config
// struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
