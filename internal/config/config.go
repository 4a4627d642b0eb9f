package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Quota   QuotaConfig   `mapstructure:"quota"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type BackendConfig struct {
	// URL is an explicit base-URL override; it wins over everything else.
	URL string `mapstructure:"url"`
	// Origin is the deployment origin used when no override is set. When
	// both are empty the client falls back to the local-development default.
	Origin string `mapstructure:"origin"`
}

type UploadConfig struct {
	MaxFileSizeMB int `mapstructure:"max_file_size_mb" validate:"min=1"`
}

func (c UploadConfig) MaxBytes() int64 {
	return int64(c.MaxFileSizeMB) << 20
}

type QuotaConfig struct {
	// DocumentLimit is the session upload quota, fixed at workspace start.
	DocumentLimit int `mapstructure:"document_limit"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	// File receives log output while the TUI owns the terminal. Empty means
	// stderr.
	File string `mapstructure:"file"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Backend
	v.SetDefault("backend.url", "")
	v.SetDefault("backend.origin", "")

	// Upload
	v.SetDefault("upload.max_file_size_mb", 50)

	// Quota
	v.SetDefault("quota.document_limit", 5)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "doculens.log")
}

func bindEnvVars(v *viper.Viper) {
	// Backend
	v.BindEnv("backend.url", "DOCULENS_API_URL")
	v.BindEnv("backend.origin", "DOCULENS_ORIGIN")

	// Upload
	v.BindEnv("upload.max_file_size_mb", "DOCULENS_MAX_FILE_SIZE_MB")

	// Quota
	v.BindEnv("quota.document_limit", "DOCULENS_DOCUMENT_LIMIT")

	// Logging
	v.BindEnv("logging.level", "DOCULENS_LOG_LEVEL")
	v.BindEnv("logging.file", "DOCULENS_LOG_FILE")
}
