package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Community platform specifics
	Assistant AssistantConfig
	Upload    UploadConfig

	// Generative backend abstraction
	Generative GenerativeConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig controls the FAQ responder surface.
type AssistantConfig struct {
	RateLimitPerMin int
}

// UploadConfig bounds the CSV upload panel.
type UploadConfig struct {
	MaxSizeBytes  int64
	StoreCapacity int // LRU capacity of the in-memory dataset store
	PreviewRows   int
}

// GenerativeConfig holds configuration for the generative backend chain.
// An empty provider list is valid: the assistant runs rule-based only.
type GenerativeConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single generative provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
	Model    string `yaml:"model"`
}

// Enabled reports whether any provider is configured and enabled.
func (g GenerativeConfig) Enabled() bool {
	for _, p := range g.Providers {
		if p.Enabled {
			return true
		}
	}
	return false
}

// RetryDelayDuration parses RetryDelay with a 1s default.
func (g GenerativeConfig) RetryDelayDuration() time.Duration {
	d, err := time.ParseDuration(g.RetryDelay)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// MaxTotalTimeoutDuration parses MaxTotalTimeout with a 30s default.
func (g GenerativeConfig) MaxTotalTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(g.MaxTotalTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant
	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")

	// Upload
	cfg.Upload.MaxSizeBytes = viper.GetInt64("upload.max_size_bytes")
	cfg.Upload.StoreCapacity = viper.GetInt("upload.store_capacity")
	cfg.Upload.PreviewRows = viper.GetInt("upload.preview_rows")

	// Generative backend chain
	cfg.Generative.FallbackEnabled = viper.GetBool("generative.fallback_enabled")
	cfg.Generative.RetryAttempts = viper.GetInt("generative.retry_attempts")
	cfg.Generative.RetryDelay = viper.GetString("generative.retry_delay")
	cfg.Generative.MaxTotalTimeout = viper.GetString("generative.max_total_timeout")

	if viper.IsSet("generative.providers") {
		providersRaw := viper.Get("generative.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
					}
					cfg.Generative.Providers = append(cfg.Generative.Providers, provider)
				}
			}
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("assistant.rate_limit_per_min", 60)

	viper.SetDefault("upload.max_size_bytes", 5*1024*1024)
	viper.SetDefault("upload.store_capacity", 32)
	viper.SetDefault("upload.preview_rows", 10)

	viper.SetDefault("generative.fallback_enabled", true)
	viper.SetDefault("generative.retry_attempts", 1)
	viper.SetDefault("generative.retry_delay", "1s")
	viper.SetDefault("generative.max_total_timeout", "30s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
