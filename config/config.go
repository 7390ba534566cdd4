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

	// Checklist store and API
	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Realtime  RealtimeConfig

	// Client side (checklistctl)
	Remote RemoteConfig
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

type DatabaseConfig struct {
	Path string // SQLite file, or ":memory:"
}

// AuthConfig maps static bearer tokens to user ids.
type AuthConfig struct {
	Tokens []TokenConfig
}

type TokenConfig struct {
	Token  string
	UserID string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type RealtimeConfig struct {
	ReloadDebounce time.Duration
	FeedBuffer     int
}

type RemoteConfig struct {
	BaseURL     string
	AccessToken string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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

	// Store
	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// Auth: either a YAML list of {token, user_id} or "token:user,token:user" from env
	tokens, err := loadTokens()
	if err != nil {
		return nil, err
	}
	cfg.Auth.Tokens = tokens

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.Realtime.ReloadDebounce = viper.GetDuration("realtime.reload_debounce")
	cfg.Realtime.FeedBuffer = viper.GetInt("realtime.feed_buffer")

	cfg.Remote.BaseURL = strings.TrimRight(viper.GetString("remote.base_url"), "/")
	cfg.Remote.AccessToken = expandEnvVar(viper.GetString("remote.access_token"))

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
	viper.SetDefault("database.path", "checklist.db")
	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("realtime.reload_debounce", "100ms")
	viper.SetDefault("realtime.feed_buffer", 256)
	viper.SetDefault("remote.base_url", "http://localhost:8080")
}

func loadTokens() ([]TokenConfig, error) {
	if !viper.IsSet("auth.tokens") {
		return nil, nil
	}

	var tokens []TokenConfig
	switch raw := viper.Get("auth.tokens").(type) {
	case string:
		for _, pair := range strings.Split(raw, ",") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			token, userID, ok := strings.Cut(pair, ":")
			if !ok || token == "" || userID == "" {
				return nil, fmt.Errorf("invalid auth token entry %q, want token:user_id", pair)
			}
			tokens = append(tokens, TokenConfig{Token: token, UserID: userID})
		}
	case []interface{}:
		for i, t := range raw {
			m, ok := t.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("auth.tokens[%d]: expected a mapping", i)
			}
			tc := TokenConfig{
				Token:  expandEnvVar(getStringFromMap(m, "token")),
				UserID: getStringFromMap(m, "user_id"),
			}
			if tc.Token == "" || tc.UserID == "" {
				return nil, fmt.Errorf("auth.tokens[%d]: token and user_id are required", i)
			}
			tokens = append(tokens, tc)
		}
	default:
		return nil, fmt.Errorf("auth.tokens: unsupported type %T", raw)
	}

	return tokens, nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		if envValue := os.Getenv(value[2 : len(value)-1]); envValue != "" {
			return envValue
		}
	}
	return value
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
