package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every configuration key when read from the environment.
const envPrefix = "TODO"

// envAliases maps configuration keys to unprefixed variable names that are
// also honored, so existing .env files keep working.
var envAliases = map[string]string{
	"server.port":              "PORT",
	"llm.openai_api_key":       "OPENAI_API_KEY",
	"llm.gemini_api_key":       "GEMINI_API_KEY",
	"notify.slack_webhook_url": "SLACK_WEBHOOK_URL",
}

// Load configuration from a .env file, an optional config file and
// environment variables. Environment variables take precedence over values
// from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, alias := range envAliases {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, alias); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", alias, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3007)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.static_dir", "")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("llm.provider", ProviderOpenAI)
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.openai_base_url", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.timeout_seconds", 30)

	v.SetDefault("notify.slack_webhook_url", "")
	v.SetDefault("notify.timeout_seconds", 10)
}

// loadDotEnv loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
