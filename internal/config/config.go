package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Notify NotifyConfig `mapstructure:"notify"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// StaticDir, when set, is served as a single-page UI at the root path.
	StaticDir string `mapstructure:"static_dir"`

	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LLM provider names
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// LLMConfig contains all LLM integration related settings.
// An empty API key for the selected provider leaves text generation
// unconfigured; this is a supported mode, not an error.
type LLMConfig struct {
	Provider       string `mapstructure:"provider"        validate:"required,oneof=openai gemini"`
	OpenAIAPIKey   string `mapstructure:"openai_api_key"`
	OpenAIBaseURL  string `mapstructure:"openai_base_url" validate:"omitempty,url"`
	GeminiAPIKey   string `mapstructure:"gemini_api_key"`
	ModelName      string `mapstructure:"model_name"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// APIKey returns the credential for the selected provider.
func (c LLMConfig) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Configured reports whether the selected provider has a credential.
func (c LLMConfig) Configured() bool {
	return c.APIKey() != ""
}

// NotifyConfig contains the notification webhook settings.
type NotifyConfig struct {
	SlackWebhookURL string `mapstructure:"slack_webhook_url" validate:"omitempty,url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"   validate:"gte=0"`
}
