package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	LLM       LLMConfig       `yaml:"llm"`
	Image     ImageConfig     `yaml:"image"`
	Demo      DemoConfig      `yaml:"demo"`
	Retention RetentionConfig `yaml:"retention"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds inbound per-client request limits.
// Generation endpoints get their own, tighter budget.
type RateLimitConfig struct {
	RequestsPerMinute   int `yaml:"requests_per_minute"   env:"RATE_LIMIT_RPM"            env-default:"300"`
	GenerationPerMinute int `yaml:"generation_per_minute" env:"RATE_LIMIT_GENERATION_RPM" env-default:"10"`
}

// LLMConfig holds language model settings.
type LLMConfig struct {
	Provider          string        `yaml:"provider"            env:"LLM_PROVIDER"            env-default:"openai"`
	OpenAIAPIKey      string        `yaml:"openai_api_key"      env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `yaml:"openai_base_url"     env:"OPENAI_BASE_URL"`
	AnthropicAPIKey   string        `yaml:"anthropic_api_key"   env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL  string        `yaml:"anthropic_base_url"  env:"ANTHROPIC_BASE_URL"`
	Model             string        `yaml:"model"               env:"LLM_MODEL"               env-default:"gpt-4o"`
	Temperature       float32       `yaml:"temperature"         env:"LLM_TEMPERATURE"         env-default:"0.7"`
	MaxTokens         int           `yaml:"max_tokens"          env:"LLM_MAX_TOKENS"          env-default:"2000"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"LLM_REQUESTS_PER_SECOND" env-default:"2"`
	Timeout           time.Duration `yaml:"timeout"             env:"LLM_TIMEOUT"             env-default:"90s"`
}

// ImageConfig holds image generation settings. The key falls back to the
// OpenAI chat key when empty.
type ImageConfig struct {
	APIKey        string `yaml:"api_key"        env:"IMAGE_API_KEY"`
	PrimaryModel  string `yaml:"primary_model"  env:"IMAGE_PRIMARY_MODEL"  env-default:"gpt-image-1"`
	FallbackModel string `yaml:"fallback_model" env:"IMAGE_FALLBACK_MODEL" env-default:"dall-e-3"`
	DefaultSize   string `yaml:"default_size"   env:"IMAGE_DEFAULT_SIZE"   env-default:"1024x1024"`
}

// DemoConfig describes the single provisioned user.
type DemoConfig struct {
	Email string `yaml:"email" env:"DEMO_USER_EMAIL" env-default:"demo@fast-slide-creator.com"`
	Name  string `yaml:"name"  env:"DEMO_USER_NAME"  env-default:"Demo User"`
}

// RetentionConfig holds cleanup job settings.
type RetentionConfig struct {
	ImageLibraryDays int `yaml:"image_library_days" env:"RETENTION_IMAGE_LIBRARY_DAYS" env-default:"90"`
}

// ImageAPIKey returns the key used for image generation.
func (c Config) ImageAPIKey() string {
	if c.Image.APIKey != "" {
		return c.Image.APIKey
	}
	return c.LLM.OpenAIAPIKey
}

// Origins splits the comma-separated origin list.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
