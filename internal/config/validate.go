package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.GenerationPerMinute < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Image.validate(); err != nil {
		return fmt.Errorf("image: %w", err)
	}

	if !strings.Contains(c.Demo.Email, "@") {
		return fmt.Errorf("demo.email must be an email address (got %q)", c.Demo.Email)
	}

	if c.Retention.ImageLibraryDays <= 0 {
		return fmt.Errorf("retention.image_library_days must be > 0 (got %d)", c.Retention.ImageLibraryDays)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	switch l.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("provider must be openai or anthropic (got %q)", l.Provider)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be in 0..2 (got %v)", l.Temperature)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must be >= 0 (got %v)", l.RequestsPerSecond)
	}
	return nil
}

func (i *ImageConfig) validate() error {
	if strings.TrimSpace(i.PrimaryModel) == "" {
		return fmt.Errorf("primary_model is required")
	}
	if !domain.ImageSize(i.DefaultSize).IsValid() {
		return fmt.Errorf("default_size %q is not a supported size", i.DefaultSize)
	}
	return nil
}
