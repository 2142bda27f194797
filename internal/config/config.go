package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"newsillustrator/pkg/llm"
)

const (
	TextProviderAnthropic = "anthropic"
	TextProviderBedrock   = "bedrock"
	TextProviderOpenAI    = "openai"

	ImageProviderStability = "stability"
	ImageProviderOpenAI    = "openai"

	IndexBackendFS    = "fs"
	IndexBackendRedis = "redis"
)

// Config is read from an optional YAML file (CONFIG_PATH) and then overridden by
// environment variables, which may come from a .env file.
type Config struct {
	Port         string `yaml:"port"`
	LogLevel     string `yaml:"logLevel"`
	OutputDir    string `yaml:"outputDir"`
	PipelineMode string `yaml:"pipelineMode"`
	FrontendURL  string `yaml:"frontendURL"`
	MCPEnabled   bool   `yaml:"mcpEnabled"`

	TextProvider    string `yaml:"textProvider"`
	TextModel       string `yaml:"textModel"`
	AnthropicAPIKey string `yaml:"anthropicAPIKey"`
	OpenAIAPIKey    string `yaml:"openaiAPIKey"`
	AWSRegion       string `yaml:"awsRegion"`

	ImageProvider    string `yaml:"imageProvider"`
	ImageModel       string `yaml:"imageModel"`
	StabilityAPIKey  string `yaml:"stabilityAPIKey"`
	StabilityBaseURL string `yaml:"stabilityBaseURL"`

	IndexBackend string `yaml:"indexBackend"`
	RedisURL     string `yaml:"redisURL"`

	FinnhubAPIKey      string `yaml:"finnhubAPIKey"`
	AlphaVantageAPIKey string `yaml:"alphaVantageAPIKey"`
}

func defaults() Config {
	return Config{
		Port:          "8000",
		LogLevel:      "info",
		OutputDir:     "output",
		PipelineMode:  string(llm.ModeHeadline),
		TextProvider:  TextProviderAnthropic,
		AWSRegion:     "us-west-2",
		ImageProvider: ImageProviderStability,
		IndexBackend:  IndexBackendFS,
	}
}

func Load() (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Port, "PORT")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.OutputDir, "OUTPUT_DIR")
	setString(&cfg.PipelineMode, "PIPELINE_MODE")
	setString(&cfg.FrontendURL, "FRONTEND_URL")
	setBool(&cfg.MCPEnabled, "MCP_ENABLED")

	setString(&cfg.TextProvider, "TEXT_PROVIDER")
	setString(&cfg.TextModel, "TEXT_MODEL")
	setString(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	setString(&cfg.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&cfg.AWSRegion, "AWS_REGION")

	setString(&cfg.ImageProvider, "IMAGE_PROVIDER")
	setString(&cfg.ImageModel, "IMAGE_MODEL")
	setString(&cfg.StabilityAPIKey, "STABILITY_API_KEY")
	setString(&cfg.StabilityBaseURL, "STABILITY_BASE_URL")

	setString(&cfg.IndexBackend, "IMAGE_INDEX_BACKEND")
	setString(&cfg.RedisURL, "REDIS_URL")

	setString(&cfg.FinnhubAPIKey, "FINNHUB_API_KEY")
	setString(&cfg.AlphaVantageAPIKey, "ALPHA_VANTAGE_API_KEY")
}

func (c Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("PIPELINE_MODE: %w", err)
	}

	switch c.TextProvider {
	case TextProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for text provider %q", c.TextProvider)
		}
	case TextProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for text provider %q", c.TextProvider)
		}
	case TextProviderBedrock:
		// AWS credentials come from the default chain
		if c.AWSRegion == "" {
			return fmt.Errorf("AWS_REGION is required for text provider %q", c.TextProvider)
		}
	default:
		return fmt.Errorf("text provider %q not supported", c.TextProvider)
	}

	switch c.ImageProvider {
	case ImageProviderStability:
		if c.StabilityAPIKey == "" {
			return fmt.Errorf("STABILITY_API_KEY is required for image provider %q", c.ImageProvider)
		}
	case ImageProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for image provider %q", c.ImageProvider)
		}
	default:
		return fmt.Errorf("image provider %q not supported", c.ImageProvider)
	}

	switch c.IndexBackend {
	case IndexBackendFS:
	case IndexBackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for image index backend %q", c.IndexBackend)
		}
	default:
		return fmt.Errorf("image index backend %q not supported", c.IndexBackend)
	}

	return nil
}

func (c Config) Mode() (llm.Mode, error) {
	return llm.ParseMode(c.PipelineMode, llm.ModeHeadline)
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
