package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"newsillustrator/pkg/llm"
)

var envKeys = []string{
	"CONFIG_PATH", "PORT", "LOG_LEVEL", "OUTPUT_DIR", "PIPELINE_MODE", "FRONTEND_URL", "MCP_ENABLED",
	"TEXT_PROVIDER", "TEXT_MODEL", "ANTHROPIC_API_KEY", "OPENAI_API_KEY", "AWS_REGION",
	"IMAGE_PROVIDER", "IMAGE_MODEL", "STABILITY_API_KEY", "STABILITY_BASE_URL",
	"IMAGE_INDEX_BACKEND", "REDIS_URL", "FINNHUB_API_KEY", "ALPHA_VANTAGE_API_KEY",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	// keep a stray .env in the package dir from leaking in
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "ak")
	t.Setenv("STABILITY_API_KEY", "sk")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, TextProviderAnthropic, cfg.TextProvider)
	assert.Equal(t, ImageProviderStability, cfg.ImageProvider)
	assert.Equal(t, IndexBackendFS, cfg.IndexBackend)
	assert.Equal(t, false, cfg.MCPEnabled)
	assert.Equal(t, "us-west-2", cfg.AWSRegion)

	mode, err := cfg.Mode()
	assert.Equal(t, nil, err)
	assert.Equal(t, llm.ModeHeadline, mode)
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
port: "9000"
pipelineMode: summary
textProvider: openai
openaiAPIKey: from-file
imageProvider: openai
mcpEnabled: true
`), 0o644)
	assert.Equal(t, nil, err)

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "9100")
	t.Setenv("AWS_REGION", "eu-central-1")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "from-file", cfg.OpenAIAPIKey)
	assert.Equal(t, true, cfg.MCPEnabled)
	assert.Equal(t, "eu-central-1", cfg.AWSRegion)

	mode, _ := cfg.Mode()
	assert.Equal(t, llm.ModeSummary, mode)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()

	assert.NotEqual(t, nil, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		PipelineMode:    "headline",
		TextProvider:    TextProviderAnthropic,
		AnthropicAPIKey: "ak",
		ImageProvider:   ImageProviderStability,
		StabilityAPIKey: "sk",
		IndexBackend:    IndexBackendFS,
		AWSRegion:       "us-west-2",
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bedrock needs no key", mutate: func(c *Config) { c.TextProvider = TextProviderBedrock; c.AnthropicAPIKey = "" }},
		{name: "bedrock needs a region", mutate: func(c *Config) { c.TextProvider = TextProviderBedrock; c.AWSRegion = "" }, want: "AWS_REGION"},
		{name: "bad mode", mutate: func(c *Config) { c.PipelineMode = "poem" }, want: "PIPELINE_MODE"},
		{name: "missing anthropic key", mutate: func(c *Config) { c.AnthropicAPIKey = "" }, want: "ANTHROPIC_API_KEY"},
		{name: "unknown text provider", mutate: func(c *Config) { c.TextProvider = "cohere" }, want: "not supported"},
		{name: "missing stability key", mutate: func(c *Config) { c.StabilityAPIKey = "" }, want: "STABILITY_API_KEY"},
		{name: "openai image needs key", mutate: func(c *Config) { c.ImageProvider = ImageProviderOpenAI }, want: "OPENAI_API_KEY"},
		{name: "redis needs url", mutate: func(c *Config) { c.IndexBackend = IndexBackendRedis }, want: "REDIS_URL"},
		{name: "unknown backend", mutate: func(c *Config) { c.IndexBackend = "s3" }, want: "not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				assert.Equal(t, nil, err)
				return
			}
			assert.NotEqual(t, nil, err)
			assert.Equal(t, true, strings.Contains(err.Error(), tt.want))
		})
	}
}
