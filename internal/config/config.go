package config

import "time"

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// RedisConfig holds redis connection settings for the verification cache.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// BlobsConfig holds the embedded blob-store location.
type BlobsConfig struct {
	Path string `mapstructure:"path"` // empty means in-memory
}

// ModelConfig points at the language-model service.
type ModelConfig struct {
	BaseURL string `mapstructure:"base_url"` // OpenAI-compatible endpoint
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	Timeout string `mapstructure:"timeout"` // duration string, e.g., "30s"
}

// ScrapeConfig bounds evidence gathering.
type ScrapeConfig struct {
	MaxResults       int    `mapstructure:"max_results"`
	MaxContentLength int    `mapstructure:"max_content_length"`
	Timeout          string `mapstructure:"timeout"` // per-fetch, e.g., "15s"
	RatePerSec       int    `mapstructure:"rate_per_sec"`
	Concurrency      int    `mapstructure:"concurrency"`
}

// VerifyConfig bounds the analysis stage.
type VerifyConfig struct {
	AnalysisTimeout string `mapstructure:"analysis_timeout"`
	Verifier        string `mapstructure:"verifier"` // label recorded in cache records
}

// Config is the top-level configuration structure.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Blobs  BlobsConfig  `mapstructure:"blobs"`
	Model  ModelConfig  `mapstructure:"model"`
	Scrape ScrapeConfig `mapstructure:"scrape"`
	Verify VerifyConfig `mapstructure:"verify"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Model.BaseURL == "" {
		c.Model.BaseURL = "http://127.0.0.1:11434/v1"
	}
	if c.Model.Model == "" {
		c.Model.Model = "llama3"
	}
	if c.Model.Timeout == "" {
		c.Model.Timeout = "30s"
	}
	if c.Scrape.MaxResults == 0 {
		c.Scrape.MaxResults = 5
	}
	if c.Scrape.MaxContentLength == 0 {
		c.Scrape.MaxContentLength = 50000
	}
	if c.Scrape.Timeout == "" {
		c.Scrape.Timeout = "15s"
	}
	if c.Scrape.RatePerSec == 0 {
		c.Scrape.RatePerSec = 4
	}
	if c.Scrape.Concurrency == 0 {
		c.Scrape.Concurrency = 4
	}
	if c.Verify.AnalysisTimeout == "" {
		c.Verify.AnalysisTimeout = "30s"
	}
	if c.Verify.Verifier == "" {
		c.Verify.Verifier = "verifact"
	}
}

// ModelTimeout parses the model timeout, defaulting to 30s.
func (c *Config) ModelTimeout() time.Duration {
	return parseDuration(c.Model.Timeout, 30*time.Second)
}

// ScrapeTimeout parses the per-fetch timeout, defaulting to 15s.
func (c *Config) ScrapeTimeout() time.Duration {
	return parseDuration(c.Scrape.Timeout, 15*time.Second)
}

// AnalysisTimeout parses the analysis timeout, defaulting to 30s.
func (c *Config) AnalysisTimeout() time.Duration {
	return parseDuration(c.Verify.AnalysisTimeout, 30*time.Second)
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
