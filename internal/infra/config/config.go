package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logger   LoggerConfig   `yaml:"logger"`
	Tracer   TracerConfig   `yaml:"tracer"`
	Sources  SourcesConfig  `yaml:"sources"`
	Research ResearchConfig `yaml:"research"`
}

// ServerConfig identifies the MCP server to clients.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	Output string `yaml:"output"` // stderr, or a file path; never stdout (MCP stdio owns it)
}

// TracerConfig holds OpenTelemetry settings.
type TracerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"` // "stdout" or "noop"
}

// SourcesConfig holds settings for the external collaborators.
type SourcesConfig struct {
	SearchBackend string `yaml:"search_backend"` // "duckduckgo" or "searxng"
	SearXNGURL    string `yaml:"searxng_url"`
	DuckDuckGoURL string `yaml:"duckduckgo_url"`

	WikipediaAPIURL  string `yaml:"wikipedia_api_url"`
	WikipediaRESTURL string `yaml:"wikipedia_rest_url"`

	UserAgent string `yaml:"user_agent"`

	SearchTimeout    time.Duration `yaml:"search_timeout"`
	WikipediaTimeout time.Duration `yaml:"wikipedia_timeout"`
	FeedTimeout      time.Duration `yaml:"feed_timeout"`
	FetchTimeout     time.Duration `yaml:"fetch_timeout"`

	// SearchRatePerMinute throttles outbound search requests; the
	// DuckDuckGo HTML endpoint bans aggressive scrapers.
	SearchRatePerMinute int `yaml:"search_rate_per_minute"`

	Breaker BreakerConfig `yaml:"breaker"`
}

// BreakerConfig configures the circuit breaker guarding the day-feed
// upstream. The weekly aggregator issues seven feed calls in a row, so
// a dead upstream must fail fast instead of eating seven timeouts.
type BreakerConfig struct {
	MaxFailures uint32        `yaml:"max_failures"`
	Timeout     time.Duration `yaml:"timeout"`
	Interval    time.Duration `yaml:"interval"`
}

// ResearchConfig holds digest composition settings.
type ResearchConfig struct {
	SearchCacheTTL    time.Duration `yaml:"search_cache_ttl"`
	PageCharBudget    int           `yaml:"page_char_budget"`     // default budget for page text extraction
	URLToolCharBudget int           `yaml:"url_tool_char_budget"` // budget for the direct URL tool
	SummaryCharLimit  int           `yaml:"summary_char_limit"`   // encyclopedia intro truncation
}

// Defaults returns a Config populated with default values.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name:    "trivia-research",
			Version: "1.0.0",
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Tracer: TracerConfig{
			Enabled:  false,
			Exporter: "noop",
		},
		Sources: SourcesConfig{
			SearchBackend:       "duckduckgo",
			DuckDuckGoURL:       "https://html.duckduckgo.com/html/",
			WikipediaAPIURL:     "https://en.wikipedia.org/w/api.php",
			WikipediaRESTURL:    "https://en.wikipedia.org/api/rest_v1",
			UserAgent:           "trivia-research/1.0",
			SearchTimeout:       15 * time.Second,
			WikipediaTimeout:    10 * time.Second,
			FeedTimeout:         15 * time.Second,
			FetchTimeout:        15 * time.Second,
			SearchRatePerMinute: 30,
			Breaker: BreakerConfig{
				MaxFailures: 5,
				Timeout:     30 * time.Second,
				Interval:    60 * time.Second,
			},
		},
		Research: ResearchConfig{
			SearchCacheTTL:    15 * time.Minute,
			PageCharBudget:    5000,
			URLToolCharBudget: 6000,
			SummaryCharLimit:  2000,
		},
	}
}

// Load reads a YAML config file and applies env var overrides.
// A missing file is not an error: defaults plus env overrides apply.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyEnvOverrides(cfg)
			if err := Validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	ApplyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnvOverrides maps TRIVIA_* env vars to config fields.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRIVIA_LOGGER_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("TRIVIA_LOGGER_FORMAT"); v != "" {
		cfg.Logger.Format = v
	}
	if v := os.Getenv("TRIVIA_LOGGER_OUTPUT"); v != "" {
		cfg.Logger.Output = v
	}
	if v := os.Getenv("TRIVIA_TRACER_ENABLED"); v == "true" {
		cfg.Tracer.Enabled = true
	}
	if v := os.Getenv("TRIVIA_TRACER_EXPORTER"); v != "" {
		cfg.Tracer.Exporter = v
	}
	if v := os.Getenv("TRIVIA_SEARCH_BACKEND"); v != "" {
		cfg.Sources.SearchBackend = v
	}
	if v := os.Getenv("TRIVIA_SEARXNG_URL"); v != "" {
		cfg.Sources.SearXNGURL = v
	}
	if v := os.Getenv("TRIVIA_DUCKDUCKGO_URL"); v != "" {
		cfg.Sources.DuckDuckGoURL = v
	}
	if v := os.Getenv("TRIVIA_WIKIPEDIA_API_URL"); v != "" {
		cfg.Sources.WikipediaAPIURL = v
	}
	if v := os.Getenv("TRIVIA_WIKIPEDIA_REST_URL"); v != "" {
		cfg.Sources.WikipediaRESTURL = v
	}
	if v := os.Getenv("TRIVIA_USER_AGENT"); v != "" {
		cfg.Sources.UserAgent = v
	}
	if v := os.Getenv("TRIVIA_SEARCH_RATE_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Sources.SearchRatePerMinute = n
		}
	}
	if v := os.Getenv("TRIVIA_SEARCH_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Research.SearchCacheTTL = d
		}
	}
}

// Validate checks config invariants.
func Validate(cfg *Config) error {
	switch cfg.Sources.SearchBackend {
	case "duckduckgo":
		if cfg.Sources.DuckDuckGoURL == "" {
			return fmt.Errorf("sources.duckduckgo_url is required for the duckduckgo backend")
		}
	case "searxng":
		if cfg.Sources.SearXNGURL == "" {
			return fmt.Errorf("sources.searxng_url is required for the searxng backend")
		}
	default:
		return fmt.Errorf("unknown search backend %q (want: duckduckgo, searxng)", cfg.Sources.SearchBackend)
	}

	switch cfg.Logger.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown logger format %q (want: text, json)", cfg.Logger.Format)
	}

	if cfg.Logger.Output == "stdout" {
		return fmt.Errorf("logger output must not be stdout: the MCP stdio transport owns it")
	}

	if cfg.Research.PageCharBudget <= 0 {
		return fmt.Errorf("research.page_char_budget must be > 0")
	}
	if cfg.Research.URLToolCharBudget <= 0 {
		return fmt.Errorf("research.url_tool_char_budget must be > 0")
	}
	if cfg.Research.SummaryCharLimit <= 0 {
		return fmt.Errorf("research.summary_char_limit must be > 0")
	}

	return nil
}
