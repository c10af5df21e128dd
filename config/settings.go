package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cordialsys/aoc/config/constants"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

const DefaultBaseURL = "https://adventofcode.com"
const DefaultChallengesDir = "challenges"

// Duration is a time.Duration written as "30s" in config files.
type Duration time.Duration

var _ yaml.Marshaler = Duration(0)
var _ yaml.Unmarshaler = new(Duration)

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %v", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

type Config struct {
	// Event year, e.g. 2023
	Year int `yaml:"year,omitempty"`
	// Site to fetch inputs from and submit answers to
	BaseURL string `yaml:"base_url,omitempty"`
	// Reference to the session cookie value
	Session Secret `yaml:"session,omitempty"`
	// Where dayNN directories live
	ChallengesDir string `yaml:"challenges_dir,omitempty"`

	// Rate limit on requests to the site: at most one request per PeriodLimit, or
	// RateLimit requests per second if set.
	RateLimit   rate.Limit `yaml:"rate_limit,omitempty"`
	PeriodLimit Duration   `yaml:"period_limit,omitempty"`
	Burst       int        `yaml:"burst,omitempty"`
	Timeout     Duration   `yaml:"timeout,omitempty"`
}

// DefaultConfig is used for anything missing from config.yaml.
func DefaultConfig() *Config {
	year := time.Now().Year()
	if now := time.Now(); now.Month() < time.December {
		year--
	}
	if fromEnv, err := strconv.Atoi(os.Getenv(constants.YearEnv)); err == nil {
		year = fromEnv
	}
	return &Config{
		Year:          year,
		BaseURL:       DefaultBaseURL,
		Session:       Secret("env:" + constants.SessionEnv),
		ChallengesDir: DefaultChallengesDir,
		PeriodLimit:   Duration(5 * time.Second),
		Burst:         1,
		Timeout:       Duration(60 * time.Second),
	}
}

// LoadConfig reads config.yaml under the "aoc" key, falling back to defaults.
func LoadConfig() (*Config, error) {
	cfg, err := ReadConfig()
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ReadConfig is LoadConfig without validation, for callers that apply their
// own overrides first.
func ReadConfig() (*Config, error) {
	cfg := &Config{}
	err := RequireConfig("aoc", cfg, DefaultConfig())
	return cfg, err
}

func (cfg *Config) Validate() error {
	if cfg.Year < 2015 {
		return fmt.Errorf("invalid year %d, first event was 2015", cfg.Year)
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url must be set")
	}
	if cfg.Burst < 0 {
		return fmt.Errorf("burst must not be negative")
	}
	return nil
}

// NewLimiter builds the request limiter. Without a rate or period requests
// are not limited.
func (cfg *Config) NewLimiter() *rate.Limiter {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	var limiter = rate.NewLimiter(rate.Inf, burst)
	if cfg.PeriodLimit != 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.PeriodLimit.Duration()), burst)
	}
	if cfg.RateLimit != 0 {
		limiter = rate.NewLimiter(cfg.RateLimit, burst)
	}
	return limiter
}

// DayDir is the directory for one day's input, description and history.
func (cfg *Config) DayDir(day fmt.Stringer) string {
	return filepath.Join(cfg.ChallengesDir, day.String())
}
