package model

import "time"

// Config holds every tunable of a run
type Config struct {
	HTTP         HTTPConfig         `yaml:"http" mapstructure:"http"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	Verbose      bool               `yaml:"verbose" mapstructure:"verbose"`
}

// HTTPConfig configures the page fetch
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"` // 0 means no client timeout
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// RateLimitingConfig configures per-host politeness
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig configures fixture rendering
type OutputConfig struct {
	PresentTense  bool `yaml:"present_tense" mapstructure:"present_tense"`
	SourceComment bool `yaml:"source_comment" mapstructure:"source_comment"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       0,
			UserAgent:     "conjfixtures/0.1 (+https://github.com/arabdict/conjfixtures)",
			MaxBodyBytes:  10_000_000,
			RespectRobots: true,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 1,
			BurstSize:         1,
		},
	}
}
