package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/brogergvhs/evangelio/internal/sources"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Output string `yaml:"output"`
	Source string `yaml:"source"`

	UserAgent      string        `yaml:"user_agent"`
	AcceptLanguage string        `yaml:"accept_language"`
	Timeout        time.Duration `yaml:"timeout"`
	Delay          time.Duration `yaml:"delay"`

	Debug            bool `yaml:"debug"`
	NoProgress       bool `yaml:"no_progress"`
	CloudflareBypass bool `yaml:"cloudflare_bypass"`
}

// Request timeouts set in the config file are held to this window.
const (
	MinTimeout = 15 * time.Second
	MaxTimeout = 20 * time.Second
)

type Options struct {
	IgnoreConfig bool
	Debug        bool
	Source       string
	Output       string
}

func DefaultConfig() *Config {
	return &Config{
		Output: ".",
		Source: sources.Gateway,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadMerged reads the config file, if any, and lays opts over it. The
// returned string describes where the settings came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	path, err := ActiveConfigPath()
	if errors.Is(err, ErrNoConfig) {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", path, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, path, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.Source != "" {
		c.Source = o.Source
	}
	if o.Output != "" {
		c.Output = o.Output
	}
}

func normalizeDefaults(c *Config) {
	if c.Output == "" {
		c.Output = "."
	}
	if c.Source == "" {
		c.Source = sources.Gateway
	}
	if c.Timeout < 0 {
		c.Timeout = 0
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
}

// Apply overrides the profile request settings. The timeout is clamped to
// [MinTimeout, MaxTimeout] and the delay can only be made longer than the
// one the profile ships with.
func (c *Config) Apply(p *sources.Profile) {
	headers := make(map[string]string, len(p.Headers)+2)
	for k, v := range p.Headers {
		headers[k] = v
	}
	if c.UserAgent != "" {
		headers["User-Agent"] = c.UserAgent
	}
	if c.AcceptLanguage != "" {
		headers["Accept-Language"] = c.AcceptLanguage
	}
	p.Headers = headers

	if c.Timeout > 0 {
		p.Timeout = min(max(c.Timeout, MinTimeout), MaxTimeout)
	}
	if c.Delay > p.Delay {
		p.Delay = c.Delay
	}
}

func (c *Config) Print() {
	fmt.Printf(" -output: %s\n", c.Output)
	fmt.Printf(" -source: %s\n", c.Source)
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.AcceptLanguage != "" {
		fmt.Printf(" -accept_language: %s\n", c.AcceptLanguage)
	}
	if c.Timeout > 0 {
		fmt.Printf(" -timeout: %s\n", c.Timeout)
	}
	if c.Delay > 0 {
		fmt.Printf(" -delay: %s\n", c.Delay)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.NoProgress {
		fmt.Printf(" -no_progress: %t\n", c.NoProgress)
	}
	if c.CloudflareBypass {
		fmt.Printf(" -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
}
