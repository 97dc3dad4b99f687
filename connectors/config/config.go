package config

import (
	"fmt"
	"log/slog"
	"os"

	dc "uptime-stats/domain/config"

	"gopkg.in/yaml.v3"
)

// Path resolves the config file location from CONFIG_PATH, defaulting to ./config.yml.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "./config.yml"
}

// Load parses the YAML configuration file at path and fills upstream defaults.
func Load(path string) (*dc.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c dc.Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyDefaults(&c)
	slog.Info(fmt.Sprintf("Loaded config: %s", path))
	return &c, nil
}

// LoadOrDefault loads the config at Path when it exists, otherwise returns defaults.
func LoadOrDefault() (*dc.Config, error) {
	path := Path()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			c := &dc.Config{}
			applyDefaults(c)
			return c, nil
		}
		return nil, err
	}
	return Load(path)
}

func applyDefaults(c *dc.Config) {
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = dc.DefaultBaseURL
	}
	if c.Upstream.ConfigID == "" {
		c.Upstream.ConfigID = dc.DefaultConfigID
	}
}
