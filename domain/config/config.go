package config

// Config represents the structure of config.yml used by the tool.
// Only the fields currently needed by commands are modeled.
type Config struct {
	Upstream struct {
		BaseURL  string `yaml:"base_url"`
		ConfigID string `yaml:"config_id"`
	} `yaml:"upstream"`
	Dashboard Dashboard `yaml:"dashboard"`
}

// Dashboard holds the view settings applied to derived tables.
type Dashboard struct {
	// Envs restricts grids and series to these environments; empty keeps all.
	Envs        []string `yaml:"envs"`
	DefaultSort struct {
		Key       string `yaml:"key"`
		Direction string `yaml:"direction"`
	} `yaml:"default_sort"`
}

const (
	DefaultBaseURL  = "http://localhost:5000"
	DefaultConfigID = "DEFAULT_WIDGET_ID"
)
