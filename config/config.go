// Package config loads the service configuration from JSON or YAML files
// with optional FT_ environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/openathletics/flextime/infra/resolvers"
)

type Config struct {
	Registry  RegistryConfig  `json:"registry"`
	Router    RouterConfig    `json:"router"`
	Metrics   MetricsConfig   `json:"metrics"`
	ReportLog ReportLogConfig `json:"report_log"`
	Resolvers ResolversConfig `json:"resolvers"`
}

// RegistryConfig points at the external venue data document. An empty or
// missing file keeps the built-in fallback tables.
type RegistryConfig struct {
	VenueFile string `json:"venue_file"`
}

// RouterConfig tunes task routing.
type RouterConfig struct {
	// StepTimeoutSeconds bounds a single resolver invocation.
	StepTimeoutSeconds int `json:"step_timeout_seconds"`
	// SystemPrompt is prepended as context to every routed request.
	SystemPrompt string `json:"system_prompt"`
}

func (c *RouterConfig) SetDefaults() {
	if c.StepTimeoutSeconds == 0 {
		c.StepTimeoutSeconds = 30
	}
}

func (c RouterConfig) Validate() error {
	if c.StepTimeoutSeconds < 0 {
		return fmt.Errorf("step_timeout_seconds must be positive")
	}
	return nil
}

// InfluxConfig configures the InfluxDB metrics sink.
type InfluxConfig struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
	Token   string `json:"token"`
	Org     string `json:"org"`
	Bucket  string `json:"bucket"`
}

// MetricsConfig configures observability sinks.
type MetricsConfig struct {
	PrometheusEnabled bool         `json:"prometheus_enabled"`
	PrometheusAddr    string       `json:"prometheus_addr"`
	Influx            InfluxConfig `json:"influx"`
}

func (c *MetricsConfig) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":2112"
	}
}

func (c MetricsConfig) Validate() error {
	if c.Influx.Enabled && c.Influx.URL == "" {
		return fmt.Errorf("influx url is required when the sink is enabled")
	}
	return nil
}

// ReportLogConfig defines settings for conflict report storage.
type ReportLogConfig struct {
	// Backend selects the report store type: "jsonl" or "sqlite".
	Backend string `json:"backend"`
	// Path is the file location of the report store.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *ReportLogConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "jsonl"
	}
	if c.Path == "" {
		c.Path = "conflicts.log"
	}
}

// Validate checks mandatory fields.
func (c ReportLogConfig) Validate() error {
	if c.Backend != "jsonl" && c.Backend != "sqlite" {
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// ExecAgentConfig declares an external agent invoked as a subprocess.
type ExecAgentConfig struct {
	Name    string   `json:"name"`
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// RemoteAgentConfig declares an external agent reachable over MQTT.
type RemoteAgentConfig struct {
	Name                 string `json:"name"`
	resolvers.MQTTConfig `json:",squash"`
}

// ResolversConfig wires schedule input and external resolvers.
type ResolversConfig struct {
	// SchedulesFile is the JSON schedule document keyed by sport code.
	SchedulesFile string              `json:"schedules_file"`
	Exec          []ExecAgentConfig   `json:"exec"`
	Remote        []RemoteAgentConfig `json:"remote"`
}

// Load reads the configuration file at path, applies FT_ environment
// overrides, fills defaults and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FT_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ft_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Router.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.ReportLog.SetDefaults()
	if err := cfg.Router.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ReportLog.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
