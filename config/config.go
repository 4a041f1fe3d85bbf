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
)

// Config holds the run parameters for one batch computation.
type Config struct {
	// Dosages lists the possible daily dosages in pills, comma separated.
	Dosages string `json:"dosages"`
	// MaxPeriod is the inclusive upper bound on enumerated periods, in days.
	MaxPeriod int `json:"max_period"`
	// MaxSchedules rejects a run whose theoretical enumeration size exceeds
	// this bound, before any schedule is built.
	MaxSchedules int          `json:"max_schedules"`
	Output       OutputConfig `json:"output"`
}

// OutputConfig selects optional result sinks besides the stdout report.
type OutputConfig struct {
	// JSONPath, when set, receives the optimal set as JSON.
	JSONPath string `json:"json_path"`
	// CSVPath, when set, receives the optimal set as CSV.
	CSVPath string `json:"csv_path"`
	// PlotPath, when set, receives a mean-vs-stddev scatter as PNG.
	PlotPath string `json:"plot_path"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Dosages == "" {
		c.Dosages = "0,0.5,1,2"
	}
	if c.MaxPeriod == 0 {
		c.MaxPeriod = 21
	}
	if c.MaxSchedules == 0 {
		c.MaxSchedules = 5_000_000
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Dosages == "" {
		return fmt.Errorf("dosages is required")
	}
	if c.MaxPeriod < 1 {
		return fmt.Errorf("max_period must be positive, got %d", c.MaxPeriod)
	}
	if c.MaxSchedules < 1 {
		return fmt.Errorf("max_schedules must be positive, got %d", c.MaxSchedules)
	}
	return nil
}

// Load reads the configuration file at path (yaml or json by extension) and
// applies environment overrides. An empty path skips the file and yields the
// defaults, so the tool stays usable as a pure flag-driven CLI.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
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
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("POSOLOGY_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "posology_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
