package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds intentify service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"` // HTTP listen address, e.g. ":8080"
}

type PipelineConfig struct {
	Damping       float64 `yaml:"damping"`        // propagation damping factor, (0, 1)
	DefaultIntent string  `yaml:"default_intent"` // intent reported when no rule fires
	// FallbackWeight is the weight for intents outside the taxonomy. A
	// pointer so an explicit 0 is distinguishable from an absent field.
	FallbackWeight *float64 `yaml:"fallback_weight"`
	PoolSize       int      `yaml:"pool_size"`     // batch worker pool size, 0 = NumCPU
	OntologyFile   string   `yaml:"ontology_file"` // optional taxonomy override (YAML)
	RulesFile      string   `yaml:"rules_file"`    // optional rule table override (YAML)
	LexiconFile    string   `yaml:"lexicon_file"`  // optional keyword table override (YAML)
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Pipeline: PipelineConfig{
			Damping:        0.4,
			DefaultIntent:  "informational",
			FallbackWeight: floatPtr(0.1),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}

	if cfg.Pipeline.Damping == 0 {
		cfg.Pipeline.Damping = 0.4
	}
	if cfg.Pipeline.DefaultIntent == "" {
		cfg.Pipeline.DefaultIntent = "informational"
	}
	if cfg.Pipeline.FallbackWeight == nil {
		cfg.Pipeline.FallbackWeight = floatPtr(0.1)
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
