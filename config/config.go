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

	"github.com/fleetops/rentalgap/core/metrics"
	"github.com/fleetops/rentalgap/infra/dataset"
	"github.com/fleetops/rentalgap/infra/store"
)

type Config struct {
	Dataset  dataset.Config `json:"dataset"`
	Analysis AnalysisConfig `json:"analysis"`
	Metrics  metrics.Config `json:"metrics"`
	Store    store.Config   `json:"store"`
	Export   ExportConfig   `json:"export"`
	Logging  LoggingConfig  `json:"logging"`
}

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
	if err := k.Load(env.Provider("RG_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "rg_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Dataset.SetDefaults()
	cfg.Analysis.SetDefaults()
	cfg.Store.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Dataset.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Analysis.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Export.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
