package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// JobConfig is the per-job YAML file handed to the email-notices run mode.
// It carries the closed-account extraction query, the audit-log column order
// and the notice template location. Loaded once at start, immutable after.
type JobConfig struct {
	GetClosedAccounts string   `yaml:"get_closed_accounts"`
	CSVHeader         []string `yaml:"csv_header"`
	TemplateDirectory string   `yaml:"template_directory"`
	TemplateFile      string   `yaml:"template_file"`
}

func LoadJobConfig(path string) (*JobConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job config: %w", err)
	}

	var cfg JobConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse job config %s: %w", path, err)
	}

	if cfg.GetClosedAccounts == "" {
		return nil, fmt.Errorf("job config %s: get_closed_accounts is required", path)
	}
	if len(cfg.CSVHeader) == 0 {
		return nil, fmt.Errorf("job config %s: csv_header is required", path)
	}
	if cfg.TemplateDirectory == "" || cfg.TemplateFile == "" {
		return nil, fmt.Errorf("job config %s: template_directory and template_file are required", path)
	}

	return &cfg, nil
}
