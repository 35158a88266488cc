package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML overlay, applied between built-in
// defaults and environment overrides. Durations follow yaml.v3's native
// handling, matching how the rest of our tooling reads config files.
type fileConfig struct {
	ClubID      string             `yaml:"club_id"`
	RunMode     string             `yaml:"run_mode"`
	RunInterval time.Duration      `yaml:"run_interval"`
	Provider    string             `yaml:"provider"`
	Gmsfeed     *GmsfeedConfig     `yaml:"gmsfeed"`
	Export      *exportFileConfig  `yaml:"export"`
	Metrics     *metricsFileConfig `yaml:"metrics"`
}

func loadFile(path string) (fileConfig, error) {
	if path == "" {
		return fileConfig{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	var c fileConfig
	if err := yaml.Unmarshal(b, &c); err != nil {
		return fileConfig{}, err
	}
	return c, nil
}
