package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDemo    = "superposition"
	DefaultShots   = 1024
	DefaultDataDir = ".qsim"
)

// Config describes one run: which demo circuit to execute and how.
// Seed 0 means "pick one from the clock"; Workers 0 means one worker
// per CPU.
type Config struct {
	Demo    string `yaml:"demo"`
	Shots   int    `yaml:"shots"`
	Seed    int64  `yaml:"seed"`
	Workers int    `yaml:"workers"`
	DataDir string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Demo:    DefaultDemo,
		Shots:   DefaultShots,
		DataDir: DefaultDataDir,
	}
}

// Load reads a yaml config file, filling unset fields from defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configs the runner would refuse anyway, with a
// friendlier message.
func (c *Config) Validate() error {
	if c.Demo == "" {
		return fmt.Errorf("config: demo name is required")
	}
	if c.Shots < 0 {
		return fmt.Errorf("config: shots must be non-negative, got %d", c.Shots)
	}
	return nil
}
