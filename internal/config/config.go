package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Prompt PromptConfig `yaml:"prompt"`
	Exit   ExitConfig   `yaml:"exit"`
}

type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // json, console
	Output     string `yaml:"output"` // stderr, file, both
	FilePath   string `yaml:"file_path"`
	MaxSize    int    `yaml:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
}

type PromptConfig struct {
	Input  string `yaml:"input"`
	Result string `yaml:"result"`
}

// ExitConfig holds the process exit statuses for failed runs.
type ExitConfig struct {
	Usage     int `yaml:"usage"`
	DataError int `yaml:"data_error"`
	NoInput   int `yaml:"no_input"`
	TypeError int `yaml:"type_error"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
			Output: "stderr",
		},
		Prompt: PromptConfig{
			Input:  "> ",
			Result: "< ",
		},
		Exit: ExitConfig{
			Usage:     64,
			DataError: 65,
			NoInput:   66,
			TypeError: 70,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
