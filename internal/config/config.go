package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Report ReportConfig `yaml:"report"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type ReportConfig struct {
	// Footer is the default generated-by line appended to exported reports.
	Footer string `yaml:"footer"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		DB: DBConfig{
			Path: "collaudo.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Report: ReportConfig{
			Footer: "",
		},
	}

	if path := os.Getenv("COLLAUDO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("COLLAUDO_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("COLLAUDO_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if footer := os.Getenv("COLLAUDO_REPORT_FOOTER"); footer != "" {
		cfg.Report.Footer = footer
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
