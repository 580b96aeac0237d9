package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"name"`
}

type ConfigSchema struct {
	Database struct {
		// Driver selects the store: "sqlite" (default) or "postgres".
		Driver string `yaml:"driver"`
		// Path to the sqlite database file.
		Path     string     `yaml:"path"`
		Master   DBConfig   `yaml:"master"`
		Replicas []DBConfig `yaml:"replicas"`
	} `yaml:"db"`
	Migrations struct {
		Dir string `yaml:"dir"`
	} `yaml:"migrations"`
	Backend struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"backend"`
	Cors struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`
	Logs struct {
		Level string `yaml:"level"`
	} `yaml:"logs"`
}

func LoadConfig(filePath string) (*ConfigSchema, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var conf ConfigSchema
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filePath, err)
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *ConfigSchema) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "social_media.db"
	}
	if c.Migrations.Dir == "" {
		c.Migrations.Dir = "migrations"
	}
	if c.Backend.Port == 0 {
		c.Backend.Port = 8000
	}
	if len(c.Cors.Origins) == 0 {
		c.Cors.Origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
}
