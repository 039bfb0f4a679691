package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Probe struct {
		Enabled        bool    `yaml:"enabled" json:"enabled"`
		ReqPerSec      float64 `yaml:"req_per_sec" json:"req_per_sec"`
		Burst          int     `yaml:"burst" json:"burst"`
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
	} `yaml:"probe" json:"probe"`

	Auth struct {
		// Keychain account under which the engine API token lives.
		TokenAccount string `yaml:"token_account" json:"token_account"`
	} `yaml:"auth" json:"auth"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
