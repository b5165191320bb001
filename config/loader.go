package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml, or from the path named in TRAJECTORY_CONFIG when set.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./deploy/config.yml"}
	if p := os.Getenv("TRAJECTORY_CONFIG"); p != "" {
		paths = []string{p}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16181
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

// DatasetSource returns the configured dataset location, preferring the URL.
func DatasetSource() string {
	if Config.Dataset.URL != "" {
		return Config.Dataset.URL
	}
	return Config.Dataset.Path
}
