package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the exporter looks for its config file.
const DefaultPath = "./config.yaml"

type Config struct {
	// Endpoint is the brokerage GraphQL endpoint.
	Endpoint string `yaml:"endpoint"`
	// Institution is the financial-institution name stamped into the OFX
	// signon block and used as the house-side payee.
	Institution string `yaml:"institution"`
	// Currency is the brokerage's reporting currency (CURDEF).
	Currency string `yaml:"currency"`
	// PageSize is the page size for activity queries.
	PageSize int `yaml:"pageSize"`
	// AccountPageSize is the page size for the account-financials query.
	AccountPageSize int `yaml:"accountPageSize"`
	// OutputDir is where <accountId>.ofx files are written.
	OutputDir string `yaml:"outputDir"`
}

func Default() Config {
	return Config{
		Endpoint:        "https://my.wealthsimple.com/graphql",
		Institution:     "Wealthsimple",
		Currency:        "CAD",
		PageSize:        100,
		AccountPageSize: 25,
		OutputDir:       ".",
	}
}

// Load reads the config file at path, filling unset fields with defaults. A
// missing file is not an error: the defaults cover the common case.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = Default().PageSize
	}
	if cfg.AccountPageSize <= 0 {
		cfg.AccountPageSize = Default().AccountPageSize
	}

	return cfg, nil
}

// Dump writes the config back out, mostly useful for generating a starter
// file.
func Dump(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
