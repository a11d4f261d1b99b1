package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string      `yaml:"listen_addr" json:"listen_addr"`
	Store      StoreConfig `yaml:"store" json:"store"`
	UI         UIConfig    `yaml:"ui" json:"ui"`
}

type StoreConfig struct {
	// Backend selects the row store: "sheets", "sqlite" or "memory".
	Backend string `yaml:"backend" json:"backend"`

	// Sheets backend.
	SpreadsheetID   string `yaml:"spreadsheet_id" json:"spreadsheet_id"`
	Worksheet       string `yaml:"worksheet" json:"worksheet"`
	CredentialsFile string `yaml:"credentials_file" json:"credentials_file"`

	// SQLite backend.
	DataDir string `yaml:"data_dir" json:"data_dir"`
}

type UIConfig struct {
	Title string `yaml:"title" json:"title"`
}

func (c *Config) ApplyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8712"
	}
	if c.Store.Backend == "" {
		c.Store.Backend = "sqlite"
	}
	if c.Store.Worksheet == "" {
		c.Store.Worksheet = "任務排程"
	}
	if c.Store.DataDir == "" {
		c.Store.DataDir = "data"
	}
	if c.UI.Title == "" {
		c.UI.Title = "🎬 剪輯任務日程"
	}
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "sheets":
		if c.Store.SpreadsheetID == "" {
			return fmt.Errorf("store.spreadsheet_id is required for the sheets backend")
		}
	case "sqlite", "memory":
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	return nil
}

// Load reads a YAML config file. A missing file is fine: defaults plus
// environment overrides are a complete configuration for local use.
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	applyEnv(&c)
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
