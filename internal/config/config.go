package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "pos.yml"

type Config struct {
	DataDir     string `yaml:"data_dir"`
	ProductFile string `yaml:"product_file"`
	TellerFile  string `yaml:"teller_file"`
	SaleFile    string `yaml:"sale_file"`
	ReceiptDir  string `yaml:"receipt_dir"`
	Currency    string `yaml:"currency"`
	DatabaseURL string `yaml:"database_url"` // Optional: SQL mirror target for `pos sync`
	Lock        *bool  `yaml:"lock"`
}

// Default returns the configuration used when no pos.yml exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	// Resolve relative paths
	base := filepath.Dir(configPath)
	if !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(base, cfg.DataDir)
	}
	if !filepath.IsAbs(cfg.ReceiptDir) {
		cfg.ReceiptDir = filepath.Join(base, cfg.ReceiptDir)
	}

	return &cfg, nil
}

// ApplyEnv overrides settings from the environment, after loading an
// optional .env file.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("POS_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("POS_RECEIPT_DIR"); v != "" {
		c.ReceiptDir = v
	}
	if v := os.Getenv("POS_DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "./data"
	}
	if c.ProductFile == "" {
		c.ProductFile = "product_records.bin"
	}
	if c.TellerFile == "" {
		c.TellerFile = "teller_records.bin"
	}
	if c.SaleFile == "" {
		c.SaleFile = "sale_records.bin"
	}
	if c.ReceiptDir == "" {
		c.ReceiptDir = "./receipts"
	}
	if c.Currency == "" {
		c.Currency = "PHP"
	}
	if c.Lock == nil {
		enabled := true
		c.Lock = &enabled
	}
}

// Locking reports whether table rewrites take an advisory lock
func (c *Config) Locking() bool {
	return c.Lock == nil || *c.Lock
}

func (c *Config) ProductPath() string { return filepath.Join(c.DataDir, c.ProductFile) }
func (c *Config) TellerPath() string  { return filepath.Join(c.DataDir, c.TellerFile) }
func (c *Config) SalePath() string    { return filepath.Join(c.DataDir, c.SaleFile) }

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.ReceiptDir == "" {
		return fmt.Errorf("receipt_dir is required")
	}
	files := map[string]string{
		"product_file": c.ProductFile,
		"teller_file":  c.TellerFile,
		"sale_file":    c.SaleFile,
	}
	seen := make(map[string]string)
	for key, name := range files {
		if name == "" {
			return fmt.Errorf("%s is required", key)
		}
		if filepath.Base(name) != name {
			return fmt.Errorf("%s must be a file name, got %q", key, name)
		}
		if other, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s both use %q", other, key, name)
		}
		seen[name] = key
	}
	return nil
}
