// Package config handles configuration loading for PortLink.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Data     DataConfig     `mapstructure:"data"     yaml:"data"`
	Resolver ResolverConfig `mapstructure:"resolver" yaml:"resolver"`
	Market   MarketConfig   `mapstructure:"market"   yaml:"market"`
	Render   RenderConfig   `mapstructure:"render"   yaml:"render"`
	Server   ServerConfig   `mapstructure:"server"   yaml:"server"`
}

// DataConfig holds the data directory layout and input file names.
type DataConfig struct {
	RawDir        string `mapstructure:"raw_dir"        yaml:"raw_dir"`
	ProcessedDir  string `mapstructure:"processed_dir"  yaml:"processed_dir"`
	EnrichedDir   string `mapstructure:"enriched_dir"   yaml:"enriched_dir"`
	PortsCSV      string `mapstructure:"ports_csv"      yaml:"ports_csv"`
	BenchmarksCSV string `mapstructure:"benchmarks_csv" yaml:"benchmarks_csv"`
	CurrenciesCSV string `mapstructure:"currencies_csv" yaml:"currencies_csv"`
}

// ResolverConfig holds entity-resolution settings.
type ResolverConfig struct {
	// Threshold is the minimum similarity score. A link is emitted only
	// when score > Threshold (strict inequality).
	Threshold int `mapstructure:"threshold" yaml:"threshold"`
}

// MarketConfig holds market-data fetch settings.
type MarketConfig struct {
	LookbackMonths int    `mapstructure:"lookback_months"  yaml:"lookback_months"`
	Interval       string `mapstructure:"interval"         yaml:"interval"`
	HTTPTimeoutSec int    `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`
	Headlines      bool   `mapstructure:"headlines"        yaml:"headlines"`
	HeadlineLimit  int    `mapstructure:"headline_limit"   yaml:"headline_limit"`
}

// RenderConfig holds dashboard rendering settings.
type RenderConfig struct {
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`
	Title      string `mapstructure:"title"       yaml:"title"`
}

// ServerConfig holds dashboard preview server settings.
type ServerConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.portlink/config.yaml (home directory)
//
// Environment variables override config file values.
// Format: PORTLINK_<SECTION>_<KEY>, e.g., PORTLINK_RESOLVER_THRESHOLD
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".portlink"))

	v.SetEnvPrefix("PORTLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("PORTLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Data layout defaults
	v.SetDefault("data.raw_dir", "data/raw")
	v.SetDefault("data.processed_dir", "data/processed")
	v.SetDefault("data.enriched_dir", "data/enriched")
	v.SetDefault("data.ports_csv", "port_Port Charges Location Data.csv")
	v.SetDefault("data.benchmarks_csv", "symbols _Platts Benchmarks.csv")
	v.SetDefault("data.currencies_csv", "currency.csv")

	// Resolver defaults
	v.SetDefault("resolver.threshold", 80)

	// Market defaults
	v.SetDefault("market.lookback_months", 3)
	v.SetDefault("market.interval", "1d")
	v.SetDefault("market.http_timeout_sec", 15)
	v.SetDefault("market.headlines", false)
	v.SetDefault("market.headline_limit", 8)

	// Render defaults
	v.SetDefault("render.output_file", "index.html")
	v.SetDefault("render.title", "PortLink — Benchmark & Logistics Dashboard")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
}

// PortsPath returns the full path of the ports input CSV.
func (c *Config) PortsPath() string {
	return filepath.Join(c.Data.RawDir, c.Data.PortsCSV)
}

// BenchmarksPath returns the full path of the benchmarks input CSV.
func (c *Config) BenchmarksPath() string {
	return filepath.Join(c.Data.RawDir, c.Data.BenchmarksCSV)
}

// CurrenciesPath returns the full path of the currencies input CSV.
func (c *Config) CurrenciesPath() string {
	return filepath.Join(c.Data.RawDir, c.Data.CurrenciesCSV)
}

// PayloadPath returns the full path of the combined dashboard payload.
func (c *Config) PayloadPath() string {
	return filepath.Join(c.Data.EnrichedDir, "dashboard_payload.json")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
