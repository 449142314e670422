package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global holds user preferences for the assistant.
type Global struct {
	Language         string `mapstructure:"language" yaml:"language"`
	DetailLevel      string `mapstructure:"detail_level" yaml:"detail_level"`
	ChartStyle       string `mapstructure:"chart_style" yaml:"chart_style"`
	OutputFormat     string `mapstructure:"output_format" yaml:"output_format"`
	WorkingDirectory string `mapstructure:"working_directory" yaml:"working_directory"`
	MaxSearchResults int    `mapstructure:"max_search_results" yaml:"max_search_results"`
	HistoryLimit     int    `mapstructure:"history_limit" yaml:"history_limit"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.tablechat/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tablechat")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TABLECHAT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("language", "zh-TW")
	v.SetDefault("detail_level", "standard")
	v.SetDefault("chart_style", "auto")
	v.SetDefault("output_format", "xlsx")
	v.SetDefault("max_search_results", 10)
	v.SetDefault("history_limit", 0)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tablechat")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve working_directory default: the current directory.
	if c.WorkingDirectory == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working dir: %w", err)
		}
		c.WorkingDirectory = wd
	}
	return &c, nil
}
