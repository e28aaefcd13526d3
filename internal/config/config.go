package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the process configuration, loaded from an optional YAML
// file and STUDYGROUP_-prefixed environment variables.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Scoring ScoringConfig
	LLM     LLMConfig
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release or test

	// CORSOrigins whitelists browser origins; "*" allows all.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // empty disables the file core
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
	Console    bool   `mapstructure:"console"`
}

type ScoringConfig struct {
	// PhrasesFile overrides the built-in indicator tables when set.
	PhrasesFile string `mapstructure:"phrases_file"`

	// WatchPhrases reloads the scorer when PhrasesFile changes on disk.
	WatchPhrases bool `mapstructure:"watch_phrases"`
}

type LLMConfig struct {
	// Provider pins a provider; empty means discover from the
	// environment (STUDYGROUP_LLM_PROVIDER and API key variables).
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`

	// Simulate forces canned replies for every session regardless of
	// what requests ask for.
	Simulate bool `mapstructure:"simulate"`
}

// Load reads configuration from path (a YAML file) plus the
// environment. An empty path searches for studygroup.yaml in the
// working directory and runs on defaults when none exists; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "logs/studygroup.log")
	v.SetDefault("logging.max_size_mb", 100)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age_days", 30)
	v.SetDefault("logging.compress", true)
	v.SetDefault("logging.console", true)
	v.SetDefault("scoring.phrases_file", "")
	v.SetDefault("scoring.watch_phrases", false)
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.simulate", false)

	v.SetEnvPrefix("STUDYGROUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("studygroup")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
