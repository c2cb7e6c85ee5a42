package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/cipherpipe-go/internal/cipher"
	"github.com/cipherpipe-go/internal/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Address string `json:"address" mapstructure:"address"`
	Port    int    `json:"port" mapstructure:"port"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `json:"format" mapstructure:"format"` // console, json
}

// StageConfig describes one named pipeline stage to build via the
// encoder registry
type StageConfig struct {
	Name   string         `json:"name" mapstructure:"name"`
	Kind   string         `json:"kind" mapstructure:"kind"`
	Params map[string]any `json:"params" mapstructure:"params"`
}

// Config represents the main configuration
type Config struct {
	Server ServerConfig  `json:"server" mapstructure:"server"`
	Log    LogConfig     `json:"log" mapstructure:"log"`
	Stages []StageConfig `json:"stages" mapstructure:"stages"`
}

// Load reads configuration from config.{json,yaml} in the usual search
// paths, falling back to defaults when no file is present
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("$HOME/.cipherpipe")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFile reads configuration from an explicit path
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 5345)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// ListenAddr returns the address:port the server binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// BuildPipeline assembles the configured stages into a Pipeline through
// the encoder registry. An empty stage list yields an empty, pass-through
// pipeline.
func (c *Config) BuildPipeline() (*cipher.Pipeline, error) {
	stages := make([]cipher.Stage, 0, len(c.Stages))
	for _, sc := range c.Stages {
		if sc.Name == "" {
			return nil, errors.NewValidationf("stage of kind %q has no name", sc.Kind)
		}
		enc, err := cipher.New(sc.Kind, sc.Params)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", sc.Name, err)
		}
		stages = append(stages, cipher.Stage{Encoder: enc, Name: sc.Name})
	}
	return cipher.NewPipeline(stages...)
}
