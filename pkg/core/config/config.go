package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mdw-chronos/foundation/core/error"
)

// EnvConfigPath names the environment variable that points at the config file
const EnvConfigPath = "CHRONOS_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Chronos ChronosConfig `toml:"chronos" yaml:"chronos"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// ChronosConfig holds the TIMEX service configuration
type ChronosConfig struct {
	Port              int         `toml:"port" yaml:"port"`
	Host              string      `toml:"host" yaml:"host"`
	EnableReflection  bool        `toml:"enable_reflection" yaml:"enable_reflection"`
	ReferenceLocation string      `toml:"reference_location" yaml:"reference_location"`
	Cache             CacheConfig `toml:"cache" yaml:"cache"`
}

// CacheConfig holds parse cache settings
type CacheConfig struct {
	Enabled  bool     `toml:"enabled" yaml:"enabled"`
	MaxItems int      `toml:"max_items" yaml:"max_items"`
	TTL      Duration `toml:"ttl" yaml:"ttl"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.Chronos.Cache.Enabled = true
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format is chosen by
// extension; anything other than .yaml/.yml is decoded as TOML.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Load")
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load")
	}

	cfg := Config{Chronos: ChronosConfig{Cache: CacheConfig{Enabled: true}}}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in free-form fields
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the CHRONOS_CONFIG environment variable,
// falling back to the default locations and finally to built-in defaults.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/chronos.toml",
			"./chronos.toml",
			"./configs/chronos.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/mdw/chronos.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "chronos"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "json"
	}

	// Chronos
	if c.Chronos.Port == 0 {
		c.Chronos.Port = 9160
	}
	if c.Chronos.Host == "" {
		c.Chronos.Host = "0.0.0.0"
	}
	if c.Chronos.ReferenceLocation == "" {
		c.Chronos.ReferenceLocation = "UTC"
	}
	if c.Chronos.Cache.MaxItems == 0 {
		c.Chronos.Cache.MaxItems = 1024
	}
	if c.Chronos.Cache.TTL.Duration == 0 {
		c.Chronos.Cache.TTL.Duration = 10 * time.Minute
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Chronos.Host = os.ExpandEnv(c.Chronos.Host)
	c.Chronos.ReferenceLocation = os.ExpandEnv(c.Chronos.ReferenceLocation)
}

// Validate checks value ranges that defaults cannot repair
func (c *Config) Validate() error {
	if c.Chronos.Port < 1 || c.Chronos.Port > 65535 {
		return mdwerror.Newf("invalid port %d, must be between 1 and 65535", c.Chronos.Port).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}
	if _, err := time.LoadLocation(c.Chronos.ReferenceLocation); err != nil {
		return mdwerror.Wrap(err, "invalid reference_location").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("reference_location", c.Chronos.ReferenceLocation)
	}
	if c.Chronos.Cache.MaxItems < 0 {
		return mdwerror.Newf("invalid cache max_items %d", c.Chronos.Cache.MaxItems).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}
	return nil
}

// Location returns the reference time zone, UTC if it cannot be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Chronos.ReferenceLocation)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Address returns the listen address of the chronos service
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Chronos.Host, c.Chronos.Port)
}
