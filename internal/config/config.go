// Package config resolves CLI settings from flags, CFTYPES_* environment
// variables, a cftypes.yaml file and defaults, in that order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. CFTYPES_TOKEN.
	EnvPrefix = "CFTYPES"
	// FileName is the config file looked up in the working directory.
	FileName = "cftypes"
)

// Keys shared by flags, environment and config file.
const (
	KeySource      = "source"
	KeyOut         = "out"
	KeyInclude     = "include"
	KeyToken       = "token"
	KeyHeader      = "header"
	KeyJSDoc       = "jsdoc"
	KeyTypeGuard   = "typeguard"
	KeyIndex       = "index"
	KeyPreserve    = "preserve"
	KeyInteractive = "interactive"
	KeyConcurrency = "concurrency"
	KeyTimeout     = "timeout"
	KeyDebounce    = "debounce"
	KeyJSONLog     = "json_log"
	KeyVerbose     = "verbose"
)

// DefaultHeader marks generated files.
const DefaultHeader = "// This file was generated by cftypes. Do not edit."

// Config is the resolved CLI configuration.
type Config struct {
	Source      string        `mapstructure:"source"`
	Out         string        `mapstructure:"out"`
	Include     []string      `mapstructure:"include"`
	Token       string        `mapstructure:"token"`
	Header      string        `mapstructure:"header"`
	JSDoc       bool          `mapstructure:"jsdoc"`
	TypeGuard   bool          `mapstructure:"typeguard"`
	Index       bool          `mapstructure:"index"`
	Preserve    bool          `mapstructure:"preserve"`
	Interactive bool          `mapstructure:"interactive"`
	Concurrency int           `mapstructure:"concurrency"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Debounce    time.Duration `mapstructure:"debounce"`
	JSONLog     bool          `mapstructure:"json_log"`
	Verbose     bool          `mapstructure:"verbose"`
}

// SetDefaults configures default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySource, "")
	v.SetDefault(KeyOut, "")
	v.SetDefault(KeyInclude, []string{})
	v.SetDefault(KeyToken, "")
	v.SetDefault(KeyHeader, DefaultHeader)
	v.SetDefault(KeyJSDoc, false)
	v.SetDefault(KeyTypeGuard, false)
	v.SetDefault(KeyIndex, false)
	v.SetDefault(KeyPreserve, false)
	v.SetDefault(KeyInteractive, false)
	v.SetDefault(KeyConcurrency, 0)
	v.SetDefault(KeyTimeout, 30*time.Second)
	v.SetDefault(KeyDebounce, 300*time.Millisecond)
	v.SetDefault(KeyJSONLog, false)
	v.SetDefault(KeyVerbose, false)
}

// NewViper returns a viper instance with defaults and environment binding.
// Flags are bound by the caller before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the config file into v and resolves the configuration. An
// explicit path must exist; without one, cftypes.yaml in the working
// directory is optional.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "config: read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: unmarshal")
	}
	cfg.Include = normalizeList(cfg.Include)
	return cfg, nil
}

// normalizeList splits comma separated entries, which is how a list arrives
// from an environment variable, and drops blanks.
func normalizeList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
