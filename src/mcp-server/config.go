// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/cloud-cost-mcp/src/internal/cost"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfig holds the JSON startup configuration, including the license.
	EnvConfig = "CONFIG"
	// EnvConfigFile names an optional settings file when --config is not given.
	EnvConfigFile = "MCP_COST_CONFIG_FILE"
)

// Fatal configuration messages, reported as JSON-RPC internal errors.
const (
	MsgNoConfiguration = "No configuration provided"
	MsgInvalidJSON     = "Invalid configuration JSON"
	MsgNoLicense       = "No license key provided"
)

// configFormat represents supported settings file formats.
type configFormat int

const (
	// configFormatJSON represents JSON settings (.json and unknown extensions)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML settings (.yaml, .yml)
	configFormatYAML
	// configFormatTOML represents TOML settings (.toml)
	configFormatTOML
)

// LogConfig controls the diagnostic channel.
type LogConfig struct {
	// Silent suppresses JSON-RPC log lines on stderr.
	Silent bool `json:"silent" yaml:"silent" toml:"silent"`
}

// Config is the resolved server configuration.
//
// DataFile and Log come from defaults, then the settings file, then the
// CONFIG environment variable. License is only ever read from CONFIG.
type Config struct {
	License  string    `json:"-" yaml:"-" toml:"-"`
	DataFile string    `json:"dataFile" yaml:"dataFile" toml:"dataFile"`
	Log      LogConfig `json:"log" yaml:"log" toml:"log"`
}

// envConfig is the shape of the CONFIG environment variable.
type envConfig struct {
	License  any    `json:"license"`
	DataFile string `json:"dataFile"`
}

// ConfigError is a fatal startup configuration failure. Message is one of
// the Msg* constants; Data carries the parser error when there is one.
type ConfigError struct {
	Message string
	Data    any
}

func (e *ConfigError) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Data)
	}
	return e.Message
}

// defaultConfig returns the built-in defaults.
func defaultConfig() *Config {
	return &Config{DataFile: cost.DefaultPath}
}

// detectConfigFormat determines the settings file format from its extension,
// case-insensitively.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	case ".toml":
		return configFormatTOML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig decodes settings data in the given format into config.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	case configFormatTOML:
		if err := toml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse TOML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig applies defaults and then the optional settings file.
//
// Parameters:
//   - configPath: Settings file path; when empty, MCP_COST_CONFIG_FILE is consulted.
//     Supported formats: .json, .yaml, .yml, .toml
//
// Returns:
//   - *Config: Configuration without a license; see applyEnvConfig
//   - error: Read or parse failure of an explicitly named settings file
func loadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, err
	}

	if strings.TrimSpace(config.DataFile) == "" {
		config.DataFile = cost.DefaultPath
	}
	return config, nil
}

// applyEnvConfig merges the CONFIG environment value into config.
//
// With requireLicense set, an empty value is [MsgNoConfiguration] and a
// missing or falsy license ("", 0, false, null) is [MsgNoLicense]. Without it, an empty
// value leaves config untouched and the license is not checked. Invalid JSON
// is [MsgInvalidJSON] in both modes.
func applyEnvConfig(config *Config, raw string, requireLicense bool) error {
	if raw == "" {
		if requireLicense {
			return &ConfigError{Message: MsgNoConfiguration}
		}
		return nil
	}

	var env *envConfig
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return &ConfigError{Message: MsgInvalidJSON, Data: err.Error()}
	}
	if env == nil {
		return &ConfigError{Message: MsgInvalidJSON, Data: "configuration must be a JSON object"}
	}

	if env.DataFile != "" {
		config.DataFile = env.DataFile
	}
	if license := licenseValue(env.License); license != "" {
		config.License = license
	}

	if requireLicense && config.License == "" {
		return &ConfigError{Message: MsgNoLicense}
	}
	return nil
}

// licenseValue returns the license as text. Strings are used as given; other
// JSON values count only when truthy (non-zero numbers, true, any object or
// array) and are kept in their compact JSON form.
func licenseValue(v any) string {
	switch license := v.(type) {
	case nil:
		return ""
	case string:
		return license
	case bool:
		if !license {
			return ""
		}
	case float64:
		if license == 0 {
			return ""
		}
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(encoded)
}

// resolveConfig loads the settings file and merges CONFIG from the environment.
func resolveConfig(configPath string, requireLicense bool) (*Config, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := applyEnvConfig(config, os.Getenv(EnvConfig), requireLicense); err != nil {
		return nil, err
	}
	return config, nil
}
