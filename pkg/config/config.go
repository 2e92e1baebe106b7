// Package config contains the configuration of the seastream CLI tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the version of the tool, set at build time.
var Version string

// Encodings accepted for dump output and put input.
const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
	EncodingRaw    = "raw"
)

// Config is the top level config for the seastream CLI tool.
type Config struct {
	// LogLevel is a minimal logging level ("debug", "info", ...).
	LogLevel string `yaml:"LogLevel"`
	// LogPath is a file to log to instead of stderr.
	LogPath string `yaml:"LogPath"`
	// Encoding is the default payload encoding for dump and put.
	Encoding string `yaml:"Encoding"`
}

// Default returns a Config with default settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Encoding: EncodingHex,
	}
}

// ValidEncoding reports whether e names a supported payload encoding.
func ValidEncoding(e string) bool {
	switch e {
	case EncodingHex, EncodingBase64, EncodingRaw:
		return true
	}
	return false
}

// LoadFile attempts to load the config from the given path, applying
// defaults for anything the file leaves unset.
func LoadFile(configPath string) (Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(configData, &config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	if !ValidEncoding(config.Encoding) {
		return Config{}, fmt.Errorf("invalid Encoding %q in %s", config.Encoding, configPath)
	}

	return config, nil
}
