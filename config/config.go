package config

import (
	"fmt"
	"os"

	"github.com/lytics/confl"
	aspec "github.com/nihei9/relang/spec/automaton"
)

const (
	DefaultLogLevel = "warn"
	DefaultPrompt   = "input"
)

// Config holds the settings of the relang command. Command-line flags override them.
type Config struct {
	LogLevel    string `json:"log_level"`     // [debug,info,warn,error]
	ZeroIsState bool   `json:"zero_is_state"` // read a lone 0 field as a transition to state 0
	Compression int    `json:"compression"`   // compression level of compiled DFAs [0,1,2]
	Prompt      string `json:"prompt"`        // label of the interactive prompt
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    DefaultLogLevel,
		Compression: aspec.CompressionLevelMax,
		Prompt:      DefaultPrompt,
	}
}

// LoadConfigFromFile reads a confl formatted config file from disk. Keys missing from the file keep their defaults.
func LoadConfigFromFile(filename string) (*Config, error) {
	confBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadConfig(string(confBytes))
}

// LoadConfig reads a confl formatted config from a string. Environment variables in the string are expanded.
func LoadConfig(conf string) (*Config, error) {
	c := DefaultConfig()
	if _, err := confl.Decode(os.ExpandEnv(conf), c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Compression < aspec.CompressionLevelMin || c.Compression > aspec.CompressionLevelMax {
		return fmt.Errorf("compression must be %v to %v: %v", aspec.CompressionLevelMin, aspec.CompressionLevelMax, c.Compression)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("unknown log_level: %v", c.LogLevel)
	}
	return nil
}

// ReaderOptions returns the options for reading automaton descriptions.
func (c *Config) ReaderOptions() []aspec.ReaderOption {
	var opts []aspec.ReaderOption
	if c.ZeroIsState {
		opts = append(opts, aspec.ZeroIsState())
	}
	return opts
}
