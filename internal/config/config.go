// Package config loads huffle's settings: built-in defaults, then an
// optional YAML file, then HUFFLE_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	kYaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "HUFFLE_"

// Keys.
const (
	KeyLoggerLevel      = "logger.level"
	KeyLoggerPrettier   = "logger.prettier"
	KeyLoggerTimeFormat = "logger.time-format"
	KeyInputCharset     = "input.charset"
	KeyOutputMode       = "output.mode"
	KeyOutputPerm       = "output.perm"
)

// Output modes for results printed to stdout.
const (
	OutputModeText      = "text"
	OutputModeContainer = "container"
)

// Defaults holds the value of every key when nothing else sets it.
var Defaults = map[string]interface{}{
	KeyLoggerLevel:      "info",
	KeyLoggerPrettier:   true,
	KeyLoggerTimeFormat: time.RFC3339,
	KeyInputCharset:     "utf-8",
	KeyOutputMode:       OutputModeText,
	KeyOutputPerm:       0644,
}

// Conf is a koanf instance whose getters accept a fallback value for keys
// that are not set.
type Conf struct {
	*koanf.Koanf
}

// New wraps an already populated map, mainly for tests.
func New(values map[string]interface{}) (*Conf, error) {
	conf := &Conf{Koanf: koanf.New(".")}
	if err := conf.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, err
	}
	return conf, nil
}

// Load builds the configuration.  An empty path skips the YAML file; a
// non-empty path that cannot be read is an error.
func Load(path string) (*Conf, error) {
	conf, err := New(Defaults)
	if err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := conf.Load(file.Provider(path), kYaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	// HUFFLE_LOGGER_LEVEL → logger.level, HUFFLE_INPUT_CHARSET → input.charset
	if err := conf.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks the values that have a closed set of choices.
func (c *Conf) Validate() error {
	switch mode := c.String(KeyOutputMode, OutputModeText); mode {
	case OutputModeText, OutputModeContainer:
	default:
		return fmt.Errorf("%s: unknown output mode %q", KeyOutputMode, mode)
	}
	if perm := c.Int(KeyOutputPerm, 0644); perm <= 0 || perm > 0777 {
		return fmt.Errorf("%s: %#o is not a file permission", KeyOutputPerm, perm)
	}
	return nil
}

// Bool returns the bool at path, or the first default if path is unset.
func (c *Conf) Bool(path string, defaultValues ...bool) bool {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Bool(path)
}

// String returns the string at path, or the first default if path is unset.
func (c *Conf) String(path string, defaultValues ...string) string {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.String(path)
}

// Int returns the int at path, or the first default if path is unset.
func (c *Conf) Int(path string, defaultValues ...int) int {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Int(path)
}
