package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Options configures a session.
type Options struct {
	// LogLevel is one of trace, debug, info, warn, error, none.
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// LogFile, when set, receives log output instead of stderr.
	LogFile string `yaml:"log_file,omitempty" toml:"log_file"`

	// Color enables ANSI colours when the output is a terminal.
	Color bool `yaml:"color" toml:"color"`

	// Collation selects string ordering for <, >, pmin and pmax on
	// character vectors: a BCP-47 tag such as "en" or "de", or "C" for byte
	// order.
	Collation string `yaml:"collation" toml:"collation"`

	// Exact is the default name matching mode for [[: "true" matches names
	// exactly, "false" also accepts a unique prefix, "na" accepts a unique
	// prefix and warns.
	Exact string `yaml:"exact" toml:"exact"`

	// WarnAsError makes the CLI fail when any warning was raised.
	WarnAsError bool `yaml:"warn_as_error" toml:"warn_as_error"`

	// KeepAttributes copies regular attributes of the left operand onto
	// element-wise results.
	KeepAttributes bool `yaml:"keep_attributes" toml:"keep_attributes"`

	// MaxPrint limits how many elements the printer shows.
	MaxPrint int `yaml:"max_print" toml:"max_print"`
}

// DefaultOptions returns the options used when no file is given.
func DefaultOptions() *Options {
	return &Options{
		LogLevel:       "warn",
		Color:          true,
		Collation:      CollationC,
		Exact:          ExactTrue,
		KeepAttributes: true,
		MaxPrint:       1000,
	}
}

// LoadOptions reads an option file. The format follows the extension.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options %s: %w", path, err)
	}
	return ParseOptions(data, path)
}

// ParseOptions decodes option file content. The path selects the format and
// is used in error messages.
func ParseOptions(data []byte, path string) (*Options, error) {
	opts := DefaultOptions()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, opts); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), opts); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported option file extension (want one of %s)",
			path, strings.Join(OptionFileExtensions, ", "))
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// ApplyEnv overrides fields from the environment.
func (o *Options) ApplyEnv() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		o.LogLevel = lvl
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		o.Color = false
	}
}

// Validate checks enumerated fields.
func (o *Options) Validate() error {
	switch strings.ToLower(o.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "none":
	default:
		return fmt.Errorf("invalid log_level %q", o.LogLevel)
	}
	switch strings.ToLower(o.Exact) {
	case ExactTrue, ExactFalse, ExactNA:
	default:
		return fmt.Errorf("invalid exact %q (want true, false or na)", o.Exact)
	}
	if o.MaxPrint < 0 {
		return fmt.Errorf("max_print must not be negative")
	}
	return nil
}
