package cli

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// Config holds the settings for evaluating expressions from the command line.
// Values come from an optional YAML file and are overridden by flags.
type Config struct {
	Precision uint   `yaml:"precision"`
	Strict    bool   `yaml:"strict"`
	Pow       bool   `yaml:"pow"`
	Verb      string `yaml:"verb"`
	Format    string `yaml:"format"`
	Echo      bool   `yaml:"echo"`
	Workers   int    `yaml:"workers"`
	LogLevel  string `yaml:"log_level"`
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ValidLogLevels defines the allowed log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the configuration used when neither a file nor flags
// say otherwise.
func DefaultConfig() Config {
	return Config{
		Precision: 64,
		Verb:      "%g",
		Format:    "text",
		Workers:   4,
		LogLevel:  "warn",
	}
}

// RegisterFlags binds the config's fields to flags, using the current values
// as defaults.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.UintVarP(&c.Precision, "precision", "p", c.Precision, "precision of calculations in bits")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "allow only one operator per bracket level")
	fs.BoolVar(&c.Pow, "pow", c.Pow, "enable the ^ exponentiation operator")
	fs.StringVar(&c.Verb, "fmt", c.Verb, "result formatting verb")
	fs.StringVar(&c.Format, "format", c.Format, "output format (text|json)")
	fs.BoolVar(&c.Echo, "echo", c.Echo, "print reduced expression trees")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of expressions to evaluate concurrently")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug|info|warn|error)")
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their default values; unknown fields are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// merge takes each value from file unless its flag was set explicitly.
func (c *Config) merge(file Config, fs *pflag.FlagSet) {
	if !fs.Changed("precision") {
		c.Precision = file.Precision
	}
	if !fs.Changed("strict") {
		c.Strict = file.Strict
	}
	if !fs.Changed("pow") {
		c.Pow = file.Pow
	}
	if !fs.Changed("fmt") {
		c.Verb = file.Verb
	}
	if !fs.Changed("format") {
		c.Format = file.Format
	}
	if !fs.Changed("echo") {
		c.Echo = file.Echo
	}
	if !fs.Changed("workers") {
		c.Workers = file.Workers
	}
	if !fs.Changed("log-level") {
		c.LogLevel = file.LogLevel
	}
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.Precision == 0 || c.Precision > big.MaxPrec {
		return errors.Errorf("precision (%d) must be between 1 and %d", c.Precision, uint(big.MaxPrec))
	}
	if !contains(ValidFormats, c.Format) {
		return errors.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if !contains(ValidLogLevels, c.LogLevel) {
		return errors.Errorf("invalid log level %q: must be one of %v", c.LogLevel, ValidLogLevels)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers (%d) must be positive", c.Workers)
	}
	if s := fmt.Sprintf(c.Verb, big.NewFloat(1)); strings.Contains(s, "%!") {
		// fmt marks verbs it cannot apply with %!.
		return errors.Errorf("formatting verb %q cannot format a number: %s", c.Verb, s)
	}
	return nil
}

// options converts the config to evaluator options.
func (c *Config) options(logger log.Logger) []calc.Option {
	opts := []calc.Option{calc.Prec(c.Precision), calc.Logger(logger)}
	if c.Strict {
		opts = append(opts, calc.Strict())
	}
	if c.Pow {
		opts = append(opts, calc.WithOperator(calc.Pow))
	}
	return opts
}

// newLogger creates a logfmt logger on w that drops records below lvl.
func newLogger(w io.Writer, lvl string) log.Logger {
	var allow level.Option
	switch lvl {
	case "debug":
		allow = level.AllowDebug()
	case "info":
		allow = level.AllowInfo()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowWarn()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
