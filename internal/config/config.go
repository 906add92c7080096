package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"tempconv"
	"tempconv/internal/logger"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys, shared by flags, the config file and TEMPCONV_* env vars.
const (
	KeyLogLevel  = "log_level"
	KeyTolerance = "tolerance"
	KeyFrom      = "from"

	envPrefix = "TEMPCONV"
)

const (
	defaultLogLevel  = logger.InfoLevel
	defaultTolerance = 0.01
)

var errInvalidTolerance = errors.New("invalid tolerance: must be a finite number > 0")

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel  string  `mapstructure:"log_level"`
	Tolerance float64 `mapstructure:"tolerance"`
	From      string  `mapstructure:"from"` // empty: run the self-test

	// Args are the positional command-line arguments left after flags.
	Args []string `mapstructure:"-"`
}

// Load resolves configuration from args, the environment and an optional
// config file. Precedence: flag > env > file > default.
// Without --config, configs/config.yml is read if present.
func Load(name string, args []string) (Config, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("log-level", defaultLogLevel, "log level: debug, info, warn or error")
	fs.Float64("tolerance", defaultTolerance, "absolute tolerance for numeric assertions")
	fs.String("from", "", "convert positional arguments from this scale (c or f) instead of running the self-test")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyTolerance, defaultTolerance)
	v.SetDefault(KeyFrom, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		KeyLogLevel:  "log-level",
		KeyTolerance: "tolerance",
		KeyFrom:      "from",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if err := readConfigFile(v, *configPath); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Args = fs.Args()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readConfigFile reads an explicit path or, failing that, the optional
// configs/config.yml. A missing default file is not an error.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.AddConfigPath("configs")
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Validate checks the values that cannot be fixed up silently.
func (c Config) Validate() error {
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.LogLevel)
	}
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w, got %v", errInvalidTolerance, c.Tolerance)
	}
	if c.From != "" {
		if _, err := tempconv.ParseScale(c.From); err != nil {
			return err
		}
	}
	return nil
}

// ConvertMode reports whether positional arguments should be converted
// instead of running the self-test.
func (c Config) ConvertMode() bool {
	return c.From != ""
}
