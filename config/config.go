// Package config loads and validates the command-line configuration.
//
// Sources, lowest to highest precedence: built-in defaults, an optional
// YAML file named by --config, KNAPSACK_* environment variables, flags.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/katalvlaran/knapsack/trial"
)

// EnvPrefix prefixes every environment override, e.g. KNAPSACK_TRIALS.
const EnvPrefix = "KNAPSACK"

// Configuration keys. Flags use the same names with '-' for '_'.
const (
	ConfigFileKey = "config"
	SizeKey       = "size"
	TrialsKey     = "trials"
	UpdateFreqKey = "update_freq"
	WeightMinKey  = "weight_min"
	WeightMaxKey  = "weight_max"
	ValueMinKey   = "value_min"
	ValueMaxKey   = "value_max"
	CapacityKey   = "knapsack_capacity"
	SeedKey       = "seed"
	WorkersKey    = "workers"
	FormatKey     = "format"
	ProgressKey   = "progress"
	LogLevelKey   = "log_level"
	MetricsKey    = "metrics_addr"
	TraceKey      = "trace"
	InstanceKey   = "show_instance"
)

// Progress modes.
const (
	ProgressAuto   = "auto"
	ProgressAlways = "always"
	ProgressNever  = "never"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full configuration surface of the knapsack command.
type Config struct {
	Size         int    `mapstructure:"size" yaml:"size" validate:"required,min=1,max=64"`
	Trials       int    `mapstructure:"trials" yaml:"trials" validate:"min=1"`
	UpdateFreq   uint64 `mapstructure:"update_freq" yaml:"update_freq" validate:"min=1"`
	WeightMin    uint32 `mapstructure:"weight_min" yaml:"weight_min" validate:"ltefield=WeightMax"`
	WeightMax    uint32 `mapstructure:"weight_max" yaml:"weight_max"`
	ValueMin     uint32 `mapstructure:"value_min" yaml:"value_min" validate:"ltefield=ValueMax"`
	ValueMax     uint32 `mapstructure:"value_max" yaml:"value_max"`
	Capacity     uint64 `mapstructure:"knapsack_capacity" yaml:"knapsack_capacity"`
	Seed         int64  `mapstructure:"seed" yaml:"seed"`
	Workers      int    `mapstructure:"workers" yaml:"workers" validate:"min=0"`
	Format       string `mapstructure:"format" yaml:"format" validate:"oneof=table yaml"`
	Progress     string `mapstructure:"progress" yaml:"progress" validate:"oneof=auto always never"`
	ShowInstance bool   `mapstructure:"show_instance" yaml:"show_instance"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsAddr  string `mapstructure:"metrics_addr" yaml:"metrics_addr" validate:"omitempty,hostname_port"`
	Trace        string `mapstructure:"trace" yaml:"trace" validate:"oneof=none stdout"`
}

// Default returns the configuration used when nothing overrides it. Size
// has no default and must be supplied.
func Default() Config {
	return Config{
		Trials:       3,
		UpdateFreq:   knapsack.DefaultUpdates,
		WeightMin:    50,
		WeightMax:    100,
		ValueMin:     100,
		ValueMax:     500,
		Capacity:     1000,
		Format:       "table",
		Progress:     ProgressAuto,
		ShowInstance: true,
		LogLevel:     "warn",
		Trace:        "none",
	}
}

// flagName maps a configuration key to its flag name.
func flagName(key string) string { return strings.ReplaceAll(key, "_", "-") }

// AddFlags registers one flag per configuration key on fs.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(ConfigFileKey, "", "YAML configuration file")
	fs.IntP(SizeKey, "s", 0, "number of items per instance (1-64)")
	fs.IntP(TrialsKey, "t", d.Trials, "number of independent trials")
	fs.Uint64(flagName(UpdateFreqKey), d.UpdateFreq, "progress updates per solve")
	fs.Uint32(flagName(WeightMinKey), d.WeightMin, "minimum item weight")
	fs.Uint32(flagName(WeightMaxKey), d.WeightMax, "maximum item weight")
	fs.Uint32(flagName(ValueMinKey), d.ValueMin, "minimum item value")
	fs.Uint32(flagName(ValueMaxKey), d.ValueMax, "maximum item value")
	fs.Uint64(flagName(CapacityKey), d.Capacity, "knapsack capacity")
	fs.Int64(SeedKey, d.Seed, "base seed for instance generation (0 = random)")
	fs.IntP(WorkersKey, "w", d.Workers, "concurrent trials (0 = GOMAXPROCS)")
	fs.StringP(FormatKey, "f", d.Format, "report format: table or yaml")
	fs.String(ProgressKey, d.Progress, "progress bars: auto, always or never")
	fs.Bool(flagName(InstanceKey), d.ShowInstance, "print every item of each instance")
	fs.String(flagName(LogLevelKey), d.LogLevel, "log level: debug, info, warn or error")
	fs.String(flagName(MetricsKey), d.MetricsAddr, "serve Prometheus metrics on this address while running")
	fs.String(TraceKey, d.Trace, "span exporter: none or stdout")
}

var keys = []string{
	SizeKey, TrialsKey, UpdateFreqKey, WeightMinKey, WeightMaxKey,
	ValueMinKey, ValueMaxKey, CapacityKey, SeedKey, WorkersKey,
	FormatKey, ProgressKey, InstanceKey, LogLevelKey, MetricsKey, TraceKey,
}

// Load resolves the configuration from defaults, the optional file, the
// environment and fs (which may be nil), then validates it.
func Load(fs *pflag.FlagSet) (Config, error) {
	v, err := newViper(fs)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	var defaults map[string]any
	raw, err := yaml.Marshal(Default())
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, &defaults); err != nil {
		return nil, err
	}
	for _, key := range keys {
		v.SetDefault(key, defaults[key])
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if fs != nil {
		for _, key := range append([]string{ConfigFileKey}, keys...) {
			if f := fs.Lookup(flagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if file := v.GetString(ConfigFileKey); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	return v, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})
	return v
}

// Validate checks every field rule and the range orderings.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = describe(fe)
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "ltefield":
		return fmt.Sprintf("%s (%v) must not exceed %s", fe.Field(), fe.Value(), keyOf(fe.Param()))
	default:
		return fmt.Sprintf("%s failed %s check", fe.Field(), fe.Tag())
	}
}

// keyOf returns the configuration key of the Config field named field.
func keyOf(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return field
	}
	name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
	return name
}

// Params converts the configuration into runner parameters.
func (c Config) Params() trial.Params {
	return trial.Params{
		Items:    c.Size,
		Trials:   c.Trials,
		Weights:  knapsack.Range{Min: c.WeightMin, Max: c.WeightMax},
		Values:   knapsack.Range{Min: c.ValueMin, Max: c.ValueMax},
		Capacity: c.Capacity,
		Updates:  c.UpdateFreq,
		Seed:     c.Seed,
		Workers:  c.Workers,
	}
}

// YAML renders c in the configuration file format.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
