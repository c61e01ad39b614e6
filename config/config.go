// Package config loads library settings from, in increasing priority,
// built-in defaults, an optional YAML file, a .env file and BEAVERDET_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/logging"
	"github.com/SoftwareDevEngResearch/BeaverDet/thermo"
)

// EnvPrefix namespaces environment overrides, e.g. BEAVERDET_DLF_BAND.
const EnvPrefix = "BEAVERDET"

type Config struct {
	// Reference table directory; empty means the embedded tables.
	LookupDir string         `mapstructure:"lookup_dir"`
	Log       logging.Config `mapstructure:"log"`
	DLF       DLF            `mapstructure:"dlf"`
	Search    Search         `mapstructure:"search"`
	Tube      Tube           `mapstructure:"tube"`
	Thermo    Thermo         `mapstructure:"thermo"`
}

type DLF struct {
	Band float64 `mapstructure:"band"`
}

type Search struct {
	MaxIterations int     `mapstructure:"max_iterations"`
	ErrorTol      float64 `mapstructure:"error_tol"`
}

type Tube struct {
	SafetyFactor float64 `mapstructure:"safety_factor"`
}

// Thermo selects a built-in thermochemistry model by preset name. Empty
// means the caller supplies its own solver.
type Thermo struct {
	Preset string `mapstructure:"preset"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("lookup_dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output_path", "stderr")
	v.SetDefault("log.development", false)
	v.SetDefault("dlf.band", 0.1)
	v.SetDefault("search.max_iterations", 500)
	v.SetDefault("search.error_tol", 1e-4)
	v.SetDefault("tube.safety_factor", 4.0)
	v.SetDefault("thermo.preset", "")
}

// Default returns the built-in settings.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load reads path (skipped when empty) and the given .env files, or ./.env
// when none are named. A missing .env file is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the calculators cannot run with.
func (c *Config) Validate() error {
	if !(c.DLF.Band > 0 && c.DLF.Band < 1) {
		return &errs.Error{
			Kind:    errs.ErrInvalidBandFraction,
			Subject: "dlf.band",
			Actual:  fmt.Sprint(c.DLF.Band),
			Msg:     fmt.Sprintf("dlf.band %v not between 0 and 1", c.DLF.Band),
		}
	}
	if c.Search.MaxIterations <= 0 {
		return &errs.Error{Kind: errs.ErrInvalidInput, Subject: "search.max_iterations", Msg: "search.max_iterations must be positive"}
	}
	if c.Search.ErrorTol <= 0 {
		return &errs.Error{Kind: errs.ErrInvalidInput, Subject: "search.error_tol", Msg: "search.error_tol must be positive"}
	}
	if c.Tube.SafetyFactor < 1 {
		return &errs.Error{
			Kind:    errs.ErrSafetyFactorBelowOne,
			Subject: "tube.safety_factor",
			Actual:  fmt.Sprint(c.Tube.SafetyFactor),
			Msg:     "tube.safety_factor < 1",
		}
	}
	if c.Thermo.Preset != "" {
		if _, err := thermo.Preset(c.Thermo.Preset); err != nil {
			return err
		}
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return &errs.Error{Kind: errs.ErrInvalidInput, Subject: "log.format", Msg: "log.format must be json or console"}
	}
	return nil
}
