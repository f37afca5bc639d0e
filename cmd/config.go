package main

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const tomlConfigVersion = "1.0.0"

const (
	DefaultLogLevel   = "info"
	DefaultStressSize = 1_000_000
	DefaultDrain      = drainClear
)

type demoConfig struct {
	Version string
	Log     logConfig
	Stress  stressConfig
}

type logConfig struct {
	Level string
	JSON  bool
}

type stressConfig struct {
	Size  int
	Drain string
}

func defaultConfig() demoConfig {
	return demoConfig{
		Version: tomlConfigVersion,
		Log: logConfig{
			Level: DefaultLogLevel,
			JSON:  false,
		},
		Stress: stressConfig{
			Size:  DefaultStressSize,
			Drain: DefaultDrain,
		},
	}
}

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
	logJSONFlag  = "log-json"
	sizeFlag     = "size"
	drainFlag    = "drain"
)

func registerRootFlags(fs *pflag.FlagSet) {
	def := defaultConfig()
	fs.StringP(configFlag, "c", "", "load options from a toml config file")
	fs.String(logLevelFlag, def.Log.Level, "log level (trace, debug, info, warn, error)")
	fs.Bool(logJSONFlag, def.Log.JSON, "write logs as JSON instead of console text")
}

func registerStressFlags(fs *pflag.FlagSet) {
	def := defaultConfig()
	fs.IntP(sizeFlag, "n", def.Stress.Size, "number of elements to push")
	fs.String(drainFlag, def.Stress.Drain, "teardown method: front, back or clear")
}

// getDemoConfig resolves the effective options: defaults, then the config
// file, then flags the user set explicitly.
func getDemoConfig(cmd *cobra.Command) (demoConfig, error) {
	cfg := defaultConfig()

	fs := cmd.Flags()
	file, err := fs.GetString(configFlag)
	if err != nil {
		return demoConfig{}, err
	}
	if file != "" {
		cfg, err = loadDemoConfig(file)
		if err != nil {
			return demoConfig{}, errors.Wrapf(err, "cannot load config %#v", file)
		}
	}

	applyFlags(fs, &cfg)
	return cfg, nil
}

func applyFlags(fs *pflag.FlagSet, cfg *demoConfig) {
	if fs.Changed(logLevelFlag) {
		cfg.Log.Level, _ = fs.GetString(logLevelFlag)
	}
	if fs.Changed(logJSONFlag) {
		cfg.Log.JSON, _ = fs.GetBool(logJSONFlag)
	}
	if fs.Lookup(sizeFlag) != nil && fs.Changed(sizeFlag) {
		cfg.Stress.Size, _ = fs.GetInt(sizeFlag)
	}
	if fs.Lookup(drainFlag) != nil && fs.Changed(drainFlag) {
		cfg.Stress.Drain, _ = fs.GetString(drainFlag)
	}
}

// loadDemoConfig reads a toml config. Keys left out, or set to zero, take
// the default value.
func loadDemoConfig(file string) (demoConfig, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return demoConfig{}, err
	}

	var config demoConfig
	if err := toml.Unmarshal(b, &config); err != nil {
		return demoConfig{}, err
	}

	def := defaultConfig()
	if config.Version == "" {
		config.Version = def.Version
	}
	if config.Log.Level == "" {
		config.Log.Level = def.Log.Level
	}
	if config.Stress.Size == 0 {
		config.Stress.Size = def.Stress.Size
	}
	if config.Stress.Drain == "" {
		config.Stress.Drain = def.Stress.Drain
	}
	return config, nil
}

func writeDemoConfigToFile(config demoConfig, file string) error {
	b, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0644)
}
