package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/args"
)

const envPrefix = "ARENAFLAGS"

type config struct {
	BlockSize int         `mapstructure:"block_size"`
	LogLevel  string      `mapstructure:"log_level"`
	NoColor   bool        `mapstructure:"no_color"`
	Flags     []args.Flag `mapstructure:"flags"`
}

// loadConfig reads ARENAFLAGS_* environment variables and, if
// ARENAFLAGS_CONFIG names one, a config file. Environment wins over file.
func loadConfig() (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("block_size", arena.DefaultBlockSize)
	v.SetDefault("log_level", "warn")
	v.SetDefault("no_color", false)

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, errors.Wrap(err, "decode config")
	}
	for i, f := range cfg.Flags {
		if f.Literal == "" {
			return config{}, errors.Errorf("flags[%d]: empty literal", i)
		}
	}
	return cfg, nil
}
