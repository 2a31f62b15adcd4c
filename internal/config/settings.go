package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings are the application settings, distinct from taxpayer input.
type Settings struct {
	Format    string         `mapstructure:"format"`
	RulesFile string         `mapstructure:"rules_file"`
	Log       LogSettings    `mapstructure:"log"`
	Server    ServerSettings `mapstructure:"server"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerSettings struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// NewViper prepares a viper instance: an explicit file when path is set,
// otherwise itrgo.yaml from the working directory or $HOME/.config/itrgo.
// ITRGO_* environment variables override file values, e.g.
// ITRGO_SERVER_ADDRESS.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("itrgo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/itrgo")
	}

	v.SetEnvPrefix("ITRGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", "console")
	v.SetDefault("rules_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	return v
}

// LoadSettings reads the config file, if any, and unmarshals the merged
// view of defaults, file, environment and bound flags. A missing default
// config file is not an error.
func LoadSettings(v *viper.Viper) (Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}
