package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Session SessionConfig `mapstructure:"session"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type CatalogConfig struct {
	// SeedFile replaces the embedded seed notes when set
	SeedFile string `mapstructure:"seed_file" validate:"omitempty,file"`
}

type SessionConfig struct {
	IdleTimeout time.Duration `mapstructure:"idle_timeout" validate:"gte=0"`
}

// SlogLevel converts the configured level name
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load reads configuration from configFile (or ./studyshare.yaml and
// $HOME/.config/studyshare when empty) and STUDYSHARE_* environment
// variables. PORT is honoured for server.port.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("studyshare")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/studyshare")
	}

	v.SetDefault("server.port", 7521)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("catalog.seed_file", "")
	v.SetDefault("session.idle_timeout", 30*time.Minute)

	v.SetEnvPrefix("studyshare")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "STUDYSHARE_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := newValidator().Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validate configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, fmt.Sprintf("%s failed %q (got %v)", strings.TrimPrefix(e.Namespace(), "Config."), e.Tag(), e.Value()))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}
