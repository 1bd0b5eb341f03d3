// Package config loads the environment configuration of the pySET binaries.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

var validate = validator.New()

// ClientConfig drives the terminal client and the api router
type ClientConfig struct {
	Hostname    string        `envconfig:"PYSET_HOSTNAME" default:"localhost" validate:"required,hostname|ip"`
	Scheme      string        `envconfig:"PYSET_SCHEME" default:"http" validate:"oneof=http https"`
	LocalPort   int           `envconfig:"PYSET_LOCAL_PORT" default:"5000" validate:"min=1,max=65535"`
	HTTPTimeout time.Duration `envconfig:"PYSET_HTTP_TIMEOUT" default:"0s" validate:"gte=0"`
	HistoryFile string        `envconfig:"PYSET_HISTORY_FILE" default:".pyset_history"`
	Log         LogConfig
}

// WebConfig drives the static web host
type WebConfig struct {
	Host        string `envconfig:"PYSET_WEB_HOST" default:"localhost" validate:"required"`
	Port        int    `envconfig:"PYSET_WEB_PORT" default:"9090" validate:"min=1,max=65535"`
	APIUpstream string `envconfig:"PYSET_API_UPSTREAM" validate:"omitempty,url"`
	Log         LogConfig
}

type LogConfig struct {
	Level  string `envconfig:"PYSET_LOG_LEVEL" default:"info"`
	Format string `envconfig:"PYSET_LOG_FORMAT" default:"console" validate:"oneof=json console"`
}

func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing client config: %w", err)
	}
	cfg.Scheme = strings.ToLower(cfg.Scheme)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ClientConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid client config: %w", err)
	}
	return nil
}

func LoadWeb() (*WebConfig, error) {
	var cfg WebConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing web config: %w", err)
	}
	cfg.APIUpstream = strings.TrimRight(cfg.APIUpstream, "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *WebConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid web config: %w", err)
	}
	return nil
}
