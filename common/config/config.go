package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr                 string `env:"TEMPLATEFORM_ADDR" envDefault:":8080"`
	AppRoot              string `env:"TEMPLATEFORM_APP_ROOT" envDefault:"."`
	CertFile             string `env:"TEMPLATEFORM_CERT_FILE"`
	KeyFile              string `env:"TEMPLATEFORM_KEY_FILE"`
	SyncMediaTypeOnReady bool   `env:"TEMPLATEFORM_SYNC_MEDIA_TYPE_ON_READY" envDefault:"false"`
}

// TLS reports whether both halves of the key pair were configured.
func (c *Config) TLS() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// Load reads the optional .env files and then the process environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return nil, fmt.Errorf("parse config: TEMPLATEFORM_CERT_FILE and TEMPLATEFORM_KEY_FILE must be set together")
	}
	return &cfg, nil
}
