package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// CLASS_SERVER_ADDR points at a running teacher server. When empty
	// the e2e suite is skipped, so unit runs stay self-contained.
	ServerAddr string `envconfig:"CLASS_SERVER_ADDR"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
