package config

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ErrConfiguration is returned for unreadable, malformed or invalid configuration.
var ErrConfiguration = errors.New("configuration error")

// Strategy names the matcher used by the command-line tool.
const (
	StrategyNearest = "nearest"
	StrategyBracket = "bracket"
)

// Miss policies for out-of-tolerance nearest matches.
const (
	OnMissKeep = "keep"
	OnMissFail = "fail"
)

type Configuration struct {
	Log      LoggingConfig  `koanf:"log"`
	Matching MatchingConfig `koanf:"matching"`
}

type MatchingConfig struct {
	Strategy  string        `koanf:"strategy"         validate:"oneof=nearest bracket"`
	Tolerance time.Duration `koanf:"tolerance,string" validate:"gte=0s"`
	Workers   int           `koanf:"workers"          validate:"gte=1"`
	OnMiss    string        `koanf:"on_miss"          validate:"oneof=keep fail"`
}

// HasTolerance reports whether a tolerance ceiling is configured.
func (c MatchingConfig) HasTolerance() bool { return c.Tolerance != 0 }

func defaultConfig() Configuration {
	return Configuration{
		Log: LoggingConfig{
			Format: LogTextFormat,
			Level:  zerolog.InfoLevel,
		},
		Matching: MatchingConfig{
			Strategy: StrategyNearest,
			Workers:  1,
			OnMiss:   OnMissKeep,
		},
	}
}

// NewConfiguration loads the defaults, overrides them with configFile (if
// not empty) and with LVPAIR_ environment variables, then validates the result.
func NewConfiguration(configFile string) (*Configuration, error) {
	result := defaultConfig()

	if err := load(&result, configFile, EnvPrefix); err != nil {
		return nil, err
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &result, nil
}
