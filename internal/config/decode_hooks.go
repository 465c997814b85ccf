package config

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
)

// logLevelDecodeHookFunc decodes zerolog levels from their names.
func logLevelDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(zerolog.Level(0)) {
		return data, nil
	}

	name, _ := data.(string)
	if len(name) == 0 {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown log level %q", ErrConfiguration, name)
	}

	return level, nil
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(LogFormat(0)) {
		return data, nil
	}

	switch data {
	case "gelf":
		return LogGelfFormat, nil
	case "text", "":
		return LogTextFormat, nil
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", ErrConfiguration, data)
	}
}
