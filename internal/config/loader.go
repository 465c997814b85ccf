package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables overriding configuration
// keys. "_" separates levels and "__" stands for a literal "_", so
// LVPAIR_MATCHING_ON__MISS sets matching.on_miss.
const EnvPrefix = "LVPAIR_"

func load(conf *Configuration, configFile, envPrefix string) error {
	parser, err := koanfFromStruct(conf)
	if err != nil {
		return err
	}

	loadAndMerge := func(loadConfig func() (*koanf.Koanf, error)) error {
		k, err := loadConfig()
		if err != nil {
			return err
		}

		return parser.Merge(k)
	}

	if len(configFile) != 0 {
		if err := loadAndMerge(func() (*koanf.Koanf, error) { return koanfFromYaml(configFile) }); err != nil {
			return err
		}
	}

	if err := loadAndMerge(func() (*koanf.Koanf, error) { return koanfFromEnv(envPrefix) }); err != nil {
		return err
	}

	err = parser.UnmarshalWithConf("", conf, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				logLevelDecodeHookFunc,
				logFormatDecodeHookFunc,
			),
			Result:           conf,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return nil
}

func koanfFromStruct(conf any) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	if err := parser.Load(structs.Provider(conf, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	// env keys are lower-cased, so mixed-case keys could never be overridden
	if i := slices.IndexFunc(parser.Keys(), func(key string) bool { return key != strings.ToLower(key) }); i >= 0 {
		return nil, fmt.Errorf("%w: key %q is not lower case, set a koanf tag", ErrConfiguration, parser.Keys()[i])
	}

	return parser, nil
}

func koanfFromYaml(configFile string) (*koanf.Koanf, error) {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrConfiguration, configFile, err)
	}

	parser := koanf.New(".")
	if err := parser.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: failed to parse yaml config from %s: %w", ErrConfiguration, configFile, err)
	}

	return parser, nil
}

func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			return envKey(strings.TrimPrefix(key, prefix)), val
		},
	})

	if err := parser.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("%w: failed to parse environment variables: %w", ErrConfiguration, err)
	}

	return parser, nil
}

// envKey turns MATCHING_ON__MISS into matching.on_miss.
func envKey(name string) string {
	words := strings.Split(strings.ToLower(name), "__")
	for i, w := range words {
		words[i] = strings.ReplaceAll(w, "_", ".")
	}

	return strings.Join(words, "_")
}
