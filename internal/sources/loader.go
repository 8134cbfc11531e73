package sources

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/blogwatch/internal/logger"
)

// sourcesFile is the shape of an override YAML file.
type sourcesFile struct {
	Sources []map[string]any `yaml:"sources"`
}

// Effective returns the source list to run with: the file at path when one
// is configured, the built-in defaults otherwise.
func Effective(path string, log logger.Interface) ([]Config, error) {
	if path == "" {
		return Defaults(), nil
	}

	return Load(path, log)
}

// Load reads a sources YAML file. Entries that fail to decode or validate
// are logged and skipped rather than failing the whole file. A missing file
// falls back to the built-in defaults; a present file with zero usable
// entries is an error.
func Load(path string, log logger.Interface) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("Sources file not found, using built-in sources", "path", path)
			return Defaults(), nil
		}

		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var file sourcesFile
	if unmarshalErr := yaml.Unmarshal(data, &file); unmarshalErr != nil {
		return nil, fmt.Errorf("parse sources file: %w", unmarshalErr)
	}

	configs := make([]Config, 0, len(file.Sources))

	for _, raw := range file.Sources {
		cfg, decodeErr := decodeSource(raw)
		if decodeErr != nil {
			log.Warn("Skipping undecodable source entry", "error", decodeErr.Error())
			continue
		}

		if validateErr := cfg.Validate(); validateErr != nil {
			log.Warn("Skipping invalid source entry",
				"name", cfg.Name,
				"error", validateErr.Error())
			continue
		}

		configs = append(configs, cfg)
	}

	if len(configs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSources)
	}

	return configs, nil
}

// decodeSource converts a raw YAML map into a Config via mapstructure with
// weak typing, so quoted and unquoted scalars both decode.
func decodeSource(raw map[string]any) (Config, error) {
	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("create decoder: %w", err)
	}

	if decodeErr := decoder.Decode(raw); decodeErr != nil {
		return Config{}, fmt.Errorf("decode source: %w", decodeErr)
	}

	return cfg, nil
}
