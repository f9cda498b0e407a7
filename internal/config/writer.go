package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"

	"github.com/ytget/project-manager/internal/platform"
)

// Marshal renders cfg as YAML in the layout Load reads
func Marshal(cfg Config) ([]byte, error) {
	k := koanf.New(".")
	values := map[string]any{
		"store.url":             cfg.Store.URL,
		"store.bucket":          cfg.Store.Bucket,
		"store.request_timeout": cfg.Store.RequestTimeout.String(),
		"log.level":             cfg.Log.Level,
		"log.format":            cfg.Log.Format,
	}
	for key, v := range values {
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return k.Marshal(yaml.Parser())
}

// WriteDefault writes the built-in configuration to path (DefaultPath when
// empty) unless a file already exists. It returns the path and whether it wrote.
func WriteDefault(path string) (string, bool, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", false, err
		}
		path = p
	}

	data, err := Marshal(Default())
	if err != nil {
		return path, false, err
	}

	written, err := platform.WriteFileIfNotExists(path, data)
	if err != nil {
		return path, false, err
	}
	return path, written, nil
}
