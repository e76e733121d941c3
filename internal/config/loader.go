package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated
// Config, following MrWong99-glyphoxa's internal/config.Load shape: open,
// decode, validate, wrap errors with the path for context.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r onto the built-in defaults
// and validates the result. Useful in tests where configs are constructed
// from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that cfg contains a coherent set of values, returning a
// joined error listing every failure found, the same errors.Join shape
// MrWong99-glyphoxa's Validate uses.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Store.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("store.capacity must be positive, got %d", cfg.Store.Capacity))
	}
	if cfg.Store.BroadcastCapacity <= 0 {
		errs = append(errs, fmt.Errorf("store.broadcast_capacity must be positive, got %d", cfg.Store.BroadcastCapacity))
	}
	if cfg.Store.DefaultGreed < 0 || cfg.Store.DefaultGreed > 10 {
		errs = append(errs, fmt.Errorf("store.default_greed must be in [0, 10], got %d", cfg.Store.DefaultGreed))
	}
	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q is invalid: %w", cfg.Log.Level, err))
	}

	for i, src := range cfg.Ingest {
		prefix := fmt.Sprintf("ingest[%d]", i)
		switch src.Kind {
		case FeedDocker:
		case FeedKubernetes:
			if src.Namespace == "" {
				errs = append(errs, fmt.Errorf("%s.namespace is required for kind=kubernetes", prefix))
			}
		case FeedFile:
			if src.Path == "" {
				errs = append(errs, fmt.Errorf("%s.path is required for kind=file", prefix))
			}
		case FeedStdin:
		default:
			errs = append(errs, fmt.Errorf("%s.kind %q is invalid; valid values: docker, kubernetes, file, stdin", prefix, src.Kind))
		}
	}

	return errors.Join(errs...)
}
