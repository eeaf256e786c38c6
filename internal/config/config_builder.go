package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects config layers and merges them in the order they
// were added. Layer errors are joined and reported by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

// build merges the collected layers, non-zero fields of later layers
// winning, and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	return b.add(cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(parseFlags(args))
}

// withJSON adds the file named by the last layer that sets JSONFilePath.
// Without one it is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	return b.add(parseJSON(path))
}
