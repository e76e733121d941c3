package cmd

import (
	"context"

	"github.com/triagehq/logtriage/internal/config"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFromContext(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	if cfg == nil {
		d := config.Default()
		return &d
	}
	return cfg
}
