package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every record logged through the returned context.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

func WithDashboardUID(ctx context.Context, uid string) context.Context {
	return withField(ctx, "dashboard_uid", uid)
}

func withField(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}
