// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/formcheck/internal/config"
	"github.com/matt-dz/formcheck/internal/log"
	"github.com/matt-dz/formcheck/internal/validation"
)

type Env struct {
	Logger *slog.Logger
	Config config.Config
	Engine *validation.Engine
}

func New(logger *slog.Logger, conf config.Config) *Env {
	if logger == nil {
		logger = log.NullLogger()
	}

	return &Env{
		Logger: logger,
		Config: conf,
		Engine: validation.New(validation.WithEmailOrder(conf.Validation.EmailMessageOrder)),
	}
}

// Null returns an environment with a discarding logger and default rules.
func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
		Config: config.Config{Env: config.EnvDev},
		Engine: validation.New(),
	}
}

type envKeyType struct{}

var envKey envKeyType

func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx returns the environment stored in ctx, or Null if there is none.
func EnvFromCtx(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey).(*Env); ok {
		return env
	}
	return Null()
}
