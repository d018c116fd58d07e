package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-dz/formcheck/internal/api"
	"github.com/matt-dz/formcheck/internal/config"
	"github.com/matt-dz/formcheck/internal/env"
	"github.com/matt-dz/formcheck/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.LoadConfig()
	if err != nil {
		log.New(nil).Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := log.New(&slog.HandlerOptions{Level: conf.Log.Level.SlogLevel()})
	logger.DebugContext(ctx, "config loaded",
		slog.String("env", conf.Env),
		slog.String("addr", conf.Server.Addr()),
		slog.String("email_message_order", string(conf.Validation.EmailMessageOrder)))

	if err := api.Start(ctx, env.New(logger, conf)); err != nil {
		logger.Error("API Failed", slog.Any("error", err))
		os.Exit(1)
	}
}
