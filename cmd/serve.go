package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"relay/internal/api"
	"relay/internal/api/handler"
	"relay/internal/config"
	"relay/internal/relay"
	"relay/internal/worker"
	"relay/pkg/evolution"
	"relay/pkg/logger"
	"relay/pkg/telegram/botapi"
	"relay/pkg/vault"
)

func setupServer(ctx context.Context, cfg *config.Config, service relay.Service) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: handler.Deps{Relay: service},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the webhook server and background delivery workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mediaVault, err := vault.New(cfg.Vault.Dir, cfg.Vault.Key)
			if err != nil {
				logger.Fatal(ctx, "could not open media vault", zap.Error(err))
			}

			evolutionClient := evolution.New(&http.Client{
				Timeout: cfg.Evolution.RequestTimeout,
			}, cfg.Evolution.BaseURL, cfg.Evolution.APIKey)

			telegramClient, err := botapi.New(cfg.Telegram.BotToken)
			if err != nil {
				logger.Fatal(ctx, "could not create telegram client", zap.Error(err))
			}

			service := relay.New(strg, mediaVault, evolutionClient, relay.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, strg, mediaVault,
				telegramClient, cfg.Relay.DeliveryWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, service)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			stopCtx, stopCancel := context.WithTimeout(shutdownCtx, 5*time.Second)
			defer stopCancel()
			if err := riverClient.Stop(stopCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
