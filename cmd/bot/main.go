package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/customs-bot/internal/clients/fixer"
	"max.ks1230/customs-bot/internal/clients/tg"
	"max.ks1230/customs-bot/internal/config"
	"max.ks1230/customs-bot/internal/logger"
	"max.ks1230/customs-bot/internal/model/messages"
	"max.ks1230/customs-bot/internal/model/rates"
	"max.ks1230/customs-bot/internal/model/tariff"
	"max.ks1230/customs-bot/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracerCloser, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer tracerCloser.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := tariff.NewEngine(tariff.NewRateTableFromFloats(conf.App().InitialRates()))

	puller, err := rates.NewPuller(engine, fixer.New(conf.Fixer()), conf.App())
	if err != nil {
		logger.Fatal("failed to init rates puller:", zap.Error(err))
	}

	sessions, err := newSessionStorage(ctx, conf.Storage())
	if err != nil {
		logger.Fatal("failed to init session storage:", zap.Error(err))
	}
	defer closeSessionStorage(sessions)

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}
	msgService := messages.NewService(client, sessions, engine)

	metricsServer := &http.Server{Addr: conf.Metrics().Addr()}
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		logger.Info("metrics server listening", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go puller.Pull(ctx)

	logger.Info("Bot init - end")
	client.ListenUpdates(ctx, msgService)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err = metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to stop metrics server", zap.Error(err))
	}
	logger.Info("Bot stopped")
}
