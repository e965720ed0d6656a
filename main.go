package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/members-ledger/api"
	"github.com/carson-networks/members-ledger/internal/config"
	"github.com/carson-networks/members-ledger/internal/kvstore"
	"github.com/carson-networks/members-ledger/internal/logging"
	"github.com/carson-networks/members-ledger/internal/operator"
	"github.com/carson-networks/members-ledger/internal/seed"
	"github.com/carson-networks/members-ledger/internal/service"
	"github.com/carson-networks/members-ledger/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("members-ledger starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.ApplyLevel(logger, envConfig.LogLevel); err != nil {
		logrus.WithError(err).Fatal("logging.ApplyLevel")
		return
	}

	initialData, err := seed.Load(envConfig.SeedFile)
	if err != nil {
		logrus.WithError(err).Fatal("seed.Load")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := kvstore.Open(ctx, envConfig, logger)
	if err != nil {
		logrus.WithError(err).Fatal("kvstore.Open")
		return
	}

	dataStorage, err := storage.NewStorage(ctx, kv, initialData, logger)
	if err != nil {
		_ = kv.Close()
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := dataStorage.Close(); err != nil {
			logrus.WithError(err).Error("storage.Close")
		}
	}()

	svc := service.NewService(dataStorage.Read())
	delegator := operator.NewOperatorDelegator(dataStorage, envConfig.NumOperators)
	delegator.Start()
	defer delegator.Stop()

	httpRest := api.NewRest(logger, envConfig.Port, svc, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		httpRest.Serve()
	}()

	<-ctx.Done()
	// Restore default signal handling so a second interrupt kills the process.
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpRest.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HttpServer.Shutdown")
	}

	wg.Wait()
}
