package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/viper"

	"github.com/Ferrr1/Tani-sub000/internal/api"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/config"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/logger"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/store"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/store/xpgx"
)

func main() {
	ctx := context.Background()

	if err := config.Init(); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	pool, err := xpgx.Dial(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperAddr))

	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	logger.Info(ctx, "shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "graceful shutdown failed: %s", err.Error())
	}
}
