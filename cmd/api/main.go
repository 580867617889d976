package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ptcharoen/agrirot/internal/api"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
	"github.com/ptcharoen/agrirot/internal/pkg/logger"
	"github.com/ptcharoen/agrirot/internal/pkg/store"
	"github.com/ptcharoen/agrirot/internal/pkg/store/xpgx"
	"github.com/ptcharoen/agrirot/internal/service/rotation"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	initConfig()
	logger.Init(viper.GetBool(constants.ViperDebug))

	ctx := context.Background()

	pool, err := connectWithRetry(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	policy := rotation.Policy{
		MaxConsecutive: viper.GetInt(constants.ViperRotationMaxConsecutive),
		Lookback:       viper.GetInt(constants.ViperRotationLookback),
		HistoryLimit:   viper.GetInt(constants.ViperHistoryDefaultLimit),
	}

	svc, err := api.NewAPIService(store.NewStore(pool), policy)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperHTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err = svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}

func initConfig() {
	viper.SetDefault(constants.ViperHTTPAddr, ":8080")
	viper.SetDefault(constants.ViperRotationMaxConsecutive, 2)
	viper.SetDefault(constants.ViperRotationLookback, 2)
	viper.SetDefault(constants.ViperHistoryDefaultLimit, 5)

	viper.SetEnvPrefix("agrirot")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			logger.Fatal(context.Background(), err)
		}
	}
}

// connectWithRetry keeps pinging the database while it comes up. Only the
// startup connect is retried; request-path writes never are.
func connectWithRetry(ctx context.Context, dsn string) (xpgx.Pool, error) {
	var pool xpgx.Pool

	operation := func() error {
		var err error
		pool, err = xpgx.Connect(ctx, dsn)
		if err != nil {
			logger.Warnf(ctx, "waiting for database: %s", err.Error())
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return pool, nil
}
