package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/config"
	"github.com/refi/refi-calculator/internal/logging"
	"github.com/refi/refi-calculator/internal/server"
	"github.com/refi/refi-calculator/internal/service"
	"github.com/refi/refi-calculator/internal/store"
	"github.com/refi/refi-calculator/internal/tracing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves the refinance API. Settings come from REFI_* environment variables,
optionally loaded from a .env file. Without REFI_REDIS_ADDR inputs and cached
analyses are kept in memory.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("env-file", ".env", "dotenv file to load before reading the environment")
	serveCmd.Flags().String("addr", "", "listen address (overrides REFI_HTTP_ADDR)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	settings, err := config.LoadSettings(envFile)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		settings.HTTPAddr = addr
	}

	log, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.Init(ctx, settings.OTELServiceName, settings.OTELEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	var (
		inputs store.InputStore    = store.NewMemoryStore()
		cache  store.AnalysisCache = store.NewMemoryCache(settings.CacheTTL, settings.CacheSize)
	)
	if settings.UseRedis() {
		client, err := store.NewRedisClient(ctx, settings.RedisAddr, settings.RedisPassword, settings.RedisDB)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer client.Close()
		inputs = store.NewRedisStore(client)
		cache = store.NewRedisCache(client, settings.CacheTTL)
		log.Info("using redis", zap.String("addr", settings.RedisAddr))
	} else {
		log.Info("using in-memory storage")
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.NewEngineLogger(log))
	svc := service.NewRefiService(engine, inputs, cache, log)
	return server.New(svc, log).Run(ctx, settings.HTTPAddr, settings.ShutdownTimeout)
}
