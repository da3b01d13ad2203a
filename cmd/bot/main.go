package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solana-wallet-bot/config"
	"solana-wallet-bot/internal/adapter/coingecko"
	httpHandler "solana-wallet-bot/internal/adapter/http/handler"
	"solana-wallet-bot/internal/adapter/solscan"
	pgStorage "solana-wallet-bot/internal/adapter/storage/postgres"
	redisStorage "solana-wallet-bot/internal/adapter/storage/redis"
	"solana-wallet-bot/internal/adapter/telegram"
	"solana-wallet-bot/internal/bot"
	"solana-wallet-bot/internal/core/ports"
	"solana-wallet-bot/internal/service"
	"solana-wallet-bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Int("ops_port", cfg.Server.Port).
		Msg("Starting Solana Wallet Bot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories and stores
	walletRepo := pgStorage.NewWalletRepo(pool)
	dedupStore := redisStorage.NewUpdateDedupStore(rdb)

	// Initialize upstream clients. One shared HTTP client; per-request
	// deadlines come from the fetch timeout inside each adapter.
	httpClient := &http.Client{}
	chainSrc, err := solscan.NewClient(httpClient, cfg.Chain.SolscanBaseURL, cfg.Chain.SolscanAPIKey, cfg.Fetch.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Solscan client")
	}
	priceSrc, err := coingecko.NewClient(httpClient, cfg.Price.URL, cfg.Fetch.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize CoinGecko client")
	}

	// Initialize core services
	keygen := service.NewEd25519KeypairGenerator()
	walletSvc := service.NewWalletService(walletRepo, keygen, log)
	balanceSvc := service.NewBalanceService(chainSrc, priceSrc, log)

	// Initialize Telegram front end
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Telegram")
	}
	messenger := telegram.NewMessenger(api)
	router := bot.NewRouter(walletSvc, balanceSvc, messenger, log)
	listener := telegram.NewListener(api, dedupStore, router, messenger, cfg.Telegram.PollTimeout, log)

	go listener.Run(ctx)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup ops HTTP server (liveness/readiness probes)
	opsRouter := httpHandler.SetupRouter(httpHandler.RouterDeps{
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: opsRouter,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Ops HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Ops HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down...")

	cancel() // stops the update listener

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Ops server forced to shutdown")
	}

	log.Info().Msg("Bot exited")
}
