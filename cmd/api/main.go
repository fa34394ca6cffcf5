package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"combolunch/internal/auth"
	"combolunch/internal/config"
	"combolunch/internal/db"
	"combolunch/internal/logger"
	"combolunch/internal/menu"
	"combolunch/internal/order"
	"combolunch/internal/router"
	"combolunch/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.Production())

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── CATALOG SOURCE ─────────────────────────
	var source menu.Source
	switch cfg.Catalog.Source {
	case "r2":
		r2Client, err := storage.NewR2Client(ctx, storage.R2Config(cfg.R2))
		if err != nil {
			log.Fatal().Err(err).Msg("R2 init failed")
		}
		source = r2Client
	default:
		source = menu.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.Timeout)
	}

	menuService := menu.NewService(source)

	// first load; a failure leaves the menu unavailable until a reload works
	loadCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.Timeout)
	_ = menuService.Reload(loadCtx)
	cancel()

	if cfg.Catalog.RefreshInterval > 0 {
		go menuService.RunRefresher(ctx, cfg.Catalog.RefreshInterval, cfg.Catalog.Timeout)
	}

	// ───────────────────────── ORDER STORE ─────────────────────────
	var orderRepo order.Repository
	if cfg.DatabaseURL != "" {
		pgDB, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("database init failed")
		}
		defer pgDB.Close()
		orderRepo = order.NewPostgresRepository(pgDB)
	} else {
		log.Warn().Msg("DATABASE_URL not set, submitted orders are kept in memory")
		orderRepo = order.NewInMemoryRepository()
	}

	// ───────────────────────── SESSIONS ─────────────────────────
	tokens, err := auth.NewTokenIssuer(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		log.Fatal().Err(err).Msg("session token init failed")
	}

	orderService := order.NewService(menuService, orderRepo)
	go orderService.RunJanitor(ctx, cfg.Session.TTL)

	// ───────────────────────── HTTP ─────────────────────────
	r := router.NewRouter(router.Deps{
		Menu:        menuService,
		Orders:      orderService,
		Tokens:      tokens,
		AdminToken:  cfg.AdminToken,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("API running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
