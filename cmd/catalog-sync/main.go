package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"combolunch/internal/config"
	"combolunch/internal/logger"
	"combolunch/internal/menu"
	"combolunch/internal/storage"

	"github.com/rs/zerolog/log"
)

// catalog-sync mirrors the public dish list into the R2 bucket the API
// reads from when CATALOG_SOURCE=r2.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.Production())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r2Client, err := storage.NewR2Client(ctx, storage.R2Config(cfg.R2))
	if err != nil {
		log.Fatal().Err(err).Msg("R2 init failed")
	}
	source := menu.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.Timeout)

	interval := cfg.Catalog.RefreshInterval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	log.Info().Dur("interval", interval).Str("url", cfg.Catalog.URL).Msg("catalog sync starting")

	syncOnce(ctx, source, r2Client, cfg.Catalog.Timeout)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("catalog sync stopped")
			return
		case <-ticker.C:
			syncOnce(ctx, source, r2Client, cfg.Catalog.Timeout)
		}
	}
}

func syncOnce(ctx context.Context, source menu.Source, dst *storage.R2Client, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := source.Fetch(ctx)
	if err != nil {
		log.Error().Err(err).Msg("catalog fetch failed")
		return
	}

	if err := dst.PutCatalog(ctx, raw); err != nil {
		log.Error().Err(err).Msg("catalog upload failed")
		return
	}

	log.Info().Int("dishes", len(raw)).Msg("catalog snapshot uploaded")
}
