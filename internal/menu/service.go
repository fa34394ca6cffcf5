package menu

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Service owns the current catalog and replaces it wholesale on reload.
type Service struct {
	source Source

	mu       sync.RWMutex
	catalog  *Catalog
	loadedAt time.Time
	lastErr  error
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Status is the catalog state shown to clients
type Status struct {
	Loaded    bool      `json:"loaded"`
	Dishes    int       `json:"dishes"`
	LoadedAt  time.Time `json:"loaded_at"`
	LastError string    `json:"last_error,omitempty"`
}

// --------------------------------------------------
// Reload (fetch + normalize + swap)
// --------------------------------------------------
func (s *Service) Reload(ctx context.Context) error {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()

		log.Error().Err(err).Msg("catalog load failed, keeping previous menu")
		return err
	}

	catalog := NewCatalog(Normalize(raw))

	s.mu.Lock()
	s.catalog = catalog
	s.loadedAt = time.Now()
	s.lastErr = nil
	s.mu.Unlock()

	log.Info().
		Int("received", len(raw)).
		Int("dishes", catalog.Len()).
		Msg("catalog loaded")
	return nil
}

// Catalog returns the latest successfully loaded catalog.
func (s *Service) Catalog() (*Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.catalog == nil {
		if s.lastErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, s.lastErr)
		}
		return nil, ErrCatalogUnavailable
	}
	return s.catalog, nil
}

func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{Loaded: s.catalog != nil, LoadedAt: s.loadedAt}
	if s.catalog != nil {
		st.Dishes = s.catalog.Len()
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

// --------------------------------------------------
// Periodic refresh
// --------------------------------------------------

// RunRefresher reloads the catalog every interval until ctx is done.
// Failed reloads are logged by Reload and retried on the next tick.
func (s *Service) RunRefresher(ctx context.Context, interval time.Duration, timeout time.Duration) {
	log.Info().Dur("interval", interval).Msg("catalog refresher started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("catalog refresher stopped")
			return
		case <-ticker.C:
			reloadCtx, cancel := context.WithTimeout(ctx, timeout)
			_ = s.Reload(reloadCtx)
			cancel()
		}
	}
}
