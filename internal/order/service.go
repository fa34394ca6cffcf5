package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"combolunch/internal/menu"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrSessionNotFound = errors.New("order session not found")

// CatalogProvider hands out the current dish catalog.
type CatalogProvider interface {
	Catalog() (*menu.Catalog, error)
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *Session
	lastSeen time.Time
}

// Service keeps the live order sessions and stores submitted orders.
// Each session is used by one request at a time.
type Service struct {
	catalogs CatalogProvider
	repo     Repository

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

func NewService(catalogs CatalogProvider, repo Repository) *Service {
	return &Service{
		catalogs: catalogs,
		repo:     repo,
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

// SubmitResult is what a submit attempt produced. Order is nil when the
// verdict blocked the submit.
type SubmitResult struct {
	Verdict Verdict
	Order   *Order
}

// --------------------------------------------------
// Sessions
// --------------------------------------------------
func (s *Service) CreateSession() *Session {
	session := NewSession()

	s.mu.Lock()
	s.sessions[session.ID] = &sessionEntry{session: session, lastSeen: time.Now()}
	s.mu.Unlock()

	log.Debug().Str("session_id", session.ID.String()).Msg("order session created")
	return session
}

// withSession runs fn while holding the session's lock.
func (s *Service) withSession(id uuid.UUID, fn func(*Session) error) error {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.lastSeen = time.Now()

	return fn(entry.session)
}

// ExpireIdle drops sessions not used since before cutoff and returns how
// many were removed.
func (s *Service) ExpireIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.sessions {
		entry.mu.Lock()
		idle := entry.lastSeen.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunJanitor expires sessions idle for longer than ttl until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, ttl time.Duration) {
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.ExpireIdle(now.Add(-ttl)); n > 0 {
				log.Info().Int("expired", n).Msg("idle order sessions removed")
			}
		}
	}
}

// --------------------------------------------------
// Intents
// --------------------------------------------------

// SelectDish puts the dish with keyword into the session's selection and
// returns the refreshed order summary.
func (s *Service) SelectDish(id uuid.UUID, keyword string) (Summary, error) {
	catalog, err := s.catalogs.Catalog()
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	err = s.withSession(id, func(session *Session) error {
		if _, err := session.SelectDish(catalog, keyword); err != nil {
			return err
		}
		summary = session.Summary()
		return nil
	})
	return summary, err
}

func (s *Service) ToggleFilter(id uuid.UUID, category menu.Category, kind string) (menu.Section, error) {
	catalog, err := s.catalogs.Catalog()
	if err != nil {
		return menu.Section{}, err
	}

	var section menu.Section
	err = s.withSession(id, func(session *Session) error {
		section = session.ToggleFilter(catalog, category, kind)
		return nil
	})
	return section, err
}

func (s *Service) Section(id uuid.UUID, category menu.Category) (menu.Section, error) {
	catalog, err := s.catalogs.Catalog()
	if err != nil {
		return menu.Section{}, err
	}

	var section menu.Section
	err = s.withSession(id, func(session *Session) error {
		section = session.Section(catalog, category)
		return nil
	})
	return section, err
}

func (s *Service) Summary(id uuid.UUID) (Summary, error) {
	var summary Summary
	err := s.withSession(id, func(session *Session) error {
		summary = session.Summary()
		return nil
	})
	return summary, err
}

// Submit validates the session's combo and stores it when it passes.
// A blocked submit is not an error: the verdict carries the message.
func (s *Service) Submit(ctx context.Context, id uuid.UUID) (SubmitResult, error) {
	var snapshot Snapshot
	err := s.withSession(id, func(session *Session) error {
		snapshot = session.Snapshot()
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}

	verdict := Validate(snapshot)
	if !verdict.Valid {
		log.Info().
			Str("session_id", id.String()).
			Str("reason", verdict.Message).
			Msg("order submit blocked")
		return SubmitResult{Verdict: verdict}, nil
	}

	order := &Order{
		ID:        uuid.New(),
		SessionID: id,
		Items:     snapshot.Keywords(),
		Total:     Summarize(snapshot).Total,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, order); err != nil {
		return SubmitResult{}, fmt.Errorf("save order: %w", err)
	}

	log.Info().
		Str("session_id", id.String()).
		Str("order_id", order.ID.String()).
		Int("total", order.Total).
		Msg("order submitted")
	return SubmitResult{Verdict: verdict, Order: order}, nil
}

func (s *Service) ListOrders(ctx context.Context, id uuid.UUID) ([]*Order, error) {
	if err := s.withSession(id, func(*Session) error { return nil }); err != nil {
		return nil, err
	}
	return s.repo.ListBySession(ctx, id)
}
