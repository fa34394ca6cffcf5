package order

import (
	"errors"
	"fmt"
	"time"

	"combolunch/internal/menu"

	"github.com/google/uuid"
)

var ErrDishNotFound = errors.New("dish not found")

// Session is one user's order in progress: what they picked and which
// filters they have switched on. It is not safe for concurrent use.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	selection *Selection
	filters   *Filters
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		selection: NewSelection(),
		filters:   NewFilters(),
	}
}

// SelectDish resolves keyword in catalog and puts the dish in its slot.
func (s *Session) SelectDish(catalog *menu.Catalog, keyword string) (*menu.Dish, error) {
	dish, ok := catalog.Lookup(keyword)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDishNotFound, keyword)
	}
	s.selection.Select(dish)
	return dish, nil
}

// ToggleFilter flips a section filter and returns the section as it should
// now be shown.
func (s *Session) ToggleFilter(catalog *menu.Catalog, category menu.Category, kind string) menu.Section {
	active := s.filters.Toggle(category, kind)
	return catalog.Section(category, active)
}

// Section returns a section narrowed by this session's active filter.
func (s *Session) Section(catalog *menu.Catalog, category menu.Category) menu.Section {
	return catalog.Section(category, s.filters.Active(category))
}

func (s *Session) Snapshot() Snapshot {
	return s.selection.All()
}

func (s *Session) Summary() Summary {
	return Summarize(s.selection.All())
}

func (s *Session) Validate() Verdict {
	return Validate(s.selection.All())
}
