package order

import "combolunch/internal/menu"

// Filters holds the active kind filter of each section. An empty string
// means the section is unfiltered.
type Filters struct {
	active map[menu.Category]string
}

func NewFilters() *Filters {
	return &Filters{active: make(map[menu.Category]string)}
}

func (f *Filters) Active(category menu.Category) string {
	return f.active[category]
}

// Toggle switches kind on for category, or off when it is already the
// active one, and returns the new active kind. Only one kind per section
// can be active.
func (f *Filters) Toggle(category menu.Category, kind string) string {
	if f.active[category] == kind {
		delete(f.active, category)
		return ""
	}
	f.active[category] = kind
	return kind
}
