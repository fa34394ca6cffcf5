package menu

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog holds one loaded set of dishes. It is never mutated after
// NewCatalog returns; a reload builds a new Catalog.
type Catalog struct {
	dishes    []Dish
	byKeyword map[string]int
}

func NewCatalog(dishes []Dish) *Catalog {
	c := &Catalog{
		dishes:    slices.Clone(dishes),
		byKeyword: make(map[string]int, len(dishes)),
	}
	for i, d := range c.dishes {
		if _, dup := c.byKeyword[d.Keyword]; dup {
			continue
		}
		c.byKeyword[d.Keyword] = i
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.dishes)
}

// Lookup returns the catalog's own dish for keyword.
func (c *Catalog) Lookup(keyword string) (*Dish, bool) {
	i, ok := c.byKeyword[keyword]
	if !ok {
		return nil, false
	}
	return &c.dishes[i], true
}

// ViewFor returns the dishes of one section, narrowed to kind when kind is
// not empty, ordered by name with Russian collation. Equal names keep their
// catalog order.
func (c *Catalog) ViewFor(category Category, kind string) []*Dish {
	view := make([]*Dish, 0)
	for i := range c.dishes {
		d := &c.dishes[i]
		if d.Category != category {
			continue
		}
		if kind != "" && d.Kind != kind {
			continue
		}
		view = append(view, d)
	}

	// collators keep internal buffers and are not safe to share
	col := collate.New(language.Russian)
	slices.SortStableFunc(view, func(a, b *Dish) int {
		return col.CompareString(a.Name, b.Name)
	})

	return view
}

// Kinds lists the distinct kinds present in a section, in first-seen order.
func (c *Catalog) Kinds(category Category) []string {
	seen := make(map[string]bool)
	kinds := make([]string, 0)
	for _, d := range c.dishes {
		if d.Category != category || d.Kind == "" || seen[d.Kind] {
			continue
		}
		seen[d.Kind] = true
		kinds = append(kinds, d.Kind)
	}
	return kinds
}

// Section is one rendered menu section: its dishes plus the filter buttons.
type Section struct {
	Category   Category `json:"category"`
	Label      string   `json:"label"`
	Kinds      []string `json:"kinds"`
	ActiveKind string   `json:"active_kind,omitempty"`
	Dishes     []*Dish  `json:"dishes"`
}

func (c *Catalog) Section(category Category, kind string) Section {
	return Section{
		Category:   category,
		Label:      category.Label(),
		Kinds:      c.Kinds(category),
		ActiveKind: kind,
		Dishes:     c.ViewFor(category, kind),
	}
}
