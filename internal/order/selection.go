package order

import "combolunch/internal/menu"

const slotCount = 5

// Selection holds at most one chosen dish per category. Dishes are the
// catalog's own values, not copies.
type Selection struct {
	slots [slotCount]*menu.Dish
}

func NewSelection() *Selection {
	return &Selection{}
}

// Select puts dish into its category slot, replacing whatever was there.
// Combo rules are not checked here; they only matter at submit time.
func (s *Selection) Select(dish *menu.Dish) {
	i := dish.Category.Index()
	if i < 0 {
		return
	}
	s.slots[i] = dish
}

func (s *Selection) Get(category menu.Category) *menu.Dish {
	return s.All().Dish(category)
}

// All returns a read-only snapshot of every slot.
func (s *Selection) All() Snapshot {
	return Snapshot{slots: s.slots}
}

// Snapshot is a point-in-time copy of a Selection.
type Snapshot struct {
	slots [slotCount]*menu.Dish
}

func (s Snapshot) Dish(category menu.Category) *menu.Dish {
	i := category.Index()
	if i < 0 {
		return nil
	}
	return s.slots[i]
}

func (s Snapshot) Has(category menu.Category) bool {
	return s.Dish(category) != nil
}

func (s Snapshot) Empty() bool {
	for _, d := range s.slots {
		if d != nil {
			return false
		}
	}
	return true
}

// Keywords maps every chosen category to its dish keyword.
func (s Snapshot) Keywords() map[menu.Category]string {
	out := make(map[menu.Category]string)
	for i, d := range s.slots {
		if d != nil {
			out[menu.Categories[i]] = d.Keyword
		}
	}
	return out
}
