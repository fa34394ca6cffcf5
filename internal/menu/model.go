package menu

// Category is one of the five fixed menu sections.
// A dish belongs to exactly one of them after normalization.
type Category string

const (
	Soup       Category = "soup"
	MainCourse Category = "main-course"
	Salad      Category = "salad"
	Drink      Category = "drink"
	Dessert    Category = "dessert"
)

// Categories lists every section in display order.
var Categories = []Category{Soup, MainCourse, Salad, Drink, Dessert}

var categoryLabels = map[Category]string{
	Soup:       "Soup",
	MainCourse: "Main course",
	Salad:      "Salad/starter",
	Drink:      "Drink",
	Dessert:    "Dessert",
}

// Label is the human readable section title used by the order panel.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Index returns the position of c in Categories, or -1.
func (c Category) Index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}
