package order

import "combolunch/internal/menu"

const (
	NotChosen       = "not chosen"
	NothingSelected = "Nothing selected"
)

// Line is one row of the order panel.
type Line struct {
	Category menu.Category `json:"category"`
	Label    string        `json:"label"`
	Dish     string        `json:"dish"`
	Keyword  string        `json:"keyword,omitempty"`
	Price    int           `json:"price"`
	Chosen   bool          `json:"chosen"`
}

// Summary is the order panel: five lines in menu order plus the total,
// or just Message when nothing has been picked.
type Summary struct {
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
	Lines   []Line `json:"lines"`
	Total   int    `json:"total"`
}

func Summarize(s Snapshot) Summary {
	if s.Empty() {
		return Summary{
			Empty:   true,
			Message: NothingSelected,
			Lines:   []Line{},
		}
	}

	sum := Summary{Lines: make([]Line, 0, len(menu.Categories))}
	for _, category := range menu.Categories {
		line := Line{
			Category: category,
			Label:    category.Label(),
			Dish:     NotChosen,
		}
		if d := s.Dish(category); d != nil {
			line.Dish = d.Name
			line.Keyword = d.Keyword
			line.Price = d.Price
			line.Chosen = true
			sum.Total += d.Price
		}
		sum.Lines = append(sum.Lines, line)
	}

	return sum
}
