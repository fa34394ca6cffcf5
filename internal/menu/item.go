package menu

import "github.com/rs/zerolog/log"

// RawDish is a dish record as the catalog source sends it
type RawDish struct {
	Keyword  string `json:"keyword"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Kind     string `json:"kind"`
	Image    string `json:"image"`
	Count    string `json:"count"`
}

// Dish is the normalized, immutable menu entry.
// Price is in minor currency units.
type Dish struct {
	Keyword  string   `json:"keyword"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Category Category `json:"category"`
	Kind     string   `json:"kind"`
	Image    string   `json:"image"`
	Count    string   `json:"count"`
}

// Normalize maps raw records onto dishes.
// The legacy "main" tag becomes MainCourse; records whose category is not
// one of the five sections, or whose price is negative, are skipped.
func Normalize(raw []RawDish) []Dish {
	dishes := make([]Dish, 0, len(raw))

	for _, r := range raw {
		category, err := ParseCategory(r.Category)
		if err != nil {
			log.Warn().
				Str("keyword", r.Keyword).
				Str("category", r.Category).
				Msg("skipping dish with unknown category")
			continue
		}
		if r.Price < 0 {
			log.Warn().
				Str("keyword", r.Keyword).
				Int("price", r.Price).
				Msg("skipping dish with negative price")
			continue
		}

		dishes = append(dishes, Dish{
			Keyword:  r.Keyword,
			Name:     r.Name,
			Price:    r.Price,
			Category: category,
			Kind:     r.Kind,
			Image:    r.Image,
			Count:    r.Count,
		})
	}

	return dishes
}
