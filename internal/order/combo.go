package order

import "combolunch/internal/menu"

// Messages shown when a submit is blocked.
const (
	MsgNothingSelected        = "Nothing selected — choose dishes to order"
	MsgChooseMainCourse       = "Choose a main course"
	MsgChooseDrink            = "Choose a drink"
	MsgChooseMainSaladStarter = "Choose a main course / salad / starter"
	MsgChooseSoupOrMain       = "Choose soup or main course"
)

// Verdict is the outcome of checking a selection against the combo rules.
type Verdict struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func valid() Verdict { return Verdict{Valid: true} }

func invalid(msg string) Verdict { return Verdict{Message: msg} }

// Validate decides whether the selection is an orderable combo.
//
// Valid combos (dessert is always optional):
//
//	soup + main course + salad + drink
//	soup + main course + drink
//	soup + salad + drink
//	main course + salad + drink
//	main course + drink
//
// The branches below are ordered; the first match picks the message.
func Validate(s Snapshot) Verdict {
	soup := s.Has(menu.Soup)
	main := s.Has(menu.MainCourse)
	salad := s.Has(menu.Salad)
	drink := s.Has(menu.Drink)
	dessert := s.Has(menu.Dessert)

	switch {
	case !soup && !main && !salad && !drink && !dessert:
		return invalid(MsgNothingSelected)

	// only a drink and/or a dessert
	case !soup && !main && !salad:
		return invalid(MsgChooseMainCourse)

	case soup && !main && !salad:
		if !drink {
			return invalid(MsgChooseDrink)
		}
		return invalid(MsgChooseMainSaladStarter)

	case !soup && !main && salad:
		if !drink {
			return invalid(MsgChooseDrink)
		}
		return invalid(MsgChooseSoupOrMain)

	case !drink:
		return invalid(MsgChooseDrink)

	case comboComplete(soup, main, salad, drink):
		return valid()
	}

	// unreachable with the branches above
	return invalid(MsgChooseDrink)
}

// comboComplete is the closed form of the five valid shapes.
func comboComplete(soup, main, salad, drink bool) bool {
	return drink && (main || (soup && salad))
}
