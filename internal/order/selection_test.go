package order

import (
	"testing"

	"combolunch/internal/menu"
)

func TestSelect_ReplacesSameCategory(t *testing.T) {
	shchi := &menu.Dish{Keyword: "shchi", Name: "Щи", Price: 140, Category: menu.Soup}

	sel := NewSelection()
	sel.Select(borsch)
	sel.Select(shchi)

	if got := sel.Get(menu.Soup); got != shchi {
		t.Fatalf("expected shchi in soup slot, got %+v", got)
	}
	if got := sel.All().Keywords(); len(got) != 1 || got[menu.Soup] != "shchi" {
		t.Errorf("expected one soup keyword, got %v", got)
	}
}

func TestSelect_KeepsReferenceNotCopy(t *testing.T) {
	sel := NewSelection()
	sel.Select(kotleta)

	if sel.Get(menu.MainCourse) != kotleta {
		t.Fatal("selection should hold the catalog dish itself")
	}
}

func TestSnapshot_IsolatedFromLaterSelects(t *testing.T) {
	sel := NewSelection()
	sel.Select(borsch)
	snap := sel.All()

	sel.Select(mors)

	if snap.Has(menu.Drink) {
		t.Error("snapshot changed after a later select")
	}
	if !sel.All().Has(menu.Drink) {
		t.Error("selection lost the drink")
	}
}

func TestSnapshot_Empty(t *testing.T) {
	sel := NewSelection()
	if !sel.All().Empty() {
		t.Fatal("new selection should be empty")
	}
	if sel.Get(menu.Dessert) != nil {
		t.Fatal("expected no dessert")
	}

	sel.Select(eclair)
	if sel.All().Empty() {
		t.Fatal("selection with dessert should not be empty")
	}
}
