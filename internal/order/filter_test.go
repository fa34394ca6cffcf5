package order

import (
	"testing"

	"combolunch/internal/menu"
)

func TestToggle_SameKindTwiceClears(t *testing.T) {
	f := NewFilters()

	if got := f.Toggle(menu.Soup, "meat"); got != "meat" {
		t.Fatalf("expected meat, got %q", got)
	}
	if got := f.Toggle(menu.Soup, "meat"); got != "" {
		t.Fatalf("expected filter cleared, got %q", got)
	}
	if f.Active(menu.Soup) != "" {
		t.Fatal("soup filter should be off")
	}
}

func TestToggle_OtherKindReplaces(t *testing.T) {
	f := NewFilters()
	f.Toggle(menu.Soup, "meat")

	if got := f.Toggle(menu.Soup, "fish"); got != "fish" {
		t.Fatalf("expected fish, got %q", got)
	}
	if f.Active(menu.Soup) != "fish" {
		t.Fatal("fish should be the only active soup filter")
	}
}

func TestToggle_CategoriesIndependent(t *testing.T) {
	f := NewFilters()
	f.Toggle(menu.Soup, "meat")
	f.Toggle(menu.Drink, "hot")

	f.Toggle(menu.Soup, "meat")

	if f.Active(menu.Drink) != "hot" {
		t.Fatal("clearing soup must not touch drink")
	}
}
