package menu

import (
	"testing"

	"github.com/zync/orderline/internal/core/domain"
)

func sampleItems() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "1", Name: "Tea", Price: 1000, ExternalID: "T1"},
		{ID: "2", Name: "Coffee", Price: 2000, ExternalID: "C1"},
		{ID: "3", Name: "Masala Dosa", Price: 6000, ExternalID: "MD9"},
	}
}

func TestResolve_Letter(t *testing.T) {
	items := sampleItems()

	it, ok := Resolve("A", items)
	if !ok || it.Name != "Tea" {
		t.Fatalf("expected A -> Tea, got %v ok=%v", it, ok)
	}

	it, ok = Resolve("b", items)
	if !ok || it.Name != "Coffee" {
		t.Fatalf("expected b -> Coffee, got %v ok=%v", it, ok)
	}

	if _, ok := Resolve("Z", items); ok {
		t.Error("expected Z to be out of range on a 3-item menu")
	}
}

func TestResolve_LetterDoesNotFallThrough(t *testing.T) {
	// A single letter is always positional, even if some item carries
	// it as a code.
	items := []domain.MenuItem{
		{Name: "Tea", ExternalID: "X"},
		{Name: "Coffee", ExternalID: "C1"},
	}
	it, ok := Resolve("X", items)
	if ok {
		t.Fatalf("expected X to be out of range, got %s", it.Name)
	}
}

func TestResolve_ExternalCode(t *testing.T) {
	items := sampleItems()

	it, ok := Resolve("md9", items)
	if !ok || it.Name != "Masala Dosa" {
		t.Fatalf("expected md9 -> Masala Dosa, got %v ok=%v", it, ok)
	}
}

func TestResolve_Name(t *testing.T) {
	items := sampleItems()

	it, ok := Resolve("masala dosa", items)
	if !ok || it.ID != "3" {
		t.Fatalf("expected name match, got %v ok=%v", it, ok)
	}

	it, ok = Resolve("  Coffee  ", items)
	if !ok || it.ID != "2" {
		t.Fatalf("expected trimmed name match, got %v ok=%v", it, ok)
	}
}

func TestResolve_NotFound(t *testing.T) {
	items := sampleItems()

	for _, token := range []string{"", "  ", "Latte", "ZZ9", "1"} {
		if it, ok := Resolve(token, items); ok {
			t.Errorf("expected %q to miss, got %s", token, it.Name)
		}
	}
}

func TestResolve_EmptyMenu(t *testing.T) {
	if _, ok := Resolve("A", nil); ok {
		t.Error("expected A on empty menu to miss")
	}
}

func TestLetter(t *testing.T) {
	if got := Letter(0); got != "A" {
		t.Errorf("expected A, got %s", got)
	}
	if got := Letter(25); got != "Z" {
		t.Errorf("expected Z, got %s", got)
	}
	if got := Letter(26); got != "" {
		t.Errorf("expected empty past Z, got %s", got)
	}
}
