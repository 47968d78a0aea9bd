package catalog

import (
	"sort"
	"testing"
)

func TestDefaultCatalogHasFallback(t *testing.T) {
	cat := Default()

	fallback := cat.Fallback()
	if fallback == nil {
		t.Fatal("default catalog has no fallback template")
	}
	if fallback.Name != FallbackName {
		t.Errorf("fallback named %q, want %q", fallback.Name, FallbackName)
	}
	if fallback.BaseConfig == nil {
		t.Error("fallback template has no base config")
	}
}

func TestNewRejectsMissingFallback(t *testing.T) {
	_, err := New([]*Template{{Name: "python"}})
	if err == nil {
		t.Error("expected error for catalog without fallback")
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New([]*Template{
		{Name: "universal"},
		{Name: "python"},
		{Name: "python"},
	})
	if err == nil {
		t.Error("expected error for duplicate template names")
	}
}

func TestGet(t *testing.T) {
	cat := Default()

	tpl, ok := cat.Get("python")
	if !ok {
		t.Fatal("python template missing from default catalog")
	}
	if !tpl.HasLanguage("python") {
		t.Errorf("python template does not list python: %v", tpl.Languages)
	}

	if _, ok := cat.Get("nope"); ok {
		t.Error("Get should report absence for unknown names")
	}
}

func TestListWithoutFilterReturnsEverything(t *testing.T) {
	cat := Default()

	if got := len(cat.List(nil)); got != cat.Len() {
		t.Errorf("List(nil) returned %d of %d templates", got, cat.Len())
	}
}

func TestListFiltersAreConjunctive(t *testing.T) {
	cat := Default()

	// Both node and fullstack know react; only fullstack is in the
	// fullstack category.
	byFramework := cat.List(&Filter{Framework: "react"})
	if len(byFramework) != 2 {
		t.Fatalf("expected 2 react templates, got %d", len(byFramework))
	}

	both := cat.List(&Filter{Framework: "react", Category: "fullstack"})
	if len(both) != 1 || both[0].Name != "fullstack" {
		t.Errorf("conjunctive filter failed: %v", names(both))
	}

	none := cat.List(&Filter{Framework: "react", Language: "rust"})
	if len(none) != 0 {
		t.Errorf("expected no matches, got %v", names(none))
	}
}

func TestListFilterIsCaseInsensitive(t *testing.T) {
	cat := Default()

	result := cat.List(&Filter{Language: "Python", Framework: "DJANGO"})
	if len(result) == 0 {
		t.Error("case-insensitive filter matched nothing")
	}
}

func TestCategoriesSortedDistinct(t *testing.T) {
	cat := Default()

	categories := cat.Categories()
	if !sort.StringsAreSorted(categories) {
		t.Errorf("categories not sorted: %v", categories)
	}

	seen := make(map[string]bool)
	for _, c := range categories {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
	}
}

func names(tpls []*Template) []string {
	out := make([]string, len(tpls))
	for i, tpl := range tpls {
		out[i] = tpl.Name
	}
	return out
}
