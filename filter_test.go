package main

import "testing"

func TestFilterMatchAllSentinel(t *testing.T) {
	f := purchaseFilter{}
	if !f.matchAll() {
		t.Fatal("zero filter should match all")
	}
	if !f.matches(purchase{ingredient: "anything"}) {
		t.Error("universal predicate rejected a record")
	}
	where, args := f.whereClause()
	if where != "" || args != nil {
		t.Errorf("universal predicate produced clause %q args %v", where, args)
	}
}

func TestFilterContains(t *testing.T) {
	f := purchaseFilter{Contains: "bea"}

	tests := []struct {
		ingredient string
		want       bool
	}{
		{"beans", true},
		{"Beans", true}, // matching is case-insensitive
		{"BLACK BEANS", true},
		{"rice", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := f.matches(purchase{ingredient: tt.ingredient}); got != tt.want {
			t.Errorf("matches(%q) = %v, want %v", tt.ingredient, got, tt.want)
		}
	}

	where, args := f.whereClause()
	if where == "" {
		t.Fatal("contains predicate produced no clause")
	}
	if len(args) != 1 || args[0] != "bea" {
		t.Errorf("clause args = %v, want [bea]", args)
	}
}

func TestSortKeyCycle(t *testing.T) {
	k := sortSmart
	seen := map[sortKey]bool{}
	for i := 0; i < int(sortKeyCount); i++ {
		if seen[k] {
			t.Fatalf("sort cycle revisited %v early", k)
		}
		seen[k] = true
		k = k.next()
	}
	if k != sortSmart {
		t.Errorf("cycle of %d steps ended on %v, want sortSmart", sortKeyCount, k)
	}
}

func TestOrderClauseClosedSet(t *testing.T) {
	for k := sortKey(0); k < sortKeyCount; k++ {
		if k.orderClause() == "" {
			t.Errorf("sort key %v has empty order clause", k)
		}
		if k.label() == "" {
			t.Errorf("sort key %v has empty label", k)
		}
	}
}

func TestActiveFilterTracksSearchText(t *testing.T) {
	m := newModel(defaultSettings())
	if !m.activeFilter().matchAll() {
		t.Error("fresh model should have universal predicate")
	}
	m.searchQuery = "rice"
	if m.activeFilter().Contains != "rice" {
		t.Error("predicate not derived from search text")
	}
	m.searchQuery = ""
	if !m.activeFilter().matchAll() {
		t.Error("clearing search text should restore universal predicate")
	}
}
