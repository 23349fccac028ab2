package main

import (
	"database/sql"
	"strings"
	"testing"
	"time"
)

func renderModel() model {
	m := newModel(defaultSettings())
	m.ready = true
	m.width = 100
	m.height = 40
	m.now = func() time.Time { return time.Date(2024, 9, 15, 12, 0, 0, 0, time.Local) }
	m.rows = []purchase{
		{id: 1, ingredient: "rice", priceCents: 499, purchaseDate: "2024-09-01"},
		{id: 2, ingredient: "beans", priceCents: 250, purchaseDate: "2024-09-02",
			expendedDate: sql.NullString{String: "2024-09-03", Valid: true}},
	}
	return m
}

func TestViewMainScreen(t *testing.T) {
	m := renderModel()
	view := m.View()

	for _, want := range []string{appName, "rice", "beans", "$4.99", "in stock", "2024-09-03", "showing 1-2 of 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("main view missing %q", want)
		}
	}
}

func TestViewEmptyState(t *testing.T) {
	m := renderModel()
	m.rows = nil
	if !strings.Contains(m.View(), "No purchases recorded yet") {
		t.Error("empty view missing hint")
	}

	m.searchQuery = "zzz"
	if !strings.Contains(m.View(), "No purchases match") {
		t.Error("filtered-empty view missing hint")
	}
}

func TestViewEntryModal(t *testing.T) {
	m := renderModel()
	m.screen = screenInput
	m.field = fieldIngredient
	m.purchaseInput = "t"
	m.ingredientInput = "ric"
	m.ingredients = []string{"rice", "beans"}

	view := m.View()
	for _, want := range []string{"New purchase", "Purchase date", "Ingredient", "Price", "similar: rice"} {
		if !strings.Contains(view, want) {
			t.Errorf("entry modal missing %q", want)
		}
	}
}

func TestViewEditModal(t *testing.T) {
	m := renderModel()
	m.screen = screenEdit
	m.field = fieldExpended
	m.cursor = 0

	view := m.View()
	for _, want := range []string{"Edit expended date", "rice"} {
		if !strings.Contains(view, want) {
			t.Errorf("edit modal missing %q", want)
		}
	}
}

func TestViewQueryBar(t *testing.T) {
	m := renderModel()
	m.screen = screenQuery
	m.searchQuery = "bea"

	if !strings.Contains(m.View(), "bea") {
		t.Error("query view missing live search text")
	}
}

func TestViewSmallWindowDoesNotPanic(t *testing.T) {
	m := renderModel()
	m.width = 10
	m.height = 3
	_ = m.View()

	m.width = 0
	m.height = 0
	_ = m.View()
}

func TestRenderSpendChart(t *testing.T) {
	now := time.Date(2024, 9, 15, 12, 0, 0, 0, time.Local)
	rows := []purchase{
		{priceCents: 499, purchaseDate: "2024-09-14"},
		{priceCents: 250, purchaseDate: "2024-09-15"},
	}
	if chart := renderSpendChart(rows, 60, 7, now); chart == "" {
		t.Error("chart should render with in-window data")
	}
	if chart := renderSpendChart(nil, 60, 7, now); chart != "" {
		t.Error("chart should collapse with no data")
	}
	if chart := renderSpendChart(rows, 10, 7, now); chart != "" {
		t.Error("chart should collapse below minimum width")
	}
}

func TestOverlayCentersModal(t *testing.T) {
	base := strings.TrimRight(strings.Repeat(strings.Repeat(".", 20)+"\n", 9), "\n")
	out := centerOverlay(base, "XX", 20, 9)
	lines := splitLines(out)
	if !strings.Contains(lines[4], "XX") {
		t.Errorf("overlay not centered:\n%s", out)
	}
}
