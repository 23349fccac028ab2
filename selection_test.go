package main

import "testing"

func TestAdvanceRetreatRoundTrip(t *testing.T) {
	// advance then retreat over an unchanged count returns to the start.
	for count := 1; count <= 5; count++ {
		for cur := 0; cur < count; cur++ {
			if got := retreatSelection(advanceSelection(cur, count), count); got != cur {
				t.Errorf("round trip from %d over %d rows = %d", cur, count, got)
			}
		}
	}
}

func TestAdvanceWraps(t *testing.T) {
	if got := advanceSelection(2, 3); got != 0 {
		t.Errorf("advance from last = %d, want 0", got)
	}
	if got := advanceSelection(-1, 3); got != 0 {
		t.Errorf("advance from none = %d, want 0", got)
	}
}

func TestRetreatWraps(t *testing.T) {
	if got := retreatSelection(0, 3); got != 2 {
		t.Errorf("retreat from first = %d, want 2", got)
	}
	if got := retreatSelection(-1, 3); got != 0 {
		t.Errorf("retreat from none = %d, want 0", got)
	}
}

func TestEmptyRowsNeverUnderflow(t *testing.T) {
	if got := advanceSelection(-1, 0); got != -1 {
		t.Errorf("advance over empty rows = %d, want -1", got)
	}
	if got := advanceSelection(0, 0); got != -1 {
		t.Errorf("advance with stale cursor over empty rows = %d, want -1", got)
	}
	if got := retreatSelection(-1, 0); got != -1 {
		t.Errorf("retreat over empty rows = %d, want -1", got)
	}
	if got := clampSelection(4, 0); got != -1 {
		t.Errorf("clamp over empty rows = %d, want -1", got)
	}
}

func TestClampAfterShrink(t *testing.T) {
	tests := []struct {
		cur, count, want int
	}{
		{4, 3, 2},
		{2, 3, 2},
		{0, 1, 0},
		{-1, 3, -1},
	}
	for _, tt := range tests {
		if got := clampSelection(tt.cur, tt.count); got != tt.want {
			t.Errorf("clampSelection(%d, %d) = %d, want %d", tt.cur, tt.count, got, tt.want)
		}
	}
}

func TestEnsureCursorInWindow(t *testing.T) {
	m := newModel(defaultSettings())
	m.cfg.RowsPerPage = 5
	m.rows = make([]purchase, 20)

	m.cursor = 12
	m.ensureCursorInWindow()
	if m.topIndex != 8 {
		t.Errorf("topIndex = %d, want 8", m.topIndex)
	}

	m.cursor = 3
	m.ensureCursorInWindow()
	if m.topIndex != 3 {
		t.Errorf("topIndex after scroll up = %d, want 3", m.topIndex)
	}

	m.cursor = -1
	m.ensureCursorInWindow()
	if m.topIndex != 0 {
		t.Errorf("topIndex with no selection = %d, want 0", m.topIndex)
	}
}
