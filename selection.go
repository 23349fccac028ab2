package main

// Selection over the result table. cursor == -1 means no selection; any
// other value is an index into the current rows. Every helper guards
// count == 0 before doing arithmetic so an empty result set can never
// wrap or underflow.

// advanceSelection moves the selection down one row, wrapping from the
// last row to the first. With no current selection it lands on row 0.
func advanceSelection(cur, count int) int {
	if count <= 0 {
		return -1
	}
	if cur < 0 || cur >= count-1 {
		return 0
	}
	return cur + 1
}

// retreatSelection moves the selection up one row, wrapping from the
// first row to the last. With no current selection it lands on row 0.
func retreatSelection(cur, count int) int {
	if count <= 0 {
		return -1
	}
	if cur < 0 {
		return 0
	}
	if cur == 0 {
		return count - 1
	}
	return cur - 1
}

// clampSelection keeps an existing selection valid after the row count
// changes, e.g. when a live search narrows the result set.
func clampSelection(cur, count int) int {
	if count <= 0 {
		return -1
	}
	if cur < 0 {
		return -1
	}
	if cur >= count {
		return count - 1
	}
	return cur
}

// ensureCursorInWindow recomputes the scroll window so the cursor stays
// visible. topIndex is a projection of the cursor and page size, never
// an independent source of truth.
func (m *model) ensureCursorInWindow() {
	page := m.pageSize()
	if m.cursor < 0 {
		m.topIndex = 0
		return
	}
	if m.cursor < m.topIndex {
		m.topIndex = m.cursor
	}
	if m.cursor >= m.topIndex+page {
		m.topIndex = m.cursor - page + 1
	}
	if m.topIndex < 0 {
		m.topIndex = 0
	}
}

// moveSelection applies one up/down step and refreshes the scroll mirror.
func (m *model) moveSelection(down bool) {
	if down {
		m.cursor = advanceSelection(m.cursor, len(m.rows))
	} else {
		m.cursor = retreatSelection(m.cursor, len(m.rows))
	}
	m.ensureCursorInWindow()
}

// pruneSelection re-clamps the cursor after any refresh that may have
// shrunk the result set.
func (m *model) pruneSelection() {
	m.cursor = clampSelection(m.cursor, len(m.rows))
	m.ensureCursorInWindow()
}

// selectedPurchase returns the currently highlighted record, or false
// when nothing is selected.
func (m model) selectedPurchase() (purchase, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return purchase{}, false
	}
	return m.rows[m.cursor], true
}
