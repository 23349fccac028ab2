package main

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Init() tea.Cmd {
	return openDBCmd(m.cfg.DBPath)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dbReadyMsg:
		return m.handleDBReady(msg)
	case refreshDoneMsg:
		return m.handleRefreshDone(msg)
	case insertDoneMsg:
		return m.handleInsertDone(msg)
	case expendedSavedMsg:
		return m.handleExpendedSaved(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInWindow()
		return m, nil
	case tea.KeyMsg:
		switch m.screen {
		case screenInput:
			return m.updateInput(msg)
		case screenEdit:
			return m.updateEdit(msg)
		case screenQuery:
			return m.updateQuery(msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

// setError sets the status as an error message (rendered in red).
func (m *model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

// refresh re-queries the store with the current predicate and sort.
func (m model) refresh() tea.Cmd {
	if m.db == nil {
		return nil
	}
	return refreshCmd(m.db, m.activeFilter(), m.sortKey)
}

// ---------------------------------------------------------------------------
// Message handlers
// ---------------------------------------------------------------------------

func (m model) handleDBReady(msg dbReadyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(fmt.Sprintf("DB error: %v", msg.err))
		return m, nil
	}
	m.db = msg.db
	return m, m.refresh()
}

func (m model) handleRefreshDone(msg refreshDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(fmt.Sprintf("DB error: %v", msg.err))
		return m, nil
	}
	m.rows = msg.rows
	m.ingredients = msg.ingredients
	m.pruneSelection()
	if !m.ready {
		m.ready = true
		m.setStatus("Ready")
	}
	return m, nil
}

func (m model) handleInsertDone(msg insertDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Buffers are untouched; the form stays open so the user can
		// retry or cancel.
		m.setError(fmt.Sprintf("Save failed: %v", msg.err))
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Recorded %q.", m.ingredientInput))
	m.ingredientInput = ""
	m.priceInput = ""
	m.expendedInput = ""
	if m.screen == screenInput {
		m.field = fieldIngredient
	}
	return m, m.refresh()
}

func (m model) handleExpendedSaved(msg expendedSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(fmt.Sprintf("Save failed: %v", msg.err))
		return m, nil
	}
	m.setStatus("Expended date updated.")
	if m.screen == screenEdit {
		m.expendedInput = ""
		m.screen = screenMain
		m.field = fieldNone
	}
	return m, m.refresh()
}

// ---------------------------------------------------------------------------
// Main screen
// ---------------------------------------------------------------------------

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.New):
		m.screen = screenInput
		m.field = fieldPurchaseDate
		m.ingredientInput = ""
		m.priceInput = ""
		m.expendedInput = ""
		m.purchaseInput = ""
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if _, ok := m.selectedPurchase(); !ok {
			m.setStatus("Nothing selected.")
			return m, nil
		}
		m.screen = screenEdit
		m.field = fieldExpended
		m.expendedInput = ""
		return m, nil

	case key.Matches(msg, m.keys.Expend):
		sel, ok := m.selectedPurchase()
		if !ok {
			m.setStatus("Nothing selected.")
			return m, nil
		}
		if m.db == nil {
			return m, nil
		}
		today := resolveDateToken("t", m.now())
		return m, updateExpendedCmd(m.db, sel.id, sql.NullString{String: today, Valid: true})

	case key.Matches(msg, m.keys.UpDown):
		down := msg.String() == "down" || msg.String() == "j"
		m.moveSelection(down)
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.sortKey = m.sortKey.next()
		m.setStatus(fmt.Sprintf("Sort: %s", m.sortKey.label()))
		return m, m.refresh()

	case key.Matches(msg, m.keys.Search):
		m.screen = screenQuery
		m.searchQuery = ""
		return m, m.refresh()

	case key.Matches(msg, m.keys.Reset):
		if m.searchQuery == "" {
			return m, nil
		}
		m.searchQuery = ""
		m.setStatus("Filter cleared.")
		return m, m.refresh()
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Entry form
// ---------------------------------------------------------------------------

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.inputKeys.Cancel):
		// Cancel discards the staged entry entirely.
		m.screen = screenMain
		m.field = fieldNone
		m.ingredientInput = ""
		m.priceInput = ""
		m.expendedInput = ""
		m.purchaseInput = ""
		return m, nil

	case key.Matches(msg, m.inputKeys.NextField):
		// The purchase date is not part of the tab ring; it has to be
		// confirmed before the per-item fields open up.
		m.field = nextInputField(m.field)
		return m, nil

	case key.Matches(msg, m.inputKeys.Confirm):
		return m.confirmInput()
	}

	m.editBuffer(m.field, msg)
	return m, nil
}

// confirmInput handles enter on the entry form. Confirming the purchase
// date opens the per-item fields; confirming anywhere else submits the
// staged item if it is complete.
func (m model) confirmInput() (tea.Model, tea.Cmd) {
	if m.field == fieldPurchaseDate {
		if m.purchaseInput == "" {
			m.setError("Purchase date is required.")
			return m, nil
		}
		m.field = fieldIngredient
		return m, nil
	}

	if m.ingredientInput == "" || m.priceInput == "" {
		m.setError("Ingredient and price are required.")
		return m, nil
	}

	priceCents, err := parsePrice(m.priceInput)
	if err != nil {
		// Recoverable: keep every buffer so the user can fix the price.
		m.setError(fmt.Sprintf("Invalid price %q.", m.priceInput))
		return m, nil
	}

	expended := sql.NullString{}
	if m.expendedInput != "" {
		expended = sql.NullString{String: resolveDateToken(m.expendedInput, m.now()), Valid: true}
	}
	purchaseDate := resolveDateToken(m.purchaseInput, m.now())
	if m.db == nil {
		m.setError("Store unavailable.")
		return m, nil
	}

	// The purchase-date buffer survives the submit so several items can
	// be entered in a row under one date.
	return m, insertCmd(m.db, m.ingredientInput, priceCents, purchaseDate, expended)
}

// ---------------------------------------------------------------------------
// Edit-expended form
// ---------------------------------------------------------------------------

func (m model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.inputKeys.Cancel):
		m.expendedInput = ""
		m.screen = screenMain
		m.field = fieldNone
		return m, nil

	case key.Matches(msg, m.inputKeys.Confirm):
		sel, ok := m.selectedPurchase()
		if !ok {
			// The selection can vanish under the form, e.g. after an
			// error refresh; bail out without touching the store.
			m.expendedInput = ""
			m.screen = screenMain
			m.field = fieldNone
			return m, nil
		}
		// An empty buffer clears the expended date rather than storing
		// an empty string.
		resolved := sql.NullString{}
		if m.expendedInput != "" {
			resolved = sql.NullString{String: resolveDateToken(m.expendedInput, m.now()), Valid: true}
		}
		if m.db == nil {
			m.setError("Store unavailable.")
			return m, nil
		}
		return m, updateExpendedCmd(m.db, sel.id, resolved)
	}

	m.editBuffer(fieldExpended, msg)
	return m, nil
}

// ---------------------------------------------------------------------------
// Query mode
// ---------------------------------------------------------------------------

func (m model) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Drop the query entirely and restore the unfiltered view.
		m.searchQuery = ""
		m.screen = screenMain
		return m, m.refresh()
	case "enter":
		// Keep the query active, just leave input mode.
		m.screen = screenMain
		return m, nil
	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			return m, m.refresh()
		}
		return m, nil
	}
	if s := printableKey(msg); s != "" {
		m.searchQuery += s
		return m, m.refresh()
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Buffer editing
// ---------------------------------------------------------------------------

// editBuffer applies a printable rune or backspace to the given field's
// staged buffer.
func (m *model) editBuffer(f field, msg tea.KeyMsg) {
	buf := m.bufferFor(f)
	if buf == nil {
		return
	}
	if msg.String() == "backspace" {
		if len(*buf) > 0 {
			*buf = (*buf)[:len(*buf)-1]
		}
		return
	}
	*buf += printableKey(msg)
}

func (m *model) bufferFor(f field) *string {
	switch f {
	case fieldPurchaseDate:
		return &m.purchaseInput
	case fieldIngredient:
		return &m.ingredientInput
	case fieldPrice:
		return &m.priceInput
	case fieldExpended:
		return &m.expendedInput
	}
	return nil
}

// printableKey returns the key's text if it is a plain printable
// keystroke, or "" for control and navigation keys.
func printableKey(msg tea.KeyMsg) string {
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return ""
	}
	s := msg.String()
	if msg.Type == tea.KeySpace {
		s = " "
	}
	for _, r := range s {
		if r < 32 || r == 127 {
			return ""
		}
	}
	return s
}
