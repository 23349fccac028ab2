package main

import (
	"database/sql"
	"time"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

const appName = "Larder"

// purchase is one persisted purchase record. price is in minor currency
// units (cents). expendedDate is NULL until the item is marked expended;
// NULL, not the empty string, so an empty input can never collide with it.
type purchase struct {
	id           int64
	ingredient   string
	priceCents   int64
	purchaseDate string
	expendedDate sql.NullString
}

// ---------------------------------------------------------------------------
// Screens and fields
// ---------------------------------------------------------------------------

// screen is the top-level UI mode. Exactly one is active at a time.
type screen int

const (
	screenMain screen = iota
	screenInput
	screenEdit
	screenQuery
)

// field identifies which staged input buffer receives keystrokes.
// Only meaningful while screenInput or screenEdit is active.
type field int

const (
	fieldNone field = iota
	fieldPurchaseDate
	fieldIngredient
	fieldPrice
	fieldExpended
)

func (f field) label() string {
	switch f {
	case fieldPurchaseDate:
		return "Purchase date"
	case fieldIngredient:
		return "Ingredient"
	case fieldPrice:
		return "Price"
	case fieldExpended:
		return "Expended date"
	}
	return ""
}

// nextInputField cycles the entry-form ring: ingredient -> price ->
// expended -> ingredient. The purchase-date field sits outside the ring;
// it is captured once per entry session and left by confirming it.
func nextInputField(f field) field {
	switch f {
	case fieldIngredient:
		return fieldPrice
	case fieldPrice:
		return fieldExpended
	case fieldExpended:
		return fieldIngredient
	}
	return f
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type dbReadyMsg struct {
	db  *sql.DB
	err error
}

type refreshDoneMsg struct {
	rows        []purchase
	ingredients []string
	err         error
}

type insertDoneMsg struct {
	id  int64
	err error
}

type expendedSavedMsg struct {
	err error
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	db     *sql.DB
	cfg    settings
	ready  bool
	width  int
	height int

	// Status line; statusErr renders it in the error style.
	status    string
	statusErr bool

	screen screen
	field  field

	// Staged input buffers, one per field, plus the live search buffer.
	ingredientInput string
	priceInput      string
	expendedInput   string
	purchaseInput   string
	searchQuery     string

	sortKey sortKey

	// Most recent query result and selection over it. cursor == -1 means
	// no selection; topIndex mirrors the scroll window and is always
	// derived from cursor and page size.
	rows     []purchase
	cursor   int
	topIndex int

	// Distinct ingredient names on record, for entry suggestions.
	ingredients []string

	keys      keyMap
	inputKeys inputKeyMap

	now func() time.Time
}

func newModel(cfg settings) model {
	return model{
		cfg:       cfg,
		screen:    screenMain,
		field:     fieldNone,
		sortKey:   sortSmart,
		cursor:    -1,
		status:    "Loading...",
		keys:      newKeyMap(),
		inputKeys: newInputKeyMap(),
		width:     100,
		height:    32,
		now:       time.Now,
	}
}

// activeFilter derives the structured search predicate from the raw
// search text. It is recomputed on demand so it can never go stale.
func (m model) activeFilter() purchaseFilter {
	return purchaseFilter{Contains: m.searchQuery}
}

// pageSize is the number of table rows visible in the current window.
func (m model) pageSize() int {
	if m.cfg.RowsPerPage > 0 {
		return m.cfg.RowsPerPage
	}
	return defaultRowsPerPage
}
