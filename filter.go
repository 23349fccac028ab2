package main

import "strings"

// ---------------------------------------------------------------------------
// Search predicate
// ---------------------------------------------------------------------------

// purchaseFilter is the structured search predicate handed to the store.
// The zero value is the universal predicate: an empty search string means
// "show everything", not "contains empty substring". Matching is
// case-insensitive; the predicate is a value, never an interpolated SQL
// string.
type purchaseFilter struct {
	Contains string
}

func (f purchaseFilter) matchAll() bool {
	return f.Contains == ""
}

// matches evaluates the predicate against a record in-process. The store
// applies the same rule server-side via whereClause; this form exists so
// the predicate is testable without a database.
func (f purchaseFilter) matches(p purchase) bool {
	if f.matchAll() {
		return true
	}
	return strings.Contains(strings.ToLower(p.ingredient), strings.ToLower(f.Contains))
}

// whereClause renders the predicate as a parameterized SQL fragment.
// Returns an empty clause for the universal predicate.
func (f purchaseFilter) whereClause() (string, []any) {
	if f.matchAll() {
		return "", nil
	}
	return "WHERE instr(lower(ingredient), lower(?)) > 0", []any{f.Contains}
}

// ---------------------------------------------------------------------------
// Sort clause
// ---------------------------------------------------------------------------

// sortKey is the closed set of result orderings.
type sortKey int

const (
	// sortSmart surfaces recently expended items first, with unexpended
	// items last, ties broken by oldest purchase first.
	sortSmart sortKey = iota
	sortPriceDesc
	sortPriceAsc
	sortDateDesc
	sortDateAsc
	sortKeyCount
)

func (k sortKey) label() string {
	switch k {
	case sortSmart:
		return "smart"
	case sortPriceDesc:
		return "price ↓"
	case sortPriceAsc:
		return "price ↑"
	case sortDateDesc:
		return "date ↓"
	case sortDateAsc:
		return "date ↑"
	}
	return "smart"
}

// next cycles to the following sort key. Cycling only changes the active
// clause; the caller issues the single re-query for the event.
func (k sortKey) next() sortKey {
	return (k + 1) % sortKeyCount
}

// orderClause maps the key to a fixed ORDER BY. The id tiebreak keeps
// orderings stable across refreshes.
func (k sortKey) orderClause() string {
	switch k {
	case sortPriceDesc:
		return "ORDER BY price DESC, id ASC"
	case sortPriceAsc:
		return "ORDER BY price ASC, id ASC"
	case sortDateDesc:
		return "ORDER BY purchase_date DESC, id ASC"
	case sortDateAsc:
		return "ORDER BY purchase_date ASC, id ASC"
	}
	return "ORDER BY expended_date IS NULL, expended_date DESC, purchase_date ASC, id ASC"
}
