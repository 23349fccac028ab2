package main

import (
	"database/sql"

	tea "github.com/charmbracelet/bubbletea"
)

// Store access runs inside commands so the update loop never blocks on
// I/O; each command resolves to exactly one typed done-message.

func openDBCmd(path string) tea.Cmd {
	return func() tea.Msg {
		db, err := openDB(path)
		return dbReadyMsg{db: db, err: err}
	}
}

// refreshCmd re-runs the active query. The filter and sort are captured
// at dispatch time, so the result always reflects the state that
// triggered the refresh.
func refreshCmd(db *sql.DB, filter purchaseFilter, sort sortKey) tea.Cmd {
	return func() tea.Msg {
		rows, err := queryPurchases(db, filter, sort)
		if err != nil {
			return refreshDoneMsg{err: err}
		}
		ingredients, err := knownIngredients(db)
		if err != nil {
			return refreshDoneMsg{err: err}
		}
		return refreshDoneMsg{rows: rows, ingredients: ingredients}
	}
}

func insertCmd(db *sql.DB, ingredient string, priceCents int64, purchaseDate string, expended sql.NullString) tea.Cmd {
	return func() tea.Msg {
		id, err := insertPurchase(db, ingredient, priceCents, purchaseDate, expended)
		return insertDoneMsg{id: id, err: err}
	}
}

func updateExpendedCmd(db *sql.DB, id int64, date sql.NullString) tea.Cmd {
	return func() tea.Msg {
		return expendedSavedMsg{err: updateExpended(db, id, date)}
	}
}
