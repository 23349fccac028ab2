package main

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// ---------------------------------------------------------------------------
// Schema
// ---------------------------------------------------------------------------

const schemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS purchases (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	ingredient     TEXT NOT NULL,
	price          INTEGER NOT NULL,
	purchase_date  TEXT NOT NULL,
	expended_date  TEXT,
	created_at     TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_purchases_purchase_date ON purchases(purchase_date);
CREATE INDEX IF NOT EXISTS idx_purchases_expended_date ON purchases(expended_date);
`

// ---------------------------------------------------------------------------
// Open / migrate
// ---------------------------------------------------------------------------

// openDB opens (or creates) the SQLite database and ensures the schema
// is at the current version.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	ver, err := currentSchemaVersion(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("check schema version: %w", err)
	}

	if ver < schemaVersion {
		if err := migrateSchema(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
	}

	return db, nil
}

// currentSchemaVersion returns the schema version from schema_meta, or 0
// for a fresh database.
func currentSchemaVersion(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_meta'
	`).Scan(&count)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	var ver int
	err = db.QueryRow("SELECT version FROM schema_meta LIMIT 1").Scan(&ver)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return ver, err
}

func migrateSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaV1); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := db.Exec("DELETE FROM schema_meta"); err != nil {
		return fmt.Errorf("reset schema version: %w", err)
	}
	if _, err := db.Exec("INSERT INTO schema_meta (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("insert schema version: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Record operations
// ---------------------------------------------------------------------------

// insertPurchase stores a new record and returns its id. expended must
// be the invalid NullString for an item that has not been expended.
func insertPurchase(db *sql.DB, ingredient string, priceCents int64, purchaseDate string, expended sql.NullString) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO purchases (ingredient, price, purchase_date, expended_date)
		VALUES (?, ?, ?, ?)
	`, ingredient, priceCents, purchaseDate, expended)
	if err != nil {
		return 0, fmt.Errorf("insert purchase: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert purchase id: %w", err)
	}
	return id, nil
}

// updateExpended sets the expended date on an existing record, or clears
// it when given the invalid NullString. This is the only post-creation
// mutation the application performs.
func updateExpended(db *sql.DB, id int64, date sql.NullString) error {
	res, err := db.Exec("UPDATE purchases SET expended_date = ? WHERE id = ?", date, id)
	if err != nil {
		return fmt.Errorf("update expended: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update expended: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update expended: no purchase with id %d", id)
	}
	return nil
}

// queryPurchases returns all records matching the filter, fully ordered
// by the sort key. The result is materialized in one pass; the dataset
// is a personal purchase log and comfortably fits in memory.
func queryPurchases(db *sql.DB, filter purchaseFilter, sort sortKey) ([]purchase, error) {
	where, args := filter.whereClause()
	q := fmt.Sprintf(`
		SELECT id, ingredient, price, purchase_date, expended_date
		FROM purchases
		%s
		%s
	`, where, sort.orderClause())

	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query purchases: %w", err)
	}
	defer rows.Close()

	var out []purchase
	for rows.Next() {
		var p purchase
		if err := rows.Scan(&p.id, &p.ingredient, &p.priceCents, &p.purchaseDate, &p.expendedDate); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchases: %w", err)
	}
	return out, nil
}

// knownIngredients returns the distinct ingredient names on record,
// feeding the entry-form suggestion.
func knownIngredients(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT DISTINCT ingredient FROM purchases ORDER BY ingredient")
	if err != nil {
		return nil, fmt.Errorf("query ingredients: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
