package iotable

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	bggmech "github.com/gnames/bggmech/pkg"
	"github.com/gnames/bggmech/pkg/table"
	_ "modernc.org/sqlite"
)

type sqliteWriter struct {
	path      string
	tableName string
}

// NewSQLite returns a Writer that stores the table in a new SQLite
// database at path. The rating columns are REAL, mechanic columns are
// INTEGER and named after the mechanic labels. SQLite column names are
// case-insensitive, so colliding labels get a numeric suffix. The exact
// labels are kept in the companion table <tableName>_columns.
func NewSQLite(path, tableName string) bggmech.Writer {
	return &sqliteWriter{path: path, tableName: tableName}
}

func (w *sqliteWriter) Write(ctx context.Context, tbl *table.Table) error {
	err := os.Remove(w.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return CreateError(w.path, err)
	}

	db, err := sql.Open("sqlite", w.path)
	if err != nil {
		return CreateError(w.path, err)
	}
	defer db.Close()

	cols := columnNames(tbl.Header)
	for _, q := range []string{
		createTableSQL(w.tableName, cols),
		createColumnsSQL(w.tableName),
	} {
		if _, err = db.ExecContext(ctx, q); err != nil {
			return CreateError(w.path, err)
		}
	}

	if err = w.insertRows(ctx, db, tbl, cols); err != nil {
		return WriteError(w.path, err)
	}
	return nil
}

func (w *sqliteWriter) insertRows(
	ctx context.Context,
	db *sql.DB,
	tbl *table.Table,
	cols []string,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	colsQ := fmt.Sprintf(
		"INSERT INTO %s (position, name, label) VALUES (?, ?, ?)",
		quoteIdent(w.tableName+"_columns"),
	)
	for i, label := range tbl.Header {
		if _, err = tx.ExecContext(ctx, colsQ, i, cols[i], label); err != nil {
			return err
		}
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL(w.tableName, len(tbl.Header)))
	if err != nil {
		return err
	}
	defer stmt.Close()

	args := make([]any, len(tbl.Header))
	for _, r := range tbl.Rows {
		args[0] = r.Rating
		args[1] = r.BayesRating
		for i, f := range r.Flags {
			args[i+2] = int(f)
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// columnNames turns header labels into unique SQLite column names.
// Empty labels become column_<position>, case-insensitive duplicates get
// a _<n> suffix.
func columnNames(header []string) []string {
	res := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, label := range header {
		name := label
		if name == "" {
			name = fmt.Sprintf("column_%d", i)
		}
		base := name
		for n := 2; ; n++ {
			key := strings.ToLower(name)
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				break
			}
			name = fmt.Sprintf("%s_%d", base, n)
		}
		res[i] = name
	}
	return res
}

func createTableSQL(name string, cols []string) string {
	defs := make([]string, len(cols))
	for i, col := range cols {
		switch i {
		case 0, 1:
			defs[i] = quoteIdent(col) + " REAL NOT NULL"
		default:
			defs[i] = quoteIdent(col) + " INTEGER NOT NULL DEFAULT 0"
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n)",
		quoteIdent(name), strings.Join(defs, ",\n  "))
}

func createColumnsSQL(name string) string {
	return fmt.Sprintf(`CREATE TABLE %s (
  position INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  label TEXT NOT NULL
)`, quoteIdent(name+"_columns"))
}

func insertSQL(name string, n int) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(name), marks)
}

// quoteIdent quotes an SQL identifier, doubling embedded quotes.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
