package iotable

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/bggmech/pkg/config"
	"github.com/gnames/bggmech/pkg/errcode"
	"github.com/gnames/bggmech/pkg/record"
	"github.com/gnames/bggmech/pkg/table"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(t *testing.T, games ...record.Outcome) *table.Table {
	t.Helper()
	acc := table.NewAccumulator()
	for _, g := range games {
		g.Status = record.Valid
		require.NoError(t, acc.Accept(g))
	}
	return acc.Finalize()
}

func TestNew(t *testing.T) {
	cfg := config.New()
	w, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &csvWriter{}, w)

	cfg.Update([]config.Option{config.OptOutputFormat("sqlite")})
	w, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &sqliteWriter{}, w)

	cfg.Output.Format = "xlsx"
	_, err = New(cfg)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.OutputFormatError, gnErr.Code)
}

func TestCSVWrite(t *testing.T) {
	tbl := sampleTable(t,
		record.Outcome{Rating: 7, BayesRating: 6, Tags: []string{"Dice Rolling"}},
		record.Outcome{Rating: 8, BayesRating: 7, Tags: []string{"Drafting"}},
	)
	path := filepath.Join(t.TempDir(), "all_data.csv")

	err := NewCSV(path).Write(context.Background(), tbl)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	exp := "rating,bayes_rating,Dice Rolling,Drafting\n" +
		"7,6,1,0\n" +
		"8,7,0,1\n"
	assert.Equal(t, exp, string(data))
}

func TestCSVWriteQuotesLabels(t *testing.T) {
	tbl := sampleTable(t,
		record.Outcome{
			Rating: 7.5, BayesRating: 6.8,
			Tags: []string{`Roll, Move`, `"Quoted"`},
		},
	)
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, NewCSV(path).Write(context.Background(), tbl))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	exp := "rating,bayes_rating,\"Roll, Move\",\"\"\"Quoted\"\"\"\n" +
		"7.5,6.8,1,1\n"
	assert.Equal(t, exp, string(data))
}

func TestCSVWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("old content\nmore\nlines\n"), 0644))

	tbl := sampleTable(t)
	require.NoError(t, NewCSV(path).Write(context.Background(), tbl))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rating,bayes_rating\n", string(data))
}

func TestCSVWriteCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	err := NewCSV(path).Write(context.Background(), sampleTable(t))

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.OutputCreateError, gnErr.Code)
}

func TestSQLiteWrite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping SQLite test in short mode")
	}
	tbl := sampleTable(t,
		record.Outcome{Rating: 7.5, BayesRating: 6.8, Tags: []string{"Dice Rolling"}},
		record.Outcome{Rating: 8, BayesRating: 7, Tags: []string{"Drafting", "dice rolling"}},
	)
	path := filepath.Join(t.TempDir(), "all_data.sqlite")
	require.NoError(t, os.WriteFile(path, []byte("not a database"), 0644))

	err := NewSQLite(path, "games").Write(context.Background(), tbl)
	require.NoError(t, err)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(
		`SELECT rating, bayes_rating, "Dice Rolling", "Drafting", "dice rolling_2"
		FROM games ORDER BY rowid`,
	)
	require.NoError(t, err)
	defer rows.Close()

	type row struct {
		rating, bayes float64
		a, b, c       int
	}
	var res []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.rating, &r.bayes, &r.a, &r.b, &r.c))
		res = append(res, r)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []row{
		{7.5, 6.8, 1, 0, 0},
		{8, 7, 0, 1, 1},
	}, res)

	var label string
	err = db.QueryRow(
		`SELECT label FROM games_columns WHERE name = ?`, "dice rolling_2",
	).Scan(&label)
	require.NoError(t, err)
	assert.Equal(t, "dice rolling", label)
}

func TestColumnNames(t *testing.T) {
	tests := []struct {
		msg    string
		header []string
		res    []string
	}{
		{
			"unique labels",
			[]string{"rating", "bayes_rating", "A", "B"},
			[]string{"rating", "bayes_rating", "A", "B"},
		},
		{
			"case-insensitive duplicates",
			[]string{"rating", "bayes_rating", "Rating", "a", "A", "A_2"},
			[]string{"rating", "bayes_rating", "Rating_2", "a", "A_2", "A_2_2"},
		},
		{
			"empty label",
			[]string{"rating", "bayes_rating", ""},
			[]string{"rating", "bayes_rating", "column_2"},
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, columnNames(v.header), v.msg)
	}
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"Dice Rolling"`, quoteIdent("Dice Rolling"))
	assert.Equal(t, `"a""b"`, quoteIdent(`a"b`))
	assert.Equal(t, `INSERT INTO "games" VALUES (?, ?, ?)`, insertSQL("games", 3))
}
