package ioconvert_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/bggmech/internal/ioconvert"
	"github.com/gnames/bggmech/internal/iorecord"
	"github.com/gnames/bggmech/internal/iotable"
	"github.com/gnames/bggmech/pkg/config"
	"github.com/gnames/bggmech/pkg/record"
	"github.com/gnames/bggmech/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gameXML(rating, bayes string, mechanics ...string) string {
	res := "<boardgames><boardgame>\n"
	for _, m := range mechanics {
		res += fmt.Sprintf("<boardgamemechanic>%s</boardgamemechanic>\n", m)
	}
	res += fmt.Sprintf(`<statistics><ratings>
<average>%s</average><bayesaverage>%s</bayesaverage>
</ratings></statistics>
</boardgame></boardgames>`, rating, bayes)
	return res
}

const errorXML = `<boardgames><boardgame>
<error message="Item not found"/>
</boardgame></boardgames>`

// run writes game files into a temp dir, converts them to CSV and returns
// the CSV text.
func run(t *testing.T, maxGame int, games map[int]string) string {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.Mkdir(dataDir, 0755))
	for id, body := range games {
		path := filepath.Join(dataDir, fmt.Sprintf("game%d.xml", id))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputDir(dataDir),
		config.OptInputMaxGame(maxGame),
		config.OptOutputPath(filepath.Join(dir, "all_data.csv")),
	})
	w, err := iotable.New(cfg)
	require.NoError(t, err)

	conv := ioconvert.New(cfg, iorecord.New(cfg), w, ioconvert.OptProgress(nil))
	_, err = conv.Convert(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	return string(data)
}

func TestConvertScenarios(t *testing.T) {
	tests := []struct {
		msg     string
		maxGame int
		games   map[int]string
		res     string
	}{
		{
			msg:     "absent neighbours",
			maxGame: 3,
			games:   map[int]string{1: gameXML("7.5", "6.8", "Dice Rolling")},
			res:     "rating,bayes_rating,Dice Rolling\n7.5,6.8,1\n",
		},
		{
			msg:     "earlier row is padded",
			maxGame: 2,
			games: map[int]string{
				0: gameXML("7", "6", "Dice Rolling"),
				1: gameXML("8", "7", "Drafting"),
			},
			res: "rating,bayes_rating,Dice Rolling,Drafting\n" +
				"7,6,1,0\n" +
				"8,7,0,1\n",
		},
		{
			msg:     "zero bayes rating is excluded",
			maxGame: 2,
			games: map[int]string{
				0: gameXML("9", "0", "Worker Placement"),
				1: gameXML("7", "6", "Drafting"),
			},
			res: "rating,bayes_rating,Drafting\n7,6,1\n",
		},
		{
			msg:     "error element is excluded",
			maxGame: 2,
			games: map[int]string{
				0: gameXML("7", "6", "Drafting"),
				1: errorXML,
			},
			res: "rating,bayes_rating,Drafting\n7,6,1\n",
		},
		{
			msg:     "duplicate tags set flag once",
			maxGame: 1,
			games:   map[int]string{0: gameXML("7", "6", "Drafting", "Drafting")},
			res:     "rating,bayes_rating,Drafting\n7,6,1\n",
		},
		{
			msg:     "ids beyond max game are ignored",
			maxGame: 1,
			games: map[int]string{
				0: gameXML("7", "6", "A"),
				1: gameXML("8", "7", "B"),
			},
			res: "rating,bayes_rating,A\n7,6,1\n",
		},
		{
			msg:     "no valid records",
			maxGame: 4,
			games:   map[int]string{2: errorXML},
			res:     "rating,bayes_rating\n",
		},
		{
			msg:     "zero max game scans nothing",
			maxGame: 0,
			games:   map[int]string{0: gameXML("7", "6", "Drafting")},
			res:     "rating,bayes_rating\n",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res := run(t, v.maxGame, v.games)
			assert.Equal(t, v.res, res)
		})
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	games := map[int]string{
		0: gameXML("7", "6", "Zeta", "Alpha"),
		2: gameXML("8", "7", "Mid"),
		3: gameXML("6", "5.5", "Alpha", "Omega"),
	}
	first := run(t, 5, games)
	second := run(t, 5, games)
	assert.Equal(t, first, second)
	assert.Equal(t,
		"rating,bayes_rating,Zeta,Alpha,Mid,Omega\n"+
			"7,6,1,1,0,0\n"+
			"8,7,0,0,1,0\n"+
			"6,5.5,0,1,0,1\n",
		first,
	)
}

type stubLoader struct {
	outcomes map[int]record.Outcome
	failAt   int
}

func (l *stubLoader) Load(id int) (record.Outcome, error) {
	if id == l.failAt {
		return record.Outcome{ID: id}, errors.New("broken record")
	}
	if o, ok := l.outcomes[id]; ok {
		o.ID = id
		return o, nil
	}
	return record.Outcome{ID: id, Status: record.Absent}, nil
}

type stubWriter struct {
	tbl *table.Table
	err error
}

func (w *stubWriter) Write(_ context.Context, tbl *table.Table) error {
	w.tbl = tbl
	return w.err
}

func TestConvertSummary(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptInputMaxGame(6)})
	loader := &stubLoader{
		failAt: -1,
		outcomes: map[int]record.Outcome{
			1: {Status: record.Valid, Rating: 7, BayesRating: 6, Tags: []string{"A"}},
			2: {Status: record.Errored},
			3: {Status: record.ZeroSignal, Rating: 8, Tags: []string{"B"}},
			4: {Status: record.Valid, Rating: 6, BayesRating: 5, Tags: []string{"C", "A"}},
		},
	}
	w := &stubWriter{}

	conv := ioconvert.New(cfg, loader, w, ioconvert.OptProgress(nil))
	res, err := conv.Convert(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, res.Scanned)
	assert.Equal(t, 2, res.Counts[record.Absent])
	assert.Equal(t, 1, res.Counts[record.Errored])
	assert.Equal(t, 1, res.Counts[record.ZeroSignal])
	assert.Equal(t, 2, res.Counts[record.Valid])
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 2, res.Columns)

	require.NotNil(t, w.tbl)
	assert.Equal(t, []string{"A", "C"}, w.tbl.Tags())
}

func TestConvertLoadErrorIsFatal(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptInputMaxGame(5)})
	loader := &stubLoader{failAt: 2}
	w := &stubWriter{}

	conv := ioconvert.New(cfg, loader, w, ioconvert.OptProgress(nil))
	res, err := conv.Convert(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Nil(t, w.tbl, "nothing is written after a fatal load error")
}

func TestConvertWriteError(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptInputMaxGame(1)})
	writeErr := errors.New("disk full")
	w := &stubWriter{err: writeErr}

	conv := ioconvert.New(cfg, &stubLoader{failAt: -1}, w, ioconvert.OptProgress(nil))
	_, err := conv.Convert(context.Background())
	assert.ErrorIs(t, err, writeErr)
}
