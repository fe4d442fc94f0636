// Package ioconvert implements the Converter interface. It walks game IDs
// once, folds valid records into the one-hot accumulator, and writes the
// finalized table.
package ioconvert

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	bggmech "github.com/gnames/bggmech/pkg"
	"github.com/gnames/bggmech/pkg/config"
	"github.com/gnames/bggmech/pkg/record"
	"github.com/gnames/bggmech/pkg/table"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
)

type converter struct {
	cfg      *config.Config
	loader   bggmech.Loader
	writer   bggmech.Writer
	progress io.Writer
}

// Option modifies a converter.
type Option func(*converter)

// OptProgress sets where the progress bar is drawn. Nil disables it.
func OptProgress(w io.Writer) Option {
	return func(c *converter) {
		c.progress = w
	}
}

// New creates a Converter from a record loader and a table writer.
func New(
	cfg *config.Config,
	loader bggmech.Loader,
	writer bggmech.Writer,
	opts ...Option,
) bggmech.Converter {
	res := &converter{
		cfg:      cfg,
		loader:   loader,
		writer:   writer,
		progress: defaultProgressWriter,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Convert runs the whole pipeline: load every game ID in [0, MaxGame),
// accumulate rows, finalize the table and write it.
func (c *converter) Convert(ctx context.Context) (*bggmech.Summary, error) {
	startTime := time.Now()
	log := slog.With("run_id", uuid.NewString())
	maxGame := c.cfg.Input.MaxGame

	log.Info("Starting conversion",
		"input_dir", c.cfg.Input.Dir,
		"max_game", maxGame,
		"output", c.cfg.Output.Path,
		"format", c.cfg.Output.Format,
	)
	gn.Info("Scanning <em>%s</em> game records in <em>%s</em>",
		humanize.Comma(int64(maxGame)), c.cfg.Input.Dir)

	acc := table.NewAccumulator()
	res := &bggmech.Summary{Counts: make(map[record.Status]int)}

	bar := newProgressBar(maxGame, "Games ", c.progress)
	for id := range maxGame {
		o, err := c.loader.Load(id)
		if err != nil {
			bar.Finish()
			log.Error("Cannot load game", "game_id", id, "error", err)
			return nil, err
		}
		res.Scanned++
		res.Counts[o.Status]++
		bar.Increment()

		if o.Skip() {
			log.Debug("Skipping game", "game_id", id, "status", o.Status)
			continue
		}
		if err = acc.Accept(o); err != nil {
			bar.Finish()
			return nil, err
		}
	}
	bar.Finish()

	tbl := acc.Finalize()
	res.Rows = len(tbl.Rows)
	res.Columns = len(tbl.Tags())

	gn.Info("Writing <em>%s</em> rows with <em>%d</em> mechanics to <em>%s</em>",
		humanize.Comma(int64(res.Rows)), res.Columns, c.cfg.Output.Path)
	if err := c.writer.Write(ctx, tbl); err != nil {
		log.Error("Cannot write table", "path", c.cfg.Output.Path, "error", err)
		return nil, err
	}

	res.Duration = time.Since(startTime)
	c.report(log, res)
	return res, nil
}

func (c *converter) report(log *slog.Logger, s *bggmech.Summary) {
	elapsed := gnfmt.TimeString(s.Duration.Seconds())
	log.Info("Conversion complete",
		"scanned", s.Scanned,
		"absent", s.Counts[record.Absent],
		"errored", s.Counts[record.Errored],
		"zero_signal", s.Counts[record.ZeroSignal],
		"rows", s.Rows,
		"mechanics", s.Columns,
		"duration", elapsed,
	)
	gn.Info(`Conversion complete
Games scanned: %s, absent: %s, errored: %s, no Bayes rating: %s.
Rows written: <em>%s</em>, mechanics: <em>%d</em>.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(s.Scanned)),
		humanize.Comma(int64(s.Counts[record.Absent])),
		humanize.Comma(int64(s.Counts[record.Errored])),
		humanize.Comma(int64(s.Counts[record.ZeroSignal])),
		humanize.Comma(int64(s.Rows)),
		s.Columns,
		elapsed,
	)
}
