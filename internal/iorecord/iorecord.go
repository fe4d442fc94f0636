// Package iorecord implements the Loader interface for game records
// stored as one BoardGameGeek XML file per game ID.
// This is an impure I/O package that reads files from a local directory.
package iorecord

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	bggmech "github.com/gnames/bggmech/pkg"
	"github.com/gnames/bggmech/pkg/config"
	"github.com/gnames/bggmech/pkg/record"
)

type iorecord struct {
	dir      string
	template string
}

// New creates a Loader that reads records from cfg.Input.Dir, naming
// files with cfg.Input.FileTemplate.
func New(cfg *config.Config) bggmech.Loader {
	return &iorecord{
		dir:      cfg.Input.Dir,
		template: cfg.Input.FileTemplate,
	}
}

// Path returns the file path of a game record.
func (r *iorecord) Path(id int) string {
	return filepath.Join(r.dir, fmt.Sprintf(r.template, id))
}

// Load reads and classifies the record of the given game.
func (r *iorecord) Load(id int) (record.Outcome, error) {
	res := record.Outcome{ID: id}
	path := r.Path(id)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		res.Status = record.Absent
		return res, nil
	}
	if err != nil {
		return res, StatError(path, err)
	}
	if info.IsDir() {
		res.Status = record.Absent
		return res, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return res, ReadError(path, err)
	}
	defer f.Close()

	g, err := decodeGame(f)
	if err != nil {
		return res, MalformedError(id, path, err)
	}

	switch {
	case g.errored:
		slog.Debug("Game record has error element",
			"game_id", id, "message", g.errorMsg)
		res.Status = record.Errored
	case g.bayesRating == 0:
		res.Status = record.ZeroSignal
	default:
		res.Status = record.Valid
		res.Rating = g.rating
		res.BayesRating = g.bayesRating
		res.Tags = g.mechanics
	}
	return res, nil
}
