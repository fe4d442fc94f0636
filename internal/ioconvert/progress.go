package ioconvert

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

// newProgressBar creates a progress bar with percent done and estimated
// time left. A nil writer disables output.
func newProgressBar(total int, prefix string, w io.Writer) *pb.ProgressBar {
	bar := pb.Full.New(total)
	bar.Set("prefix", prefix)
	if w == nil {
		w = io.Discard
	}
	bar.SetWriter(w)
	return bar.Start()
}

// defaultProgressWriter is where the progress bar goes during real runs.
var defaultProgressWriter io.Writer = os.Stdout
