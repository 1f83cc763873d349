package sink

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tinyrange/freqs/pkg/render"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Open returns the write target for a rendered table. An empty path selects
// standard output. Anything else is opened for appending and created when
// absent, so repeated runs accumulate tables in one file.
func Open(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.FileMode(0644))
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	return f, nil
}

// WriteTable writes a rendered table to w: a blank separator line followed
// by one line per entry. A failed write is logged and the remaining lines
// are still attempted. It returns the number of lines that failed.
func WriteTable(w io.Writer, lines []render.Line) int {
	failed := 0

	if _, err := fmt.Fprintln(w); err != nil {
		slog.Error("failed to write table line", "err", err)
		failed++
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			slog.Error("failed to write table line", "err", err, "value", line.Hex())
			failed++
		}
	}

	return failed
}
