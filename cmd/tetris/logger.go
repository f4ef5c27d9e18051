package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger builds the run logger. Bubble Tea owns the terminal while a
// game runs, so logs go to path when set and are discarded otherwise.
// The returned close function releases the log file.
func newLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           lvl,
	})
	return logger.With("run", uuid.NewString()), closeFn, nil
}
