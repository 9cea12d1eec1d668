package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/term"
)

const logFilePerm = 0o600

// Options configures Setup.
type Options struct {
	Level slog.Level

	// LogDir, when non-empty, receives one JSON log file per run, named by
	// RunID.
	LogDir string
	RunID  string

	// ConsoleWriter receives human-oriented output. Defaults to os.Stderr.
	ConsoleWriter io.Writer

	// ForceInteractive and ForceQuiet override terminal detection.
	ForceInteractive bool
	ForceQuiet       bool
}

// Setup builds the process logger. It returns the logger and a cleanup
// function that flushes and closes the run log file. Setup is meant to be
// called exactly once during single-threaded bootstrap.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	var handlers []slog.Handler
	cleanup := func() error { return nil }

	console := opts.ConsoleWriter
	if console == nil {
		console = os.Stderr
	}
	if !opts.ForceQuiet {
		consoleOpts := &slog.HandlerOptions{Level: opts.Level}
		if opts.ForceInteractive || isTerminal(console) {
			handlers = append(handlers, slog.NewTextHandler(console, consoleOpts))
		} else {
			handlers = append(handlers, slog.NewJSONHandler(console, consoleOpts))
		}
	}

	if opts.LogDir != "" {
		runID := opts.RunID
		if runID == "" {
			runID = GenerateRunID()
		}
		if err := os.MkdirAll(opts.LogDir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		path := filepath.Join(opts.LogDir, fmt.Sprintf("privgate-%s.log", runID))
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, logFilePerm) // #nosec G304 -- path is built from operator input and a fresh run ID
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open run log: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: opts.Level}))
		cleanup = file.Close
	}

	if len(handlers) == 0 {
		// Quiet mode without a log dir still needs a valid logger.
		handlers = append(handlers, slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(NewMultiHandler(handlers...)), cleanup, nil
}

// ParseLevel maps a command-line level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
