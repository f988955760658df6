package cmdspec

import (
	"io"
	"log/slog"
)

// State represents the state of a single command execution. It is created by [Run] (or
// [Dispatch]) and handed to the selected command's [ExecFunc].
type State struct {
	// Args contains the parsed arguments. Use [Get] or [Lookup] to read values. It is nil for
	// commands that set RawArgs.
	Args Values

	// Tokens contains the tokens that followed the command name, before any parsing.
	Tokens []string

	// Path is the resolved command path, for example ["db", "migrate"].
	Path []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger is the structured logger for the current run. It is never nil.
	Logger *slog.Logger
}

func newState(opt *RunOptions) *State {
	return &State{
		Stdin:  opt.Stdin,
		Stdout: opt.Stdout,
		Stderr: opt.Stderr,
		Logger: opt.Logger,
	}
}

// child returns a copy of s for a deeper level of the command tree.
func (s *State) child(path, tokens []string) *State {
	logger := s.Logger
	if logger == nil {
		logger = discardLogger()
	}
	return &State{
		Tokens: tokens,
		Path:   path,
		Stdin:  s.Stdin,
		Stdout: s.Stdout,
		Stderr: s.Stderr,
		Logger: logger,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
