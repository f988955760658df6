package cmdspec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// App is the top-level description of a command-line application.
type App struct {
	// Description is shown at the top of the synthesized help output.
	Description string

	// Commands is the top-level command specification. It is not modified by [Run].
	Commands Commands
}

// ErrorAction selects what [Run] does when parsing, dispatch or execution fails.
type ErrorAction int

const (
	// ActionExit prints the error message to Stderr and exits the process with status 1. This is
	// the default.
	ActionExit ErrorAction = iota
	// ActionLog prints the error message and its code to Stderr, logs it, and returns nil.
	ActionLog
	// ActionReturn returns the error to the caller of [Run].
	ActionReturn
)

func (a ErrorAction) String() string {
	switch a {
	case ActionExit:
		return "exit"
	case ActionLog:
		return "log"
	case ActionReturn:
		return "return"
	default:
		return "unknown"
	}
}

// RunOptions specifies options for running an application.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger receives debug records about command resolution and, with [ActionLog], the failure
	// itself. If nil, log records are discarded.
	Logger *slog.Logger

	// OnError is the failure policy for the whole run. See [ErrorAction].
	OnError ErrorAction
}

// osExit is replaced in tests.
var osExit = os.Exit

// Run executes the command named by args, typically os.Args[1:]. A "help" command is added to a
// copy of the application's commands unless one is already defined.
//
// Any error is handled according to options.OnError, which defaults to printing the error
// message and exiting with status 1. The options parameter may be nil, in which case default
// values are used. See [RunOptions] for more details.
func Run(ctx context.Context, app *App, args []string, options *RunOptions) error {
	options = checkAndSetRunOptions(options)
	logger := options.Logger.With(slog.String("run_id", uuid.NewString()))

	err := run(ctx, app, args, options, logger)
	if err == nil {
		return nil
	}
	switch options.OnError {
	case ActionLog:
		logger.ErrorContext(ctx, "command failed", slog.Any("error", err))
		var e *Error
		if errors.As(err, &e) {
			fmt.Fprintf(options.Stderr, "%s (%s)\n", e.Error(), e.Code())
		} else {
			fmt.Fprintln(options.Stderr, err.Error())
		}
		return nil
	case ActionReturn:
		return err
	default:
		fmt.Fprintln(options.Stderr, err.Error())
		osExit(1)
		return err
	}
}

func run(ctx context.Context, app *App, args []string, options *RunOptions, logger *slog.Logger) error {
	if app == nil {
		return newError(ErrInvalidSpec, "Application is nil. This is a programming error.")
	}
	cmds := app.Commands
	if _, ok := cmds[helpCommandName]; !ok {
		var err error
		if cmds, err = AddHelp(cmds, app.Description); err != nil {
			return err
		}
	}
	s := newState(options)
	s.Logger = logger
	return dispatch(ctx, args, cmds, s, 0)
}

func updateState(s *State, opt *RunOptions) {
	if s.Stdin == nil {
		s.Stdin = opt.Stdin
	}
	if s.Stdout == nil {
		s.Stdout = opt.Stdout
	}
	if s.Stderr == nil {
		s.Stderr = opt.Stderr
	}
	if s.Logger == nil {
		s.Logger = opt.Logger
	}
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	} else {
		copied := *opt
		opt = &copied
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Logger == nil {
		opt.Logger = discardLogger()
	}
	return opt
}
