package cmdspec

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/xflag"
)

// FlagsFunc is a helper function that creates a new [flag.FlagSet] and applies the given function
// to it. Intended for use with [FlagSetExec]. Example usage:
//
//	fset := cmdspec.FlagsFunc(func(f *flag.FlagSet) {
//	    f.Bool("verbose", false, "enable verbose output")
//	    f.Int("count", 1, "number of items")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

// FlagSetExec returns an [ExecFunc] for a [Callback] with RawArgs set. It parses [State.Tokens]
// with fset before calling fn. Flags may appear anywhere among the tokens; the remaining
// positional arguments are available from fset.Args().
//
// If the tokens request help (-h or -help), the flag defaults are printed to Stdout and fn is not
// called.
func FlagSetExec(fset *flag.FlagSet, fn func(ctx context.Context, s *State, fset *flag.FlagSet) error) ExecFunc {
	return func(ctx context.Context, s *State) error {
		fset.SetOutput(io.Discard)
		if err := xflag.ParseToEnd(fset, s.Tokens); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				fset.SetOutput(s.Stdout)
				fset.PrintDefaults()
				return nil
			}
			return fmt.Errorf("command %q: %w", strings.Join(s.Path, " "), err)
		}
		return fn(ctx, s, fset)
	}
}

// Using returns an [ExecFunc] that acquires a resource with open, passes it to fn and closes it on
// every exit path. An error from Close is joined with the error returned by fn.
//
//	Exec: cmdspec.Using(openDB, func(ctx context.Context, s *cmdspec.State, db *sql.DB) error {
//	    ...
//	}),
func Using[R io.Closer](
	open func(ctx context.Context) (R, error),
	fn func(ctx context.Context, s *State, r R) error,
) ExecFunc {
	return func(ctx context.Context, s *State) (retErr error) {
		r, err := open(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := r.Close(); err != nil {
				retErr = errors.Join(retErr, err)
			}
		}()
		return fn(ctx, s, r)
	}
}
