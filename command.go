package cmdspec

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/mfridman/cmdspec/pkg/suggest"
)

// Commands maps command names to command nodes. It is the specification of one level of the
// command tree.
type Commands map[string]Command

// CommandKind is the discriminant of a [Command].
type CommandKind int

const (
	KindCallback CommandKind = iota + 1
	KindGroup
)

// Command is a node in the command tree: either a [*Callback], which can be executed, or a
// [*Group], which holds further commands.
type Command interface {
	Kind() CommandKind
	// Summary returns the command's description.
	Summary() string

	sealed()
}

// ExecFunc is the execution function of a [Callback]. It receives the current application
// [State] and returns an error if execution fails.
type ExecFunc func(ctx context.Context, s *State) error

// Callback is a command that can be executed.
type Callback struct {
	// Description is shown by help.
	Description string

	// Arguments declares the flag/value arguments accepted by the command. The parsed values are
	// available in [State.Args]. A nil spec accepts no arguments.
	Arguments ArgumentSpec

	// RawArgs skips argument parsing entirely. The tokens following the command name are passed to
	// Exec unchanged in [State.Tokens], and Arguments is ignored.
	RawArgs bool

	// Exec defines the command's execution logic.
	Exec ExecFunc
}

func (*Callback) Kind() CommandKind { return KindCallback }
func (c *Callback) Summary() string {
	if c == nil {
		return ""
	}
	return c.Description
}
func (*Callback) sealed() {}

// Group is a command that holds subcommands. It cannot be executed on its own.
type Group struct {
	Description string
	SubCommands Commands
}

func (*Group) Kind() CommandKind { return KindGroup }
func (g *Group) Summary() string {
	if g == nil {
		return ""
	}
	return g.Description
}
func (*Group) sealed() {}

// Dispatch resolves the command named by the leading tokens and executes it. The first token
// selects a command from cmds; if it is a [Group], the next token selects a subcommand, and so on
// until a [Callback] is reached. The remaining tokens are parsed against the callback's
// arguments and the callback is executed with the result.
//
// The state s supplies the I/O streams and logger and is not modified; the executed command
// receives a new state with Args, Tokens and Path filled in. Nil streams default to [os.Stdin],
// [os.Stdout] and [os.Stderr], and a nil logger discards records.
func Dispatch(ctx context.Context, tokens []string, cmds Commands, s *State) error {
	var copied State
	if s != nil {
		copied = *s
	}
	s = &copied
	updateState(s, checkAndSetRunOptions(nil))
	return dispatch(ctx, tokens, cmds, s, 0)
}

func dispatch(ctx context.Context, tokens []string, cmds Commands, s *State, depth int) error {
	if len(tokens) == 0 {
		what := "command"
		if depth > 0 {
			what = "subcommand"
		}
		return newError(ErrMissingCommand, "Missing %s. Use 'help'.", what)
	}
	name, rest := tokens[0], tokens[1:]
	cmd, ok := cmds[name]
	if !ok {
		return unknownCommandError(name, cmds)
	}
	path := append(slices.Clip(s.Path), name)

	switch c := cmd.(type) {
	case *Callback:
		if c == nil || c.Exec == nil {
			return newError(ErrInvalidSpec, "Command '%s' has no execution function. This is a programming error.", strings.Join(path, " "))
		}
		state := s.child(path, rest)
		if !c.RawArgs {
			args, err := ParseArguments(rest, c.Arguments)
			if err != nil {
				return err
			}
			state.Args = args
		}
		state.Logger.DebugContext(ctx, "dispatching command",
			slog.String("command", strings.Join(path, " ")),
			slog.Int("depth", depth),
			slog.Int("tokens", len(rest)),
		)
		return c.Exec(ctx, state)
	case *Group:
		if c == nil {
			break
		}
		return dispatch(ctx, rest, c.SubCommands, s.child(path, nil), depth+1)
	}
	return newError(ErrInvalidSpec, "Unknown command type for '%s'. This is a programming error.", strings.Join(path, " "))
}

func unknownCommandError(name string, cmds Commands) error {
	known := slices.Sorted(maps.Keys(cmds))
	if suggestions := suggest.FindSimilar(name, known, 1); len(suggestions) > 0 {
		return newError(ErrUnknownCommand, "Unknown command '%s'. Did you mean '%s'? Use 'help'.", name, suggestions[0])
	}
	return newError(ErrUnknownCommand, "Unknown command '%s'. Use 'help'.", name)
}
