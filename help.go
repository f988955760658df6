package cmdspec

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/mfridman/cmdspec/pkg/style"
	"github.com/mfridman/cmdspec/pkg/textutil"
)

const (
	helpCommandName = "help"
	helpArgument    = "command"

	lineWidth = 80
)

// AddHelp returns a copy of cmds with a "help" command added. The help command describes the
// whole command tree, or a single command selected with --command (or -c) using a dot-separated
// path such as "db.migrate". The description is shown at the top of the full tree description.
//
// AddHelp returns an error if cmds already contains a "help" command. cmds itself is never
// modified.
func AddHelp(cmds Commands, description string) (Commands, error) {
	if _, ok := cmds[helpCommandName]; ok {
		return nil, newError(ErrDuplicateHelp, "A '%s' command is already defined.", helpCommandName)
	}
	owned := maps.Clone(cmds)
	if owned == nil {
		owned = make(Commands)
	}
	owned[helpCommandName] = newHelpCommand(owned, description)
	return owned, nil
}

func newHelpCommand(cmds Commands, description string) *Callback {
	program := &Group{
		Description: strings.TrimSpace(description) + "\n\n" +
			"These are the top-level commands available. " +
			"Use '--command <COMMAND>' to get further help on a particular command. " +
			"Subcommands work the same way, e.g., '--command <COMMAND>.<SUBCOMMAND>'.",
		SubCommands: cmds,
	}
	return &Callback{
		Description: "Display help information.",
		Arguments: ArgumentSpec{
			{
				Name:  helpArgument,
				Short: "-c",
				Long:  "--command",
				Description: "The command for which help information should be displayed. " +
					"You can specify nested commands with dot-separators. " +
					"For example, '<COMMAND>.<SUBCOMMAND>'.",
				Value: String{},
			},
		},
		Exec: func(ctx context.Context, s *State) error {
			target := Command(program)
			if path, _ := Lookup[string](s.Args, helpArgument); path != "" {
				var err error
				if target, err = resolveCommandPath(program, path); err != nil {
					return err
				}
			}
			return DescribeCommand(s.Stdout, target)
		},
	}
}

// resolveCommandPath walks a dot-separated path from root. Every segment but the last must name a
// [Group].
func resolveCommandPath(root *Group, path string) (Command, error) {
	parts := strings.Split(path, ".")
	var current Command = root
	for i, part := range parts {
		group, ok := current.(*Group)
		if !ok || group == nil {
			return nil, newError(ErrInvalidCommandPath, "Invalid command/subcommand '%s': '%s' has no subcommands.",
				path, strings.Join(parts[:i], "."))
		}
		next, ok := group.SubCommands[part]
		if !ok || next == nil {
			return nil, newError(ErrUnknownCommandPath, "Unknown command/subcommand '%s'.", path)
		}
		current = next
	}
	return current, nil
}

// DescribeCommand writes a human-readable description of cmd to w. Callbacks are described with
// their arguments, groups with the sorted names of their immediate subcommands.
func DescribeCommand(w io.Writer, cmd Command) error {
	switch c := cmd.(type) {
	case *Callback:
		if c != nil {
			break
		}
		return newError(ErrInvalidSpec, "Command is nil. This is a programming error.")
	case *Group:
		if c != nil {
			break
		}
		return newError(ErrInvalidSpec, "Command is nil. This is a programming error.")
	default:
		return newError(ErrInvalidSpec, "Unknown command type. This is a programming error.")
	}
	st := style.New(w)
	var b strings.Builder

	b.WriteString(st.Header("DESCRIPTION") + "\n\n")
	if text := textutil.Paragraphs(cmd.Summary(), lineWidth, 0); text != "" {
		b.WriteString(text + "\n\n")
	}

	switch c := cmd.(type) {
	case *Callback:
		if len(c.Arguments) > 0 && !c.RawArgs {
			b.WriteString(st.Header("ARGUMENTS") + "\n\n")
			writeArguments(&b, st, c.Arguments)
		}
	case *Group:
		b.WriteString(st.Header("COMMANDS") + "\n\n")
		writeCommands(&b, st, c.SubCommands)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// DescribeArguments writes a human-readable description of every argument in spec to w, in
// declaration order.
func DescribeArguments(w io.Writer, spec ArgumentSpec) error {
	if err := validateArguments(spec); err != nil {
		return err
	}
	var b strings.Builder
	writeArguments(&b, style.New(w), spec)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeArguments(b *strings.Builder, st *style.Styler, spec ArgumentSpec) {
	for _, arg := range spec {
		kind := kindOf(arg.Value)
		if kind == nil {
			continue
		}
		requirement := "optional"
		if arg.Required {
			requirement = "required"
		}
		fmt.Fprintf(b, "  %s %s\n", st.Info(flagNames(arg)),
			st.Muted(fmt.Sprintf("(%s, %s, %s)", kind.Kind(), requirement, formatDefault(kind))))

		if text := textutil.Paragraphs(arg.Description, lineWidth, 6); text != "" {
			b.WriteString(text + "\n")
		}
		if s, ok := kind.(String); ok && len(s.Allowed) > 0 {
			b.WriteString(textutil.Paragraphs("Allowed values: "+strings.Join(s.Allowed, ", "), lineWidth, 6) + "\n")
		}
		b.WriteString("\n")
	}
}

func writeCommands(b *strings.Builder, st *style.Styler, cmds Commands) {
	names := slices.Sorted(maps.Keys(cmds))
	if len(names) == 0 {
		return
	}
	maxLen := len(slices.MaxFunc(names, func(a, b string) int { return cmp.Compare(len(a), len(b)) }))
	nameWidth := maxLen + 4
	indentPadding := strings.Repeat(" ", nameWidth+2)

	for _, name := range names {
		var summary string
		if cmd := cmds[name]; cmd != nil {
			summary = cmd.Summary()
		}
		lines := textutil.Wrap(summary, lineWidth-nameWidth-2)
		if len(lines) == 0 {
			fmt.Fprintf(b, "  %s\n", st.Info(name))
			continue
		}
		padding := strings.Repeat(" ", maxLen-len(name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", st.Info(name), padding, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	}
	b.WriteString("\n")
}
