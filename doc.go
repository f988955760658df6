// Package cmdspec provides a small framework for building command-line applications from a
// declarative specification. A specification is a tree of named commands: groups that hold
// further commands, and callbacks that declare typed arguments and an execution function.
//
// Arguments are always given as flag/value pairs, for example "--name Ada" or "-v yes". Each
// argument has a kind (boolean, number or string), may be required, may carry a default and, for
// strings, may be restricted to a set of allowed values. A "help" command describing the whole
// tree is added automatically unless the application defines its own.
//
//	app := &cmdspec.App{
//	    Description: "greet people",
//	    Commands: cmdspec.Commands{
//	        "greet": &cmdspec.Callback{
//	            Description: "Say hello.",
//	            Arguments: cmdspec.ArgumentSpec{
//	                {Name: "name", Long: "--name", Required: true, Value: cmdspec.String{}},
//	            },
//	            Exec: func(ctx context.Context, s *cmdspec.State) error {
//	                fmt.Fprintf(s.Stdout, "Hello, %s\n", cmdspec.Get[string](s.Args, "name"))
//	                return nil
//	            },
//	        },
//	    },
//	}
//	_ = cmdspec.Run(context.Background(), app, os.Args[1:], nil)
package cmdspec
