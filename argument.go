package cmdspec

import (
	"fmt"
	"strings"
)

// Argument describes a single flag/value argument accepted by a [Callback].
type Argument struct {
	// Name is the key under which the parsed value is stored in [Values]. It must be unique within
	// an [ArgumentSpec].
	Name string

	// Short and Long are the flag strings that identify the argument on the command line, for
	// example "-n" and "--name". At least one of them must be set. The strings are matched
	// exactly, so they should include their leading dashes.
	Short string
	Long  string

	// Description is a human-readable explanation of the argument, shown by help.
	Description string

	// Required indicates the argument must be supplied. Defaults are never applied to required
	// arguments.
	Required bool

	// Value holds the argument kind and its kind-specific options. Must be one of [Boolean],
	// [Number] or [String].
	Value Kind
}

// flag returns the preferred flag string for messages: the short flag if set, else the long one.
func (a Argument) flag() string {
	if a.Short != "" {
		return a.Short
	}
	return a.Long
}

func (a Argument) matches(token string) bool {
	return (a.Short != "" && token == a.Short) || (a.Long != "" && token == a.Long)
}

// ArgumentSpec is the ordered list of arguments accepted by a command. Order matters: when two
// arguments share a flag string, the first one declared wins.
type ArgumentSpec []Argument

// ArgumentKind is the discriminant of a [Kind].
type ArgumentKind int

const (
	KindBoolean ArgumentKind = iota + 1
	KindNumber
	KindString
)

func (k ArgumentKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Kind is the closed set of argument kinds: [Boolean], [Number] and [String].
type Kind interface {
	Kind() ArgumentKind
	// defaultValue returns the declared default, if any.
	defaultValue() (any, bool)
}

// Boolean is an argument accepting yes/true/on/1 or no/false/off/0, case-insensitively.
type Boolean struct {
	Default *bool
}

func (Boolean) Kind() ArgumentKind { return KindBoolean }

func (b Boolean) defaultValue() (any, bool) {
	if b.Default == nil {
		return nil, false
	}
	return *b.Default, true
}

// Number is an argument accepting any floating point number.
type Number struct {
	Default *float64
}

func (Number) Kind() ArgumentKind { return KindNumber }

func (n Number) defaultValue() (any, bool) {
	if n.Default == nil {
		return nil, false
	}
	return *n.Default, true
}

// String is an argument accepting any string, or only the values listed in Allowed when it is
// non-empty.
type String struct {
	Default *string
	Allowed []string
}

func (String) Kind() ArgumentKind { return KindString }

func (s String) defaultValue() (any, bool) {
	if s.Default == nil {
		return nil, false
	}
	return *s.Default, true
}

// Default returns a pointer to v, for use as the Default of an argument kind:
//
//	cmdspec.Number{Default: cmdspec.Default(10.0)}
func Default[T bool | float64 | string](v T) *T {
	return &v
}

func validateArguments(spec ArgumentSpec) error {
	seen := make(map[string]bool, len(spec))
	for i, arg := range spec {
		if arg.Short == "" && arg.Long == "" {
			return newError(ErrInvalidSpec, "Argument %q needs a short or long flag. This is a programming error.", arg.Name)
		}
		if arg.Name == "" {
			return newError(ErrInvalidSpec, "Argument %d (%s) has no name. This is a programming error.", i, arg.flag())
		}
		if seen[arg.Name] {
			return newError(ErrInvalidSpec, "Argument %q is declared more than once. This is a programming error.", arg.Name)
		}
		seen[arg.Name] = true
		switch kindOf(arg.Value).(type) {
		case Boolean, Number, String:
		default:
			return newError(ErrInvalidSpec, "The %s argument has an unknown type. This is a programming error.", arg.flag())
		}
	}
	return nil
}

// kindOf unwraps pointer kinds so callers can switch on the value types only. A nil pointer
// yields nil.
func kindOf(k Kind) Kind {
	switch v := k.(type) {
	case *Boolean:
		if v == nil {
			return nil
		}
		return *v
	case *Number:
		if v == nil {
			return nil
		}
		return *v
	case *String:
		if v == nil {
			return nil
		}
		return *v
	}
	return k
}

// flagNames joins the flag aliases of an argument for display, e.g. "-n, --name".
func flagNames(a Argument) string {
	var names []string
	if a.Short != "" {
		names = append(names, a.Short)
	}
	if a.Long != "" {
		names = append(names, a.Long)
	}
	return strings.Join(names, ", ")
}

func formatDefault(k Kind) string {
	v, ok := k.defaultValue()
	if !ok {
		return "no default"
	}
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("default %q", v)
	case float64:
		return "default " + formatNumber(v)
	default:
		return fmt.Sprintf("default %v", v)
	}
}
