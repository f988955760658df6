package cmdspec

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/mfridman/cmdspec/pkg/suggest"
)

var (
	trueValues  = []string{"yes", "true", "on", "1"}
	falseValues = []string{"no", "false", "off", "0"}
)

// ParseArguments converts a flat list of flag/value tokens into typed [Values] according to spec.
// It returns an error if the spec is invalid or if any token cannot be matched, converted or
// validated.
//
// Tokens are consumed in pairs: a flag (matched exactly against each argument's Short and Long
// strings, in declaration order) followed by its value. After all tokens are consumed, missing
// required arguments are reported and declared defaults are applied to the remaining ones. An
// argument with neither a value nor a default is absent from the result.
func ParseArguments(tokens []string, spec ArgumentSpec) (Values, error) {
	if err := validateArguments(spec); err != nil {
		return nil, err
	}
	result := make(Values)

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		idx := slices.IndexFunc(spec, func(a Argument) bool { return a.matches(token) })
		if idx < 0 {
			return nil, unknownArgumentError(token, spec)
		}
		arg := spec[idx]

		i++
		if i >= len(tokens) {
			return nil, newError(ErrMissingValue, "The %s argument requires a value.", token)
		}
		value, err := convertValue(token, tokens[i], kindOf(arg.Value))
		if err != nil {
			return nil, err
		}
		result[arg.Name] = value
	}

	for _, arg := range spec {
		if _, ok := result[arg.Name]; ok {
			continue
		}
		if arg.Required {
			return nil, newError(ErrMissingRequired, "The %s argument is required.", arg.flag())
		}
		if v, ok := kindOf(arg.Value).defaultValue(); ok {
			result[arg.Name] = v
		}
	}
	return result, nil
}

func convertValue(flag, raw string, kind Kind) (any, error) {
	switch k := kind.(type) {
	case Boolean:
		lower := strings.ToLower(raw)
		if slices.Contains(trueValues, lower) {
			return true, nil
		}
		if slices.Contains(falseValues, lower) {
			return false, nil
		}
		return nil, newError(ErrInvalidBoolean, "The %s argument must be 'yes', 'true', 'on', '1' or 'no', 'false', 'off', '0'.", flag)
	case Number:
		// Underscores are Go literal syntax, not part of a number.
		if strings.Contains(raw, "_") {
			return nil, newError(ErrInvalidNumber, "The %s argument must be a number.", flag)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if errors.Is(err, strconv.ErrRange) {
			// Out of range values saturate to ±Inf or 0.
			err = nil
		}
		if err != nil || math.IsNaN(f) {
			return nil, newError(ErrInvalidNumber, "The %s argument must be a number.", flag)
		}
		return f, nil
	case String:
		if len(k.Allowed) > 0 && !slices.Contains(k.Allowed, raw) {
			return nil, newError(ErrDisallowedValue, "The value supplied to the %s argument is not recognised.", flag)
		}
		return raw, nil
	default:
		return nil, newError(ErrInvalidSpec, "The %s argument had an unknown type. This is a programming error.", flag)
	}
}

func unknownArgumentError(token string, spec ArgumentSpec) error {
	var known []string
	for _, arg := range spec {
		if arg.Short != "" {
			known = append(known, arg.Short)
		}
		if arg.Long != "" {
			known = append(known, arg.Long)
		}
	}
	if suggestions := suggest.FindSimilar(token, known, 1); len(suggestions) > 0 {
		return newError(ErrUnknownArgument, "Unknown argument '%s'. Did you mean '%s'?", token, suggestions[0])
	}
	return newError(ErrUnknownArgument, "Unknown argument '%s'.", token)
}

// Values holds parsed arguments keyed by argument name. Boolean arguments are stored as bool,
// number arguments as float64 and string arguments as string.
type Values map[string]any

// Get retrieves an argument value by name, with type inference. Example usage:
//
//	verbose := cmdspec.Get[bool](s.Args, "verbose")
//	count := cmdspec.Get[float64](s.Args, "count")
//	name := cmdspec.Get[string](s.Args, "name")
//
// If the value is absent or has a different type, Get panics. Reading an optional argument that
// has no default should use [Lookup] instead.
func Get[T bool | float64 | string](v Values, name string) T {
	value, ok := v[name]
	if !ok {
		panic(fmt.Sprintf("internal error: argument %q not set", name))
	}
	t, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for argument %q: parsed %T, requested %T", name, value, *new(T)))
	}
	return t
}

// Lookup retrieves an argument value by name. The boolean is false if the argument is absent or
// holds a value of a different type.
func Lookup[T bool | float64 | string](v Values, name string) (T, bool) {
	t, ok := v[name].(T)
	return t, ok
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
