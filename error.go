package cmdspec

import "fmt"

// newError creates a new error with the given error code and a formatted message.
func newError(code ErrorCode, format string, args ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// ErrorCode represents an error code for a specific error type. Codes can be used as targets for
// [errors.Is]:
//
//	if errors.Is(err, cmdspec.ErrUnknownCommand) { ... }
type ErrorCode int

const (
	// ErrInvalidSpec is a programming error in the command or argument specification.
	ErrInvalidSpec ErrorCode = iota + 1

	ErrUnknownArgument
	ErrMissingValue
	ErrInvalidBoolean
	ErrInvalidNumber
	ErrDisallowedValue
	ErrMissingRequired

	ErrMissingCommand
	ErrUnknownCommand
	ErrInvalidCommandPath
	ErrUnknownCommandPath
	ErrDuplicateHelp
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

// Error implements the error interface so a code can be passed to [errors.Is].
func (c ErrorCode) Error() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrInvalidSpec:
		return "invalid specification"
	case ErrUnknownArgument:
		return "unknown argument"
	case ErrMissingValue:
		return "missing value"
	case ErrInvalidBoolean:
		return "invalid boolean value"
	case ErrInvalidNumber:
		return "invalid number value"
	case ErrDisallowedValue:
		return "disallowed string value"
	case ErrMissingRequired:
		return "missing required argument"
	case ErrMissingCommand:
		return "missing command"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrInvalidCommandPath:
		return "invalid command path"
	case ErrUnknownCommandPath:
		return "unknown command path"
	case ErrDuplicateHelp:
		return "duplicate help command"
	default:
		return "unknown error"
	}
}

// Error is returned for every parsing, dispatch and specification failure. The message is meant
// to be shown to the user as is.
type Error struct {
	code ErrorCode
	msg  string
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	if e == nil {
		return 0
	}
	return e.code
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.msg == "" {
		return convertErrorCode(e.code)
	}
	return e.msg
}

// Is reports whether target is the same error code, or an *Error carrying the same code.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch t := target.(type) {
	case ErrorCode:
		return e.code == t
	case *Error:
		return t != nil && e.code == t.code
	}
	return false
}
