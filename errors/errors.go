package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // user-defined type registration
	PhaseCheck    Phase = "check"    // descriptor validation
	PhaseLookup   Phase = "lookup"   // name/code lookup
	PhaseConvert  Phase = "convert"  // WIT/core type mapping
)

// Kind categorizes the error
type Kind string

const (
	KindNullPointer   Kind = "null_pointer"
	KindInvalidValue  Kind = "invalid_value"
	KindInvalidObject Kind = "invalid_object"
	KindUninitialized Kind = "uninitialized_object"
	KindOutOfMemory   Kind = "out_of_memory"
	KindNotFound      Kind = "not_found"
	KindClosed        Kind = "closed"
	KindUnsupported   Kind = "unsupported"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.TypeName != "" {
		b.WriteString(": type ")
		b.WriteString(e.TypeName)
	}

	if e.Detail != "" {
		if e.TypeName != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// TypeName sets the descriptor name
func (b *Builder) TypeName(name string) *Builder {
	b.err.TypeName = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NullPointer creates a nil descriptor error
func NullPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNullPointer,
		Detail: what + " is nil",
	}
}

// InvalidValue creates an invalid argument error
func InvalidValue(phase Phase, typeName, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidValue,
		TypeName: typeName,
		Detail:   detail,
	}
}

// InvalidObject creates an error for a descriptor whose storage was released
// or never finished initialization
func InvalidObject(phase Phase, typeName string, magic uint64) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidObject,
		TypeName: typeName,
		Detail:   fmt.Sprintf("descriptor magic %#x is not live", magic),
		Value:    magic,
	}
}

// Uninitialized creates an error for a descriptor carrying an unknown magic
func Uninitialized(phase Phase, magic uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUninitialized,
		Detail: fmt.Sprintf("unrecognized descriptor magic %#x", magic),
		Value:  magic,
	}
}

// NotFound creates a missing type error
func NotFound(phase Phase, typeName string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindNotFound,
		TypeName: typeName,
		Detail:   "no such type",
	}
}

// Closed creates an error for operations on a closed store
func Closed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: "type store closed",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
