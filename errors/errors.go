package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which stream or resolver operation the error occurred in
type Phase string

const (
	PhaseResolve Phase = "resolve" // search-path lookup
	PhaseOpen    Phase = "open"    // stream construction
	PhaseRead    Phase = "read"    // stream read
	PhaseWrite   Phase = "write"   // stream write
	PhaseSeek    Phase = "seek"    // stream reposition
	PhaseFlush   Phase = "flush"   // buffered write sync
	PhaseClose   Phase = "close"   // stream release
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidHandle  Kind = "invalid_handle"
	KindNilBuffer      Kind = "nil_buffer"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindWrongDirection Kind = "wrong_direction"
	KindNotSeekable    Kind = "not_seekable"
	KindInvalidOrigin  Kind = "invalid_origin"
	KindShortTransfer  Kind = "short_transfer"
	KindIO             Kind = "io"
)

// Error is the structured error type used throughout the I/O layer
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	File   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.File != "" {
		b.WriteString(" on ")
		b.WriteString(e.File)
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// File sets the file path involved
func (b *Builder) File(path string) *Builder {
	b.err.File = path
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

// InvalidHandle creates an error for an operation on an invalid stream
func InvalidHandle(phase Phase, file string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidHandle,
		File:   file,
		Detail: "stream holds no open storage primitive",
	}
}

// NilBuffer creates an error for a nil caller buffer
func NilBuffer(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilBuffer,
		Detail: "nil buffer",
	}
}

// OutOfBounds creates an error for a count exceeding the buffer length
func OutOfBounds(phase Phase, count int64, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("count %d exceeds buffer length %d", count, length),
		Value:  count,
	}
}

// WrongDirection creates an error for a read on a write stream or vice versa
func WrongDirection(phase Phase, file, mode string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWrongDirection,
		File:   file,
		Detail: fmt.Sprintf("stream opened in %s mode", mode),
	}
}

// NotSeekable creates an error for a seek on a non-seekable stream
func NotSeekable(file string) *Error {
	return &Error{
		Phase:  PhaseSeek,
		Kind:   KindNotSeekable,
		File:   file,
		Detail: "underlying primitive does not support seeking",
	}
}

// InvalidOrigin creates an error for a seek origin outside the three
// defined values
func InvalidOrigin(origin any) *Error {
	return &Error{
		Phase:  PhaseSeek,
		Kind:   KindInvalidOrigin,
		Detail: fmt.Sprintf("unrecognized seek origin %v", origin),
		Value:  origin,
	}
}

// ShortTransfer creates an error for a transfer that moved fewer bytes
// than requested
func ShortTransfer(phase Phase, file string, got int, want int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindShortTransfer,
		File:   file,
		Detail: fmt.Sprintf("transferred %d of %d bytes", got, want),
		Value:  got,
	}
}

// IO wraps a storage-level failure
func IO(phase Phase, file string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		File:  file,
		Cause: cause,
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
