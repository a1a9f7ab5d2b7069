package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSetup    Phase = "setup"    // bridge and context construction
	PhaseResolve  Phase = "resolve"  // handle lookup
	PhaseMarshal  Phase = "marshal"  // guest memory access
	PhaseCompile  Phase = "compile"  // shader compilation
	PhaseLink     Phase = "link"     // program linking
	PhaseDispatch Phase = "dispatch" // host graphics call
	PhaseHost     Phase = "host"     // host module registration
	PhaseLoad     Phase = "load"     // guest loading
)

// Kind categorizes the error
type Kind string

const (
	KindContextUnavailable Kind = "context_unavailable"
	KindInvalidHandle      Kind = "invalid_handle"
	KindOutOfBounds        Kind = "out_of_bounds"
	KindOverflow           Kind = "overflow"
	KindCompileFailure     Kind = "compile_failure"
	KindLinkFailure        Kind = "link_failure"
	KindInvalidInput       Kind = "invalid_input"
	KindRegistration       Kind = "registration"
	KindInstantiation      Kind = "instantiation"
	KindClosed             Kind = "closed"
)

// NoHandle marks an Error that does not refer to a handle.
const NoHandle = ^uint64(0)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string
	Detail   string
	Log      string
	Handle   uint64
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Resource != "" {
		b.WriteByte(' ')
		b.WriteString(e.Resource)
		if e.Handle != NoHandle {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatUint(e.Handle, 10))
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Log != "" {
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(e.Log))
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

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Handle: NoHandle,
		},
	}
}

// Resource sets the resource kind name
func (b *Builder) Resource(name string) *Builder {
	b.err.Resource = name
	return b
}

// Handle sets the handle involved
func (b *Builder) Handle(h uint32) *Builder {
	b.err.Handle = uint64(h)
	return b
}

// Log sets the host diagnostic log
func (b *Builder) Log(log string) *Builder {
	b.err.Log = log
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

// ContextUnavailable creates an error for a missing graphics context
func ContextUnavailable(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseSetup,
		Kind:   KindContextUnavailable,
		Detail: detail,
		Cause:  cause,
		Handle: NoHandle,
	}
}

// InvalidHandle creates an error for an out-of-range or deleted handle
func InvalidHandle(resource string, handle uint32, reason string) *Error {
	return &Error{
		Phase:    PhaseResolve,
		Kind:     KindInvalidHandle,
		Resource: resource,
		Handle:   uint64(handle),
		Detail:   reason,
	}
}

// CompileFailure creates a shader compile failure carrying the info log
func CompileFailure(handle uint32, log string) *Error {
	return &Error{
		Phase:    PhaseCompile,
		Kind:     KindCompileFailure,
		Resource: "shader",
		Handle:   uint64(handle),
		Detail:   "error compiling shader",
		Log:      log,
	}
}

// LinkFailure creates a program link failure carrying the info log
func LinkFailure(handle uint32, log string) *Error {
	return &Error{
		Phase:    PhaseLink,
		Kind:     KindLinkFailure,
		Resource: "program",
		Handle:   uint64(handle),
		Detail:   "error linking program",
		Log:      log,
	}
}

// OutOfBounds creates an error for a guest memory range outside the memory
func OutOfBounds(phase Phase, ptr, length uint32, size uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("range [%d, %d) outside guest memory of %d bytes", ptr, uint64(ptr)+uint64(length), size),
		Handle: NoHandle,
	}
}

// NoMemory creates an error for a call that needs guest memory when none is available
func NoMemory(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: "no guest memory",
		Handle: NoHandle,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("value %v overflows %s", value, target),
		Handle: NoHandle,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
		Handle: NoHandle,
	}
}

// Registration creates a host function registration error
func Registration(module, name string, cause error) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("register %s.%s", module, name),
		Cause:  cause,
		Handle: NoHandle,
	}
}

// Load creates a guest loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInstantiation,
		Detail: detail,
		Cause:  cause,
		Handle: NoHandle,
	}
}

// Closed creates an error for use after teardown
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: what + " is closed",
		Handle: NoHandle,
	}
}

// Sentinel errors for errors.Is matching on Phase+Kind.
var (
	ErrContextUnavailable = &Error{Phase: PhaseSetup, Kind: KindContextUnavailable}
	ErrInvalidHandle      = &Error{Phase: PhaseResolve, Kind: KindInvalidHandle}
	ErrCompileFailure     = &Error{Phase: PhaseCompile, Kind: KindCompileFailure}
	ErrLinkFailure        = &Error{Phase: PhaseLink, Kind: KindLinkFailure}
)
