// Package errors provides structured error types for the bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the resource kind and handle involved, the host's
// diagnostic log for compile and link failures, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindInvalidHandle).
//		Resource("buffer").
//		Handle(3).
//		Detail("handle was deleted").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.CompileFailure(handle, infoLog)
//	err := errors.OutOfBounds(errors.PhaseMarshal, ptr, length, size)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
