// Package errors provides structured error types for the virtual I/O layer.
//
// Errors are categorized by Phase (which operation failed) and Kind (error
// category). The Error type includes the file path involved and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRead, errors.KindInvalidHandle).
//		File("model.obj").
//		Detail("stream already closed").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NilBuffer(errors.PhaseWrite)
//	err := errors.OutOfBounds(errors.PhaseRead, 4096, 1024)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
