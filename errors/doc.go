// Package errors provides structured error types for the grbtype module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// Kinds follow the GraphBLAS GrB_Info codes that apply to type descriptors.
// The Error type includes rich context: path, descriptor name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRegister, errors.KindInvalidValue).
//		TypeName("gauss").
//		Detail("size must be positive").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NullPointer(errors.PhaseCheck, "type")
//	err := errors.InvalidObject(errors.PhaseCheck, "gauss", magic)
//
// Releasing a handle never produces an error; these types are used by
// registration, validation and lookup.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
