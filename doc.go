// Package grbtype provides GraphBLAS-style type descriptors with a safe,
// idempotent release operation.
//
// A type descriptor is either a built-in singleton shared by the whole
// process or a user-defined type registered at run time. Releasing a handle
// never frees a built-in, frees a user-defined type at most once, and always
// leaves the caller's reference nil.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	grbtype/          Root package documentation
//	├── typedesc/     Descriptors, built-in types, Store, Free, Check, Owned
//	├── resource/     Slot table backing user-defined descriptor storage
//	├── witabi/       Component Model (WIT and core wasm) view of descriptors
//	├── errors/       Structured error types for registration and validation
//	└── cmd/grbtype/  Command line and TUI front end
//
// # Quick Start
//
// Register, use and release a user-defined type:
//
//	store := typedesc.NewStore()
//	defer store.Close()
//
//	gauss, err := store.New("gauss", 16, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stale := gauss
//
//	typedesc.Free(&gauss) // storage reclaimed, gauss == nil
//	typedesc.Free(&stale) // already freed: no-op, stale == nil
//
// Built-in handles can be released any number of times:
//
//	t := typedesc.Int32
//	typedesc.Free(&t) // t == nil, typedesc.Int32 unchanged
//
// # Detecting Dangling References
//
// Every descriptor carries a validity tag. The tag of a user-defined
// descriptor becomes MagicFreed before its storage is reclaimed, so
// typedesc.Check reports an invalid_object error for any stale copy.
//
// # Thread Safety
//
// Store is safe for concurrent use. Free may run concurrently on different
// copies of the same descriptor and deallocates at most once; a single slot
// must not be released from two goroutines at the same time.
package grbtype
