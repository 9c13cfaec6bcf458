// Package typedesc implements GraphBLAS-style type descriptors and their
// release guard.
//
// A descriptor is either one of the built-in singletons (Bool, Int8, ...,
// FP64) or a user-defined type registered with a Store. Built-in descriptors
// are shared by the whole process and are never deallocated. User-defined
// descriptors own one storage slot in their Store and are deallocated once.
//
// # Releasing
//
// Free takes the address of the caller's reference:
//
//	store := typedesc.NewStore()
//	gauss, err := store.New("gauss", 16, nil)
//	if err != nil {
//	    return err
//	}
//	typedesc.Free(&gauss) // storage reclaimed, gauss == nil
//	typedesc.Free(&gauss) // no-op
//
//	t := typedesc.FP64
//	typedesc.Free(&t) // t == nil, typedesc.FP64 still usable
//
// Every descriptor carries a validity tag. Free sets the tag of a user-defined
// descriptor to MagicFreed before its storage is returned, so a stale copy of
// the reference is detected by Check and is never deallocated a second time.
//
// # Ownership
//
// Owned wraps a user-defined descriptor in a single-owner container.
// Release consumes the descriptor and leaves the container empty:
//
//	o, err := store.NewOwned("gauss", 16, nil)
//	defer o.Release()
//
// # Logging
//
// Release outcomes are logged at debug level through the package logger,
// which is a no-op until SetLogger is called. A Store logs through its own
// logger when WithLogger is given.
package typedesc
