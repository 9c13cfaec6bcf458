package typedesc

import (
	"fmt"
	"sync/atomic"

	"github.com/wippyai/grbtype/resource"
)

// Ops holds optional callbacks attached to a user-defined type.
type Ops struct {
	// Copy copies one value of the type from src to dst.
	Copy func(dst, src []byte)
	// Format renders one value of the type for diagnostics.
	Format func(v []byte) string
}

// Type is an opaque type descriptor.
//
// Descriptors are always handled through pointers. Built-in descriptors are
// package-level singletons; user-defined ones are created by a Store and
// released with Free.
type Type struct {
	magic atomic.Uint64
	code  Code
	size  uintptr
	name  string
	ops   *Ops
	slot  resource.Handle
	store *Store
}

// Name returns the descriptor's name.
func (t *Type) Name() string {
	return t.name
}

// Size returns the size of one value in bytes.
func (t *Type) Size() uintptr {
	return t.size
}

// Code returns the descriptor's type code.
func (t *Type) Code() Code {
	return t.code
}

// Class returns the descriptor's ownership class.
func (t *Type) Class() Class {
	return t.code.Class()
}

// Magic returns the current validity tag.
func (t *Type) Magic() Magic {
	return Magic(t.magic.Load())
}

// Live reports whether the descriptor carries the live tag.
func (t *Type) Live() bool {
	return t.Magic() == MagicLive
}

// Ops returns the callbacks of a user-defined type, or nil.
// The callbacks are dropped when the descriptor is freed.
func (t *Type) Ops() *Ops {
	return t.ops
}

func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	if m := t.Magic(); m != MagicLive {
		return fmt.Sprintf("%s(%s, %s)", t.name, t.code, m)
	}
	return fmt.Sprintf("%s(%s, %d bytes)", t.name, t.code, t.size)
}

// typeCell is the value stored in a Store's slot table. Dropping it releases
// the descriptor's payload.
type typeCell struct {
	t *Type
}

func (c typeCell) Drop() {
	c.t.ops = nil
	c.t.slot = 0
}
