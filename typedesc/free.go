package typedesc

import "go.uber.org/zap"

// Free releases the descriptor held in slot and sets *slot to nil.
//
// A nil slot, or a slot holding nil, is ignored. Built-in descriptors are
// never deallocated; only the caller's reference is cleared. A user-defined
// descriptor is tagged freed and then its storage is returned to the owning
// Store. Releasing a stale copy of an already freed descriptor deallocates
// nothing.
//
// Free never fails. The caller must not release the same slot from two
// goroutines at once; stale copies of a descriptor may be released
// concurrently, and at most one of them deallocates.
func Free(slot **Type) {
	if slot == nil {
		return
	}
	t := *slot
	if t == nil {
		return
	}

	if t.code.Class() != UserDefined {
		*slot = nil
		Logger().Debug("released handle to shared type",
			zap.String("name", t.name),
			zap.Stringer("code", t.code))
		return
	}

	if t.magic.CompareAndSwap(uint64(MagicLive), uint64(MagicFreed)) {
		t.dealloc()
	} else {
		Logger().Debug("skipping release of non-live type",
			zap.String("name", t.name),
			zap.Stringer("magic", t.Magic()))
	}
	*slot = nil
}

// dealloc returns the descriptor's storage to its store. Called once per
// descriptor, after the tag has been set to MagicFreed.
func (t *Type) dealloc() {
	if t.store != nil {
		t.store.dealloc(t)
	}
}
