package typedesc

import "github.com/wippyai/grbtype/errors"

// Check reports whether t is a usable descriptor.
//
// It returns a null_pointer error for nil, an invalid_object error for a
// descriptor that was freed or never finished initialization, and an
// uninitialized_object error for any other unrecognized tag. A live
// user-defined type must also still own its storage slot.
func Check(t *Type) error {
	if t == nil {
		return errors.NullPointer(errors.PhaseCheck, "type")
	}
	switch m := t.Magic(); m {
	case MagicLive:
		if t.store != nil && !t.store.owns(t) {
			return errors.New(errors.PhaseCheck, errors.KindInvalidObject).
				Path("store", "slot").
				TypeName(t.name).
				Value(uint32(t.slot)).
				Detail("live tag but slot %d is not owned", t.slot).
				Build()
		}
		return nil
	case MagicFreed, MagicInvalid:
		return errors.InvalidObject(errors.PhaseCheck, t.name, uint64(m))
	default:
		return errors.Uninitialized(errors.PhaseCheck, uint64(m))
	}
}
