package typedesc

import "github.com/wippyai/grbtype/errors"

// Owned holds the only releasing reference to a user-defined type.
//
// Release frees the descriptor and leaves the owner empty; Take moves the
// descriptor out without freeing it. The zero value is an empty owner.
type Owned struct {
	t *Type
}

// Own wraps a live user-defined type. Built-in types have no owner.
func Own(t *Type) (*Owned, error) {
	if err := Check(t); err != nil {
		return nil, err
	}
	if t.Class() != UserDefined {
		return nil, errors.InvalidValue(errors.PhaseCheck, t.name, "built-in types cannot be owned")
	}
	return &Owned{t: t}, nil
}

// Get returns the owned type, or nil once released or taken.
func (o *Owned) Get() *Type {
	if o == nil {
		return nil
	}
	return o.t
}

// Take moves the type out of the owner, leaving it empty.
func (o *Owned) Take() *Type {
	if o == nil {
		return nil
	}
	t := o.t
	o.t = nil
	return t
}

// Release frees the owned type. Releasing an empty owner does nothing.
func (o *Owned) Release() {
	if o == nil {
		return
	}
	Free(&o.t)
}
