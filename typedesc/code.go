package typedesc

// Code identifies the kind of value a descriptor describes.
type Code uint8

const (
	NoCode Code = iota
	BoolCode
	Int8Code
	UInt8Code
	Int16Code
	UInt16Code
	Int32Code
	UInt32Code
	Int64Code
	UInt64Code
	FP32Code
	FP64Code
	UDTCode
)

var codeNames = [...]string{
	NoCode:     "none",
	BoolCode:   "bool",
	Int8Code:   "int8",
	UInt8Code:  "uint8",
	Int16Code:  "int16",
	UInt16Code: "uint16",
	Int32Code:  "int32",
	UInt32Code: "uint32",
	Int64Code:  "int64",
	UInt64Code: "uint64",
	FP32Code:   "fp32",
	FP64Code:   "fp64",
	UDTCode:    "udt",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "invalid"
}

// Class returns the ownership class of descriptors carrying this code.
// Only UDTCode descriptors are owned; every other code, valid or not,
// describes shared storage.
func (c Code) Class() Class {
	if c == UDTCode {
		return UserDefined
	}
	return Builtin
}

// Class is the ownership class of a descriptor.
type Class uint8

const (
	// Builtin descriptors are shared singletons and are never deallocated.
	Builtin Class = iota
	// UserDefined descriptors are heap allocated and owned by one releasing party.
	UserDefined
)

func (c Class) String() string {
	switch c {
	case Builtin:
		return "builtin"
	case UserDefined:
		return "user-defined"
	default:
		return "unknown"
	}
}
