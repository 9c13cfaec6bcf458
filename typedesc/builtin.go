package typedesc

// Built-in descriptors. They are shared by every holder, live for the whole
// process, and are never deallocated.
var (
	Bool   = newBuiltin(BoolCode, "bool", 1)
	Int8   = newBuiltin(Int8Code, "int8_t", 1)
	UInt8  = newBuiltin(UInt8Code, "uint8_t", 1)
	Int16  = newBuiltin(Int16Code, "int16_t", 2)
	UInt16 = newBuiltin(UInt16Code, "uint16_t", 2)
	Int32  = newBuiltin(Int32Code, "int32_t", 4)
	UInt32 = newBuiltin(UInt32Code, "uint32_t", 4)
	Int64  = newBuiltin(Int64Code, "int64_t", 8)
	UInt64 = newBuiltin(UInt64Code, "uint64_t", 8)
	FP32   = newBuiltin(FP32Code, "float", 4)
	FP64   = newBuiltin(FP64Code, "double", 8)
)

var builtins = []*Type{
	Bool, Int8, UInt8, Int16, UInt16, Int32, UInt32, Int64, UInt64, FP32, FP64,
}

func newBuiltin(code Code, name string, size uintptr) *Type {
	t := &Type{code: code, name: name, size: size}
	t.magic.Store(uint64(MagicLive))
	return t
}

// Builtins returns the built-in descriptors in code order.
func Builtins() []*Type {
	out := make([]*Type, len(builtins))
	copy(out, builtins)
	return out
}

// BuiltinByCode returns the built-in descriptor for code.
func BuiltinByCode(code Code) (*Type, bool) {
	if code < BoolCode || code > FP64Code {
		return nil, false
	}
	return builtins[code-BoolCode], true
}

// BuiltinByName returns the built-in descriptor with the given name.
// Both the C name ("int32_t") and the code name ("int32") are accepted.
func BuiltinByName(name string) (*Type, bool) {
	for _, t := range builtins {
		if t.name == name || t.code.String() == name {
			return t, true
		}
	}
	return nil, false
}
