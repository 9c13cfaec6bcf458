// Package witabi maps type descriptors onto the WebAssembly Component Model.
//
// Built-in descriptors map to WIT primitives. A user-defined descriptor has no
// structure visible to the host, so it maps to a named list<u8> carrying its
// raw bytes.
package witabi

import (
	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/grbtype/errors"
	"github.com/wippyai/grbtype/typedesc"
)

// WIT returns the WIT type for a live descriptor.
func WIT(t *typedesc.Type) (wit.Type, bool) {
	if t == nil || !t.Live() {
		return nil, false
	}

	switch t.Code() {
	case typedesc.BoolCode:
		return wit.Bool{}, true
	case typedesc.Int8Code:
		return wit.S8{}, true
	case typedesc.UInt8Code:
		return wit.U8{}, true
	case typedesc.Int16Code:
		return wit.S16{}, true
	case typedesc.UInt16Code:
		return wit.U16{}, true
	case typedesc.Int32Code:
		return wit.S32{}, true
	case typedesc.UInt32Code:
		return wit.U32{}, true
	case typedesc.Int64Code:
		return wit.S64{}, true
	case typedesc.UInt64Code:
		return wit.U64{}, true
	case typedesc.FP32Code:
		return wit.F32{}, true
	case typedesc.FP64Code:
		return wit.F64{}, true
	case typedesc.UDTCode:
		name := t.Name()
		return &wit.TypeDef{
			Name: &name,
			Kind: &wit.List{Type: wit.U8{}},
		}, true
	default:
		return nil, false
	}
}

// Flatten returns the core wasm value types a value of t flattens to under
// the canonical ABI.
func Flatten(t *typedesc.Type) ([]api.ValueType, bool) {
	wt, ok := WIT(t)
	if !ok {
		return nil, false
	}

	switch wt.(type) {
	case wit.Bool, wit.S8, wit.U8, wit.S16, wit.U16, wit.S32, wit.U32:
		return []api.ValueType{api.ValueTypeI32}, true
	case wit.S64, wit.U64:
		return []api.ValueType{api.ValueTypeI64}, true
	case wit.F32:
		return []api.ValueType{api.ValueTypeF32}, true
	case wit.F64:
		return []api.ValueType{api.ValueTypeF64}, true
	case *wit.TypeDef:
		// list<u8>: pointer and length
		return []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, true
	default:
		return nil, false
	}
}

// Describe returns a short WIT spelling of t and its flattened core types,
// for example "s32 -> i32" or "gauss: list<u8> -> i32 i32".
func Describe(t *typedesc.Type) (string, error) {
	if err := typedesc.Check(t); err != nil {
		return "", errors.Wrap(errors.PhaseConvert, errors.KindInvalidObject, err, "describe type")
	}
	wt, ok := WIT(t)
	if !ok {
		return "", errors.Unsupported(errors.PhaseConvert, "type code "+t.Code().String())
	}
	flat, _ := Flatten(t)

	s := witName(wt)
	if t.Class() == typedesc.UserDefined {
		s = t.Name() + ": " + s
	}
	s += " ->"
	for _, v := range flat {
		s += " " + api.ValueTypeName(v)
	}
	return s, nil
}

func witName(t wit.Type) string {
	switch t.(type) {
	case wit.Bool:
		return "bool"
	case wit.S8:
		return "s8"
	case wit.U8:
		return "u8"
	case wit.S16:
		return "s16"
	case wit.U16:
		return "u16"
	case wit.S32:
		return "s32"
	case wit.U32:
		return "u32"
	case wit.S64:
		return "s64"
	case wit.U64:
		return "u64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case *wit.TypeDef:
		return "list<u8>"
	default:
		return "unknown"
	}
}
