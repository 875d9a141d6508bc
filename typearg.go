package movebind

import (
	"reflect"

	"github.com/holiman/uint256"

	"github.com/reoring/movebind/bcs"
)

// TypeArg is a reified type argument: a primitive, a vector, a phantom
// placeholder or a struct reification (*Reified).
type TypeArg interface {
	// TypeString is the canonical Move spelling of the type.
	TypeString() string
}

// PrimitiveKind enumerates the built-in scalar types.
type PrimitiveKind int

const (
	Bool PrimitiveKind = iota
	U8
	U16
	U32
	U64
	U128
	U256
	AddressKind
)

var primitiveNames = [...]string{"bool", "u8", "u16", "u32", "u64", "u128", "u256", "address"}

// PrimitiveByName maps a Move scalar name to its kind.
func PrimitiveByName(name string) (PrimitiveKind, bool) {
	for i, n := range primitiveNames {
		if n == name {
			return PrimitiveKind(i), true
		}
	}
	return 0, false
}

func (k PrimitiveKind) TypeString() string { return primitiveNames[k] }
func (k PrimitiveKind) String() string     { return primitiveNames[k] }

// VectorArg is the reification of vector<Elem>.
type VectorArg struct {
	Elem TypeArg
}

// Vector reifies vector<elem>.
func Vector(elem TypeArg) VectorArg { return VectorArg{Elem: elem} }

func (v VectorArg) TypeString() string { return "vector<" + v.Elem.TypeString() + ">" }

// PhantomArg stands in for a type that only appears in phantom position. It
// carries the name and nothing that could decode a value.
type PhantomArg struct {
	Type string
}

// Phantom wraps an already reified argument as phantom.
func Phantom(t TypeArg) PhantomArg {
	if p, ok := t.(PhantomArg); ok {
		return p
	}
	return PhantomArg{Type: t.TypeString()}
}

// PhantomOf builds a phantom argument from a type string, normalizing it when
// it parses.
func PhantomOf(typeString string) PhantomArg {
	if c, err := CompressType(typeString); err == nil {
		typeString = c
	}
	return PhantomArg{Type: typeString}
}

func (p PhantomArg) TypeString() string { return p.Type }

// ExtractType returns the canonical type string of a type argument.
func ExtractType(t TypeArg) string {
	if t == nil {
		return ""
	}
	return t.TypeString()
}

var (
	addressGoType = reflect.TypeOf(Address{})
	uint256GoType = reflect.TypeOf(uint256.Int{})
	bytesGoType   = reflect.TypeOf([]byte(nil))
	anyGoType     = reflect.TypeOf((*any)(nil)).Elem()
)

var primitiveGoTypes = [...]reflect.Type{
	Bool:        reflect.TypeOf(false),
	U8:          reflect.TypeOf(uint8(0)),
	U16:         reflect.TypeOf(uint16(0)),
	U32:         reflect.TypeOf(uint32(0)),
	U64:         reflect.TypeOf(uint64(0)),
	U128:        uint256GoType,
	U256:        uint256GoType,
	AddressKind: addressGoType,
}

// GoTypeOf returns the Go type of values decoded for t. Phantom arguments
// carry no values and map to the empty interface.
func GoTypeOf(t TypeArg) reflect.Type {
	switch t := t.(type) {
	case PrimitiveKind:
		return primitiveGoTypes[t]
	case VectorArg:
		if t.Elem == U8 {
			return bytesGoType
		}
		return reflect.SliceOf(GoTypeOf(t.Elem))
	case *Reified:
		return t.GoType()
	}
	return anyGoType
}

// LayoutOf returns the binary layout of t.
func LayoutOf(t TypeArg) (bcs.Layout, error) {
	switch t := t.(type) {
	case PrimitiveKind:
		return primitiveLayouts[t](), nil
	case VectorArg:
		elem, err := LayoutOf(t.Elem)
		if err != nil {
			return nil, err
		}
		return bcs.Vector(elem), nil
	case *Reified:
		return t.Layout, nil
	case PhantomArg:
		return nil, issuef(CodeTypeMismatch, "phantom type %s has no binary layout", t.Type)
	}
	return nil, issuef(CodeTypeMismatch, "unsupported type argument %T", t)
}

var primitiveLayouts = [...]func() bcs.Layout{
	Bool:        bcs.Bool,
	U8:          bcs.U8,
	U16:         bcs.U16,
	U32:         bcs.U32,
	U64:         bcs.U64,
	U128:        bcs.U128,
	U256:        bcs.U256,
	AddressKind: bcs.Address,
}

// OptionalGoType is the Go type used for Option<T> given the Go type of T:
// pointers and interfaces are used as is (nil means none), anything else is
// wrapped in a pointer.
func OptionalGoType(inner reflect.Type) reflect.Type {
	switch inner.Kind() {
	case reflect.Pointer, reflect.Interface:
		return inner
	}
	return reflect.PointerTo(inner)
}

// WrapOptional stores a present value of Go type inner in its Option form.
func WrapOptional(inner reflect.Type, v any) (any, error) {
	opt := OptionalGoType(inner)
	x, err := conform(inner, v)
	if err != nil {
		return nil, err
	}
	if opt == inner {
		return x, nil
	}
	p := reflect.New(inner)
	p.Elem().Set(reflect.ValueOf(x))
	return p.Interface(), nil
}

// UnwrapOptional reverses WrapOptional. It reports false for none.
func UnwrapOptional(inner reflect.Type, v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	if OptionalGoType(inner) == inner {
		return v, true
	}
	if rv.Kind() != reflect.Pointer {
		return v, true
	}
	return rv.Elem().Interface(), true
}
