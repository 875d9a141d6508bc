package movebind

import (
	"encoding/hex"
	"reflect"
	"strconv"

	"github.com/holiman/uint256"
)

// decodeStep decodes one value of type t from one representation.
type decodeStep func(t TypeArg, v any) (any, error)

// DecodeFromFields decodes the raw value produced by the binary decoder (or
// built by hand in the same shape) into the Go value for t.
func DecodeFromFields(t TypeArg, raw any) (any, error) {
	switch t := t.(type) {
	case PrimitiveKind:
		return coercePrimitive(t, raw)
	case VectorArg:
		return decodeVector(t.Elem, raw, DecodeFromFields)
	case *Reified:
		return t.codec.fromFields(raw)
	}
	return nil, noValues(t)
}

// DecodeFromFieldsWithTypes decodes a value in the query API representation.
// Struct values arrive as {"type": ..., "fields": ...}; 64-bit and larger
// integers arrive as decimal strings.
func DecodeFromFieldsWithTypes(t TypeArg, item any) (any, error) {
	switch t := t.(type) {
	case PrimitiveKind:
		return coercePrimitive(t, item)
	case VectorArg:
		return decodeVector(t.Elem, item, DecodeFromFieldsWithTypes)
	case *Reified:
		return t.codec.fromFieldsWithTypes(item)
	}
	return nil, noValues(t)
}

// DecodeFromJSONField decodes a value in the untagged JSON form.
func DecodeFromJSONField(t TypeArg, field any) (any, error) {
	switch t := t.(type) {
	case PrimitiveKind:
		return coercePrimitive(t, field)
	case VectorArg:
		return decodeVector(t.Elem, field, DecodeFromJSONField)
	case *Reified:
		return t.codec.fromJSONField(field)
	}
	return nil, noValues(t)
}

func decodeVector(elem TypeArg, v any, step decodeStep) (any, error) {
	if elem == U8 {
		return coerceBytes(v)
	}
	if _, ok := elem.(PhantomArg); ok {
		return nil, noValues(elem)
	}
	items, err := sequence(v)
	if err != nil {
		return nil, err
	}
	out := reflect.MakeSlice(reflect.SliceOf(GoTypeOf(elem)), len(items), len(items))
	for i, it := range items {
		x, err := step(elem, it)
		if err != nil {
			return nil, atIndex(err, i)
		}
		if err := assign(out.Index(i), x); err != nil {
			return nil, atIndex(err, i)
		}
	}
	return out.Interface(), nil
}

func assign(dst reflect.Value, v any) error {
	x, err := conform(dst.Type(), v)
	if err != nil {
		return err
	}
	if x == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	dst.Set(reflect.ValueOf(x))
	return nil
}

// EncodeToFields converts a Go value of type t into the raw value accepted by
// the binary encoder.
func EncodeToFields(t TypeArg, v any) (any, error) {
	switch t := t.(type) {
	case PrimitiveKind:
		x, err := conform(primitiveGoTypes[t], v)
		if err != nil {
			return nil, err
		}
		if a, ok := x.(Address); ok {
			return [AddressLength]byte(a), nil
		}
		return x, nil
	case VectorArg:
		if t.Elem == U8 {
			b, err := conform(bytesGoType, v)
			if err != nil {
				return nil, err
			}
			return b, nil
		}
		items, err := sequence(v)
		if err != nil {
			return nil, err
		}
		out := make([]any, len(items))
		for i, it := range items {
			if out[i], err = EncodeToFields(t.Elem, it); err != nil {
				return nil, atIndex(err, i)
			}
		}
		return out, nil
	case *Reified:
		return t.ToFields(v)
	}
	return nil, noValues(t)
}

func noValues(t TypeArg) error {
	if p, ok := t.(PhantomArg); ok {
		return issuef(CodeTypeMismatch, "phantom type %s carries no values", p.Type)
	}
	return issuef(CodeTypeMismatch, "unsupported type argument %T", t)
}

// ValueToJSON renders a decoded Go value in the untagged JSON form. The
// rendering follows the Go type alone: u8, u16 and u32 become numbers, wider
// integers decimal strings, addresses 0x-prefixed hex, byte vectors
// 0x-prefixed hex, struct instances their field objects and a nil option null.
func ValueToJSON(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Instance:
		if isNilPointer(x) {
			return nil, nil
		}
		return x.ToJSONField()
	case bool, uint8, uint16, uint32, string:
		return x, nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case uint256.Int:
		return x.Dec(), nil
	case *uint256.Int:
		if x == nil {
			return nil, nil
		}
		return x.Dec(), nil
	case Address:
		return x.String(), nil
	case []byte:
		return "0x" + hex.EncodeToString(x), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return ValueToJSON(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			x, err := ValueToJSON(rv.Index(i).Interface())
			if err != nil {
				return nil, atIndex(err, i)
			}
			out[i] = x
		}
		return out, nil
	}
	return nil, invalidType("Move value", v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
