// Package bcs describes the binary layout of Move values and encodes them
// with the serde-reflection BCS runtime.
//
// A Layout works on raw values:
//
//	bool, uint8, uint16, uint32, uint64   fixed-width integers
//	uint256.Int                           u128 and u256
//	[32]byte                              address (any [32]byte-backed type encodes)
//	[]byte                                vector<u8>
//	[]any                                 any other vector
//	map[string]any                        struct, keyed by field name
package bcs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/holiman/uint256"
	serdebcs "github.com/novifinancial/serde-reflection/serde-generate/runtime/golang/bcs"
	"github.com/novifinancial/serde-reflection/serde-generate/runtime/golang/serde"
)

// AddressLength is the encoded size of an address.
const AddressLength = 32

// ErrTrailingBytes is returned by Unmarshal when input remains after the
// value has been read.
var ErrTrailingBytes = errors.New("bcs: trailing bytes after value")

// ErrTruncated is returned by Unmarshal when a length prefix announces more
// bytes than the input holds.
var ErrTruncated = errors.New("bcs: length prefix exceeds input")

// Layout encodes and decodes one Move type.
type Layout interface {
	// Name is the Move spelling of the type (u64, vector<u8>, Entry<u64>).
	Name() string
	Encode(s serde.Serializer, v any) error
	Decode(d serde.Deserializer) (any, error)
}

// Field is one named member of a struct layout.
type Field struct {
	Name   string
	Layout Layout
}

// Marshal encodes v with l.
func Marshal(l Layout, v any) ([]byte, error) {
	s := serdebcs.NewSerializer()
	if err := l.Encode(s, v); err != nil {
		return nil, err
	}
	return s.GetBytes(), nil
}

// Unmarshal decodes data with l and requires the whole input to be consumed.
func Unmarshal(l Layout, data []byte) (any, error) {
	d := input{Deserializer: serdebcs.NewDeserializer(data), data: data}
	v, err := l.Decode(d)
	if err != nil {
		return nil, err
	}
	if off := d.GetBufferOffset(); off < uint64(len(data)) {
		return nil, fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingBytes, off, len(data))
	}
	return v, nil
}

type primitive int

const (
	kindBool primitive = iota
	kindU8
	kindU16
	kindU32
	kindU64
	kindU128
	kindU256
	kindAddress
)

var primitiveNames = [...]string{"bool", "u8", "u16", "u32", "u64", "u128", "u256", "address"}

func Bool() Layout    { return kindBool }
func U8() Layout      { return kindU8 }
func U16() Layout     { return kindU16 }
func U32() Layout     { return kindU32 }
func U64() Layout     { return kindU64 }
func U128() Layout    { return kindU128 }
func U256() Layout    { return kindU256 }
func Address() Layout { return kindAddress }

func (p primitive) Name() string { return primitiveNames[p] }

func (p primitive) Encode(s serde.Serializer, v any) error {
	switch p {
	case kindBool:
		b, ok := v.(bool)
		if !ok {
			return mismatch(p, v)
		}
		return s.SerializeBool(b)
	case kindU8:
		n, ok := v.(uint8)
		if !ok {
			return mismatch(p, v)
		}
		return s.SerializeU8(n)
	case kindU16:
		n, ok := v.(uint16)
		if !ok {
			return mismatch(p, v)
		}
		return s.SerializeU16(n)
	case kindU32:
		n, ok := v.(uint32)
		if !ok {
			return mismatch(p, v)
		}
		return s.SerializeU32(n)
	case kindU64:
		n, ok := v.(uint64)
		if !ok {
			return mismatch(p, v)
		}
		return s.SerializeU64(n)
	case kindU128:
		n, ok := asUint256(v)
		if !ok {
			return mismatch(p, v)
		}
		if n.BitLen() > 128 {
			return fmt.Errorf("bcs: value %s does not fit in u128", n.Dec())
		}
		return s.SerializeU128(serde.Uint128{High: n[1], Low: n[0]})
	case kindU256:
		n, ok := asUint256(v)
		if !ok {
			return mismatch(p, v)
		}
		for _, limb := range n {
			if err := s.SerializeU64(limb); err != nil {
				return err
			}
		}
		return nil
	case kindAddress:
		a, ok := asAddress(v)
		if !ok {
			return mismatch(p, v)
		}
		for _, b := range a {
			if err := s.SerializeU8(b); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("bcs: unknown primitive %d", int(p))
}

func (p primitive) Decode(d serde.Deserializer) (any, error) {
	switch p {
	case kindBool:
		return d.DeserializeBool()
	case kindU8:
		return d.DeserializeU8()
	case kindU16:
		return d.DeserializeU16()
	case kindU32:
		return d.DeserializeU32()
	case kindU64:
		return d.DeserializeU64()
	case kindU128:
		n, err := d.DeserializeU128()
		if err != nil {
			return nil, err
		}
		return uint256.Int{n.Low, n.High, 0, 0}, nil
	case kindU256:
		var n uint256.Int
		for i := range n {
			limb, err := d.DeserializeU64()
			if err != nil {
				return nil, err
			}
			n[i] = limb
		}
		return n, nil
	case kindAddress:
		var a [AddressLength]byte
		for i := range a {
			b, err := d.DeserializeU8()
			if err != nil {
				return nil, err
			}
			a[i] = b
		}
		return a, nil
	}
	return nil, fmt.Errorf("bcs: unknown primitive %d", int(p))
}

type bytesLayout struct{}

// Bytes is the layout of vector<u8>; its raw value is []byte.
func Bytes() Layout { return bytesLayout{} }

func (bytesLayout) Name() string { return "vector<u8>" }

func (bytesLayout) Encode(s serde.Serializer, v any) error {
	b, ok := v.([]byte)
	if !ok {
		return mismatch(bytesLayout{}, v)
	}
	return s.SerializeBytes(b)
}

func (bytesLayout) Decode(d serde.Deserializer) (any, error) {
	if in, ok := d.(input); ok {
		if err := in.checkLen(); err != nil {
			return nil, err
		}
	}
	return d.DeserializeBytes()
}

// input is the deserializer handed out by Unmarshal. It keeps the whole
// buffer so that length prefixes can be checked before the runtime
// allocates for them.
type input struct {
	serde.Deserializer
	data []byte
}

// checkLen peeks at the length prefix at the current offset and fails when
// more bytes are announced than remain.
func (in input) checkLen() error {
	off := in.GetBufferOffset()
	if off > uint64(len(in.data)) {
		return nil
	}
	peek := serdebcs.NewDeserializer(in.data[off:])
	n, err := peek.DeserializeLen()
	if err != nil {
		return err
	}
	if left := uint64(len(in.data)) - off - peek.GetBufferOffset(); n > left {
		return fmt.Errorf("%w: %d bytes announced, %d left", ErrTruncated, n, left)
	}
	return nil
}

type vectorLayout struct {
	elem Layout
}

// Vector is the layout of vector<elem>; its raw value is []any. Use Bytes for
// vector<u8>.
func Vector(elem Layout) Layout {
	if elem == Layout(kindU8) {
		return bytesLayout{}
	}
	return vectorLayout{elem: elem}
}

func (l vectorLayout) Name() string { return "vector<" + l.elem.Name() + ">" }

func (l vectorLayout) Encode(s serde.Serializer, v any) error {
	items, ok := v.([]any)
	if !ok {
		return mismatch(l, v)
	}
	if err := s.SerializeLen(uint64(len(items))); err != nil {
		return err
	}
	for i, it := range items {
		if err := l.elem.Encode(s, it); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	return nil
}

func (l vectorLayout) Decode(d serde.Deserializer) (any, error) {
	// Every element takes at least one byte.
	if in, ok := d.(input); ok {
		if err := in.checkLen(); err != nil {
			return nil, err
		}
	}
	n, err := d.DeserializeLen()
	if err != nil {
		return nil, err
	}
	items := make([]any, 0, min(n, 1024))
	for i := uint64(0); i < n; i++ {
		it, err := l.elem.Decode(d)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

type structLayout struct {
	name   string
	fields []Field
}

// Struct is the layout of a struct whose fields are encoded in order with no
// framing. Its raw value is map[string]any keyed by field name.
func Struct(name string, fields ...Field) Layout {
	return structLayout{name: name, fields: append([]Field(nil), fields...)}
}

func (l structLayout) Name() string { return l.name }

// Fields returns the ordered field list of a struct layout, or nil for any
// other layout.
func Fields(l Layout) []Field {
	if sl, ok := l.(structLayout); ok {
		return append([]Field(nil), sl.fields...)
	}
	return nil
}

func (l structLayout) Encode(s serde.Serializer, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return mismatch(l, v)
	}
	if err := s.IncreaseContainerDepth(); err != nil {
		return err
	}
	for _, f := range l.fields {
		fv, ok := m[f.Name]
		if !ok {
			return fmt.Errorf("bcs: %s: missing field %q", l.name, f.Name)
		}
		if err := f.Layout.Encode(s, fv); err != nil {
			return fmt.Errorf("%s.%s: %w", l.name, f.Name, err)
		}
	}
	s.DecreaseContainerDepth()
	return nil
}

func (l structLayout) Decode(d serde.Deserializer) (any, error) {
	if err := d.IncreaseContainerDepth(); err != nil {
		return nil, err
	}
	m := make(map[string]any, len(l.fields))
	for _, f := range l.fields {
		fv, err := f.Layout.Decode(d)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", l.name, f.Name, err)
		}
		m[f.Name] = fv
	}
	d.DecreaseContainerDepth()
	return m, nil
}

// Describe renders a layout as a Move-like declaration, expanding struct
// fields one level deep.
func Describe(l Layout) string {
	sl, ok := l.(structLayout)
	if !ok {
		return l.Name()
	}
	parts := make([]string, len(sl.fields))
	for i, f := range sl.fields {
		parts[i] = f.Name + ": " + f.Layout.Name()
	}
	return sl.name + " { " + strings.Join(parts, ", ") + " }"
}

func asUint256(v any) (uint256.Int, bool) {
	switch n := v.(type) {
	case uint256.Int:
		return n, true
	case *uint256.Int:
		if n == nil {
			return uint256.Int{}, false
		}
		return *n, true
	}
	return uint256.Int{}, false
}

var addressType = reflect.TypeOf([AddressLength]byte{})

func asAddress(v any) ([AddressLength]byte, bool) {
	if a, ok := v.([AddressLength]byte); ok {
		return a, true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Type().ConvertibleTo(addressType) && rv.Kind() == reflect.Array {
		return rv.Convert(addressType).Interface().([AddressLength]byte), true
	}
	return [AddressLength]byte{}, false
}

func mismatch(l Layout, v any) error {
	return fmt.Errorf("bcs: %s cannot encode %T", l.Name(), v)
}
