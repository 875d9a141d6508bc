package movebind

import (
	"reflect"
	"sync"

	"github.com/reoring/movebind/bcs"
)

// SpecialCodec decodes a struct whose Go form is not a struct binding (a
// string, an address, an optional value). Every function is required.
type SpecialCodec struct {
	GoType              reflect.Type
	FromFields          func(raw any) (any, error)
	FromFieldsWithTypes func(item any) (any, error)
	FromJSONField       func(field any) (any, error)
	ToFields            func(v any) (any, error)
}

func (c SpecialCodec) goType() reflect.Type                   { return c.GoType }
func (c SpecialCodec) fromFields(raw any) (any, error)        { return c.FromFields(raw) }
func (c SpecialCodec) fromFieldsWithTypes(v any) (any, error) { return c.FromFieldsWithTypes(v) }
func (c SpecialCodec) fromJSONField(v any) (any, error)       { return c.FromJSONField(v) }
func (c SpecialCodec) toFields(v any) (any, error)            { return c.ToFields(v) }

// SpecialClass binds a Move struct to a SpecialCodec.
type SpecialClass struct {
	Name   string
	Params []TypeParam
	// Build returns the binary layout and the codec for one instantiation.
	Build func(args []TypeArg) (bcs.Layout, SpecialCodec, error)

	once      sync.Once
	canonical string
}

func (c *SpecialClass) TypeName() string {
	c.once.Do(func() { c.canonical = MustCompressType(c.Name) })
	return c.canonical
}

func (c *SpecialClass) NumTypeParams() int { return len(c.Params) }

func (c *SpecialClass) IsPhantomParam(i int) bool {
	return i >= 0 && i < len(c.Params) && c.Params[i].Phantom
}

// Is reports whether typeString names an instantiation of c.
func (c *SpecialClass) Is(typeString string) bool {
	name, err := baseName(typeString)
	return err == nil && name == c.TypeName()
}

func (c *SpecialClass) Reified(args ...TypeArg) (*Reified, error) {
	name := c.TypeName()
	if err := checkTypeArgs(name, c.Params, args); err != nil {
		return nil, err
	}
	layout, codec, err := c.Build(args)
	if err != nil {
		return nil, err
	}
	r := newReified(name, args, layout, false)
	r.codec = codec
	return r, nil
}

// MustReified is like Reified but panics on error.
func (c *SpecialClass) MustReified(args ...TypeArg) *Reified {
	r, err := c.Reified(args...)
	if err != nil {
		panic(err)
	}
	return r
}

// FieldMap extracts a struct's raw field map, reporting a missing or
// mistyped container as invalid_type.
func FieldMap(raw any, fields ...string) (map[string]any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, invalidType("field map", raw)
	}
	for _, f := range fields {
		if _, ok := m[f]; !ok {
			return nil, atField(issuef(CodeMissingField, "missing field %s", f), f)
		}
	}
	return m, nil
}
