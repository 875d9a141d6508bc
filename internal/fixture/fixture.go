// Package fixture binds the structs of a small test package that covers
// every field shape the engine supports: nested generics, vectors of
// generics, phantom parameters and the special framework types.
package fixture

import (
	"reflect"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/gen/std"
	"github.com/reoring/movebind/gen/sui"
)

// Package is the address the fixture package is published at.
const Package = "0xcafe"

const (
	DummyTypeName                     = Package + "::fixture::Dummy"
	BarTypeName                       = Package + "::fixture::Bar"
	WithTwoGenericsTypeName           = Package + "::fixture::WithTwoGenerics"
	WithGenericFieldTypeName          = Package + "::fixture::WithGenericField"
	FooTypeName                       = Package + "::fixture::Foo"
	WithSpecialTypesTypeName          = Package + "::fixture::WithSpecialTypes"
	WithSpecialTypesInVectorsTypeName = Package + "::fixture::WithSpecialTypesInVectors"
	StructFromOtherModuleTypeName     = Package + "::other_module::StructFromOtherModule"
)

var (
	fixed = movebind.Fixed
	param = movebind.Param
	vec   = movebind.Vec
)

// Dummy has a single bool field.
type Dummy struct {
	movebind.Header
	dummyField bool
}

var DummyDef = &movebind.StructDef{
	Name:   DummyTypeName,
	Fields: []movebind.FieldDef{{Name: "dummy_field", JSONName: "dummyField", Type: fixed(movebind.Bool)}},
	GoType: reflect.TypeOf((*Dummy)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &Dummy{Header: h, dummyField: v[0].(bool)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*Dummy).dummyField} },
}

func NewDummy() *Dummy {
	d, err := movebind.Build[*Dummy](DummyDef, nil, false)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Dummy) ToJSONField() (map[string]any, error) { return DummyDef.ToJSONField(d) }
func (d *Dummy) ToJSON() (map[string]any, error)      { return DummyDef.ToJSON(d) }

// StructFromOtherModule lives in a second module of the same package.
type StructFromOtherModule struct {
	movebind.Header
	dummyField bool
}

var StructFromOtherModuleDef = &movebind.StructDef{
	Name:   StructFromOtherModuleTypeName,
	Fields: []movebind.FieldDef{{Name: "dummy_field", JSONName: "dummyField", Type: fixed(movebind.Bool)}},
	GoType: reflect.TypeOf((*StructFromOtherModule)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &StructFromOtherModule{Header: h, dummyField: v[0].(bool)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*StructFromOtherModule).dummyField} },
}

func NewStructFromOtherModule() *StructFromOtherModule {
	s, err := movebind.Build[*StructFromOtherModule](StructFromOtherModuleDef, nil, false)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *StructFromOtherModule) ToJSONField() (map[string]any, error) {
	return StructFromOtherModuleDef.ToJSONField(s)
}
func (s *StructFromOtherModule) ToJSON() (map[string]any, error) {
	return StructFromOtherModuleDef.ToJSON(s)
}

// Bar wraps a u64.
type Bar struct {
	movebind.Header
	value uint64
}

var BarDef = &movebind.StructDef{
	Name:   BarTypeName,
	Fields: []movebind.FieldDef{{Name: "value", Type: fixed(movebind.U64)}},
	GoType: reflect.TypeOf((*Bar)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &Bar{Header: h, value: v[0].(uint64)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*Bar).value} },
}

func NewBar(value uint64) *Bar {
	b, err := movebind.Build[*Bar](BarDef, nil, value)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Bar) Value() uint64 { return b.value }

func (b *Bar) ToJSONField() (map[string]any, error) { return BarDef.ToJSONField(b) }
func (b *Bar) ToJSON() (map[string]any, error)      { return BarDef.ToJSON(b) }

// WithTwoGenerics holds one value of each type parameter.
type WithTwoGenerics struct {
	movebind.Header
	genericField1 any
	genericField2 any
}

var WithTwoGenericsDef = &movebind.StructDef{
	Name:       WithTwoGenericsTypeName,
	TypeParams: []movebind.TypeParam{{Name: "T"}, {Name: "U"}},
	Fields: []movebind.FieldDef{
		{Name: "generic_field_1", JSONName: "genericField1", Type: param(0)},
		{Name: "generic_field_2", JSONName: "genericField2", Type: param(1)},
	},
	GoType: reflect.TypeOf((*WithTwoGenerics)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &WithTwoGenerics{Header: h, genericField1: v[0], genericField2: v[1]}
	},
	Values: func(i movebind.Instance) []any {
		w := i.(*WithTwoGenerics)
		return []any{w.genericField1, w.genericField2}
	},
}

func NewWithTwoGenerics(t, u movebind.TypeArg, f1, f2 any) (*WithTwoGenerics, error) {
	return movebind.Build[*WithTwoGenerics](WithTwoGenericsDef, []movebind.TypeArg{t, u}, f1, f2)
}

func (w *WithTwoGenerics) GenericField1() any { return w.genericField1 }
func (w *WithTwoGenerics) GenericField2() any { return w.genericField2 }

func (w *WithTwoGenerics) ToJSONField() (map[string]any, error) {
	return WithTwoGenericsDef.ToJSONField(w)
}
func (w *WithTwoGenerics) ToJSON() (map[string]any, error) { return WithTwoGenericsDef.ToJSON(w) }

// WithGenericField is an object with one generic field.
type WithGenericField struct {
	movebind.Header
	id           movebind.Address
	genericField any
}

var WithGenericFieldDef = &movebind.StructDef{
	Name:       WithGenericFieldTypeName,
	TypeParams: []movebind.TypeParam{{Name: "T"}},
	Fields: []movebind.FieldDef{
		{Name: "id", Type: movebind.StructOf(sui.UID)},
		{Name: "generic_field", JSONName: "genericField", Type: param(0)},
	},
	GoType: reflect.TypeOf((*WithGenericField)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &WithGenericField{Header: h, id: v[0].(movebind.Address), genericField: v[1]}
	},
	Values: func(i movebind.Instance) []any {
		w := i.(*WithGenericField)
		return []any{w.id, w.genericField}
	},
}

func NewWithGenericField(t movebind.TypeArg, id movebind.Address, field any) (*WithGenericField, error) {
	return movebind.Build[*WithGenericField](WithGenericFieldDef, []movebind.TypeArg{t}, id, field)
}

func (w *WithGenericField) ID() movebind.Address { return w.id }
func (w *WithGenericField) GenericField() any    { return w.genericField }

func (w *WithGenericField) ToJSONField() (map[string]any, error) {
	return WithGenericFieldDef.ToJSONField(w)
}
func (w *WithGenericField) ToJSON() (map[string]any, error) { return WithGenericFieldDef.ToJSON(w) }

// Register adds every fixture binding to l.
func Register(l *movebind.Loader) {
	l.Register(
		DummyDef, StructFromOtherModuleDef, BarDef,
		WithTwoGenericsDef, WithGenericFieldDef, FooDef,
		WithSpecialTypesDef, WithSpecialTypesInVectorsDef,
	)
}

// Optional field helpers shared by the larger fixtures.
var (
	optionOf = func(inner movebind.FieldType) movebind.FieldType { return movebind.StructOf(std.Option, inner) }
	twoOf    = func(t, u movebind.FieldType) movebind.FieldType {
		return movebind.StructOf(WithTwoGenericsDef, t, u)
	}
	barType = movebind.StructOf(BarDef)
)
