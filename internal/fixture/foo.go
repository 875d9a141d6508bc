package fixture

import (
	"reflect"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/gen/std"
	"github.com/reoring/movebind/gen/sui"
)

// Foo exercises generic fields in every position.
type Foo struct {
	movebind.Header
	id                          movebind.Address
	generic                     any
	reifiedPrimitiveVec         []uint64
	reifiedObjectVec            []*Bar
	genericVec                  any
	genericVecNested            []*WithTwoGenerics
	twoGenerics                 *WithTwoGenerics
	twoGenericsReifiedPrimitive *WithTwoGenerics
	twoGenericsReifiedObject    *WithTwoGenerics
	twoGenericsNested           *WithTwoGenerics
	twoGenericsReifiedNested    *WithTwoGenerics
	twoGenericsNestedVec        []*WithTwoGenerics
	dummy                       *Dummy
	other                       *StructFromOtherModule
}

var u8x2 = twoOf(fixed(movebind.U8), fixed(movebind.U8))

var FooDef = &movebind.StructDef{
	Name:       FooTypeName,
	TypeParams: []movebind.TypeParam{{Name: "T"}},
	Fields: []movebind.FieldDef{
		{Name: "id", Type: movebind.StructOf(sui.UID)},
		{Name: "generic", Type: param(0)},
		{Name: "reified_primitive_vec", JSONName: "reifiedPrimitiveVec", Type: vec(fixed(movebind.U64))},
		{Name: "reified_object_vec", JSONName: "reifiedObjectVec", Type: vec(barType)},
		{Name: "generic_vec", JSONName: "genericVec", Type: vec(param(0))},
		{Name: "generic_vec_nested", JSONName: "genericVecNested", Type: vec(twoOf(param(0), fixed(movebind.U8)))},
		{Name: "two_generics", JSONName: "twoGenerics", Type: twoOf(param(0), barType)},
		{Name: "two_generics_reified_primitive", JSONName: "twoGenericsReifiedPrimitive",
			Type: twoOf(fixed(movebind.U16), fixed(movebind.U64))},
		{Name: "two_generics_reified_object", JSONName: "twoGenericsReifiedObject", Type: twoOf(barType, barType)},
		{Name: "two_generics_nested", JSONName: "twoGenericsNested", Type: twoOf(param(0), u8x2)},
		{Name: "two_generics_reified_nested", JSONName: "twoGenericsReifiedNested", Type: twoOf(barType, u8x2)},
		{Name: "two_generics_nested_vec", JSONName: "twoGenericsNestedVec",
			Type: vec(twoOf(barType, vec(twoOf(param(0), fixed(movebind.U8)))))},
		{Name: "dummy", Type: movebind.StructOf(DummyDef)},
		{Name: "other", Type: movebind.StructOf(StructFromOtherModuleDef)},
	},
	GoType: reflect.TypeOf((*Foo)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &Foo{
			Header:                      h,
			id:                          v[0].(movebind.Address),
			generic:                     v[1],
			reifiedPrimitiveVec:         v[2].([]uint64),
			reifiedObjectVec:            v[3].([]*Bar),
			genericVec:                  v[4],
			genericVecNested:            v[5].([]*WithTwoGenerics),
			twoGenerics:                 v[6].(*WithTwoGenerics),
			twoGenericsReifiedPrimitive: v[7].(*WithTwoGenerics),
			twoGenericsReifiedObject:    v[8].(*WithTwoGenerics),
			twoGenericsNested:           v[9].(*WithTwoGenerics),
			twoGenericsReifiedNested:    v[10].(*WithTwoGenerics),
			twoGenericsNestedVec:        v[11].([]*WithTwoGenerics),
			dummy:                       v[12].(*Dummy),
			other:                       v[13].(*StructFromOtherModule),
		}
	},
	Values: func(i movebind.Instance) []any {
		f := i.(*Foo)
		return []any{
			f.id, f.generic, f.reifiedPrimitiveVec, f.reifiedObjectVec, f.genericVec,
			f.genericVecNested, f.twoGenerics, f.twoGenericsReifiedPrimitive,
			f.twoGenericsReifiedObject, f.twoGenericsNested, f.twoGenericsReifiedNested,
			f.twoGenericsNestedVec, f.dummy, f.other,
		}
	},
}

// NewFoo builds a Foo<t>; values are given in field declaration order.
func NewFoo(t movebind.TypeArg, values ...any) (*Foo, error) {
	return movebind.Build[*Foo](FooDef, []movebind.TypeArg{t}, values...)
}

func (f *Foo) ID() movebind.Address                    { return f.id }
func (f *Foo) Generic() any                            { return f.generic }
func (f *Foo) GenericVec() any                         { return f.genericVec }
func (f *Foo) TwoGenericsNestedVec() []*WithTwoGenerics { return f.twoGenericsNestedVec }

func (f *Foo) ToJSONField() (map[string]any, error) { return FooDef.ToJSONField(f) }
func (f *Foo) ToJSON() (map[string]any, error)      { return FooDef.ToJSON(f) }

// WithSpecialTypes has a field of every specially decoded framework type.
type WithSpecialTypes struct {
	movebind.Header
	id                movebind.Address
	string            string
	asciiString       string
	url               string
	idField           movebind.Address
	uid               movebind.Address
	balance           *sui.Balance
	option            *uint64
	optionObj         *Bar
	optionNone        *uint64
	balanceGeneric    *sui.Balance
	optionGeneric     any
	optionGenericNone any
}

var WithSpecialTypesDef = &movebind.StructDef{
	Name:       WithSpecialTypesTypeName,
	TypeParams: []movebind.TypeParam{{Name: "T", Phantom: true}, {Name: "U"}},
	Fields: []movebind.FieldDef{
		{Name: "id", Type: movebind.StructOf(sui.UID)},
		{Name: "string", Type: movebind.StructOf(std.String)},
		{Name: "ascii_string", JSONName: "asciiString", Type: movebind.StructOf(std.ASCIIString)},
		{Name: "url", Type: movebind.StructOf(sui.URL)},
		{Name: "id_field", JSONName: "idField", Type: movebind.StructOf(sui.ID)},
		{Name: "uid", Type: movebind.StructOf(sui.UID)},
		{Name: "balance", Type: movebind.StructOf(sui.BalanceDef, movebind.StructOf(sui.SUIDef))},
		{Name: "option", Type: optionOf(fixed(movebind.U64))},
		{Name: "option_obj", JSONName: "optionObj", Type: optionOf(barType)},
		{Name: "option_none", JSONName: "optionNone", Type: optionOf(fixed(movebind.U64))},
		{Name: "balance_generic", JSONName: "balanceGeneric", Type: movebind.StructOf(sui.BalanceDef, param(0))},
		{Name: "option_generic", JSONName: "optionGeneric", Type: optionOf(param(1))},
		{Name: "option_generic_none", JSONName: "optionGenericNone", Type: optionOf(param(1))},
	},
	GoType: reflect.TypeOf((*WithSpecialTypes)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &WithSpecialTypes{
			Header:            h,
			id:                v[0].(movebind.Address),
			string:            v[1].(string),
			asciiString:       v[2].(string),
			url:               v[3].(string),
			idField:           v[4].(movebind.Address),
			uid:               v[5].(movebind.Address),
			balance:           v[6].(*sui.Balance),
			option:            v[7].(*uint64),
			optionObj:         v[8].(*Bar),
			optionNone:        v[9].(*uint64),
			balanceGeneric:    v[10].(*sui.Balance),
			optionGeneric:     v[11],
			optionGenericNone: v[12],
		}
	},
	Values: func(i movebind.Instance) []any {
		w := i.(*WithSpecialTypes)
		return []any{
			w.id, w.string, w.asciiString, w.url, w.idField, w.uid, w.balance,
			w.option, w.optionObj, w.optionNone, w.balanceGeneric, w.optionGeneric, w.optionGenericNone,
		}
	},
}

// NewWithSpecialTypes builds a WithSpecialTypes<t, u>; values are given in
// field declaration order.
func NewWithSpecialTypes(t, u movebind.TypeArg, values ...any) (*WithSpecialTypes, error) {
	return movebind.Build[*WithSpecialTypes](WithSpecialTypesDef,
		[]movebind.TypeArg{movebind.Phantom(t), u}, values...)
}

func (w *WithSpecialTypes) String() string      { return w.string }
func (w *WithSpecialTypes) URL() string         { return w.url }
func (w *WithSpecialTypes) Option() *uint64     { return w.option }
func (w *WithSpecialTypes) OptionGeneric() any  { return w.optionGeneric }
func (w *WithSpecialTypes) Balance() *sui.Balance { return w.balance }

func (w *WithSpecialTypes) ToJSONField() (map[string]any, error) {
	return WithSpecialTypesDef.ToJSONField(w)
}
func (w *WithSpecialTypes) ToJSON() (map[string]any, error) { return WithSpecialTypesDef.ToJSON(w) }

// WithSpecialTypesInVectors holds vectors of the special types.
type WithSpecialTypesInVectors struct {
	movebind.Header
	id            movebind.Address
	string        []string
	asciiString   []string
	idField       []movebind.Address
	bar           []*Bar
	option        []*uint64
	optionGeneric any
}

var WithSpecialTypesInVectorsDef = &movebind.StructDef{
	Name:       WithSpecialTypesInVectorsTypeName,
	TypeParams: []movebind.TypeParam{{Name: "T"}},
	Fields: []movebind.FieldDef{
		{Name: "id", Type: movebind.StructOf(sui.UID)},
		{Name: "string", Type: vec(movebind.StructOf(std.String))},
		{Name: "ascii_string", JSONName: "asciiString", Type: vec(movebind.StructOf(std.ASCIIString))},
		{Name: "id_field", JSONName: "idField", Type: vec(movebind.StructOf(sui.ID))},
		{Name: "bar", Type: vec(barType)},
		{Name: "option", Type: vec(optionOf(fixed(movebind.U64)))},
		{Name: "option_generic", JSONName: "optionGeneric", Type: vec(optionOf(param(0)))},
	},
	GoType: reflect.TypeOf((*WithSpecialTypesInVectors)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &WithSpecialTypesInVectors{
			Header:        h,
			id:            v[0].(movebind.Address),
			string:        v[1].([]string),
			asciiString:   v[2].([]string),
			idField:       v[3].([]movebind.Address),
			bar:           v[4].([]*Bar),
			option:        v[5].([]*uint64),
			optionGeneric: v[6],
		}
	},
	Values: func(i movebind.Instance) []any {
		w := i.(*WithSpecialTypesInVectors)
		return []any{w.id, w.string, w.asciiString, w.idField, w.bar, w.option, w.optionGeneric}
	},
}

func NewWithSpecialTypesInVectors(t movebind.TypeArg, values ...any) (*WithSpecialTypesInVectors, error) {
	return movebind.Build[*WithSpecialTypesInVectors](WithSpecialTypesInVectorsDef,
		[]movebind.TypeArg{t}, values...)
}

func (w *WithSpecialTypesInVectors) ToJSONField() (map[string]any, error) {
	return WithSpecialTypesInVectorsDef.ToJSONField(w)
}
func (w *WithSpecialTypesInVectors) ToJSON() (map[string]any, error) {
	return WithSpecialTypesInVectorsDef.ToJSON(w)
}
