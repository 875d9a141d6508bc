package sui

import (
	"reflect"

	"github.com/reoring/movebind"
)

const (
	FieldTypeName   = "0x2::dynamic_field::Field"
	WrapperTypeName = "0x2::dynamic_object_field::Wrapper"
)

// Field is 0x2::dynamic_field::Field<Name, Value>, the object holding one
// dynamic field.
type Field struct {
	movebind.Header
	id    movebind.Address
	name  any
	value any
}

var FieldDef = &movebind.StructDef{
	Name:       FieldTypeName,
	TypeParams: []movebind.TypeParam{{Name: "Name"}, {Name: "Value"}},
	Fields: []movebind.FieldDef{
		{Name: "id", Type: movebind.StructOf(UID)},
		{Name: "name", Type: movebind.Param(0)},
		{Name: "value", Type: movebind.Param(1)},
	},
	GoType: reflect.TypeOf((*Field)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &Field{Header: h, id: v[0].(movebind.Address), name: v[1], value: v[2]}
	},
	Values: func(i movebind.Instance) []any {
		f := i.(*Field)
		return []any{f.id, f.name, f.value}
	},
}

func NewField(name, value movebind.TypeArg, id movebind.Address, n, v any) (*Field, error) {
	return movebind.Build[*Field](FieldDef, []movebind.TypeArg{name, value}, id, n, v)
}

func IsField(typeString string) bool { return FieldDef.Is(typeString) }

func (f *Field) ID() movebind.Address { return f.id }
func (f *Field) Name() any            { return f.name }
func (f *Field) Value() any           { return f.value }

func (f *Field) ToJSONField() (map[string]any, error) { return FieldDef.ToJSONField(f) }
func (f *Field) ToJSON() (map[string]any, error)      { return FieldDef.ToJSON(f) }

// Wrapper is 0x2::dynamic_object_field::Wrapper<Name>, the key type of
// dynamic object fields.
type Wrapper struct {
	movebind.Header
	name any
}

var WrapperDef = &movebind.StructDef{
	Name:       WrapperTypeName,
	TypeParams: []movebind.TypeParam{{Name: "Name"}},
	Fields: []movebind.FieldDef{
		{Name: "name", Type: movebind.Param(0)},
	},
	GoType: reflect.TypeOf((*Wrapper)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &Wrapper{Header: h, name: v[0]}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*Wrapper).name} },
}

func IsWrapper(typeString string) bool { return WrapperDef.Is(typeString) }

func (w *Wrapper) Name() any { return w.name }

func (w *Wrapper) ToJSONField() (map[string]any, error) { return WrapperDef.ToJSONField(w) }
func (w *Wrapper) ToJSON() (map[string]any, error)      { return WrapperDef.ToJSON(w) }
