package sui

import (
	"reflect"

	"github.com/reoring/movebind"
)

const (
	TableTypeName    = "0x2::table::Table"
	TableVecTypeName = "0x2::table_vec::TableVec"
)

// Table is 0x2::table::Table<phantom K, phantom V>. Its entries live in
// dynamic fields of the table object.
type Table struct {
	movebind.Header
	id   movebind.Address
	size uint64
}

var TableDef = &movebind.StructDef{
	Name:       TableTypeName,
	TypeParams: []movebind.TypeParam{{Name: "K", Phantom: true}, {Name: "V", Phantom: true}},
	Fields: []movebind.FieldDef{
		{Name: "id", Type: movebind.StructOf(UID)},
		{Name: "size", Type: movebind.Fixed(movebind.U64)},
	},
	GoType: reflect.TypeOf((*Table)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &Table{Header: h, id: v[0].(movebind.Address), size: v[1].(uint64)}
	},
	Values: func(i movebind.Instance) []any {
		t := i.(*Table)
		return []any{t.id, t.size}
	},
}

func IsTable(typeString string) bool { return TableDef.Is(typeString) }

func (t *Table) ID() movebind.Address { return t.id }
func (t *Table) Size() uint64         { return t.size }

func (t *Table) ToJSONField() (map[string]any, error) { return TableDef.ToJSONField(t) }
func (t *Table) ToJSON() (map[string]any, error)      { return TableDef.ToJSON(t) }

// TableVec is 0x2::table_vec::TableVec<phantom Element>.
type TableVec struct {
	movebind.Header
	contents *Table
}

var TableVecDef = &movebind.StructDef{
	Name:       TableVecTypeName,
	TypeParams: []movebind.TypeParam{{Name: "Element", Phantom: true}},
	Fields: []movebind.FieldDef{
		{Name: "contents", Type: movebind.StructOf(TableDef, movebind.Fixed(movebind.U64), movebind.Param(0))},
	},
	GoType: reflect.TypeOf((*TableVec)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &TableVec{Header: h, contents: v[0].(*Table)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*TableVec).contents} },
}

func IsTableVec(typeString string) bool { return TableVecDef.Is(typeString) }

func (t *TableVec) Contents() *Table { return t.contents }

func (t *TableVec) ToJSONField() (map[string]any, error) { return TableVecDef.ToJSONField(t) }
func (t *TableVec) ToJSON() (map[string]any, error)      { return TableVecDef.ToJSON(t) }
