package sui

import (
	"reflect"

	"github.com/reoring/movebind"
)

const BCSTypeName = "0x2::bcs::BCS"

// BCS is 0x2::bcs::BCS, a cursor over serialized bytes.
type BCS struct {
	movebind.Header
	bytes []byte
}

var BCSDef = &movebind.StructDef{
	Name: BCSTypeName,
	Fields: []movebind.FieldDef{
		{Name: "bytes", Type: movebind.Fixed(movebind.Vector(movebind.U8))},
	},
	GoType: reflect.TypeOf((*BCS)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &BCS{Header: h, bytes: v[0].([]byte)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*BCS).bytes} },
}

func NewBCS(b []byte) (*BCS, error) {
	return movebind.Build[*BCS](BCSDef, nil, b)
}

func IsBCS(typeString string) bool { return BCSDef.Is(typeString) }

// Bytes returns the remaining bytes. The slice must not be modified.
func (b *BCS) Bytes() []byte { return b.bytes }

func (b *BCS) ToJSONField() (map[string]any, error) { return BCSDef.ToJSONField(b) }
func (b *BCS) ToJSON() (map[string]any, error)      { return BCSDef.ToJSON(b) }
