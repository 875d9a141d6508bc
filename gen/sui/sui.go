package sui

import (
	"reflect"

	"github.com/reoring/movebind"
)

const SUITypeName = "0x2::sui::SUI"

// SUI is the one-time witness of the native coin.
type SUI struct {
	movebind.Header
	dummyField bool
}

var SUIDef = &movebind.StructDef{
	Name: SUITypeName,
	Fields: []movebind.FieldDef{
		{Name: "dummy_field", JSONName: "dummyField", Type: movebind.Fixed(movebind.Bool)},
	},
	GoType: reflect.TypeOf((*SUI)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &SUI{Header: h, dummyField: v[0].(bool)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*SUI).dummyField} },
}

// SUIType is the reified 0x2::sui::SUI, the usual coin type argument.
func SUIType() *movebind.Reified { return SUIDef.MustReified() }

func IsSUI(typeString string) bool { return SUIDef.Is(typeString) }

func (s *SUI) DummyField() bool { return s.dummyField }

func (s *SUI) ToJSONField() (map[string]any, error) { return SUIDef.ToJSONField(s) }
func (s *SUI) ToJSON() (map[string]any, error)      { return SUIDef.ToJSON(s) }
