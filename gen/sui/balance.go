package sui

import (
	"reflect"

	"github.com/reoring/movebind"
)

const (
	BalanceTypeName = "0x2::balance::Balance"
	SupplyTypeName  = "0x2::balance::Supply"
)

// Balance is 0x2::balance::Balance<phantom T>.
type Balance struct {
	movebind.Header
	value uint64
}

var BalanceDef = &movebind.StructDef{
	Name:       BalanceTypeName,
	TypeParams: []movebind.TypeParam{{Name: "T", Phantom: true}},
	Fields: []movebind.FieldDef{
		{Name: "value", Type: movebind.Fixed(movebind.U64)},
	},
	GoType: reflect.TypeOf((*Balance)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &Balance{Header: h, value: v[0].(uint64)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*Balance).value} },
}

// The hook is assigned here because it refers back to BalanceDef.
func init() { BalanceDef.DecodeFieldsWithTypes = balanceFromFieldsWithTypes }

// The query API usually flattens a balance to its value, but the full
// {"type", "fields"} item is accepted too and its type is checked.
func balanceFromFieldsWithTypes(r *movebind.Reified, item any) (any, error) {
	switch item.(type) {
	case map[string]any, movebind.FieldsWithTypes, *movebind.FieldsWithTypes:
		fwt, err := movebind.AsFieldsWithTypes(item)
		if err != nil {
			return nil, err
		}
		if !IsBalance(fwt.Type) {
			return nil, movebind.NewIssue(movebind.CodeTypeMismatch, "not a %s type: %s", BalanceTypeName, fwt.Type)
		}
		if err := movebind.AssertFieldsWithTypesArgsMatch(fwt, r.TypeArgs); err != nil {
			return nil, err
		}
		v, ok := fwt.Fields["value"]
		if !ok {
			return nil, movebind.AtField(
				movebind.NewIssue(movebind.CodeMissingField, "missing field value of %s", r.FullTypeName), "value")
		}
		n, err := movebind.DecodeFromFieldsWithTypes(movebind.U64, v)
		if err != nil {
			return nil, movebind.AtField(err, "value")
		}
		return r.FromFields(map[string]any{"value": n})
	}
	v, err := movebind.DecodeFromFieldsWithTypes(movebind.U64, item)
	if err != nil {
		return nil, err
	}
	return r.FromFields(map[string]any{"value": v})
}

func NewBalance(t movebind.TypeArg, value uint64) (*Balance, error) {
	return movebind.Build[*Balance](BalanceDef, []movebind.TypeArg{movebind.Phantom(t)}, value)
}

func IsBalance(typeString string) bool { return BalanceDef.Is(typeString) }

func (b *Balance) Value() uint64 { return b.value }

func (b *Balance) ToJSONField() (map[string]any, error) { return BalanceDef.ToJSONField(b) }
func (b *Balance) ToJSON() (map[string]any, error)      { return BalanceDef.ToJSON(b) }

// Supply is 0x2::balance::Supply<phantom T>.
type Supply struct {
	movebind.Header
	value uint64
}

var SupplyDef = &movebind.StructDef{
	Name:       SupplyTypeName,
	TypeParams: []movebind.TypeParam{{Name: "T", Phantom: true}},
	Fields: []movebind.FieldDef{
		{Name: "value", Type: movebind.Fixed(movebind.U64)},
	},
	GoType: reflect.TypeOf((*Supply)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &Supply{Header: h, value: v[0].(uint64)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*Supply).value} },
}

func NewSupply(t movebind.TypeArg, value uint64) (*Supply, error) {
	return movebind.Build[*Supply](SupplyDef, []movebind.TypeArg{movebind.Phantom(t)}, value)
}

func IsSupply(typeString string) bool { return SupplyDef.Is(typeString) }

func (s *Supply) Value() uint64 { return s.value }

func (s *Supply) ToJSONField() (map[string]any, error) { return SupplyDef.ToJSONField(s) }
func (s *Supply) ToJSON() (map[string]any, error)      { return SupplyDef.ToJSON(s) }
