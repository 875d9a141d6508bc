// Package sui binds types from the Sui framework (0x2).
package sui

import (
	"reflect"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/bcs"
)

const (
	IDTypeName  = "0x2::object::ID"
	UIDTypeName = "0x2::object::UID"
)

var addressGoType = reflect.TypeOf(movebind.Address{})

// IDLayout is struct ID { bytes: address }.
func IDLayout() bcs.Layout {
	return bcs.Struct(IDTypeName, bcs.Field{Name: "bytes", Layout: bcs.Address()})
}

// UIDLayout is struct UID { id: ID }.
func UIDLayout() bcs.Layout {
	return bcs.Struct(UIDTypeName, bcs.Field{Name: "id", Layout: IDLayout()})
}

// ID is 0x2::object::ID, decoded as the address it wraps.
var ID = &movebind.SpecialClass{
	Name: IDTypeName,
	Build: func([]movebind.TypeArg) (bcs.Layout, movebind.SpecialCodec, error) {
		return IDLayout(), movebind.SpecialCodec{
			GoType:              addressGoType,
			FromFields:          idFromFields,
			FromFieldsWithTypes: addressFrom,
			FromJSONField:       addressFrom,
			ToFields: func(v any) (any, error) {
				return idFields(v.(movebind.Address)), nil
			},
		}, nil
	},
}

// UID is 0x2::object::UID, decoded as the object address.
var UID = &movebind.SpecialClass{
	Name: UIDTypeName,
	Build: func([]movebind.TypeArg) (bcs.Layout, movebind.SpecialCodec, error) {
		return UIDLayout(), movebind.SpecialCodec{
			GoType: addressGoType,
			FromFields: func(raw any) (any, error) {
				m, err := movebind.FieldMap(raw, "id")
				if err != nil {
					return nil, err
				}
				return idFromFields(m["id"])
			},
			// The query API shows a UID as {"id": "0x..."}.
			FromFieldsWithTypes: func(item any) (any, error) {
				if m, ok := item.(map[string]any); ok {
					return addressFrom(m["id"])
				}
				return addressFrom(item)
			},
			FromJSONField: addressFrom,
			ToFields: func(v any) (any, error) {
				return map[string]any{"id": idFields(v.(movebind.Address))}, nil
			},
		}, nil
	},
}

func idFromFields(raw any) (any, error) {
	m, err := movebind.FieldMap(raw, "bytes")
	if err != nil {
		return nil, err
	}
	return movebind.DecodeFromFields(movebind.AddressKind, m["bytes"])
}

func idFields(a movebind.Address) map[string]any {
	return map[string]any{"bytes": [movebind.AddressLength]byte(a)}
}

func addressFrom(v any) (any, error) {
	return movebind.DecodeFromJSONField(movebind.AddressKind, v)
}
