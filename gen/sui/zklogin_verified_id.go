package sui

import (
	"reflect"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/gen/std"
)

const VerifiedIDTypeName = "0x2::zklogin_verified_id::VerifiedID"

// VerifiedID is 0x2::zklogin_verified_id::VerifiedID.
type VerifiedID struct {
	movebind.Header
	id            movebind.Address
	owner         movebind.Address
	keyClaimName  string
	keyClaimValue string
	issuer        string
	audience      string
}

var VerifiedIDDef = &movebind.StructDef{
	Name: VerifiedIDTypeName,
	Fields: []movebind.FieldDef{
		{Name: "id", Type: movebind.StructOf(UID)},
		{Name: "owner", Type: movebind.Fixed(movebind.AddressKind)},
		{Name: "key_claim_name", JSONName: "keyClaimName", Type: movebind.StructOf(std.String)},
		{Name: "key_claim_value", JSONName: "keyClaimValue", Type: movebind.StructOf(std.String)},
		{Name: "issuer", Type: movebind.StructOf(std.String)},
		{Name: "audience", Type: movebind.StructOf(std.String)},
	},
	GoType: reflect.TypeOf((*VerifiedID)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &VerifiedID{
			Header:        h,
			id:            v[0].(movebind.Address),
			owner:         v[1].(movebind.Address),
			keyClaimName:  v[2].(string),
			keyClaimValue: v[3].(string),
			issuer:        v[4].(string),
			audience:      v[5].(string),
		}
	},
	Values: func(i movebind.Instance) []any {
		x := i.(*VerifiedID)
		return []any{x.id, x.owner, x.keyClaimName, x.keyClaimValue, x.issuer, x.audience}
	},
}

func IsVerifiedID(typeString string) bool { return VerifiedIDDef.Is(typeString) }

func (x *VerifiedID) ID() movebind.Address    { return x.id }
func (x *VerifiedID) Owner() movebind.Address { return x.owner }
func (x *VerifiedID) KeyClaimName() string    { return x.keyClaimName }
func (x *VerifiedID) KeyClaimValue() string   { return x.keyClaimValue }
func (x *VerifiedID) Issuer() string          { return x.issuer }
func (x *VerifiedID) Audience() string        { return x.audience }

func (x *VerifiedID) ToJSONField() (map[string]any, error) { return VerifiedIDDef.ToJSONField(x) }
func (x *VerifiedID) ToJSON() (map[string]any, error)      { return VerifiedIDDef.ToJSON(x) }
