package movebind_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/gen/sui"
	"github.com/reoring/movebind/internal/fixture"
)

func TestLoader_Primitives(t *testing.T) {
	l := newLoader(t)
	for _, name := range []string{"bool", "u8", "u16", "u32", "u64", "u128", "u256", "address"} {
		got, err := l.Reified(name)
		require.NoError(t, err)
		assert.Equal(t, name, got.TypeString())
	}

	v, err := l.Reified("vector<vector<u8>>")
	require.NoError(t, err)
	assert.Equal(t, movebind.Vector(movebind.Vector(movebind.U8)), v)
	assert.Equal(t, reflect.TypeOf([][]byte{}), movebind.GoTypeOf(v))

	_, err = l.Reified("u8<u16>")
	assert.True(t, movebind.HasCode(err, movebind.CodeArityMismatch))
}

func TestLoader_NestedGenerics(t *testing.T) {
	l := newLoader(t)
	r, err := l.ReifiedStruct("0x2::priority_queue::PriorityQueue<0x2::coin::Coin<0x2::sui::SUI>>")
	require.NoError(t, err)
	assert.Equal(t, "0x2::priority_queue::PriorityQueue", r.TypeName)
	assert.Equal(t, "0x2::priority_queue::PriorityQueue<0x2::coin::Coin<0x2::sui::SUI>>", r.FullTypeName)
	assert.Equal(t, reflect.TypeOf((*sui.PriorityQueue)(nil)), r.GoType())

	coin, ok := r.TypeArgs[0].(*movebind.Reified)
	require.True(t, ok)
	assert.Equal(t, "0x2::coin::Coin<0x2::sui::SUI>", coin.FullTypeName)
	assert.Equal(t, movebind.PhantomArg{Type: "0x2::sui::SUI"}, coin.TypeArgs[0])
}

func TestLoader_FullTypeNameNormalized(t *testing.T) {
	l := newLoader(t)
	for _, in := range []string{
		"0x2::coin::Coin<0x2::sui::SUI>",
		"0x0000000000000000000000000000000000000000000000000000000000000002::coin::Coin<0x2::sui::SUI>",
		"0x2::coin::Coin< 0x00000002::sui::SUI >",
	} {
		r, err := l.ReifiedStruct(in)
		require.NoError(t, err, in)
		assert.Equal(t, "0x2::coin::Coin<0x2::sui::SUI>", r.FullTypeName, in)
	}

	r, err := l.ReifiedStruct("0xcafe::fixture::WithTwoGenerics<0xcafe::fixture::Bar,vector<u8>>")
	require.NoError(t, err)
	assert.Equal(t, "0xcafe::fixture::WithTwoGenerics<0xcafe::fixture::Bar, vector<u8>>", r.FullTypeName)
	assert.Equal(t, []string{"0xcafe::fixture::Bar", "vector<u8>"}, r.TypeArgStrings())
}

func TestLoader_UnknownType(t *testing.T) {
	l := newLoader(t)
	_, err := l.Reified("0x2::nope::Nope")
	require.Error(t, err)
	assert.True(t, movebind.HasCode(err, movebind.CodeUnknownType))
	assert.Contains(t, err.Error(), "Unknown type 0x2::nope::Nope")

	// Non-phantom positions need a decodable type.
	_, err = l.Reified("0x2::priority_queue::PriorityQueue<0xdead::token::TOKEN>")
	assert.True(t, movebind.HasCode(err, movebind.CodeUnknownType))
}

func TestLoader_PhantomPositionRequiresKnownType(t *testing.T) {
	l := newLoader(t)
	_, err := l.Reified("0x2::coin::Coin<0x9::nope::Nope>")
	require.Error(t, err)
	assert.True(t, movebind.HasCode(err, movebind.CodeUnknownType))
	assert.Contains(t, err.Error(), "Unknown type 0x9::nope::Nope")

	_, err = l.Reified("0x2::coin::Coin<0x2::coin::Coin<0x9::nope::Nope>>")
	assert.True(t, movebind.HasCode(err, movebind.CodeUnknownType))
}

func TestLoader_LenientPhantoms(t *testing.T) {
	l := newLoader(t, movebind.WithLenientPhantoms())
	r, err := l.ReifiedStruct("0x2::coin::Coin<0x000dead::token::TOKEN>")
	require.NoError(t, err)
	assert.Equal(t, "0x2::coin::Coin<0xdead::token::TOKEN>", r.FullTypeName)
	assert.Equal(t, movebind.PhantomArg{Type: "0xdead::token::TOKEN"}, r.TypeArgs[0])

	// Non-phantom positions still need a decodable type.
	_, err = l.Reified("0x2::priority_queue::PriorityQueue<0xdead::token::TOKEN>")
	assert.True(t, movebind.HasCode(err, movebind.CodeUnknownType))
}

func TestLoader_ArityMismatch(t *testing.T) {
	l := newLoader(t)

	_, err := l.Reified("0x2::coin::Coin")
	require.Error(t, err)
	assert.True(t, movebind.HasCode(err, movebind.CodeArityMismatch))
	assert.Contains(t, err.Error(), "Type 0x2::coin::Coin expects 1 type arguments, but got 0")

	_, err = l.Reified("0x2::coin::Coin<0x2::sui::SUI, u8>")
	assert.True(t, movebind.HasCode(err, movebind.CodeArityMismatch))

	_, err = l.Reified("0xcafe::fixture::Bar<u8>")
	assert.True(t, movebind.HasCode(err, movebind.CodeArityMismatch))

	_, err = fixture.FooDef.Reified()
	assert.True(t, movebind.HasCode(err, movebind.CodeArityMismatch))
}

func TestLoader_ReifiedStructRejectsNonStruct(t *testing.T) {
	l := newLoader(t)
	_, err := l.ReifiedStruct("vector<u64>")
	assert.True(t, movebind.HasCode(err, movebind.CodeTypeMismatch))
}

func TestLoader_ReifiedWithParams(t *testing.T) {
	l := newLoader(t)
	got, err := l.ReifiedWith("vector<T>", map[string]movebind.TypeArg{"T": movebind.U64})
	require.NoError(t, err)
	assert.Equal(t, movebind.Vector(movebind.U64), got)

	bar := fixture.BarDef.MustReified()
	got, err = l.ReifiedWith("0xcafe::fixture::WithTwoGenerics<K, u8>", map[string]movebind.TypeArg{"K": bar})
	require.NoError(t, err)
	assert.Equal(t, "0xcafe::fixture::WithTwoGenerics<0xcafe::fixture::Bar, u8>", got.TypeString())
}

func TestLoader_Registry(t *testing.T) {
	l := newLoader(t)
	names := l.Names()
	assert.Len(t, names, l.Len())
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "0x2::coin::Coin")
	assert.Contains(t, names, "0x1::option::Option")
	assert.Contains(t, names, fixture.StructFromOtherModuleTypeName)

	cls, ok := l.Lookup("0x0000000000000000000000000000000000000000000000000000000000000002::coin::Coin<0x2::sui::SUI>")
	require.True(t, ok)
	assert.Equal(t, 1, cls.NumTypeParams())
	assert.True(t, cls.IsPhantomParam(0))

	_, ok = l.Lookup("0x2::coin::Nope")
	assert.False(t, ok)
}

type barV2 struct {
	movebind.Header
	value uint8
}

var barV2Def = &movebind.StructDef{
	Name:   fixture.BarTypeName,
	Fields: []movebind.FieldDef{{Name: "value", Type: movebind.Fixed(movebind.U8)}},
	GoType: reflect.TypeOf((*barV2)(nil)),
	New: func(h movebind.Header, v []any) movebind.Instance {
		return &barV2{Header: h, value: v[0].(uint8)}
	},
	Values: func(i movebind.Instance) []any { return []any{i.(*barV2).value} },
}

func (b *barV2) ToJSONField() (map[string]any, error) { return barV2Def.ToJSONField(b) }
func (b *barV2) ToJSON() (map[string]any, error)      { return barV2Def.ToJSON(b) }

func TestLoader_RegisterReplacesAndPurgesCache(t *testing.T) {
	l := newLoader(t, movebind.WithCache(16))

	before, err := l.ReifiedStruct(fixture.BarTypeName)
	require.NoError(t, err)
	again, err := l.ReifiedStruct(fixture.BarTypeName)
	require.NoError(t, err)
	assert.Same(t, before, again, "second resolution should come from the cache")

	l.Register(barV2Def)
	after, err := l.ReifiedStruct(fixture.BarTypeName)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf((*barV2)(nil)), after.GoType())

	v, err := after.FromBCS([]byte{0x2a})
	require.NoError(t, err)
	assert.Equal(t, uint8(42), v.(*barV2).value)
}
