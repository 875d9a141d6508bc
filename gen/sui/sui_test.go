package sui_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/gen"
	"github.com/reoring/movebind/gen/sui"
)

func str(s string) []byte { return append([]byte{byte(len(s))}, s...) }

func TestRegisterAll_EveryTypeResolves(t *testing.T) {
	l := gen.NewLoader()
	require.Equal(t, 21, l.Len())
	for _, name := range l.Names() {
		cls, ok := l.Lookup(name)
		require.True(t, ok, name)
		args := make([]string, cls.NumTypeParams())
		for i := range args {
			args[i] = "u64"
		}
		typ := movebind.ComposeType(name, args...)
		t.Run(typ, func(t *testing.T) {
			r, err := l.ReifiedStruct(typ)
			require.NoError(t, err)
			assert.Equal(t, typ, r.FullTypeName)
		})
	}
}

func TestCoinMetadata_BCS(t *testing.T) {
	id := movebind.MustParseAddress("0x7")
	data := append([]byte{}, id[:]...)
	data = append(data, 9)
	data = append(data, str("Sui")...)
	data = append(data, str("SUI")...)
	data = append(data, str("")...)
	data = append(data, 1)
	data = append(data, str("https://sui.io/icon.png")...)

	m, err := movebind.FromBCS[*sui.CoinMetadata](sui.CoinMetadataDef, data, sui.SUIType())
	require.NoError(t, err)
	assert.Equal(t, id, m.ID())
	assert.Equal(t, uint8(9), m.Decimals())
	assert.Equal(t, "Sui", m.Name())
	assert.Equal(t, "SUI", m.Symbol())
	assert.Empty(t, m.Description())
	icon, ok := m.IconURL()
	assert.True(t, ok)
	assert.Equal(t, "https://sui.io/icon.png", icon)

	doc, err := m.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, "https://sui.io/icon.png", doc["iconUrl"])
	assert.Equal(t, []string{"0x2::sui::SUI"}, doc["$typeArgs"])

	r := sui.CoinMetadataDef.MustReified(sui.SUIType())
	out, err := r.ToBCS(m)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	data[len(data)-len("https://sui.io/icon.png")-2] = 0
	_, err = movebind.FromBCS[*sui.CoinMetadata](sui.CoinMetadataDef, data, sui.SUIType())
	assert.True(t, movebind.HasCode(err, movebind.CodeEncoding), "none followed by leftover bytes")
}

func TestTableVec_NestsTable(t *testing.T) {
	l := gen.NewLoader()
	r, err := l.ReifiedStruct("0x2::table_vec::TableVec<0x2::coin::Coin<0x2::sui::SUI>>")
	require.NoError(t, err)

	id := movebind.MustParseAddress("0xab")
	data := binary.LittleEndian.AppendUint64(append([]byte{}, id[:]...), 3)
	v, err := r.FromBCS(data)
	require.NoError(t, err)
	tv := v.(*sui.TableVec)
	assert.Equal(t, uint64(3), tv.Contents().Size())
	assert.Equal(t, id, tv.Contents().ID())
	assert.Equal(t, "0x2::table::Table<u64, 0x2::coin::Coin<0x2::sui::SUI>>", tv.Contents().FullTypeName())
}

func TestDynamicField_StringValue(t *testing.T) {
	l := gen.NewLoader()
	typ := "0x2::dynamic_field::Field<u64, 0x1::string::String>"
	r, err := l.ReifiedStruct(typ)
	require.NoError(t, err)

	id := movebind.MustParseAddress("0x3")
	data := binary.LittleEndian.AppendUint64(append([]byte{}, id[:]...), 42)
	data = append(data, str("answer")...)
	v, err := r.FromBCS(data)
	require.NoError(t, err)

	stringT, err := l.Reified("0x1::string::String")
	require.NoError(t, err)
	want, err := sui.NewField(movebind.U64, stringT, id, uint64(42), "answer")
	require.NoError(t, err)
	assert.Equal(t, want, v)
	assert.True(t, sui.IsField(typ))
	assert.False(t, sui.IsField("0x2::dynamic_object_field::Wrapper<u64>"))

	item := map[string]any{
		"type": typ,
		"fields": map[string]any{
			"id":    map[string]any{"id": id.String()},
			"name":  "42",
			"value": "answer",
		},
	}
	fromQuery, err := r.FromFieldsWithTypes(item)
	require.NoError(t, err)
	assert.Equal(t, want, fromQuery)
}

func TestCoin_Constructors(t *testing.T) {
	bal, err := sui.NewBalance(sui.SUIType(), 5)
	require.NoError(t, err)
	c, err := sui.NewCoin(sui.SUIType(), movebind.MustParseAddress("0x1"), bal)
	require.NoError(t, err)
	assert.Equal(t, "0x2::coin::Coin<0x2::sui::SUI>", c.FullTypeName())
	assert.True(t, sui.IsCoin(c.FullTypeName()))
	assert.Equal(t, uint64(5), c.Balance().Value())
	assert.Equal(t, "0x2::balance::Balance<0x2::sui::SUI>", c.Balance().FullTypeName())
}

func TestBalance_FromFieldsWithTypes(t *testing.T) {
	l := gen.NewLoader()
	r, err := l.ReifiedStruct("0x2::balance::Balance<0x2::sui::SUI>")
	require.NoError(t, err)

	decode := func(t *testing.T, item any) uint64 {
		t.Helper()
		v, err := r.FromFieldsWithTypes(item)
		require.NoError(t, err)
		return v.(*sui.Balance).Value()
	}
	object := func(typ string, fields map[string]any) map[string]any {
		return map[string]any{"type": typ, "fields": fields}
	}

	t.Run("flattened", func(t *testing.T) {
		assert.Equal(t, uint64(5), decode(t, "5"))
	})
	t.Run("object", func(t *testing.T) {
		item := object("0x2::balance::Balance<0x2::sui::SUI>", map[string]any{"value": "5"})
		assert.Equal(t, uint64(5), decode(t, item))
	})

	for _, tc := range []struct {
		name string
		item any
		code string
		path string
	}{
		{"wrong type arg", object("0x2::balance::Balance<0x2::coin::COIN>", map[string]any{"value": "5"}), movebind.CodeTypeMismatch, ""},
		{"not a balance", object("0x2::balance::Supply<0x2::sui::SUI>", map[string]any{"value": "5"}), movebind.CodeTypeMismatch, ""},
		{"missing value", object("0x2::balance::Balance<0x2::sui::SUI>", map[string]any{}), movebind.CodeMissingField, "/value"},
		{"bad value", object("0x2::balance::Balance<0x2::sui::SUI>", map[string]any{"value": "x"}), "", "/value"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.FromFieldsWithTypes(tc.item)
			require.Error(t, err)
			if tc.code != "" {
				assert.True(t, movebind.HasCode(err, tc.code), err.Error())
			}
			if tc.path != "" {
				iss, ok := movebind.AsIssues(err)
				require.True(t, ok)
				assert.Equal(t, tc.path, iss[0].Path)
			}
		})
	}
}
