package bcs_test

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/movebind/bcs"
)

func TestPrimitives(t *testing.T) {
	cases := []struct {
		name   string
		layout bcs.Layout
		value  any
		want   []byte
	}{
		{"bool", bcs.Bool(), true, []byte{1}},
		{"u8", bcs.U8(), uint8(0xff), []byte{0xff}},
		{"u16", bcs.U16(), uint16(0x0102), []byte{0x02, 0x01}},
		{"u32", bcs.U32(), uint32(0x01020304), []byte{0x04, 0x03, 0x02, 0x01}},
		{"u64", bcs.U64(), uint64(1), []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{"u128", bcs.U128(), *uint256.NewInt(0x0102), append([]byte{0x02, 0x01}, make([]byte, 14)...)},
		{"u256", bcs.U256(), *uint256.NewInt(7), append([]byte{7}, make([]byte, 31)...)},
		{"address", bcs.Address(), [32]byte{31: 0x02}, append(make([]byte, 31), 0x02)},
		{"bytes", bcs.Bytes(), []byte{1, 2, 3}, []byte{3, 1, 2, 3}},
		{"vector<u16>", bcs.Vector(bcs.U16()), []any{uint16(1), uint16(2)}, []byte{2, 1, 0, 2, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.layout.Name())

			got, err := bcs.Marshal(tc.layout, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			back, err := bcs.Unmarshal(tc.layout, got)
			require.NoError(t, err)
			assert.Equal(t, tc.value, back)
		})
	}
}

func TestU128_RejectsWideValues(t *testing.T) {
	wide := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	_, err := bcs.Marshal(bcs.U128(), *wide)
	assert.Error(t, err)
}

func TestAddress_AcceptsNamedArrays(t *testing.T) {
	type addr [32]byte
	got, err := bcs.Marshal(bcs.Address(), addr{0: 0xaa})
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0xaa}, make([]byte, 31)...), got)
}

func TestVectorOfU8IsBytes(t *testing.T) {
	assert.Equal(t, bcs.Bytes(), bcs.Vector(bcs.U8()))
}

func TestStruct(t *testing.T) {
	inner := bcs.Struct("0x1::m::Inner", bcs.Field{Name: "flag", Layout: bcs.Bool()})
	l := bcs.Struct("0x1::m::Outer",
		bcs.Field{Name: "n", Layout: bcs.U8()},
		bcs.Field{Name: "data", Layout: bcs.Bytes()},
		bcs.Field{Name: "items", Layout: bcs.Vector(inner)},
	)
	v := map[string]any{
		"n":     uint8(9),
		"data":  []byte{0xab},
		"items": []any{map[string]any{"flag": true}, map[string]any{"flag": false}},
	}
	got, err := bcs.Marshal(l, v)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 1, 0xab, 2, 1, 0}, got)

	back, err := bcs.Unmarshal(l, got)
	require.NoError(t, err)
	assert.Equal(t, v, back)

	assert.Equal(t, "0x1::m::Outer { n: u8, data: vector<u8>, items: vector<0x1::m::Inner> }", bcs.Describe(l))
	fields := bcs.Fields(l)
	require.Len(t, fields, 3)
	assert.Equal(t, "items", fields[2].Name)
	assert.Nil(t, bcs.Fields(bcs.U8()))

	_, err = bcs.Marshal(l, map[string]any{"n": uint8(1)})
	assert.Error(t, err)
}

func TestUnmarshal_Errors(t *testing.T) {
	_, err := bcs.Unmarshal(bcs.U16(), []byte{1, 0, 0})
	assert.True(t, errors.Is(err, bcs.ErrTrailingBytes))

	_, err = bcs.Unmarshal(bcs.U64(), []byte{1, 2})
	assert.Error(t, err)

	_, err = bcs.Marshal(bcs.U64(), 1)
	assert.Error(t, err)
}

func TestUnmarshal_LengthPrefixBeyondInput(t *testing.T) {
	huge := []byte{0xff, 0xff, 0xff, 0xff, 0x07}
	cases := []struct {
		name   string
		layout bcs.Layout
		data   []byte
	}{
		{"bytes", bcs.Bytes(), huge},
		{"vector", bcs.Vector(bcs.U64()), huge},
		{"struct field", bcs.Struct("S",
			bcs.Field{Name: "a", Layout: bcs.U8()},
			bcs.Field{Name: "b", Layout: bcs.Bytes()}), append([]byte{1}, huge...)},
		{"vector element", bcs.Vector(bcs.Bytes()), append([]byte{1}, huge...)},
		{"one byte short", bcs.Bytes(), []byte{4, 1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bcs.Unmarshal(tc.layout, tc.data)
			assert.ErrorIs(t, err, bcs.ErrTruncated)
		})
	}

	got, err := bcs.Unmarshal(bcs.Bytes(), []byte{3, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}
