package movebind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/movebind"
)

func TestParseTypeName(t *testing.T) {
	cases := []struct {
		in   string
		name string
		args []string
	}{
		{"u64", "u64", nil},
		{"0x2::sui::SUI", "0x2::sui::SUI", nil},
		{"vector<u8>", "vector", []string{"u8"}},
		{
			"0x2::table::Table<u64, vector<0x2::coin::Coin<0x2::sui::SUI>>>",
			"0x2::table::Table",
			[]string{"u64", "vector<0x2::coin::Coin<0x2::sui::SUI>>"},
		},
		{
			"0x2::a::B<0x2::c::D<u8, u16>,u32>",
			"0x2::a::B",
			[]string{"0x2::c::D<u8, u16>", "u32"},
		},
		{"  0x1::option::Option< bool >  ", "0x1::option::Option", []string{"bool"}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			name, args, err := movebind.ParseTypeName(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.name, name)
			assert.Equal(t, tc.args, args)
		})
	}
}

func TestParseTypeName_Errors(t *testing.T) {
	cases := map[string]string{
		"":                movebind.CodeParseError,
		"Foo<u8":          movebind.CodeParseError,
		"Foo<u8>>":        movebind.CodeParseError,
		"Foo<u8>x":        movebind.CodeParseError,
		"Foo<>":           movebind.CodeParseError,
		"Foo<u8,>":        movebind.CodeParseError,
		"<u8>":            movebind.CodeParseError,
		"u8>":             movebind.CodeParseError,
		"vector":          movebind.CodeArityMismatch,
		"vector<u8, u16>": movebind.CodeArityMismatch,
	}
	for in, code := range cases {
		t.Run(in, func(t *testing.T) {
			_, _, err := movebind.ParseTypeName(in)
			require.Error(t, err)
			assert.True(t, movebind.HasCode(err, code), "want %s, got %v", code, err)
		})
	}
}

func TestCompressType(t *testing.T) {
	cases := map[string]string{
		"0x0000000000000000000000000000000000000000000000000000000000000002::coin::Coin<0x2::sui::SUI>": "0x2::coin::Coin<0x2::sui::SUI>",
		"0x00000002::coin::Coin<0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI>": "0x2::coin::Coin<0x2::sui::SUI>",
		"0xABC::m::T<u8,u16>":        "0xabc::m::T<u8, u16>",
		"vector< vector<u8> >":       "vector<vector<u8>>",
		"0x2::m :: T":                "0x2::m::T",
		"0x0::m::T<0x1::a::B<bool>>": "0x0::m::T<0x1::a::B<bool>>",
	}
	for in, want := range cases {
		got, err := movebind.CompressType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)

		again, err := movebind.CompressType(got)
		require.NoError(t, err)
		assert.Equal(t, got, again, "canonical form must be stable")
	}

	_, err := movebind.CompressType("0xzz::m::T")
	assert.True(t, movebind.HasCode(err, movebind.CodeInvalidFormat))
}

func TestComposeType(t *testing.T) {
	assert.Equal(t, "0x2::coin::Coin", movebind.ComposeType("0x2::coin::Coin"))
	assert.Equal(t, "0x2::a::B<u8, vector<u16>>", movebind.ComposeType("0x2::a::B", "u8", "vector<u16>"))
}
