package movebind_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/movebind"
)

func TestParseAddress(t *testing.T) {
	a, err := movebind.ParseAddress("0x2")
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("0", 63)+"2", a.String())
	assert.Equal(t, "0x2", a.ShortString())
	assert.Equal(t, byte(2), a[31])

	b, err := movebind.ParseAddress("ABC")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", b.ShortString())

	long := "0x" + strings.Repeat("ab", 32)
	c, err := movebind.ParseAddress(long)
	require.NoError(t, err)
	assert.Equal(t, long, c.String())
	assert.Equal(t, long, c.ShortString())

	var zero movebind.Address
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0x0", zero.ShortString())
}

func TestParseAddress_Invalid(t *testing.T) {
	for _, in := range []string{"", "0x", "0xzz", "0x" + strings.Repeat("1", 65)} {
		_, err := movebind.ParseAddress(in)
		assert.True(t, movebind.HasCode(err, movebind.CodeInvalidFormat), "%q: %v", in, err)
	}
}

func TestAddress_Text(t *testing.T) {
	var a movebind.Address
	require.NoError(t, a.UnmarshalText([]byte("0xdee9")))
	out, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("0", 60)+"dee9", string(out))
}
