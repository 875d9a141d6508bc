package movebind_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/internal/fixture"
)

func TestParseJSON_KeepsLargeNumbers(t *testing.T) {
	v, err := movebind.ParseJSON([]byte(`{"n": 18446744073709551615}`), movebind.DefaultJSONOptions())
	require.NoError(t, err)
	assert.Equal(t, json.Number("18446744073709551615"), v.(map[string]any)["n"])
}

func TestParseJSON_DuplicateKeys(t *testing.T) {
	js := []byte(`{"a": {"b": 1, "b": 2}}`)

	_, err := movebind.ParseJSON(js, movebind.DefaultJSONOptions())
	require.Error(t, err)
	iss, ok := movebind.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, movebind.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, "/a/b", iss[0].Path)

	v, err := movebind.ParseJSON(js, movebind.JSONOptions{})
	require.NoError(t, err)
	assert.Equal(t, json.Number("2"), v.(map[string]any)["a"].(map[string]any)["b"])
}

func TestParseJSON_MaxDepth(t *testing.T) {
	_, err := movebind.ParseJSON([]byte(`[[[1]]]`), movebind.JSONOptions{MaxDepth: 2})
	assert.True(t, movebind.HasCode(err, movebind.CodeTruncated))

	_, err = movebind.ParseJSON([]byte(`{"a": `), movebind.DefaultJSONOptions())
	assert.True(t, movebind.HasCode(err, movebind.CodeParseError))
}

func TestFromJSONBytes_RejectsDuplicateFields(t *testing.T) {
	r := fixture.BarDef.MustReified()
	_, err := r.FromJSONBytes([]byte(`{"$typeName": "0xcafe::fixture::Bar", "value": "1", "value": "2"}`),
		movebind.DefaultJSONOptions())
	assert.True(t, movebind.HasCode(err, movebind.CodeDuplicateKey))

	v, err := r.FromJSONBytes([]byte(`{"$typeName": "0xcafe::fixture::Bar", "value": "1"}`),
		movebind.DefaultJSONOptions())
	require.NoError(t, err)
	assert.Equal(t, fixture.NewBar(1), v)
}
