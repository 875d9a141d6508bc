package main

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/i18n"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeOutput(t *testing.T, out string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc), out)
	return doc
}

func coinBCS() (movebind.Address, []byte) {
	id := movebind.MustParseAddress("0x5")
	return id, binary.LittleEndian.AppendUint64(append([]byte{}, id[:]...), 100)
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "", "parse", "0x0002::coin::Coin< 0x00002::sui::SUI >")
	require.NoError(t, err)
	doc := decodeOutput(t, out)
	assert.Equal(t, "0x2::coin::Coin<0x2::sui::SUI>", doc["canonical"])
	assert.Len(t, doc["typeArgs"], 1)

	_, err = run(t, "", "parse", "Foo<u8")
	assert.True(t, movebind.HasCode(err, movebind.CodeParseError))
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "", "resolve", "vector<u64>")
	require.NoError(t, err)
	doc := decodeOutput(t, out)
	assert.Equal(t, "vector<u64>", doc["type"])
	assert.Equal(t, "[]uint64", doc["goType"])

	out, err = run(t, "", "resolve", "0x2::coin::Coin<0x2::sui::SUI>")
	require.NoError(t, err)
	doc = decodeOutput(t, out)
	assert.Equal(t, "0x2::coin::Coin", doc["typeName"])
	assert.Equal(t, []any{"0x2::sui::SUI"}, doc["typeArgs"])
	assert.NotEmpty(t, doc["layout"])

	_, err = run(t, "", "resolve", "0x2::nope::Nope")
	assert.True(t, movebind.HasCode(err, movebind.CodeUnknownType))

	_, err = run(t, "", "resolve", "0x2::coin::Coin<0x9::nope::Nope>")
	assert.True(t, movebind.HasCode(err, movebind.CodeUnknownType))

	out, err = run(t, "", "--lenient-phantoms", "resolve", "0x2::coin::Coin<0x9::nope::Nope>")
	require.NoError(t, err)
	assert.Equal(t, []any{"0x9::nope::Nope"}, decodeOutput(t, out)["typeArgs"])
}

func TestTypesCommand(t *testing.T) {
	out, err := run(t, "", "types")
	require.NoError(t, err)
	assert.Contains(t, out, "0x2::coin::Coin\t1\n")
	assert.Contains(t, out, "0x1::string::String\t0\n")
}

func TestDecodeAndEncode(t *testing.T) {
	id, data := coinBCS()
	out, err := run(t, "", "decode", "0x2::coin::Coin<0x2::sui::SUI>", "--bcs-hex", hex.EncodeToString(data))
	require.NoError(t, err)
	doc := decodeOutput(t, out)
	assert.Equal(t, map[string]any{
		"$typeName": "0x2::coin::Coin",
		"$typeArgs": []any{"0x2::sui::SUI"},
		"id":        id.String(),
		"balance":   map[string]any{"value": "100"},
	}, doc)

	enc, err := run(t, out, "encode", "0x2::coin::Coin<0x2::sui::SUI>", "--json", "-", "--hex")
	require.NoError(t, err)
	assert.Equal(t, "0x"+hex.EncodeToString(data)+"\n", enc)

	_, err = run(t, "", "decode", "0x2::coin::Coin<0x2::sui::SUI>", "--bcs-hex", hex.EncodeToString(data[:10]))
	assert.Error(t, err)
}

func TestDecode_RequiresOneInput(t *testing.T) {
	_, err := run(t, "", "decode", "0x2::coin::Coin<0x2::sui::SUI>")
	assert.Error(t, err)

	_, err = run(t, "", "decode", "0x2::coin::Coin<0x2::sui::SUI>", "--bcs", "AA==", "--bcs-hex", "00")
	assert.Error(t, err)

	_, err = run(t, "", "decode", "--bcs", "AA==")
	assert.ErrorContains(t, err, "TYPE is required")
}

func TestManifestFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
structs:
  - type: 0xbeef::counter::Counter
    fields:
      - name: id
        type: 0x2::object::UID
      - name: count
        type: u64
`), 0o600))

	id, data := coinBCS()
	out, err := run(t, "", "--manifest", path, "decode", "0xbeef::counter::Counter", "--bcs-hex", hex.EncodeToString(data))
	require.NoError(t, err)
	doc := decodeOutput(t, out)
	assert.Equal(t, "0xbeef::counter::Counter", doc["$typeName"])
	assert.Equal(t, id.String(), doc["id"])
	assert.Equal(t, "100", doc["count"])

	_, err = run(t, "", "--registry", "source", "--manifest", path, "types")
	assert.ErrorContains(t, err, "onchain registry")

	_, err = run(t, "", "decode", "0xbeef::counter::Counter", "--bcs-hex", hex.EncodeToString(data))
	assert.True(t, movebind.HasCode(err, movebind.CodeUnknownType))
}

func TestManifestFlag_RecursiveAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte(`
structs:
  - type: 0xbeef::m::A
    fields: [{name: b, type: "0x1::option::Option<0xbeef::m::B>"}]
`), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(`
structs:
  - type: 0xbeef::m::B
    fields: [{name: a, type: 0xbeef::m::A}]
`), 0o600))

	_, err := run(t, "", "--manifest", a, "--manifest", b, "resolve", "0xbeef::m::A")
	require.Error(t, err)
	assert.True(t, movebind.HasCode(err, movebind.CodeInvalidFormat), "got %v", err)
	assert.ErrorContains(t, err, "recursive struct")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movebind.yaml")
	require.NoError(t, os.WriteFile(path, []byte("registry: elsewhere\n"), 0o600))
	_, err := run(t, "", "--config", path, "types")
	assert.ErrorContains(t, err, "registry must be")

	_, err = run(t, "", "--log-level", "shouty", "types")
	assert.ErrorContains(t, err, "log.level")
}

func TestWriteError(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage("en") })

	_, err := run(t, "", "resolve", "0x2::coin::Coin")
	require.Error(t, err)
	var buf bytes.Buffer
	writeError(&buf, err)
	assert.Equal(t,
		"error: wrong number of type arguments (expected 1, got 0) at /: Type 0x2::coin::Coin expects 1 type arguments, but got 0\n",
		buf.String())

	_, err = run(t, "", "--lang", "ja", "resolve", "0x2::nope::Nope")
	require.Error(t, err)
	buf.Reset()
	writeError(&buf, err)
	assert.Equal(t, "error: 未登録の型です at /: Unknown type 0x2::nope::Nope\n", buf.String())

	buf.Reset()
	writeError(&buf, errors.New("boom"))
	assert.Equal(t, "error: boom\n", buf.String())
}
