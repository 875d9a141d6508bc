package movebind

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/holiman/uint256"
)

var uintBits = [...]int{U8: 8, U16: 16, U32: 32, U64: 64}

// coercePrimitive converts a loosely typed input (decoded binary, query API
// JSON or tagged JSON) into the Go value for k.
func coercePrimitive(k PrimitiveKind, v any) (any, error) {
	switch k {
	case Bool:
		b, ok := v.(bool)
		if !ok {
			return nil, invalidType("bool", v)
		}
		return b, nil
	case U8, U16, U32, U64:
		n, err := coerceUint(v, uintBits[k])
		if err != nil {
			return nil, err
		}
		switch k {
		case U8:
			return uint8(n), nil
		case U16:
			return uint16(n), nil
		case U32:
			return uint32(n), nil
		}
		return n, nil
	case U128:
		return coerceBig(v, 128)
	case U256:
		return coerceBig(v, 256)
	case AddressKind:
		return coerceAddress(v)
	}
	return nil, issuef(CodeTypeMismatch, "unknown primitive %d", int(k))
}

func coerceUint(v any, bits int) (uint64, error) {
	var n uint64
	switch x := v.(type) {
	case uint8:
		n = uint64(x)
	case uint16:
		n = uint64(x)
	case uint32:
		n = uint64(x)
	case uint64:
		n = x
	case uint:
		n = uint64(x)
	case int:
		if x < 0 {
			return 0, overflow(v, bits)
		}
		n = uint64(x)
	case int64:
		if x < 0 {
			return 0, overflow(v, bits)
		}
		n = uint64(x)
	case float64:
		if x < 0 || x != math.Trunc(x) || x > 1<<53 {
			return 0, issueWithParams(CodeInvalidFormat, fmt.Sprintf("%v is not an exact unsigned integer", x), "got", x)
		}
		n = uint64(x)
	case json.Number:
		return parseUint(string(x), bits)
	case string:
		return parseUint(x, bits)
	case uint256.Int:
		if !x.IsUint64() {
			return 0, overflow(x.Dec(), bits)
		}
		n = x.Uint64()
	default:
		return 0, invalidType("unsigned integer", v)
	}
	if bits < 64 && n >= 1<<bits {
		return 0, overflow(n, bits)
	}
	return n, nil
}

func parseUint(s string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, overflow(s, bits)
		}
		return 0, wrapIssue(CodeInvalidFormat, err, "%q is not an unsigned decimal integer", s)
	}
	return n, nil
}

func coerceBig(v any, bits int) (uint256.Int, error) {
	var n uint256.Int
	switch x := v.(type) {
	case uint256.Int:
		n = x
	case *uint256.Int:
		if x == nil {
			return n, invalidType(fmt.Sprintf("u%d", bits), v)
		}
		n = *x
	case json.Number:
		return parseBig(string(x), bits)
	case string:
		return parseBig(x, bits)
	default:
		small, err := coerceUint(v, 64)
		if err != nil {
			return n, err
		}
		n.SetUint64(small)
	}
	if n.BitLen() > bits {
		return n, overflow(n.Dec(), bits)
	}
	return n, nil
}

func parseBig(s string, bits int) (uint256.Int, error) {
	s = strings.TrimSpace(s)
	var (
		p   *uint256.Int
		err error
	)
	if hasHexPrefix(s) {
		p, err = uint256.FromHex(s)
	} else {
		p, err = uint256.FromDecimal(s)
	}
	if err != nil {
		if errors.Is(err, uint256.ErrBig256Range) {
			return uint256.Int{}, overflow(s, bits)
		}
		return uint256.Int{}, wrapIssue(CodeInvalidFormat, err, "%q is not an unsigned integer", s)
	}
	if p.BitLen() > bits {
		return uint256.Int{}, overflow(s, bits)
	}
	return *p, nil
}

func coerceAddress(v any) (Address, error) {
	switch x := v.(type) {
	case Address:
		return x, nil
	case [AddressLength]byte:
		return Address(x), nil
	case string:
		return ParseAddress(x)
	}
	return Address{}, invalidType("address", v)
}

// coerceBytes accepts []byte, a hex string (0x optional) or a sequence of
// byte-sized numbers.
func coerceBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return append([]byte{}, x...), nil
	case string:
		s := strings.TrimSpace(x)
		if hasHexPrefix(s) {
			s = s[2:]
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, wrapIssue(CodeInvalidFormat, err, "invalid hex byte string")
		}
		return b, nil
	}
	items, err := sequence(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(items))
	for i, it := range items {
		n, err := coerceUint(it, 8)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out[i] = uint8(n)
	}
	return out, nil
}

// sequence views any slice or array as []any.
func sequence(v any) ([]any, error) {
	if items, ok := v.([]any); ok {
		return items, nil
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, invalidType("sequence", v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// conform checks that v can be stored where values of type t are expected
// and returns it with untyped nil replaced by a typed zero value.
func conform(t reflect.Type, v any) (any, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice:
			return reflect.Zero(t).Interface(), nil
		}
		return nil, issuef(CodeInvalidType, "expected %s, got nil", t)
	}
	rt := reflect.TypeOf(v)
	if !rt.AssignableTo(t) {
		return nil, issueWithParams(CodeInvalidType,
			fmt.Sprintf("expected %s, got %s", t, rt), "expected", t.String(), "got", rt.String())
	}
	return v, nil
}

func invalidType(want string, got any) error {
	return issueWithParams(CodeInvalidType, fmt.Sprintf("expected %s, got %T", want, got),
		"expected", want, "got", fmt.Sprintf("%T", got))
}

func overflow(v any, bits int) error {
	return issueWithParams(CodeOverflow, fmt.Sprintf("%v does not fit in u%d", v, bits), "bits", bits)
}
