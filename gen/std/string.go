// Package std binds types from the Move standard library (0x1).
package std

import (
	"reflect"
	"unicode/utf8"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/bcs"
)

const (
	StringTypeName      = "0x1::string::String"
	ASCIIStringTypeName = "0x1::ascii::String"
)

var stringGoType = reflect.TypeOf("")

// String is 0x1::string::String. Values decode to Go strings and must be
// valid UTF-8.
var String = &movebind.SpecialClass{
	Name: StringTypeName,
	Build: func([]movebind.TypeArg) (bcs.Layout, movebind.SpecialCodec, error) {
		return StringLayout(StringTypeName), stringCodec(StringTypeName, validUTF8), nil
	},
}

// ASCIIString is 0x1::ascii::String. Values decode to Go strings and must be
// ASCII.
var ASCIIString = &movebind.SpecialClass{
	Name: ASCIIStringTypeName,
	Build: func([]movebind.TypeArg) (bcs.Layout, movebind.SpecialCodec, error) {
		return StringLayout(ASCIIStringTypeName), stringCodec(ASCIIStringTypeName, validASCII), nil
	},
}

// StringLayout is the binary layout shared by both string types:
// struct { bytes: vector<u8> }.
func StringLayout(name string) bcs.Layout {
	return bcs.Struct(name, bcs.Field{Name: "bytes", Layout: bcs.Bytes()})
}

// StringFromFields decodes the raw {bytes} map of either string type.
func StringFromFields(raw any, ascii bool) (string, error) {
	m, err := movebind.FieldMap(raw, "bytes")
	if err != nil {
		return "", err
	}
	b, err := movebind.DecodeFromFields(movebind.Vector(movebind.U8), m["bytes"])
	if err != nil {
		return "", err
	}
	check := validUTF8
	if ascii {
		check = validASCII
	}
	return check(string(b.([]byte)))
}

func stringCodec(name string, check func(string) (string, error)) movebind.SpecialCodec {
	fromString := func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, movebind.InvalidType(name, v)
		}
		return check(s)
	}
	return movebind.SpecialCodec{
		GoType: stringGoType,
		FromFields: func(raw any) (any, error) {
			return StringFromFields(raw, name == ASCIIStringTypeName)
		},
		FromFieldsWithTypes: fromString,
		FromJSONField:       fromString,
		ToFields: func(v any) (any, error) {
			s, err := fromString(v)
			if err != nil {
				return nil, err
			}
			return map[string]any{"bytes": []byte(s.(string))}, nil
		},
	}
}

func validUTF8(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", movebind.NewIssue(movebind.CodeInvalidFormat, "string is not valid UTF-8")
	}
	return s, nil
}

func validASCII(s string) (string, error) {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return "", movebind.NewIssue(movebind.CodeInvalidFormat,
				"ascii string has non-ASCII byte 0x%02x at %d", s[i], i)
		}
	}
	return s, nil
}
