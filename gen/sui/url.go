package sui

import (
	"reflect"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/bcs"
	"github.com/reoring/movebind/gen/std"
)

const URLTypeName = "0x2::url::Url"

// URL is 0x2::url::Url, decoded as a Go string.
var URL = &movebind.SpecialClass{
	Name: URLTypeName,
	Build: func([]movebind.TypeArg) (bcs.Layout, movebind.SpecialCodec, error) {
		layout := bcs.Struct(URLTypeName,
			bcs.Field{Name: "url", Layout: std.StringLayout(std.ASCIIStringTypeName)})
		fromString := func(v any) (any, error) {
			s, ok := v.(string)
			if !ok {
				return nil, movebind.InvalidType(URLTypeName, v)
			}
			return s, nil
		}
		return layout, movebind.SpecialCodec{
			GoType: reflect.TypeOf(""),
			FromFields: func(raw any) (any, error) {
				m, err := movebind.FieldMap(raw, "url")
				if err != nil {
					return nil, err
				}
				return std.StringFromFields(m["url"], true)
			},
			FromFieldsWithTypes: fromString,
			FromJSONField:       fromString,
			ToFields: func(v any) (any, error) {
				return map[string]any{"url": map[string]any{"bytes": []byte(v.(string))}}, nil
			},
		}, nil
	},
}
