package std

import (
	"reflect"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/bcs"
)

const OptionTypeName = "0x1::option::Option"

// Option is 0x1::option::Option<T>. A value is represented by the Go type of
// T when that is already a pointer (a struct binding), and by a pointer to it
// otherwise; nil means none.
var Option = &movebind.SpecialClass{
	Name:   OptionTypeName,
	Params: []movebind.TypeParam{{Name: "Element"}},
	Build:  buildOption,
}

func buildOption(args []movebind.TypeArg) (bcs.Layout, movebind.SpecialCodec, error) {
	inner := args[0]
	innerLayout, err := movebind.LayoutOf(inner)
	if err != nil {
		return nil, movebind.SpecialCodec{}, err
	}
	layout := bcs.Struct(movebind.ComposeType(OptionTypeName, inner.TypeString()),
		bcs.Field{Name: "vec", Layout: bcs.Vector(innerLayout)})

	innerType := movebind.GoTypeOf(inner)
	optType := movebind.OptionalGoType(innerType)
	none := reflect.Zero(optType).Interface()
	some := func(v any, err error) (any, error) {
		if err != nil {
			return nil, err
		}
		return movebind.WrapOptional(innerType, v)
	}

	return layout, movebind.SpecialCodec{
		GoType: optType,
		FromFields: func(raw any) (any, error) {
			m, err := movebind.FieldMap(raw, "vec")
			if err != nil {
				return nil, err
			}
			vec, err := movebind.DecodeFromFields(movebind.Vector(inner), m["vec"])
			if err != nil {
				return nil, err
			}
			rv := reflect.ValueOf(vec)
			switch rv.Len() {
			case 0:
				return none, nil
			case 1:
				return some(rv.Index(0).Interface(), nil)
			}
			return nil, movebind.NewIssue(movebind.CodeInvalidType,
				"option holds %d values", rv.Len())
		},
		FromFieldsWithTypes: func(item any) (any, error) {
			if item == nil {
				return none, nil
			}
			return some(movebind.DecodeFromFieldsWithTypes(inner, item))
		},
		FromJSONField: func(field any) (any, error) {
			if field == nil {
				return none, nil
			}
			return some(movebind.DecodeFromJSONField(inner, field))
		},
		ToFields: func(v any) (any, error) {
			vec := reflect.MakeSlice(reflect.SliceOf(innerType), 0, 1)
			if x, ok := movebind.UnwrapOptional(innerType, v); ok {
				vec = reflect.Append(vec, reflect.ValueOf(x))
			}
			raw, err := movebind.EncodeToFields(movebind.Vector(inner), vec.Interface())
			if err != nil {
				return nil, err
			}
			return map[string]any{"vec": raw}, nil
		},
	}, nil
}

// Some wraps a present value for an Option<t> field.
func Some(t movebind.TypeArg, v any) (any, error) {
	return movebind.WrapOptional(movebind.GoTypeOf(t), v)
}

// None is the absent value for an Option<t> field.
func None(t movebind.TypeArg) any {
	return reflect.Zero(movebind.OptionalGoType(movebind.GoTypeOf(t))).Interface()
}
