package movebind

import "reflect"

// Build instantiates d with args and field values and returns the concrete
// binding type.
func Build[T Instance](d *StructDef, args []TypeArg, values ...any) (T, error) {
	var zero T
	inst, err := d.Instantiate(args, values...)
	if err != nil {
		return zero, err
	}
	return as[T](inst)
}

// FromBCS reifies c with args and decodes data.
func FromBCS[T any](c StructClass, data []byte, args ...TypeArg) (T, error) {
	return decodeAs[T](c, args, func(r *Reified) (any, error) { return r.FromBCS(data) })
}

// FromFields reifies c with args and decodes a raw field map.
func FromFields[T any](c StructClass, raw any, args ...TypeArg) (T, error) {
	return decodeAs[T](c, args, func(r *Reified) (any, error) { return r.FromFields(raw) })
}

// FromFieldsWithTypes reifies c with args and decodes a query API item.
func FromFieldsWithTypes[T any](c StructClass, item any, args ...TypeArg) (T, error) {
	return decodeAs[T](c, args, func(r *Reified) (any, error) { return r.FromFieldsWithTypes(item) })
}

// FromJSON reifies c with args and decodes a tagged JSON document.
func FromJSON[T any](c StructClass, doc any, args ...TypeArg) (T, error) {
	return decodeAs[T](c, args, func(r *Reified) (any, error) { return r.FromJSON(doc) })
}

// FromObjectData reifies c with args and decodes an object query response.
func FromObjectData[T any](c StructClass, data ObjectData, args ...TypeArg) (T, error) {
	return decodeAs[T](c, args, func(r *Reified) (any, error) { return r.FromObjectData(data) })
}

func decodeAs[T any](c StructClass, args []TypeArg, decode func(*Reified) (any, error)) (T, error) {
	var zero T
	r, err := c.Reified(args...)
	if err != nil {
		return zero, err
	}
	v, err := decode(r)
	if err != nil {
		return zero, err
	}
	return as[T](v)
}

func as[T any](v any) (T, error) {
	if v == nil {
		var zero T
		return zero, nil
	}
	out, ok := v.(T)
	if !ok {
		var zero T
		return zero, invalidType(typeName[T](), v)
	}
	return out, nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
