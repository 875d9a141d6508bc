package movebind

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/reoring/movebind/bcs"
)

// StructClass is the capability a loader needs from a struct binding: its
// name, its type parameters and a factory for reifications.
type StructClass interface {
	TypeName() string
	NumTypeParams() int
	IsPhantomParam(i int) bool
	Reified(args ...TypeArg) (*Reified, error)
}

// Instance is implemented by every decoded struct value.
type Instance interface {
	TypeName() string
	FullTypeName() string
	TypeArgs() []string
	// ToJSONField renders the fields only.
	ToJSONField() (map[string]any, error)
	// ToJSON renders the fields plus $typeName and, for generic types,
	// $typeArgs.
	ToJSON() (map[string]any, error)
}

// Header records which instantiation a value belongs to. Bindings embed it.
type Header struct {
	typeName string
	typeArgs []string
}

// NewHeader builds a header from a canonical base name and canonical type
// argument strings.
func NewHeader(typeName string, typeArgs []string) Header {
	if len(typeArgs) == 0 {
		typeArgs = nil
	}
	return Header{typeName: typeName, typeArgs: slices.Clone(typeArgs)}
}

func (h Header) TypeName() string     { return h.typeName }
func (h Header) TypeArgs() []string   { return slices.Clone(h.typeArgs) }
func (h Header) FullTypeName() string { return ComposeType(h.typeName, h.typeArgs...) }

// TypeParam declares one type parameter of a struct.
type TypeParam struct {
	Name    string
	Phantom bool
}

// FieldType computes the type of a field once the struct's type arguments
// are known.
type FieldType func(args []TypeArg) (TypeArg, error)

// Fixed is a field type that does not depend on the type arguments.
func Fixed(t TypeArg) FieldType {
	return func([]TypeArg) (TypeArg, error) { return t, nil }
}

// Param is the field type bound to the i-th type parameter.
func Param(i int) FieldType {
	return func(args []TypeArg) (TypeArg, error) {
		if i < 0 || i >= len(args) {
			return nil, issuef(CodeArityMismatch, "type parameter %d out of range (%d arguments)", i, len(args))
		}
		return args[i], nil
	}
}

// Vec is vector<elem>.
func Vec(elem FieldType) FieldType {
	return func(args []TypeArg) (TypeArg, error) {
		e, err := elem(args)
		if err != nil {
			return nil, err
		}
		return Vector(e), nil
	}
}

// StructOf instantiates another struct. Arguments landing on phantom
// parameters of class are wrapped with Phantom.
func StructOf(class StructClass, params ...FieldType) FieldType {
	return func(args []TypeArg) (TypeArg, error) {
		resolved := make([]TypeArg, len(params))
		for i, p := range params {
			a, err := p(args)
			if err != nil {
				return nil, err
			}
			if class.IsPhantomParam(i) {
				a = Phantom(a)
			}
			resolved[i] = a
		}
		return class.Reified(resolved...)
	}
}

// FieldDef declares one struct field.
type FieldDef struct {
	Name     string // on-chain (snake_case) name, used by the binary and query API forms
	JSONName string // key in the JSON form; defaults to Name
	Type     FieldType
}

func (f FieldDef) jsonName() string {
	if f.JSONName != "" {
		return f.JSONName
	}
	return f.Name
}

// StructDef is a table-driven struct binding. Generated bindings and
// manifest-described types are both StructDefs.
type StructDef struct {
	Name       string
	TypeParams []TypeParam
	Fields     []FieldDef
	// GoType is the type New returns.
	GoType reflect.Type
	// New builds an instance from values already checked against the field
	// types, in field order.
	New func(h Header, values []any) Instance
	// Values returns the field values of an instance in field order.
	Values func(v Instance) []any
	// DecodeFieldsWithTypes optionally replaces the query API decoding for
	// types that the API flattens (for example Balance, shown as its value).
	DecodeFieldsWithTypes func(r *Reified, item any) (any, error)

	once      sync.Once
	canonical string
}

// TypeName returns the canonical base name.
func (d *StructDef) TypeName() string {
	d.once.Do(func() { d.canonical = MustCompressType(d.Name) })
	return d.canonical
}

func (d *StructDef) NumTypeParams() int { return len(d.TypeParams) }

func (d *StructDef) IsPhantomParam(i int) bool {
	return i >= 0 && i < len(d.TypeParams) && d.TypeParams[i].Phantom
}

// Is reports whether typeString names an instantiation of d.
func (d *StructDef) Is(typeString string) bool {
	name, err := baseName(typeString)
	return err == nil && name == d.TypeName()
}

// Reified instantiates d with args.
func (d *StructDef) Reified(args ...TypeArg) (*Reified, error) {
	name := d.TypeName()
	if err := checkTypeArgs(name, d.TypeParams, args); err != nil {
		return nil, err
	}
	fieldTypes := make([]TypeArg, len(d.Fields))
	layouts := make([]bcs.Field, len(d.Fields))
	for i, f := range d.Fields {
		ft, err := f.Type(args)
		if err != nil {
			return nil, atField(err, f.Name)
		}
		l, err := LayoutOf(ft)
		if err != nil {
			return nil, atField(err, f.Name)
		}
		fieldTypes[i] = ft
		layouts[i] = bcs.Field{Name: f.Name, Layout: l}
	}
	r := newReified(name, args, nil, true)
	r.Layout = bcs.Struct(r.FullTypeName, layouts...)
	r.codec = &defCodec{def: d, reified: r, header: NewHeader(name, r.TypeArgStrings()), fieldTypes: fieldTypes}
	return r, nil
}

// MustReified is like Reified but panics on error.
func (d *StructDef) MustReified(args ...TypeArg) *Reified {
	r, err := d.Reified(args...)
	if err != nil {
		panic(err)
	}
	return r
}

// Instantiate builds an instance of d<args> from field values in
// declaration order. Each value must have the Go type decoding would
// produce for its field.
func (d *StructDef) Instantiate(args []TypeArg, values ...any) (Instance, error) {
	r, err := d.Reified(args...)
	if err != nil {
		return nil, err
	}
	return r.codec.(*defCodec).build(values)
}

// ToJSONField renders the fields of v keyed by their JSON names.
func (d *StructDef) ToJSONField(v Instance) (map[string]any, error) {
	vals := d.Values(v)
	out := make(map[string]any, len(d.Fields))
	for i, f := range d.Fields {
		x, err := ValueToJSON(vals[i])
		if err != nil {
			return nil, atField(err, f.jsonName())
		}
		out[f.jsonName()] = x
	}
	return out, nil
}

// ToJSON renders v with its $typeName and $typeArgs tags.
func (d *StructDef) ToJSON(v Instance) (map[string]any, error) {
	out, err := d.ToJSONField(v)
	if err != nil {
		return nil, err
	}
	out["$typeName"] = v.TypeName()
	if args := v.TypeArgs(); len(args) > 0 {
		out["$typeArgs"] = args
	}
	return out, nil
}

func checkTypeArgs(name string, params []TypeParam, args []TypeArg) error {
	if len(args) != len(params) {
		return issueWithParams(CodeArityMismatch,
			fmt.Sprintf("Type %s expects %d type arguments, but got %d", name, len(params), len(args)),
			"expected", len(params), "got", len(args))
	}
	for i, a := range args {
		if a == nil {
			return issuef(CodeTypeMismatch, "type argument %d of %s is missing", i, name)
		}
		if _, ok := a.(PhantomArg); ok && !params[i].Phantom {
			return issuef(CodeTypeMismatch,
				"type argument %d of %s (%s) is phantom but the parameter is not", i, name, a.TypeString())
		}
	}
	return nil
}

func newReified(name string, args []TypeArg, layout bcs.Layout, tagged bool) *Reified {
	r := &Reified{TypeName: name, Layout: layout, tagged: tagged}
	if len(args) > 0 {
		r.TypeArgs = slices.Clone(args)
	}
	r.FullTypeName = ComposeType(name, r.TypeArgStrings()...)
	return r
}

type defCodec struct {
	def        *StructDef
	reified    *Reified
	header     Header
	fieldTypes []TypeArg
}

func (c *defCodec) goType() reflect.Type { return c.def.GoType }

func (c *defCodec) build(values []any) (Instance, error) {
	if len(values) != len(c.def.Fields) {
		return nil, issuef(CodeArityMismatch, "%s has %d fields, got %d values",
			c.reified.FullTypeName, len(c.def.Fields), len(values))
	}
	vals := make([]any, len(values))
	for i, v := range values {
		x, err := conform(GoTypeOf(c.fieldTypes[i]), v)
		if err != nil {
			return nil, atField(err, c.def.Fields[i].Name)
		}
		vals[i] = x
	}
	return c.def.New(c.header, vals), nil
}

// decodeFields reads every field of m under key(f). Paths in errors use the
// same key, so they point into the document being decoded.
func (c *defCodec) decodeFields(m map[string]any, key func(FieldDef) string, step decodeStep) (any, error) {
	vals := make([]any, len(c.def.Fields))
	for i, f := range c.def.Fields {
		k := key(f)
		raw, ok := m[k]
		if !ok {
			return nil, atField(issuef(CodeMissingField, "missing field %s of %s", k, c.reified.FullTypeName), k)
		}
		v, err := step(c.fieldTypes[i], raw)
		if err != nil {
			return nil, atField(err, k)
		}
		vals[i] = v
	}
	return c.build(vals)
}

func onChainName(f FieldDef) string { return f.Name }

func (c *defCodec) fromFields(raw any) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, invalidType("field map", raw)
	}
	return c.decodeFields(m, onChainName, DecodeFromFields)
}

func (c *defCodec) fromFieldsWithTypes(item any) (any, error) {
	if c.def.DecodeFieldsWithTypes != nil {
		return c.def.DecodeFieldsWithTypes(c.reified, item)
	}
	fwt, err := AsFieldsWithTypes(item)
	if err != nil {
		return nil, err
	}
	if !c.def.Is(fwt.Type) {
		return nil, issueWithParams(CodeTypeMismatch,
			"not a "+c.reified.TypeName+" type: "+fwt.Type, "expected", c.reified.TypeName, "got", fwt.Type)
	}
	if err := AssertFieldsWithTypesArgsMatch(fwt, c.reified.TypeArgs); err != nil {
		return nil, err
	}
	return c.decodeFields(fwt.Fields, onChainName, DecodeFromFieldsWithTypes)
}

func (c *defCodec) fromJSONField(field any) (any, error) {
	m, ok := field.(map[string]any)
	if !ok {
		return nil, invalidType("JSON object", field)
	}
	return c.decodeFields(m, FieldDef.jsonName, DecodeFromJSONField)
}

func (c *defCodec) toFields(v any) (any, error) {
	inst, ok := v.(Instance)
	if !ok || isNilPointer(v) {
		return nil, invalidType(c.reified.FullTypeName, v)
	}
	if got := inst.FullTypeName(); got != c.reified.FullTypeName {
		return nil, issueWithParams(CodeTypeMismatch,
			"cannot encode "+got+" as "+c.reified.FullTypeName, "expected", c.reified.FullTypeName, "got", got)
	}
	vals := c.def.Values(inst)
	out := make(map[string]any, len(c.def.Fields))
	for i, f := range c.def.Fields {
		raw, err := EncodeToFields(c.fieldTypes[i], vals[i])
		if err != nil {
			return nil, atField(err, f.Name)
		}
		out[f.Name] = raw
	}
	return out, nil
}
