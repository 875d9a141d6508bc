package movebind

import (
	"reflect"
	"strconv"

	"github.com/reoring/movebind/bcs"
)

// Reified is the fully instantiated form of a struct type: its name, its
// type arguments, its binary layout and the decoders for every encoding.
// A Reified is immutable and can be shared freely.
type Reified struct {
	TypeName     string    // base name without type arguments, e.g. 0x2::coin::Coin
	FullTypeName string    // canonical name with arguments, e.g. 0x2::coin::Coin<0x2::sui::SUI>
	TypeArgs     []TypeArg // one entry per declared type parameter
	Layout       bcs.Layout

	codec  structCodec
	tagged bool
}

// structCodec is implemented by the engine behind a Reified.
type structCodec interface {
	goType() reflect.Type
	fromFields(raw any) (any, error)
	fromFieldsWithTypes(item any) (any, error)
	fromJSONField(field any) (any, error)
	toFields(v any) (any, error)
}

func (r *Reified) TypeString() string { return r.FullTypeName }

// GoType is the Go type of values this reification decodes to.
func (r *Reified) GoType() reflect.Type { return r.codec.goType() }

// TypeArgStrings returns the canonical spelling of each type argument.
func (r *Reified) TypeArgStrings() []string {
	if len(r.TypeArgs) == 0 {
		return nil
	}
	out := make([]string, len(r.TypeArgs))
	for i, a := range r.TypeArgs {
		out[i] = ExtractType(a)
	}
	return out
}

// Is reports whether typeString names an instantiation of this struct,
// whatever its type arguments.
func (r *Reified) Is(typeString string) bool {
	name, err := baseName(typeString)
	return err == nil && name == r.TypeName
}

// FromFields decodes the raw field map produced by the binary decoder.
func (r *Reified) FromFields(raw any) (any, error) { return r.codec.fromFields(raw) }

// FromFieldsWithTypes decodes the query API representation.
func (r *Reified) FromFieldsWithTypes(item any) (any, error) {
	return r.codec.fromFieldsWithTypes(item)
}

// FromBCS decodes a binary encoded value.
func (r *Reified) FromBCS(data []byte) (any, error) {
	raw, err := bcs.Unmarshal(r.Layout, data)
	if err != nil {
		return nil, wrapIssue(CodeEncoding, err, "decode %s: %v", r.FullTypeName, err)
	}
	return r.FromFields(raw)
}

// FromJSONField decodes the untagged JSON form (a field value).
func (r *Reified) FromJSONField(field any) (any, error) { return r.codec.fromJSONField(field) }

// FromJSON decodes a tagged JSON document, checking $typeName and $typeArgs
// against this reification first.
func (r *Reified) FromJSON(doc any) (any, error) {
	if !r.tagged {
		return r.FromJSONField(doc)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, invalidType("JSON object", doc)
	}
	tag, _ := m["$typeName"].(string)
	name, err := baseName(tag)
	if err != nil || name != r.TypeName {
		return nil, issueWithParams(CodeTypeMismatch,
			"not a valid "+r.TypeName+" JSON: $typeName is "+quoteOrMissing(tag),
			"expected", r.TypeName, "got", tag)
	}
	got, err := jsonTypeArgs(m)
	if err != nil {
		return nil, err
	}
	if err := AssertReifiedTypeArgsMatch(r.FullTypeName, got, r.TypeArgs); err != nil {
		return nil, err
	}
	return r.FromJSONField(m)
}

// ToFields converts a value into the raw field map accepted by the binary
// encoder.
func (r *Reified) ToFields(v any) (any, error) {
	if _, err := conform(r.GoType(), v); err != nil {
		return nil, err
	}
	return r.codec.toFields(v)
}

// ToBCS encodes v in the binary format.
func (r *Reified) ToBCS(v any) ([]byte, error) {
	raw, err := r.ToFields(v)
	if err != nil {
		return nil, err
	}
	out, err := bcs.Marshal(r.Layout, raw)
	if err != nil {
		return nil, wrapIssue(CodeEncoding, err, "encode %s: %v", r.FullTypeName, err)
	}
	return out, nil
}

// ToJSONField renders v in the untagged JSON form.
func (r *Reified) ToJSONField(v any) (any, error) {
	if _, err := conform(r.GoType(), v); err != nil {
		return nil, err
	}
	return ValueToJSON(v)
}

// ToJSON renders v as a tagged JSON document when the type carries tags.
func (r *Reified) ToJSON(v any) (any, error) {
	if _, err := conform(r.GoType(), v); err != nil {
		return nil, err
	}
	if inst, ok := v.(Instance); ok && r.tagged {
		return inst.ToJSON()
	}
	return ValueToJSON(v)
}

func jsonTypeArgs(m map[string]any) ([]string, error) {
	raw, ok := m["$typeArgs"]
	if !ok {
		if one, ok := m["$typeArg"].(string); ok {
			return []string{one}, nil
		}
		return nil, nil
	}
	items, err := sequence(raw)
	if err != nil {
		return nil, atField(err, "$typeArgs")
	}
	out := make([]string, len(items))
	for i, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, atField(atIndex(invalidType("string", it), i), "$typeArgs")
		}
		out[i] = s
	}
	return out, nil
}

func quoteOrMissing(s string) string {
	if s == "" {
		return "missing"
	}
	return "'" + s + "'"
}

// AssertFieldsWithTypesArgsMatch checks the type arguments spelled in a query
// API item against the reified ones.
func AssertFieldsWithTypesArgsMatch(item FieldsWithTypes, want []TypeArg) error {
	_, got, err := ParseTypeName(item.Type)
	if err != nil {
		return err
	}
	return assertTypeArgsMatch(got, want)
}

// AssertReifiedTypeArgsMatch checks type argument strings (for example from
// a JSON document) against the reified ones. fullType is only used for
// messages.
func AssertReifiedTypeArgsMatch(fullType string, got []string, want []TypeArg) error {
	if err := assertTypeArgsMatch(got, want); err != nil {
		if iss, ok := AsIssues(err); ok {
			for i := range iss {
				iss[i].Message = fullType + ": " + iss[i].Message
			}
			return iss
		}
		return err
	}
	return nil
}

func assertTypeArgsMatch(got []string, want []TypeArg) error {
	if len(got) != len(want) {
		return issueWithParams(CodeTypeMismatch,
			"type argument mismatch: expected "+strconv.Itoa(len(want))+" type arguments but got "+strconv.Itoa(len(got)),
			"expected", len(want), "got", len(got))
	}
	for i := range got {
		g, err := CompressType(got[i])
		if err != nil {
			return err
		}
		w := ExtractType(want[i])
		if g != w {
			return issueWithParams(CodeTypeMismatch,
				"type argument mismatch at position "+strconv.Itoa(i)+": expected '"+w+"' but got '"+g+"'",
				"position", i, "expected", w, "got", g)
		}
	}
	return nil
}
