package movebind

import (
	"bytes"
	"encoding/base64"

	json "github.com/goccy/go-json"
)

// FieldsWithTypes is the query API representation of a struct value.
type FieldsWithTypes struct {
	Type   string         `json:"type"`
	Fields map[string]any `json:"fields"`
}

// AsFieldsWithTypes accepts a FieldsWithTypes (or pointer) or a decoded JSON
// object with "type" and "fields" keys.
func AsFieldsWithTypes(item any) (FieldsWithTypes, error) {
	switch x := item.(type) {
	case FieldsWithTypes:
		return x, nil
	case *FieldsWithTypes:
		if x != nil {
			return *x, nil
		}
	case map[string]any:
		t, ok := x["type"].(string)
		if !ok {
			return FieldsWithTypes{}, atField(invalidType("type string", x["type"]), "type")
		}
		fields, ok := x["fields"].(map[string]any)
		if !ok {
			return FieldsWithTypes{}, atField(invalidType("field object", x["fields"]), "fields")
		}
		return FieldsWithTypes{Type: t, Fields: fields}, nil
	}
	return FieldsWithTypes{}, invalidType("fields with types", item)
}

// DataTypeMoveObject is the data type of struct objects (as opposed to
// packages).
const DataTypeMoveObject = "moveObject"

// ParsedData is the "content" of an object query response.
type ParsedData struct {
	DataType          string         `json:"dataType"`
	Type              string         `json:"type,omitempty"`
	Fields            map[string]any `json:"fields,omitempty"`
	HasPublicTransfer bool           `json:"hasPublicTransfer,omitempty"`
}

// RawData is the "bcs" of an object query response.
type RawData struct {
	DataType          string `json:"dataType"`
	Type              string `json:"type,omitempty"`
	BCSBytes          string `json:"bcsBytes,omitempty"`
	HasPublicTransfer bool   `json:"hasPublicTransfer,omitempty"`
	Version           string `json:"version,omitempty"`
}

// ObjectData is one object query response.
type ObjectData struct {
	ObjectID string      `json:"objectId"`
	Version  string      `json:"version"`
	Digest   string      `json:"digest"`
	Type     string      `json:"type,omitempty"`
	Content  *ParsedData `json:"content,omitempty"`
	BCS      *RawData    `json:"bcs,omitempty"`
}

// ObjectType returns the struct type named by the response, looking at the
// top-level type first, then bcs, then content.
func (o ObjectData) ObjectType() string {
	switch {
	case o.Type != "":
		return o.Type
	case o.BCS != nil && o.BCS.Type != "":
		return o.BCS.Type
	case o.Content != nil:
		return o.Content.Type
	}
	return ""
}

// DecodeObjectData parses an object query response.
func DecodeObjectData(data []byte) (ObjectData, error) {
	var o ObjectData
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&o); err != nil {
		return ObjectData{}, wrapIssue(CodeParseError, err, "invalid object data: %v", err)
	}
	return o, nil
}

// FromParsedData decodes an object's parsed content.
func (r *Reified) FromParsedData(content ParsedData) (any, error) {
	if content.DataType != DataTypeMoveObject || !r.Is(content.Type) {
		return nil, issueWithParams(CodeTypeMismatch,
			"object is not a "+r.TypeName+" object", "expected", r.TypeName, "got", content.Type)
	}
	return r.FromFieldsWithTypes(FieldsWithTypes{Type: content.Type, Fields: content.Fields})
}

// FromObjectData decodes an object query response, preferring the binary
// encoding when it is present.
func (r *Reified) FromObjectData(data ObjectData) (any, error) {
	if data.BCS != nil {
		if data.BCS.DataType != DataTypeMoveObject || !r.Is(data.BCS.Type) {
			return nil, issueWithParams(CodeTypeMismatch,
				"object is not a "+r.TypeName+" object", "expected", r.TypeName, "got", data.BCS.Type)
		}
		if len(r.TypeArgs) > 0 {
			_, got, err := ParseTypeName(data.BCS.Type)
			if err != nil {
				return nil, err
			}
			if err := assertTypeArgsMatch(got, r.TypeArgs); err != nil {
				return nil, err
			}
		}
		raw, err := base64.StdEncoding.DecodeString(data.BCS.BCSBytes)
		if err != nil {
			return nil, atField(wrapIssue(CodeInvalidFormat, err, "invalid base64 in bcsBytes"), "bcs")
		}
		return r.FromBCS(raw)
	}
	if data.Content != nil {
		return r.FromParsedData(*data.Content)
	}
	return nil, issuef(CodeMissingField,
		"Both `bcs` and `content` fields are missing from the data. Include `showBcs` or `showContent` in the request.")
}
