package manifest

import (
	"github.com/reoring/movebind"
)

// Object is a decoded value of a manifest-described struct.
type Object struct {
	movebind.Header
	def    *movebind.StructDef
	values []any
}

// Get returns the value of the field with the given on-chain name.
func (o *Object) Get(name string) (any, bool) {
	for i, f := range o.def.Fields {
		if f.Name == name {
			return o.values[i], true
		}
	}
	return nil, false
}

// Fields returns the field values keyed by on-chain name.
func (o *Object) Fields() map[string]any {
	out := make(map[string]any, len(o.values))
	for i, f := range o.def.Fields {
		out[f.Name] = o.values[i]
	}
	return out
}

func (o *Object) ToJSONField() (map[string]any, error) { return o.def.ToJSONField(o) }
func (o *Object) ToJSON() (map[string]any, error)      { return o.def.ToJSON(o) }
