package movebind

import (
	"bytes"

	json "github.com/goccy/go-json"

	eng "github.com/reoring/movebind/internal/engine"
)

// ParseJSON decodes a JSON document into generic values, keeping numbers as
// json.Number so that 64-bit and wider integers survive.
func ParseJSON(data []byte, opt JSONOptions) (any, error) {
	if opt.DisallowDuplicateKeys || opt.MaxDepth > 0 {
		si := eng.CheckJSON(data, eng.Options{
			RejectDuplicateKeys: opt.DisallowDuplicateKeys,
			MaxDepth:            opt.MaxDepth,
		})
		if len(si) > 0 {
			return nil, fromEngineIssues(si)
		}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, wrapIssue(CodeParseError, err, "invalid JSON: %v", err)
	}
	return v, nil
}

// FromJSONBytes parses a tagged JSON document and decodes it.
func (r *Reified) FromJSONBytes(data []byte, opt JSONOptions) (any, error) {
	v, err := ParseJSON(data, opt)
	if err != nil {
		return nil, err
	}
	return r.FromJSON(v)
}

// MarshalInstance renders an instance as tagged JSON text.
func MarshalInstance(inst Instance) ([]byte, error) {
	doc, err := inst.ToJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, Issue{Code: s.Code, Path: s.Path, Message: s.Message})
	}
	return iss
}
