// Package manifest describes Move structs in YAML so that types published
// after a binary was built can still be decoded. Each described struct is
// registered with a movebind.Loader as a table-driven binding whose values
// are *Object.
//
//	structs:
//	  - type: 0xcafe::pool::Pool
//	    typeParams:
//	      - name: T
//	        phantom: true
//	    fields:
//	      - name: id
//	        type: 0x2::object::UID
//	      - name: reserve
//	        type: 0x2::balance::Balance<T>
//	      - name: fee_bps
//	        type: u64
//
// Field types may name the struct's own type parameters and any type known
// to the loader at decode time, including other manifest structs.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/reoring/movebind"
)

// File is one manifest document. Several documents in one stream are merged.
type File struct {
	Structs []Struct `yaml:"structs"`
}

// Struct describes one Move struct.
type Struct struct {
	Type       string      `yaml:"type"`
	TypeParams []TypeParam `yaml:"typeParams,omitempty"`
	Fields     []Field     `yaml:"fields"`
}

// TypeParam describes a type parameter.
type TypeParam struct {
	Name    string `yaml:"name"`
	Phantom bool   `yaml:"phantom,omitempty"`
}

// Field describes a struct field. JSONName defaults to the camelCase form of
// Name.
type Field struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	JSONName string `yaml:"jsonName,omitempty"`
}

// Load reads and validates a manifest file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates manifest YAML. Unknown keys and duplicate keys
// are rejected.
func Parse(data []byte) (*File, error) {
	if err := checkDuplicateKeys(data); err != nil {
		return nil, err
	}
	out := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	for {
		var doc File
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		out.Structs = append(out.Structs, doc.Structs...)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Merge concatenates the structs of several files. Validate the result to
// catch duplicates and cycles that span files.
func Merge(files ...*File) *File {
	out := &File{}
	for _, f := range files {
		out.Structs = append(out.Structs, f.Structs...)
	}
	return out
}

// Validate checks names and type strings, and rejects structs that contain
// themselves through their fields. Field types are only parsed here; whether
// they resolve depends on the loader they are registered with.
func (f *File) Validate() error {
	var iss movebind.Issues
	seen := map[string]bool{}
	for i, s := range f.Structs {
		at := movebind.RootPath().Field("structs").Index(i)
		name, args, err := movebind.ParseTypeName(s.Type)
		switch {
		case err != nil:
			iss = append(iss, issueAt(at.Field("type"), err))
			continue
		case len(args) > 0:
			iss = append(iss, movebind.IssueAt(at.Field("type"), movebind.CodeInvalidFormat,
				"struct type must not carry type arguments: "+s.Type, nil))
			continue
		case !strings.Contains(name, "::"):
			iss = append(iss, movebind.IssueAt(at.Field("type"), movebind.CodeInvalidFormat,
				"struct type must be address::module::Name: "+s.Type, nil))
			continue
		}
		canonical := movebind.MustCompressType(name)
		if seen[canonical] {
			iss = append(iss, movebind.IssueAt(at.Field("type"), movebind.CodeDuplicateKey,
				"struct "+canonical+" described twice", nil))
		}
		seen[canonical] = true

		params := map[string]bool{}
		for j, p := range s.TypeParams {
			pat := at.Field("typeParams").Index(j).Field("name")
			switch {
			case p.Name == "":
				iss = append(iss, movebind.IssueAt(pat, movebind.CodeMissingField,
					"type parameter name is required", nil))
			case params[p.Name]:
				iss = append(iss, movebind.IssueAt(pat, movebind.CodeDuplicateKey,
					"type parameter "+p.Name+" declared twice", nil))
			}
			params[p.Name] = true
		}

		if len(s.Fields) == 0 {
			iss = append(iss, movebind.IssueAt(at.Field("fields"), movebind.CodeMissingField,
				"struct "+canonical+" has no fields", nil))
		}
		fields := map[string]bool{}
		for j, fd := range s.Fields {
			fat := at.Field("fields").Index(j)
			if fd.Name == "" {
				iss = append(iss, movebind.IssueAt(fat.Field("name"), movebind.CodeMissingField,
					"field name is required", nil))
			} else if fields[fd.Name] {
				iss = append(iss, movebind.IssueAt(fat.Field("name"), movebind.CodeDuplicateKey,
					"field "+fd.Name+" declared twice", nil))
			}
			fields[fd.Name] = true
			if _, _, err := movebind.ParseTypeName(fd.Type); err != nil {
				iss = append(iss, issueAt(fat.Field("type"), err))
			}
		}
	}
	iss = append(iss, f.cycles()...)
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func issueAt(p movebind.PathRef, err error) movebind.Issue {
	if iss, ok := movebind.AsIssues(err); ok && len(iss) > 0 {
		return movebind.IssueAt(p, iss[0].Code, iss[0].Message, iss[0].Params)
	}
	it := movebind.IssueAt(p, movebind.CodeInvalidFormat, err.Error(), nil)
	it.Cause = err
	return it
}

// cycles reports, for every struct that reaches itself through field types
// (type arguments included), the field that closes the loop. The loader
// would otherwise recurse without bound resolving such a struct.
func (f *File) cycles() movebind.Issues {
	index := map[string]int{}
	for i, s := range f.Structs {
		name, args, err := movebind.ParseTypeName(s.Type)
		if err != nil || len(args) > 0 || !strings.Contains(name, "::") {
			continue
		}
		c := movebind.MustCompressType(name)
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}

	type edge struct{ to, field int }
	edges := make([][]edge, len(f.Structs))
	for i, s := range f.Structs {
		if k, ok := index[canonicalOf(s.Type)]; !ok || k != i {
			continue
		}
		for j, fd := range s.Fields {
			for _, ref := range structRefs(fd.Type) {
				if k, ok := index[ref]; ok {
					edges[i] = append(edges[i], edge{to: k, field: j})
				}
			}
		}
	}

	const (
		unvisited = iota
		open
		done
	)
	var (
		iss   movebind.Issues
		state = make([]int, len(f.Structs))
		stack []int
		visit func(int)
	)
	visit = func(i int) {
		state[i] = open
		stack = append(stack, i)
		for _, e := range edges[i] {
			switch state[e.to] {
			case open:
				var chain []string
				for _, k := range stack[slices.Index(stack, e.to):] {
					chain = append(chain, canonicalOf(f.Structs[k].Type))
				}
				chain = append(chain, canonicalOf(f.Structs[e.to].Type))
				p := movebind.RootPath().Field("structs").Index(i).Field("fields").Index(e.field).Field("type")
				iss = append(iss, movebind.IssueAt(p, movebind.CodeInvalidFormat,
					"recursive struct: "+strings.Join(chain, " -> "),
					map[string]any{"field": f.Structs[i].Fields[e.field].Name}))
			case unvisited:
				visit(e.to)
			}
		}
		stack = stack[:len(stack)-1]
		state[i] = done
	}
	for i := range f.Structs {
		if state[i] == unvisited {
			visit(i)
		}
	}
	return iss
}

func canonicalOf(typeString string) string {
	c, err := movebind.CompressType(typeString)
	if err != nil {
		return typeString
	}
	return c
}

// structRefs lists the canonical names of the structs a type string
// mentions, arguments included.
func structRefs(typeString string) []string {
	name, args, err := movebind.ParseTypeName(typeString)
	if err != nil {
		return nil
	}
	var out []string
	if strings.Contains(name, "::") {
		out = append(out, canonicalOf(name))
	}
	for _, a := range args {
		out = append(out, structRefs(a)...)
	}
	return out
}

// Defs builds one StructDef per described struct. Field types resolve
// through l when the struct is instantiated.
func (f *File) Defs(l *movebind.Loader) []*movebind.StructDef {
	out := make([]*movebind.StructDef, len(f.Structs))
	for i := range f.Structs {
		out[i] = f.Structs[i].Def(l)
	}
	return out
}

// Register adds every described struct to l.
func (f *File) Register(l *movebind.Loader, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, d := range f.Defs(l) {
		logger.Info("registering manifest struct",
			zap.String("type", d.TypeName()),
			zap.Int("typeParams", len(d.TypeParams)),
			zap.Int("fields", len(d.Fields)))
		l.Register(d)
	}
}

var objectGoType = reflect.TypeOf((*Object)(nil))

// Def builds the binding for s.
func (s Struct) Def(l *movebind.Loader) *movebind.StructDef {
	d := &movebind.StructDef{
		Name:   s.Type,
		GoType: objectGoType,
		Values: func(i movebind.Instance) []any { return i.(*Object).values },
	}
	names := make([]string, len(s.TypeParams))
	for i, p := range s.TypeParams {
		d.TypeParams = append(d.TypeParams, movebind.TypeParam{Name: p.Name, Phantom: p.Phantom})
		names[i] = p.Name
	}
	for _, fd := range s.Fields {
		jsonName := fd.JSONName
		if jsonName == "" {
			jsonName = CamelCase(fd.Name)
		}
		d.Fields = append(d.Fields, movebind.FieldDef{
			Name:     fd.Name,
			JSONName: jsonName,
			Type:     fieldType(l, fd.Type, names),
		})
	}
	d.New = func(h movebind.Header, values []any) movebind.Instance {
		return &Object{Header: h, def: d, values: values}
	}
	return d
}

func fieldType(l *movebind.Loader, typeString string, params []string) movebind.FieldType {
	return func(args []movebind.TypeArg) (movebind.TypeArg, error) {
		bound := make(map[string]movebind.TypeArg, len(params))
		for i, p := range params {
			if i < len(args) {
				bound[p] = args[i]
			}
		}
		return l.ReifiedWith(typeString, bound)
	}
}

// CamelCase converts a snake_case Move field name to the JSON key used by
// generated bindings: generic_field_1 becomes genericField1.
func CamelCase(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 || b.Len() == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
