package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/bcs"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse TYPE",
		Short: "Split a type string into its name and type arguments",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name, targs, err := movebind.ParseTypeName(args[0])
			if err != nil {
				return err
			}
			canonical, err := movebind.CompressType(args[0])
			if err != nil {
				return err
			}
			if targs == nil {
				targs = []string{}
			}
			return a.printJSON(map[string]any{
				"name":      name,
				"typeArgs":  targs,
				"canonical": canonical,
			})
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve TYPE",
		Short: "Resolve a type string against the registry and show its layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := a.loader.Reified(args[0])
			if err != nil {
				return err
			}
			out := map[string]any{
				"type":   t.TypeString(),
				"goType": movebind.GoTypeOf(t).String(),
			}
			if l, err := movebind.LayoutOf(t); err == nil {
				out["layout"] = bcs.Describe(l)
			}
			if r, ok := t.(*movebind.Reified); ok {
				out["typeName"] = r.TypeName
				out["typeArgs"] = r.TypeArgStrings()
			}
			return a.printJSON(out)
		},
	}
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered struct types",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, name := range a.loader.Names() {
				cls, _ := a.loader.Lookup(name)
				if _, err := fmt.Fprintf(a.stdout, "%s\t%d\n", name, cls.NumTypeParams()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type decodeFlags struct {
	bcsBase64 string
	bcsHex    string
	fields    string
	json      string
	object    string
}

func newDecodeCmd(a *app) *cobra.Command {
	var f decodeFlags
	cmd := &cobra.Command{
		Use:   "decode [TYPE]",
		Short: "Decode a value and print it as tagged JSON",
		Long: `Decode a value of TYPE from exactly one input:
  --bcs       base64 binary encoding
  --bcs-hex   hex binary encoding
  --fields    file holding a query API item ({"type": ..., "fields": ...})
  --json      file holding a tagged JSON document
  --object    file holding an object query response (TYPE defaults to the object's type)
A file name of - reads standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := a.decode(args, f)
			if err != nil {
				return err
			}
			return a.printValue(v)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.bcsBase64, "bcs", "", "base64 binary encoding")
	fl.StringVar(&f.bcsHex, "bcs-hex", "", "hex binary encoding")
	fl.StringVar(&f.fields, "fields", "", "query API item file")
	fl.StringVar(&f.json, "json", "", "tagged JSON file")
	fl.StringVar(&f.object, "object", "", "object query response file")
	cmd.MarkFlagsMutuallyExclusive("bcs", "bcs-hex", "fields", "json", "object")
	cmd.MarkFlagsOneRequired("bcs", "bcs-hex", "fields", "json", "object")
	return cmd
}

func (a *app) decode(args []string, f decodeFlags) (any, error) {
	if f.object != "" {
		data, err := a.readInput(f.object)
		if err != nil {
			return nil, err
		}
		obj, err := movebind.DecodeObjectData(data)
		if err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return a.loader.DecodeObject(obj)
		}
		r, err := a.loader.ReifiedStruct(args[0])
		if err != nil {
			return nil, err
		}
		return r.FromObjectData(obj)
	}

	if len(args) == 0 {
		return nil, errors.New("TYPE is required unless --object is used")
	}
	r, err := a.loader.ReifiedStruct(args[0])
	if err != nil {
		return nil, err
	}
	a.logger.Debug("decoding", zap.String("type", r.FullTypeName))
	switch {
	case f.bcsBase64 != "":
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(f.bcsBase64))
		if err != nil {
			return nil, fmt.Errorf("--bcs: %w", err)
		}
		return r.FromBCS(raw)
	case f.bcsHex != "":
		raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(f.bcsHex), "0x"))
		if err != nil {
			return nil, fmt.Errorf("--bcs-hex: %w", err)
		}
		return r.FromBCS(raw)
	case f.fields != "":
		data, err := a.readInput(f.fields)
		if err != nil {
			return nil, err
		}
		item, err := movebind.ParseJSON(data, a.jsonOptions())
		if err != nil {
			return nil, err
		}
		return r.FromFieldsWithTypes(item)
	default:
		data, err := a.readInput(f.json)
		if err != nil {
			return nil, err
		}
		return r.FromJSONBytes(data, a.jsonOptions())
	}
}

func newEncodeCmd(a *app) *cobra.Command {
	var (
		input string
		asHex bool
	)
	cmd := &cobra.Command{
		Use:   "encode TYPE --json FILE",
		Short: "Encode a tagged JSON document in the binary format",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := a.loader.ReifiedStruct(args[0])
			if err != nil {
				return err
			}
			data, err := a.readInput(input)
			if err != nil {
				return err
			}
			v, err := r.FromJSONBytes(data, a.jsonOptions())
			if err != nil {
				return err
			}
			out, err := r.ToBCS(v)
			if err != nil {
				return err
			}
			s := base64.StdEncoding.EncodeToString(out)
			if asHex {
				s = "0x" + hex.EncodeToString(out)
			}
			_, err = fmt.Fprintln(a.stdout, s)
			return err
		},
	}
	cmd.Flags().StringVar(&input, "json", "", "tagged JSON file (- for standard input)")
	cmd.Flags().BoolVar(&asHex, "hex", false, "print hex instead of base64")
	_ = cmd.MarkFlagRequired("json")
	return cmd
}

func (a *app) readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(a.stdin)
	}
	return os.ReadFile(name)
}

func (a *app) printValue(v any) error {
	var (
		doc any
		err error
	)
	if inst, ok := v.(movebind.Instance); ok {
		doc, err = inst.ToJSON()
	} else {
		doc, err = movebind.ValueToJSON(v)
	}
	if err != nil {
		return err
	}
	return a.printJSON(doc)
}

func (a *app) printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.stdout, "%s\n", out)
	return err
}
