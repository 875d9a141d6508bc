// Package engine holds token-level JSON checks that run before documents are
// decoded into Move values.
package engine

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// Options configures CheckJSON.
type Options struct {
	// RejectDuplicateKeys reports objects that repeat a key.
	RejectDuplicateKeys bool
	// MaxDepth limits container nesting; 0 means unlimited.
	MaxDepth int
	// MaxIssues stops the scan after this many issues; 0 means unlimited.
	MaxIssues int
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
}

// CheckJSON scans data token by token and reports duplicate keys and
// excessive nesting with JSON Pointer paths. Syntax errors are reported as a
// parse_error issue.
func CheckJSON(data []byte, opt Options) []SimpleIssue {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		issues []SimpleIssue
		stack  []frame
	)
	full := func() bool { return opt.MaxIssues > 0 && len(issues) >= opt.MaxIssues }

	// valuePath returns the path of the value about to be read and advances
	// the enclosing container.
	valuePath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			p := joinJSONPointer(top.path, strconv.Itoa(top.nextIndex))
			top.nextIndex++
			return p
		}
		top.expectingKey = true
		return top.path
	}

	var pendingKey string
	for !full() {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			issues = append(issues, SimpleIssue{Code: "parse_error", Path: "/", Message: err.Error()})
			break
		}
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			if key, ok := tok.(string); ok && top.kind == kindObject && top.expectingKey {
				if _, dup := top.keys[key]; dup && opt.RejectDuplicateKeys {
					issues = append(issues, SimpleIssue{
						Code:    "duplicate_key",
						Path:    normalizeIssuePath(joinJSONPointer(top.path, key)),
						Message: "key '" + key + "' duplicated",
					})
				}
				top.keys[key] = struct{}{}
				top.expectingKey = false
				pendingKey = key
				continue
			}
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				path := valuePath()
				if len(stack) > 0 && stack[len(stack)-1].kind == kindObject {
					path = joinJSONPointer(path, pendingKey)
				}
				f := frame{kind: kindArray, path: path}
				if v == '{' {
					f = frame{kind: kindObject, keys: map[string]struct{}{}, expectingKey: true, path: path}
				}
				stack = append(stack, f)
				if opt.MaxDepth > 0 && len(stack) > opt.MaxDepth {
					issues = append(issues, SimpleIssue{
						Code:    "truncated",
						Path:    normalizeIssuePath(path),
						Message: "maximum nesting depth " + strconv.Itoa(opt.MaxDepth) + " exceeded",
					})
					return issues
				}
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		default:
			valuePath()
		}
	}
	return issues
}

func normalizeIssuePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinJSONPointer(base, token string) string {
	return base + "/" + jsonPointerEscaper.Replace(token)
}
