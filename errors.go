package movebind

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	// Type-level failures.
	CodeParseError    = "parse_error"
	CodeUnknownType   = "unknown_type"
	CodeArityMismatch = "arity_mismatch"
	CodeTypeMismatch  = "type_mismatch"
	CodeEncoding      = "encoding"

	// Value-level failures.
	CodeInvalidType   = "invalid_type"
	CodeInvalidFormat = "invalid_format"
	CodeOverflow      = "overflow"
	CodeMissingField  = "missing_field"
	CodeDuplicateKey  = "duplicate_key"
	CodeTruncated     = "truncated"
)

// Issue represents a single decode or resolution failure.
type Issue struct {
	Path    string // JSON Pointer to the offending field (for example: /entries/2/value).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected": 2, "got": 3}).
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_type at /value: Unknown type 0x2::foo::Bar
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			b.WriteString(": ")
			b.WriteString(it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the underlying causes to errors.Is and errors.As.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// atField re-roots the issues carried by err under the named field.
func atField(err error, name string) error {
	return reroot(err, RootPath().Field(name))
}

// atIndex re-roots the issues carried by err under a sequence index.
func atIndex(err error, i int) error {
	return reroot(err, RootPath().Index(i))
}

func reroot(err error, prefix PathRef) error {
	if err == nil {
		return nil
	}
	iss, ok := AsIssues(err)
	if !ok {
		it := prefix.Issue(CodeEncoding, err.Error())
		it.Cause = err
		return Issues{it}
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.Path = prefix.Join(it.Path)
		out[i] = it
	}
	return out
}
